package document

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/rs/zerolog"
)

const (
	// DefaultRasterSize is the edge length of the raster buffer in scene
	// units. The vector layer is unbounded; this is the committed-stroke
	// area, matching the canvas file format.
	DefaultRasterSize = 10000

	// DefaultPenWidth is the stroke width used for pointer input, where no
	// pressure is available.
	DefaultPenWidth = 2.0
)

// Document is the drawing state: the accumulated vector path, the raster
// layer, the pin registry, pen and view state. It is owned by the UI thread;
// nothing here is safe for concurrent use, and nothing needs to be.
type Document struct {
	log    zerolog.Logger
	path   *gg.Path
	raster *rasterLayer
	pins   *PinRegistry
	view   View

	penColor   gg.RGBA
	penWidth   float64
	background bool
	antialias  bool

	drawing bool
	stylus  bool
	smooth  smoother
	samples []Sample
}

// Sample is one captured input point with its pressure-derived pen width.
type Sample struct {
	Pos   gg.Point
	Width float64
}

// Options configures a new Document. The zero value gives the full-size
// canvas with a silent logger.
type Options struct {
	RasterSize int
	Logger     *zerolog.Logger
}

// New creates an empty document: blank vector path, transparent raster
// buffer, the default pin, background visible.
func New(opts Options) *Document {
	size := opts.RasterSize
	if size <= 0 {
		size = DefaultRasterSize
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Document{
		log:        log.With().Str("component", "document").Logger(),
		path:       gg.NewPath(),
		raster:     newRasterLayer(size),
		pins:       NewPinRegistry(),
		view:       NewView(),
		penColor:   gg.RGB(0, 0, 0),
		penWidth:   DefaultPenWidth,
		background: true,
	}
}

// Path returns the live vector path. Callers treat it as read-only; it is
// mutated only through the gesture operations and Restore.
func (d *Document) Path() *gg.Path { return d.path }

// RasterImage returns the current raster layer contents.
func (d *Document) RasterImage() image.Image { return d.raster.Image() }

// RasterBounds reports the union bounding box of committed strokes.
func (d *Document) RasterBounds() (gg.Rect, bool) { return d.raster.Bounds() }

// RasterSize returns the raster buffer edge length.
func (d *Document) RasterSize() int { return d.raster.size }

// Pins returns the pin registry.
func (d *Document) Pins() *PinRegistry { return d.pins }

// View returns the mutable pan/zoom state.
func (d *Document) View() *View { return &d.view }

// PenColor returns the stroke color.
func (d *Document) PenColor() gg.RGBA { return d.penColor }

// PenWidth returns the most recent pen width. During a stylus gesture this
// follows pressure; it is also the width exports stroke the vector layer
// with.
func (d *Document) PenWidth() float64 { return d.penWidth }

// BackgroundVisible reports whether the white backdrop is drawn.
func (d *Document) BackgroundVisible() bool { return d.background }

// SetBackgroundVisible sets the backdrop flag directly, as on load.
func (d *Document) SetBackgroundVisible(v bool) { d.background = v }

// ToggleBackground flips between the white backdrop and a transparent one.
func (d *Document) ToggleBackground() {
	d.background = !d.background
	d.log.Debug().Bool("visible", d.background).Msg("background toggled")
}

// Antialias reports the export antialiasing preference.
func (d *Document) Antialias() bool { return d.antialias }

// SetAntialias sets the export antialiasing preference.
func (d *Document) SetAntialias(v bool) { d.antialias = v }

// Clear discards everything drawn: the vector path, the raster buffer and
// its bounds. Pins and view state survive. Callable at any time; an active
// gesture is abandoned.
func (d *Document) Clear() {
	d.path = gg.NewPath()
	d.raster.Clear()
	d.drawing = false
	d.samples = d.samples[:0]
	d.log.Info().Msg("canvas cleared")
}

// ContentBounds is the union of the vector path's bounding box and the
// raster stroke bounds. ok is false when there is no drawn content at all.
func (d *Document) ContentBounds() (gg.Rect, bool) {
	var box gg.Rect
	have := false
	if len(d.path.Elements()) > 0 {
		box = d.path.BoundingBox()
		have = true
	}
	if rb, ok := d.raster.Bounds(); ok {
		if have {
			box = box.Union(rb)
		} else {
			box = rb
			have = true
		}
	}
	return box, have
}

// Snapshot is the unit of canvas save/load: everything the binary format
// carries.
type Snapshot struct {
	Raster            image.Image
	Path              *gg.Path
	Pins              []Pin
	BackgroundVisible bool
}

// Snapshot captures the current document for serialization.
func (d *Document) Snapshot() *Snapshot {
	return &Snapshot{
		Raster:            d.raster.Image(),
		Path:              d.path.Clone(),
		Pins:              d.pins.Pins(),
		BackgroundVisible: d.background,
	}
}

// Restore replaces the document contents with a decoded snapshot. The
// caller only invokes this after a fully successful decode, so a failed
// load never touches the previous state. Raster bounds reset to the loaded
// image's full extent.
func (d *Document) Restore(s *Snapshot) {
	d.path = s.Path.Clone()
	d.raster.Replace(s.Raster)
	d.pins.Replace(s.Pins)
	d.background = s.BackgroundVisible
	d.drawing = false
	d.samples = d.samples[:0]
	d.log.Info().
		Int("elements", len(d.path.Elements())).
		Int("pins", d.pins.Len()).
		Msg("document restored")
}
