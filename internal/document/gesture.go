package document

import "github.com/gogpu/gg"

// Source identifies which device produced an input event.
type Source int

const (
	SourceMouse Source = iota
	SourceStylus
)

// widthGain maps stylus pressure (0..1) to pen width in scene units.
const widthGain = 10.0

// WidthForPressure converts a stylus pressure reading to a pen width,
// with a floor of one unit so light touches still mark.
func WidthForPressure(pressure float64) float64 {
	w := pressure * widthGain
	if w < 1 {
		return 1
	}
	return w
}

// accepts arbitrates between devices. Once any stylus event has been seen,
// mouse events are ignored for drawing: stylus drivers commonly synthesize
// mouse press/move proxies for the same contact, and accepting both would
// enter every stroke twice.
func (d *Document) accepts(src Source) bool {
	if src == SourceStylus {
		d.stylus = true
		return true
	}
	return !d.stylus
}

// StrokeBegin starts a gesture at pos. For stylus input the pen width is
// derived from pressure; pointer input keeps the current width for the
// whole gesture. The start point goes into the vector path, the smoothing
// window and the sample list.
func (d *Document) StrokeBegin(pos gg.Point, pressure float64, src Source) {
	if !d.accepts(src) {
		return
	}
	d.smooth.Reset()
	d.samples = d.samples[:0]
	d.drawing = true

	d.path.MoveTo(pos.X, pos.Y)
	d.smooth.Push(pos)
	if src == SourceStylus {
		d.penWidth = WidthForPressure(pressure)
	}
	d.samples = append(d.samples, Sample{Pos: pos, Width: d.penWidth})
}

// StrokeMove extends the active gesture. Each point feeds the smoothing
// window; once the window is full every move emits one quadratic segment
// into the vector path. The point and its width are also recorded for the
// raster commit at gesture end.
func (d *Document) StrokeMove(pos gg.Point, pressure float64, src Source) {
	if !d.accepts(src) || !d.drawing {
		return
	}
	if src == SourceStylus {
		d.penWidth = WidthForPressure(pressure)
	}
	if ctrl, end, ok := d.smooth.Push(pos); ok {
		d.path.QuadraticTo(ctrl.X, ctrl.Y, end.X, end.Y)
	}
	d.samples = append(d.samples, Sample{Pos: pos, Width: d.penWidth})
}

// StrokeEnd finishes the gesture: the full sample list is committed into
// the raster layer in one pass. Always returns the machine to idle.
func (d *Document) StrokeEnd(src Source) {
	if !d.accepts(src) || !d.drawing {
		return
	}
	d.drawing = false
	if len(d.samples) == 0 {
		return
	}
	if err := d.raster.CommitStroke(d.samples, d.penColor); err != nil {
		d.log.Error().Err(err).Msg("raster commit failed")
	}
	d.samples = d.samples[:0]
}

// Drawing reports whether a gesture is in progress.
func (d *Document) Drawing() bool { return d.drawing }

// CurrentSamples returns the captured sample count of the active gesture.
func (d *Document) CurrentSamples() int { return len(d.samples) }
