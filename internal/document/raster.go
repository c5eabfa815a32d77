package document

import (
	"image"

	"github.com/gogpu/gg"
)

// rasterLayer is the persistent pixel buffer strokes are committed into,
// together with the running union of every committed stroke's bounding box.
// The buffer starts fully transparent and is only ever mutated by
// CommitStroke, Clear and Replace.
type rasterLayer struct {
	dc        *gg.Context
	size      int
	bounds    gg.Rect
	hasBounds bool
}

func newRasterLayer(size int) *rasterLayer {
	return &rasterLayer{
		dc:   gg.NewContext(size, size),
		size: size,
	}
}

// CommitStroke paints one finished gesture into the buffer. The whole
// captured point list is re-smoothed through consecutive midpoints, which is
// coarser than the live 3-point window but stable for a retroactive pass.
// The pen uses the width of the last sample for the entire stroke; per-sample
// widths are captured while drawing but not interpolated along the path.
func (r *rasterLayer) CommitStroke(samples []Sample, col gg.RGBA) error {
	if len(samples) < 2 {
		return nil
	}

	p := gg.NewPath()
	p.MoveTo(samples[0].Pos.X, samples[0].Pos.Y)
	for i := 1; i < len(samples); i++ {
		prev := samples[i-1].Pos
		cur := samples[i].Pos
		p.QuadraticTo((prev.X+cur.X)/2, (prev.Y+cur.Y)/2, cur.X, cur.Y)
	}

	width := samples[len(samples)-1].Width
	r.dc.SetColor(col.Color())
	r.dc.SetStroke(gg.RoundStroke().WithWidth(width))
	ReplayPath(r.dc, p)
	if err := r.dc.Stroke(); err != nil {
		return err
	}

	box := p.BoundingBox()
	if r.hasBounds {
		r.bounds = r.bounds.Union(box)
	} else {
		r.bounds = box
		r.hasBounds = true
	}
	return nil
}

// Clear refills the buffer to fully transparent and forgets the bounds.
func (r *rasterLayer) Clear() {
	r.dc = gg.NewContext(r.size, r.size)
	r.bounds = gg.Rect{}
	r.hasBounds = false
}

// Replace swaps in a decoded image, typically from a loaded canvas file.
// The bounds are reset to the full extent of the new image.
func (r *rasterLayer) Replace(img image.Image) {
	b := img.Bounds()
	r.dc = gg.NewContextForImage(img)
	if b.Dx() > r.size {
		r.size = b.Dx()
	}
	r.bounds = gg.NewRect(gg.Pt(0, 0), gg.Pt(float64(b.Dx()), float64(b.Dy())))
	r.hasBounds = true
}

// Image returns the current pixel contents.
func (r *rasterLayer) Image() image.Image {
	return r.dc.Image()
}

// Bounds reports the union bounding box of all committed strokes. ok is
// false when nothing has been committed since the last clear.
func (r *rasterLayer) Bounds() (gg.Rect, bool) {
	return r.bounds, r.hasBounds
}

// ReplayPath appends the elements of p to the context's current path.
// gg contexts build paths imperatively, so committed and loaded paths are
// replayed element by element before filling or stroking.
func ReplayPath(dc *gg.Context, p *gg.Path) {
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
}
