package document

import "github.com/gogpu/gg"

// Zoom limits. The scale accumulates multiplicatively per wheel or key
// gesture, so without a clamp a held key drives it into floating-point
// extremes where stroking degenerates.
const (
	MinScale = 1.0 / 32
	MaxScale = 32.0

	ZoomInFactor  = 1.25
	ZoomOutFactor = 0.8
)

// View is the pan/zoom state of the viewport: a uniform scale and the scene
// point currently at the viewport center.
type View struct {
	Scale  float64
	Center gg.Point
}

func NewView() View {
	return View{Scale: 1.0}
}

// SceneAt maps a viewport-local position to scene coordinates.
func (v View) SceneAt(screen, viewport gg.Point) gg.Point {
	return gg.Pt(
		v.Center.X+(screen.X-viewport.X/2)/v.Scale,
		v.Center.Y+(screen.Y-viewport.Y/2)/v.Scale,
	)
}

// ZoomAt scales the view by factor, keeping the scene point under the given
// viewport position fixed. The resulting scale is clamped to
// [MinScale, MaxScale].
func (v *View) ZoomAt(factor float64, screen, viewport gg.Point) {
	anchor := v.SceneAt(screen, viewport)
	next := clampScale(v.Scale * factor)
	if next == v.Scale {
		return
	}
	v.Scale = next
	// Reposition the center so anchor stays under screen.
	v.Center = gg.Pt(
		anchor.X-(screen.X-viewport.X/2)/v.Scale,
		anchor.Y-(screen.Y-viewport.Y/2)/v.Scale,
	)
}

// Zoom scales about the viewport center.
func (v *View) Zoom(factor float64) {
	v.Scale = clampScale(v.Scale * factor)
}

// Pan shifts the view by a viewport-space delta.
func (v *View) Pan(dx, dy float64) {
	v.Center.X -= dx / v.Scale
	v.Center.Y -= dy / v.Scale
}

func clampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
