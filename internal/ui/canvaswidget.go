package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"
	"github.com/rs/zerolog"

	"RasterVector/internal/document"
)

// CanvasWidget is the drawing surface. It translates Fyne pointer events
// into document gesture operations and renders the document through a gg
// context sized to the widget. Fyne reports no tablet pressure, so all
// events reach the document as pointer input; the stylus path of the
// gesture machine is driver-fed on platforms that surface it.
type CanvasWidget struct {
	widget.BaseWidget
	doc *document.Document
	log zerolog.Logger

	cursor    gg.Point // last hover position, widget-local
	hasCursor bool
}

var _ fyne.Widget = (*CanvasWidget)(nil)
var _ fyne.Draggable = (*CanvasWidget)(nil)
var _ desktop.Mouseable = (*CanvasWidget)(nil)
var _ desktop.Hoverable = (*CanvasWidget)(nil)
var _ fyne.Scrollable = (*CanvasWidget)(nil)

func NewCanvasWidget(doc *document.Document, log zerolog.Logger) *CanvasWidget {
	w := &CanvasWidget{
		doc: doc,
		log: log.With().Str("component", "canvas").Logger(),
	}
	w.ExtendBaseWidget(w)
	return w
}

func (w *CanvasWidget) viewport() gg.Point {
	s := w.Size()
	return gg.Pt(float64(s.Width), float64(s.Height))
}

func (w *CanvasWidget) sceneAt(pos fyne.Position) gg.Point {
	return w.doc.View().SceneAt(gg.Pt(float64(pos.X), float64(pos.Y)), w.viewport())
}

func (w *CanvasWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.doc.StrokeBegin(w.sceneAt(e.Position), 0, document.SourceMouse)
	w.Refresh()
}

func (w *CanvasWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.doc.StrokeEnd(document.SourceMouse)
	w.Refresh()
}

func (w *CanvasWidget) Dragged(e *fyne.DragEvent) {
	if w.doc.Drawing() {
		w.doc.StrokeMove(w.sceneAt(e.Position), 0, document.SourceMouse)
	} else {
		// Secondary-drag style panning: no active stroke, move the view.
		w.doc.View().Pan(float64(e.Dragged.DX), float64(e.Dragged.DY))
	}
	w.Refresh()
}

func (w *CanvasWidget) DragEnd() {
	w.doc.StrokeEnd(document.SourceMouse)
	w.Refresh()
}

// Scrolled pans the view. Fyne scroll events carry no modifier state, so
// wheel zoom lives on the +/- keys and the View menu instead.
func (w *CanvasWidget) Scrolled(e *fyne.ScrollEvent) {
	w.doc.View().Pan(float64(e.Scrolled.DX), float64(e.Scrolled.DY))
	w.Refresh()
}

// ZoomIn zooms, anchored under the pointer when it is over the canvas,
// about the viewport center otherwise.
func (w *CanvasWidget) ZoomIn() { w.zoom(document.ZoomInFactor) }

// ZoomOut is the inverse gesture of ZoomIn.
func (w *CanvasWidget) ZoomOut() { w.zoom(document.ZoomOutFactor) }

func (w *CanvasWidget) zoom(factor float64) {
	if w.hasCursor {
		w.doc.View().ZoomAt(factor, w.cursor, w.viewport())
	} else {
		w.doc.View().Zoom(factor)
	}
	w.Refresh()
}

func (w *CanvasWidget) MouseIn(e *desktop.MouseEvent) {
	w.cursor = gg.Pt(float64(e.Position.X), float64(e.Position.Y))
	w.hasCursor = true
}

func (w *CanvasWidget) MouseMoved(e *desktop.MouseEvent) {
	w.cursor = gg.Pt(float64(e.Position.X), float64(e.Position.Y))
	w.hasCursor = true
}

func (w *CanvasWidget) MouseOut() {
	w.hasCursor = false
}

// CenterOn recenters the view on a scene point, as the pins panel does.
func (w *CanvasWidget) CenterOn(p gg.Point) {
	w.doc.View().Center = p
	w.Refresh()
}

func (w *CanvasWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &canvasRenderer{widget: w}
	r.image = canvas.NewImageFromImage(nil)
	r.image.FillMode = canvas.ImageFillStretch
	return r
}

type canvasRenderer struct {
	widget *CanvasWidget
	image  *canvas.Image
}

func (r *canvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

// Refresh re-renders the scene: backdrop, raster layer, then the live
// vector path, all under the current pan/zoom transform.
func (r *canvasRenderer) Refresh() {
	size := r.widget.Size()
	iw, ih := int(size.Width), int(size.Height)
	if iw <= 0 || ih <= 0 {
		return
	}

	doc := r.widget.doc
	dc := gg.NewContext(iw, ih)
	if doc.BackgroundVisible() {
		dc.ClearWithColor(gg.RGB(1, 1, 1))
	}

	v := doc.View()
	dc.Translate(float64(iw)/2, float64(ih)/2)
	dc.Scale(v.Scale, v.Scale)
	dc.Translate(-v.Center.X, -v.Center.Y)

	dc.DrawImage(gg.ImageBufFromImage(doc.RasterImage()), 0, 0)

	document.ReplayPath(dc, doc.Path())
	dc.SetColor(doc.PenColor().Color())
	// Path points pass through the matrix but stroke width does not, so the
	// zoom factor is applied to the width here.
	dc.SetStroke(gg.RoundStroke().WithWidth(doc.PenWidth() * v.Scale))
	if err := dc.Stroke(); err != nil {
		r.widget.log.Error().Err(err).Msg("render failed")
	}

	r.image.Image = dc.Image()
	canvas.Refresh(r.image)
}

func (r *canvasRenderer) Layout(size fyne.Size) {
	r.image.Resize(size)
	r.Refresh()
}

func (r *canvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *canvasRenderer) Destroy() {}
