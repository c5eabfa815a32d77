package export

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/jung-kurt/gofpdf"

	"RasterVector/internal/document"
)

// A4 page geometry in millimeters, with a uniform margin around the drawing.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
	pageMarginMM = 10.0
)

// PDF writes the vector path scaled to fit an A4 page. Like the SVG export
// this is vector-only. Returns false with a nil error when there is nothing
// to export.
func PDF(doc *document.Document, path string) (bool, error) {
	x0, y0, w, h, ok := contentRect(doc)
	if !ok {
		return false, nil
	}

	scale := (pageWidthMM - 2*pageMarginMM) / float64(w)
	if s := (pageHeightMM - 2*pageMarginMM) / float64(h); s < scale {
		scale = s
	}

	tx := func(v float64) float64 { return pageMarginMM + (v-float64(x0))*scale }
	ty := func(v float64) float64 { return pageMarginMM + (v-float64(y0))*scale }

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	col := doc.PenColor()
	pdf.SetDrawColor(channel(col.R), channel(col.G), channel(col.B))
	pdf.SetLineWidth(doc.PenWidth() * scale)
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	for _, elem := range doc.Path().Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			pdf.MoveTo(tx(e.Point.X), ty(e.Point.Y))
		case gg.LineTo:
			pdf.LineTo(tx(e.Point.X), ty(e.Point.Y))
		case gg.QuadTo:
			pdf.CurveTo(tx(e.Control.X), ty(e.Control.Y), tx(e.Point.X), ty(e.Point.Y))
		case gg.CubicTo:
			pdf.CurveBezierCubicTo(
				tx(e.Control1.X), ty(e.Control1.Y),
				tx(e.Control2.X), ty(e.Control2.Y),
				tx(e.Point.X), ty(e.Point.Y))
		case gg.Close:
			pdf.ClosePath()
		}
	}
	pdf.DrawPath("D")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return false, fmt.Errorf("write pdf: %w", err)
	}
	return true, nil
}

func channel(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return int(v*255 + 0.5)
}
