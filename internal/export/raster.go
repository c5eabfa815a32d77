// Package export renders the drawn content to interchange formats: a
// binarized PNG, a vector-only SVG and a PDF. All exporters share the same
// union bounding box of vector and raster content and silently skip when
// there is nothing to write.
package export

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/gogpu/gg"

	"RasterVector/internal/document"
)

// contentRect computes the integer-aligned export rectangle. ok is false
// when the union box is empty (no content, or degenerate extent).
func contentRect(doc *document.Document) (x0, y0, w, h int, ok bool) {
	box, has := doc.ContentBounds()
	if !has || box.Width() <= 0 || box.Height() <= 0 {
		return 0, 0, 0, 0, false
	}
	x0 = int(math.Floor(box.Min.X))
	y0 = int(math.Floor(box.Min.Y))
	w = int(math.Ceil(box.Max.X)) - x0
	h = int(math.Ceil(box.Max.Y)) - y0
	return x0, y0, w, h, true
}

// PNG renders both layers into the union bounding box, binarizes the result
// to pure black and white and writes it as a PNG file. Returns false with a
// nil error when there is nothing to export.
func PNG(doc *document.Document, path string) (bool, error) {
	x0, y0, w, h, ok := contentRect(doc)
	if !ok {
		return false, nil
	}

	dc := gg.NewContext(w, h)
	if doc.BackgroundVisible() {
		dc.ClearWithColor(gg.RGB(1, 1, 1))
	}
	dc.Translate(float64(-x0), float64(-y0))

	// Raster layer sits at the scene origin.
	dc.DrawImage(gg.ImageBufFromImage(doc.RasterImage()), 0, 0)

	// Vector layer on top, stroked with the current pen.
	document.ReplayPath(dc, doc.Path())
	dc.SetColor(doc.PenColor().Color())
	dc.SetStroke(gg.RoundStroke().WithWidth(doc.PenWidth()))
	if err := dc.Stroke(); err != nil {
		return false, fmt.Errorf("render vector layer: %w", err)
	}

	img := toRGBA(dc.Image())
	binarize(img)

	err := writeAtomic(path, func(w io.Writer) error {
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// binarize thresholds every pixel on the average of its color channels:
// average 128 or brighter becomes white, darker becomes black. Alpha is
// forced opaque; transparent pixels average to zero and come out black.
func binarize(img *image.RGBA) {
	pix := img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		sum := int(pix[i]) + int(pix[i+1]) + int(pix[i+2])
		var v uint8
		if sum >= 3*128 {
			v = 255
		}
		pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 255
	}
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
