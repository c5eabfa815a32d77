package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"RasterVector/internal/document"
)

// SVG writes the vector path as a resolution-independent SVG file. The
// raster layer is deliberately excluded: the vector export is the
// infinite-resolution record of the drawing, not a reproduction of the
// composite. Coordinates are shifted so the union bounding box's top-left
// lands on the origin. Returns false with a nil error when there is
// nothing to export.
func SVG(doc *document.Document, path string) (bool, error) {
	x0, y0, w, h, ok := contentRect(doc)
	if !ok {
		return false, nil
	}

	d := pathData(doc.Path(), float64(-x0), float64(-y0))
	col := hexColor(doc.PenColor())
	width := formatCoord(doc.PenWidth())

	err := writeAtomic(path, func(out io.Writer) error {
		var b strings.Builder
		b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
		fmt.Fprintf(&b,
			`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
			w, h, w, h)
		fmt.Fprintf(&b,
			`  <path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
			d, col, width)
		b.WriteString("</svg>\n")
		_, err := io.WriteString(out, b.String())
		return err
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// pathData renders path elements as an SVG path data string, translated by
// (dx, dy). Quadratic and cubic segments map directly onto the Q and C
// commands.
func pathData(p *gg.Path, dx, dy float64) string {
	var b strings.Builder
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			cmd(&b, "M", e.Point.X+dx, e.Point.Y+dy)
		case gg.LineTo:
			cmd(&b, "L", e.Point.X+dx, e.Point.Y+dy)
		case gg.QuadTo:
			cmd(&b, "Q", e.Control.X+dx, e.Control.Y+dy, e.Point.X+dx, e.Point.Y+dy)
		case gg.CubicTo:
			cmd(&b, "C",
				e.Control1.X+dx, e.Control1.Y+dy,
				e.Control2.X+dx, e.Control2.Y+dy,
				e.Point.X+dx, e.Point.Y+dy)
		case gg.Close:
			b.WriteString("Z ")
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func cmd(b *strings.Builder, op string, coords ...float64) {
	b.WriteString(op)
	for _, c := range coords {
		b.WriteByte(' ')
		b.WriteString(formatCoord(c))
	}
	b.WriteByte(' ')
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

func hexColor(c gg.RGBA) string {
	clamp := func(v float64) int {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 255
		}
		return int(v*255 + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(c.R), clamp(c.G), clamp(c.B))
}
