package document

import (
	"testing"

	"github.com/gogpu/gg"
)

func newTestDocument() *Document {
	return New(Options{RasterSize: 64})
}

func TestWidthForPressure(t *testing.T) {
	tests := []struct {
		name     string
		pressure float64
		want     float64
	}{
		{"light touch floors at one", 0.05, 1},
		{"half pressure", 0.5, 5},
		{"full pressure", 1.0, 10},
		{"zero pressure", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WidthForPressure(tt.pressure); got != tt.want {
				t.Errorf("WidthForPressure(%v) = %v, want %v", tt.pressure, got, tt.want)
			}
		})
	}
}

func TestGesture_VectorSegments(t *testing.T) {
	d := newTestDocument()
	d.StrokeBegin(gg.Pt(0, 0), 0.5, SourceStylus)
	for i := 1; i <= 5; i++ {
		d.StrokeMove(gg.Pt(float64(i*10), 0), 0.5, SourceStylus)
	}
	d.StrokeEnd(SourceStylus)

	// 6 raw points: one MoveTo plus 6-2 quadratic segments.
	elems := d.Path().Elements()
	if len(elems) != 5 {
		t.Fatalf("path has %d elements, want 5", len(elems))
	}
	if _, ok := elems[0].(gg.MoveTo); !ok {
		t.Errorf("first element is %T, want MoveTo", elems[0])
	}
	for i, e := range elems[1:] {
		if _, ok := e.(gg.QuadTo); !ok {
			t.Errorf("element %d is %T, want QuadTo", i+1, e)
		}
	}
}

func TestGesture_StylusLatchIgnoresMouse(t *testing.T) {
	d := newTestDocument()

	d.StrokeBegin(gg.Pt(0, 0), 0.5, SourceStylus)
	d.StrokeMove(gg.Pt(10, 0), 0.5, SourceStylus)

	// A driver-synthesized mouse press mid-gesture must not start a
	// second stroke or disturb the current one.
	before := len(d.Path().Elements())
	samples := d.CurrentSamples()
	d.StrokeBegin(gg.Pt(500, 500), 0, SourceMouse)
	d.StrokeMove(gg.Pt(510, 500), 0, SourceMouse)

	if len(d.Path().Elements()) != before {
		t.Errorf("mouse events extended the path: %d -> %d elements", before, len(d.Path().Elements()))
	}
	if d.CurrentSamples() != samples {
		t.Errorf("mouse events captured samples: %d -> %d", samples, d.CurrentSamples())
	}
	if !d.Drawing() {
		t.Error("stylus gesture was interrupted by mouse events")
	}

	d.StrokeEnd(SourceStylus)

	// And after the gesture, mouse input stays latched out.
	d.StrokeBegin(gg.Pt(0, 0), 0, SourceMouse)
	if d.Drawing() {
		t.Error("mouse press started a stroke after stylus latch")
	}
}

func TestGesture_MouseWidthConstant(t *testing.T) {
	d := newTestDocument()
	d.StrokeBegin(gg.Pt(0, 0), 0, SourceMouse)
	d.StrokeMove(gg.Pt(10, 0), 0.9, SourceMouse)
	d.StrokeMove(gg.Pt(20, 0), 0.1, SourceMouse)

	if d.PenWidth() != DefaultPenWidth {
		t.Errorf("pen width = %v, want constant %v for mouse input", d.PenWidth(), DefaultPenWidth)
	}
}

func TestGesture_StylusPressureVariesWidth(t *testing.T) {
	d := newTestDocument()
	d.StrokeBegin(gg.Pt(0, 0), 0.2, SourceStylus)
	if d.PenWidth() != 2 {
		t.Fatalf("pen width after begin = %v, want 2", d.PenWidth())
	}
	d.StrokeMove(gg.Pt(10, 0), 0.8, SourceStylus)
	if d.PenWidth() != 8 {
		t.Errorf("pen width after move = %v, want 8", d.PenWidth())
	}
}

func TestGesture_EndWithFewSamples(t *testing.T) {
	t.Run("no begin", func(t *testing.T) {
		d := newTestDocument()
		d.StrokeEnd(SourceMouse) // must not panic
	})

	t.Run("single point", func(t *testing.T) {
		d := newTestDocument()
		d.StrokeBegin(gg.Pt(5, 5), 0.5, SourceStylus)
		d.StrokeEnd(SourceStylus)
		if _, ok := d.RasterBounds(); ok {
			t.Error("single-point gesture committed raster content")
		}
	})
}

func TestGesture_CommitUpdatesRasterBounds(t *testing.T) {
	d := newTestDocument()
	d.StrokeBegin(gg.Pt(10, 10), 0.5, SourceStylus)
	d.StrokeMove(gg.Pt(30, 10), 0.5, SourceStylus)
	d.StrokeMove(gg.Pt(50, 30), 0.5, SourceStylus)
	d.StrokeEnd(SourceStylus)

	box, ok := d.RasterBounds()
	if !ok {
		t.Fatal("no raster bounds after committed gesture")
	}
	if box.Min.X > 10 || box.Min.Y > 10 || box.Max.X < 50 || box.Max.Y < 30 {
		t.Errorf("bounds %v do not cover the stroke extent", box)
	}
}

func TestClear_ResetsEverythingDrawn(t *testing.T) {
	d := newTestDocument()
	d.StrokeBegin(gg.Pt(10, 10), 0.5, SourceStylus)
	d.StrokeMove(gg.Pt(30, 10), 0.5, SourceStylus)
	d.StrokeMove(gg.Pt(50, 30), 0.5, SourceStylus)
	d.StrokeEnd(SourceStylus)

	d.Clear()

	if len(d.Path().Elements()) != 0 {
		t.Error("vector path not empty after clear")
	}
	if _, ok := d.RasterBounds(); ok {
		t.Error("raster bounds not reset after clear")
	}
	if _, ok := d.ContentBounds(); ok {
		t.Error("content bounds reported after clear")
	}

	img := d.RasterImage()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 7 {
		for x := b.Min.X; x < b.Max.X; x += 7 {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				t.Fatalf("raster pixel (%d, %d) not transparent after clear", x, y)
			}
		}
	}
}

func TestClear_AbandonsActiveGesture(t *testing.T) {
	d := newTestDocument()
	d.StrokeBegin(gg.Pt(0, 0), 0.5, SourceStylus)
	d.StrokeMove(gg.Pt(10, 0), 0.5, SourceStylus)

	d.Clear()
	if d.Drawing() {
		t.Error("still drawing after clear")
	}
	d.StrokeEnd(SourceStylus)
	if _, ok := d.RasterBounds(); ok {
		t.Error("abandoned gesture still committed")
	}
}
