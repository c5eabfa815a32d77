package document

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
)

func strokeSamples(width float64, points ...gg.Point) []Sample {
	s := make([]Sample, len(points))
	for i, p := range points {
		s[i] = Sample{Pos: p, Width: width}
	}
	return s
}

func countInk(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				n++
			}
		}
	}
	return n
}

func TestRasterLayer_TooFewSamplesIsNoop(t *testing.T) {
	tests := []struct {
		name    string
		samples []Sample
	}{
		{"empty", nil},
		{"single point", strokeSamples(4, gg.Pt(10, 10))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRasterLayer(32)
			if err := r.CommitStroke(tt.samples, gg.RGB(0, 0, 0)); err != nil {
				t.Fatalf("CommitStroke: %v", err)
			}
			if _, ok := r.Bounds(); ok {
				t.Error("bounds set after no-op commit")
			}
			if countInk(r.Image()) != 0 {
				t.Error("pixels painted by no-op commit")
			}
		})
	}
}

func TestRasterLayer_CommitPaintsPixels(t *testing.T) {
	r := newRasterLayer(64)
	samples := strokeSamples(4, gg.Pt(10, 32), gg.Pt(30, 32), gg.Pt(50, 32))
	if err := r.CommitStroke(samples, gg.RGB(0, 0, 0)); err != nil {
		t.Fatalf("CommitStroke: %v", err)
	}
	if countInk(r.Image()) == 0 {
		t.Fatal("committed stroke left the buffer blank")
	}
	if _, _, _, a := r.Image().At(30, 32).RGBA(); a == 0 {
		t.Error("midpoint of the stroke is transparent")
	}
}

func TestRasterLayer_BoundsUnionGrows(t *testing.T) {
	r := newRasterLayer(128)

	if err := r.CommitStroke(strokeSamples(2, gg.Pt(10, 10), gg.Pt(20, 10)), gg.RGB(0, 0, 0)); err != nil {
		t.Fatalf("first commit: %v", err)
	}
	first, ok := r.Bounds()
	if !ok {
		t.Fatal("no bounds after first commit")
	}

	if err := r.CommitStroke(strokeSamples(2, gg.Pt(90, 90), gg.Pt(100, 100)), gg.RGB(0, 0, 0)); err != nil {
		t.Fatalf("second commit: %v", err)
	}
	second, _ := r.Bounds()

	if second.Min.X > first.Min.X || second.Min.Y > first.Min.Y {
		t.Errorf("union lost the first stroke: %v -> %v", first, second)
	}
	if second.Max.X < 90 || second.Max.Y < 90 {
		t.Errorf("union does not cover the second stroke: %v", second)
	}
}

func TestRasterLayer_LastSampleWidthWins(t *testing.T) {
	// A stroke whose samples end wide must paint wide along its whole
	// length, including the early narrow section.
	commit := func(widths []float64) image.Image {
		r := newRasterLayer(64)
		samples := []Sample{
			{Pos: gg.Pt(10, 32), Width: widths[0]},
			{Pos: gg.Pt(30, 32), Width: widths[1]},
			{Pos: gg.Pt(50, 32), Width: widths[2]},
		}
		if err := r.CommitStroke(samples, gg.RGB(0, 0, 0)); err != nil {
			t.Fatalf("CommitStroke: %v", err)
		}
		return r.Image()
	}

	narrow := countInk(commit([]float64{1, 1, 1}))
	widened := countInk(commit([]float64{1, 1, 12}))
	uniform := countInk(commit([]float64{12, 12, 12}))

	if widened <= narrow {
		t.Errorf("ending wide did not widen the stroke: %d <= %d pixels", widened, narrow)
	}
	if diff := uniform - widened; diff < -uniform/10 || diff > uniform/10 {
		t.Errorf("last-sample width not applied uniformly: %d vs %d pixels", widened, uniform)
	}
}

func TestRasterLayer_ClearForgetsEverything(t *testing.T) {
	r := newRasterLayer(32)
	if err := r.CommitStroke(strokeSamples(4, gg.Pt(5, 5), gg.Pt(25, 25)), gg.RGB(0, 0, 0)); err != nil {
		t.Fatalf("CommitStroke: %v", err)
	}
	r.Clear()
	if _, ok := r.Bounds(); ok {
		t.Error("bounds survived clear")
	}
	if countInk(r.Image()) != 0 {
		t.Error("pixels survived clear")
	}
}

func TestRasterLayer_ReplaceAdoptsImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	src.SetRGBA(8, 8, color.RGBA{A: 255})

	r := newRasterLayer(32)
	r.Replace(src)

	box, ok := r.Bounds()
	if !ok {
		t.Fatal("no bounds after replace")
	}
	if box.Max.X != 16 || box.Max.Y != 16 {
		t.Errorf("bounds = %v, want full 16x16 extent", box)
	}
	if _, _, _, a := r.Image().At(8, 8).RGBA(); a == 0 {
		t.Error("replaced image content lost")
	}
}
