package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"

	"RasterVector/internal/document"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rvsettings.ini")

	in := &Settings{
		Pins: []document.Pin{
			{Name: "Default Pin", Pos: gg.Pt(0, 0)},
			{Name: "Harbor", Pos: gg.Pt(-120.5, 42.25)},
		},
		ViewCenter:        gg.Pt(33.5, -7),
		BackgroundVisible: false,
		Antialiasing:      true,
	}
	if err := in.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(out.Pins) != 2 {
		t.Fatalf("loaded %d pins, want 2", len(out.Pins))
	}
	for i, pin := range in.Pins {
		if out.Pins[i].Name != pin.Name || out.Pins[i].Pos != pin.Pos {
			t.Errorf("pin %d = %+v, want %+v", i, out.Pins[i], pin)
		}
	}
	if out.ViewCenter != in.ViewCenter {
		t.Errorf("view center = %v, want %v", out.ViewCenter, in.ViewCenter)
	}
	if out.BackgroundVisible {
		t.Error("background flag lost")
	}
	if !out.Antialiasing {
		t.Error("antialiasing flag lost")
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "rvsettings.ini"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.BackgroundVisible {
		t.Error("default background not visible")
	}
	if s.Antialiasing {
		t.Error("default antialiasing on")
	}
	if len(s.Pins) != 0 {
		t.Errorf("defaults carry %d pins, want none", len(s.Pins))
	}
	if s.ViewCenter != gg.Pt(0, 0) {
		t.Errorf("default view center = %v, want origin", s.ViewCenter)
	}
}

func TestLoad_SkipsMalformedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rvsettings.ini")
	content := `[Pins]
Good Pin = 10.5, -3
No Comma = 42
Not Numbers = left,right

[View]
center_x = 5
center_y = not-a-float

[Settings]
background_visible = maybe
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(s.Pins) != 1 {
		t.Fatalf("loaded %d pins, want only the well-formed one", len(s.Pins))
	}
	if s.Pins[0].Name != "Good Pin" || s.Pins[0].Pos != gg.Pt(10.5, -3) {
		t.Errorf("pin = %+v", s.Pins[0])
	}
	if s.ViewCenter != gg.Pt(5, 0) {
		t.Errorf("view center = %v, want unparsable Y to fall back to 0", s.ViewCenter)
	}
	if !s.BackgroundVisible {
		t.Error("unparsable background flag did not fall back to visible")
	}
}
