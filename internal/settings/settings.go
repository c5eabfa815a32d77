// Package settings persists session preferences to rvsettings.ini: pin
// positions, the last view center, the background and antialiasing flags.
// The file is human-readable INI with Pins, View and Settings sections,
// independent of the binary canvas format.
package settings

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"gopkg.in/ini.v1"

	"RasterVector/internal/document"
)

// DefaultFile is the settings file name, kept in the working directory
// beside the canvas files.
const DefaultFile = "rvsettings.ini"

type Settings struct {
	Pins              []document.Pin
	ViewCenter        gg.Point
	BackgroundVisible bool
	Antialiasing      bool
}

// Default returns the out-of-the-box settings: background on, antialiasing
// off, no pins (the document supplies its own default pin).
func Default() *Settings {
	return &Settings{BackgroundVisible: true}
}

// Load reads the settings file. A missing file is not an error; defaults
// apply. Malformed pin entries are skipped rather than failing the load.
func Load(path string) (*Settings, error) {
	s := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	for _, key := range cfg.Section("Pins").Keys() {
		xs, ys, found := strings.Cut(key.String(), ",")
		if !found {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if errX != nil || errY != nil {
			continue
		}
		s.Pins = append(s.Pins, document.Pin{Name: key.Name(), Pos: gg.Pt(x, y)})
	}

	view := cfg.Section("View")
	s.ViewCenter = gg.Pt(
		view.Key("center_x").MustFloat64(0),
		view.Key("center_y").MustFloat64(0),
	)

	prefs := cfg.Section("Settings")
	s.BackgroundVisible = prefs.Key("background_visible").MustBool(true)
	s.Antialiasing = prefs.Key("antialiasing").MustBool(false)

	return s, nil
}

// Save writes the settings file. Section keys collapse duplicate pin names;
// the canvas file is the representation that keeps them all.
func (s *Settings) Save(path string) error {
	cfg := ini.Empty()

	pins := cfg.Section("Pins")
	for _, pin := range s.Pins {
		val := formatFloat(pin.Pos.X) + "," + formatFloat(pin.Pos.Y)
		if _, err := pins.NewKey(pin.Name, val); err != nil {
			return fmt.Errorf("save pin %q: %w", pin.Name, err)
		}
	}

	view := cfg.Section("View")
	view.Key("center_x").SetValue(formatFloat(s.ViewCenter.X))
	view.Key("center_y").SetValue(formatFloat(s.ViewCenter.Y))

	prefs := cfg.Section("Settings")
	prefs.Key("background_visible").SetValue(strconv.FormatBool(s.BackgroundVisible))
	prefs.Key("antialiasing").SetValue(strconv.FormatBool(s.Antialiasing))

	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
