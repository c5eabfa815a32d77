package main

import (
	"os"

	"github.com/rs/zerolog"

	"RasterVector/internal/document"
	"RasterVector/internal/settings"
	"RasterVector/internal/ui"
)

func main() {
	log := newLogger()

	cfg, err := settings.Load(settings.DefaultFile)
	if err != nil {
		log.Warn().Err(err).Msg("settings unreadable, using defaults")
		cfg = settings.Default()
	}

	doc := document.New(document.Options{Logger: &log})
	if len(cfg.Pins) > 0 {
		doc.Pins().Replace(cfg.Pins)
	}
	doc.View().Center = cfg.ViewCenter
	doc.SetBackgroundVisible(cfg.BackgroundVisible)
	doc.SetAntialias(cfg.Antialiasing)

	log.Info().Int("pins", doc.Pins().Len()).Msg("starting")
	ui.RunApp(doc, settings.DefaultFile, log)
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if s := os.Getenv("RV_LOG"); s != "" {
		if l, err := zerolog.ParseLevel(s); err == nil {
			level = l
		}
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().
		Logger()
}
