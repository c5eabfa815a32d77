package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"github.com/rs/zerolog"

	"RasterVector/internal/document"
	"RasterVector/internal/settings"
)

// RunApp builds the window around the document and blocks until the user
// closes it. Settings are persisted on close and before a restart.
func RunApp(doc *document.Document, settingsPath string, log zerolog.Logger) {
	a := app.New()
	win := a.NewWindow("RasterVector")
	win.Resize(fyne.NewSize(1024, 768))

	cw := NewCanvasWidget(doc, log)
	pins := NewPinsPanel(doc, cw, win)

	persist := func() {
		s := settings.Settings{
			Pins:              doc.Pins().Pins(),
			ViewCenter:        doc.View().Center,
			BackgroundVisible: doc.BackgroundVisible(),
			Antialiasing:      doc.Antialias(),
		}
		if err := s.Save(settingsPath); err != nil {
			log.Error().Err(err).Str("path", settingsPath).Msg("save settings failed")
		}
	}

	onRestart := func() {
		persist()
		if err := relaunch(); err != nil {
			log.Error().Err(err).Msg("relaunch failed")
			return
		}
		a.Quit()
	}

	win.SetMainMenu(buildMainMenu(win, doc, cw, pins, log, onRestart))

	// Keyboard zoom; Fyne scroll events carry no modifiers for wheel zoom.
	win.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case '+', '=':
			cw.ZoomIn()
		case '-':
			cw.ZoomOut()
		}
	})

	win.SetCloseIntercept(func() {
		persist()
		a.Quit()
	})

	win.SetContent(container.NewBorder(nil, nil, nil, pins.Content(), cw))
	win.ShowAndRun()
}
