package ui

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/rs/zerolog"

	"RasterVector/internal/canvasfile"
	"RasterVector/internal/document"
	"RasterVector/internal/export"
)

// buildMainMenu wires the menu commands onto the document core. Every
// action funnels through the same few operations the tests exercise
// directly; the menu layer is dialog plumbing.
func buildMainMenu(win fyne.Window, doc *document.Document, cw *CanvasWidget, pins *PinsPanel, log zerolog.Logger, onRestart func()) *fyne.MainMenu {
	log = log.With().Str("component", "menu").Logger()

	saveCanvas := fyne.NewMenuItem("Save Canvas", func() {
		d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil || wc == nil {
				return
			}
			if err := canvasfile.Encode(wc, doc.Snapshot()); err != nil {
				log.Error().Err(err).Msg("save canvas failed")
				dialog.ShowError(err, win)
			}
			wc.Close()
		}, win)
		d.SetFilter(storage.NewExtensionFileFilter([]string{".canvas"}))
		d.Show()
	})

	openCanvas := fyne.NewMenuItem("Open Canvas", func() {
		d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil || rc == nil {
				return
			}
			defer rc.Close()
			snap, err := canvasfile.Decode(rc)
			if err != nil {
				// Decode failed before any state changed; the current
				// document stays as it was.
				log.Error().Err(err).Msg("open canvas failed")
				dialog.ShowError(err, win)
				return
			}
			doc.Restore(snap)
			pins.Reload()
			cw.Refresh()
		}, win)
		d.SetFilter(storage.NewExtensionFileFilter([]string{".canvas"}))
		d.Show()
	})

	saveRaster := fyne.NewMenuItem("Save Raster Image", func() {
		exportTo(win, ".png", func(path string) (bool, error) { return export.PNG(doc, path) }, log)
	})
	saveVector := fyne.NewMenuItem("Save Vector Data", func() {
		exportTo(win, ".svg", func(path string) (bool, error) { return export.SVG(doc, path) }, log)
	})
	savePDF := fyne.NewMenuItem("Save PDF", func() {
		exportTo(win, ".pdf", func(path string) (bool, error) { return export.PDF(doc, path) }, log)
	})

	saveMulti := fyne.NewMenuItem("Save Multi (Raster/Vector)", func() {
		num, written, err := export.Multi(doc, ".")
		if err != nil {
			log.Error().Err(err).Msg("multi export failed")
			dialog.ShowError(err, win)
			return
		}
		if !written {
			log.Debug().Msg("nothing to export")
			return
		}
		log.Info().Int("index", num).Msg("multi export written")
	})

	restart := fyne.NewMenuItem("Restart", onRestart)

	clear := fyne.NewMenuItem("Clear Canvas", func() {
		doc.Clear()
		cw.Refresh()
	})

	toggleBG := fyne.NewMenuItem("Toggle Background", func() {
		doc.ToggleBackground()
		cw.Refresh()
	})

	fileMenu := fyne.NewMenu("File",
		saveCanvas, openCanvas,
		fyne.NewMenuItemSeparator(),
		saveRaster, saveVector, savePDF, saveMulti,
		fyne.NewMenuItemSeparator(),
		restart, clear,
	)
	viewMenu := fyne.NewMenu("View", toggleBG)
	return fyne.NewMainMenu(fileMenu, viewMenu)
}

// exportTo runs a path-based exporter behind a save dialog. Exporters write
// atomically themselves, so the dialog's writer is only used to pick the
// target path.
func exportTo(win fyne.Window, ext string, run func(string) (bool, error), log zerolog.Logger) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		path := wc.URI().Path()
		wc.Close()
		written, err := run(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("export failed")
			dialog.ShowError(err, win)
			return
		}
		if !written {
			// The dialog writer already created an empty file; an empty
			// canvas must not leave one behind.
			os.Remove(path)
			log.Debug().Str("path", path).Msg("nothing to export")
			return
		}
		log.Info().Str("path", path).Msg("export written")
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}
