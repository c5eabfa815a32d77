package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"RasterVector/internal/document"
)

// PinsPanel is the side list of named canvas locations. Selecting a pin
// recenters the view on it; pins are added at the current view center.
type PinsPanel struct {
	content  fyne.CanvasObject
	list     *widget.List
	doc      *document.Document
	canvas   *CanvasWidget
	selected int
}

func NewPinsPanel(doc *document.Document, cw *CanvasWidget, win fyne.Window) *PinsPanel {
	p := &PinsPanel{doc: doc, canvas: cw, selected: -1}

	p.list = widget.NewList(
		func() int { return doc.Pins().Len() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			pins := doc.Pins().Pins()
			if id < len(pins) {
				obj.(*widget.Label).SetText(pins[id].Name)
			}
		},
	)
	p.list.OnSelected = func(id widget.ListItemID) {
		p.selected = id
		pins := doc.Pins().Pins()
		if id < len(pins) {
			cw.CenterOn(pins[id].Pos)
		}
	}
	p.list.OnUnselected = func(widget.ListItemID) { p.selected = -1 }

	addBtn := widget.NewButton("Add Pin", func() {
		entry := widget.NewEntry()
		items := []*widget.FormItem{widget.NewFormItem("Name", entry)}
		dialog.ShowForm("Add Pin", "Add", "Cancel", items, func(ok bool) {
			if !ok || entry.Text == "" {
				return
			}
			doc.Pins().Add(entry.Text, doc.View().Center)
			p.list.Refresh()
		}, win)
	})

	deleteBtn := widget.NewButton("Delete Pin", func() {
		pins := doc.Pins().Pins()
		if p.selected < 0 || p.selected >= len(pins) {
			return
		}
		// Removal is by name and drops every matching pin.
		doc.Pins().Remove(pins[p.selected].Name)
		p.list.UnselectAll()
		p.list.Refresh()
	})

	p.content = container.NewBorder(
		widget.NewLabel("Pins"),
		container.NewVBox(addBtn, deleteBtn),
		nil, nil,
		p.list,
	)
	return p
}

// Content returns the panel's root object for layout.
func (p *PinsPanel) Content() fyne.CanvasObject { return p.content }

// Reload refreshes the list after the pin set changed wholesale, as on
// canvas load.
func (p *PinsPanel) Reload() {
	p.list.UnselectAll()
	p.selected = -1
	p.list.Refresh()
}
