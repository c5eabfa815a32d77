package document

import (
	"github.com/gogpu/gg"
	"github.com/google/uuid"
)

// DefaultPinName is the pin every fresh registry starts with, anchored at
// the scene origin.
const DefaultPinName = "Default Pin"

// Pin is a named, navigable location on the canvas. Names are not unique;
// the ID is what keeps duplicate-named pins individually addressable in
// the side panel.
type Pin struct {
	ID   string
	Name string
	Pos  gg.Point
}

// PinRegistry is an ordered list of pins. A fresh registry contains the
// default pin until a loaded file replaces the list.
type PinRegistry struct {
	pins []Pin
}

func NewPinRegistry() *PinRegistry {
	r := &PinRegistry{}
	r.Add(DefaultPinName, gg.Pt(0, 0))
	return r
}

// Add appends a pin. Duplicate names are permitted.
func (r *PinRegistry) Add(name string, pos gg.Point) Pin {
	p := Pin{ID: uuid.NewString(), Name: name, Pos: pos}
	r.pins = append(r.pins, p)
	return p
}

// Remove drops every pin with the given name.
func (r *PinRegistry) Remove(name string) {
	kept := r.pins[:0]
	for _, p := range r.pins {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	r.pins = kept
}

// Pins returns the pins in insertion order.
func (r *PinRegistry) Pins() []Pin {
	out := make([]Pin, len(r.pins))
	copy(out, r.pins)
	return out
}

// Find returns the first pin with the given name.
func (r *PinRegistry) Find(name string) (Pin, bool) {
	for _, p := range r.pins {
		if p.Name == name {
			return p, true
		}
	}
	return Pin{}, false
}

// Replace swaps the whole list, as happens on canvas or settings load.
// Pins arriving from disk carry no IDs, so fresh ones are assigned.
func (r *PinRegistry) Replace(pins []Pin) {
	r.pins = make([]Pin, 0, len(pins))
	for _, p := range pins {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		r.pins = append(r.pins, p)
	}
}

// Len reports the number of pins.
func (r *PinRegistry) Len() int {
	return len(r.pins)
}
