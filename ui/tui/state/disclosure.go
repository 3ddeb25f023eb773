package state

import "fmt"

// Mode controls how many cards may be open at once.
type Mode int

const (
	ModeSingle Mode = iota // opening a card closes the previous one
	ModeMulti              // cards open and close independently
)

// Disclosure tracks which accordion cards are expanded. Keys are compared by
// their string representation, so numeric and string ids that print the same
// refer to the same card.
type Disclosure struct {
	mode Mode
	open map[string]struct{}
}

func NewDisclosure(mode Mode) *Disclosure {
	return &Disclosure{mode: mode, open: make(map[string]struct{})}
}

func key(id any) string {
	return fmt.Sprint(id)
}

// IsOpen reports whether the card for id is expanded.
func (d *Disclosure) IsOpen(id any) bool {
	_, ok := d.open[key(id)]
	return ok
}

// Toggle flips the card for id. In ModeSingle, opening closes everything else.
func (d *Disclosure) Toggle(id any) {
	if d.IsOpen(id) {
		d.Close(id)
		return
	}
	d.Open(id)
}

// Open expands the card for id.
func (d *Disclosure) Open(id any) {
	if d.mode == ModeSingle {
		d.open = make(map[string]struct{})
	}
	d.open[key(id)] = struct{}{}
}

// Close collapses the card for id.
func (d *Disclosure) Close(id any) {
	delete(d.open, key(id))
}

// OpenAll expands every given card. In ModeSingle only the last id wins.
func (d *Disclosure) OpenAll(ids []any) {
	for _, id := range ids {
		d.Open(id)
	}
}

// CloseAll collapses everything.
func (d *Disclosure) CloseAll() {
	d.open = make(map[string]struct{})
}

// OpenCount returns how many cards are expanded.
func (d *Disclosure) OpenCount() int {
	return len(d.open)
}
