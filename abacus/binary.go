// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package abacus

import (
	"github.com/ezrec/abacus/alu"
)

// Binary is a one-bead-per-rod abacus holding a width bit number.
type Binary struct {
	beads []bool // beads[0] is the least significant bit.
}

// NewBinary creates a cleared binary abacus.
func NewBinary(width int) (ab *Binary, err error) {
	err = alu.CheckWidth(width)
	if err != nil {
		return
	}

	ab = &Binary{beads: make([]bool, width)}
	return
}

// Width is the number of rods.
func (ab *Binary) Width() int {
	return len(ab.beads)
}

// Toggle flips the bead on a rod.
func (ab *Binary) Toggle(rod int) (err error) {
	if rod < 0 || rod >= len(ab.beads) {
		err = ErrRod
		return
	}

	ab.beads[rod] = !ab.beads[rod]
	return
}

// Set shows a bit string, most significant bit first. Short input is
// zero padded; long input keeps its low order bits. Any character other
// than '1' is an inactive bead.
func (ab *Binary) Set(bits string) {
	width := len(ab.beads)
	for rod := range width {
		pos := len(bits) - 1 - rod
		ab.beads[rod] = pos >= 0 && bits[pos] == '1'
	}
}

// Value reads the beads back, most significant bit first.
func (ab *Binary) Value() alu.BitString {
	width := len(ab.beads)
	out := make([]byte, width)
	for rod, active := range ab.beads {
		out[width-1-rod] = '0'
		if active {
			out[width-1-rod] = '1'
		}
	}
	return alu.BitString(out)
}

// Active reports whether the bead on a rod is set.
func (ab *Binary) Active(rod int) bool {
	if rod < 0 || rod >= len(ab.beads) {
		return false
	}
	return ab.beads[rod]
}

// Clear deactivates every bead.
func (ab *Binary) Clear() {
	clear(ab.beads)
}
