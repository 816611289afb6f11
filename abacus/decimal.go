// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package abacus

import (
	"strings"
)

const (
	RODS          = 7          // Rods on the decimal abacus.
	ONE_BEADS     = 4          // One beads per rod.
	MODULUS       = 10_000_000 // 10^RODS.
	NEGATIVE_FROM = 5_000_000  // Readings from here up are negative.
	MAX_MAGNITUDE = MODULUS - 1
)

// Rod is a single decimal digit.
type Rod struct {
	Five bool // Five bead touching the beam.
	Ones int  // One beads touching the beam, 0 to 4.
}

// Digit is the value of the rod.
func (rod Rod) Digit() (digit int) {
	if rod.Five {
		digit = 5
	}
	digit += rod.Ones
	return
}

func rodOf(digit int) Rod {
	return Rod{Five: digit >= 5, Ones: digit % 5}
}

// Decimal is a seven rod soroban. Rod 0 is the ones place.
type Decimal struct {
	rods [RODS]Rod
}

// NewDecimal creates a cleared decimal abacus.
func NewDecimal() *Decimal {
	return &Decimal{}
}

func checkRod(rod int) (err error) {
	if rod < 0 || rod >= RODS {
		err = ErrRod
	}
	return
}

// ToggleFive flips the five bead of a rod.
func (ab *Decimal) ToggleFive(rod int) (err error) {
	err = checkRod(rod)
	if err != nil {
		return
	}

	ab.rods[rod].Five = !ab.rods[rod].Five
	return
}

// ToggleOne moves one beads of a rod: beads 0 to index touch the beam,
// the rest fall away. Touching the topmost active bead lowers it.
func (ab *Decimal) ToggleOne(rod int, index int) (err error) {
	err = checkRod(rod)
	if err != nil {
		return
	}
	if index < 0 || index >= ONE_BEADS {
		err = ErrBead
		return
	}

	r := &ab.rods[rod]
	if r.Ones == index+1 {
		r.Ones = index
	} else {
		r.Ones = index + 1
	}

	return
}

// Set shows n. Negative numbers are stored in ten-million's complement.
// An out of range n leaves the abacus untouched.
func (ab *Decimal) Set(n int) (err error) {
	if n < -MAX_MAGNITUDE || n > MAX_MAGNITUDE {
		err = ErrRange
		return
	}

	if n < 0 {
		n += MODULUS
	}

	for rod := range RODS {
		ab.rods[rod] = rodOf(n % 10)
		n /= 10
	}

	return
}

// Value reads the abacus.
func (ab *Decimal) Value() (n int) {
	scale := 1
	for _, rod := range ab.rods {
		n += rod.Digit() * scale
		scale *= 10
	}

	if n >= NEGATIVE_FROM {
		n -= MODULUS
	}

	return
}

// Clear drops every bead away from the beam.
func (ab *Decimal) Clear() {
	ab.rods = [RODS]Rod{}
}

// Rods returns a copy of the rods, ones place first.
func (ab *Decimal) Rods() [RODS]Rod {
	return ab.rods
}

// Digit returns the digit shown on a rod.
func (ab *Decimal) Digit(rod int) (digit int, err error) {
	err = checkRod(rod)
	if err != nil {
		return
	}

	digit = ab.rods[rod].Digit()
	return
}

var placeNames = [RODS]string{
	"ones place",
	"tens place",
	"hundreds place",
	"thousands place",
	"ten-thousands place",
	"hundred-thousands place",
	"millions place",
}

const (
	BEAD_ACTIVE   = "●"
	BEAD_INACTIVE = "○"
)

func beadMark(active bool) string {
	if active {
		return BEAD_ACTIVE
	}
	return BEAD_INACTIVE
}

// Describe reports the beads of every rod, ones place first.
func (ab *Decimal) Describe() (lines []string) {
	for n, rod := range ab.rods {
		lines = append(lines, f("%v: %d (five bead: %v, one beads: %d)",
			f(placeNames[n]), rod.Digit(), beadMark(rod.Five), rod.Ones))
	}
	return
}

// String draws the abacus, most significant rod first.
func (ab *Decimal) String() string {
	var upper, lower strings.Builder
	for n := RODS - 1; n >= 0; n-- {
		rod := ab.rods[n]
		upper.WriteString(beadMark(rod.Five))
		lower.WriteString(strings.Repeat(BEAD_ACTIVE, rod.Ones))
		lower.WriteString(strings.Repeat(BEAD_INACTIVE, ONE_BEADS-rod.Ones))
		if n > 0 {
			upper.WriteString("    ")
			lower.WriteString(" ")
		}
	}
	return upper.String() + "\n" + lower.String()
}
