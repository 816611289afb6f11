// Package abacus holds the bead state of the demo abaci.
//
// A Binary abacus has one bead per rod, rod 0 being the least significant
// bit. A Decimal abacus is a seven rod soroban: each rod has one five bead
// above the beam and four one beads below it. Values of 5,000,000 and over
// read as negative numbers in ten-million's complement.
//
// The state objects are owned by whoever renders them; they know nothing
// about the display surface.
package abacus
