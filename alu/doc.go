// Package alu implements fixed-width binary arithmetic for the abacus
// calculator.
//
// Operands are BitStrings of N bits, most significant bit first. Every
// operation works bit by bit the way it would be done by hand (ripple
// carry, ripple borrow, shift-and-add, restoring division), wraps silently
// to N bits, and records a human readable trace of each step.
package alu
