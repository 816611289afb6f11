package alu

import (
	"iter"
	"slices"
)

// Result of an operation, with the trace of how it was computed.
type Result struct {
	Op        Op
	Width     int
	A         BitString
	B         BitString
	Result    BitString
	Remainder BitString // Only set by OP_DIV.
	Steps     []string
}

// Lines iterates over the trace.
func (res *Result) Lines() iter.Seq[string] {
	return slices.Values(res.Steps)
}
