// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package calculator is the binary calculator demo: two input abaci, an
// operation and a result abacus, recalculated after every edit.
package calculator

import (
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/ezrec/abacus/abacus"
	"github.com/ezrec/abacus/alu"
	"github.com/ezrec/abacus/operand"
	"github.com/ezrec/abacus/translate"
)

var f = translate.From

var (
	ErrInput = errors.New(f("unknown input abacus"))
)

// Input selects one of the operand abaci.
type Input int

const (
	INPUT_A = Input(0) // A
	INPUT_B = Input(1) // B
)

func (in Input) String() string {
	switch in {
	case INPUT_A:
		return "A"
	case INPUT_B:
		return "B"
	}
	return "?"
}

// Calculator state: operand abaci, operation and result.
type Calculator struct {
	Log *zap.Logger // Never nil after New.

	Width  int
	A      *abacus.Binary
	B      *abacus.Binary
	Result *abacus.Binary
	Op     alu.Op

	Last *alu.Result // Last successful calculation, nil after an error.
	Err  error       // Error of the last calculation.
}

// New creates a calculator with cleared abaci of width bits.
func New(width int, log *zap.Logger) (calc *Calculator, err error) {
	if log == nil {
		log = zap.NewNop()
	}

	calc = &Calculator{Log: log, Width: width, Op: alu.OP_ADD}

	for _, ab := range []**abacus.Binary{&calc.A, &calc.B, &calc.Result} {
		*ab, err = abacus.NewBinary(width)
		if err != nil {
			calc = nil
			return
		}
	}

	calc.Calculate()
	return
}

func (calc *Calculator) input(in Input) (ab *abacus.Binary, err error) {
	switch in {
	case INPUT_A:
		ab = calc.A
	case INPUT_B:
		ab = calc.B
	default:
		err = ErrInput
	}
	return
}

// SetInput parses text into an operand abacus and recalculates. The
// canonical bit string is returned so the caller can echo it back.
func (calc *Calculator) SetInput(in Input, text string) (bs alu.BitString, err error) {
	ab, err := calc.input(in)
	if err != nil {
		return
	}

	bs, err = operand.Parse(text, calc.Width)
	if err != nil {
		return
	}

	ab.Set(string(bs))
	calc.Calculate()
	return
}

// Toggle flips a bead on an operand abacus and recalculates.
func (calc *Calculator) Toggle(in Input, rod int) (err error) {
	ab, err := calc.input(in)
	if err != nil {
		return
	}

	err = ab.Toggle(rod)
	if err != nil {
		return
	}

	calc.Calculate()
	return
}

// SetOp selects the operation and recalculates.
func (calc *Calculator) SetOp(op alu.Op) (err error) {
	if _, err = alu.ParseOp(op.Name()); err != nil {
		return
	}

	calc.Op = op
	calc.Calculate()
	return
}

// Calculate applies the operation to the operand abaci and shows the
// result. Division by zero clears the result abacus.
func (calc *Calculator) Calculate() (res *alu.Result, err error) {
	a, b := calc.A.Value(), calc.B.Value()

	res, err = alu.Apply(calc.Op, a, b, calc.Width)
	calc.Last, calc.Err = res, err
	if err != nil {
		calc.Result.Clear()
		calc.Log.Debug("calculate",
			zap.Stringer("a", a), zap.Stringer("op", calc.Op), zap.Stringer("b", b),
			zap.Error(err))
		return
	}

	calc.Result.Set(string(res.Result))
	calc.Log.Debug("calculate",
		zap.Stringer("a", a), zap.Stringer("op", calc.Op), zap.Stringer("b", b),
		zap.Stringer("result", res.Result), zap.Int("steps", len(res.Steps)))
	return
}

// Summary describes the last calculation for display.
func (calc *Calculator) Summary() (lines []string) {
	return Summarize(calc.Op, calc.A.Value(), calc.B.Value(), calc.Last, calc.Err)
}

// Summarize describes a calculation. res may be nil when err is set.
func Summarize(op alu.Op, a, b alu.BitString, res *alu.Result, err error) (lines []string) {
	lines = append(lines, f("calculation: %v %v %v", a, op, b))

	if err != nil {
		lines = append(lines, f("error: %v", err))
		return
	}

	lines = append(lines,
		f("result (binary): %v", res.Result),
		f("result (decimal): %v", strconv.FormatUint(res.Result.Uint(), 10)))

	if res.Op == alu.OP_DIV {
		lines = append(lines,
			f("remainder (binary): %v", res.Remainder),
			f("remainder (decimal): %v", strconv.FormatUint(res.Remainder.Uint(), 10)))
	}

	return
}
