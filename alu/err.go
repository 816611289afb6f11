package alu

import (
	"errors"

	"github.com/ezrec/abacus/translate"
)

var f = translate.From

var (
	ErrDivisionByZero = errors.New(f("division by zero"))
	ErrBitString      = errors.New(f("not a bit string"))
	ErrWidth          = errors.New(f("bit width mismatch"))
	ErrWidthRange     = errors.New(f("bit width out of range"))
	ErrOp             = errors.New(f("unknown operation"))
)

// ErrOperand indicates which operand was rejected.
type ErrOperand struct {
	Name string
	Err  error
}

func (err *ErrOperand) Error() string {
	return f("operand %v: %v", err.Name, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}
