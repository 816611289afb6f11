package abacus

import (
	"errors"

	"github.com/ezrec/abacus/translate"
)

var f = translate.From

var (
	ErrRange = errors.New(f("enter a valid number (-9999999 ~ 9999999)"))
	ErrRod   = errors.New(f("rod out of range"))
	ErrBead  = errors.New(f("bead out of range"))
)
