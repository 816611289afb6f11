// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package operand turns user input into calculator operands.
//
// Three forms are accepted:
//
//	1101          raw binary; non-binary characters are dropped
//	0x0d, 0o15    a prefixed integer literal (0b, 0o, 0x)
//	$(10 + 3)     a starlark expression evaluated to an integer
//
// Every form is reduced modulo 2^width.
package operand

import (
	"errors"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/abacus/alu"
	"github.com/ezrec/abacus/translate"
)

var f = translate.From

var (
	ErrEmpty = errors.New(f("empty operand"))
)

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// Parse converts text into a width bit string.
func Parse(text string, width int) (bs alu.BitString, err error) {
	err = alu.CheckWidth(width)
	if err != nil {
		return
	}

	text = strings.TrimSpace(text)

	switch {
	case strings.HasPrefix(text, "$(") && strings.HasSuffix(text, ")"):
		var value int64
		value, err = Eval(text[2:len(text)-1], width)
		if err != nil {
			return
		}
		bs, err = alu.FromUint(uint64(value), width)
	case hasRadixPrefix(text):
		var value uint64
		value, err = parseLiteral(text)
		if err != nil {
			return
		}
		bs, err = alu.FromUint(value, width)
	default:
		bs, err = alu.Sanitize(text, width)
	}

	return
}

func hasRadixPrefix(text string) bool {
	text = strings.TrimPrefix(text, "-")
	if len(text) < 3 || text[0] != '0' {
		return false
	}
	switch text[1] {
	case 'b', 'B', 'o', 'O', 'x', 'X':
		return true
	}
	return false
}

// parseLiteral parses a prefixed literal; negatives wrap as two's complement.
func parseLiteral(text string) (value uint64, err error) {
	negative := strings.HasPrefix(text, "-")
	value, err = strconv.ParseUint(strings.TrimPrefix(text, "-"), 0, 64)
	if err != nil {
		err = ErrParseNumber(text)
		return
	}
	if negative {
		value = -value
	}
	return
}

// Eval evaluates a starlark expression. WIDTH and MASK are predeclared.
func Eval(expr string, width int) (value int64, err error) {
	if strings.TrimSpace(expr) == "" {
		err = ErrEmpty
		return
	}

	mask := ^uint64(0)
	if width < 64 {
		mask = (uint64(1) << width) - 1
	}

	thread := starlark.Thread{Name: "operand"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"WIDTH": starlark.MakeInt(width),
		"MASK":  starlark.MakeUint64(mask),
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "operand", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	// Reduce first so values up to MASK survive the int64 conversion.
	if width < 64 {
		st_int = st_int.And(starlark.MakeUint64(mask))
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		st_uint64, uok := st_int.Uint64()
		if !uok {
			err = ErrParseExpression(expr)
			return
		}
		st_int64 = int64(st_uint64)
	}

	value = st_int64
	return
}
