package calculator

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/abacus/abacus"
	"github.com/ezrec/abacus/alu"
)

func TestCalculator(t *testing.T) {
	assert := assert.New(t)

	calc, err := New(16, nil)
	assert.NoError(err)
	assert.NotNil(calc.Log)
	assert.Equal(alu.OP_ADD, calc.Op)
	assert.NoError(calc.Err)
	assert.Equal(alu.Zero(16), calc.Result.Value())

	bs, err := calc.SetInput(INPUT_A, "1010")
	assert.NoError(err)
	assert.Equal(alu.BitString("0000000000001010"), bs)

	_, err = calc.SetInput(INPUT_B, "$(3)")
	assert.NoError(err)
	assert.Equal(alu.BitString("0000000000001101"), calc.Result.Value())

	assert.NoError(calc.SetOp(alu.OP_MUL))
	assert.Equal(uint64(30), calc.Result.Value().Uint())

	assert.NoError(calc.Toggle(INPUT_B, 2))
	assert.Equal(uint64(70), calc.Result.Value().Uint())
	assert.NotNil(calc.Last)
	assert.Equal(alu.OP_MUL, calc.Last.Op)
}

func TestCalculator_DivideByZero(t *testing.T) {
	assert := assert.New(t)

	calc, err := New(8, nil)
	assert.NoError(err)

	_, err = calc.SetInput(INPUT_A, "111")
	assert.NoError(err)
	assert.NoError(calc.SetOp(alu.OP_DIV))
	assert.ErrorIs(calc.Err, alu.ErrDivisionByZero)
	assert.Nil(calc.Last)
	assert.Equal(alu.Zero(8), calc.Result.Value())

	lines := calc.Summary()
	assert.Len(lines, 2)
	assert.Equal(f("error: %v", alu.ErrDivisionByZero), lines[1])

	_, err = calc.SetInput(INPUT_B, "10")
	assert.NoError(err)
	assert.NoError(calc.Err)
	assert.Equal(alu.BitString("00000011"), calc.Result.Value())

	lines = calc.Summary()
	assert.Equal([]string{
		f("calculation: %v %v %v", alu.BitString("00000111"), alu.OP_DIV, alu.BitString("00000010")),
		f("result (binary): %v", alu.BitString("00000011")),
		f("result (decimal): %v", strconv.Itoa(3)),
		f("remainder (binary): %v", alu.BitString("00000001")),
		f("remainder (decimal): %v", strconv.Itoa(1)),
	}, lines)
}

func TestCalculator_Errors(t *testing.T) {
	assert := assert.New(t)

	calc, err := New(4, nil)
	assert.NoError(err)

	_, err = calc.SetInput(Input(7), "1")
	assert.ErrorIs(err, ErrInput)
	assert.ErrorIs(calc.Toggle(INPUT_A, 4), abacus.ErrRod)
	assert.ErrorIs(calc.Toggle(Input(-1), 0), ErrInput)
	assert.ErrorIs(calc.SetOp(alu.Op(9)), alu.ErrOp)

	_, err = New(0, nil)
	assert.ErrorIs(err, alu.ErrWidthRange)
}
