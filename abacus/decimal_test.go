package abacus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimal_Set(t *testing.T) {
	assert := assert.New(t)

	table := []int{0, 1, 42, 1234567, 4999999, -1, -42, -4999999, -5000000}

	ab := NewDecimal()
	for _, n := range table {
		assert.NoError(ab.Set(n), n)
		assert.Equal(n, ab.Value(), n)
	}
}

func TestDecimal_Complement(t *testing.T) {
	assert := assert.New(t)

	ab := NewDecimal()

	assert.NoError(ab.Set(-42))
	rods := ab.Rods()
	// 10,000,000 - 42 = 9,999,958
	assert.Equal(8, rods[0].Digit())
	assert.Equal(5, rods[1].Digit())
	for n := 2; n < RODS; n++ {
		assert.Equal(9, rods[n].Digit())
	}

	// Large positive values alias into the negative half.
	assert.NoError(ab.Set(6000000))
	assert.Equal(-4000000, ab.Value())
}

func TestDecimal_Range(t *testing.T) {
	assert := assert.New(t)

	ab := NewDecimal()
	assert.NoError(ab.Set(1234567))

	assert.ErrorIs(ab.Set(10000000), ErrRange)
	assert.ErrorIs(ab.Set(-10000000), ErrRange)
	assert.Equal(1234567, ab.Value())

	assert.NoError(ab.Set(9999999))
	assert.NoError(ab.Set(-9999999))
}

func TestDecimal_Toggle(t *testing.T) {
	assert := assert.New(t)

	ab := NewDecimal()

	assert.NoError(ab.ToggleFive(0))
	assert.Equal(5, ab.Value())

	assert.NoError(ab.ToggleOne(0, 2))
	assert.Equal(8, ab.Value())

	// Lower beads follow the touched one.
	assert.NoError(ab.ToggleOne(0, 0))
	assert.Equal(6, ab.Value())

	// The topmost active bead drops.
	assert.NoError(ab.ToggleOne(0, 0))
	assert.Equal(5, ab.Value())

	assert.NoError(ab.ToggleOne(3, 3))
	assert.Equal(4005, ab.Value())

	digit, err := ab.Digit(3)
	assert.NoError(err)
	assert.Equal(4, digit)

	assert.ErrorIs(ab.ToggleFive(7), ErrRod)
	assert.ErrorIs(ab.ToggleOne(-1, 0), ErrRod)
	assert.ErrorIs(ab.ToggleOne(0, 4), ErrBead)
	_, err = ab.Digit(9)
	assert.ErrorIs(err, ErrRod)

	ab.Clear()
	assert.Equal(0, ab.Value())
}

func TestDecimal_Describe(t *testing.T) {
	assert := assert.New(t)

	ab := NewDecimal()
	assert.NoError(ab.Set(7))

	lines := ab.Describe()
	assert.Len(lines, RODS)
	assert.Equal(f("%v: %d (five bead: %v, one beads: %d)", f("ones place"), 7, BEAD_ACTIVE, 2), lines[0])
	assert.Equal(f("%v: %d (five bead: %v, one beads: %d)", f("millions place"), 0, BEAD_INACTIVE, 0), lines[6])
}

func TestDecimal_String(t *testing.T) {
	assert := assert.New(t)

	ab := NewDecimal()
	assert.NoError(ab.Set(6))

	expect := "○    ○    ○    ○    ○    ○    ●\n" +
		"○○○○ ○○○○ ○○○○ ○○○○ ○○○○ ○○○○ ●○○○"
	assert.Equal(expect, ab.String())
}
