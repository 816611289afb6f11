package alu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzAlu(f *testing.F) {
	for _, width := range []uint8{1, 4, 8, 16, 33, 64} {
		f.Add(uint64(0), uint64(0), width)
		f.Add(uint64(10), uint64(3), width)
		f.Add(^uint64(0), uint64(1), width)
		f.Add(uint64(0x8000), uint64(0xffff), width)
	}

	f.Fuzz(func(t *testing.T, x uint64, y uint64, w uint8) {
		assert := assert.New(t)

		width := int(w)%MAX_WIDTH + 1
		mask := ^uint64(0)
		if width < 64 {
			mask = (uint64(1) << width) - 1
		}

		a, err := FromUint(x, width)
		assert.NoError(err)
		b, err := FromUint(y, width)
		assert.NoError(err)

		x &= mask
		y &= mask

		res, err := Add(a, b, width)
		assert.NoError(err)
		assert.Equal((x+y)&mask, res.Result.Uint())
		assert.Equal(width, res.Result.Width())

		res, err = Subtract(a, b, width)
		assert.NoError(err)
		assert.Equal((x-y)&mask, res.Result.Uint())
		assert.Equal(width, res.Result.Width())

		res, err = Multiply(a, b, width)
		assert.NoError(err)
		assert.Equal((x*y)&mask, res.Result.Uint())
		assert.Equal(width, res.Result.Width())

		res, err = Divide(a, b, width)
		if y == 0 {
			assert.ErrorIs(err, ErrDivisionByZero)
			return
		}
		assert.NoError(err)
		q, r := res.Result.Uint(), res.Remainder.Uint()
		assert.Equal(x/y, q)
		assert.Equal(x%y, r)
		assert.Equal(x, (y*q+r)&mask)
		assert.Less(r, y)
		assert.Equal(width, res.Remainder.Width())
	})
}
