package alu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		width int
		err   error
	}){
		{"0000000000001010", 16, nil},
		{"1", 1, nil},
		{"101", 4, ErrWidth},
		{"10a1", 4, ErrBitString},
		{"", 0, ErrWidthRange},
		{"0", 65, ErrWidthRange},
	}

	for _, entry := range table {
		bs, err := Parse(entry.text, entry.width)
		if entry.err != nil {
			assert.True(errors.Is(err, entry.err), entry.text)
			continue
		}
		assert.NoError(err, entry.text)
		assert.Equal(BitString(entry.text), bs)
		assert.Equal(entry.width, bs.Width())
	}
}

func TestSanitize(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text   string
		width  int
		expect BitString
	}){
		{"", 4, "0000"},
		{"1", 4, "0001"},
		{"1 0-1x", 4, "0101"},
		{"123101", 4, "1101"},
		{"111111", 4, "1111"},
		{"10000000000000001", 16, "1000000000000000"},
	}

	for _, entry := range table {
		bs, err := Sanitize(entry.text, entry.width)
		assert.NoError(err, entry.text)
		assert.Equal(entry.expect, bs, entry.text)
	}

	_, err := Sanitize("1", 0)
	assert.ErrorIs(err, ErrWidthRange)
}

func TestFromUint(t *testing.T) {
	assert := assert.New(t)

	bs, err := FromUint(13, 8)
	assert.NoError(err)
	assert.Equal(BitString("00001101"), bs)
	assert.Equal(uint64(13), bs.Uint())

	bs, err = FromUint(0x1ff, 8)
	assert.NoError(err)
	assert.Equal(BitString("11111111"), bs)

	bs, err = FromUint(^uint64(0), 64)
	assert.NoError(err)
	assert.Equal(^uint64(0), bs.Uint())
}

func TestBitString_Bits(t *testing.T) {
	assert := assert.New(t)

	bs := BitString("1010")
	assert.Equal(0, bs.Bit(0))
	assert.Equal(1, bs.Bit(1))
	assert.Equal(0, bs.Bit(2))
	assert.Equal(1, bs.Bit(3))
	assert.Equal(0, bs.Bit(4))
	assert.Equal(0, bs.Bit(-1))

	assert.Equal(BitString("0100"), bs.Shl(1))
	assert.Equal(BitString("0000"), bs.Shl(4))
	assert.Equal(BitString("001010"), bs.Extend(6))
	assert.Equal(BitString("10"), bs.Truncate(2))
	assert.False(bs.IsZero())
	assert.True(Zero(3).IsZero())
	assert.Equal(1, bs.Compare("0111"))
	assert.Equal(-1, bs.Compare("1011"))
	assert.Equal(0, bs.Compare("1010"))
}
