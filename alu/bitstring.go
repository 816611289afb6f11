// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package alu

import (
	"strings"
)

const (
	MIN_WIDTH     = 1  // Narrowest supported word.
	MAX_WIDTH     = 64 // Widest supported word.
	DEFAULT_WIDTH = 16 // Width of the calculator abaci.
)

// BitString is a fixed width binary number, most significant bit first.
type BitString string

// CheckWidth verifies that width is a supported word size.
func CheckWidth(width int) (err error) {
	if width < MIN_WIDTH || width > MAX_WIDTH {
		err = ErrWidthRange
	}
	return
}

// Parse strictly parses a bit string of exactly width bits.
func Parse(text string, width int) (bs BitString, err error) {
	err = CheckWidth(width)
	if err != nil {
		return
	}

	if len(text) != width {
		err = ErrWidth
		return
	}

	for n := range len(text) {
		if text[n] != '0' && text[n] != '1' {
			err = ErrBitString
			return
		}
	}

	bs = BitString(text)
	return
}

// Sanitize strips every character that is not a binary digit, keeps
// at most the first width digits, and left pads with zeros.
func Sanitize(text string, width int) (bs BitString, err error) {
	err = CheckWidth(width)
	if err != nil {
		return
	}

	var sb strings.Builder
	for n := range len(text) {
		if sb.Len() == width {
			break
		}
		if text[n] == '0' || text[n] == '1' {
			sb.WriteByte(text[n])
		}
	}

	bs = BitString(strings.Repeat("0", width-sb.Len()) + sb.String())
	return
}

// FromUint returns value modulo 2^width as a bit string.
func FromUint(value uint64, width int) (bs BitString, err error) {
	err = CheckWidth(width)
	if err != nil {
		return
	}

	out := make([]byte, width)
	for n := range width {
		out[width-1-n] = '0' + byte((value>>n)&1)
	}

	bs = BitString(out)
	return
}

// Zero returns the all-zero bit string of width bits.
func Zero(width int) BitString {
	return BitString(strings.Repeat("0", width))
}

// Width is the number of bits.
func (bs BitString) Width() int {
	return len(bs)
}

// Uint returns the unsigned value.
func (bs BitString) Uint() (value uint64) {
	for n := range len(bs) {
		value <<= 1
		if bs[n] == '1' {
			value |= 1
		}
	}
	return
}

// Bit returns the bit of weight 2^pos, or 0 when pos is out of range.
func (bs BitString) Bit(pos int) int {
	if pos < 0 || pos >= len(bs) {
		return 0
	}
	if bs[len(bs)-1-pos] == '1' {
		return 1
	}
	return 0
}

// IsZero is true when no bit is set.
func (bs BitString) IsZero() bool {
	return strings.IndexByte(string(bs), '1') < 0
}

// Shl shifts left by count bits, dropping bits shifted out of the word.
func (bs BitString) Shl(count int) BitString {
	width := len(bs)
	if count >= width {
		return Zero(width)
	}
	return bs[count:] + Zero(count)
}

// Extend left pads to width bits.
func (bs BitString) Extend(width int) BitString {
	if len(bs) >= width {
		return bs
	}
	return Zero(width-len(bs)) + bs
}

// Truncate keeps the low width bits.
func (bs BitString) Truncate(width int) BitString {
	if len(bs) <= width {
		return bs
	}
	return bs[len(bs)-width:]
}

// Compare orders two equal width bit strings numerically.
func (bs BitString) Compare(other BitString) int {
	return strings.Compare(string(bs), string(other))
}

func (bs BitString) String() string {
	return string(bs)
}

// checkOperands verifies both operands are width bit strings.
func checkOperands(width int, a, b BitString) (err error) {
	err = CheckWidth(width)
	if err != nil {
		return
	}

	for _, op := range []struct {
		name  string
		value BitString
	}{{"a", a}, {"b", b}} {
		_, err = Parse(string(op.value), width)
		if err != nil {
			err = &ErrOperand{Name: op.name, Err: err}
			return
		}
	}

	return
}
