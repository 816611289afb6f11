// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package alu

// rippleAdd adds two equal width words from the least significant bit.
// A trace line per bit is appended to trace when it is not nil.
func rippleAdd(a, b BitString, trace *[]string) (sum BitString, carry int) {
	width := len(a)
	out := make([]byte, width)
	for pos := range width {
		ai, bi := a.Bit(pos), b.Bit(pos)
		total := ai + bi + carry
		out[width-1-pos] = '0' + byte(total%2)
		if trace != nil {
			*trace = append(*trace, f("bit %d: %d + %d + carry %d = %d, carry %d",
				pos, ai, bi, carry, total%2, total/2))
		}
		carry = total / 2
	}

	sum = BitString(out)
	return
}

// rippleSub subtracts two equal width words from the least significant bit.
func rippleSub(a, b BitString, trace *[]string) (diff BitString, borrow int) {
	width := len(a)
	out := make([]byte, width)
	for pos := range width {
		ai, bi := a.Bit(pos), b.Bit(pos)
		d := ai - bi - borrow
		next := 0
		if d < 0 {
			d += 2
			next = 1
		}
		out[width-1-pos] = '0' + byte(d)
		if trace != nil {
			*trace = append(*trace, f("bit %d: %d - %d - borrow %d = %d, borrow %d",
				pos, ai, bi, borrow, d, next))
		}
		borrow = next
	}

	diff = BitString(out)
	return
}

// Add returns a + b modulo 2^width.
func Add(a, b BitString, width int) (res *Result, err error) {
	err = checkOperands(width, a, b)
	if err != nil {
		return
	}

	res = &Result{Op: OP_ADD, Width: width, A: a, B: b}

	sum, carry := rippleAdd(a, b, &res.Steps)
	if carry != 0 {
		res.Steps = append(res.Steps, f("overflow: final carry discarded"))
	}

	res.Result = sum
	return
}

// Subtract returns a - b modulo 2^width.
func Subtract(a, b BitString, width int) (res *Result, err error) {
	err = checkOperands(width, a, b)
	if err != nil {
		return
	}

	res = &Result{Op: OP_SUB, Width: width, A: a, B: b}

	diff, borrow := rippleSub(a, b, &res.Steps)
	if borrow != 0 {
		res.Steps = append(res.Steps, f("underflow: final borrow discarded"))
	}

	res.Result = diff
	return
}

// Multiply returns a * b modulo 2^width, by shift and add.
func Multiply(a, b BitString, width int) (res *Result, err error) {
	err = checkOperands(width, a, b)
	if err != nil {
		return
	}

	res = &Result{Op: OP_MUL, Width: width, A: a, B: b}

	acc := Zero(width)
	for pos := range width {
		if b.Bit(pos) == 0 {
			res.Steps = append(res.Steps, f("bit %d of multiplier is 0: skip", pos))
			continue
		}

		partial := a.Shl(pos)
		var sum *Result
		sum, err = Add(acc, partial, width)
		if err != nil {
			return
		}
		acc = sum.Result

		res.Steps = append(res.Steps,
			f("bit %d of multiplier is 1: add partial product %v", pos, partial),
			f("running sum: %v", acc))
	}

	res.Result = acc
	return
}

// Divide returns the quotient and remainder of a / b by restoring division.
// An all-zero divisor fails with ErrDivisionByZero.
func Divide(a, b BitString, width int) (res *Result, err error) {
	err = checkOperands(width, a, b)
	if err != nil {
		return
	}

	if b.IsZero() {
		err = ErrDivisionByZero
		return
	}

	res = &Result{Op: OP_DIV, Width: width, A: a, B: b}

	// The remainder is one bit wider than the word so that the shift
	// before each trial subtraction never loses a bit.
	divisor := b.Extend(width + 1)
	rem := Zero(width + 1)
	quotient := make([]byte, width)

	for round := range width {
		pos := width - 1 - round
		rem = rem.Shl(1)
		if a.Bit(pos) == 1 {
			rem = rem[:width] + "1"
		}
		res.Steps = append(res.Steps, f("round %d: bring down bit %d, remainder %v", round+1, a.Bit(pos), rem))

		trial, borrow := rippleSub(rem, divisor, nil)
		if borrow == 0 {
			rem = trial
			quotient[round] = '1'
			res.Steps = append(res.Steps, f("remainder >= divisor %v: subtract, quotient bit 1, remainder %v", b, rem.Truncate(width)))
		} else {
			quotient[round] = '0'
			res.Steps = append(res.Steps, f("remainder < divisor %v: restore, quotient bit 0", b))
		}
	}

	res.Result = BitString(quotient)
	res.Remainder = rem.Truncate(width)
	return
}

// Apply performs op on a and b.
func Apply(op Op, a, b BitString, width int) (res *Result, err error) {
	switch op {
	case OP_ADD:
		return Add(a, b, width)
	case OP_SUB:
		return Subtract(a, b, width)
	case OP_MUL:
		return Multiply(a, b, width)
	case OP_DIV:
		return Divide(a, b, width)
	}

	err = ErrOp
	return
}
