package alu

// Op is a calculator operation.
type Op int

const (
	OP_ADD = Op(0) // +
	OP_SUB = Op(1) // -
	OP_MUL = Op(2) // ×
	OP_DIV = Op(3) // ÷
)

var _op_symbol = [...]string{"+", "-", "×", "÷"}
var _op_name = [...]string{"add", "subtract", "multiply", "divide"}

// Ops lists every operation in menu order.
var Ops = []Op{OP_ADD, OP_SUB, OP_MUL, OP_DIV}

// String returns the operation symbol.
func (op Op) String() string {
	if op < 0 || int(op) >= len(_op_symbol) {
		return "?"
	}
	return _op_symbol[op]
}

// Name returns the operation name, as used on the command line.
func (op Op) Name() string {
	if op < 0 || int(op) >= len(_op_name) {
		return "?"
	}
	return _op_name[op]
}

// Next cycles to the following operation.
func (op Op) Next() Op {
	return Op((int(op) + 1) % len(Ops))
}

// ParseOp accepts an operation name or symbol.
func ParseOp(text string) (op Op, err error) {
	for n := range Ops {
		if text == _op_name[n] || text == _op_symbol[n] {
			op = Ops[n]
			return
		}
	}

	switch text {
	case "sub":
		op = OP_SUB
	case "mul", "*", "x":
		op = OP_MUL
	case "div", "/":
		op = OP_DIV
	default:
		err = ErrOp
	}

	return
}
