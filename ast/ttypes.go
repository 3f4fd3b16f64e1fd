package ast

// Op is an assignment operator
type Op int

const (
	OpSet Op = iota // The ‘=’ operator
	OpAdd           // The ‘+=’ operator
	OpSub           // The ‘-=’ operator
	OpMul           // The ‘*=’ operator
)

var ops = map[string]Op{
	"=":  OpSet,
	"+=": OpAdd,
	"-=": OpSub,
	"*=": OpMul,
}

// LookupOp returns the operator spelled s
func LookupOp(s string) (Op, bool) {
	op, ok := ops[s]
	return op, ok
}

// IsCompound reports whether op combines the operand with the stored value
func (op Op) IsCompound() bool {
	return op != OpSet
}

func (op Op) String() string {
	switch op {
	case OpSet:
		return "="
	case OpAdd:
		return "+="
	case OpSub:
		return "-="
	case OpMul:
		return "*="
	}
	panic("unreachable")
}
