package ast

// Operand is the right-hand side of an assignment
type Operand interface {
	isOperand()
}

// Text is a double-quoted string literal with the quotes removed
type Text string

// Int is an integer literal
type Int int

// Ref names another variable
type Ref string

func (_ Text) isOperand() {}
func (_ Int) isOperand()  {}
func (_ Ref) isOperand()  {}
