// Package ast defines the statements a single line of ZPM can hold.
package ast

// Stmt is a statement parsed from one line
type Stmt interface {
	isStmt()
}

// Assign stores Operand into the variable Name according to Op
type Assign struct {
	Name    string
	Op      Op
	Operand Operand
}

// Print writes a variable to the output as ‘name=value’
type Print struct {
	Name string
}

// Loop executes Body Count times.  The body is kept as raw text; its
// statements are split and parsed anew on every iteration.
type Loop struct {
	Count int
	Body  string
}

func (_ Assign) isStmt() {}
func (_ Print) isStmt()  {}
func (_ Loop) isStmt()   {}
