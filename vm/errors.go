package vm

import (
	"errors"
	"fmt"

	"git.sr.ht/~mango/zpm/ast"
	"git.sr.ht/~mango/zpm/parser"
	"git.sr.ht/~mango/zpm/vm/vars"
)

// Categories of failure.  Every interpretation error returned by Exec
// matches exactly one of them with errors.Is; failures writing the output are
// returned as is.
var (
	ErrSyntax    = parser.ErrSyntax
	ErrUndefined = errors.New("undefined variable")
	ErrType      = errors.New("type mismatch")
	ErrLimit     = errors.New("step limit exceeded")
)

type errUndefined string

func (e errUndefined) Error() string {
	return fmt.Sprintf("Variable ‘%s’ is undefined", string(e))
}

type errMismatch struct {
	op        ast.Op
	have, got vars.Kind
}

func (e errMismatch) Error() string {
	return fmt.Sprintf("Can’t apply ‘%s’ to %s variable with %s operand",
		e.op, e.have, e.got)
}

type errUnsupported struct {
	op   ast.Op
	kind vars.Kind
}

func (e errUnsupported) Error() string {
	return fmt.Sprintf("Attempt to apply ‘%s’ to %s is unsupported", e.op, e.kind)
}

type errLimit int

func (e errLimit) Error() string {
	return fmt.Sprintf("Exceeded the limit of %d statements", int(e))
}

func (_ errUndefined) Is(err error) bool   { return err == ErrUndefined }
func (_ errMismatch) Is(err error) bool    { return err == ErrType }
func (_ errUnsupported) Is(err error) bool { return err == ErrType }
func (_ errLimit) Is(err error) bool       { return err == ErrLimit }
