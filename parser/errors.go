package parser

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every error Parse returns
var ErrSyntax = errors.New("syntax error")

type errExpected struct {
	want, got string
}

func (e errExpected) Error() string {
	return fmt.Sprintf("Expected %s but got ‘%s’", e.want, e.got)
}

type errTooShort struct {
	line string
	min  int
}

func (e errTooShort) Error() string {
	return fmt.Sprintf("Statement ‘%s’ needs at least %d tokens", e.line, e.min)
}

type errNumber string

func (e errNumber) Error() string {
	return fmt.Sprintf("‘%s’ is not a valid integer", string(e))
}

func (_ errExpected) Is(err error) bool { return err == ErrSyntax }
func (_ errTooShort) Is(err error) bool { return err == ErrSyntax }
func (_ errNumber) Is(err error) bool   { return err == ErrSyntax }
