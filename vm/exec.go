package vm

import (
	"fmt"

	"go.uber.org/zap"

	"git.sr.ht/~mango/zpm/ast"
	"git.sr.ht/~mango/zpm/lexer"
	"git.sr.ht/~mango/zpm/parser"
	"git.sr.ht/~mango/zpm/pkg/stack"
)

// A frame is a loop in progress.  Loops are run off an explicit stack rather
// than by recursion so that deeply nested bodies don’t grow the Go stack.
type frame struct {
	body  string   // Raw text of the body
	stmts []string // Statements of the current iteration
	next  int      // Index of the next statement in stmts
	iter  int      // Current iteration, starting at 1
	count int      // Total number of iterations
}

type execution struct {
	vm     *VM
	frames stack.Stack[frame]
	steps  int
}

func (vm *VM) exec(line string) error {
	x := execution{vm: vm, frames: stack.New[frame](4)}

	if err := x.step(line); err != nil {
		return err
	}

	for x.frames.Len() > 0 {
		f := x.frames.Peek()
		if f.next == len(f.stmts) {
			if f.iter == f.count {
				x.frames.Pop()
				continue
			}

			// Bodies are split anew on every pass
			f.iter++
			f.stmts = lexer.SplitStatements(f.body)
			f.next = 0
			continue
		}

		// f may be invalidated once step pushes a nested loop
		stmt, iter, n := f.stmts[f.next], f.iter, f.next+1
		f.next++
		if err := x.step(stmt); err != nil {
			return fmt.Errorf("iteration %d, statement %d: %w", iter, n, err)
		}
	}

	return nil
}

func (x *execution) step(line string) error {
	x.steps++
	if m := x.vm.maxSteps; m > 0 && x.steps > m {
		return errLimit(m)
	}

	stmt, err := parser.Parse(line)
	if err != nil {
		return err
	}

	switch s := stmt.(type) {
	case ast.Assign:
		return x.vm.execAssign(s)
	case ast.Print:
		return x.vm.execPrint(s)
	case ast.Loop:
		x.vm.log.Debug("entering loop",
			zap.Int("count", s.Count),
			zap.String("body", s.Body),
			zap.Int("depth", x.frames.Len()+1))
		if s.Count > 0 {
			x.frames.Push(frame{
				body:  s.Body,
				stmts: lexer.SplitStatements(s.Body),
				iter:  1,
				count: s.Count,
			})
		}
		return nil
	}
	panic("unreachable")
}
