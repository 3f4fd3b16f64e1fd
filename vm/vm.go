// Package vm executes ZPM statements against a variable environment.
package vm

import (
	"io"
	"os"

	"go.uber.org/zap"

	"git.sr.ht/~mango/zpm/vm/vars"
)

// VM is one interpreter session.  Variables persist across calls to Exec.  A
// VM is not safe for concurrent use.
type VM struct {
	env      vars.Env
	out      io.Writer
	log      *zap.Logger
	maxSteps int
}

type Option func(*VM)

// WithEnv makes the VM operate on env instead of a fresh environment
func WithEnv(env vars.Env) Option {
	return func(vm *VM) { vm.env = env }
}

// WithOutput sets where PRINT writes to; the default is the standard output
func WithOutput(w io.Writer) Option {
	return func(vm *VM) { vm.out = w }
}

func WithLogger(l *zap.Logger) Option {
	return func(vm *VM) { vm.log = l }
}

// WithMaxSteps caps the number of statements one call to Exec may execute.
// Zero disables the cap.
func WithMaxSteps(n int) Option {
	return func(vm *VM) { vm.maxSteps = n }
}

func New(opts ...Option) *VM {
	vm := &VM{
		out: os.Stdout,
		log: zap.NewNop(),
	}
	for _, o := range opts {
		o(vm)
	}
	if vm.env == nil {
		vm.env = vars.NewEnv()
	}
	return vm
}

// Env returns the environment of the session
func (vm *VM) Env() vars.Env {
	return vm.env
}

// Exec executes a single line.  A nil error means success; on failure any
// changes the line made before failing are kept.
func (vm *VM) Exec(line string) error {
	err := vm.exec(line)
	if err != nil {
		vm.log.Debug("statement failed",
			zap.String("line", line),
			zap.Error(err))
	}
	return err
}
