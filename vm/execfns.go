package vm

import (
	"fmt"

	"git.sr.ht/~mango/zpm/ast"
	"git.sr.ht/~mango/zpm/vm/vars"
)

func (vm *VM) execAssign(a ast.Assign) error {
	v, err := vm.resolve(a.Operand)
	if err != nil {
		return err
	}

	// Only a plain set may change the kind of a variable
	if !a.Op.IsCompound() {
		vm.env.Set(a.Name, v)
		return nil
	}

	old, ok := vm.env.Get(a.Name)
	if !ok {
		return errUndefined(a.Name)
	}
	if old.Kind() != v.Kind() {
		return errMismatch{a.Op, old.Kind(), v.Kind()}
	}

	switch old := old.(type) {
	case vars.Int:
		n := v.(vars.Int)
		switch a.Op {
		case ast.OpAdd:
			vm.env.Set(a.Name, old+n)
		case ast.OpSub:
			vm.env.Set(a.Name, old-n)
		case ast.OpMul:
			vm.env.Set(a.Name, old*n)
		}
	case vars.Text:
		if a.Op != ast.OpAdd {
			return errUnsupported{a.Op, vars.KindText}
		}
		vm.env.Set(a.Name, old+v.(vars.Text))
	}
	return nil
}

func (vm *VM) execPrint(p ast.Print) error {
	v, ok := vm.env.Get(p.Name)
	if !ok {
		return errUndefined(p.Name)
	}
	_, err := fmt.Fprintf(vm.out, "%s=%s\n", p.Name, v)
	return err
}

func (vm *VM) resolve(o ast.Operand) (vars.Value, error) {
	switch o := o.(type) {
	case ast.Text:
		return vars.Text(o), nil
	case ast.Int:
		return vars.Int(o), nil
	case ast.Ref:
		if v, ok := vm.env.Get(string(o)); ok {
			return v, nil
		}
		return nil, errUndefined(o)
	}
	panic("unreachable")
}
