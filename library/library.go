// Package library provides a demonstration standard library for the loam
// runtime: arithmetic and comparison operators, a conditional, string and
// date helpers, and a recursive factorial program. It is an ordinary
// consumer of the core API; nothing in it is special to the runtime.
//
// Operators follow the slot conventions described by the runtime: each is a
// native computation registered under a symbolic name, expecting a
// "parameter" object whose own slots supply its operands.
package library

import (
	"github.com/loam-lang/loam"
)

// Install creates a library root object with every operator of this package
// registered under its conventional slot name. Objects that declare the
// returned root as a parent slot can send these messages directly.
func Install(vm *loam.VM) *loam.Object {
	root := vm.ObjectWith(loam.Slots{}, nil, nil, nil, nil, "library")
	loam.SetSlot(root, "+", vm.NewNative(Add, "+"))
	loam.SetSlot(root, "-", vm.NewNative(Sub, "-"))
	loam.SetSlot(root, "*", vm.NewNative(Mul, "*"))
	loam.SetSlot(root, "/", vm.NewNative(Div, "/"))
	loam.SetSlot(root, "==", vm.NewNative(Equal, "=="))
	loam.SetSlot(root, "!=", vm.NewNative(NotEqual, "!="))
	loam.SetSlot(root, "<", vm.NewNative(Less, "<"))
	loam.SetSlot(root, ">", vm.NewNative(Greater, ">"))
	loam.SetSlot(root, "if", vm.NewNative(If, "if"))
	loam.SetSlot(root, "latin1", vm.NewNative(Latin1, "latin1"))
	loam.SetSlot(root, "date", vm.NewNative(Date, "date"))
	return root
}

// parameterArg resolves the parameter injected onto a native's self copy.
func parameterArg(self *loam.Object) (*loam.Object, error) {
	p, err := loam.Lookup(self, loam.ParameterSlot)
	if err != nil {
		return nil, &loam.MissingArgumentError{Name: loam.ParameterSlot}
	}
	return p, nil
}

// numberOperand reads a number literal from one of the parameter's own
// slots. An absent slot and a non-number slot are both missing arguments.
func numberOperand(param *loam.Object, name string) (float64, error) {
	v, ok := loam.GetLocalSlot(param, name)
	if !ok {
		return 0, &loam.MissingArgumentError{Name: name}
	}
	n, ok := v.Number()
	if !ok {
		return 0, &loam.MissingArgumentError{Name: name}
	}
	return n, nil
}

// literalOperand reads any literal from one of the parameter's own slots.
func literalOperand(param *loam.Object, name string) (loam.Value, error) {
	v, ok := loam.GetLocalSlot(param, name)
	if !ok {
		return nil, &loam.MissingArgumentError{Name: name}
	}
	l, ok := v.Literal()
	if !ok {
		return nil, &loam.MissingArgumentError{Name: name}
	}
	return l, nil
}

// binaryOperands reads the lhs and rhs number operands of an arithmetic or
// ordering operator.
func binaryOperands(self *loam.Object) (lhs, rhs float64, err error) {
	p, err := parameterArg(self)
	if err != nil {
		return 0, 0, err
	}
	lhs, err = numberOperand(p, "lhs")
	if err != nil {
		return 0, 0, err
	}
	rhs, err = numberOperand(p, "rhs")
	if err != nil {
		return 0, 0, err
	}
	return lhs, rhs, nil
}

// Add is a library native.
//
// + returns the sum of the parameter's lhs and rhs number slots.
func Add(vm *loam.VM, self *loam.Object) (*loam.Object, error) {
	lhs, rhs, err := binaryOperands(self)
	if err != nil {
		return nil, err
	}
	return vm.NewNumber(lhs + rhs), nil
}

// Sub is a library native.
//
// - returns the difference of the parameter's lhs and rhs number slots.
func Sub(vm *loam.VM, self *loam.Object) (*loam.Object, error) {
	lhs, rhs, err := binaryOperands(self)
	if err != nil {
		return nil, err
	}
	return vm.NewNumber(lhs - rhs), nil
}

// Mul is a library native.
//
// * returns the product of the parameter's lhs and rhs number slots.
func Mul(vm *loam.VM, self *loam.Object) (*loam.Object, error) {
	lhs, rhs, err := binaryOperands(self)
	if err != nil {
		return nil, err
	}
	return vm.NewNumber(lhs * rhs), nil
}

// Div is a library native.
//
// / returns the quotient of the parameter's lhs and rhs number slots.
// Division by zero follows float64 semantics and yields an infinity.
func Div(vm *loam.VM, self *loam.Object) (*loam.Object, error) {
	lhs, rhs, err := binaryOperands(self)
	if err != nil {
		return nil, err
	}
	return vm.NewNumber(lhs / rhs), nil
}

// Equal is a library native.
//
// == returns whether the parameter's lhs and rhs literal slots hold equal
// values.
func Equal(vm *loam.VM, self *loam.Object) (*loam.Object, error) {
	p, err := parameterArg(self)
	if err != nil {
		return nil, err
	}
	lhs, err := literalOperand(p, "lhs")
	if err != nil {
		return nil, err
	}
	rhs, err := literalOperand(p, "rhs")
	if err != nil {
		return nil, err
	}
	return vm.NewBool(lhs == rhs), nil
}

// NotEqual is a library native.
//
// != returns whether the parameter's lhs and rhs literal slots hold
// different values.
func NotEqual(vm *loam.VM, self *loam.Object) (*loam.Object, error) {
	r, err := Equal(vm, self)
	if err != nil {
		return nil, err
	}
	b, _ := r.Bool()
	return vm.NewBool(!b), nil
}

// Less is a library native.
//
// < returns whether the parameter's lhs number slot is less than its rhs
// number slot.
func Less(vm *loam.VM, self *loam.Object) (*loam.Object, error) {
	lhs, rhs, err := binaryOperands(self)
	if err != nil {
		return nil, err
	}
	return vm.NewBool(lhs < rhs), nil
}

// Greater is a library native.
//
// > returns whether the parameter's lhs number slot is greater than its rhs
// number slot.
func Greater(vm *loam.VM, self *loam.Object) (*loam.Object, error) {
	lhs, rhs, err := binaryOperands(self)
	if err != nil {
		return nil, err
	}
	return vm.NewBool(lhs > rhs), nil
}
