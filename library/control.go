package library

import "github.com/loam-lang/loam"

// If is a library native.
//
// if reads the parameter's condition slot, which must hold a boolean
// literal, and evaluates the parameter's consequent slot when it is true or
// its alternative slot otherwise. Only the chosen branch is evaluated, so
// callers get laziness by storing unevaluated objects (natives or message
// sequences) in the branch slots.
func If(vm *loam.VM, self *loam.Object) (*loam.Object, error) {
	p, err := parameterArg(self)
	if err != nil {
		return nil, err
	}
	c, ok := loam.GetLocalSlot(p, "condition")
	if !ok {
		return nil, &loam.MissingArgumentError{Name: "condition"}
	}
	b, ok := c.Bool()
	if !ok {
		return nil, &loam.MissingArgumentError{Name: "condition"}
	}
	branch := "alternative"
	if b {
		branch = "consequent"
	}
	v, ok := loam.GetLocalSlot(p, branch)
	if !ok {
		return nil, &loam.MissingArgumentError{Name: branch}
	}
	return vm.Evaluate(v)
}
