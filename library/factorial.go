package library

import "github.com/loam-lang/loam"

// Factorial installs a recursive factorial program on root under the
// "factorial" slot and returns the program object. The program is defined
// with the library conditional: if n == 0 then 1 else n * factorial(n - 1).
// root must respond to the "==", "-", "*", and "if" messages, which Install
// provides.
//
// The recursion runs entirely through the dispatch layer: each call resolves
// the same shared program object, receives its argument through the
// "parameter" slot, and reaches the operators through the dynamic owner
// chain. The program object is copied once per call by evaluation while its
// helpers stay shared, which is exactly the call-stack-ordered mutation
// discipline the runtime is built around.
func Factorial(vm *loam.VM, root *loam.Object) *loam.Object {
	fact := vm.NewNative(func(vm *loam.VM, self *loam.Object) (*loam.Object, error) {
		n, err := parameterArg(self)
		if err != nil {
			return nil, err
		}
		if _, ok := n.Number(); !ok {
			return nil, &loam.MissingArgumentError{Name: loam.ParameterSlot}
		}
		isZero, err := vm.SendWith(self, "==", vm.NewObject(loam.Slots{
			"lhs": n,
			"rhs": vm.NewNumber(0),
		}))
		if err != nil {
			return nil, err
		}
		step := vm.NewNative(func(vm *loam.VM, _ *loam.Object) (*loam.Object, error) {
			m, err := vm.SendWith(self, "-", vm.NewObject(loam.Slots{
				"lhs": n,
				"rhs": vm.NewNumber(1),
			}))
			if err != nil {
				return nil, err
			}
			r, err := vm.SendWith(self, "factorial", m)
			if err != nil {
				return nil, err
			}
			return vm.SendWith(self, "*", vm.NewObject(loam.Slots{
				"lhs": n,
				"rhs": r,
			}))
		}, "factorial-step")
		return vm.SendWith(self, "if", vm.NewObject(loam.Slots{
			"condition":   isZero,
			"consequent":  vm.NewNumber(1),
			"alternative": step,
		}))
	}, "factorial")
	loam.SetSlot(root, "factorial", fact)
	return fact
}
