/*
Package loam implements a minimal prototype-based object runtime.

Everything in loam is an Object. An object holds named slots, each of which
refers to another object, and an ordered list of slot names flagged as
parents. Parents participate in inheritance: when a message is sent to an
object that has no matching slot of its own, the runtime searches the objects
named by its parent slots breadth-first until it finds one that does. There
are no classes and no closures; behavior is shared by referencing the same
live object from many slot mappings.

An object optionally carries a payload, which determines how it evaluates:

  - a native computation, a Go function invoked with a copy of the object;
  - a literal value, a number, boolean, or string, which evaluates to a copy
    of itself;
  - a message sequence, an ordered list of slot names sent in turn to a copy
    of the object, modeling a minimal method body;
  - or nothing, in which case the object evaluates to itself.

Message dispatch is the heart of the runtime. Send resolves a name from the
sender by breadth-first search and then grafts the sender onto the resolved
target as its dynamic owner, a slot named "__owner" which is also flagged as
a parent. The target thereby inherits the sender's slots for the duration of
its evaluation, which is how a helper object reads state from whoever called
it. SendWith additionally writes the argument into the target's "parameter"
slot. Both mutations land on the live, possibly shared target object, so the
runtime is correct only under strictly synchronous, call-stack-ordered use;
see the concurrency notes on Send.

A small example, wiring an addition native and calling it:

	vm := loam.NewVM()
	root := vm.NewObject(loam.Slots{
		"+": vm.NewNative(Add, "+"),
	})
	arg := vm.NewObject(loam.Slots{
		"lhs": vm.NewNumber(1),
		"rhs": vm.NewNumber(2),
	})
	sum, err := vm.SendWith(root, "+", arg)

The library subpackage provides a demonstration standard library built
entirely on this API, including arithmetic, a conditional, and a recursive
factorial program.
*/
package loam
