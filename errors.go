package loam

import "fmt"

// A SlotNotFoundError reports a slot name that is absent from an object and
// unreachable through its parent graph. It is returned by Lookup, MakeParent,
// Send, and SendWith, and propagated unchanged through native computations
// that perform their own lookups.
type SlotNotFoundError struct {
	// Name is the slot name that failed to resolve.
	Name string
}

func (e *SlotNotFoundError) Error() string {
	return fmt.Sprintf("slot %s not found", e.Name)
}

// A MissingArgumentError reports a native computation invoked without a
// required argument slot, such as a parameterized operation called with no
// parameter. It is a precondition failure surfaced directly to the caller;
// the runtime never recovers from it internally.
type MissingArgumentError struct {
	// Name is the argument slot the computation required.
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument %s", e.Name)
}
