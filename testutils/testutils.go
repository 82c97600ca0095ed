// Package testutils provides utilities for testing loam object graphs.
package testutils

import (
	"errors"
	"sync"
	"testing"

	"github.com/loam-lang/loam"
)

// testVM is the VM used for all tests.
var testVM *loam.VM

var testVMInit sync.Once

// TestingVM returns a VM for testing objects. The VM is shared by all tests
// that use this package.
func TestingVM() *loam.VM {
	testVMInit.Do(ResetTestingVM)
	return testVM
}

// ResetTestingVM reinitializes the VM returned by TestingVM. It is not safe
// to call this in parallel tests.
func ResetTestingVM() {
	testVM = loam.NewVM()
}

// A SendTestCase is a test case containing a message send and a predicate to
// check the result.
type SendTestCase struct {
	// Sender is the object the message is sent to.
	Sender *loam.Object
	// Message is the message name.
	Message string
	// Arg, if non-nil, is sent as the parameter via SendWith; otherwise the
	// send is plain.
	Arg *loam.Object
	// Pass is a predicate taking the result of the send. If Pass returns
	// false, then the test fails.
	Pass func(result *loam.Object, err error) bool
}

// TestFunc returns a test function for the test case. The send uses
// TestingVM.
func (c SendTestCase) TestFunc() func(*testing.T) {
	return func(t *testing.T) {
		vm := TestingVM()
		var r *loam.Object
		var err error
		if c.Arg != nil {
			r, err = vm.SendWith(c.Sender, c.Message, c.Arg)
		} else {
			r, err = vm.Send(c.Sender, c.Message)
		}
		if !c.Pass(r, err) {
			t.Errorf("sending %q produced wrong result: %v (err: %v)", c.Message, r, err)
		}
	}
}

// PassNumber returns a Pass function that predicates on a number literal
// result with the given value.
func PassNumber(want float64) func(*loam.Object, error) bool {
	return func(result *loam.Object, err error) bool {
		if err != nil || result == nil {
			return false
		}
		v, ok := result.Number()
		return ok && v == want
	}
}

// PassBool returns a Pass function that predicates on a boolean literal
// result with the given value.
func PassBool(want bool) func(*loam.Object, error) bool {
	return func(result *loam.Object, err error) bool {
		if err != nil || result == nil {
			return false
		}
		v, ok := result.Bool()
		return ok && v == want
	}
}

// PassString returns a Pass function that predicates on a string literal
// result with the given value.
func PassString(want string) func(*loam.Object, error) bool {
	return func(result *loam.Object, err error) bool {
		if err != nil || result == nil {
			return false
		}
		v, ok := result.StringValue()
		return ok && v == want
	}
}

// PassSlotNotFound returns a Pass function that predicates on the send
// failing with a SlotNotFoundError for the given name.
func PassSlotNotFound(name string) func(*loam.Object, error) bool {
	return func(result *loam.Object, err error) bool {
		var snf *loam.SlotNotFoundError
		return errors.As(err, &snf) && snf.Name == name
	}
}

// PassMissingArgument returns a Pass function that predicates on the send
// failing with a MissingArgumentError for the given name.
func PassMissingArgument(name string) func(*loam.Object, error) bool {
	return func(result *loam.Object, err error) bool {
		var ma *loam.MissingArgumentError
		return errors.As(err, &ma) && ma.Name == name
	}
}

// PassIdentical returns a Pass function that predicates on the result being
// exactly the given object.
func PassIdentical(want *loam.Object) func(*loam.Object, error) bool {
	return func(result *loam.Object, err error) bool {
		return err == nil && result == want
	}
}

// CheckSlots is a testing helper to check whether an object has exactly the
// slots we expect.
func CheckSlots(t *testing.T, obj *loam.Object, slots []string) {
	t.Helper()
	checked := make(map[string]bool, len(slots))
	for _, name := range slots {
		checked[name] = true
		t.Run("Have_"+name, func(t *testing.T) {
			slot, ok := loam.GetLocalSlot(obj, name)
			if !ok {
				t.Fatal("no slot", name)
			}
			if slot == nil {
				t.Fatal("slot", name, "is nil")
			}
		})
	}
	for _, name := range obj.SlotNames() {
		t.Run("Want_"+name, func(t *testing.T) {
			if !checked[name] {
				t.Fatal("unexpected slot", name)
			}
		})
	}
}
