package loam

import "go.uber.org/zap"

const (
	// OwnerSlot is the slot name under which dispatch injects the sender
	// onto a resolved target, granting the target inheritance access to the
	// sender's slots.
	OwnerSlot = "__owner"
	// ParameterSlot is the slot name under which SendWith injects the
	// argument onto a resolved target.
	ParameterSlot = "parameter"
)

// Send sends a message to an object. The name is resolved from sender via
// Lookup; the resolved target is then mutated in place so that its "__owner"
// slot refers to sender and is flagged as a parent, and the result of
// evaluating the target is returned.
//
// The owner injection is deliberate shared-state plumbing: targets are
// frequently prototypes reachable from many objects, and the owner slot is
// how a target reads its caller's slots without a call stack or closures.
// The slot is overwritten on every send, so a target belongs to its most
// recent sender only. Correctness requires strictly synchronous use: a
// target's owner must be consumed by the evaluation that follows before any
// other send overwrites it. Send is not safe for concurrent or re-entrant
// callers.
func (vm *VM) Send(sender *Object, name string) (*Object, error) {
	target, err := Lookup(sender, name)
	if err != nil {
		return nil, err
	}
	vm.Log.Debug("send",
		zap.String("message", name),
		zap.Uintptr("sender", sender.UniqueID()),
		zap.Uintptr("target", target.UniqueID()),
	)
	SetSlot(target, OwnerSlot, sender)
	target.addParent(OwnerSlot)
	return vm.Evaluate(target)
}

// SendWith sends a message to an object with an argument. It behaves like
// Send, but additionally sets the resolved target's "parameter" slot to arg
// before evaluation. Both mutations land on the same live target object.
func (vm *VM) SendWith(sender *Object, name string, arg *Object) (*Object, error) {
	target, err := Lookup(sender, name)
	if err != nil {
		return nil, err
	}
	vm.Log.Debug("send",
		zap.String("message", name),
		zap.Uintptr("sender", sender.UniqueID()),
		zap.Uintptr("target", target.UniqueID()),
		zap.Uintptr("parameter", arg.UniqueID()),
	)
	SetSlot(target, ParameterSlot, arg)
	SetSlot(target, OwnerSlot, sender)
	target.addParent(OwnerSlot)
	return vm.Evaluate(target)
}
