package loam

// Evaluate computes an object's value according to its payload, checked in
// fixed priority order:
//
// A native computation is invoked with a copy of the object and its result
// is returned. The computation receives the copy rather than the original so
// it may mutate its own slots without corrupting the un-evaluated template.
//
// A literal object evaluates to a copy of itself. The value is immutable, but
// copying keeps the contract uniform: evaluation of a payload-carrying
// object never returns an instance still referenced as a template.
//
// A message-sequence object is copied, then each name in the sequence is
// sent to that same copy in order. A send carries the copy's current
// "parameter" slot as an argument when one is present. Every send runs to
// completion before the next begins and may assign new slots onto the copy,
// so later sends observe mutations made by earlier ones. The result of the
// final send is returned; if the sequence is empty, the copy itself is.
//
// A plain object evaluates to itself, by identity. This is the only branch
// that does not produce an independent result, so callers must treat plain
// evaluation results as potentially aliased to the input.
func (vm *VM) Evaluate(obj *Object) (*Object, error) {
	switch p := obj.payload.(type) {
	case nativePayload:
		return p.fn(vm, obj.Copy())
	case literalPayload:
		return obj.Copy(), nil
	case sequencePayload:
		self := obj.Copy()
		result := self
		for _, msg := range p.msgs {
			var r *Object
			var err error
			if arg, ok := self.slots[ParameterSlot]; ok {
				r, err = vm.SendWith(self, msg, arg)
			} else {
				r, err = vm.Send(self, msg)
			}
			if err != nil {
				return nil, err
			}
			if r != nil {
				result = r
			}
		}
		return result, nil
	}
	return obj, nil
}
