package loam

import "sort"

// Slots is a mapping from slot names to the objects they reference.
type Slots map[string]*Object

// Value is the Go value of a literal object. The runtime produces and
// understands float64, bool, and string values.
type Value interface{}

// Fn is a native computation. During evaluation it receives a copy of the
// object that carries it, so it may freely read and mutate its own slots
// (for example, an injected parameter) without corrupting the original.
type Fn func(vm *VM, self *Object) (*Object, error)

// payload is the closed set of computational contents an object may carry.
// A nil payload marks a plain object, which evaluates to itself.
type payload interface {
	kind() string
}

type nativePayload struct {
	fn Fn
}

type literalPayload struct {
	value Value
}

type sequencePayload struct {
	// msgs is shared between an object and its copies and must never be
	// mutated after construction.
	msgs []string
}

func (nativePayload) kind() string   { return "native" }
func (literalPayload) kind() string  { return "literal" }
func (sequencePayload) kind() string { return "sequence" }

// Object is the basic type of loam. Everything is an Object.
//
// Always use NewObject, ObjectWith, or one of the payload constructors to
// obtain new objects.
type Object struct {
	// slots is the set of messages to which this object responds.
	slots Slots
	// parents lists, in declaration order, the slot names that participate
	// in inheritance search. A parent name is resolved through the object's
	// own slots at lookup time; a name with no matching slot is skipped.
	parents []string
	// payload is the object's computational content, or nil for a plain
	// object.
	payload payload
	// name is a display label with no semantic effect.
	name string
}

// ObjectWith creates an object from a slot mapping, a parent-name list, and
// any of the optional payload parts. The object takes ownership of slots and
// parents. When more than one payload part is supplied, the evaluation
// priority applies: a native computation wins over a literal value, which
// wins over a message sequence.
func (vm *VM) ObjectWith(slots Slots, parents []string, msgs []string, literal Value, native Fn, name string) *Object {
	o := &Object{slots: slots, parents: parents, name: name}
	switch {
	case native != nil:
		o.payload = nativePayload{fn: native}
	case literal != nil:
		o.payload = literalPayload{value: literal}
	case msgs != nil:
		o.payload = sequencePayload{msgs: msgs}
	}
	return o
}

// NewObject creates a plain object with the given slots and no parents. The
// object takes ownership of slots, which may be nil.
func (vm *VM) NewObject(slots Slots) *Object {
	return &Object{slots: slots}
}

// NewNumber creates a literal object with the given numeric value. If the
// value is memoized by the VM, the shared memo object is returned.
func (vm *VM) NewNumber(value float64) *Object {
	if x, ok := vm.numberMemo[value]; ok {
		return x
	}
	return &Object{payload: literalPayload{value: value}}
}

// NewBool returns the VM's shared literal object for the given truth value.
func (vm *VM) NewBool(value bool) *Object {
	if value {
		return vm.True
	}
	return vm.False
}

// NewString creates a literal object with the given string value.
func (vm *VM) NewString(value string) *Object {
	return &Object{payload: literalPayload{value: value}}
}

// NewNative creates an object whose payload is the given native computation.
func (vm *VM) NewNative(fn Fn, name string) *Object {
	return &Object{payload: nativePayload{fn: fn}, name: name}
}

// NewSequence creates an object whose payload is the given message sequence.
// The sequence is treated as immutable once constructed; copies of the
// object share the same backing array.
func (vm *VM) NewSequence(name string, msgs ...string) *Object {
	return &Object{payload: sequencePayload{msgs: msgs}, name: name}
}

// Copy produces a shallow duplicate of the object: a fresh slot mapping and
// parent list holding the same references, plus the same payload and name.
// In particular, a copy of a message-sequence object shares the original's
// sequence. Copy never fails.
func (o *Object) Copy() *Object {
	slots := make(Slots, len(o.slots))
	for name, value := range o.slots {
		slots[name] = value
	}
	parents := make([]string, len(o.parents))
	copy(parents, o.parents)
	return &Object{slots: slots, parents: parents, payload: o.payload, name: o.name}
}

// Name returns the object's display label, which may be empty.
func (o *Object) Name() string {
	return o.name
}

// Parents returns a snapshot of the object's parent slot names in
// declaration order.
func (o *Object) Parents() []string {
	r := make([]string, len(o.parents))
	copy(r, o.parents)
	return r
}

// SlotNames returns the names of the object's own slots, sorted.
func (o *Object) SlotNames() []string {
	r := make([]string, 0, len(o.slots))
	for name := range o.slots {
		r = append(r, name)
	}
	sort.Strings(r)
	return r
}

// ForeachSlot calls exec on each of the object's own slots. exec must not
// modify the object's slots. If exec returns false, the iteration ceases.
func (o *Object) ForeachSlot(exec func(name string, value *Object) bool) {
	for name, value := range o.slots {
		if !exec(name, value) {
			return
		}
	}
}

// Literal returns the object's literal value, if it has one.
func (o *Object) Literal() (Value, bool) {
	p, ok := o.payload.(literalPayload)
	if !ok {
		return nil, false
	}
	return p.value, true
}

// Number returns the object's literal value as a float64, if it is one.
func (o *Object) Number() (float64, bool) {
	p, ok := o.payload.(literalPayload)
	if !ok {
		return 0, false
	}
	v, ok := p.value.(float64)
	return v, ok
}

// Bool returns the object's literal value as a bool, if it is one.
func (o *Object) Bool() (bool, bool) {
	p, ok := o.payload.(literalPayload)
	if !ok {
		return false, false
	}
	v, ok := p.value.(bool)
	return v, ok
}

// StringValue returns the object's literal value as a string, if it is one.
func (o *Object) StringValue() (string, bool) {
	p, ok := o.payload.(literalPayload)
	if !ok {
		return "", false
	}
	v, ok := p.value.(string)
	return v, ok
}

// IsNative reports whether the object's payload is a native computation.
func (o *Object) IsNative() bool {
	_, ok := o.payload.(nativePayload)
	return ok
}

// Messages returns a snapshot of the object's message sequence, or nil if it
// has none.
func (o *Object) Messages() []string {
	p, ok := o.payload.(sequencePayload)
	if !ok {
		return nil
	}
	r := make([]string, len(p.msgs))
	copy(r, p.msgs)
	return r
}
