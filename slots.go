package loam

import "github.com/zephyrtronium/contains"

// Lookup resolves a slot name starting from obj. The object's own slots are
// checked first; failing that, the inheritance graph is searched
// breadth-first through the objects named by each node's parents list, in
// declaration order, so that the first-declared parent wins ties at equal
// depth. Each object is visited at most once, which makes the search
// terminate even when the graph contains cycles. The result is the live
// object stored in the first matching slot, which may be shared by many
// other objects as a prototype.
//
// If the name is exhausted without a match, Lookup returns a
// *SlotNotFoundError.
func Lookup(obj *Object, name string) (*Object, error) {
	if obj == nil {
		return nil, &SlotNotFoundError{Name: name}
	}
	// Check obj itself before setting up the graph traversal.
	if v, ok := obj.slots[name]; ok {
		return v, nil
	}
	seen := contains.Set{}
	seen.Add(obj.UniqueID())
	queue := []*Object{obj}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if v, ok := node.slots[name]; ok {
			return v, nil
		}
		for _, pn := range node.parents {
			// Parent names resolve through the node's own slots only. A
			// name with no local slot has no value to recurse into.
			p, ok := node.slots[pn]
			if !ok || p == nil {
				continue
			}
			if seen.Add(p.UniqueID()) {
				queue = append(queue, p)
			}
		}
	}
	return nil, &SlotNotFoundError{Name: name}
}

// GetLocalSlot checks only obj's own slots for a slot.
func GetLocalSlot(obj *Object, name string) (value *Object, ok bool) {
	if obj == nil {
		return nil, false
	}
	value, ok = obj.slots[name]
	return value, ok
}

// SetSlot sets the value of a slot on obj. It performs no validation and
// always succeeds.
func SetSlot(obj *Object, name string, value *Object) {
	if obj.slots == nil {
		obj.slots = Slots{}
	}
	obj.slots[name] = value
}

// MakeParent flags an existing slot of obj as a parent, appending its name
// to the parents list if it is not already there. It returns a
// *SlotNotFoundError if obj has no slot with the given name.
func MakeParent(obj *Object, name string) error {
	if _, ok := obj.slots[name]; !ok {
		return &SlotNotFoundError{Name: name}
	}
	obj.addParent(name)
	return nil
}

// SetParentSlot assigns a slot on obj and flags it as a parent in one step.
// Because the slot is assigned first, SetParentSlot never fails.
func SetParentSlot(obj *Object, name string, value *Object) {
	SetSlot(obj, name, value)
	obj.addParent(name)
}

// addParent appends name to the parents list if absent. Unlike MakeParent,
// it does not require a matching slot; dispatch uses it to inject the
// dynamic owner.
func (o *Object) addParent(name string) {
	for _, pn := range o.parents {
		if pn == name {
			return
		}
	}
	o.parents = append(o.parents, name)
}
