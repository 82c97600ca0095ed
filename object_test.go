package loam

import "testing"

// TestObjectWithPriority tests that the general constructor applies the
// evaluation priority when several payload parts are supplied: native over
// literal over message sequence.
func TestObjectWithPriority(t *testing.T) {
	vm := NewVM()
	native := func(vm *VM, self *Object) (*Object, error) {
		return vm.NewString("native"), nil
	}
	cases := map[string]struct {
		obj  *Object
		want string
	}{
		"NativeOverLiteral":    {vm.ObjectWith(nil, nil, nil, 3.0, native, ""), "native"},
		"NativeOverSequence":   {vm.ObjectWith(nil, nil, []string{"x"}, nil, native, ""), "native"},
		"LiteralOverSequence":  {vm.ObjectWith(nil, nil, []string{"x"}, "literal", nil, ""), "literal"},
		"NativeOverEverything": {vm.ObjectWith(nil, nil, []string{"x"}, 3.0, native, ""), "native"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := vm.Evaluate(c.obj)
			if err != nil {
				t.Fatal(err)
			}
			if s, _ := r.StringValue(); s != c.want {
				t.Errorf("wrong branch taken: got %q, want %q", s, c.want)
			}
		})
	}
}

// TestCopyIndependence tests that a copy has independent slot and parent
// containers while sharing nested object references.
func TestCopyIndependence(t *testing.T) {
	vm := NewVM()
	nested := vm.NewObject(nil)
	orig := vm.NewObject(Slots{"nested": nested})
	SetParentSlot(orig, "base", vm.NewObject(nil))
	c := orig.Copy()

	t.Run("Slots", func(t *testing.T) {
		SetSlot(c, "onCopy", vm.NewNumber(300))
		if _, ok := GetLocalSlot(orig, "onCopy"); ok {
			t.Error("slot assigned on copy appeared on original")
		}
		SetSlot(orig, "onOrig", vm.NewNumber(301))
		if _, ok := GetLocalSlot(c, "onOrig"); ok {
			t.Error("slot assigned on original appeared on copy")
		}
	})
	t.Run("SharedNested", func(t *testing.T) {
		v, ok := GetLocalSlot(c, "nested")
		if !ok {
			t.Fatal("copy lost the nested slot")
		}
		if v != nested {
			t.Errorf("nested slot is not the identical instance: %p != %p", v, nested)
		}
	})
	t.Run("Parents", func(t *testing.T) {
		SetParentSlot(c, "extra", vm.NewObject(nil))
		if len(orig.Parents()) != 1 {
			t.Errorf("parent flagged on copy appeared on original: %v", orig.Parents())
		}
	})
}

// TestCopySharesSequence tests that copies of a message-sequence object
// share the same sequence instance rather than a deep copy.
func TestCopySharesSequence(t *testing.T) {
	vm := NewVM()
	orig := vm.NewSequence("seq", "a", "b", "c")
	c := orig.Copy()
	po := orig.payload.(sequencePayload)
	pc := c.payload.(sequencePayload)
	if &po.msgs[0] != &pc.msgs[0] {
		t.Error("copy does not share the sequence backing array")
	}
	if c.Name() != "seq" {
		t.Errorf("copy has wrong name %q", c.Name())
	}
}

func TestNumberMemo(t *testing.T) {
	vm := NewVM()
	if vm.NewNumber(5) != vm.NewNumber(5) {
		t.Error("small integers are not memoized")
	}
	if v, ok := vm.NewNumber(5).Number(); !ok || v != 5 {
		t.Errorf("memoized number has wrong value %v, %v", v, ok)
	}
	if vm.NewNumber(1e6) == vm.NewNumber(1e6) {
		t.Error("large numbers should not be memoized")
	}
	if vm.NewBool(true) != vm.True || vm.NewBool(false) != vm.False {
		t.Error("booleans are not the VM singletons")
	}
}

func TestLiteralAccessors(t *testing.T) {
	vm := NewVM()
	n := vm.NewNumber(1.5)
	s := vm.NewString("hi")
	b := vm.NewBool(true)
	p := vm.NewObject(nil)
	if v, ok := n.Number(); !ok || v != 1.5 {
		t.Errorf("Number() = %v, %v", v, ok)
	}
	if v, ok := s.StringValue(); !ok || v != "hi" {
		t.Errorf("StringValue() = %q, %v", v, ok)
	}
	if v, ok := b.Bool(); !ok || !v {
		t.Errorf("Bool() = %v, %v", v, ok)
	}
	if _, ok := p.Literal(); ok {
		t.Error("plain object claims a literal value")
	}
	if _, ok := n.Bool(); ok {
		t.Error("number claims a boolean value")
	}
	if p.IsNative() {
		t.Error("plain object claims a native payload")
	}
	if msgs := vm.NewSequence("", "x", "y").Messages(); len(msgs) != 2 {
		t.Errorf("Messages() = %v", msgs)
	}
}
