package loam

import (
	"strings"
	"testing"
)

// TestRenderCycle tests that rendering a cyclic graph terminates and marks
// the repeated object instead of expanding it again.
func TestRenderCycle(t *testing.T) {
	vm := NewVM()
	a := vm.ObjectWith(Slots{}, nil, nil, nil, nil, "a")
	b := vm.ObjectWith(Slots{}, nil, nil, nil, nil, "b")
	SetParentSlot(a, "other", b)
	SetParentSlot(b, "other", a)
	s := RenderString(a, 10)
	if !strings.Contains(s, "(shown above)") {
		t.Errorf("cycle not marked:\n%s", s)
	}
	if strings.Count(s, "a plain") != 2 {
		// Once expanded, once as the cycle marker.
		t.Errorf("unexpected render of cyclic graph:\n%s", s)
	}
}

// TestRenderNonMutating tests that rendering leaves the graph untouched.
func TestRenderNonMutating(t *testing.T) {
	vm := NewVM()
	obj := vm.NewObject(Slots{"x": vm.NewNumber(7)})
	SetParentSlot(obj, "base", vm.NewObject(nil))
	slots := obj.SlotNames()
	parents := obj.Parents()
	RenderString(obj, 5)
	if got := obj.SlotNames(); len(got) != len(slots) {
		t.Errorf("render changed slots: %v -> %v", slots, got)
	}
	if got := obj.Parents(); len(got) != len(parents) {
		t.Errorf("render changed parents: %v -> %v", parents, got)
	}
}

// TestRenderDepth tests the depth bound.
func TestRenderDepth(t *testing.T) {
	vm := NewVM()
	deep := vm.ObjectWith(Slots{}, nil, nil, nil, nil, "depths")
	mid := vm.NewObject(Slots{"deep": deep})
	obj := vm.NewObject(Slots{"mid": mid})
	s := RenderString(obj, 1)
	if !strings.Contains(s, "mid: ") {
		t.Errorf("first level missing:\n%s", s)
	}
	if strings.Contains(s, "depths") {
		t.Errorf("second level rendered despite depth bound:\n%s", s)
	}
	if !strings.Contains(s, "...") {
		t.Errorf("truncation not marked:\n%s", s)
	}
}

// TestRenderSummaries tests the payload summaries.
func TestRenderSummaries(t *testing.T) {
	vm := NewVM()
	obj := vm.NewObject(Slots{
		"num":  vm.NewNumber(3),
		"str":  vm.NewString("hi"),
		"nat":  vm.NewNative(func(vm *VM, self *Object) (*Object, error) { return self, nil }, "f"),
		"body": vm.NewSequence("body", "x", "y"),
	})
	s := RenderString(obj, 2)
	for _, want := range []string{"literal(3)", `literal("hi")`, "native", "sequence(x y)", "plain"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary %q missing:\n%s", want, s)
		}
	}
}
