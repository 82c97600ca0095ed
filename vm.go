package loam

import "go.uber.org/zap"

// VM is the context in which objects are created and messages are sent. It
// carries the shared literal memos and the dispatch trace logger. A VM
// assumes a single synchronous evaluation thread; it provides no locking,
// and its objects must not be touched by logically concurrent evaluations.
type VM struct {
	// Log receives a Debug-level event for every dispatched message. It is
	// never nil; NewVM installs a no-op logger, which callers may replace.
	Log *zap.Logger

	// Singleton literal objects for the two truth values.
	True  *Object
	False *Object

	// Common numbers memoized to avoid a new object for each use. Memoized
	// objects are shared, like any prototype.
	numberMemo map[float64]*Object
}

// NewVM prepares a new VM with its literal memos populated.
func NewVM() *VM {
	vm := VM{
		Log:   zap.NewNop(),
		True:  &Object{payload: literalPayload{value: true}, name: "true"},
		False: &Object{payload: literalPayload{value: false}, name: "false"},
		// Memoize all integers in [-1, 255].
		numberMemo: make(map[float64]*Object, 257),
	}
	for i := -1; i <= 255; i++ {
		v := float64(i)
		vm.numberMemo[v] = &Object{payload: literalPayload{value: v}}
	}
	return &vm
}
