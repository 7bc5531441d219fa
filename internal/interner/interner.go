// Package interner assigns stable integer handles to strings.
//
// A Compiler creates one Interner for the lifetime of a reasoning session
// and handles stay stable for as long as that instance lives. The
// reasoning engine shares the compiler's Interner, so the handles in the
// forms it stores resolve to the same strings; handles never escape a
// single process.
package interner

// Handle is a stable integer identifier for an interned string.
type Handle int

// Interner maps strings to stable Handles and back, first-use-wins.
type Interner struct {
	byString map[string]Handle
	byHandle []string
}

// New returns an empty Interner.
func New() *Interner {
	return &Interner{byString: make(map[string]Handle)}
}

// Intern returns the handle for s, allocating a fresh one on first use.
func (it *Interner) Intern(s string) Handle {
	if h, ok := it.byString[s]; ok {
		return h
	}
	h := Handle(len(it.byHandle))
	it.byHandle = append(it.byHandle, s)
	it.byString[s] = h
	return h
}

// Resolve returns the string behind h. Panics if h was never interned by
// this Interner — callers only ever pass handles this Interner produced.
func (it *Interner) Resolve(h Handle) string {
	return it.byHandle[int(h)]
}

// Len returns the number of distinct strings interned so far.
func (it *Interner) Len() int {
	return len(it.byHandle)
}
