package sepro

import "sync"

// Symbol is an interned identifier. Two Symbols are equal iff they were
// interned from the same name; comparison is by pointer identity, not by
// string content, so Symbols can be used directly as map keys without
// re-hashing their names.
type Symbol struct {
	name string
}

// String returns the symbol's original name.
func (s *Symbol) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.name
}

var (
	internTable = map[string]*Symbol{}
	internMu    sync.Mutex
)

// Intern returns the unique Symbol for name, creating it on first use.
// Interning the same name twice, even from different goroutines, always
// returns the identical *Symbol.
func Intern(name string) *Symbol {
	internMu.Lock()
	defer internMu.Unlock()
	if sym, ok := internTable[name]; ok {
		return sym
	}
	sym := &Symbol{name: name}
	internTable[name] = sym
	return sym
}
