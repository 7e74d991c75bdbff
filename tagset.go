package sepro

// TagList is a set of Symbols with standard set algebra. The zero value is
// an empty set ready to use.
type TagList struct {
	m map[*Symbol]struct{}
}

// NewTagList builds a TagList from the given symbols, deduplicating.
func NewTagList(syms ...*Symbol) TagList {
	t := TagList{m: make(map[*Symbol]struct{}, len(syms))}
	for _, s := range syms {
		t.m[s] = struct{}{}
	}
	return t
}

// Has reports whether sym is a member of t.
func (t TagList) Has(sym *Symbol) bool {
	if t.m == nil {
		return false
	}
	_, ok := t.m[sym]
	return ok
}

// Len returns the number of tags in t.
func (t TagList) Len() int {
	return len(t.m)
}

// Add returns a new TagList with sym added, leaving t unmodified.
func (t TagList) Add(sym *Symbol) TagList {
	n := t.clone()
	n.m[sym] = struct{}{}
	return n
}

// Union returns a new TagList containing every tag in t or other.
func (t TagList) Union(other TagList) TagList {
	n := t.clone()
	for s := range other.m {
		n.m[s] = struct{}{}
	}
	return n
}

// Difference returns a new TagList containing every tag in t that is not in
// other.
func (t TagList) Difference(other TagList) TagList {
	n := make(map[*Symbol]struct{}, len(t.m))
	for s := range t.m {
		if !other.Has(s) {
			n[s] = struct{}{}
		}
	}
	return TagList{m: n}
}

// Subset reports whether every tag in sub is also in t (sub ⊆ t).
func (t TagList) Subset(sub TagList) bool {
	for s := range sub.m {
		if !t.Has(s) {
			return false
		}
	}
	return true
}

// Disjoint reports whether t and other share no tags.
func (t TagList) Disjoint(other TagList) bool {
	small, big := t, other
	if len(small.m) > len(big.m) {
		small, big = big, small
	}
	for s := range small.m {
		if big.Has(s) {
			return false
		}
	}
	return true
}

// Slice returns the tags in t as a slice, in unspecified order.
func (t TagList) Slice() []*Symbol {
	out := make([]*Symbol, 0, len(t.m))
	for s := range t.m {
		out = append(out, s)
	}
	return out
}

func (t TagList) clone() TagList {
	n := make(map[*Symbol]struct{}, len(t.m)+1)
	for s := range t.m {
		n[s] = struct{}{}
	}
	return TagList{m: n}
}
