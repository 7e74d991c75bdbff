package sepro

// ObjectRef is a stable handle to an Object for the lifetime of the
// Container that owns it. The zero value never refers to a live object.
type ObjectRef uint64

// CounterMap maps a Symbol to a signed counter value. A key is either
// present with a value or absent entirely; absence is distinct from a
// stored zero for guard purposes.
type CounterMap map[*Symbol]int64

// Clone returns an independent copy of c.
func (c CounterMap) Clone() CounterMap {
	n := make(CounterMap, len(c))
	for k, v := range c {
		n[k] = v
	}
	return n
}

// binding is the value half of a slot entry: a target reference plus whether
// it is actually bound (vs. declared-but-empty).
type binding struct {
	target ObjectRef
	bound  bool
}

// SlotMap holds the declared slots of an Object and their current bindings.
// A slot is declared iff it has an entry in the map at all; it is bound iff
// its entry's value is present. Every declared slot gets an entry (possibly
// unbound) at creation time and slots are never added afterward, so a
// bound slot is always also a declared one by construction.
type SlotMap map[*Symbol]binding

// newSlotMap declares every symbol in names, all initially unbound.
func newSlotMap(names []*Symbol) SlotMap {
	m := make(SlotMap, len(names))
	for _, n := range names {
		m[n] = binding{}
	}
	return m
}

// Declared reports whether slot is a declared slot on this map.
func (s SlotMap) Declared(slot *Symbol) bool {
	_, ok := s[slot]
	return ok
}

// Get returns the object currently bound at slot and whether it is bound.
// Get returns false, false if slot is not even declared.
func (s SlotMap) Get(slot *Symbol) (ObjectRef, bool) {
	b, ok := s[slot]
	if !ok {
		return 0, false
	}
	return b.target, b.bound
}

// Bind sets slot's binding to target. The slot must already be declared.
func (s SlotMap) Bind(slot *Symbol, target ObjectRef) {
	s[slot] = binding{target: target, bound: true}
}

// Unbind clears slot's binding, leaving it declared but empty. The slot
// must already be declared.
func (s SlotMap) Unbind(slot *Symbol) {
	s[slot] = binding{}
}

// Clone returns an independent copy of s.
func (s SlotMap) Clone() SlotMap {
	n := make(SlotMap, len(s))
	for k, v := range s {
		n[k] = v
	}
	return n
}

// Object is the rewriteable unit of a simulation: a bundle of tags,
// counters, and slot bindings, identified only by its id. Equality
// elsewhere in the engine is always by id, never by value.
type Object struct {
	id       ObjectRef
	tags     TagList
	counters CounterMap
	slots    SlotMap
}

// ID returns the object's stable reference.
func (o *Object) ID() ObjectRef { return o.id }

// Tags returns the object's current tag set.
func (o *Object) Tags() TagList { return o.tags }

// Counters returns the object's counter map directly. Callers within this
// package may mutate it under the modifier executor; external callers
// should treat it as read-only.
func (o *Object) Counters() CounterMap { return o.counters }

// Slots returns the object's slot map directly, with the same mutation
// caveat as Counters.
func (o *Object) Slots() SlotMap { return o.slots }
