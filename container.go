package sepro

import "sort"

// Container owns every Object for the lifetime of a simulation run.
// Objects are referenced from the outside only by ObjectRef; nothing
// outside this file should hold a *Object across a mutation boundary.
type Container struct {
	objects map[ObjectRef]*Object
	root    ObjectRef
	nextID  ObjectRef
}

// NewContainer returns an empty Container.
func NewContainer() *Container {
	return &Container{objects: make(map[ObjectRef]*Object)}
}

// CreateObject allocates a fresh, unique ObjectRef and stores a new Object
// with the given tags, counters, and declared slot names. Declared slots
// start unbound.
func (c *Container) CreateObject(tags TagList, counters CounterMap, slotNames []*Symbol) ObjectRef {
	c.nextID++
	id := c.nextID
	c.objects[id] = &Object{
		id:       id,
		tags:     tags,
		counters: counters,
		slots:    newSlotMap(slotNames),
	}
	return id
}

// GetObject returns the object referred to by ref, or nil if there is none.
func (c *Container) GetObject(ref ObjectRef) *Object {
	return c.objects[ref]
}

// RemoveAll empties the container and resets the id counter. The root
// becomes invalid until reassigned by a subsequent Initialize/SetRoot.
func (c *Container) RemoveAll() {
	c.objects = make(map[ObjectRef]*Object)
	c.nextID = 0
	c.root = 0
}

// SetRoot designates ref as the container's distinguished root object.
func (c *Container) SetRoot(ref ObjectRef) {
	c.root = ref
}

// Root returns the container's distinguished root. Valid only after a
// successful world initialization.
func (c *Container) Root() ObjectRef {
	return c.root
}

// Select yields the refs of every object matching selector. A nil selector
// (or one with Type All) matches every object. Refs are returned in
// ascending order, so a seeded engine replays the same selections; the
// returned slice is a snapshot taken in one pass over the container, so
// later mutation of matched objects cannot change which objects this call
// returns.
func (c *Container) Select(selector *Selector) []ObjectRef {
	out := make([]ObjectRef, 0, len(c.objects))
	if selector == nil || selector.IsAll() {
		for ref := range c.objects {
			out = append(out, ref)
		}
		sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
		return out
	}
	for ref, obj := range c.objects {
		if matchAll(c, selector.Predicates, obj) {
			out = append(out, ref)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PredicatesMatch evaluates preds against the object currently referred to
// by ref. Used for the post-mutation recheck in combined actuators. If ref
// no longer refers to a live object, it does not match.
func (c *Container) PredicatesMatch(preds []Predicate, ref ObjectRef) bool {
	obj := c.GetObject(ref)
	if obj == nil {
		return false
	}
	return matchAll(c, preds, obj)
}

func matchAll(c *Container, preds []Predicate, obj *Object) bool {
	for _, p := range preds {
		if !p.Eval(c, obj) {
			return false
		}
	}
	return true
}
