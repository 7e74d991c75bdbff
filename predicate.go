package sepro

// PredicateKind is the closed set of predicate tests.
type PredicateKind int

const (
	// PredAll always evaluates true.
	PredAll PredicateKind = iota
	// PredTagSet tests that Tags is a subset of the object's tags.
	PredTagSet
	// PredCounterZero tests that Counter is present on the object and zero.
	PredCounterZero
	// PredIsBound tests that BoundSlot is present and bound on the object.
	PredIsBound
)

// Predicate is a boolean test over one Object, optionally dereferenced
// through a named slot first.
type Predicate struct {
	Kind     PredicateKind
	Tags     TagList // PredTagSet
	Counter  *Symbol // PredCounterZero
	BoundSlot *Symbol // PredIsBound

	IsNegated bool
	InSlot    *Symbol // nil: evaluate on the object itself
}

// Eval evaluates p against obj:
//  1. If InSlot is set, dereference through it; an unbound (or undeclared)
//     slot evaluates false regardless of negation.
//  2. Compute the base boolean for the (possibly dereferenced) object.
//  3. XOR with IsNegated.
func (p Predicate) Eval(c *Container, obj *Object) bool {
	target := obj
	if p.InSlot != nil {
		ref, bound := obj.slots.Get(p.InSlot)
		if !bound {
			return false
		}
		t := c.GetObject(ref)
		if t == nil {
			panic(FaultError{Msg: "dangling slot reference: slot " + p.InSlot.String() + " on object " + objRefString(obj.id) + " points to a missing object"})
		}
		target = t
	}

	var base bool
	switch p.Kind {
	case PredAll:
		base = true
	case PredTagSet:
		base = target.tags.Subset(p.Tags)
	case PredCounterZero:
		v, ok := target.counters[p.Counter]
		base = ok && v == 0
	case PredIsBound:
		_, bound := target.slots.Get(p.BoundSlot)
		base = bound
	default:
		panic(FaultError{Msg: "unknown predicate kind"})
	}
	return base != p.IsNegated
}
