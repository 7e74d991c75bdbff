package sepro

// ResolveTarget maps a symbolic ModifierTarget to a concrete ObjectRef
// under a given this/other binding pair.
//
// The returned bool is true iff there is an object to act on. It is false
// only when the target dereferences through an unbound slot (the caller,
// the modifier executor, treats that as "nothing to act on", not an
// error). Violations of the resolver's own preconditions (ROOT with no
// live object, OTHER requested outside combined dispatch, or a slot
// dereference through an undeclared slot) are programmer/model bugs and
// panic with a FaultError instead of returning false.
func ResolveTarget(c *Container, target ModifierTarget, this, other ObjectRef, hasOther bool) (ObjectRef, bool) {
	var base ObjectRef
	switch target.Kind {
	case TargetRoot:
		base = c.Root()
		if c.GetObject(base) == nil {
			panic(FaultError{Msg: "getCurrent: ROOT has no live object"})
		}
	case TargetThis:
		base = this
	case TargetOther:
		if !hasOther {
			panic(FaultError{Msg: "getCurrent: OTHER requested outside combined dispatch"})
		}
		base = other
	default:
		panic(FaultError{Msg: "getCurrent: unknown target kind"})
	}

	if target.Slot == nil {
		return base, true
	}

	obj := c.GetObject(base)
	if obj == nil {
		panic(FaultError{Msg: "getCurrent: base object " + objRefString(base) + " does not exist"})
	}
	if !obj.slots.Declared(target.Slot) {
		panic(FaultError{Msg: "getCurrent: slot " + target.Slot.String() + " is not declared on object " + objRefString(base)})
	}
	ref, bound := obj.slots.Get(target.Slot)
	if !bound {
		return 0, false
	}
	return ref, true
}
