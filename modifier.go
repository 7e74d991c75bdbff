package sepro

// CanApply is the modifier executor's guard phase. It resolves the
// modifier's target and reports whether the mutation is safe to perform.
// A false result is not an error: the actuator dispatcher silently skips
// the whole modifier group for this (this[, other]) pair.
func CanApply(c *Container, m Modifier, this, other ObjectRef, hasOther bool) bool {
	switch m.Action.Kind {
	case ActionNothing, ActionSetTags, ActionUnsetTags:
		return true
	case ActionInc, ActionClear:
		obj := resolveObject(c, m.Target, this, other, hasOther)
		if obj == nil {
			return false
		}
		_, ok := obj.counters[m.Action.Counter]
		return ok
	case ActionDec:
		obj := resolveObject(c, m.Target, this, other, hasOther)
		if obj == nil {
			return false
		}
		v, ok := obj.counters[m.Action.Counter]
		return ok && v > 0
	case ActionBind:
		cur := resolveObject(c, m.Target, this, other, hasOther)
		if cur == nil {
			return false
		}
		tgt := resolveObject(c, *m.Action.Bind, this, other, hasOther)
		if tgt == nil {
			return false
		}
		return cur.slots.Declared(m.Action.Slot)
	case ActionUnbind:
		obj := resolveObject(c, m.Target, this, other, hasOther)
		if obj == nil {
			return false
		}
		return obj.slots.Declared(m.Action.Slot)
	default:
		panic(FaultError{Msg: "unknown modifier action kind"})
	}
}

// Apply performs one modifier's mutation. The caller must have already
// confirmed that CanApply returned true for every modifier in the
// actuator's group for this (this[, other]) pair; Apply itself does not
// re-check guards other than defensively no-oping if a target that
// CanApply allowed to be absent (the unconditional actions) turns out to
// have no resolved object.
func Apply(c *Container, m Modifier, this, other ObjectRef, hasOther bool) {
	switch m.Action.Kind {
	case ActionNothing:
		// no-op
	case ActionSetTags:
		obj := resolveObject(c, m.Target, this, other, hasOther)
		if obj == nil {
			return
		}
		obj.tags = obj.tags.Union(m.Action.Tags)
	case ActionUnsetTags:
		obj := resolveObject(c, m.Target, this, other, hasOther)
		if obj == nil {
			return
		}
		obj.tags = obj.tags.Difference(m.Action.Tags)
	case ActionInc:
		obj := resolveObject(c, m.Target, this, other, hasOther)
		if obj == nil {
			return
		}
		obj.counters[m.Action.Counter]++
	case ActionDec:
		obj := resolveObject(c, m.Target, this, other, hasOther)
		if obj == nil {
			return
		}
		obj.counters[m.Action.Counter]--
	case ActionClear:
		obj := resolveObject(c, m.Target, this, other, hasOther)
		if obj == nil {
			return
		}
		obj.counters[m.Action.Counter] = 0
	case ActionBind:
		cur := resolveObject(c, m.Target, this, other, hasOther)
		if cur == nil {
			return
		}
		tgtRef, ok := ResolveTarget(c, *m.Action.Bind, this, other, hasOther)
		if !ok {
			return
		}
		cur.slots.Bind(m.Action.Slot, tgtRef)
	case ActionUnbind:
		// This asymmetry (writing to "this" regardless of the modifier's
		// declared target) is kept verbatim even though it looks like a bug.
		obj := c.GetObject(this)
		if obj == nil {
			return
		}
		obj.slots.Unbind(m.Action.Slot)
	default:
		panic(FaultError{Msg: "unknown modifier action kind"})
	}
}

// resolveObject resolves target and returns the live Object it names, or
// nil if there is nothing to act on.
func resolveObject(c *Container, target ModifierTarget, this, other ObjectRef, hasOther bool) *Object {
	ref, ok := ResolveTarget(c, target, this, other, hasOther)
	if !ok {
		return nil
	}
	return c.GetObject(ref)
}
