package sepro

// dispatch evaluates one actuator for the current step: it chooses unary
// or combined (cartesian) matching, applies modifier groups to every
// matched pair, then applies the actuator's per-dispatch side effects.
// Traps and notifications are added every time an actuator is dispatched,
// regardless of whether it matched anything; isHalted is assigned, not
// OR'd, so a later non-halting actuator in the same step clears an
// earlier halt request. This is kept verbatim even though it looks odd.
func (e *Engine) dispatch(a *Actuator) {
	if a.IsCombined() {
		e.dispatchCombined(a)
	} else {
		e.dispatchUnary(a)
	}

	for _, sym := range a.Traps {
		e.traps[sym]++
	}
	for _, sym := range a.Notifications {
		if e.logger != nil {
			e.logger.LogNotification(e.stepCount, sym)
		}
	}
	e.isHalted = a.DoesHalt
}

// dispatchUnary applies the unary (single-object) form: every modifier in
// the group applies to one `this`, or none do.
func (e *Engine) dispatchUnary(a *Actuator) {
	for _, this := range e.container.Select(&a.Selector) {
		if allCanApply(e.container, a.Modifiers, this, 0, false) {
			for _, m := range a.Modifiers {
				Apply(e.container, m, this, 0, false)
			}
		}
	}
}

// dispatchCombined applies the cartesian (pairwise) form. otherSet is
// captured once before the inner loop; mutations performed by the
// actuator's own modifiers may still be observed by later iterations of
// thisSet/otherSet, and that is intentional.
func (e *Engine) dispatchCombined(a *Actuator) {
	thisSet := e.container.Select(&a.Selector)
	otherSet := e.container.Select(a.CombinedSelector)

	for _, this := range thisSet {
		for _, other := range otherSet {
			if this == other {
				continue
			}
			if !allCanApply(e.container, a.Modifiers, this, other, true) {
				continue
			}
			for _, m := range a.Modifiers {
				Apply(e.container, m, this, other, true)
			}
			if !a.Selector.IsAll() && !e.container.PredicatesMatch(a.Selector.Predicates, this) {
				// `this` no longer satisfies the left selector: advance to
				// the next `this` instead of continuing to pair it with the
				// rest of otherSet.
				break
			}
		}
	}
}

// allCanApply reports whether every modifier in mods guards true for this
// (this[, other]) pair; the actuator dispatcher treats the group as
// atomic.
func allCanApply(c *Container, mods []Modifier, this, other ObjectRef, hasOther bool) bool {
	for _, m := range mods {
		if !CanApply(c, m, this, other, hasOther) {
			return false
		}
	}
	return true
}
