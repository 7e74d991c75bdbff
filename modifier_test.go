package sepro

import "testing"

func TestModifierSetUnsetTags(t *testing.T) {
	c := NewContainer()
	ready := Intern("ready")
	this := c.CreateObject(TagList{}, CounterMap{}, nil)

	set := Modifier{Target: ModifierTarget{Kind: TargetThis}, Action: ModifierAction{Kind: ActionSetTags, Tags: NewTagList(ready)}}
	if !CanApply(c, set, this, 0, false) {
		t.Fatalf("SetTags should always be applicable")
	}
	Apply(c, set, this, 0, false)
	if !c.GetObject(this).tags.Has(ready) {
		t.Fatalf("SetTags did not add tag")
	}

	unset := Modifier{Target: ModifierTarget{Kind: TargetThis}, Action: ModifierAction{Kind: ActionUnsetTags, Tags: NewTagList(ready)}}
	Apply(c, unset, this, 0, false)
	if c.GetObject(this).tags.Has(ready) {
		t.Fatalf("UnsetTags did not remove tag")
	}
}

func TestModifierIncDecClearGuarded(t *testing.T) {
	n := Intern("n")
	c := NewContainer()
	this := c.CreateObject(TagList{}, CounterMap{n: 0}, nil)

	inc := Modifier{Target: ModifierTarget{Kind: TargetThis}, Action: ModifierAction{Kind: ActionInc, Counter: n}}
	if !CanApply(c, inc, this, 0, false) {
		t.Fatalf("Inc should be applicable when counter is present")
	}
	Apply(c, inc, this, 0, false)
	if c.GetObject(this).counters[n] != 1 {
		t.Fatalf("Inc did not increment counter")
	}

	dec := Modifier{Target: ModifierTarget{Kind: TargetThis}, Action: ModifierAction{Kind: ActionDec, Counter: n}}
	if !CanApply(c, dec, this, 0, false) {
		t.Fatalf("Dec should be applicable when counter > 0")
	}
	Apply(c, dec, this, 0, false)
	if c.GetObject(this).counters[n] != 0 {
		t.Fatalf("Dec did not decrement counter")
	}
	if CanApply(c, dec, this, 0, false) {
		t.Fatalf("Dec should not be applicable when counter is zero")
	}

	clear := Modifier{Target: ModifierTarget{Kind: TargetThis}, Action: ModifierAction{Kind: ActionClear, Counter: n}}
	c.GetObject(this).counters[n] = 5
	if !CanApply(c, clear, this, 0, false) {
		t.Fatalf("Clear should be applicable when counter is present")
	}
	Apply(c, clear, this, 0, false)
	if c.GetObject(this).counters[n] != 0 {
		t.Fatalf("Clear did not zero counter")
	}

	missing := Intern("missing")
	incMissing := Modifier{Target: ModifierTarget{Kind: TargetThis}, Action: ModifierAction{Kind: ActionInc, Counter: missing}}
	if CanApply(c, incMissing, this, 0, false) {
		t.Fatalf("Inc on an absent counter should not be applicable")
	}
}

func TestModifierBindUnbind(t *testing.T) {
	link := Intern("link")
	c := NewContainer()
	this := c.CreateObject(TagList{}, CounterMap{}, []*Symbol{link})
	other := c.CreateObject(TagList{}, CounterMap{}, nil)

	bind := Modifier{
		Target: ModifierTarget{Kind: TargetThis},
		Action: ModifierAction{Kind: ActionBind, Slot: link, Bind: &ModifierTarget{Kind: TargetOther}},
	}
	if !CanApply(c, bind, this, other, true) {
		t.Fatalf("Bind should be applicable: slot declared and OTHER resolves")
	}
	Apply(c, bind, this, other, true)
	ref, bound := c.GetObject(this).slots.Get(link)
	if !bound || ref != other {
		t.Fatalf("Bind did not bind slot to other: ref=%v bound=%v", ref, bound)
	}

	unbind := Modifier{Target: ModifierTarget{Kind: TargetThis}, Action: ModifierAction{Kind: ActionUnbind, Slot: link}}
	if !CanApply(c, unbind, this, other, true) {
		t.Fatalf("Unbind should be applicable: slot declared")
	}
	Apply(c, unbind, this, other, true)
	_, bound = c.GetObject(this).slots.Get(link)
	if bound {
		t.Fatalf("Unbind did not clear binding")
	}
}

// TestModifierUnbindWritesThisRegardlessOfTarget locks in the asymmetry
// preserved from the reference implementation: Unbind always mutates
// "this", even when the modifier's Target names OTHER.
func TestModifierUnbindWritesThisRegardlessOfTarget(t *testing.T) {
	link := Intern("link")
	c := NewContainer()
	this := c.CreateObject(TagList{}, CounterMap{}, []*Symbol{link})
	other := c.CreateObject(TagList{}, CounterMap{}, []*Symbol{link})

	c.GetObject(this).slots.Bind(link, other)
	c.GetObject(other).slots.Bind(link, this)

	unbind := Modifier{Target: ModifierTarget{Kind: TargetOther}, Action: ModifierAction{Kind: ActionUnbind, Slot: link}}
	Apply(c, unbind, this, other, true)

	if _, bound := c.GetObject(this).slots.Get(link); bound {
		t.Fatalf("Unbind targeting OTHER should still clear this's binding")
	}
	if _, bound := c.GetObject(other).slots.Get(link); !bound {
		t.Fatalf("Unbind targeting OTHER should leave other's binding untouched")
	}
}

func TestModifierBindToOtherOutsideCombinedPanics(t *testing.T) {
	link := Intern("link")
	c := NewContainer()
	this := c.CreateObject(TagList{}, CounterMap{}, []*Symbol{link})

	bind := Modifier{
		Target: ModifierTarget{Kind: TargetThis},
		Action: ModifierAction{Kind: ActionBind, Slot: link, Bind: &ModifierTarget{Kind: TargetOther}},
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic resolving a Bind target of OTHER outside combined dispatch")
		}
	}()
	CanApply(c, bind, this, 0, false)
}

func TestModifierBindUndeclaredSlotNotApplicable(t *testing.T) {
	link := Intern("link")
	c := NewContainer()
	this := c.CreateObject(TagList{}, CounterMap{}, nil) // link not declared here
	other := c.CreateObject(TagList{}, CounterMap{}, nil)

	bind := Modifier{
		Target: ModifierTarget{Kind: TargetThis},
		Action: ModifierAction{Kind: ActionBind, Slot: link, Bind: &ModifierTarget{Kind: TargetOther}},
	}
	if CanApply(c, bind, this, other, true) {
		t.Fatalf("Bind to an undeclared slot should not be applicable")
	}
}
