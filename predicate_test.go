package sepro

import "testing"

func TestPredicateAll(t *testing.T) {
	c := NewContainer()
	ref := c.CreateObject(TagList{}, CounterMap{}, nil)
	obj := c.GetObject(ref)

	p := Predicate{Kind: PredAll}
	if !p.Eval(c, obj) {
		t.Fatalf("PredAll should always be true")
	}
	p.IsNegated = true
	if p.Eval(c, obj) {
		t.Fatalf("negated PredAll should be false")
	}
}

func TestPredicateTagSet(t *testing.T) {
	c := NewContainer()
	ready, linked := Intern("ready"), Intern("linked")
	ref := c.CreateObject(NewTagList(ready), CounterMap{}, nil)
	obj := c.GetObject(ref)

	p := Predicate{Kind: PredTagSet, Tags: NewTagList(ready)}
	if !p.Eval(c, obj) {
		t.Fatalf("object has tag ready, predicate should match")
	}

	p2 := Predicate{Kind: PredTagSet, Tags: NewTagList(linked)}
	if p2.Eval(c, obj) {
		t.Fatalf("object lacks tag linked, predicate should not match")
	}
}

func TestPredicateCounterZero(t *testing.T) {
	c := NewContainer()
	n := Intern("n")
	ref := c.CreateObject(TagList{}, CounterMap{n: 0}, nil)
	obj := c.GetObject(ref)

	p := Predicate{Kind: PredCounterZero, Counter: n}
	if !p.Eval(c, obj) {
		t.Fatalf("counter n is present and zero, should match")
	}

	obj.counters[n] = 1
	if p.Eval(c, obj) {
		t.Fatalf("counter n is nonzero, should not match")
	}

	missing := Intern("missing")
	p2 := Predicate{Kind: PredCounterZero, Counter: missing}
	if p2.Eval(c, obj) {
		t.Fatalf("absent counter should not satisfy CounterZero")
	}
}

func TestPredicateIsBound(t *testing.T) {
	next := Intern("next")
	c := NewContainer()
	a := c.CreateObject(TagList{}, CounterMap{}, []*Symbol{next})
	b := c.CreateObject(TagList{}, CounterMap{}, nil)
	objA := c.GetObject(a)

	p := Predicate{Kind: PredIsBound, BoundSlot: next}
	if p.Eval(c, objA) {
		t.Fatalf("slot next starts unbound, should not match")
	}

	objA.slots.Bind(next, b)
	if !p.Eval(c, objA) {
		t.Fatalf("slot next is now bound, should match")
	}
}

func TestPredicateInSlotDereference(t *testing.T) {
	next := Intern("next")
	ready := Intern("ready")
	c := NewContainer()
	a := c.CreateObject(TagList{}, CounterMap{}, []*Symbol{next})
	b := c.CreateObject(NewTagList(ready), CounterMap{}, nil)
	objA := c.GetObject(a)

	p := Predicate{Kind: PredTagSet, Tags: NewTagList(ready), InSlot: next}
	if p.Eval(c, objA) {
		t.Fatalf("slot next is unbound, dereferenced predicate must be false")
	}

	p.IsNegated = true
	if p.Eval(c, objA) {
		t.Fatalf("unbound InSlot predicate must stay false regardless of negation")
	}

	objA.slots.Bind(next, b)
	p.IsNegated = false
	if !p.Eval(c, objA) {
		t.Fatalf("next now points to an object tagged ready, should match")
	}
}

func TestPredicateDanglingSlotPanics(t *testing.T) {
	next := Intern("next")
	c := NewContainer()
	a := c.CreateObject(TagList{}, CounterMap{}, []*Symbol{next})
	objA := c.GetObject(a)
	objA.slots.Bind(next, ObjectRef(9999)) // never created in this container

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on dangling slot reference")
		}
	}()
	p := Predicate{Kind: PredAll, InSlot: next}
	p.Eval(c, objA)
}
