package sepro

import "testing"

func TestTagListSetAlgebra(t *testing.T) {
	a, b, c := Intern("a"), Intern("b"), Intern("c")

	t1 := NewTagList(a, b)
	t2 := NewTagList(b, c)

	if !t1.Has(a) || !t1.Has(b) || t1.Has(c) {
		t.Fatalf("unexpected membership in %v", t1.Slice())
	}

	u := t1.Union(t2)
	if !u.Has(a) || !u.Has(b) || !u.Has(c) || u.Len() != 3 {
		t.Fatalf("Union wrong: %v", u.Slice())
	}

	d := t1.Difference(t2)
	if !d.Has(a) || d.Has(b) || d.Has(c) || d.Len() != 1 {
		t.Fatalf("Difference wrong: %v", d.Slice())
	}

	if !t1.Subset(NewTagList(a)) {
		t.Fatalf("Subset({a}) should hold against t1")
	}
	if t1.Subset(NewTagList(c)) {
		t.Fatalf("Subset({c}) should not hold against t1")
	}

	if t1.Disjoint(t2) {
		t.Fatalf("t1 and t2 share tag b, should not be disjoint")
	}
	if !NewTagList(a).Disjoint(NewTagList(c)) {
		t.Fatalf("{a} and {c} should be disjoint")
	}
}

func TestTagListSetTagsUnsetTagsRoundTrip(t *testing.T) {
	one, two, three := Intern("one"), Intern("two"), Intern("three")
	orig := NewTagList(one, two)
	extra := NewTagList(three)

	added := orig.Union(extra)
	restored := added.Difference(extra)

	if restored.Len() != orig.Len() || !restored.Has(one) || !restored.Has(two) || restored.Has(three) {
		t.Fatalf("SetTags then UnsetTags did not restore original set: %v", restored.Slice())
	}
}

func TestTagListImmutable(t *testing.T) {
	a, b := Intern("a"), Intern("b")
	base := NewTagList(a)
	added := base.Add(b)
	if base.Has(b) {
		t.Fatalf("Add mutated the receiver")
	}
	if !added.Has(a) || !added.Has(b) {
		t.Fatalf("Add did not produce the union")
	}
}
