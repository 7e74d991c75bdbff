package sepro

// Model is a fully compiled SeproLang program: declared concepts, the
// actuators that rewrite objects each step, the declared measures, and the
// named worlds that can seed a population. The engine consumes a *Model
// produced by a collaborator (the compiler package, or modelyaml); it never
// parses source text itself.
type Model struct {
	Concepts  map[*Symbol]*Concept
	Actuators []*Actuator
	Measures  []*Measure
	Worlds    map[*Symbol]*World
}

// NewModel returns an empty Model ready to be populated.
func NewModel() *Model {
	return &Model{
		Concepts: make(map[*Symbol]*Concept),
		Worlds:   make(map[*Symbol]*World),
	}
}

// Concept looks up a declared concept by name.
func (m *Model) Concept(name *Symbol) (*Concept, bool) {
	c, ok := m.Concepts[name]
	return c, ok
}

// World looks up a declared world by name.
func (m *Model) World(name *Symbol) (*World, bool) {
	w, ok := m.Worlds[name]
	return w, ok
}

// Concept is an object template: default tags, default counters, and the
// slot names every instance declares.
type Concept struct {
	Name     *Symbol
	Tags     TagList
	Counters CounterMap
	Slots    []*Symbol
}

// Selector is a conjunction of predicates a candidate object must satisfy.
// An actuator pairs one Selector for its "this" side with, optionally, a
// second Selector (Actuator.CombinedSelector) for its "other" side.
type Selector struct {
	// All, when true, matches every object regardless of Predicates.
	All bool

	Predicates []Predicate
}

// IsAll reports whether s is the "All" selector (including a nil selector,
// which Container.Select treats as All).
func (s *Selector) IsAll() bool {
	return s == nil || s.All
}

// TargetKind is the closed set of reference targets a ModifierTarget can
// name.
type TargetKind int

const (
	// TargetRoot refers to the container's distinguished root object.
	TargetRoot TargetKind = iota
	// TargetThis refers to the current "this" binding.
	TargetThis
	// TargetOther refers to the current "other" binding (combined actuators
	// only).
	TargetOther
)

// ModifierTarget names the object a Modifier acts on: one of ROOT/THIS/
// OTHER, with an optional slot dereference.
type ModifierTarget struct {
	Kind TargetKind
	Slot *Symbol // nil: no dereference
}

// ActionKind is the closed set of modifier mutations.
type ActionKind int

const (
	ActionNothing ActionKind = iota
	ActionSetTags
	ActionUnsetTags
	ActionInc
	ActionDec
	ActionClear
	ActionBind
	ActionUnbind
)

// ModifierAction is one mutation from the closed set ActionKind names, with
// the operands that kind requires.
type ModifierAction struct {
	Kind ActionKind

	Tags    TagList         // SetTags, UnsetTags
	Counter *Symbol         // Inc, Dec, Clear
	Slot    *Symbol         // Bind, Unbind: the slot name on the resolved target
	Bind    *ModifierTarget // Bind: what to bind Slot to
}

// Modifier is a single guarded mutation applied to a resolved target.
type Modifier struct {
	Target ModifierTarget
	Action ModifierAction
}

// Actuator is a production rule: a selector (plus optional combined
// selector), a list of modifiers applied atomically as a group, and
// optional trap/notification/halt side effects.
type Actuator struct {
	Selector         Selector
	CombinedSelector *Selector // nil unless this actuator is combined

	Modifiers     []Modifier
	Traps         []*Symbol
	Notifications []*Symbol
	DoesHalt      bool
}

// IsCombined reports whether a has a combined (cartesian) selector.
func (a *Actuator) IsCombined() bool {
	return a.CombinedSelector != nil
}

// MeasureKind is the closed set of probe accumulations a Measure can
// declare: the two scalar folds a probe naturally supports.
type MeasureKind int

const (
	// MeasureCount counts the objects matching Predicates.
	MeasureCount MeasureKind = iota
	// MeasureCounterSum sums SumCounter over the objects matching
	// Predicates, skipping objects where the counter is absent.
	MeasureCounterSum
)

// Measure names an accumulator over the current object population,
// producing one scalar per probe call.
type Measure struct {
	Name       *Symbol
	Predicates []Predicate
	Kind       MeasureKind
	SumCounter *Symbol // MeasureCounterSum only
}

// InitializerKind is the closed set of per-instance initializers a world's
// instance graph can declare.
type InitializerKind int

const (
	InitializerTag InitializerKind = iota
	InitializerCounter
)

// Initializer overrides one tag or counter on a freshly instantiated
// object.
type Initializer struct {
	Kind    InitializerKind
	Tag     *Symbol // InitializerTag
	Counter *Symbol // InitializerCounter
	Value   int64   // InitializerCounter
}

// InstanceKind distinguishes a world's instance declarations: a single
// named instance, or an anonymous run of count instances.
type InstanceKind int

const (
	InstanceNamed InstanceKind = iota
	InstanceCounted
)

// InstanceDecl is one entry in a World's instance graph.
type InstanceDecl struct {
	Concept *Symbol
	Kind    InstanceKind
	Name    *Symbol // InstanceNamed
	Count   int     // InstanceCounted, >= 1

	Initializers []Initializer
}

// InstanceGraph is the ordered sequence of instance declarations a world
// seeds into the container on initialize.
type InstanceGraph struct {
	Instances []InstanceDecl
}

// World is the initial-population descriptor: an optional root concept
// plus an instance graph.
type World struct {
	Root  *Symbol // nil: no declared root concept
	Graph InstanceGraph
}
