// Package modelyaml builds a *sepro.Model from a declarative YAML document,
// an alternate to the compiler package's DSL surface syntax. It exists for
// fixtures and tooling that would rather hand-author structured data than
// source text (grounded on the teacher's own use of gopkg.in/yaml.v2 in its
// addon-data tooling, cmd/mkaddon/mkaddon.go, for the same "declarative
// document describes a runtime value" shape).
package modelyaml

import (
	"fmt"
	"io"
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/sepro-lang/sepro"
)

// Document is the top-level YAML shape: named concepts, a list of
// actuators, and named worlds.
type Document struct {
	Concepts  []ConceptDoc        `yaml:"concepts"`
	Actuators []ActuatorDoc       `yaml:"actuators"`
	Measures  []MeasureDoc        `yaml:"measures,omitempty"`
	Worlds    map[string]WorldDoc `yaml:"worlds"`
}

// MeasureDoc names one probe accumulator. Kind is "count" or "counter_sum";
// counter_sum requires SumCounter.
type MeasureDoc struct {
	Name       string         `yaml:"name"`
	Kind       string         `yaml:"kind"`
	Predicates []PredicateDoc `yaml:"predicates,omitempty"`
	SumCounter string         `yaml:"sum_counter,omitempty"`
}

// ConceptDoc is one concept declaration.
type ConceptDoc struct {
	Name     string           `yaml:"name"`
	Tags     []string         `yaml:"tags,omitempty"`
	Counters map[string]int64 `yaml:"counters,omitempty"`
	Slots    []string         `yaml:"slots,omitempty"`
}

// PredicateDoc is one predicate term. Kind is one of "all", "tag",
// "counter_zero", "is_bound".
type PredicateDoc struct {
	Kind    string   `yaml:"kind"`
	Tags    []string `yaml:"tags,omitempty"`
	Counter string   `yaml:"counter,omitempty"`
	Slot    string   `yaml:"slot,omitempty"`
	Negated bool     `yaml:"negated,omitempty"`
	InSlot  string   `yaml:"in_slot,omitempty"`
}

// SelectorDoc is a conjunction of predicates, or the "all objects" selector.
type SelectorDoc struct {
	All        bool           `yaml:"all,omitempty"`
	Predicates []PredicateDoc `yaml:"predicates,omitempty"`
}

// TargetDoc names a ROOT/THIS/OTHER reference, optionally dereferenced
// through a slot.
type TargetDoc struct {
	Kind string `yaml:"kind"`
	Slot string `yaml:"slot,omitempty"`
}

// ActionDoc is one modifier action. Kind is one of "nothing", "set_tags",
// "unset_tags", "inc", "dec", "clear", "bind", "unbind".
type ActionDoc struct {
	Kind    string     `yaml:"kind"`
	Tags    []string   `yaml:"tags,omitempty"`
	Counter string     `yaml:"counter,omitempty"`
	Slot    string     `yaml:"slot,omitempty"`
	Bind    *TargetDoc `yaml:"bind,omitempty"`
}

// ModifierDoc pairs a target with the action applied to it.
type ModifierDoc struct {
	Target TargetDoc `yaml:"target"`
	Action ActionDoc `yaml:"action"`
}

// ActuatorDoc is one production rule.
type ActuatorDoc struct {
	Selector      SelectorDoc   `yaml:"selector"`
	Other         *SelectorDoc  `yaml:"other,omitempty"`
	Modifiers     []ModifierDoc `yaml:"modifiers,omitempty"`
	Traps         []string      `yaml:"traps,omitempty"`
	Notifications []string      `yaml:"notifications,omitempty"`
	Halt          bool          `yaml:"halt,omitempty"`
}

// InitializerDoc overrides one tag or counter on a freshly instantiated
// object. Exactly one of Tag or Counter should be set.
type InitializerDoc struct {
	Tag     string `yaml:"tag,omitempty"`
	Counter string `yaml:"counter,omitempty"`
	Value   int64  `yaml:"value,omitempty"`
}

// InstanceDoc is one entry in a world's instance graph. Count defaults to 1
// when As is empty; setting As makes this a named instance instead.
type InstanceDoc struct {
	Concept      string           `yaml:"concept"`
	Count        int              `yaml:"count,omitempty"`
	As           string           `yaml:"as,omitempty"`
	Initializers []InitializerDoc `yaml:"init,omitempty"`
}

// WorldDoc is the initial-population descriptor for one named world.
type WorldDoc struct {
	Root      string        `yaml:"root,omitempty"`
	Instances []InstanceDoc `yaml:"instances,omitempty"`
}

// Load reads a YAML document from r and builds the *sepro.Model it
// describes.
func Load(r io.Reader) (*sepro.Model, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("modelyaml: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("modelyaml: %w", err)
	}
	return build(&doc)
}

func build(doc *Document) (*sepro.Model, error) {
	m := sepro.NewModel()

	for _, cd := range doc.Concepts {
		tags := sepro.TagList{}
		for _, t := range cd.Tags {
			tags = tags.Add(sepro.Intern(t))
		}
		counters := sepro.CounterMap{}
		for name, v := range cd.Counters {
			counters[sepro.Intern(name)] = v
		}
		var slots []*sepro.Symbol
		for _, s := range cd.Slots {
			slots = append(slots, sepro.Intern(s))
		}
		sym := sepro.Intern(cd.Name)
		m.Concepts[sym] = &sepro.Concept{Name: sym, Tags: tags, Counters: counters, Slots: slots}
	}

	for _, ad := range doc.Actuators {
		sel, err := buildSelector(ad.Selector)
		if err != nil {
			return nil, err
		}
		actuator := &sepro.Actuator{Selector: sel, DoesHalt: ad.Halt}
		if ad.Other != nil {
			other, err := buildSelector(*ad.Other)
			if err != nil {
				return nil, err
			}
			actuator.CombinedSelector = &other
		}
		for _, md := range ad.Modifiers {
			mod, err := buildModifier(md)
			if err != nil {
				return nil, err
			}
			actuator.Modifiers = append(actuator.Modifiers, mod)
		}
		for _, s := range ad.Traps {
			actuator.Traps = append(actuator.Traps, sepro.Intern(s))
		}
		for _, s := range ad.Notifications {
			actuator.Notifications = append(actuator.Notifications, sepro.Intern(s))
		}
		m.Actuators = append(m.Actuators, actuator)
	}

	for _, md := range doc.Measures {
		measure := &sepro.Measure{Name: sepro.Intern(md.Name)}
		switch md.Kind {
		case "count":
			measure.Kind = sepro.MeasureCount
		case "counter_sum":
			measure.Kind = sepro.MeasureCounterSum
			measure.SumCounter = sepro.Intern(md.SumCounter)
		default:
			return nil, fmt.Errorf("modelyaml: unknown measure kind %q", md.Kind)
		}
		for _, pd := range md.Predicates {
			pred, err := buildPredicate(pd)
			if err != nil {
				return nil, err
			}
			measure.Predicates = append(measure.Predicates, pred)
		}
		m.Measures = append(m.Measures, measure)
	}

	for name, wd := range doc.Worlds {
		world := &sepro.World{}
		if wd.Root != "" {
			world.Root = sepro.Intern(wd.Root)
		}
		for _, id := range wd.Instances {
			decl := sepro.InstanceDecl{Concept: sepro.Intern(id.Concept), Kind: sepro.InstanceCounted, Count: 1}
			if id.Count > 0 {
				decl.Count = id.Count
			}
			if id.As != "" {
				decl.Kind = sepro.InstanceNamed
				decl.Name = sepro.Intern(id.As)
			}
			for _, initDoc := range id.Initializers {
				init, err := buildInitializer(initDoc)
				if err != nil {
					return nil, err
				}
				decl.Initializers = append(decl.Initializers, init)
			}
			world.Graph.Instances = append(world.Graph.Instances, decl)
		}
		m.Worlds[sepro.Intern(name)] = world
	}

	return m, nil
}

func buildSelector(sd SelectorDoc) (sepro.Selector, error) {
	if sd.All {
		return sepro.Selector{All: true}, nil
	}
	var preds []sepro.Predicate
	for _, pd := range sd.Predicates {
		pred, err := buildPredicate(pd)
		if err != nil {
			return sepro.Selector{}, err
		}
		preds = append(preds, pred)
	}
	return sepro.Selector{Predicates: preds}, nil
}

func buildPredicate(pd PredicateDoc) (sepro.Predicate, error) {
	pred := sepro.Predicate{IsNegated: pd.Negated}
	if pd.InSlot != "" {
		pred.InSlot = sepro.Intern(pd.InSlot)
	}
	switch pd.Kind {
	case "all":
		pred.Kind = sepro.PredAll
	case "tag":
		tags := sepro.TagList{}
		for _, t := range pd.Tags {
			tags = tags.Add(sepro.Intern(t))
		}
		pred.Kind = sepro.PredTagSet
		pred.Tags = tags
	case "counter_zero":
		pred.Kind = sepro.PredCounterZero
		pred.Counter = sepro.Intern(pd.Counter)
	case "is_bound":
		pred.Kind = sepro.PredIsBound
		pred.BoundSlot = sepro.Intern(pd.Slot)
	default:
		return sepro.Predicate{}, fmt.Errorf("modelyaml: unknown predicate kind %q", pd.Kind)
	}
	return pred, nil
}

func buildTarget(td TargetDoc) (sepro.ModifierTarget, error) {
	target := sepro.ModifierTarget{}
	switch td.Kind {
	case "root":
		target.Kind = sepro.TargetRoot
	case "this":
		target.Kind = sepro.TargetThis
	case "other":
		target.Kind = sepro.TargetOther
	default:
		return sepro.ModifierTarget{}, fmt.Errorf("modelyaml: unknown target kind %q", td.Kind)
	}
	if td.Slot != "" {
		target.Slot = sepro.Intern(td.Slot)
	}
	return target, nil
}

func buildModifier(md ModifierDoc) (sepro.Modifier, error) {
	target, err := buildTarget(md.Target)
	if err != nil {
		return sepro.Modifier{}, err
	}
	action := sepro.ModifierAction{}
	switch md.Action.Kind {
	case "nothing":
		action.Kind = sepro.ActionNothing
	case "set_tags":
		action.Kind = sepro.ActionSetTags
		tags := sepro.TagList{}
		for _, t := range md.Action.Tags {
			tags = tags.Add(sepro.Intern(t))
		}
		action.Tags = tags
	case "unset_tags":
		action.Kind = sepro.ActionUnsetTags
		tags := sepro.TagList{}
		for _, t := range md.Action.Tags {
			tags = tags.Add(sepro.Intern(t))
		}
		action.Tags = tags
	case "inc":
		action.Kind = sepro.ActionInc
		action.Counter = sepro.Intern(md.Action.Counter)
	case "dec":
		action.Kind = sepro.ActionDec
		action.Counter = sepro.Intern(md.Action.Counter)
	case "clear":
		action.Kind = sepro.ActionClear
		action.Counter = sepro.Intern(md.Action.Counter)
	case "bind":
		action.Kind = sepro.ActionBind
		action.Slot = sepro.Intern(md.Action.Slot)
		if md.Action.Bind == nil {
			return sepro.Modifier{}, fmt.Errorf("modelyaml: bind action missing its target")
		}
		bindTarget, err := buildTarget(*md.Action.Bind)
		if err != nil {
			return sepro.Modifier{}, err
		}
		action.Bind = &bindTarget
	case "unbind":
		action.Kind = sepro.ActionUnbind
		action.Slot = sepro.Intern(md.Action.Slot)
	default:
		return sepro.Modifier{}, fmt.Errorf("modelyaml: unknown action kind %q", md.Action.Kind)
	}
	return sepro.Modifier{Target: target, Action: action}, nil
}

func buildInitializer(id InitializerDoc) (sepro.Initializer, error) {
	switch {
	case id.Tag != "":
		return sepro.Initializer{Kind: sepro.InitializerTag, Tag: sepro.Intern(id.Tag)}, nil
	case id.Counter != "":
		return sepro.Initializer{Kind: sepro.InitializerCounter, Counter: sepro.Intern(id.Counter), Value: id.Value}, nil
	default:
		return sepro.Initializer{}, fmt.Errorf("modelyaml: initializer must set either tag or counter")
	}
}
