package modelyaml

import (
	"strings"
	"testing"

	"github.com/sepro-lang/sepro"
)

const sampleDoc = `
concepts:
  - name: linker
    tags: [linker]
    slots: [link]
  - name: anchor
    tags: [anchor]

actuators:
  - selector:
      predicates:
        - kind: tag
          tags: [linker]
        - kind: is_bound
          slot: link
          negated: true
    other:
      predicates:
        - kind: tag
          tags: [anchor]
    modifiers:
      - target: {kind: this}
        action: {kind: bind, slot: link, bind: {kind: other}}
    traps: [linked]

measures:
  - name: linker_count
    kind: count
    predicates:
      - kind: tag
        tags: [linker]

worlds:
  main:
    root: linker
    instances:
      - concept: anchor
        count: 3
      - concept: linker
        as: seed
        init:
          - tag: special
`

func TestLoadSampleDocument(t *testing.T) {
	model, err := Load(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if _, ok := model.Concept(sepro.Intern("linker")); !ok {
		t.Fatalf("linker concept missing")
	}
	if len(model.Actuators) != 1 {
		t.Fatalf("expected 1 actuator, got %d", len(model.Actuators))
	}
	if !model.Actuators[0].IsCombined() {
		t.Fatalf("actuator should be combined")
	}
	if len(model.Measures) != 1 || model.Measures[0].Kind != sepro.MeasureCount {
		t.Fatalf("expected 1 count measure, got %v", model.Measures)
	}

	world, ok := model.World(sepro.Intern("main"))
	if !ok {
		t.Fatalf("world 'main' missing")
	}
	if len(world.Graph.Instances) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(world.Graph.Instances))
	}
}

func TestLoadRunsEndToEnd(t *testing.T) {
	model, err := Load(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	e := sepro.NewEngine(model, nil)
	e.SetSeed(1)
	if _, err := e.Initialize("main"); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	e.Run(1)
}

func TestLoadUnknownPredicateKindErrors(t *testing.T) {
	bad := `
concepts: []
actuators:
  - selector:
      predicates:
        - kind: bogus
worlds: {}
`
	if _, err := Load(strings.NewReader(bad)); err == nil {
		t.Fatalf("expected an error for an unknown predicate kind")
	}
}
