package compiler

import (
	"strings"
	"testing"

	"github.com/sepro-lang/sepro"
)

const sampleSource = `
CONCEPT linker (TAG linker SLOT link)
CONCEPT anchor (TAG anchor)

WHERE TAG linker, NOT BOUND link ON TAG anchor DO THIS BIND link = OTHER TRAP linked

WORLD main (
	ROOT linker
	OBJECT anchor * 3
	OBJECT linker AS seed (TAG special)
)
`

func TestCompileSampleSource(t *testing.T) {
	model, err := Compile(strings.NewReader(sampleSource))
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}

	linkerSym := sepro.Intern("linker")
	anchorSym := sepro.Intern("anchor")

	if _, ok := model.Concept(linkerSym); !ok {
		t.Fatalf("linker concept missing")
	}
	if _, ok := model.Concept(anchorSym); !ok {
		t.Fatalf("anchor concept missing")
	}

	if len(model.Actuators) != 1 {
		t.Fatalf("expected 1 actuator, got %d", len(model.Actuators))
	}
	a := model.Actuators[0]
	if !a.IsCombined() {
		t.Fatalf("actuator should be combined (has an ON clause)")
	}
	if len(a.Modifiers) != 1 || a.Modifiers[0].Action.Kind != sepro.ActionBind {
		t.Fatalf("expected a single BIND modifier, got %v", a.Modifiers)
	}
	if len(a.Traps) != 1 || a.Traps[0].String() != "linked" {
		t.Fatalf("expected trap 'linked', got %v", a.Traps)
	}

	world, ok := model.World(sepro.Intern("main"))
	if !ok {
		t.Fatalf("world 'main' missing")
	}
	if world.Root != linkerSym {
		t.Fatalf("world root = %v, want linker", world.Root)
	}
	if len(world.Graph.Instances) != 2 {
		t.Fatalf("expected 2 instance declarations, got %d", len(world.Graph.Instances))
	}
	counted := world.Graph.Instances[0]
	if counted.Kind != sepro.InstanceCounted || counted.Count != 3 {
		t.Fatalf("expected OBJECT anchor * 3, got %+v", counted)
	}
	named := world.Graph.Instances[1]
	if named.Kind != sepro.InstanceNamed || named.Name.String() != "seed" {
		t.Fatalf("expected OBJECT linker AS seed, got %+v", named)
	}
	if len(named.Initializers) != 1 || named.Initializers[0].Kind != sepro.InitializerTag {
		t.Fatalf("expected a single TAG initializer on seed, got %+v", named.Initializers)
	}
}

func TestCompileRunsEndToEnd(t *testing.T) {
	model, err := Compile(strings.NewReader(sampleSource))
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	e := sepro.NewEngine(model, nil)
	e.SetSeed(1)
	if _, err := e.Initialize("main"); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	e.Run(1)
}

func TestCompileRejectsBadSyntax(t *testing.T) {
	if _, err := Compile(strings.NewReader("CONCEPT")); err == nil {
		t.Fatalf("expected an error for incomplete CONCEPT declaration")
	}
	if _, err := Compile(strings.NewReader("WHERE ALL DO THIS FROBNICATE")); err == nil {
		t.Fatalf("expected an error for an unknown modifier verb")
	}
}
