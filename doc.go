/*
Package sepro implements the simulation engine for SeproLang, a rule-based
discrete simulator for object-graph systems.

A Model declares named concepts (object templates) and actuators
(production rules). A World seeds an initial population of Objects into a
Container. At each simulation step, every actuator is evaluated against the
current object population; matching objects are rewritten by a small, fixed
set of state-mutating Modifiers. Traps, notifications, and a halt flag let
actuators signal observers and stop the run.

This package is the engine only: the step loop, actuator dispatch (unary
and combined/cartesian selection), predicate evaluation, the object
container, the ROOT/THIS/OTHER reference resolver, the modifier executor,
trap/notification/halt semantics, and world instantiation. Surface syntax
parsing of the SeproLang DSL lives in the compiler package; an alternate,
parser-free way to build a Model lives in the modelyaml package. Neither is
required by this package: an embedder can build a *Model by hand and drive
it with NewEngine.

Basic usage:

	model := sepro.NewModel()
	// ... populate model.Concepts, model.Actuators, model.Worlds ...

	engine := sepro.NewEngine(model, nil)
	engine.SetLogger(sepro.NewTextLogger(os.Stdout))
	if _, err := engine.Initialize("main"); err != nil {
		log.Fatal(err)
	}
	engine.Run(10)
	engine.DebugDumpStdout()
*/
package sepro
