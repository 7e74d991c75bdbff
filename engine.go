package sepro

import (
	"math/rand"
	"time"
)

// Engine is the stateful simulation runner: a compiled Model, the
// Container it mutates, and its own bookkeeping (step count, halt flag,
// trap multiset, and the optional observers).
type Engine struct {
	model     *Model
	container *Container

	stepCount uint64
	isHalted  bool
	traps     map[*Symbol]int

	rng      *rand.Rand
	logger   Logger
	delegate Delegate
}

// NewEngine returns an Engine at stepCount=0, isHalted=false, over model
// and container. If container is nil, a fresh empty Container is created.
// The shuffle RNG is seeded nondeterministically; call SetSeed for
// reproducible runs.
func NewEngine(model *Model, container *Container) *Engine {
	if container == nil {
		container = NewContainer()
	}
	return &Engine{
		model:     model,
		container: container,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed reseeds the engine's shuffle RNG. Two engines built from the same
// (model, world, steps) and the same seed produce byte-identical final
// object states.
func (e *Engine) SetSeed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// SetLogger attaches l as the engine's Logger, replacing any previous one.
// Pass nil to detach.
func (e *Engine) SetLogger(l Logger) { e.logger = l }

// SetDelegate attaches d as the engine's Delegate, replacing any previous
// one. Pass nil to detach.
func (e *Engine) SetDelegate(d Delegate) { e.delegate = d }

// Model returns the engine's compiled model.
func (e *Engine) Model() *Model { return e.model }

// Container returns the engine's object container.
func (e *Engine) Container() *Container { return e.container }

// StepCount returns the number of completed steps since construction.
// Nothing in the engine resets it, Initialize included.
func (e *Engine) StepCount() uint64 { return e.stepCount }

// IsHalted reports whether the most recently dispatched actuator requested
// a halt. Every dispatch reassigns it; Initialize does not reset it.
func (e *Engine) IsHalted() bool { return e.isHalted }

// Step performs exactly one simulation step:
//  1. Clear the trap multiset.
//  2. Increment stepCount.
//  3. delegate.WillStep.
//  4. Shuffle the model's actuators with the engine's RNG and dispatch each.
//  5. delegate.DidStep.
//  6. If a logger is attached, probe().
//  7. If traps is non-empty, delegate.HandleTrap.
func (e *Engine) Step() {
	e.traps = make(map[*Symbol]int)
	e.stepCount++

	if e.delegate != nil {
		e.delegate.WillStep(e)
	}

	for _, a := range e.shuffledActuators() {
		e.dispatch(a)
	}

	if e.delegate != nil {
		e.delegate.DidStep(e)
	}
	if e.logger != nil {
		e.probe()
	}
	if len(e.traps) > 0 && e.delegate != nil {
		e.delegate.HandleTrap(e, e.traps)
	}
}

// Run performs up to steps steps, stopping early if a step sets the halt
// flag. It returns the number of steps actually completed.
func (e *Engine) Run(steps int) int {
	if e.logger != nil {
		e.logger.LoggingWillStart(e.model.Measures, steps)
		e.probe()
	}
	if e.delegate != nil {
		e.delegate.WillRun(e)
	}

	stepsRun := 0
	for i := 0; i < steps; i++ {
		e.Step()
		stepsRun++
		if e.isHalted {
			if e.delegate != nil {
				e.delegate.HandleHalt(e)
			}
			break
		}
	}

	if e.delegate != nil {
		e.delegate.DidRun(e)
	}
	if e.logger != nil {
		e.logger.LoggingDidEnd(stepsRun)
	}
	return stepsRun
}

// shuffledActuators returns a fresh pseudo-random permutation of the
// model's actuators, using the engine's own RNG. The model's own actuator
// slice is left untouched.
func (e *Engine) shuffledActuators() []*Actuator {
	n := len(e.model.Actuators)
	order := make([]*Actuator, n)
	copy(order, e.model.Actuators)
	e.rng.Shuffle(n, func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}
