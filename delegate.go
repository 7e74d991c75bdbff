package sepro

// Delegate observes the engine's run/step lifecycle. All methods are
// purely observational: a Delegate must not mutate the engine or its
// Container. The engine holds at most one Delegate.
type Delegate interface {
	// WillRun is called once before Run begins its first step.
	WillRun(e *Engine)
	// DidRun is called once after Run's loop exits, whether by exhausting
	// its step budget or by a halt.
	DidRun(e *Engine)
	// WillStep is called at the start of every Step, after the trap
	// multiset has been cleared and stepCount incremented.
	WillStep(e *Engine)
	// DidStep is called at the end of every Step, before probing.
	DidStep(e *Engine)
	// HandleTrap is called once per Step when the trap multiset is
	// non-empty, after DidStep.
	HandleTrap(e *Engine, traps map[*Symbol]int)
	// HandleHalt is called at most once per Run, immediately after the
	// step that set isHalted.
	HandleHalt(e *Engine)
}

// NopDelegate is a Delegate whose methods all do nothing. Embed it to
// implement only the hooks you care about.
type NopDelegate struct{}

func (NopDelegate) WillRun(*Engine)                       {}
func (NopDelegate) DidRun(*Engine)                        {}
func (NopDelegate) WillStep(*Engine)                      {}
func (NopDelegate) DidStep(*Engine)                       {}
func (NopDelegate) HandleTrap(*Engine, map[*Symbol]int)   {}
func (NopDelegate) HandleHalt(*Engine)                    {}
