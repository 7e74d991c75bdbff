package sepro

import "fmt"

// ModelError is a recoverable error raised when the caller asks the engine
// to do something the Model does not support: instantiate an undeclared
// concept, or initialize an undeclared world. Callers are expected to
// handle ModelError; it never leaves the engine in a partially mutated
// state.
type ModelError struct {
	Err error
}

// Error returns the underlying message.
func (e ModelError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e ModelError) Unwrap() error {
	return e.Err
}

func newModelError(format string, args ...interface{}) ModelError {
	return ModelError{Err: fmt.Errorf(format, args...)}
}

// FaultError marks an unrecoverable invariant violation: a dangling slot
// reference, or a getCurrent request for an undeclared slot. These are
// programmer/model bugs, not conditions a caller can sensibly recover
// from mid-step, so the engine panics with a FaultError rather than
// returning one. An embedder that wants to survive a fault in, say, a
// server loop may recover it at the call to Engine.Step/Run.
type FaultError struct {
	Msg string
}

// Error returns the fault message.
func (e FaultError) Error() string {
	return "sepro: fault: " + e.Msg
}

func objRefString(ref ObjectRef) string {
	return fmt.Sprintf("#%d", uint64(ref))
}
