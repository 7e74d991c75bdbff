package sepro

import (
	"fmt"
	"io"
	"time"

	"gitlab.com/variadico/lctime"
)

// Logger observes probe output and notifications. Like Delegate, it is
// purely observational and must not mutate the engine or Container. The
// engine holds at most one Logger.
type Logger interface {
	// LoggingWillStart is called once at the start of Run, before the
	// first step, with the declared measures and the requested step
	// budget.
	LoggingWillStart(measures []*Measure, steps int)
	// LoggingDidEnd is called once when Run returns, with the number of
	// steps actually completed.
	LoggingDidEnd(stepsRun int)
	// LogRecord is called once per probe call with the step at which it
	// was taken and the resulting name->value record.
	LogRecord(step uint64, record map[*Symbol]MeasureValue)
	// LogNotification is called once for every notification symbol an
	// actuator emits during a step.
	LogNotification(step uint64, symbol *Symbol)
}

// TextLogger is a Logger that writes human-readable lines to an io.Writer,
// timestamped with a locale-aware format (grounded on the teacher's use of
// gitlab.com/variadico/lctime for Date asString).
type TextLogger struct {
	W          io.Writer
	TimeFormat string // strftime-style layout; defaults to "%Y-%m-%d %H:%M:%S"
	Now        func() time.Time
}

// NewTextLogger returns a TextLogger writing to w with a default timestamp
// format and the real clock.
func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{W: w, TimeFormat: "%Y-%m-%d %H:%M:%S", Now: time.Now}
}

func (l *TextLogger) stamp() string {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	format := l.TimeFormat
	if format == "" {
		format = "%Y-%m-%d %H:%M:%S"
	}
	return lctime.Strftime(format, now())
}

// LoggingWillStart writes a header line naming the declared measures and
// the step budget.
func (l *TextLogger) LoggingWillStart(measures []*Measure, steps int) {
	names := make([]string, len(measures))
	for i, m := range measures {
		names[i] = m.Name.String()
	}
	fmt.Fprintf(l.W, "[%s] run starting: %d steps, measures=%v\n", l.stamp(), steps, names)
}

// LoggingDidEnd writes a trailer line with the number of steps completed.
func (l *TextLogger) LoggingDidEnd(stepsRun int) {
	fmt.Fprintf(l.W, "[%s] run ended: %d steps completed\n", l.stamp(), stepsRun)
}

// LogRecord writes one line per probe() call.
func (l *TextLogger) LogRecord(step uint64, record map[*Symbol]MeasureValue) {
	fmt.Fprintf(l.W, "[%s] step %d:", l.stamp(), step)
	for sym, val := range record {
		fmt.Fprintf(l.W, " %s=%d", sym.String(), val)
	}
	fmt.Fprintln(l.W)
}

// LogNotification writes one line per notification.
func (l *TextLogger) LogNotification(step uint64, symbol *Symbol) {
	fmt.Fprintf(l.W, "[%s] step %d: notification %s\n", l.stamp(), step, symbol.String())
}
