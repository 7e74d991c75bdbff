package sepro

// MeasureValue is the scalar type a Probe accumulates and a Logger records.
type MeasureValue int64

// probe builds one accumulator per declared measure, folds every object in
// the container into the measures it matches, and hands the resulting
// record to the logger. It is a no-op if no logger is attached. Complexity
// is O(#objects × #measures); the loop is fused across measures in a
// single pass over the objects rather than one pass per measure.
func (e *Engine) probe() {
	if e.logger == nil {
		return
	}
	measures := e.model.Measures
	record := make(map[*Symbol]MeasureValue, len(measures))
	acc := make([]MeasureValue, len(measures))

	for _, ref := range e.container.Select(nil) {
		obj := e.container.GetObject(ref)
		if obj == nil {
			continue
		}
		for i, m := range measures {
			if !matchAll(e.container, m.Predicates, obj) {
				continue
			}
			switch m.Kind {
			case MeasureCount:
				acc[i]++
			case MeasureCounterSum:
				if v, ok := obj.counters[m.SumCounter]; ok {
					acc[i] += MeasureValue(v)
				}
			}
		}
	}

	for i, m := range measures {
		record[m.Name] = acc[i]
	}
	e.logger.LogRecord(e.stepCount, record)
}
