package sepro

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/zephyrtronium/contains"
)

// DebugDump writes a deterministic, human-readable dump of the engine's
// current state to w: step count, halt flag, and every live object's tags,
// counters, and slot bindings, each object annotated with whether it is
// currently reachable from the container's root by following bound slots.
func (e *Engine) DebugDump(w io.Writer) {
	fmt.Fprintf(w, "step %d halted=%v\n", e.stepCount, e.isHalted)

	reachable := e.reachableFromRoot()

	refs := e.container.Select(nil)
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })

	for _, ref := range refs {
		obj := e.container.GetObject(ref)
		if obj == nil {
			continue
		}
		marker := " "
		if reachable[ref] {
			marker = "*"
		}
		fmt.Fprintf(w, "%s object %s tags=%v counters=%v slots={%s}\n",
			marker, objRefString(ref), sortedSymbolNames(obj.tags.Slice()),
			sortedCounters(obj.counters), formatSlots(obj.slots))
	}
}

// DebugDumpStdout is a convenience wrapper around DebugDump targeting
// os.Stdout.
func (e *Engine) DebugDumpStdout() {
	e.DebugDump(os.Stdout)
}

// reachableFromRoot walks the slot-binding graph from the container's
// root, returning the set of reachable object refs. Bindings can form
// cycles, so the walk tracks visited refs with a one-pass membership set.
func (e *Engine) reachableFromRoot() map[ObjectRef]bool {
	reachable := make(map[ObjectRef]bool)
	visited := contains.Set{}

	root := e.container.Root()
	if e.container.GetObject(root) == nil {
		return reachable
	}

	queue := []ObjectRef{root}
	visited.Add(uintptr(root))
	reachable[root] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		obj := e.container.GetObject(cur)
		if obj == nil {
			continue
		}
		for _, b := range obj.slots {
			if !b.bound {
				continue
			}
			if visited.Add(uintptr(b.target)) {
				reachable[b.target] = true
				queue = append(queue, b.target)
			}
		}
	}
	return reachable
}

func sortedSymbolNames(syms []*Symbol) []string {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.String()
	}
	sort.Strings(names)
	return names
}

func sortedCounters(c CounterMap) string {
	names := make([]string, 0, len(c))
	for s := range c {
		names = append(names, s.String())
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += " "
		}
		sym := Intern(n)
		out += fmt.Sprintf("%s=%d", n, c[sym])
	}
	return out
}

func formatSlots(s SlotMap) string {
	names := make([]string, 0, len(s))
	for sym := range s {
		names = append(names, sym.String())
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += " "
		}
		sym := Intern(n)
		b := s[sym]
		if b.bound {
			out += fmt.Sprintf("%s->%s", n, objRefString(b.target))
		} else {
			out += fmt.Sprintf("%s->-", n)
		}
	}
	return out
}
