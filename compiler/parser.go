// Package compiler implements a small lexer and recursive-descent parser
// that turn model source text into a *sepro.Model. It is a collaborator
// package only (it knows nothing of the engine's runtime internals, and
// the engine never imports it).
//
// Grammar (keywords in caps, names in lowercase):
//
//	model      := (concept | actuator | world)*
//	concept    := "CONCEPT" name "(" ("TAG" names)? ("SLOT" names)? ")"
//	actuator   := "WHERE" selector ("ON" selector)? "DO" modifiers
//	              ("TRAP" names)? ("NOTIFY" names)? ("HALT")?
//	selector   := "ALL" | predicate ("," predicate)*
//	predicate  := "NOT"? (name ".")? predbody
//	predbody   := "TAG" names | "ZERO" name | "BOUND" name
//	modifiers  := modifier ("," modifier)*
//	modifier   := target verb
//	target     := ("ROOT"|"THIS"|"OTHER") ("." name)?
//	verb       := "BIND" name "=" target
//	            | "UNBIND" name
//	            | "SET" "TAG" names | "UNSET" "TAG" names
//	            | "INC" name | "DEC" name | "ZERO" name
//	world      := "WORLD" name "(" ("ROOT" name)? instance* ")"
//	instance   := "OBJECT" name ( "*" number | "AS" name )? ("(" init ("," init)* ")")?
//	init       := "TAG" name | "COUNTER" name "=" number
//	names      := name ("," name)*
package compiler

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sepro-lang/sepro"
)

// Compile parses model source text from r into a *sepro.Model.
func Compile(r io.Reader) (*sepro.Model, error) {
	toks, err := lexAll(r)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, model: sepro.NewModel()}
	if err := p.parseModel(); err != nil {
		return nil, err
	}
	return p.model, nil
}

type parser struct {
	toks []token
	pos  int

	model *sepro.Model
}

func (p *parser) peek() token  { return p.toks[p.pos] }
func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("compiler: line %d: %s", p.peek().Line, fmt.Sprintf(format, args...))
}

// atKeyword reports whether the current token is an identifier equal to kw.
func (p *parser) atKeyword(kw string) bool {
	t := p.peek()
	return t.Kind == identToken && t.Text == kw
}

func (p *parser) expectKeyword(kw string) error {
	if !p.atKeyword(kw) {
		return p.errorf("expected %q, got %q", kw, p.peek().Text)
	}
	p.advance()
	return nil
}

func (p *parser) expectIdent() (string, error) {
	t := p.peek()
	if t.Kind != identToken {
		return "", p.errorf("expected a name, got %s", t.Kind)
	}
	p.advance()
	return t.Text, nil
}

func (p *parser) expect(kind tokenKind) error {
	if p.peek().Kind != kind {
		return p.errorf("expected %s, got %s", kind, p.peek().Kind)
	}
	p.advance()
	return nil
}

func (p *parser) parseModel() error {
	for p.peek().Kind != eofToken {
		switch {
		case p.atKeyword("CONCEPT"):
			if err := p.parseConcept(); err != nil {
				return err
			}
		case p.atKeyword("WHERE"):
			if err := p.parseActuator(); err != nil {
				return err
			}
		case p.atKeyword("WORLD"):
			if err := p.parseWorld(); err != nil {
				return err
			}
		default:
			return p.errorf("expected CONCEPT, WHERE, or WORLD, got %q", p.peek().Text)
		}
	}
	return nil
}

// parseNames parses a comma-separated list of identifiers. A comma followed
// by a keyword that starts a predicate or a modifier target (or by a
// "name." slot dereference) ends the list and is left for the enclosing
// selector or modifier list.
func (p *parser) parseNames() ([]string, error) {
	var names []string
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	names = append(names, name)
	for p.peek().Kind == commaToken {
		if next := p.toks[p.pos+1]; next.Kind == identToken {
			switch next.Text {
			case "NOT", "TAG", "ZERO", "BOUND", "ROOT", "THIS", "OTHER":
				return names, nil
			}
			if p.pos+2 < len(p.toks) && p.toks[p.pos+2].Kind == dotToken {
				return names, nil
			}
		}
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func (p *parser) parseConcept() error {
	p.advance() // CONCEPT
	name, err := p.expectIdent()
	if err != nil {
		return err
	}
	concept := &sepro.Concept{Name: sepro.Intern(name)}

	if err := p.expect(openToken); err != nil {
		return err
	}
	tags := sepro.TagList{}
	if p.atKeyword("TAG") {
		p.advance()
		names, err := p.parseNames()
		if err != nil {
			return err
		}
		for _, n := range names {
			tags = tags.Add(sepro.Intern(n))
		}
	}
	var slots []*sepro.Symbol
	if p.atKeyword("SLOT") {
		p.advance()
		names, err := p.parseNames()
		if err != nil {
			return err
		}
		for _, n := range names {
			slots = append(slots, sepro.Intern(n))
		}
	}
	if err := p.expect(closeToken); err != nil {
		return err
	}

	concept.Tags = tags
	concept.Counters = sepro.CounterMap{}
	concept.Slots = slots
	p.model.Concepts[concept.Name] = concept
	return nil
}

func (p *parser) parseActuator() error {
	p.advance() // WHERE
	sel, err := p.parseSelector()
	if err != nil {
		return err
	}
	actuator := &sepro.Actuator{Selector: sel}

	if p.atKeyword("ON") {
		p.advance()
		other, err := p.parseSelector()
		if err != nil {
			return err
		}
		actuator.CombinedSelector = &other
	}

	if err := p.expectKeyword("DO"); err != nil {
		return err
	}
	mods, err := p.parseModifiers()
	if err != nil {
		return err
	}
	actuator.Modifiers = mods

	if p.atKeyword("TRAP") {
		p.advance()
		names, err := p.parseNames()
		if err != nil {
			return err
		}
		for _, n := range names {
			actuator.Traps = append(actuator.Traps, sepro.Intern(n))
		}
	}
	if p.atKeyword("NOTIFY") {
		p.advance()
		names, err := p.parseNames()
		if err != nil {
			return err
		}
		for _, n := range names {
			actuator.Notifications = append(actuator.Notifications, sepro.Intern(n))
		}
	}
	if p.atKeyword("HALT") {
		p.advance()
		actuator.DoesHalt = true
	}

	p.model.Actuators = append(p.model.Actuators, actuator)
	return nil
}

func (p *parser) parseSelector() (sepro.Selector, error) {
	if p.atKeyword("ALL") {
		p.advance()
		return sepro.Selector{All: true}, nil
	}
	var preds []sepro.Predicate
	for {
		pred, err := p.parsePredicate()
		if err != nil {
			return sepro.Selector{}, err
		}
		preds = append(preds, pred)
		if p.peek().Kind != commaToken {
			break
		}
		p.advance()
	}
	return sepro.Selector{Predicates: preds}, nil
}

func (p *parser) parsePredicate() (sepro.Predicate, error) {
	negated := false
	if p.atKeyword("NOT") {
		p.advance()
		negated = true
	}

	var inSlot *sepro.Symbol
	// A leading "name." is a slot dereference only if a dot directly follows
	// the identifier; otherwise the identifier is the predicate's own
	// keyword (TAG/ZERO/BOUND).
	if p.peek().Kind == identToken && p.pos+1 < len(p.toks) && p.toks[p.pos+1].Kind == dotToken {
		slotName, _ := p.expectIdent()
		p.advance() // dot
		inSlot = sepro.Intern(slotName)
	}

	pred := sepro.Predicate{IsNegated: negated, InSlot: inSlot}
	switch {
	case p.atKeyword("TAG"):
		p.advance()
		names, err := p.parseNames()
		if err != nil {
			return sepro.Predicate{}, err
		}
		tags := sepro.TagList{}
		for _, n := range names {
			tags = tags.Add(sepro.Intern(n))
		}
		pred.Kind = sepro.PredTagSet
		pred.Tags = tags
	case p.atKeyword("ZERO"):
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return sepro.Predicate{}, err
		}
		pred.Kind = sepro.PredCounterZero
		pred.Counter = sepro.Intern(name)
	case p.atKeyword("BOUND"):
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return sepro.Predicate{}, err
		}
		pred.Kind = sepro.PredIsBound
		pred.BoundSlot = sepro.Intern(name)
	default:
		return sepro.Predicate{}, p.errorf("expected TAG, ZERO, or BOUND, got %q", p.peek().Text)
	}
	return pred, nil
}

func (p *parser) parseTargetKind() (sepro.TargetKind, error) {
	switch {
	case p.atKeyword("ROOT"):
		p.advance()
		return sepro.TargetRoot, nil
	case p.atKeyword("THIS"):
		p.advance()
		return sepro.TargetThis, nil
	case p.atKeyword("OTHER"):
		p.advance()
		return sepro.TargetOther, nil
	default:
		return 0, p.errorf("expected ROOT, THIS, or OTHER, got %q", p.peek().Text)
	}
}

func (p *parser) parseTarget() (sepro.ModifierTarget, error) {
	kind, err := p.parseTargetKind()
	if err != nil {
		return sepro.ModifierTarget{}, err
	}
	target := sepro.ModifierTarget{Kind: kind}
	if p.peek().Kind == dotToken {
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return sepro.ModifierTarget{}, err
		}
		target.Slot = sepro.Intern(name)
	}
	return target, nil
}

func (p *parser) parseModifiers() ([]sepro.Modifier, error) {
	var mods []sepro.Modifier
	for {
		m, err := p.parseModifier()
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
		if p.peek().Kind != commaToken {
			break
		}
		p.advance()
	}
	return mods, nil
}

func (p *parser) parseModifier() (sepro.Modifier, error) {
	target, err := p.parseTarget()
	if err != nil {
		return sepro.Modifier{}, err
	}

	switch {
	case p.atKeyword("BIND"):
		p.advance()
		slotName, err := p.expectIdent()
		if err != nil {
			return sepro.Modifier{}, err
		}
		if err := p.expect(equalsToken); err != nil {
			return sepro.Modifier{}, err
		}
		bindTo, err := p.parseTarget()
		if err != nil {
			return sepro.Modifier{}, err
		}
		return sepro.Modifier{Target: target, Action: sepro.ModifierAction{
			Kind: sepro.ActionBind, Slot: sepro.Intern(slotName), Bind: &bindTo,
		}}, nil
	case p.atKeyword("UNBIND"):
		p.advance()
		slotName, err := p.expectIdent()
		if err != nil {
			return sepro.Modifier{}, err
		}
		return sepro.Modifier{Target: target, Action: sepro.ModifierAction{
			Kind: sepro.ActionUnbind, Slot: sepro.Intern(slotName),
		}}, nil
	case p.atKeyword("SET"):
		p.advance()
		if err := p.expectKeyword("TAG"); err != nil {
			return sepro.Modifier{}, err
		}
		tags, err := p.parseTagList()
		if err != nil {
			return sepro.Modifier{}, err
		}
		return sepro.Modifier{Target: target, Action: sepro.ModifierAction{Kind: sepro.ActionSetTags, Tags: tags}}, nil
	case p.atKeyword("UNSET"):
		p.advance()
		if err := p.expectKeyword("TAG"); err != nil {
			return sepro.Modifier{}, err
		}
		tags, err := p.parseTagList()
		if err != nil {
			return sepro.Modifier{}, err
		}
		return sepro.Modifier{Target: target, Action: sepro.ModifierAction{Kind: sepro.ActionUnsetTags, Tags: tags}}, nil
	case p.atKeyword("INC"):
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return sepro.Modifier{}, err
		}
		return sepro.Modifier{Target: target, Action: sepro.ModifierAction{Kind: sepro.ActionInc, Counter: sepro.Intern(name)}}, nil
	case p.atKeyword("DEC"):
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return sepro.Modifier{}, err
		}
		return sepro.Modifier{Target: target, Action: sepro.ModifierAction{Kind: sepro.ActionDec, Counter: sepro.Intern(name)}}, nil
	case p.atKeyword("ZERO"):
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return sepro.Modifier{}, err
		}
		return sepro.Modifier{Target: target, Action: sepro.ModifierAction{Kind: sepro.ActionClear, Counter: sepro.Intern(name)}}, nil
	default:
		return sepro.Modifier{}, p.errorf("expected a modifier verb, got %q", p.peek().Text)
	}
}

func (p *parser) parseTagList() (sepro.TagList, error) {
	names, err := p.parseNames()
	if err != nil {
		return sepro.TagList{}, err
	}
	tags := sepro.TagList{}
	for _, n := range names {
		tags = tags.Add(sepro.Intern(n))
	}
	return tags, nil
}

func (p *parser) parseWorld() error {
	p.advance() // WORLD
	name, err := p.expectIdent()
	if err != nil {
		return err
	}
	world := &sepro.World{}

	if err := p.expect(openToken); err != nil {
		return err
	}
	if p.atKeyword("ROOT") {
		p.advance()
		rootName, err := p.expectIdent()
		if err != nil {
			return err
		}
		world.Root = sepro.Intern(rootName)
	}
	for p.atKeyword("OBJECT") {
		decl, err := p.parseInstance()
		if err != nil {
			return err
		}
		world.Graph.Instances = append(world.Graph.Instances, decl)
	}
	if err := p.expect(closeToken); err != nil {
		return err
	}

	p.model.Worlds[sepro.Intern(name)] = world
	return nil
}

func (p *parser) parseInstance() (sepro.InstanceDecl, error) {
	p.advance() // OBJECT
	conceptName, err := p.expectIdent()
	if err != nil {
		return sepro.InstanceDecl{}, err
	}
	decl := sepro.InstanceDecl{Concept: sepro.Intern(conceptName), Kind: sepro.InstanceCounted, Count: 1}

	switch {
	case p.peek().Kind == starToken:
		p.advance()
		n, err := p.expectNumber()
		if err != nil {
			return sepro.InstanceDecl{}, err
		}
		decl.Count = n
	case p.atKeyword("AS"):
		p.advance()
		instName, err := p.expectIdent()
		if err != nil {
			return sepro.InstanceDecl{}, err
		}
		decl.Kind = sepro.InstanceNamed
		decl.Name = sepro.Intern(instName)
	}

	if p.peek().Kind == openToken {
		p.advance()
		for {
			init, err := p.parseInitializer()
			if err != nil {
				return sepro.InstanceDecl{}, err
			}
			decl.Initializers = append(decl.Initializers, init)
			if p.peek().Kind != commaToken {
				break
			}
			p.advance()
		}
		if err := p.expect(closeToken); err != nil {
			return sepro.InstanceDecl{}, err
		}
	}
	return decl, nil
}

func (p *parser) parseInitializer() (sepro.Initializer, error) {
	switch {
	case p.atKeyword("TAG"):
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return sepro.Initializer{}, err
		}
		return sepro.Initializer{Kind: sepro.InitializerTag, Tag: sepro.Intern(name)}, nil
	case p.atKeyword("COUNTER"):
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return sepro.Initializer{}, err
		}
		if err := p.expect(equalsToken); err != nil {
			return sepro.Initializer{}, err
		}
		n, err := p.expectNumber()
		if err != nil {
			return sepro.Initializer{}, err
		}
		return sepro.Initializer{Kind: sepro.InitializerCounter, Counter: sepro.Intern(name), Value: int64(n)}, nil
	default:
		return sepro.Initializer{}, p.errorf("expected TAG or COUNTER, got %q", p.peek().Text)
	}
}

func (p *parser) expectNumber() (int, error) {
	t := p.peek()
	if t.Kind != numberToken {
		return 0, p.errorf("expected a number, got %s", t.Kind)
	}
	p.advance()
	n, err := strconv.Atoi(t.Text)
	if err != nil {
		return 0, p.errorf("invalid number %q: %v", t.Text, err)
	}
	return n, nil
}
