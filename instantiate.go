package sepro

// Initialize seeds the container from the named world: the container is
// emptied, the root object is materialized (either an instance of the
// world's declared root concept, or an empty anonymous object if none is
// declared), and the world's instance graph is instantiated in order.
// Named instances are returned in the result map, keyed by their declared
// name; counted instances are created but discarded. stepCount and
// isHalted are left untouched, resetting them is the caller's decision,
// not the engine's.
func (e *Engine) Initialize(worldName string) (map[string]ObjectRef, error) {
	sym := Intern(worldName)
	world, ok := e.model.World(sym)
	if !ok {
		return nil, newModelError("sepro: no such world '%s'", worldName)
	}
	if world.Root != nil {
		if _, ok := e.model.Concept(world.Root); !ok {
			return nil, newModelError("Can not instantiate '%s': no such concept", world.Root.String())
		}
	}
	for _, decl := range world.Graph.Instances {
		if _, ok := e.model.Concept(decl.Concept); !ok {
			return nil, newModelError("Can not instantiate '%s': no such concept", decl.Concept.String())
		}
	}

	e.container.RemoveAll()

	if world.Root != nil {
		rootRef, err := e.instantiate(world.Root, nil)
		if err != nil {
			return nil, err
		}
		e.container.SetRoot(rootRef)
	} else {
		e.container.SetRoot(e.container.CreateObject(TagList{}, CounterMap{}, nil))
	}

	named := make(map[string]ObjectRef)
	for _, decl := range world.Graph.Instances {
		switch decl.Kind {
		case InstanceNamed:
			ref, err := e.instantiate(decl.Concept, decl.Initializers)
			if err != nil {
				return nil, err
			}
			named[decl.Name.String()] = ref
		case InstanceCounted:
			for i := 0; i < decl.Count; i++ {
				if _, err := e.instantiate(decl.Concept, decl.Initializers); err != nil {
					return nil, err
				}
			}
		}
	}
	return named, nil
}

// Instantiate creates one new object from the named concept, applying the
// given initializers, and returns its ObjectRef.
func (e *Engine) Instantiate(conceptName string, inits []Initializer) (ObjectRef, error) {
	return e.instantiate(Intern(conceptName), inits)
}

func (e *Engine) instantiate(name *Symbol, inits []Initializer) (ObjectRef, error) {
	concept, ok := e.model.Concept(name)
	if !ok {
		return 0, newModelError("Can not instantiate '%s': no such concept", name.String())
	}

	tags := concept.Tags.Add(name)
	counters := concept.Counters.Clone()
	for _, init := range inits {
		switch init.Kind {
		case InitializerTag:
			tags = tags.Add(init.Tag)
		case InitializerCounter:
			counters[init.Counter] = init.Value
		}
	}

	return e.container.CreateObject(tags, counters, concept.Slots), nil
}
