// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// genericPlaceholder reserves a ComponentId for a Transparent component
// while its children are being dissolved, so that nested id allocation
// stays monotone (spec step 1: "reserve the slot"). It is never evaluated
// at simulation time; FromDefinition strips every instance of it before
// returning. Any surviving genericPlaceholder at tick time is a bug.
//
type genericPlaceholder struct{}

func (genericPlaceholder) Evaluate() ([]PinValue, bool) { return nil, false }
func (genericPlaceholder) Update(Event)                 {}
func (genericPlaceholder) SetPin(PinIndex, Event)       {}
func (genericPlaceholder) Delay() uint32                { return 0 }
func (genericPlaceholder) IsSource() bool               { return false }
func (genericPlaceholder) IsOutput() bool               { return false }
func (genericPlaceholder) GetState() (json.RawMessage, error) {
	return nil, errors.New("generic placeholder never reaches get_state")
}
func (genericPlaceholder) Reset() {}
func (genericPlaceholder) ProcessUserEvent(UserEvent) ([]Event, error) {
	return nil, ErrUnsupportedUserEvent
}

// pendingTransparent is a deferred composite awaiting dissolution: the
// outer id it was reserved under, and the (not yet rerouted) definition to
// dissolve into it.
type pendingTransparent struct {
	outerId ComponentId
	def     ComponentDefinition
}

// elaborationState holds the transient bookkeeping for one FromDefinition
// call. reroutedDefs and definitionMapping live only for the duration of
// elaboration and are never copied onto the returned Circuit.
type elaborationState struct {
	circuit      *Circuit
	registry     *Registry
	reroutedDefs map[ComponentId]ComponentDefinition
	// reroutedOrder preserves the order composites were dissolved in, for
	// deterministic processing of their embedded connections.
	reroutedOrder     []ComponentId
	definitionMapping map[ComponentId]DefinitionId
}

// FromDefinition flattens a hierarchical CircuitDefinition into a runnable
// Circuit: transparent composites are dissolved depth-first and their
// external pins rewritten to the concrete pins inside, a wiring sink is
// synthesized to observe every top-level output, and clock instances are
// self-wired so their oscillation re-arms every period.
//
// On error the returned Circuit is nil; elaboration never leaves a partial
// Circuit visible to the caller.
//
func FromDefinition(def CircuitDefinition, registry *Registry) (*Circuit, error) {
	st := &elaborationState{
		circuit:           newCircuit(),
		registry:          registry,
		reroutedDefs:      make(map[ComponentId]ComponentDefinition),
		definitionMapping: make(map[ComponentId]DefinitionId),
	}

	deferred, err := st.instantiateConcrete(def.Components, def.Params)
	if err != nil {
		return nil, err
	}
	if err := st.dissolveAll(deferred); err != nil {
		return nil, err
	}

	rawOrder, rawTo, err := st.rawConnections(def)
	if err != nil {
		return nil, err
	}

	for _, from := range rawOrder {
		if err := st.installResolved(from, rawTo[from]); err != nil {
			return nil, err
		}
	}
	for _, outerId := range st.reroutedOrder {
		rerouted := st.reroutedDefs[outerId]
		if rerouted.Circuit == nil {
			continue
		}
		for _, c := range rerouted.Circuit.Connections {
			if err := st.installResolved(c.From, c.To); err != nil {
				return nil, err
			}
		}
	}

	st.clockSelfWiring()
	st.stripPlaceholders()

	return st.circuit, nil
}

// instantiateConcrete is the elaborator's first pass (spec step 1): it
// walks refs in declaration order, instantiating Builtin definitions
// immediately and reserving a placeholder slot for Transparent ones,
// deferring their dissolution to the caller.
func (st *elaborationState) instantiateConcrete(refs []ComponentRef, params map[ComponentId]Params) ([]pendingTransparent, error) {
	var deferred []pendingTransparent
	for _, ref := range refs {
		if _, exists := st.circuit.Components[ref.Id]; exists {
			return nil, errors.Wrapf(ErrComponentIDAlreadyTaken, "component id %d", ref.Id)
		}
		def, err := st.registry.Get(ref.DefinitionId)
		if err != nil {
			return nil, err
		}

		switch def.Kind {
		case Builtin:
			factory, ok := st.registry.Factory(ref.DefinitionId)
			if !ok {
				return nil, errors.Errorf("builtin definition %d has no factory registered", ref.DefinitionId)
			}
			var p Params
			if params != nil {
				p = params[ref.Id]
			}
			inst := factory(p)
			st.circuit.Components[ref.Id] = inst
			st.definitionMapping[ref.Id] = ref.DefinitionId
			if inst.IsOutput() {
				st.circuit.OutputComponents = append(st.circuit.OutputComponents, ref.Id)
			}
		case Transparent:
			st.circuit.Components[ref.Id] = genericPlaceholder{}
			deferred = append(deferred, pendingTransparent{outerId: ref.Id, def: def})
		default:
			return nil, errors.Wrapf(ErrUnsupportedKind, "definition %d (kind %s)", ref.DefinitionId, def.Kind)
		}
	}
	return deferred, nil
}

// dissolveAll is the elaborator's second pass (spec step 2): for each
// deferred composite it computes first_free_id up front, reroutes the
// composite's embedded definition by that offset, and recurses into the
// rerouted definition's own components (so nested composites dissolve
// depth-first, each capturing its own first_free_id at the moment it
// begins to dissolve).
func (st *elaborationState) dissolveAll(deferred []pendingTransparent) error {
	for _, pt := range deferred {
		firstFreeId := ComponentId(len(st.circuit.Components))
		rerouted, err := pt.def.Reroute(firstFreeId)
		if err != nil {
			return err
		}
		if rerouted.PinMapping == nil {
			return errors.Wrapf(ErrInvalidTransparentComponent, "definition %d: no pin mapping", pt.def.Id)
		}
		st.reroutedDefs[pt.outerId] = rerouted
		st.reroutedOrder = append(st.reroutedOrder, pt.outerId)

		nested, err := st.instantiateConcrete(rerouted.Circuit.Components, rerouted.Circuit.Params)
		if err != nil {
			return err
		}
		if err := st.dissolveAll(nested); err != nil {
			return err
		}
	}
	return nil
}

// rawConnections builds the full set of pre-resolution connections to feed
// through installResolved: the definition's own top-level connections plus
// the synthesized wiring sink (spec step 3). Connections sharing a From are
// merged (wiring synthesis "creates the connection if absent", i.e. appends
// to it if present).
func (st *elaborationState) rawConnections(def CircuitDefinition) (order []Connector, to map[Connector][]Connector, err error) {
	to = make(map[Connector][]Connector)
	add := func(from Connector, dst ...Connector) {
		if _, ok := to[from]; !ok {
			order = append(order, from)
		}
		to[from] = append(to[from], dst...)
	}

	for _, c := range def.Connections {
		add(c.From, c.To...)
	}

	var sinkOrder []Connector
	sinkPin := PinIndex(0)
	for _, ref := range def.Components {
		d, gerr := st.registry.Get(ref.DefinitionId)
		if gerr != nil {
			return nil, nil, gerr
		}
		numIn := len(d.Pins.Input)
		for j := range d.Pins.Output {
			from := Connector{Component: ref.Id, Pin: PinIndex(numIn + j)}
			add(from, Connector{Component: WiringID, Pin: sinkPin})
			sinkOrder = append(sinkOrder, from)
			sinkPin++
		}
	}
	st.circuit.Components[WiringID] = newWiringSink(sinkOrder)
	st.circuit.OutputComponents = append(st.circuit.OutputComponents, WiringID)

	return order, to, nil
}

// installResolved translates from and every entry of rawTo into concrete
// connectors (spec step 4), installing the resulting edges into
// st.circuit.Connections and overwriting any previous entry for the same
// resolved from.
func (st *elaborationState) installResolved(from Connector, rawTo []Connector) error {
	froms, err := st.resolve(from)
	if err != nil {
		return err
	}
	var tos []Connector
	for _, t := range rawTo {
		rs, err := st.resolve(t)
		if err != nil {
			return err
		}
		tos = append(tos, rs...)
	}
	for _, f := range froms {
		st.circuit.Connections[f] = append([]Connector(nil), tos...)
	}
	return nil
}

// resolve walks c through the pin mapping of any transparent endpoint
// until it names a concrete pin, per spec step 4. A single external pin
// may map to a set of internal connectors, each independently resolved and
// flattened into the result (the fan-out cross-product).
func (st *elaborationState) resolve(c Connector) ([]Connector, error) {
	if !st.circuit.has(c) {
		return nil, errors.Wrapf(ErrInvalidConnector, "component %d", c.Component)
	}
	rerouted, isComposite := st.reroutedDefs[c.Component]
	if !isComposite {
		if defId, ok := st.definitionMapping[c.Component]; ok {
			d, err := st.registry.Get(defId)
			if err != nil {
				return nil, err
			}
			if int(c.Pin) >= d.Pins.Arity() {
				return nil, errors.Wrapf(ErrInvalidConnector, "pin %d on component %d", c.Pin, c.Component)
			}
		}
		return []Connector{c}, nil
	}

	numIn := PinIndex(len(rerouted.Pins.Input))
	var internal []Connector
	if c.Pin < numIn {
		if int(c.Pin) >= len(rerouted.PinMapping.Input) {
			return nil, errors.Wrapf(ErrInvalidConnector, "input pin %d on component %d", c.Pin, c.Component)
		}
		internal = rerouted.PinMapping.Input[c.Pin]
	} else {
		idx := int(c.Pin - numIn)
		if idx >= len(rerouted.PinMapping.Output) {
			return nil, errors.Wrapf(ErrInvalidConnector, "output pin %d on component %d", c.Pin, c.Component)
		}
		internal = rerouted.PinMapping.Output[idx]
	}

	var out []Connector
	for _, ic := range internal {
		resolved, err := st.resolve(ic)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved...)
	}
	return out, nil
}

// clockSelfWiring appends a self-edge (the clock's own id, pin 1) to the to
// set of each clock instance's output connector (spec step 5), so that the
// clock re-enters the activity set and its oscillation re-arms every period.
// The appended pin index is a literal constant per spec: Clock.SetPin
// ignores its pin argument entirely, so the value never affects behavior,
// only that the self-edge exists and feeds the activity set.
func (st *elaborationState) clockSelfWiring() {
	for id, defId := range st.definitionMapping {
		if defId != ClockID {
			continue
		}
		src := Connector{Component: id, Pin: 0}
		self := Connector{Component: id, Pin: 1}
		st.circuit.Connections[src] = append(st.circuit.Connections[src], self)
	}
}

// stripPlaceholders removes every surviving genericPlaceholder from the
// circuit: a Transparent component's own id is never a real component,
// only a reservation used while its children were dissolved.
func (st *elaborationState) stripPlaceholders() {
	for id, c := range st.circuit.Components {
		if _, ok := c.(genericPlaceholder); ok {
			delete(st.circuit.Components, id)
		}
	}
}
