// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ComponentKind is the behavioral category of a ComponentDefinition.
//
type ComponentKind int

const (
	// Builtin definitions are instantiated through the registry's prebuilt
	// factory for their id.
	Builtin ComponentKind = iota
	// Transparent definitions embed a sub-circuit that is dissolved into
	// concrete components at elaboration time.
	Transparent
	// Compiled and Functional are reserved for future fast paths; the
	// elaborator rejects them with ErrUnsupportedKind.
	Compiled
	Functional
)

func (k ComponentKind) String() string {
	switch k {
	case Builtin:
		return "Builtin"
	case Transparent:
		return "Transparent"
	case Compiled:
		return "Compiled"
	case Functional:
		return "Functional"
	default:
		return "Unknown"
	}
}

// MarshalJSON renders a ComponentKind as its wire name.
func (k ComponentKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses a ComponentKind from its wire name.
func (k *ComponentKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Builtin":
		*k = Builtin
	case "Transparent":
		*k = Transparent
	case "Compiled":
		*k = Compiled
	case "Functional":
		*k = Functional
	default:
		return errors.Errorf("unknown component kind %q", s)
	}
	return nil
}

// Pins lists a definition's input and output pin names, in declaration
// order. Pin indices are derived from this order: inputs occupy
// [0, len(Input)), outputs occupy [len(Input), len(Input)+len(Output)).
//
type Pins struct {
	Input  []string `json:"input"`
	Output []string `json:"output"`
}

// PinMapping maps a Transparent component's external pins to sets of
// internal connectors, indexed by external pin index. The input half
// routes external inputs into internal sinks; the output half exposes
// internal sources as external outputs.
//
type PinMapping struct {
	Input  [][]Connector `json:"input"`
	Output [][]Connector `json:"output"`
}

// ComponentRef names a component instance within a CircuitDefinition: which
// definition to instantiate, and under which id.
//
type ComponentRef struct {
	DefinitionId DefinitionId `json:"definitionId"`
	Id           ComponentId  `json:"id"`
}

// TruthTable pairs input rows with their expected output rows.
//
type TruthTable struct {
	Inputs  [][]bool `json:"inputs"`
	Outputs [][]bool `json:"outputs"`
}

// ComponentDefinition is the declarative blueprint for a component: its
// behavioral kind, pin names, and (for Transparent components) the
// embedded sub-circuit and pin mapping that define its behavior.
//
type ComponentDefinition struct {
	Id          DefinitionId    `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Kind        ComponentKind   `json:"type"`
	Pins        Pins            `json:"pins"`
	PinMapping  *PinMapping     `json:"pinMapping,omitempty"`
	Circuit     *CircuitDefinition `json:"circuit,omitempty"`
	TruthTable  *TruthTable     `json:"truthTable,omitempty"`
	BooleanFunction *string     `json:"booleanFunction,omitempty"`
}

// Reroute clones def and shifts every component id and every connector
// component id appearing inside its embedded circuit (components,
// connections, and pin mapping) by firstFreeId. It does not mutate def.
//
// This is the core of nested composite dissolution (spec §4.2 step 2): the
// elaborator allocates firstFreeId up front, once, per composite, and
// never recomputes it lazily.
//
func (def ComponentDefinition) Reroute(firstFreeId ComponentId) (ComponentDefinition, error) {
	if def.Circuit == nil {
		return ComponentDefinition{}, errors.Wrap(ErrInvalidTransparentComponent, "no circuit field")
	}

	out := def
	circ := *def.Circuit
	circ.Components = append([]ComponentRef(nil), def.Circuit.Components...)
	for i := range circ.Components {
		circ.Components[i].Id += firstFreeId
	}

	circ.Connections = make([]Connection, len(def.Circuit.Connections))
	for i, c := range def.Circuit.Connections {
		nc := Connection{
			From: Connector{Component: c.From.Component + firstFreeId, Pin: c.From.Pin},
			To:   append([]Connector(nil), c.To...),
		}
		for j := range nc.To {
			nc.To[j].Component += firstFreeId
		}
		circ.Connections[i] = nc
	}

	if circ.Params != nil {
		params := make(map[ComponentId]Params, len(circ.Params))
		for id, p := range circ.Params {
			params[id+firstFreeId] = p
		}
		circ.Params = params
	}
	out.Circuit = &circ

	if def.PinMapping != nil {
		pm := PinMapping{
			Input:  make([][]Connector, len(def.PinMapping.Input)),
			Output: make([][]Connector, len(def.PinMapping.Output)),
		}
		for i, conns := range def.PinMapping.Input {
			pm.Input[i] = rerouteConnectors(conns, firstFreeId)
		}
		for i, conns := range def.PinMapping.Output {
			pm.Output[i] = rerouteConnectors(conns, firstFreeId)
		}
		out.PinMapping = &pm
	}

	return out, nil
}

func rerouteConnectors(conns []Connector, firstFreeId ComponentId) []Connector {
	out := make([]Connector, len(conns))
	for i, c := range conns {
		out[i] = Connector{Component: c.Component + firstFreeId, Pin: c.Pin}
	}
	return out
}

// CircuitDefinition is a hierarchical, named collection of component
// instances and the logical (pre-elaboration) connections between their
// external pins.
//
type CircuitDefinition struct {
	Id          DefinitionId                `json:"id"`
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Components  []ComponentRef              `json:"components"`
	Connections []Connection                `json:"connections"`
	Params      map[ComponentId]Params      `json:"params,omitempty"`
}

// Arity returns the total pin count (inputs + outputs) of the definition.
func (p Pins) Arity() int {
	return len(p.Input) + len(p.Output)
}
