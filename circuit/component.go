// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import "encoding/json"

// Params carries the per-component construction parameters declared in a
// CircuitDefinition's params map ("delay", initial state, ...). Values are
// kept as raw JSON and decoded lazily by the factory that needs them.
//
type Params map[string]json.RawMessage

// Uint32 returns the named parameter decoded as a uint32, or def if the
// parameter is absent or does not decode.
//
func (p Params) Uint32(name string, def uint32) uint32 {
	raw, ok := p[name]
	if !ok {
		return def
	}
	var v uint32
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// Bool returns the named parameter decoded as a bool, or def if the
// parameter is absent or does not decode.
//
func (p Params) Bool(name string, def bool) bool {
	raw, ok := p[name]
	if !ok {
		return def
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// Component is the behavioral contract every runtime component implements.
// Side effects of every method are local to the receiver.
//
type Component interface {
	// Evaluate returns the output pins whose value differs from the last
	// value recorded by Update, or ok == false if nothing changed.
	Evaluate() (diff []PinValue, ok bool)

	// Update records ev as the new state of one of this component's own
	// output pins, so that a subsequent Evaluate can detect "no change".
	Update(ev Event)

	// SetPin latches ev on the given input pin. It never computes outputs.
	SetPin(pin PinIndex, ev Event)

	// Delay returns the tick delay to apply to events this component
	// schedules. Must satisfy 0 < Delay() < wheel max delay. The one
	// exception is a source's initial emission, which Init schedules at
	// delay 0 regardless of Delay().
	Delay() uint32

	// IsSource reports whether this component has no inputs and may emit
	// at Init.
	IsSource() bool

	// IsOutput reports whether this component is a terminal sink whose
	// state is sampled by GetState.
	IsOutput() bool

	// GetState returns a JSON view of the component's observable state.
	// Only required for components with IsOutput() == true.
	GetState() (json.RawMessage, error)

	// Reset restores the component's initial state.
	Reset()

	// ProcessUserEvent interprets a host-originated event and returns the
	// events it should schedule (at Delay() ticks). The default behavior
	// for components that don't support user events is to return
	// ErrUnsupportedUserEvent.
	//
	// A component does not know its own ComponentId, so returned events
	// should leave Src.Component as the zero value and set only Src.Pin;
	// the simulation driver stamps Src.Component with the id the UserEvent
	// targeted before scheduling.
	ProcessUserEvent(ev UserEvent) ([]Event, error)
}
