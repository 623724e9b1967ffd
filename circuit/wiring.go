// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import "encoding/json"

// wiringSink is the synthesized observation component the elaborator
// installs at WiringID: one input latch per top-level output pin in the
// circuit being elaborated, in declaration order. It is not a registry
// definition — no DefinitionId names it — because it has no fixed arity:
// its pin count depends on the circuit being elaborated.
type wiringSink struct {
	// order[i] is the declared top-level connector that feeds pin i. It is
	// fixed at synthesis time, independent of which concrete component
	// ends up driving it after pin-mapping resolution.
	order  []Connector
	values []bool
}

func newWiringSink(order []Connector) *wiringSink {
	return &wiringSink{
		order:  order,
		values: make([]bool, len(order)),
	}
}

func (w *wiringSink) Evaluate() ([]PinValue, bool) { return nil, false }

func (w *wiringSink) Update(Event) {}

func (w *wiringSink) SetPin(pin PinIndex, ev Event) {
	if int(pin) < 0 || int(pin) >= len(w.values) {
		return
	}
	w.values[pin] = ev.Value
}

func (w *wiringSink) Delay() uint32 { return 0 }

func (w *wiringSink) IsSource() bool { return false }

func (w *wiringSink) IsOutput() bool { return true }

type wiringPinState struct {
	Connector Connector `json:"connector"`
	Value     bool      `json:"value"`
}

func (w *wiringSink) GetState() (json.RawMessage, error) {
	state := make([]wiringPinState, len(w.order))
	for i, c := range w.order {
		state[i] = wiringPinState{Connector: c, Value: w.values[i]}
	}
	return json.Marshal(state)
}

func (w *wiringSink) Reset() {
	for i := range w.values {
		w.values[i] = false
	}
}

func (w *wiringSink) ProcessUserEvent(UserEvent) ([]Event, error) {
	return nil, ErrUnsupportedUserEvent
}
