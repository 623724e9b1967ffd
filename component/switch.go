// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package component

import (
	"encoding/json"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
)

// Switch pins: none in, 0=y (output). Its value only ever changes in
// response to a "toggle" UserEvent; it never re-enters Evaluate outside of
// Init, since it has no input pins of its own.
type Switch struct {
	value    bool
	emitted  bool
	delay    uint32
}

func NewSwitch(p circuit.Params) circuit.Component {
	return &Switch{delay: p.Uint32("delay", 1)}
}

func (s *Switch) SetPin(circuit.PinIndex, circuit.Event) {}
func (s *Switch) Update(circuit.Event)                   {}

func (s *Switch) Evaluate() ([]circuit.PinValue, bool) {
	if s.emitted {
		return nil, false
	}
	s.emitted = true
	return []circuit.PinValue{{Pin: 0, Value: s.value}}, true
}

func (s *Switch) Delay() uint32  { return s.delay }
func (s *Switch) IsSource() bool { return true }
func (s *Switch) IsOutput() bool { return false }

func (s *Switch) GetState() (json.RawMessage, error) {
	return json.Marshal(struct {
		Y bool `json:"y"`
	}{s.value})
}

func (s *Switch) Reset() {
	s.value, s.emitted = false, false
}

// ProcessUserEvent accepts only the payload "toggle" (a JSON string),
// flipping the switch's latched output. Any other payload is rejected with
// ErrInvalidPayload.
func (s *Switch) ProcessUserEvent(ev circuit.UserEvent) ([]circuit.Event, error) {
	var payload string
	if err := json.Unmarshal(ev.Payload, &payload); err != nil || payload != "toggle" {
		return nil, circuit.ErrInvalidPayload
	}
	s.value = !s.value
	return []circuit.Event{circuit.NewEvent(s.value, circuit.Connector{Pin: 0})}, nil
}
