// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package component

import (
	"encoding/json"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
)

// Clock pins: none in, 0=y (output). It is a source: its first Evaluate
// (called from Init) emits a false ignition seed; every later Evaluate
// unconditionally toggles, never suppressing, so self-wiring (the
// elaborator wires its own output back into its own pin 1) keeps it
// oscillating with period 2*Delay.
type Clock struct {
	last        bool
	initialized bool
	delay       uint32
}

func NewClock(p circuit.Params) circuit.Component {
	return &Clock{delay: p.Uint32("delay", 2)}
}

func (c *Clock) SetPin(circuit.PinIndex, circuit.Event) {}

func (c *Clock) Update(ev circuit.Event) {
	c.last = ev.Value
	c.initialized = true
}

func (c *Clock) Evaluate() ([]circuit.PinValue, bool) {
	if !c.initialized {
		return []circuit.PinValue{{Pin: 0, Value: false}}, true
	}
	return []circuit.PinValue{{Pin: 0, Value: !c.last}}, true
}

func (c *Clock) Delay() uint32  { return c.delay }
func (c *Clock) IsSource() bool { return true }
func (c *Clock) IsOutput() bool { return false }

func (c *Clock) GetState() (json.RawMessage, error) {
	return json.Marshal(struct {
		Y bool `json:"y"`
	}{c.last})
}

func (c *Clock) Reset() {
	c.last, c.initialized = false, false
}

func (c *Clock) ProcessUserEvent(circuit.UserEvent) ([]circuit.Event, error) {
	return nil, circuit.ErrUnsupportedUserEvent
}
