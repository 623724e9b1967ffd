// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package component

import (
	"encoding/json"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
)

// Ground and Source are both pure constant sources (no inputs, 0=y output)
// that emit exactly once, at Init, and never again: they have no input
// pins, so they can never re-enter a tick's activity set.
type constSource struct {
	value    bool
	emitted  bool
	delay    uint32
}

func (c *constSource) SetPin(circuit.PinIndex, circuit.Event) {}
func (c *constSource) Update(circuit.Event)                   {}

func (c *constSource) Evaluate() ([]circuit.PinValue, bool) {
	if c.emitted {
		return nil, false
	}
	c.emitted = true
	return []circuit.PinValue{{Pin: 0, Value: c.value}}, true
}

func (c *constSource) Delay() uint32  { return c.delay }
func (c *constSource) IsSource() bool { return true }
func (c *constSource) IsOutput() bool { return false }

func (c *constSource) GetState() (json.RawMessage, error) {
	return json.Marshal(struct {
		Y bool `json:"y"`
	}{c.value})
}

func (c *constSource) Reset() { c.emitted = false }

func (c *constSource) ProcessUserEvent(circuit.UserEvent) ([]circuit.Event, error) {
	return nil, circuit.ErrUnsupportedUserEvent
}

// Ground always emits false.
type Ground struct{ constSource }

func NewGround(p circuit.Params) circuit.Component {
	return &Ground{constSource{value: false, delay: p.Uint32("delay", 1)}}
}

// Source always emits true.
type Source struct{ constSource }

func NewSource(p circuit.Params) circuit.Component {
	return &Source{constSource{value: true, delay: p.Uint32("delay", 1)}}
}
