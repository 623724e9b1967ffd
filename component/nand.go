// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package component

import (
	"encoding/json"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
)

// Nand pins: 0=a, 1=b (input), 2=y (output). It is the only logic gate in
// the prebuilt library: other gates (AND, NOT, ...) are user-defined
// Transparent composites built out of NAND, the way hwlib's NewGate built
// every gate out of the same nand primitive.
type Nand struct {
	a, b        bool
	last        bool
	initialized bool
	delay       uint32
}

// NewNand builds a Nand, threading an optional "delay" param.
func NewNand(p circuit.Params) circuit.Component {
	return &Nand{delay: p.Uint32("delay", 1)}
}

func (n *Nand) SetPin(pin circuit.PinIndex, ev circuit.Event) {
	switch pin {
	case 0:
		n.a = ev.Value
	case 1:
		n.b = ev.Value
	}
}

func (n *Nand) Update(ev circuit.Event) {
	n.last = ev.Value
	n.initialized = true
}

func (n *Nand) Evaluate() ([]circuit.PinValue, bool) {
	v := !(n.a && n.b)
	if !n.initialized || v != n.last {
		return []circuit.PinValue{{Pin: 2, Value: v}}, true
	}
	return nil, false
}

func (n *Nand) Delay() uint32  { return n.delay }
func (n *Nand) IsSource() bool { return false }
func (n *Nand) IsOutput() bool { return false }

// GetState isn't sampled by a simulation (IsOutput is false) but is cheap
// and useful for debugging circuits interactively.
func (n *Nand) GetState() (json.RawMessage, error) {
	return json.Marshal(struct {
		A bool `json:"a"`
		B bool `json:"b"`
		Y bool `json:"y"`
	}{n.a, n.b, n.last})
}

func (n *Nand) Reset() {
	n.a, n.b, n.last, n.initialized = false, false, false, false
}

func (n *Nand) ProcessUserEvent(circuit.UserEvent) ([]circuit.Event, error) {
	return nil, circuit.ErrUnsupportedUserEvent
}
