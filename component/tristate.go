// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package component

import (
	"encoding/json"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
)

// Tristate pins: 0=a, 1=enable (input), 2=y (output). The "z" state isn't a
// third logic value; it's modeled as emitting no diff at all, so a shared
// bus fed by several Tristates simply keeps its last driven value while
// every driver is disabled.
type Tristate struct {
	a, enable   bool
	last        bool
	initialized bool
	delay       uint32
}

func NewTristate(p circuit.Params) circuit.Component {
	return &Tristate{delay: p.Uint32("delay", 1)}
}

func (t *Tristate) SetPin(pin circuit.PinIndex, ev circuit.Event) {
	switch pin {
	case 0:
		t.a = ev.Value
	case 1:
		t.enable = ev.Value
	}
}

func (t *Tristate) Update(ev circuit.Event) {
	t.last = ev.Value
	t.initialized = true
}

func (t *Tristate) Evaluate() ([]circuit.PinValue, bool) {
	if !t.enable || (t.initialized && t.a == t.last) {
		return nil, false
	}
	return []circuit.PinValue{{Pin: 2, Value: t.a}}, true
}

func (t *Tristate) Delay() uint32  { return t.delay }
func (t *Tristate) IsSource() bool { return false }
func (t *Tristate) IsOutput() bool { return false }

func (t *Tristate) GetState() (json.RawMessage, error) {
	return json.Marshal(struct {
		A      bool `json:"a"`
		Enable bool `json:"enable"`
		Y      bool `json:"y"`
	}{t.a, t.enable, t.last})
}

func (t *Tristate) Reset() {
	t.a, t.enable, t.last, t.initialized = false, false, false, false
}

func (t *Tristate) ProcessUserEvent(circuit.UserEvent) ([]circuit.Event, error) {
	return nil, circuit.ErrUnsupportedUserEvent
}
