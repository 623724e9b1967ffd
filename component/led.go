// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package component

import (
	"encoding/json"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
)

// Led pins: 0=in (input), no outputs. Pure sink.
type Led struct {
	value bool
}

func NewLed(circuit.Params) circuit.Component {
	return &Led{}
}

func (l *Led) SetPin(pin circuit.PinIndex, ev circuit.Event) {
	if pin == 0 {
		l.value = ev.Value
	}
}

func (l *Led) Update(circuit.Event) {}

func (l *Led) Evaluate() ([]circuit.PinValue, bool) { return nil, false }

func (l *Led) Delay() uint32  { return 1 }
func (l *Led) IsSource() bool { return false }
func (l *Led) IsOutput() bool { return true }

func (l *Led) GetState() (json.RawMessage, error) {
	return json.Marshal(struct {
		Pin   int  `json:"pin"`
		Value bool `json:"value"`
	}{0, l.value})
}

func (l *Led) Reset() { l.value = false }

func (l *Led) ProcessUserEvent(circuit.UserEvent) ([]circuit.Event, error) {
	return nil, circuit.ErrUnsupportedUserEvent
}

// Value reports the LED's current latch. The validation harness does not
// use it; it reads LED state through the simulation's CircuitState.
func (l *Led) Value() bool { return l.value }
