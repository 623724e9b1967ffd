// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package component

import (
	"encoding/json"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
	"github.com/Instant-Reactive-Systems/digisim/internal/bits"
)

// GenericDisplayWidth and GenericDisplayHeight fix the pixel grid and
// address register sizes, for the same reason Memory's are fixed: a
// definition's declared Pins must describe one arity for every instance.
const (
	GenericDisplayWidth  = 8
	GenericDisplayHeight = 8
)

// GenericDisplay is an addressed pixel-grid sink. Pins: 0=enable,
// 1=value, then addrXBits address-x pins, then addrYBits address-y pins
// (input); no outputs — it's a pure sink, observed through GetState.
//
// The component this is supplemented from had two bugs: its set_pin skip
// condition was "pin != 0 && enable == true", which skips processing
// exactly when enabled and a non-zero pin arrives — the opposite of the
// stated "skip if not enabled" intent; and its address-y branch wrote into
// address_x (a copy-paste of the address-x branch), so no y address bit
// was ever reachable. This implementation skips only when not enabled, and
// writes address-y bits into address_y.
type GenericDisplay struct {
	addrXBits, addrYBits int

	enable   bool
	addressX bits.Bits
	addressY bits.Bits
	pixels   []bits.Bits
}

func NewGenericDisplay(circuit.Params) circuit.Component {
	xBits := bitsFor(GenericDisplayWidth)
	yBits := bitsFor(GenericDisplayHeight)
	d := &GenericDisplay{
		addrXBits: xBits,
		addrYBits: yBits,
		addressX:  bits.New(xBits),
		addressY:  bits.New(yBits),
		pixels:    make([]bits.Bits, GenericDisplayHeight),
	}
	for i := range d.pixels {
		d.pixels[i] = bits.New(GenericDisplayWidth)
	}
	return d
}

// bitsFor returns the number of bits needed to address n distinct values.
func bitsFor(n int) int {
	b := 0
	for (1 << uint(b)) < n {
		b++
	}
	if b == 0 {
		b = 1
	}
	return b
}

func (d *GenericDisplay) SetPin(pin circuit.PinIndex, ev circuit.Event) {
	if !d.enable && pin != 0 {
		return
	}
	idx := int(pin)
	yStart := 2 + d.addrXBits
	yEnd := yStart + d.addrYBits
	switch {
	case idx == 0:
		d.enable = ev.Value
	case idx == 1:
		y := int(d.addressY.ToNumber())
		x := int(d.addressX.ToNumber())
		if y >= 0 && y < len(d.pixels) {
			d.pixels[y].SetBit(x, ev.Value)
		}
	case idx >= 2 && idx < yStart:
		d.addressX.SetBit(idx-2, ev.Value)
	case idx >= yStart && idx < yEnd:
		d.addressY.SetBit(idx-yStart, ev.Value)
	}
}

func (d *GenericDisplay) Update(circuit.Event) {}

func (d *GenericDisplay) Evaluate() ([]circuit.PinValue, bool) { return nil, false }

// Delay is never consulted: GenericDisplay never returns a diff from
// Evaluate, so nothing it owns is ever scheduled.
func (d *GenericDisplay) Delay() uint32  { return 1 }
func (d *GenericDisplay) IsSource() bool { return false }
func (d *GenericDisplay) IsOutput() bool { return true }

func (d *GenericDisplay) GetState() (json.RawMessage, error) {
	pixels := make([][]bool, len(d.pixels))
	for i, row := range d.pixels {
		pixels[i] = row.ToSlice()
	}
	return json.Marshal(struct {
		Pixels [][]bool `json:"pixels"`
	}{pixels})
}

func (d *GenericDisplay) Reset() {
	d.enable = false
	d.addressX.Clear()
	d.addressY.Clear()
	for i := range d.pixels {
		d.pixels[i].Clear()
	}
}

func (d *GenericDisplay) ProcessUserEvent(circuit.UserEvent) ([]circuit.Event, error) {
	return nil, circuit.ErrUnsupportedUserEvent
}
