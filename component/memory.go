// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package component

import (
	"encoding/json"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
	"github.com/Instant-Reactive-Systems/digisim/internal/bits"
)

// Memory is a word-addressable store. Pins: 0=mode (false=write,
// true=read), 1=chipSelect, then addrBits address pins, then dataBits
// data-in pins (input); a single "strobe" output pin mirrors the source's
// evaluate() signal that a read or write just completed.
//
// The source this is supplemented from derived its pin dispatch from a
// hardcoded "pin != 0" check that silently dropped every address and data
// bit write unless it happened to land on pin 0, regardless of how many
// address/data pins the component actually declared. This implementation
// derives the address and data pin ranges from addrBits/dataBits instead,
// so every latched pin is actually honored.
type Memory struct {
	addrBits, dataBits int

	mode       bool
	chipSelect bool
	address    bits.Bits
	dataIn     bits.Bits
	dataOut    bits.Bits

	storage []bits.Bits
	changed bool
	delay   uint32
}

// MemoryAddrBits and MemoryDataBits fix Memory's arity: 256 words of 8
// bits each. Unlike delay, these can't be per-instance params, since the
// registry's ComponentDefinition.Pins (and so the elaborator's pin
// mapping/wiring-sink logic) must describe a single fixed arity for every
// instance of a given definition id.
const (
	MemoryAddrBits = 8
	MemoryDataBits = 8
)

// NewMemory builds a Memory, threading an optional "delay" param.
func NewMemory(p circuit.Params) circuit.Component {
	addrBits := MemoryAddrBits
	dataBits := MemoryDataBits
	m := &Memory{
		addrBits: addrBits,
		dataBits: dataBits,
		address:  bits.New(addrBits),
		dataIn:   bits.New(dataBits),
		dataOut:  bits.New(dataBits),
		storage:  make([]bits.Bits, 1<<uint(addrBits)),
		delay:    p.Uint32("delay", 1),
	}
	for i := range m.storage {
		m.storage[i] = bits.New(dataBits)
	}
	return m
}

func (m *Memory) SetPin(pin circuit.PinIndex, ev circuit.Event) {
	idx := int(pin)
	dataStart := 2 + m.addrBits
	dataEnd := dataStart + m.dataBits
	switch {
	case idx == 0:
		m.mode = ev.Value
	case idx == 1:
		m.chipSelect = ev.Value
	case idx >= 2 && idx < 2+m.addrBits:
		m.address.SetBit(idx-2, ev.Value)
	case idx >= dataStart && idx < dataEnd:
		m.dataIn.SetBit(idx-dataStart, ev.Value)
	default:
		return
	}
	if m.chipSelect {
		m.changed = true
	}
}

func (m *Memory) Update(circuit.Event) {
	word := int(m.address.ToNumber())
	if word < 0 || word >= len(m.storage) {
		return
	}
	if m.mode {
		m.dataOut = m.storage[word].Clone()
	} else {
		m.storage[word] = m.dataIn.Clone()
	}
}

func (m *Memory) Evaluate() ([]circuit.PinValue, bool) {
	if !m.changed {
		return nil, false
	}
	m.changed = false
	return []circuit.PinValue{{Pin: circuit.PinIndex(2 + m.addrBits + m.dataBits), Value: false}}, true
}

func (m *Memory) Delay() uint32  { return m.delay }
func (m *Memory) IsSource() bool { return false }
func (m *Memory) IsOutput() bool { return false }

func (m *Memory) GetState() (json.RawMessage, error) {
	words := make([][]bool, len(m.storage))
	for i, w := range m.storage {
		words[i] = w.ToSlice()
	}
	return json.Marshal(struct {
		Storage [][]bool `json:"storage"`
		DataOut []bool   `json:"dataOut"`
	}{words, m.dataOut.ToSlice()})
}

func (m *Memory) Reset() {
	m.mode, m.chipSelect, m.changed = false, false, false
	m.address.Clear()
	m.dataIn.Clear()
	m.dataOut.Clear()
	for i := range m.storage {
		m.storage[i].Clear()
	}
}

func (m *Memory) ProcessUserEvent(circuit.UserEvent) ([]circuit.Event, error) {
	return nil, circuit.ErrUnsupportedUserEvent
}
