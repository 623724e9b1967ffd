// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package component

import (
	"testing"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
)

func setWord(m *Memory, base circuit.PinIndex, bits int, n int) {
	for i := 0; i < bits; i++ {
		m.SetPin(base+circuit.PinIndex(i), circuit.Event{Value: n&(1<<uint(i)) != 0})
	}
}

// TestMemoryWriteThenRead exercises every address and data pin explicitly
// (not just pin 0), the bug the original hardcoded "pin != 0" check had
// silently dropped.
func TestMemoryWriteThenRead(t *testing.T) {
	m := NewMemory(nil).(*Memory)

	const addr = 0x2A // exercises address bits beyond bit 0 and bit 1
	const data = 0xC3

	// Write: chipSelect, mode=write(false), address, data.
	m.SetPin(1, circuit.Event{Value: true}) // chipSelect
	setWord(m, 2, MemoryAddrBits, addr)
	setWord(m, 2+MemoryAddrBits, MemoryDataBits, data)
	m.SetPin(0, circuit.Event{Value: false}) // mode=write
	m.Update(circuit.Event{})
	if _, ok := m.Evaluate(); !ok {
		t.Fatal("expected a strobe diff after a chip-selected write")
	}

	// Read back the same address.
	m.SetPin(0, circuit.Event{Value: true}) // mode=read
	m.Update(circuit.Event{})

	got := m.dataOut.ToNumber()
	if got != data {
		t.Fatalf("read back %#x from address %#x, want %#x", got, addr, data)
	}
}

func TestMemoryIgnoresWritesWithoutChipSelect(t *testing.T) {
	m := NewMemory(nil).(*Memory)
	setWord(m, 2, MemoryAddrBits, 1)
	setWord(m, 2+MemoryAddrBits, MemoryDataBits, 0xFF)
	m.SetPin(0, circuit.Event{Value: false})
	if _, ok := m.Evaluate(); ok {
		t.Fatal("Memory must not strobe without chipSelect asserted")
	}
}

func TestMemoryResetClearsStorage(t *testing.T) {
	m := NewMemory(nil).(*Memory)
	m.SetPin(1, circuit.Event{Value: true})
	setWord(m, 2+MemoryAddrBits, MemoryDataBits, 0xFF)
	m.SetPin(0, circuit.Event{Value: false})
	m.Update(circuit.Event{})
	m.Reset()

	m.SetPin(0, circuit.Event{Value: true})
	m.Update(circuit.Event{})
	if m.dataOut.ToNumber() != 0 {
		t.Fatalf("after Reset, storage should read back zero, got %#x", m.dataOut.ToNumber())
	}
}
