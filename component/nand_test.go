// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package component

import (
	"testing"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
)

func TestNandTruthTable(t *testing.T) {
	cases := []struct{ a, b, y bool }{
		{false, false, true},
		{false, true, true},
		{true, false, true},
		{true, true, false},
	}
	for _, c := range cases {
		n := NewNand(nil).(*Nand)
		n.SetPin(0, circuit.Event{Value: c.a})
		n.SetPin(1, circuit.Event{Value: c.b})
		diff, ok := n.Evaluate()
		if !ok {
			t.Fatalf("a=%v b=%v: expected a diff on first evaluate", c.a, c.b)
		}
		if len(diff) != 1 || diff[0].Pin != 2 || diff[0].Value != c.y {
			t.Fatalf("a=%v b=%v: got %+v, want y=%v", c.a, c.b, diff, c.y)
		}
	}
}

func TestNandSuppressesDuplicateOutput(t *testing.T) {
	n := NewNand(nil).(*Nand)
	n.SetPin(0, circuit.Event{Value: false})
	n.SetPin(1, circuit.Event{Value: false})
	diff, ok := n.Evaluate()
	if !ok {
		t.Fatal("expected first evaluate to emit")
	}
	n.Update(circuit.NewEvent(diff[0].Value, circuit.Connector{}))

	// Inputs unchanged, output unchanged: no new diff.
	if _, ok := n.Evaluate(); ok {
		t.Fatal("expected no diff when inputs and output are unchanged")
	}
}

func TestNandDefaultDelay(t *testing.T) {
	n := NewNand(nil).(*Nand)
	if n.Delay() != 1 {
		t.Fatalf("Delay() = %d, want 1", n.Delay())
	}
}

func TestNandReset(t *testing.T) {
	n := NewNand(nil).(*Nand)
	n.SetPin(0, circuit.Event{Value: true})
	n.SetPin(1, circuit.Event{Value: true})
	n.Evaluate()
	n.Reset()
	diff, ok := n.Evaluate()
	if !ok || diff[0].Value != true {
		t.Fatalf("after Reset, expected a fresh emit of true (0 NAND 0), got %+v ok=%v", diff, ok)
	}
}
