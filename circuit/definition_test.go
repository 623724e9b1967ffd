// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit_test

import (
	"testing"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
)

func TestPinsArity(t *testing.T) {
	p := circuit.Pins{Input: []string{"a", "b"}, Output: []string{"y"}}
	if got := p.Arity(); got != 3 {
		t.Fatalf("Arity() = %d, want 3", got)
	}
}

// TestReroute verifies the offset invariant: every component id and every
// connector component id inside the embedded circuit and pin mapping is
// shifted by exactly firstFreeId, and the original definition is left
// untouched.
func TestReroute(t *testing.T) {
	orig := circuit.ComponentDefinition{
		Id:   100,
		Kind: circuit.Transparent,
		Pins: circuit.Pins{Input: []string{"a"}, Output: []string{"y"}},
		Circuit: &circuit.CircuitDefinition{
			Components: []circuit.ComponentRef{
				{DefinitionId: circuit.NandID, Id: 0},
				{DefinitionId: circuit.NandID, Id: 1},
			},
			Connections: []circuit.Connection{
				{From: circuit.Connector{Component: 0, Pin: 2}, To: []circuit.Connector{{Component: 1, Pin: 0}}},
			},
		},
		PinMapping: &circuit.PinMapping{
			Input:  [][]circuit.Connector{{{Component: 0, Pin: 0}, {Component: 0, Pin: 1}}},
			Output: [][]circuit.Connector{{{Component: 1, Pin: 2}}},
		},
	}

	const offset circuit.ComponentId = 10
	rerouted, err := orig.Reroute(offset)
	if err != nil {
		t.Fatalf("Reroute: %v", err)
	}

	wantIds := []circuit.ComponentId{10, 11}
	for i, ref := range rerouted.Circuit.Components {
		if ref.Id != wantIds[i] {
			t.Fatalf("component %d id = %d, want %d", i, ref.Id, wantIds[i])
		}
	}

	wantConn := circuit.Connection{
		From: circuit.Connector{Component: 10, Pin: 2},
		To:   []circuit.Connector{{Component: 11, Pin: 0}},
	}
	got := rerouted.Circuit.Connections[0]
	if got.From != wantConn.From || got.To[0] != wantConn.To[0] {
		t.Fatalf("connection = %+v, want %+v", got, wantConn)
	}

	if rerouted.PinMapping.Input[0][0].Component != 10 || rerouted.PinMapping.Input[0][1].Component != 10 {
		t.Fatalf("pin mapping input not rerouted: %+v", rerouted.PinMapping.Input)
	}
	if rerouted.PinMapping.Output[0][0].Component != 11 {
		t.Fatalf("pin mapping output not rerouted: %+v", rerouted.PinMapping.Output)
	}

	// The original must be untouched.
	if orig.Circuit.Components[0].Id != 0 || orig.Circuit.Components[1].Id != 1 {
		t.Fatalf("Reroute mutated the original definition: %+v", orig.Circuit.Components)
	}
}

func TestReroute_NoCircuit(t *testing.T) {
	def := circuit.ComponentDefinition{Id: 1, Kind: circuit.Transparent}
	if _, err := def.Reroute(5); err == nil {
		t.Fatal("expected an error rerouting a definition with no embedded circuit")
	}
}
