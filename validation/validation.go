// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package validation

import (
	"encoding/json"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
	"github.com/Instant-Reactive-Systems/digisim/sim"
)

// CombinationalRequirements bounds a TestCombinational run.
type CombinationalRequirements struct {
	// MaxRuntime is the tick budget given to each truth-table row before
	// its outputs are compared. Defaults to 64 if nil.
	MaxRuntime *uint32
	// MaxComponents, if set, fails validation if the elaborated harness
	// circuit has more concrete components than this. The count covers the
	// component under test's concrete components plus the harness's
	// switches, LEDs and wiring sink.
	MaxComponents *uint32
	TruthTable    circuit.TruthTable
}

const defaultMaxRuntime = 64

type ledState struct {
	Pin   int  `json:"pin"`
	Value bool `json:"value"`
}

// TestCombinational validates def against req.TruthTable: it builds a
// harness circuit with one Switch per input pin and one LED per output
// pin of def, wired to a single instance of def, and for every truth-table
// row forces the switches to that row's inputs, runs the simulation for
// req.MaxRuntime ticks, and compares the LEDs against the expected row.
func TestCombinational(def circuit.ComponentDefinition, req CombinationalRequirements, reg *circuit.Registry) ValidationReport {
	var report ValidationReport

	if len(req.TruthTable.Inputs) == 0 {
		report.Errors = append(report.Errors, EmptyTruthTable{})
		return report
	}

	numIn := len(def.Pins.Input)
	numOut := len(def.Pins.Output)

	if got := len(req.TruthTable.Inputs[0]); got != numIn {
		report.Errors = append(report.Errors, InvalidComponentInterface{IsInput: true, Expected: numIn, Actual: got})
	}
	if len(req.TruthTable.Outputs) > 0 {
		if got := len(req.TruthTable.Outputs[0]); got != numOut {
			report.Errors = append(report.Errors, InvalidComponentInterface{IsInput: false, Expected: numOut, Actual: got})
		}
	}
	if len(report.Errors) > 0 {
		return report
	}

	maxRuntime := defaultMaxRuntime
	if req.MaxRuntime != nil {
		maxRuntime = int(*req.MaxRuntime)
	}

	harnessReg := reg.Clone()
	dut := def
	dut.Id = circuit.ValidationDefinitionID
	harnessReg.Insert(dut)

	harnessDef, switchIds, ledIds := buildHarness(numIn, numOut)

	s := sim.New(sim.Config{}, nil)
	if err := s.SetCircuit(harnessDef, harnessReg); err != nil {
		report.Errors = append(report.Errors, InvalidComponentInterface{IsInput: true, Expected: numIn, Actual: -1})
		return report
	}

	if req.MaxComponents != nil && uint32(s.ComponentCount()) > *req.MaxComponents {
		report.Errors = append(report.Errors, MaxComponentsExceeded{Used: s.ComponentCount()})
		return report
	}

	current := make([]bool, numIn)
	for rowIdx, row := range req.TruthTable.Inputs {
		for i, want := range row {
			if current[i] == want {
				continue
			}
			_ = s.InsertInputEvent(circuit.UserEvent{
				ComponentID: switchIds[i],
				Payload:     json.RawMessage(`"toggle"`),
			})
			current[i] = want
		}

		if err := s.Init(); err != nil {
			report.Errors = append(report.Errors, IncorrectOutputs{Input: row})
			continue
		}
		if err := s.TickFor(maxRuntime); err != nil {
			report.Errors = append(report.Errors, IncorrectOutputs{Input: row})
			continue
		}

		state, err := s.CircuitState()
		if err != nil {
			report.Errors = append(report.Errors, IncorrectOutputs{Input: row})
			continue
		}

		actual := make([]bool, numOut)
		for i, led := range ledIds {
			var ls ledState
			if raw, ok := state[led]; ok {
				_ = json.Unmarshal(raw, &ls)
			}
			actual[i] = ls.Value
		}

		var expected []bool
		if rowIdx < len(req.TruthTable.Outputs) {
			expected = req.TruthTable.Outputs[rowIdx]
		}
		if !equalBools(expected, actual) {
			report.Errors = append(report.Errors, IncorrectOutputs{Input: row, Expected: expected, Actual: actual})
		}

		s.Reset()
		for i := range current {
			current[i] = false
		}
	}

	return report
}

// buildHarness returns a CircuitDefinition with numIn switches (ids
// 0..numIn), the component under test at the next id, and numOut LEDs
// after it, wired switch->input and output->led in declaration order.
func buildHarness(numIn, numOut int) (def circuit.CircuitDefinition, switchIds, ledIds []circuit.ComponentId) {
	var comps []circuit.ComponentRef
	var conns []circuit.Connection

	var id circuit.ComponentId
	for i := 0; i < numIn; i++ {
		comps = append(comps, circuit.ComponentRef{DefinitionId: circuit.SwitchID, Id: id})
		switchIds = append(switchIds, id)
		id++
	}

	dutId := id
	comps = append(comps, circuit.ComponentRef{DefinitionId: circuit.ValidationDefinitionID, Id: dutId})
	id++

	for i := 0; i < numOut; i++ {
		comps = append(comps, circuit.ComponentRef{DefinitionId: circuit.LedID, Id: id})
		ledIds = append(ledIds, id)
		id++
	}

	for i, sw := range switchIds {
		conns = append(conns, circuit.Connection{
			From: circuit.Connector{Component: sw, Pin: 0},
			To:   []circuit.Connector{{Component: dutId, Pin: circuit.PinIndex(i)}},
		})
	}
	for i, led := range ledIds {
		conns = append(conns, circuit.Connection{
			From: circuit.Connector{Component: dutId, Pin: circuit.PinIndex(numIn + i)},
			To:   []circuit.Connector{{Component: led, Pin: 0}},
		})
	}

	return circuit.CircuitDefinition{
		Name:        "validation-harness",
		Components:  comps,
		Connections: conns,
	}, switchIds, ledIds
}

func equalBools(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
