// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package component

import (
	"fmt"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
)

// Install populates reg with the prebuilt component library: NAND,
// Tristate, Clock, Ground, Source, Switch, LED, and the supplemental
// Memory and GenericDisplay, each under its reserved negative definition
// id.
func Install(reg *circuit.Registry) {
	reg.RegisterBuiltin(circuit.ComponentDefinition{
		Id:   circuit.NandID,
		Name: "NAND",
		Kind: circuit.Builtin,
		Pins: circuit.Pins{Input: []string{"a", "b"}, Output: []string{"y"}},
	}, NewNand)

	reg.RegisterBuiltin(circuit.ComponentDefinition{
		Id:   circuit.TristateID,
		Name: "TRISTATE",
		Kind: circuit.Builtin,
		Pins: circuit.Pins{Input: []string{"a", "enable"}, Output: []string{"y"}},
	}, NewTristate)

	reg.RegisterBuiltin(circuit.ComponentDefinition{
		Id:   circuit.ClockID,
		Name: "CLOCK",
		Kind: circuit.Builtin,
		Pins: circuit.Pins{Output: []string{"y"}},
	}, NewClock)

	reg.RegisterBuiltin(circuit.ComponentDefinition{
		Id:   circuit.GroundID,
		Name: "GROUND",
		Kind: circuit.Builtin,
		Pins: circuit.Pins{Output: []string{"y"}},
	}, NewGround)

	reg.RegisterBuiltin(circuit.ComponentDefinition{
		Id:   circuit.SourceID,
		Name: "SOURCE",
		Kind: circuit.Builtin,
		Pins: circuit.Pins{Output: []string{"y"}},
	}, NewSource)

	reg.RegisterBuiltin(circuit.ComponentDefinition{
		Id:   circuit.SwitchID,
		Name: "SWITCH",
		Kind: circuit.Builtin,
		Pins: circuit.Pins{Output: []string{"y"}},
	}, NewSwitch)

	reg.RegisterBuiltin(circuit.ComponentDefinition{
		Id:   circuit.LedID,
		Name: "LED",
		Kind: circuit.Builtin,
		Pins: circuit.Pins{Input: []string{"in"}},
	}, NewLed)

	reg.RegisterBuiltin(circuit.ComponentDefinition{
		Id:   circuit.MemoryID,
		Name: "MEMORY",
		Kind: circuit.Builtin,
		Pins: circuit.Pins{
			Input:  memoryInputPins(),
			Output: []string{"strobe"},
		},
	}, NewMemory)

	reg.RegisterBuiltin(circuit.ComponentDefinition{
		Id:   circuit.GenericDisplayID,
		Name: "GENERIC_DISPLAY",
		Kind: circuit.Builtin,
		Pins: circuit.Pins{
			Input: genericDisplayInputPins(),
		},
	}, NewGenericDisplay)
}

func memoryInputPins() []string {
	pins := []string{"mode", "chipSelect"}
	for i := 0; i < MemoryAddrBits; i++ {
		pins = append(pins, fmt.Sprintf("a%d", i))
	}
	for i := 0; i < MemoryDataBits; i++ {
		pins = append(pins, fmt.Sprintf("d%d", i))
	}
	return pins
}

func genericDisplayInputPins() []string {
	pins := []string{"enable", "value"}
	xBits := bitsFor(GenericDisplayWidth)
	yBits := bitsFor(GenericDisplayHeight)
	for i := 0; i < xBits; i++ {
		pins = append(pins, fmt.Sprintf("x%d", i))
	}
	for i := 0; i < yBits; i++ {
		pins = append(pins, fmt.Sprintf("y%d", i))
	}
	return pins
}
