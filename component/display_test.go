// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package component

import (
	"testing"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
)

// TestGenericDisplaySetsCorrectPixel exercises the two bugs fixed in
// display.go: a disabled display must ignore every pin but enable, and an
// x/y address pair must light up (x, y), not (x, x).
func TestGenericDisplaySetsCorrectPixel(t *testing.T) {
	d := NewGenericDisplay(nil).(*GenericDisplay)

	xBits := bitsFor(GenericDisplayWidth)
	yBits := bitsFor(GenericDisplayHeight)

	// While disabled, every non-enable pin must be ignored.
	d.SetPin(2, circuit.Event{Value: true})
	if d.addressX.Bit(0) {
		t.Fatal("a disabled display must ignore address writes")
	}

	d.SetPin(0, circuit.Event{Value: true}) // enable

	const x, y = 3, 5
	for i := 0; i < xBits; i++ {
		d.SetPin(circuit.PinIndex(2+i), circuit.Event{Value: x&(1<<uint(i)) != 0})
	}
	for i := 0; i < yBits; i++ {
		d.SetPin(circuit.PinIndex(2+xBits+i), circuit.Event{Value: y&(1<<uint(i)) != 0})
	}
	d.SetPin(1, circuit.Event{Value: true}) // value, latched at (x,y)

	if !d.pixels[y].Bit(x) {
		t.Fatalf("pixel (%d,%d) was not set", x, y)
	}
	for row := 0; row < GenericDisplayHeight; row++ {
		for col := 0; col < GenericDisplayWidth; col++ {
			if row == y && col == x {
				continue
			}
			if d.pixels[row].Bit(col) {
				t.Fatalf("unexpected pixel set at (%d,%d)", col, row)
			}
		}
	}
}

func TestGenericDisplayResetClearsPixels(t *testing.T) {
	d := NewGenericDisplay(nil).(*GenericDisplay)
	d.SetPin(0, circuit.Event{Value: true})
	d.SetPin(1, circuit.Event{Value: true})
	d.Reset()
	for _, row := range d.pixels {
		for i := 0; i < row.Len(); i++ {
			if row.Bit(i) {
				t.Fatal("Reset must clear every pixel")
			}
		}
	}
}
