// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package component

import (
	"testing"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
)

// TestClockOscillates verifies the ignition seed (first Evaluate emits
// false) followed by unconditional toggling on every later Evaluate, the
// behavior self-wiring depends on to keep the clock alive.
func TestClockOscillates(t *testing.T) {
	c := NewClock(nil).(*Clock)

	diff, ok := c.Evaluate()
	if !ok || diff[0].Value != false {
		t.Fatalf("first evaluate: got %+v ok=%v, want false", diff, ok)
	}
	c.Update(circuit.NewEvent(diff[0].Value, circuit.Connector{}))

	want := true
	for i := 0; i < 4; i++ {
		diff, ok = c.Evaluate()
		if !ok {
			t.Fatalf("tick %d: clock must never suppress", i)
		}
		if diff[0].Value != want {
			t.Fatalf("tick %d: got %v, want %v", i, diff[0].Value, want)
		}
		c.Update(circuit.NewEvent(diff[0].Value, circuit.Connector{}))
		want = !want
	}
}

func TestClockDefaultDelay(t *testing.T) {
	c := NewClock(nil).(*Clock)
	if c.Delay() != 2 {
		t.Fatalf("Delay() = %d, want 2", c.Delay())
	}
}

func TestClockIsSource(t *testing.T) {
	c := NewClock(nil).(*Clock)
	if !c.IsSource() {
		t.Fatal("Clock must report IsSource() == true")
	}
	// SetPin has no input pins to latch; it must be a no-op, not a panic.
	c.SetPin(1, circuit.Event{Value: true})
}
