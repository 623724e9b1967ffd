// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sim

import (
	"github.com/pkg/errors"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
)

// ErrDelayOutOfRange is returned by Wheel.Schedule for a delay that
// doesn't fit in the wheel.
var ErrDelayOutOfRange = errors.New("delay out of range")

// Wheel is a bounded circular event queue of fixed length M, indexed by a
// modular cursor. It bounds memory to O(M + pending events) and gives
// O(1) scheduling.
type Wheel struct {
	buckets [][]circuit.Event
	cursor  uint32
	m       uint32
}

// NewWheel returns a Wheel with m buckets, m > 0.
func NewWheel(m uint32) *Wheel {
	if m == 0 {
		m = DefaultMaxDelay
	}
	return &Wheel{buckets: make([][]circuit.Event, m), m: m}
}

// Schedule appends ev to the bucket delay slots ahead of the cursor.
func (w *Wheel) Schedule(delay uint32, ev circuit.Event) error {
	if delay >= w.m {
		return errors.Wrapf(ErrDelayOutOfRange, "delay %d >= max delay %d", delay, w.m)
	}
	slot := (w.cursor + delay) % w.m
	w.buckets[slot] = append(w.buckets[slot], ev)
	return nil
}

// Advance drains and returns the events in the bucket at the cursor, then
// advances the cursor by one slot. If that bucket is empty, it first
// advances through subsequent empty buckets (bounded by one full lap, to
// avoid spinning forever on a wheel with nothing scheduled at all),
// counting each as skipped; skipped is folded into Simulation.Elapsed so
// that elapsed reflects simulated time rather than wall ticks.
func (w *Wheel) Advance() (skipped uint32, events []circuit.Event) {
	for i := uint32(0); i < w.m; i++ {
		if len(w.buckets[w.cursor]) > 0 {
			break
		}
		w.cursor = (w.cursor + 1) % w.m
		skipped++
	}
	events = w.buckets[w.cursor]
	w.buckets[w.cursor] = nil
	w.cursor = (w.cursor + 1) % w.m
	return skipped, events
}

// Drain clears every pending event and resets the cursor to 0.
func (w *Wheel) Drain() {
	for i := range w.buckets {
		w.buckets[i] = nil
	}
	w.cursor = 0
}
