// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sim

import (
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
)

// ErrNoCircuit is returned by every Simulation operation invoked before
// SetCircuit.
var ErrNoCircuit = errors.New("simulation has no circuit")

// Simulation drives one elaborated circuit.Circuit: Init seeds the wheel
// from every source, Tick drains one bucket and runs the update/distribute
// /evaluate cycle, and CircuitState samples every output component.
type Simulation struct {
	circuit *circuit.Circuit
	wheel   *Wheel
	// Elapsed counts simulated ticks, including buckets skipped because
	// they held nothing: it's the wheel's notion of time, not a count of
	// Tick calls.
	Elapsed uint64

	log *zap.Logger
}

// New returns a Simulation with no circuit set. log may be nil, in which
// case a no-op logger is used; the driver only ever logs at Debug.
func New(cfg Config, log *zap.Logger) *Simulation {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulation{wheel: NewWheel(cfg.maxDelay()), log: log}
}

// SetCircuit elaborates def against reg and installs the result,
// replacing any circuit previously set. The wheel is not touched; callers
// that want a clean slate should call Reset first.
func (s *Simulation) SetCircuit(def circuit.CircuitDefinition, reg *circuit.Registry) error {
	c, err := circuit.FromDefinition(def, reg)
	if err != nil {
		return errors.Wrap(err, "elaborate circuit")
	}
	s.circuit = c
	s.log.Debug("circuit elaborated",
		zap.Int("components", len(c.Components)),
		zap.Int("outputs", len(c.OutputComponents)),
	)
	return nil
}

// Init evaluates every source component and schedules its initial diff at
// delay 0. Must precede the first Tick.
func (s *Simulation) Init() error {
	if s.circuit == nil {
		return ErrNoCircuit
	}
	for id, comp := range s.circuit.Components {
		if !comp.IsSource() {
			continue
		}
		diff, ok := comp.Evaluate()
		if !ok {
			continue
		}
		for _, pv := range diff {
			ev := circuit.NewEvent(pv.Value, circuit.Connector{Component: id, Pin: pv.Pin})
			if err := s.wheel.Schedule(0, ev); err != nil {
				return errors.Wrapf(err, "scheduling init event for component %d", id)
			}
		}
	}
	return nil
}

// Tick advances the wheel by one bucket, distributes the drained events to
// their sinks, and re-evaluates every component whose input changed.
func (s *Simulation) Tick() error {
	if s.circuit == nil {
		return ErrNoCircuit
	}

	skipped, events := s.wheel.Advance()
	s.Elapsed += uint64(skipped) + 1

	activity := make(map[circuit.ComponentId]struct{})
	for _, ev := range events {
		if producer, ok := s.circuit.Components[ev.Src.Component]; ok {
			producer.Update(ev)
		}
		for _, to := range s.circuit.Connections[ev.Src] {
			sink, ok := s.circuit.Components[to.Component]
			if !ok {
				continue
			}
			sink.SetPin(to.Pin, ev)
			activity[to.Component] = struct{}{}
		}
	}

	for id := range activity {
		comp := s.circuit.Components[id]
		diff, ok := comp.Evaluate()
		if !ok {
			continue
		}
		for _, pv := range diff {
			ev := circuit.NewEvent(pv.Value, circuit.Connector{Component: id, Pin: pv.Pin})
			if err := s.wheel.Schedule(comp.Delay(), ev); err != nil {
				s.log.Debug("dropping scheduled event: delay out of range",
					zap.Uint32("componentId", uint32(id)), zap.Error(err))
			}
		}
	}
	return nil
}

// TickFor calls Tick n times, stopping at the first error.
func (s *Simulation) TickFor(n int) error {
	for i := 0; i < n; i++ {
		if err := s.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// CircuitState collects GetState of every output component, keyed by id.
func (s *Simulation) CircuitState() (map[circuit.ComponentId]json.RawMessage, error) {
	if s.circuit == nil {
		return nil, ErrNoCircuit
	}
	out := make(map[circuit.ComponentId]json.RawMessage, len(s.circuit.OutputComponents))
	for _, id := range s.circuit.OutputComponents {
		comp, ok := s.circuit.Components[id]
		if !ok {
			continue
		}
		st, err := comp.GetState()
		if err != nil {
			return nil, errors.Wrapf(err, "component %d state", id)
		}
		out[id] = st
	}
	return out, nil
}

// ComponentCount returns the number of concrete components in the current
// circuit, including the synthesized wiring sink. Used by the validation
// harness to enforce CombinationalRequirements.MaxComponents.
func (s *Simulation) ComponentCount() int {
	if s.circuit == nil {
		return 0
	}
	return len(s.circuit.Components)
}

// InsertInputEvent dispatches ev to the named component's ProcessUserEvent
// and schedules whatever events it returns, stamping Src.Component with
// ev.ComponentID (see circuit.Component.ProcessUserEvent's contract).
func (s *Simulation) InsertInputEvent(ev circuit.UserEvent) error {
	if s.circuit == nil {
		return ErrNoCircuit
	}
	comp, ok := s.circuit.Components[ev.ComponentID]
	if !ok {
		return errors.Wrapf(circuit.ErrInvalidConnector, "component %d", ev.ComponentID)
	}
	produced, err := comp.ProcessUserEvent(ev)
	if err != nil {
		s.log.Debug("user event rejected",
			zap.Uint32("componentId", uint32(ev.ComponentID)), zap.Error(err))
		return err
	}
	for _, pe := range produced {
		pe.Src.Component = ev.ComponentID
		if err := s.wheel.Schedule(comp.Delay(), pe); err != nil {
			return errors.Wrapf(err, "scheduling user event for component %d", ev.ComponentID)
		}
	}
	return nil
}

// Reset restores every component to its initial state and drains the
// wheel of pending events: the documented default for the choice spec
// leaves open, so that a Reset+Init+TickFor sequence reproduces the same
// CircuitState regardless of prior activity.
func (s *Simulation) Reset() {
	if s.circuit == nil {
		return
	}
	for _, comp := range s.circuit.Components {
		comp.Reset()
	}
	s.wheel.Drain()
	s.Elapsed = 0
}
