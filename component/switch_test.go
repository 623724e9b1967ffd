// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package component

import (
	"encoding/json"
	"testing"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
)

func TestSwitchTogglesOnValidPayload(t *testing.T) {
	s := NewSwitch(nil).(*Switch)

	ev, err := json.Marshal("toggle")
	if err != nil {
		t.Fatal(err)
	}

	events, err := s.ProcessUserEvent(circuit.UserEvent{Payload: ev})
	if err != nil {
		t.Fatalf("ProcessUserEvent: %v", err)
	}
	if len(events) != 1 || events[0].Value != true {
		t.Fatalf("got %+v, want a single true event", events)
	}
	if events[0].Src.Component != 0 {
		t.Fatalf("Src.Component must be left zero for the driver to stamp, got %d", events[0].Src.Component)
	}

	events, err = s.ProcessUserEvent(circuit.UserEvent{Payload: ev})
	if err != nil {
		t.Fatalf("ProcessUserEvent: %v", err)
	}
	if events[0].Value != false {
		t.Fatalf("second toggle should flip back to false, got %v", events[0].Value)
	}
}

func TestSwitchRejectsInvalidPayload(t *testing.T) {
	s := NewSwitch(nil).(*Switch)
	bad, _ := json.Marshal("flip")
	if _, err := s.ProcessUserEvent(circuit.UserEvent{Payload: bad}); err != circuit.ErrInvalidPayload {
		t.Fatalf("got err=%v, want ErrInvalidPayload", err)
	}
}

func TestSwitchResetClearsValue(t *testing.T) {
	s := NewSwitch(nil).(*Switch)
	ev, _ := json.Marshal("toggle")
	s.ProcessUserEvent(circuit.UserEvent{Payload: ev})
	s.Reset()
	diff, ok := s.Evaluate()
	if !ok || diff[0].Value != false {
		t.Fatalf("after Reset, expected a fresh emit of false, got %+v ok=%v", diff, ok)
	}
}
