// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

// A Connector addresses a single pin on a single component: (component, pin).
//
type Connector struct {
	Component ComponentId `json:"componentId"`
	Pin       PinIndex    `json:"pin"`
}

// A Connection is a fan-out edge: one source pin driving one or more
// destination pins. After elaboration every From is a concrete output pin
// and every To is a concrete input pin (or the wiring sink).
//
type Connection struct {
	From Connector   `json:"from"`
	To   []Connector `json:"to"`
}

// PinValue pairs an output pin index with the value it should take.
// Evaluate returns a list of these for every output that changed.
//
type PinValue struct {
	Pin   PinIndex
	Value bool
}
