// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package sim drives an elaborated circuit.Circuit: a bounded circular
// timing wheel schedules events, and a Simulation runs the tick loop,
// initial source injection, user-event intake, and output sampling.
package sim
