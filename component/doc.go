// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package component implements the concrete circuit.Component behaviors
// the circuit package's elaborator instantiates for Builtin definitions:
// Nand, Tristate, Clock, Ground, Source, Switch, Led, and the supplemental
// Memory and GenericDisplay. Install populates a circuit.Registry with all
// of them under their reserved negative definition ids.
package component
