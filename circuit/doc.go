// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package circuit provides the declarative circuit model (component
// definitions, connectors and connections), the prebuilt/custom component
// registry, and the elaborator that flattens a hierarchical
// CircuitDefinition into a flat, runnable Circuit.
//
// The sub-package component provides concrete implementations of the
// Component interface declared here (NAND, Tristate, Clock, ...); the sim
// package drives a Circuit once elaborated.
package circuit
