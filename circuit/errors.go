// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import "github.com/pkg/errors"

// Definition-build errors. Elaboration failures abort the build: on error,
// FromDefinition returns a nil *Circuit and leaves no partial state visible.
var (
	// ErrComponentIDAlreadyTaken is returned when a CircuitDefinition uses
	// the same component id twice.
	ErrComponentIDAlreadyTaken = errors.New("component id already taken")

	// ErrInvalidTransparentComponent is returned when a Transparent
	// definition is missing the fields elaboration needs (its embedded
	// circuit, typically). Use errors.Cause to recover this sentinel from
	// a wrapped context.
	ErrInvalidTransparentComponent = errors.New("invalid transparent component")

	// ErrInvalidConnector is returned when a connector names a component
	// or pin that does not exist in the circuit being built.
	ErrInvalidConnector = errors.New("invalid connector")

	// ErrUnsupportedKind is returned for ComponentKind values the core
	// does not implement (Compiled, Functional).
	ErrUnsupportedKind = errors.New("unsupported component kind")

	// ErrUnsupportedUserEvent is the default ProcessUserEvent result for
	// components that accept no user events.
	ErrUnsupportedUserEvent = errors.New("component does not accept user events")

	// ErrInvalidPayload is returned by ProcessUserEvent when a component
	// receives a payload it cannot interpret (e.g. a Switch event whose
	// payload isn't "toggle").
	ErrInvalidPayload = errors.New("invalid user event payload")
)

// RegistryError is returned by Registry.Get for an unknown definition id.
//
type RegistryError struct {
	DefinitionId DefinitionId
}

func (e *RegistryError) Error() string {
	return errors.Errorf("invalid definition id %d", e.DefinitionId).Error()
}

// InvalidDefinitionID builds the RegistryError for id.
func InvalidDefinitionID(id DefinitionId) error {
	return &RegistryError{DefinitionId: id}
}
