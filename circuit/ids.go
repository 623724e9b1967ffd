// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import "math"

// ComponentId identifies a component instance within a single Circuit.
//
type ComponentId uint32

// PinIndex identifies a pin within a component's interface. Inputs occupy
// indices [0, len(inputs)), outputs occupy [len(inputs), len(inputs)+len(outputs)).
//
type PinIndex uint32

// DefinitionId identifies a component definition in a Registry. Negative
// ids are reserved for the prebuilt (builtin) definitions; user-defined
// (Transparent) definitions must use non-negative ids.
//
type DefinitionId int32

// WiringID is the reserved ComponentId of the synthesized wiring sink that
// mirrors every top-level output pin for observation.
//
const WiringID ComponentId = math.MaxUint32

// Prebuilt definition ids. See ComponentKind and the component package for
// their behavioral implementations.
const (
	NandID           DefinitionId = -1
	TristateID       DefinitionId = -2
	ClockID          DefinitionId = -3
	GroundID         DefinitionId = -4
	SourceID         DefinitionId = -5
	SwitchID         DefinitionId = -6
	LedID            DefinitionId = -7
	MemoryID         DefinitionId = -8
	GenericDisplayID DefinitionId = -9
)

// ValidationDefinitionID is the reserved definition id under which the
// validation harness temporarily installs the component under test.
const ValidationDefinitionID DefinitionId = math.MinInt32
