// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

// Factory builds a concrete Component instance for a Builtin definition,
// threading the per-instance params declared in the CircuitDefinition's
// params map.
//
type Factory func(Params) Component

// entry pairs a ComponentDefinition with the factory that builds it, when
// the definition is Builtin. Transparent definitions carry a nil factory:
// they are never instantiated directly, only dissolved by the elaborator.
type entry struct {
	def     ComponentDefinition
	factory Factory
}

// Registry maps definition ids to component definitions. The built-in
// subset (NAND, Tristate, Clock, Ground, Source, Switch, LED, and the
// optional Memory/GenericDisplay) is present once the component package's
// Install function has populated the registry; NewRegistry alone returns
// an empty one.
//
// The registry is the only process-wide mutable state in this design; if
// shared across goroutines, callers must guard it with their own mutex.
// Elaboration copies definitions out of the registry into the runtime
// Circuit, so a registry may be mutated after elaboration without
// affecting an in-flight simulation.
//
type Registry struct {
	entries map[DefinitionId]entry
}

// NewRegistry returns an empty registry. Use the component package's
// Install to populate it with the prebuilt definitions.
//
func NewRegistry() *Registry {
	return &Registry{entries: make(map[DefinitionId]entry)}
}

// Clone returns a shallow copy of r whose entries map is independent (so
// callers may Insert into the clone without affecting r).
//
func (r *Registry) Clone() *Registry {
	out := NewRegistry()
	for id, e := range r.entries {
		out.entries[id] = e
	}
	return out
}

// RegisterBuiltin installs a Builtin definition together with its factory.
//
func (r *Registry) RegisterBuiltin(def ComponentDefinition, factory Factory) {
	def.Kind = Builtin
	r.entries[def.Id] = entry{def: def, factory: factory}
}

// Insert installs a user-authored definition (typically Transparent). It
// has no factory: the elaborator dissolves it rather than instantiating it.
//
func (r *Registry) Insert(def ComponentDefinition) {
	r.entries[def.Id] = entry{def: def}
}

// Get returns the definition registered under id.
//
func (r *Registry) Get(id DefinitionId) (ComponentDefinition, error) {
	e, ok := r.entries[id]
	if !ok {
		return ComponentDefinition{}, InvalidDefinitionID(id)
	}
	return e.def, nil
}

// Factory returns the instantiation factory for a Builtin definition. ok is
// false for Transparent/Compiled/Functional definitions, which have none.
//
func (r *Registry) Factory(id DefinitionId) (factory Factory, ok bool) {
	e, exists := r.entries[id]
	if !exists || e.factory == nil {
		return nil, false
	}
	return e.factory, true
}
