/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// Ident is an opaque identifier naming a registered binding.
//
// Idents are compared with Go interface equality, so any comparable value
// works as a key: strings, ints, or unexported key types defined by the
// caller for collision safety. The engine performs no interning; two idents
// are equal exactly when Go says they are equal.
type Ident = any

// Factory produces a value on demand. It receives a Resolver bound to the
// registry on which the top-level resolution started, so it can request
// further bindings while it is being constructed.
//
// The engine imposes nothing on side effects or statefulness: a factory may
// close over state to behave as a singleton, or build a fresh value per call
// to behave as transient. Errors returned by a factory propagate unmodified
// to the original Resolve caller.
type Factory func(ctx Resolver) (any, error)

// Registry is a scope holding local bindings plus an ordered list of parent
// registries consulted on local miss.
//
// Registries are not safe for concurrent mutation; see the package
// documentation of dix for the concurrency model.
type Registry interface {
	Resolver

	// Register inserts or overwrites the local binding for id.
	// Returns the receiver to permit chained calls.
	Register(id Ident, f Factory) Registry

	// Remove deletes the local binding for id if present, never touching
	// parents. Absence is a no-op, not an error. Returns the receiver.
	Remove(id Ident) Registry

	// IsRegisteredLocally reports whether the local bindings contain id,
	// ignoring parents.
	IsRegisteredLocally(id Ident) bool

	// IsRegistered reports whether id is registered here or in any parent,
	// searched depth-first in parent order with short-circuit on first hit.
	IsRegistered(id Ident) bool

	// Lookup returns the factory that Resolve(id) would invoke, searching
	// local bindings first, then each parent recursively, depth-first and
	// left-to-right. It never invokes the factory.
	Lookup(id Ident) (Factory, bool)

	// CreateChild returns a new registry whose sole parent is the receiver.
	CreateChild() Registry

	// Extend appends each given registry to the parent list, skipping any
	// already present (identity comparison) and preserving first-appearance
	// order. Returns the receiver.
	Extend(parents ...Registry) Registry

	// Parents returns a snapshot of the parent list in search order.
	Parents() []Registry

	// Bindings returns a snapshot of the local bindings only (order is
	// unspecified). Parents are not consulted.
	Bindings() []Binding

	// Count returns the number of local bindings.
	Count() int

	// Reset clears all local bindings. Parents are unaffected.
	Reset()
}

// Binding is a single (ident, factory) association in a Registry snapshot.
type Binding struct {
	// Ident is the binding key.
	Ident Ident
	// Factory is the associated factory.
	Factory Factory
}
