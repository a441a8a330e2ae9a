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

// Package dix provides a minimal hierarchical dependency-resolution
// registry: a lookup table from opaque identifiers to lazily-invoked
// factories, organized into a hierarchy of scopes so lookups fall back to
// ancestor registries.
//
// # Design
//
// Two pieces compose the engine:
//
//   - Registry (apis.Registry): owns a local ident -> factory mapping plus
//     an ordered list of parent registries consulted on local miss.
//
//   - Resolution context (apis.Resolver): the capability handed to every
//     factory at invocation time, letting the factory request other idents
//     from the registry the top-level resolution started on.
//
// A caller asks a registry to resolve an ident. The registry searches its
// local mapping, then its parents depth-first in list order; the first
// factory found anywhere is invoked with a Resolver bound to the ORIGIN
// registry, not the parent that owned the factory. That binding is the
// whole point of the hierarchy: a factory registered in a shared parent,
// invoked on behalf of a child, still sees the child's full resolution
// scope, so child-local overrides stay visible to it.
//
// Precedence is deterministic and part of the contract: local beats all
// parents; among parents, earlier-added beats later-added, recursively.
// Equivalent policy: flatten the hierarchy into a single priority order
// (self first, then each parent's self-then-parents in list order) and take
// the first match.
//
// Nothing is memoized. Every Resolve re-invokes the responsible factory;
// singleton behavior belongs to factories that close over their own state,
// transient behavior to factories that do not. The engine does not compute
// a dependency graph ahead of time, does not detect ident collisions across
// unrelated registries, and does not manage lifetimes beyond the registry's
// own.
//
// # Typed surface
//
// Registries store values type-erased; type safety lives at the call sites:
//
//	reg := dix.New()
//	dix.Register(reg, "carrier", func(apis.Resolver) (Carrier, error) {
//	    return Carrier{Num2: 5}, nil
//	})
//	dix.Register(reg, "adder", func(ctx apis.Resolver) (Adder, error) {
//	    c, err := dix.Resolve[Carrier](ctx, "carrier")
//	    if err != nil {
//	        return Adder{}, err
//	    }
//	    return Adder{Add: func(n int) int { return n + c.Num2 }}, nil
//	})
//
//	a, _ := dix.Resolve[Adder](reg, "adder")
//	a.Add(7) // 12
//
// # Circular factories
//
// Resolution is driven by direct invocation, not by a precomputed graph, so
// two factories may each request the other's ident, provided neither
// dereferences the other's value before its own value is constructible. The
// supported pattern is an explicit lazy handle that defers the callback
// past construction:
//
//	dix.Register(reg, "a", func(ctx apis.Resolver) (A, error) {
//	    b := dix.Lazy[B](ctx, "b") // no resolution yet
//	    return A{PingB: func() (B, error) { return b() }}, nil
//	})
//
// Eagerly materializing a true cycle (A needs B's final value to return, B
// needs A's) recurses without bound. That is a caller error; the engine
// does not detect or report it.
//
// # Error model
//
// The engine originates exactly one failure, binding-not-found, raised
// synchronously when the full local-plus-parents search exhausts without a
// match (see the errors subpackage). Any error a factory returns propagates
// unmodified through all enclosing Resolve calls to the original caller.
//
// # Concurrency model
//
// The engine is synchronous: Resolve and Register run to completion on the
// caller's goroutine with no internal suspension points, no I/O and no
// internal locking. Registries are not designed for concurrent mutation
// while Resolve calls are in flight on the same hierarchy; wrap mutation in
// external synchronization if you need that. Concurrent Resolve on a
// quiescent hierarchy is safe.
//
// # Scope
//
// Nothing in dix is global: every registry is an explicit, independently
// constructed instance, and the package deliberately introduces no
// process-wide default. Declarative construction of hierarchies from YAML
// lives in the optional manifest subpackage; self-describing bindings live
// in the provider subpackage. The engine depends on neither.
package dix
