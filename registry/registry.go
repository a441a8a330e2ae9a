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

package registry

import (
	"go.uber.org/zap"

	"dirpx.dev/dix/apis"
	"dirpx.dev/dix/config"
	dixerrors "dirpx.dev/dix/errors"
	"dirpx.dev/dix/utils/identfmt"
)

// New constructs an empty root registry (no parents) configured by cfg.
func New(cfg apis.Config) apis.Registry {
	if cfg.Logger == nil {
		cfg.Logger = config.DefaultConfig().Logger
	}
	return &registry{
		cfg:      cfg,
		bindings: make(map[apis.Ident]apis.Factory),
	}
}

// registry is the canonical apis.Registry implementation: a local
// ident->factory map plus an ordered parent list consulted on local miss.
//
// Not safe for concurrent mutation; mutation (Register/Remove/Extend/Reset)
// requires external synchronization against in-flight Resolve calls on the
// same registry. Concurrent Resolve on a quiescent hierarchy is fine.
type registry struct {
	// cfg carries the registry name and logger.
	cfg apis.Config
	// bindings maps ident to factory. Overwrite on re-registration.
	bindings map[apis.Ident]apis.Factory
	// parents is the ordered ancestor list. Append-only, identity-deduped.
	parents []apis.Registry
}

// resolution is the short-lived capability handed to factories: Resolve
// bound to the registry on which the top-level resolution started. A fresh
// one is built per factory invocation; factories may legitimately retain it
// for deferred injection.
type resolution struct {
	origin apis.Registry
}

func (c resolution) Resolve(id apis.Ident) (any, error) {
	return c.origin.Resolve(id)
}

// Register inserts or overwrites the local binding for id.
func (r *registry) Register(id apis.Ident, f apis.Factory) apis.Registry {
	r.bindings[id] = f
	r.cfg.Logger.Debug("dix: binding registered",
		zap.String("registry", r.cfg.Name),
		zap.String("ident", identfmt.Display(id)))
	return r
}

// Remove deletes the local binding for id if present. Absence is a no-op.
func (r *registry) Remove(id apis.Ident) apis.Registry {
	delete(r.bindings, id)
	r.cfg.Logger.Debug("dix: binding removed",
		zap.String("registry", r.cfg.Name),
		zap.String("ident", identfmt.Display(id)))
	return r
}

// IsRegisteredLocally reports whether the local bindings contain id.
func (r *registry) IsRegisteredLocally(id apis.Ident) bool {
	_, ok := r.bindings[id]
	return ok
}

// IsRegistered reports whether id is registered here or in any parent.
func (r *registry) IsRegistered(id apis.Ident) bool {
	_, ok := r.Lookup(id)
	return ok
}

// Lookup searches local bindings first, then each parent recursively,
// depth-first and left-to-right. The first factory found anywhere wins:
// local beats all parents, earlier-added parents beat later-added ones.
// This order is part of the contract, not an accident.
func (r *registry) Lookup(id apis.Ident) (apis.Factory, bool) {
	if f, ok := r.bindings[id]; ok {
		return f, true
	}
	for _, p := range r.parents {
		if f, ok := p.Lookup(id); ok {
			return f, true
		}
	}
	return nil, false
}

// Resolve looks up id, invokes the resolved factory with a resolution
// context bound to r (the origin, not the parent that owned the factory),
// and returns the product unmodified. No memoization: every call re-invokes
// the factory. Factory errors propagate unwrapped.
func (r *registry) Resolve(id apis.Ident) (any, error) {
	f, ok := r.Lookup(id)
	if !ok {
		r.cfg.Logger.Debug("dix: binding not found",
			zap.String("registry", r.cfg.Name),
			zap.String("ident", identfmt.Display(id)))
		return nil, &dixerrors.NotFoundError{Ident: id}
	}
	return f(resolution{origin: r})
}

// CreateChild returns a new registry whose sole parent is r. The child
// inherits r's logger and starts anonymous.
func (r *registry) CreateChild() apis.Registry {
	child := New(apis.Config{Logger: r.cfg.Logger})
	return child.Extend(r)
}

// Extend appends each given registry to the parent list, skipping nils and
// any parent already present. Presence is decided by identity, not
// structure, so extending twice with the same registry keeps it once in its
// original position.
func (r *registry) Extend(parents ...apis.Registry) apis.Registry {
	for _, p := range parents {
		if p == nil || p == apis.Registry(r) {
			continue
		}
		if r.hasParent(p) {
			continue
		}
		r.parents = append(r.parents, p)
	}
	return r
}

func (r *registry) hasParent(p apis.Registry) bool {
	for _, existing := range r.parents {
		if existing == p {
			return true
		}
	}
	return false
}

// Parents returns a snapshot of the parent list in search order.
func (r *registry) Parents() []apis.Registry {
	out := make([]apis.Registry, len(r.parents))
	copy(out, r.parents)
	return out
}

// Bindings returns a snapshot of the local bindings only (order is
// unspecified).
func (r *registry) Bindings() []apis.Binding {
	out := make([]apis.Binding, 0, len(r.bindings))
	for id, f := range r.bindings {
		out = append(out, apis.Binding{Ident: id, Factory: f})
	}
	return out
}

// Count returns the number of local bindings.
func (r *registry) Count() int {
	return len(r.bindings)
}

// Reset clears all local bindings. Parents are unaffected.
func (r *registry) Reset() {
	r.bindings = make(map[apis.Ident]apis.Factory)
}
