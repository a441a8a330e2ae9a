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

// Package provider defines the self-describing binding contract consumed by
// dix.Install.
package provider

import "dirpx.dev/dix/apis"

// Provider is a binding that knows its own identifier.
//
// # Overview
//
// Provider pairs the two halves of a registration — the ident and the
// factory — into one value, so wiring layers can collect bindings from
// multiple packages and install them in bulk:
//
//	dix.Install(reg, database.Provider(), cache.Provider(), mailer.Provider())
//
// Each package stays the single owner of its ident and construction logic;
// the wiring layer never repeats either.
//
// # Contract
//
//   - Ident MUST be deterministic: repeated calls on the same Provider
//     return equal idents.
//   - Ident MUST NOT depend on mutable instance state, and MUST NOT perform
//     blocking operations or I/O.
//   - New is an apis.Factory and carries the factory contract: it may be
//     called any number of times (no memoization by the engine), it
//     receives a Resolver bound to the origin registry of each resolution,
//     and its errors propagate unmodified to the original caller.
type Provider interface {
	// Ident returns the identifier this provider binds.
	Ident() apis.Ident

	// New produces the bound value. Signature matches apis.Factory so the
	// method value can be registered directly.
	New(ctx apis.Resolver) (any, error)
}

// Func adapts a plain ident/factory pair to the Provider interface.
//
// Use it when a binding is naturally expressed inline rather than as a
// dedicated type:
//
//	p := provider.Func("clock", func(apis.Resolver) (any, error) {
//	    return time.Now, nil
//	})
func Func(id apis.Ident, f apis.Factory) Provider {
	return funcProvider{id: id, f: f}
}

type funcProvider struct {
	id apis.Ident
	f  apis.Factory
}

func (p funcProvider) Ident() apis.Ident { return p.id }

func (p funcProvider) New(ctx apis.Resolver) (any, error) { return p.f(ctx) }

// Typed adapts a typed factory to the Provider interface, keeping the
// produced type visible at the definition site while the registry stores it
// erased:
//
//	p := provider.Typed("carrier", func(apis.Resolver) (Carrier, error) {
//	    return Carrier{Num2: 5}, nil
//	})
//
// The consuming call site recovers the type with dix.Resolve[Carrier].
func Typed[T any](id apis.Ident, f func(ctx apis.Resolver) (T, error)) Provider {
	return Func(id, func(ctx apis.Resolver) (any, error) {
		return f(ctx)
	})
}
