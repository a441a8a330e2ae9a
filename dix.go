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

package dix

import (
	"fmt"
	"reflect"

	"dirpx.dev/dix/apis"
	"dirpx.dev/dix/config"
	dixerrors "dirpx.dev/dix/errors"
	"dirpx.dev/dix/provider"
	"dirpx.dev/dix/registry"
)

// New constructs an empty root registry (no parents).
func New(opts ...config.Option) apis.Registry {
	return registry.New(config.NewConfig(opts...))
}

// Merge copies the local bindings of each input, in input order, into a
// fresh root registry; later inputs win on collisions. See registry.Merge.
func Merge(inputs ...apis.Registry) apis.Registry {
	return registry.Merge(inputs...)
}

// Register binds id to a typed factory on r. The product is stored
// type-erased; pair with Resolve[T] at the consuming call site.
// Returns r to permit chained calls.
func Register[T any](r apis.Registry, id apis.Ident, fn func(ctx apis.Resolver) (T, error)) apis.Registry {
	return r.Register(id, func(ctx apis.Resolver) (any, error) {
		return fn(ctx)
	})
}

// Resolve looks up id on r and asserts the product to T.
//
// A miss surfaces as errors.NotFoundError and a factory error passes
// through unmodified, exactly as on the untyped surface. A product that is
// not a T yields errors.WrongTypeError; the engine itself never inspects
// the value.
func Resolve[T any](r apis.Resolver, id apis.Ident) (T, error) {
	var zero T
	v, err := r.Resolve(id)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &dixerrors.WrongTypeError{
			Ident: id,
			Want:  reflect.TypeOf((*T)(nil)).Elem().String(),
			Got:   fmt.Sprintf("%T", v),
		}
	}
	return t, nil
}

// MustResolve is Resolve that panics on error. Intended for wiring code
// where a failed resolution is a programming error.
func MustResolve[T any](r apis.Resolver, id apis.Ident) T {
	t, err := Resolve[T](r, id)
	if err != nil {
		panic(err)
	}
	return t
}

// Lazy returns a deferred handle on id: a function that performs the typed
// resolution only when called. This is the supported shape for
// mutually-referential factories, where each side must return a value whose
// dereference of the other side happens after construction.
//
// The handle retains ctx, which is the documented escape hatch for deferred
// injection; each call re-resolves, so no staleness is introduced.
func Lazy[T any](ctx apis.Resolver, id apis.Ident) func() (T, error) {
	return func() (T, error) {
		return Resolve[T](ctx, id)
	}
}

// Install registers each provider's binding on r, in order. Nil providers
// are skipped. Later providers overwrite earlier ones on ident collisions,
// matching Register semantics. Returns r.
func Install(r apis.Registry, providers ...provider.Provider) apis.Registry {
	for _, p := range providers {
		if p == nil {
			continue
		}
		r.Register(p.Ident(), p.New)
	}
	return r
}
