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

// Package errors defines the error taxonomy of dix.
//
// The engine originates exactly one failure, the binding-not-found
// condition, modeled as NotFoundError and matchable through the
// ErrBindingNotFound sentinel:
//
//	_, err := reg.Resolve("missing")
//	if errors.Is(err, dixerrors.ErrBindingNotFound) { ... }
//
// Any error returned by a factory during invocation is that factory's own
// error: it propagates through all enclosing Resolve calls to the original
// caller without wrapping or translation.
//
// WrongTypeError is not an engine error. It is raised by the generic typed
// facade (dix.Resolve[T]) when a produced value fails the caller's type
// parameter, and never appears on the untyped apis.Registry surface.
package errors
