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

// Resolver is the resolution capability handed to factories at invocation
// time: request a value by ident, bound to the registry on which the
// top-level resolution started.
//
// A Registry is itself a Resolver. The distinction matters inside factories:
// a factory registered in a shared parent, when invoked on behalf of a
// child, receives a Resolver bound to the CHILD, so child-local overrides
// stay visible to it. Factories may retain the Resolver for later use; that
// is the supported escape hatch for deferred injection (see dix.Lazy).
type Resolver interface {
	// Resolve looks up id through the full local-then-parents search,
	// invokes the resolved factory, and returns its product unmodified.
	// It fails with errors.NotFoundError when the search exhausts without
	// a match. No memoization: every call re-invokes the factory.
	Resolve(id Ident) (any, error)
}
