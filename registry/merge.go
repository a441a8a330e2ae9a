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

import "dirpx.dev/dix/apis"

// Merge copies the local bindings of each input registry, in input order,
// into a freshly constructed root registry. Later inputs win on ident
// collisions by simple overwrite. Parents of the inputs are neither
// consulted nor copied, and the result keeps no relation to the inputs:
// mutating an input afterwards does not affect the merged registry.
//
// Nil inputs are skipped. Merge(nil...) or Merge() yields an empty root.
func Merge(inputs ...apis.Registry) apis.Registry {
	out := New(apis.Config{})
	for _, in := range inputs {
		if in == nil {
			continue
		}
		for _, b := range in.Bindings() {
			out.Register(b.Ident, b.Factory)
		}
	}
	return out
}
