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

// Package identfmt renders binding identifiers in a stable, human-readable
// display form for error messages and log fields.
package identfmt

import (
	"fmt"

	"dirpx.dev/dix/apis"
)

// Display returns the display form of id.
//
// Strings are quoted so that empty and whitespace-only idents stay visible
// in messages. Values implementing fmt.Stringer use their own String().
// Everything else falls back to fmt's %v verb. nil renders as "<nil>".
func Display(id apis.Ident) string {
	switch v := id.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
