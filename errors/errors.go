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

package errors

import (
	"errors"
	"fmt"

	"dirpx.dev/dix/apis"
	"dirpx.dev/dix/utils/identfmt"
)

var (
	// ErrBindingNotFound is the sentinel matched by errors.Is for every
	// NotFoundError. It is the only failure the engine itself introduces;
	// factory errors pass through Resolve unmodified.
	ErrBindingNotFound = errors.New("dix: binding not found")

	// ErrWrongType is the sentinel matched by errors.Is for every
	// WrongTypeError raised by the typed facade.
	ErrWrongType = errors.New("dix: resolved value has wrong type")
)

// NotFoundError reports that an identifier was absent from the full
// local-plus-parents search of a registry.
type NotFoundError struct {
	// Ident is the identifier that could not be resolved.
	Ident apis.Ident
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dix(registry): no binding found for %s", identfmt.Display(e.Ident))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrBindingNotFound
}

// WrongTypeError reports that a factory's product did not match the type
// parameter requested at a dix.Resolve call site. The engine stores values
// type-erased; this error exists only at the generic front door.
type WrongTypeError struct {
	// Ident is the identifier that resolved to an unexpected type.
	Ident apis.Ident
	// Want is the type name requested by the caller.
	Want string
	// Got is the type name of the value the factory produced.
	Got string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("dix: binding %s resolved to %s, want %s",
		identfmt.Display(e.Ident), e.Got, e.Want)
}

func (e *WrongTypeError) Is(target error) bool {
	return target == ErrWrongType
}
