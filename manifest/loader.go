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

package manifest

import (
	"fmt"
	"os"

	"dirpx.dev/dix/apis"
	"dirpx.dev/dix/config"
	"dirpx.dev/dix/registry"
)

// FactorySet maps the factory names a manifest may reference to the Go
// factories that implement them.
type FactorySet map[string]apis.Factory

// LoadFile reads a YAML manifest from disk and returns the parsed document.
func LoadFile(path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Document{}, fmt.Errorf("manifest: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Document{}, fmt.Errorf("manifest: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("manifest: %s: %w", path, err)
	}
	return doc, nil
}

// Build materializes the document into live registries, one per definition,
// keyed by name. Each registry is created with its declared name, extended
// with its parents in declared order, and populated with its bindings in
// declared order. opts apply to every created registry (a shared logger,
// typically) and are applied before the per-registry name.
//
// Every factory reference must exist in factories; a dangling reference
// fails the whole build before any registry is returned.
func Build(doc Document, factories FactorySet, opts ...config.Option) (map[string]apis.Registry, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	for _, def := range doc.Registries {
		for _, b := range def.Bindings {
			if _, ok := factories[b.Factory]; !ok {
				return nil, fmt.Errorf("manifest: registry %q binding %q references unknown factory %q", def.Name, b.Ident, b.Factory)
			}
		}
	}

	out := make(map[string]apis.Registry, len(doc.Registries))
	for _, def := range doc.Registries {
		regOpts := append(append([]config.Option{}, opts...), config.WithName(def.Name))
		reg := registry.New(config.NewConfig(regOpts...))
		for _, parent := range def.Parents {
			// Validate guarantees parents are defined earlier.
			reg.Extend(out[parent])
		}
		for _, b := range def.Bindings {
			reg.Register(b.Ident, factories[b.Factory])
		}
		out[def.Name] = reg
	}
	return out, nil
}
