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

// Package manifest builds registry hierarchies from declarative YAML
// documents.
//
// A manifest names a set of registries, their parent edges and their
// bindings. Factories themselves stay in Go code: each binding references a
// factory by name, resolved against a caller-supplied FactorySet at build
// time. A typical document:
//
//	registries:
//	  - name: shared
//	    bindings:
//	      - ident: db
//	        factory: postgres
//	  - name: request
//	    parents: [shared]
//	    bindings:
//	      - ident: db
//	        factory: tx-scoped
//
// Parents must refer to registries defined earlier in the document, which
// keeps the declared hierarchy acyclic by construction. The engine does not
// depend on this package; it is an optional convention layer.
package manifest

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a parsed manifest: an ordered list of registry definitions.
type Document struct {
	Registries []RegistryDef `yaml:"registries"`
}

// RegistryDef declares one registry, its parent edges and local bindings.
type RegistryDef struct {
	// Name labels the registry; unique within the document.
	Name string `yaml:"name"`
	// Parents lists names of earlier-defined registries, in the order the
	// resolution search should consult them.
	Parents []string `yaml:"parents"`
	// Bindings are the local registrations, applied in order.
	Bindings []BindingDef `yaml:"bindings"`
}

// BindingDef declares one local binding: an ident and the name of the
// factory producing its value.
type BindingDef struct {
	Ident   string `yaml:"ident"`
	Factory string `yaml:"factory"`
}

// Parse decodes and validates a manifest payload.
func Parse(data []byte) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, fmt.Errorf("manifest: payload is empty")
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("manifest: decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc.Normalized(), nil
}

// Validate checks structural consistency: non-empty unique registry names,
// parents referring to earlier definitions, and well-formed bindings.
// Factory references are checked later, at Build time, against the
// FactorySet actually supplied.
func (d Document) Validate() error {
	if len(d.Registries) == 0 {
		return fmt.Errorf("manifest: no registries declared")
	}
	seen := make(map[string]bool, len(d.Registries))
	for i, def := range d.Registries {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return fmt.Errorf("manifest: registry %d has no name", i)
		}
		if seen[name] {
			return fmt.Errorf("manifest: duplicate registry name %q", name)
		}
		for _, parent := range def.Parents {
			p := strings.TrimSpace(parent)
			if p == name {
				return fmt.Errorf("manifest: registry %q lists itself as parent", name)
			}
			if !seen[p] {
				return fmt.Errorf("manifest: registry %q references undefined parent %q (parents must be declared earlier)", name, p)
			}
		}
		idents := make(map[string]bool, len(def.Bindings))
		for j, b := range def.Bindings {
			if strings.TrimSpace(b.Ident) == "" {
				return fmt.Errorf("manifest: registry %q binding %d has no ident", name, j)
			}
			if strings.TrimSpace(b.Factory) == "" {
				return fmt.Errorf("manifest: registry %q binding %q has no factory", name, b.Ident)
			}
			if idents[b.Ident] {
				return fmt.Errorf("manifest: registry %q declares ident %q twice", name, b.Ident)
			}
			idents[b.Ident] = true
		}
		seen[name] = true
	}
	return nil
}

// Normalized returns a copy with surrounding whitespace trimmed from names,
// parent references, idents and factory references.
func (d Document) Normalized() Document {
	out := Document{Registries: make([]RegistryDef, len(d.Registries))}
	for i, def := range d.Registries {
		nd := RegistryDef{
			Name:     strings.TrimSpace(def.Name),
			Parents:  make([]string, len(def.Parents)),
			Bindings: make([]BindingDef, len(def.Bindings)),
		}
		for j, p := range def.Parents {
			nd.Parents[j] = strings.TrimSpace(p)
		}
		for j, b := range def.Bindings {
			nd.Bindings[j] = BindingDef{
				Ident:   strings.TrimSpace(b.Ident),
				Factory: strings.TrimSpace(b.Factory),
			}
		}
		out.Registries[i] = nd
	}
	return out
}
