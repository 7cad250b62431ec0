// Copyright 2024 The Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ld

// Context is a mapping from prefix/term names to expansion IRIs. Two
// reserved entries carry special meaning: VocabKey holds the default
// vocabulary IRI prepended to unresolvable bare terms, and BaseKey holds
// the base IRI used to resolve wrapped relative references.
//
// The package never mutates a Context after constructing it; Merge
// always returns a fresh copy and never mutates either argument.
type Context map[string]string

const (
	// VocabKey is the canonical internal name for the default-vocabulary
	// binding. The wire format also accepts the legacy spelling
	// __vocab__, normalized to this key by Merge.
	VocabKey = "#vocab"

	// BaseKey is the base IRI used to resolve wrapped relative
	// references such as <foo>.
	BaseKey = "#base"

	legacyVocabKey = "__vocab__"
)

// DefaultContext returns a fresh copy of the engine's built-in default
// context: a fixed set of widely used prefix bindings plus the common
// FOAF terms Person, name and homepage, and a default vocabulary IRI.
// The caller is free to mutate the returned map.
func DefaultContext() Context {
	c := Context{
		"rdf":   "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"xsd":   "http://www.w3.org/2001/XMLSchema#",
		"dc":    "http://purl.org/dc/terms/",
		"skos":  "http://www.w3.org/2004/02/skos/core#",
		"foaf":  "http://xmlns.com/foaf/0.1/",
		"sioc":  "http://rdfs.org/sioc/ns#",
		"cc":    "http://creativecommons.org/ns#",
		"geo":   "http://www.w3.org/2003/01/geo/wgs84_pos#",
		"vcard": "http://www.w3.org/2006/vcard/ns#",
		"cal":   "http://www.w3.org/2002/12/cal/ical#",
		"doap":  "http://usefulinc.com/ns/doap#",

		"Person":   "http://xmlns.com/foaf/0.1/Person",
		"name":     "http://xmlns.com/foaf/0.1/name",
		"homepage": "http://xmlns.com/foaf/0.1/homepage",

		VocabKey: "http://example.org/default-vocab#",
	}
	return c
}

// Merge returns a new context M such that M[k] = local[k] if k is present
// in local, else active[k]. Neither active nor local is mutated. The
// legacy __vocab__ spelling in local is normalized to VocabKey.
func Merge(active, local Context) Context {
	merged := make(Context, len(active)+len(local))
	for k, v := range active {
		merged[k] = v
	}
	for k, v := range local {
		if k == legacyVocabKey {
			merged[VocabKey] = v
			continue
		}
		merged[k] = v
	}
	return merged
}

// ContextFromValue reads a parsed JSON object into a Context, for
// callers loading extra prefix/term bindings from a file (e.g. the
// ldexpand command's --context flag) rather than from a document's
// inline "#" member.
func ContextFromValue(v *Value) (Context, error) {
	return valueToContext(v)
}

// Vocab returns the default-vocabulary IRI bound in c, if any.
func (c Context) Vocab() (string, bool) {
	v, ok := c[VocabKey]
	return v, ok
}

// Base returns the base IRI bound in c, if any.
func (c Context) Base() (string, bool) {
	v, ok := c[BaseKey]
	return v, ok
}
