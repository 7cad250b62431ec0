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

import (
	"net/url"
	"regexp"
)

// Shape patterns are compiled once per package, not per call, per the
// "regex sharing" design note: the classification patterns are fixed and
// stateless, so there is nothing to gain from compiling them per
// processor instance.
var (
	bnodePattern         = regexp.MustCompile(`^_:[A-Za-z0-9_]+$`)
	curiePattern         = regexp.MustCompile(`^(\w+):(\w+)$`)
	absoluteIRIPattern   = regexp.MustCompile(`^(\w+):(/[^\s]*)$`)
	wrappedPattern       = regexp.MustCompile(`^<([^<>\s]+)>$`)
	typedLiteralPattern  = regexp.MustCompile(`^(.+)\^\^(.+)$`)
	langTagPattern       = regexp.MustCompile(`^(.+)@([A-Za-z][A-Za-z0-9-]+)$`)
	dateTimePattern      = regexp.MustCompile(`^\d{4}-?\d{2}-?\d{2}((T|\s+)\d{2}(:?\d{2}(:?\d{2}(\.?\d+)?)?)?)?(Z|[-+]\d{2}:?\d{2})?$`)
)

// IsBlankNodeLabel reports whether s has the shape of a blank-node label.
func IsBlankNodeLabel(s string) bool {
	return bnodePattern.MatchString(s)
}

// isResourceShaped reports whether s matches any of the term shapes that
// resolve to a resource reference: a context key, a blank-node label, a
// CURIE, an absolute IRI, or a wrapped (bracketed) IRI. The Value
// Classifier uses it to decide whether to hand a string to
// ResolveAsResource, which checks the same shapes.
func isResourceShaped(s string, ctx Context) bool {
	if _, ok := ctx[s]; ok {
		return true
	}
	if bnodePattern.MatchString(s) {
		return true
	}
	if curiePattern.MatchString(s) {
		return true
	}
	if absoluteIRIPattern.MatchString(s) {
		return true
	}
	if wrappedPattern.MatchString(s) {
		return true
	}
	return false
}

// ResolveAsResource resolves term to an absolute IRI or blank-node label,
// used for subjects, property values interpreted as IRIs, and object
// values classified as resource references.
func ResolveAsResource(term string, ctx Context) (string, error) {
	if iri, ok := ctx[term]; ok {
		return iri, nil
	}
	if bnodePattern.MatchString(term) {
		return term, nil
	}
	if m := curiePattern.FindStringSubmatch(term); m != nil {
		prefix, reference := m[1], m[2]
		if iri, ok := ctx[prefix]; ok {
			return iri + reference, nil
		}
		if iri, ok := ctx[reference]; ok {
			return iri, nil
		}
		return "", newError(UnboundPrefix, term, "", "no binding for prefix "+prefix)
	}
	if absoluteIRIPattern.MatchString(term) {
		return term, nil
	}
	if m := wrappedPattern.FindStringSubmatch(term); m != nil {
		inner := m[1]
		if hasScheme(inner) {
			return resolveAgainstBase(inner, ctx), nil
		}
		base, ok := ctx.Base()
		if !ok {
			return "", newError(MissingBase, term, "", "wrapped relative reference with no #base in scope")
		}
		return joinIRI(base, inner), nil
	}
	return "", newError(UnresolvableTerm, term, "", "no classification applies")
}

// ResolveAsProperty resolves key to an absolute IRI, used for JSON keys
// that denote predicates and for datatype suffixes.
func ResolveAsProperty(key string, ctx Context) (string, error) {
	if m := wrappedPattern.FindStringSubmatch(key); m != nil && hasScheme(m[1]) {
		return m[1], nil
	}
	if absoluteIRIPattern.MatchString(key) {
		return key, nil
	}
	if m := curiePattern.FindStringSubmatch(key); m != nil {
		prefix, reference := m[1], m[2]
		if iri, ok := ctx[prefix]; ok {
			return iri + reference, nil
		}
	}
	if bnodePattern.MatchString(key) {
		return key, nil
	}
	if iri, ok := ctx[key]; ok {
		return iri, nil
	}
	if vocab, ok := ctx.Vocab(); ok {
		return vocab + key, nil
	}
	return "", newError(MissingVocab, key, "", "no #vocab bound and key is not in context")
}

// hasScheme reports whether s looks like "scheme:rest", i.e. has a colon
// not at position 0.
func hasScheme(s string) bool {
	for i, r := range s {
		if r == ':' {
			return i > 0
		}
	}
	return false
}

func resolveAgainstBase(iri string, ctx Context) string {
	base, ok := ctx.Base()
	if !ok {
		return iri
	}
	return joinIRI(base, iri)
}

// joinIRI performs a standard RFC 3986 URI join of ref against base. If
// either fails to parse, ref is returned unchanged.
func joinIRI(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}
