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

import "io"

// Walker is the Expansion Walker: it recursively traverses a parsed JSON
// tree, threading the active context and current subject, producing a
// lazy stream of triples.
//
// Walker holds no mutable state of its own beyond the default context it
// was built with; a single Walker may drive any number of concurrent
// expansions safely.
type Walker struct {
	DefaultContext Context
}

// NewWalker creates a Walker. A nil context falls back to DefaultContext().
func NewWalker(defaultContext Context) *Walker {
	if defaultContext == nil {
		defaultContext = DefaultContext()
	}
	return &Walker{DefaultContext: defaultContext}
}

// Expand returns a lazy, pull-based stream of the triples expressed by
// doc. No work happens until the stream's Next method is called.
func (w *Walker) Expand(doc *Value) *TripleStream {
	ts := &TripleStream{}
	ts.push(valueFrame(doc, w.DefaultContext))
	return ts
}

// ExpandJSON parses a single JSON-LD document from r and expands it.
func (w *Walker) ExpandJSON(r io.Reader) (*TripleStream, error) {
	doc, err := ParseDocument(r)
	if err != nil {
		return nil, err
	}
	return w.Expand(doc), nil
}

// frame is one unit of deferred work in the expansion's trampoline. It
// runs on the caller's goroutine (no background thread of control) and
// may push further frames onto the stream's stack before returning. A
// non-nil *Triple is the one triple this step produced; a non-nil error
// aborts the whole expansion.
type frame func(ts *TripleStream) (*Triple, error)

// TripleStream is the lazy, pull-based iterator returned by Expand. It
// maintains an explicit work stack of frames instead of recursing or
// spawning a goroutine, so simply ceasing to call Next terminates the
// work with nothing left to cancel.
type TripleStream struct {
	stack []frame
	cur   Triple
	err   error
}

func (ts *TripleStream) push(frames ...frame) {
	for i := len(frames) - 1; i >= 0; i-- {
		ts.stack = append(ts.stack, frames[i])
	}
}

// Next advances the stream by the minimum work needed to produce one
// triple, and reports whether one is available. Once Next returns false,
// Err reports whether that was because the stream was exhausted or
// because expansion failed.
func (ts *TripleStream) Next() bool {
	if ts.err != nil {
		return false
	}
	for len(ts.stack) > 0 {
		n := len(ts.stack)
		f := ts.stack[n-1]
		ts.stack = ts.stack[:n-1]

		t, err := f(ts)
		if err != nil {
			ts.err = err
			ts.stack = nil
			return false
		}
		if t != nil {
			ts.cur = *t
			return true
		}
	}
	return false
}

// Triple returns the triple produced by the most recent call to Next.
func (ts *TripleStream) Triple() Triple {
	return ts.cur
}

// Err returns the error that aborted expansion, if any.
func (ts *TripleStream) Err() error {
	return ts.err
}

// All drains the stream into a slice. It exists for convenience (tests,
// small documents); callers that care about laziness should range over
// Next/Triple directly instead.
func (ts *TripleStream) All() ([]Triple, error) {
	var out []Triple
	for ts.Next() {
		out = append(out, ts.Triple())
	}
	return out, ts.Err()
}

func errorFrame(err error) frame {
	return func(*TripleStream) (*Triple, error) {
		return nil, err
	}
}

// valueFrame applies the expansion algorithm's traversal rules to a
// value V with inherited active context C: scalars and null produce
// nothing on their own, arrays recurse element by element, and objects
// go through pushObjectFrames.
func valueFrame(v *Value, ctx Context) frame {
	return func(ts *TripleStream) (*Triple, error) {
		switch v.Kind {
		case KindNull, KindBool, KindNumber, KindString:
			// Rule 1: a bare scalar/null at the top of a traversal has no
			// subject to attach to, so it produces nothing.
			return nil, nil

		case KindArray:
			// Rule 2: each element recurses with the same context; results
			// are concatenated in document order.
			frames := make([]frame, len(v.Array))
			for i, elem := range v.Array {
				frames[i] = valueFrame(elem, ctx)
			}
			ts.push(frames...)
			return nil, nil

		case KindObject:
			pushObjectFrames(ts, v, ctx)
			return nil, nil

		default:
			return nil, nil
		}
	}
}

// objectFrame recurses into an object value (used for nested "@"
// references and object-valued properties).
func objectFrame(v *Value, ctx Context) frame {
	return func(ts *TripleStream) (*Triple, error) {
		pushObjectFrames(ts, v, ctx)
		return nil, nil
	}
}

// pushObjectFrames expands one JSON object: merging any local context,
// determining the subject, and pushing one frame per remaining member in
// document order.
func pushObjectFrames(ts *TripleStream, v *Value, ctx Context) {
	om := v.Object

	mergedCtx := ctx
	if localCtxVal, ok := om.Get("#"); ok {
		localCtx, err := valueToContext(localCtxVal)
		if err != nil {
			ts.push(errorFrame(err))
			return
		}
		mergedCtx = Merge(ctx, localCtx)
	}

	subj := new(string)
	var preFrames []frame

	atRef, hasAt := om.Get("@")
	switch {
	case !hasAt || atRef.Kind == KindNull:
		s := NewBlankNodeLabel()
		*subj = s
		om.Set("@", newString(s))

	case atRef.Kind == KindObject:
		nestedRef := atRef
		preFrames = append(preFrames, objectFrame(nestedRef, mergedCtx))
		preFrames = append(preFrames, func(*TripleStream) (*Triple, error) {
			nestedSubj, ok := nestedRef.Object.Get("@")
			if !ok || nestedSubj.Kind != KindString {
				*subj = NewBlankNodeLabel()
			} else {
				*subj = nestedSubj.String
			}
			om.Set("@", newString(*subj))
			return nil, nil
		})

	case atRef.Kind == KindArray:
		for _, elem := range atRef.Array {
			preFrames = append(preFrames, valueFrame(elem, mergedCtx))
		}
		s := NewBlankNodeLabel()
		*subj = s
		om.Set("@", newString(s))

	case atRef.Kind == KindString:
		resolved, err := ResolveAsResource(atRef.String, mergedCtx)
		if err != nil {
			ts.push(errorFrame(err))
			return
		}
		*subj = resolved
		om.Set("@", newString(resolved))

	default:
		ts.push(errorFrame(newError(UnresolvableTerm, "", "@", "unsupported @ value shape")))
		return
	}

	var memberFrames []frame
	for _, k := range om.Keys() {
		if k == "#" || k == "@" {
			continue
		}
		memberFrames = append(memberFrames, memberFrame(om, k, mergedCtx, subj))
	}

	ts.push(append(preFrames, memberFrames...)...)
}

// memberFrame resolves one non-reserved object member to a property IRI
// and dispatches on its value's shape: null produces nothing, a scalar
// is classified and emitted directly, an object or array recurses first
// and links to the result afterward.
func memberFrame(om *OrderedMap, key string, ctx Context, subj *string) frame {
	return func(ts *TripleStream) (*Triple, error) {
		var prop string
		if key == "a" {
			prop = RDFType
		} else {
			resolved, err := ResolveAsProperty(key, ctx)
			if err != nil {
				return nil, err
			}
			prop = resolved
		}

		oVal, _ := om.Get(key)
		switch oVal.Kind {
		case KindNull:
			return nil, nil

		case KindBool, KindNumber, KindString:
			c, err := ClassifyValue(oVal, ctx)
			if err != nil {
				return nil, err
			}
			return &Triple{
				Subject: *subj, Property: prop,
				ObjectKind: c.Kind, Object: c.Object,
				Datatype: c.Datatype, Language: c.Language,
			}, nil

		case KindObject:
			ts.push(objectFrame(oVal, ctx), linkFrame(*subj, prop, oVal, ctx))
			return nil, nil

		case KindArray:
			pushArrayMemberFrames(ts, *subj, prop, oVal.Array, ctx)
			return nil, nil

		default:
			return nil, nil
		}
	}
}

// linkFrame emits the (subj, prop, target) triple once target (an object
// value) has finished recursing and its own subject is known.
func linkFrame(subj, prop string, target *Value, ctx Context) frame {
	return func(*TripleStream) (*Triple, error) {
		atVal, ok := target.Object.Get("@")
		if !ok {
			return nil, newError(UnresolvableTerm, "", prop, "nested object has no subject after recursion")
		}
		c, err := ClassifyValue(atVal, ctx)
		if err != nil {
			return nil, err
		}
		return &Triple{
			Subject: subj, Property: prop,
			ObjectKind: c.Kind, Object: c.Object,
			Datatype: c.Datatype, Language: c.Language,
		}, nil
	}
}

// pushArrayMemberFrames dispatches each array element by its own shape:
// nested arrays are flattened (each inner element handled the same way,
// with no linking triple for the nesting itself) rather than treated as
// RDF lists.
func pushArrayMemberFrames(ts *TripleStream, subj, prop string, elems []*Value, ctx Context) {
	var frames []frame
	for _, e := range elems {
		e := e
		switch e.Kind {
		case KindNull:
			continue

		case KindBool, KindNumber, KindString:
			frames = append(frames, func(*TripleStream) (*Triple, error) {
				c, err := ClassifyValue(e, ctx)
				if err != nil {
					return nil, err
				}
				return &Triple{
					Subject: subj, Property: prop,
					ObjectKind: c.Kind, Object: c.Object,
					Datatype: c.Datatype, Language: c.Language,
				}, nil
			})

		case KindObject:
			frames = append(frames, objectFrame(e, ctx), linkFrame(subj, prop, e, ctx))

		case KindArray:
			nested := e
			frames = append(frames, func(ts *TripleStream) (*Triple, error) {
				pushArrayMemberFrames(ts, subj, prop, nested.Array, ctx)
				return nil, nil
			})
		}
	}
	ts.push(frames...)
}

// valueToContext reads a local-context object off the wire into a
// Context. Every member must bind to a string IRI.
func valueToContext(v *Value) (Context, error) {
	if v.Kind != KindObject {
		return nil, newError(MalformedInput, "", "#", "local context must be an object")
	}
	c := make(Context, v.Object.Len())
	for _, k := range v.Object.Keys() {
		mv, _ := v.Object.Get(k)
		if mv.Kind != KindString {
			return nil, newError(MalformedInput, k, "#", "context binding must be a string IRI")
		}
		if k == legacyVocabKey {
			c[VocabKey] = mv.String
		} else {
			c[k] = mv.String
		}
	}
	return c, nil
}
