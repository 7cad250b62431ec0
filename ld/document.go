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
	"encoding/json"
	"fmt"
	"io"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a parsed JSON value modeled as a tagged variant, since Go has
// no dynamic dict/list type to inspect at runtime the way the original
// processor's host language did. Object preserves JSON member order and
// supports in-place back-patching of a synthesized "@" subject, which is
// how a nested object reports its assigned blank node back to whatever
// property referenced it.
type Value struct {
	Kind   Kind
	Bool   bool
	Number json.Number
	String string
	Array  []*Value
	Object *OrderedMap
}

func newNull() *Value           { return &Value{Kind: KindNull} }
func newBool(b bool) *Value     { return &Value{Kind: KindBool, Bool: b} }
func newNumber(n json.Number) *Value { return &Value{Kind: KindNumber, Number: n} }
func newString(s string) *Value { return &Value{Kind: KindString, String: s} }

// OrderedMap is a JSON object that remembers the order in which its
// members were first seen.
type OrderedMap struct {
	keys []string
	vals map[string]*Value
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{vals: make(map[string]*Value)}
}

// Get returns the value bound to key, if any.
func (om *OrderedMap) Get(key string) (*Value, bool) {
	v, ok := om.vals[key]
	return v, ok
}

// Set binds key to v. If key is already present its position in
// iteration order is preserved; otherwise key is appended.
func (om *OrderedMap) Set(key string, v *Value) {
	if _, present := om.vals[key]; !present {
		om.keys = append(om.keys, key)
	}
	om.vals[key] = v
}

// Keys returns the object's member names in document order.
func (om *OrderedMap) Keys() []string {
	return om.keys
}

// Len returns the number of members.
func (om *OrderedMap) Len() int {
	return len(om.keys)
}

// ParseDocument reads a single UTF-8 JSON document from r and returns it
// as an order-preserving Value tree. This plays the role of the "external
// JSON parser" collaborator, adapted to a statically typed target per
// the tagged-variant representation described for this engine.
func ParseDocument(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, newError(MalformedInput, "", "", err.Error())
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case nil:
		return newNull(), nil
	case bool:
		return newBool(t), nil
	case json.Number:
		return newNumber(t), nil
	case string:
		return newString(t), nil
	case json.Delim:
		switch t {
		case '[':
			arr := make([]*Value, 0)
			for dec.More() {
				elem, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, elem)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return &Value{Kind: KindArray, Array: arr}, nil
		case '{':
			om := NewOrderedMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key token %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				om.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return &Value{Kind: KindObject, Object: om}, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	default:
		return nil, fmt.Errorf("unexpected JSON token %v", tok)
	}
}
