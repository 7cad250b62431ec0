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
	"fmt"
	"io"
	"strings"
)

// NTriplesSerializer writes a triple stream out in N-Triples syntax.
type NTriplesSerializer struct{}

// SerializeTo drains ts, writing one line per triple to w. It stops at
// the first write or expansion error.
func (s *NTriplesSerializer) SerializeTo(w io.Writer, ts *TripleStream) error {
	for ts.Next() {
		if _, err := io.WriteString(w, toNTriple(ts.Triple())); err != nil {
			return err
		}
	}
	return ts.Err()
}

func toNTriple(t Triple) string {
	var b strings.Builder

	if IsBlankNodeLabel(t.Subject) {
		b.WriteString(t.Subject)
	} else {
		b.WriteString("<" + escapeLexical(t.Subject) + ">")
	}

	b.WriteString(" <" + escapeLexical(t.Property) + "> ")

	switch t.ObjectKind {
	case ResourceObject:
		if IsBlankNodeLabel(t.Object) {
			b.WriteString(t.Object)
		} else {
			b.WriteString("<" + escapeLexical(t.Object) + ">")
		}
	case LiteralObject:
		fmt.Fprintf(&b, "%q", t.Object)
		if t.Language != "" {
			b.WriteString("@" + t.Language)
		} else if t.Datatype != "" && t.Datatype != XSDString {
			b.WriteString("^^<" + escapeLexical(t.Datatype) + ">")
		}
	}

	b.WriteString(" .\n")
	return b.String()
}

func escapeLexical(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
