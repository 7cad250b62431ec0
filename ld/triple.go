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

// ObjectKind distinguishes a resource-valued triple object from a
// literal-valued one.
type ObjectKind string

const (
	ResourceObject ObjectKind = "resource"
	LiteralObject  ObjectKind = "literal"
)

// Triple is an RDF statement produced by expansion. Subject is either an
// absolute IRI or a blank-node label; Property is always an absolute
// IRI. When ObjectKind is LiteralObject, Datatype is always set and
// Language is set only when Datatype is the string datatype and the
// value carried a language tag.
type Triple struct {
	Subject    string
	Property   string
	ObjectKind ObjectKind
	Object     string
	Datatype   string
	Language   string
}
