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

package ld_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-ld/earlyld/ld"
)

func expandString(t *testing.T, input string) []ld.Triple {
	t.Helper()
	doc, err := ld.ParseDocument(strings.NewReader(input))
	require.NoError(t, err)
	triples, err := ld.NewWalker(nil).Expand(doc).All()
	require.NoError(t, err)
	return triples
}

func TestExpand_WrappedSubjectAndCURIEType(t *testing.T) {
	triples := expandString(t, `{"#":{"foaf":"http://xmlns.com/foaf/0.1/"},"@":"<http://example.org/people#john>","a":"foaf:Person","foaf:name":"John Lennon"}`)
	require.Len(t, triples, 2)

	for _, tr := range triples {
		assert.Equal(t, "http://example.org/people#john", tr.Subject)
	}
	assertHasTriple(t, triples, ld.Triple{
		Subject: "http://example.org/people#john", Property: ld.RDFType,
		ObjectKind: ld.ResourceObject, Object: "http://xmlns.com/foaf/0.1/Person",
	})
	assertHasTriple(t, triples, ld.Triple{
		Subject: "http://example.org/people#john", Property: "http://xmlns.com/foaf/0.1/name",
		ObjectKind: ld.LiteralObject, Object: "John Lennon", Datatype: ld.XSDString,
	})
}

func TestExpand_DefaultContextKeyShorthand(t *testing.T) {
	triples := expandString(t, `{"a":"Person","name":"Manu Sporny","homepage":"http://manu.sporny.org/"}`)
	require.Len(t, triples, 3)

	subj := triples[0].Subject
	assert.True(t, ld.IsBlankNodeLabel(subj))
	for _, tr := range triples {
		assert.Equal(t, subj, tr.Subject)
	}

	assertHasTriple(t, triples, ld.Triple{
		Subject: subj, Property: ld.RDFType,
		ObjectKind: ld.ResourceObject, Object: "http://xmlns.com/foaf/0.1/Person",
	})
	assertHasTriple(t, triples, ld.Triple{
		Subject: subj, Property: "http://xmlns.com/foaf/0.1/name",
		ObjectKind: ld.LiteralObject, Object: "Manu Sporny", Datatype: ld.XSDString,
	})
	assertHasTriple(t, triples, ld.Triple{
		Subject: subj, Property: "http://xmlns.com/foaf/0.1/homepage",
		ObjectKind: ld.ResourceObject, Object: "http://manu.sporny.org/",
	})
}

func TestExpand_LocalVocabAndInteger(t *testing.T) {
	triples := expandString(t, `{"#":{"myvocab":"http://example.org/myvocab#"},"a":"foaf:Person","myvocab:credits":500}`)
	require.Len(t, triples, 2)

	assertHasTriple(t, triples, ld.Triple{
		Subject: triples[0].Subject, Property: "http://example.org/myvocab#credits",
		ObjectKind: ld.LiteralObject, Object: "500", Datatype: ld.XSDInteger,
	})
}

func TestExpand_RepeatedPropertyArrayOfTypedLiterals(t *testing.T) {
	triples := expandString(t, `{"@":"<http://example.org/articles/8>","dc:modified":["2010-05-29T14:17:39+02:00^^xsd:dateTime","2010-05-30T09:21:28-04:00^^xsd:dateTime"]}`)
	require.Len(t, triples, 2)

	for _, tr := range triples {
		assert.Equal(t, "http://example.org/articles/8", tr.Subject)
		assert.Equal(t, "http://purl.org/dc/terms/modified", tr.Property)
		assert.Equal(t, ld.XSDDateTime, tr.Datatype)
	}
	assertHasTriple(t, triples, ld.Triple{
		Subject: "http://example.org/articles/8", Property: "http://purl.org/dc/terms/modified",
		ObjectKind: ld.LiteralObject, Object: "2010-05-29T14:17:39+02:00", Datatype: ld.XSDDateTime,
	})
	assertHasTriple(t, triples, ld.Triple{
		Subject: "http://example.org/articles/8", Property: "http://purl.org/dc/terms/modified",
		ObjectKind: ld.LiteralObject, Object: "2010-05-30T09:21:28-04:00", Datatype: ld.XSDDateTime,
	})
}

func TestExpand_BlankSubjectMixedLiteralTypes(t *testing.T) {
	triples := expandString(t, `{"@":"_:foo","code":"\\<foobar\\^\\^2\\>","cups":5.3,"protons":12,"active":true}`)
	require.Len(t, triples, 4)

	for _, tr := range triples {
		assert.Equal(t, "_:foo", tr.Subject)
	}

	byDatatype := map[string]ld.Triple{}
	for _, tr := range triples {
		byDatatype[tr.Datatype] = tr
	}

	assert.Equal(t, "<foobar^^2>", byDatatype[ld.XSDString].Object)
	assert.Equal(t, "5.300000", byDatatype[ld.XSDFloat].Object)
	assert.Equal(t, "12", byDatatype[ld.XSDInteger].Object)
	assert.Equal(t, "true", byDatatype[ld.XSDBoolean].Object)
}

func TestExpand_NestedObjectPropertyValue(t *testing.T) {
	triples := expandString(t, `{"#":{"foaf":"http://xmlns.com/foaf/0.1/"},"a":"foaf:Person","foaf:knows":{"a":"foaf:Person","foaf:name":"Eve"}}`)
	require.Len(t, triples, 4)

	var knows *ld.Triple
	for i, tr := range triples {
		if tr.Property == "http://xmlns.com/foaf/0.1/knows" {
			knows = &triples[i]
		}
	}
	require.NotNil(t, knows)
	require.Equal(t, ld.ResourceObject, knows.ObjectKind)

	innerSubj := knows.Object
	assert.True(t, ld.IsBlankNodeLabel(innerSubj))
	assert.NotEqual(t, knows.Subject, innerSubj)

	assertHasTriple(t, triples, ld.Triple{
		Subject: innerSubj, Property: ld.RDFType,
		ObjectKind: ld.ResourceObject, Object: "http://xmlns.com/foaf/0.1/Person",
	})
	assertHasTriple(t, triples, ld.Triple{
		Subject: innerSubj, Property: "http://xmlns.com/foaf/0.1/name",
		ObjectKind: ld.LiteralObject, Object: "Eve", Datatype: ld.XSDString,
	})
	assertHasTriple(t, triples, ld.Triple{
		Subject: knows.Subject, Property: ld.RDFType,
		ObjectKind: ld.ResourceObject, Object: "http://xmlns.com/foaf/0.1/Person",
	})
}

func TestExpand_SharesBlankNodeAcrossOwnProperties(t *testing.T) {
	triples := expandString(t, `{"a":"Person","name":"No Homepage"}`)
	require.Len(t, triples, 2)
	assert.Equal(t, triples[0].Subject, triples[1].Subject)
}

func assertHasTriple(t *testing.T, triples []ld.Triple, want ld.Triple) {
	t.Helper()
	for _, tr := range triples {
		if tr == want {
			return
		}
	}
	t.Fatalf("expected triple %+v not found in %+v", want, triples)
}
