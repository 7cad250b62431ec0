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
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var escapedCharPattern = regexp.MustCompile(`\\([<>@#:^])`)

// unescape replaces backslash-escaped occurrences of <, >, @, #, :, ^
// with their bare characters. This is how a literal containing one of
// those characters evades being mistaken for a CURIE, wrapped IRI or
// typed literal. An escaped @ does not prevent language-tag detection:
// "foo\@en" is still read as "foo\" tagged "en".
func unescape(s string) string {
	return escapedCharPattern.ReplaceAllString(s, "$1")
}

// Classified is the result of classifying a JSON value as a triple
// object: either a resource reference or a typed literal.
type Classified struct {
	Kind     ObjectKind
	Object   string
	Datatype string
	Language string
}

// ClassifyValue decides whether v denotes a resource (delegating to the
// Term Resolver) or a literal (with datatype coercion, language tags and
// datetime detection). Null values have no classification; callers must
// special-case them before calling ClassifyValue.
func ClassifyValue(v *Value, ctx Context) (Classified, error) {
	switch v.Kind {
	case KindBool:
		if v.Bool {
			return Classified{Kind: LiteralObject, Object: "true", Datatype: XSDBoolean}, nil
		}
		return Classified{Kind: LiteralObject, Object: "false", Datatype: XSDBoolean}, nil

	case KindNumber:
		return classifyNumber(v.Number)

	case KindString:
		return classifyString(v.String, ctx)

	default:
		return Classified{}, newError(UnknownLiteralType, "", "", "value has no classification")
	}
}

// classifyNumber distinguishes integers from floating-point numbers by
// the lexical shape of the JSON number (presence of a fraction or
// exponent), then formats the lexical form per spec: arbitrary-precision
// decimal for integers (math/big.Int, since integer overflow behavior is
// otherwise unspecified), fixed-point with six fractional digits for
// floats.
func classifyNumber(n json.Number) (Classified, error) {
	s := string(n)
	if strings.ContainsAny(s, ".eE") {
		f, err := n.Float64()
		if err != nil {
			return Classified{}, newError(UnknownLiteralType, s, "", err.Error())
		}
		return Classified{
			Kind:     LiteralObject,
			Object:   strconv.FormatFloat(f, 'f', 6, 64),
			Datatype: XSDFloat,
		}, nil
	}

	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Classified{}, newError(UnknownLiteralType, s, "", "not a valid integer literal")
	}
	return Classified{
		Kind:     LiteralObject,
		Object:   i.String(),
		Datatype: XSDInteger,
	}, nil
}

// classifyString runs the ordered string sub-classification: typed
// literal, then datetime, then language tag, then resource shape, else a
// plain xsd:string literal.
func classifyString(s string, ctx Context) (Classified, error) {
	if m := typedLiteralPattern.FindStringSubmatch(s); m != nil {
		datatype, err := ResolveAsProperty(m[2], ctx)
		if err != nil {
			return Classified{}, err
		}
		return Classified{Kind: LiteralObject, Object: unescape(m[1]), Datatype: datatype}, nil
	}

	if dateTimePattern.MatchString(s) {
		return Classified{Kind: LiteralObject, Object: unescape(s), Datatype: XSDDateTime}, nil
	}

	if m := langTagPattern.FindStringSubmatch(s); m != nil {
		return Classified{
			Kind:     LiteralObject,
			Object:   unescape(m[1]),
			Datatype: XSDString,
			Language: m[2],
		}, nil
	}

	if isResourceShaped(s, ctx) {
		resource, err := ResolveAsResource(s, ctx)
		if err != nil {
			return Classified{}, err
		}
		return Classified{Kind: ResourceObject, Object: resource}, nil
	}

	return Classified{Kind: LiteralObject, Object: unescape(s), Datatype: XSDString}, nil
}
