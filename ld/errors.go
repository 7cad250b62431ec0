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

import "fmt"

// ErrorCode identifies the kind of failure that aborted an expansion.
type ErrorCode string

const (
	UnboundPrefix      ErrorCode = "unbound prefix"
	MissingBase        ErrorCode = "missing base"
	MissingVocab       ErrorCode = "missing vocab"
	UnresolvableTerm   ErrorCode = "unresolvable term"
	UnknownLiteralType ErrorCode = "unknown literal type"
	MalformedInput     ErrorCode = "malformed input"
)

// ExpansionError is the error type returned by a failed expansion. It
// carries the offending term, the key it appeared under and a short
// diagnostic, but never the parsed subtree.
type ExpansionError struct {
	Code ErrorCode
	Term string
	Key  string
	Msg  string
}

func (e *ExpansionError) Error() string {
	switch {
	case e.Key != "" && e.Term != "":
		return fmt.Sprintf("%s: %s (term %q, key %q)", e.Code, e.Msg, e.Term, e.Key)
	case e.Term != "":
		return fmt.Sprintf("%s: %s (term %q)", e.Code, e.Msg, e.Term)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
}

func newError(code ErrorCode, term, key, msg string) *ExpansionError {
	return &ExpansionError{Code: code, Term: term, Key: key, Msg: msg}
}
