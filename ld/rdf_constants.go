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

const (
	RDFSyntaxNS string = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	XSDNS       string = "http://www.w3.org/2001/XMLSchema#"

	XSDBoolean  string = XSDNS + "boolean"
	XSDInteger  string = XSDNS + "integer"
	XSDFloat    string = XSDNS + "float"
	XSDString   string = XSDNS + "string"
	XSDDateTime string = XSDNS + "dateTime"

	RDFType string = RDFSyntaxNS + "type"
)
