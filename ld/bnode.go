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
	"strings"

	"github.com/google/uuid"
)

// NewBlankNodeLabel returns a fresh blank-node label: "_:" followed by a
// 32-hex-digit (128-bit) random identifier. Uniqueness is required only
// within a single expansion call; labels need not be stable across calls.
func NewBlankNodeLabel() string {
	return "_:" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
