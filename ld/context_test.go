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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultContext(t *testing.T) {
	c := DefaultContext()
	assert.Equal(t, "http://xmlns.com/foaf/0.1/", c["foaf"])
	assert.Equal(t, "http://xmlns.com/foaf/0.1/name", c["name"])
	vocab, ok := c.Vocab()
	assert.True(t, ok)
	assert.NotEmpty(t, vocab)
}

func TestMerge_LocalOverridesActive(t *testing.T) {
	active := Context{"foo": "http://active.example/"}
	local := Context{"foo": "http://local.example/"}
	merged := Merge(active, local)
	assert.Equal(t, "http://local.example/", merged["foo"])
}

func TestMerge_DoesNotMutateArguments(t *testing.T) {
	active := Context{"foo": "http://active.example/"}
	local := Context{"bar": "http://local.example/"}
	_ = Merge(active, local)
	assert.Len(t, active, 1)
	assert.Len(t, local, 1)
}

func TestMerge_LegacyVocabKeyNormalized(t *testing.T) {
	active := DefaultContext()
	local := Context{legacyVocabKey: "http://custom.example/vocab#"}
	merged := Merge(active, local)
	vocab, ok := merged.Vocab()
	assert.True(t, ok)
	assert.Equal(t, "http://custom.example/vocab#", vocab)
	_, hasLegacy := merged[legacyVocabKey]
	assert.False(t, hasLegacy)
}

func TestContext_Base(t *testing.T) {
	c := Context{BaseKey: "http://example.org/"}
	base, ok := c.Base()
	assert.True(t, ok)
	assert.Equal(t, "http://example.org/", base)

	empty := Context{}
	_, ok = empty.Base()
	assert.False(t, ok)
}
