// Copyright the go-natded Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package hash_test

import (
	"testing"

	"github.com/natded/go-natded/pkg/util/hash"
	"github.com/stretchr/testify/assert"
)

// collidingKey always hashes to the same bucket, so tests exercise the
// collision-list scan rather than the happy path.
type collidingKey struct {
	id uint64
}

func (k collidingKey) Equals(other collidingKey) bool { return k.id == other.id }
func (k collidingKey) Hash() uint64                   { return 0 }

func TestMapGetSet(t *testing.T) {
	m := hash.NewMap[collidingKey, string]()

	_, ok := m.Get(collidingKey{1})
	assert.False(t, ok)

	m.Set(collidingKey{1}, "one")
	m.Set(collidingKey{2}, "two")

	v, ok := m.Get(collidingKey{1})
	assert.True(t, ok)
	assert.Equal(t, "one", v)

	v, ok = m.Get(collidingKey{2})
	assert.True(t, ok)
	assert.Equal(t, "two", v)

	assert.Equal(t, 2, m.Len())
}

func TestMapOverwrite(t *testing.T) {
	m := hash.NewMap[collidingKey, string]()
	m.Set(collidingKey{1}, "one")
	m.Set(collidingKey{1}, "uno")

	v, ok := m.Get(collidingKey{1})
	assert.True(t, ok)
	assert.Equal(t, "uno", v)
	assert.Equal(t, 1, m.Len())
}

func TestMapCollisionDoesNotConflate(t *testing.T) {
	m := hash.NewMap[collidingKey, int]()

	for i := 0; i < 32; i++ {
		m.Set(collidingKey{uint64(i)}, i*i)
	}

	for i := 0; i < 32; i++ {
		v, ok := m.Get(collidingKey{uint64(i)})
		assert.True(t, ok)
		assert.Equal(t, i*i, v)
	}

	assert.Equal(t, 32, m.Len())
}

func TestGetOrAppend(t *testing.T) {
	m := hash.NewMap[collidingKey, []int]()

	hash.GetOrAppend(m, collidingKey{1}, 10)
	hash.GetOrAppend(m, collidingKey{1}, 20)

	v, ok := m.Get(collidingKey{1})
	assert.True(t, ok)
	assert.Equal(t, []int{10, 20}, v)
}
