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

// Package formula implements the propositional-logic formula representation:
// an immutable, structurally-shared tree whose identity and hash are derived
// from a memoized canonical prefix-notation string, giving amortized O(1)
// structural equality and hashing. Negation is never represented directly;
// the parser elaborates "!phi" to "phi -> _|_" before a Formula is built.
package formula

import (
	"hash/fnv"

	"github.com/bits-and-blooms/bitset"
)

// Kind identifies which of the five formula variants a node is.
type Kind uint8

const (
	// Bottom is the propositional constant falsum.
	Bottom Kind = iota
	// Var is an atomic propositional variable.
	Var
	// Conj is a binary conjunction (AND).
	Conj
	// Disj is a binary disjunction (OR).
	Disj
	// Impl is a binary implication.
	Impl
)

// String returns a short label for the kind, used only in panic messages.
func (k Kind) String() string {
	switch k {
	case Bottom:
		return "Bottom"
	case Var:
		return "Variable"
	case Conj:
		return "Conjunction"
	case Disj:
		return "Disjunction"
	case Impl:
		return "Implication"
	default:
		return "unknown"
	}
}

// Formula is an immutable node in a propositional-logic formula tree. Two
// formulae are structurally equal iff their canonical prefix-notation
// strings are equal; that string and its hash are computed once, at
// construction, and memoized for the lifetime of the node.
type Formula struct {
	kind  Kind
	name  string   // valid when kind == Var
	left  *Formula // valid when kind is Conj, Disj or Impl
	right *Formula // valid when kind is Conj, Disj or Impl
	view  string   // canonical prefix-notation string
	hash  uint64   // fnv-1a hash of view
	vars  *bitset.BitSet
}

// interning table mapping variable names to stable bit indices, used only to
// populate VarSet. Formula construction happens on a single goroutine, so
// this requires no locking.
var varIndex = map[string]uint{}

func indexOf(name string) uint {
	if i, ok := varIndex[name]; ok {
		return i
	}

	i := uint(len(varIndex))
	varIndex[name] = i

	return i
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))

	return h.Sum64()
}

// NewBottom constructs the falsum constant.
func NewBottom() Formula {
	const view = "_|_"
	return Formula{kind: Bottom, view: view, hash: hashString(view), vars: bitset.New(0)}
}

// NewVar constructs an atomic variable. name must match [A-Z][A-Z0-9']*; the
// parser is responsible for enforcing that, not this constructor.
func NewVar(name string) Formula {
	vars := bitset.New(0)
	vars.Set(indexOf(name))

	return Formula{kind: Var, name: name, view: name, hash: hashString(name), vars: vars}
}

// NewConj constructs a conjunction left & right.
func NewConj(left, right Formula) Formula {
	return newBinary(Conj, "&", left, right)
}

// NewDisj constructs a disjunction left | right.
func NewDisj(left, right Formula) Formula {
	return newBinary(Disj, "|", left, right)
}

// NewImpl constructs an implication left -> right.
func NewImpl(left, right Formula) Formula {
	return newBinary(Impl, "->", left, right)
}

func newBinary(kind Kind, op string, left, right Formula) Formula {
	view := op + " " + left.view + " " + right.view
	vars := left.vars.Union(right.vars)

	return Formula{
		kind:  kind,
		left:  &left,
		right: &right,
		view:  view,
		hash:  hashString(view),
		vars:  vars,
	}
}

// Kind returns the variant of this formula.
func (f Formula) Kind() Kind { return f.kind }

// Name returns the variable name. Only valid when Kind() == Var.
func (f Formula) Name() string { return f.name }

// Left returns the left child. Only valid for binary kinds.
func (f Formula) Left() Formula { return *f.left }

// Right returns the right child. Only valid for binary kinds.
func (f Formula) Right() Formula { return *f.right }

// View returns the canonical prefix-notation string, used as a formula's
// identity.
func (f Formula) View() string { return f.view }

// Hash implements hash.Hasher, returning the memoized hash of the canonical
// string in O(1).
func (f Formula) Hash() uint64 { return f.hash }

// Equals implements hash.Hasher: two formulae are equal iff their canonical
// strings are equal.
func (f Formula) Equals(other Formula) bool { return f.view == other.view }

// VarSet returns the set of variables (by interned index) mentioned anywhere
// in this formula, as a compact bitset suitable for O(1) membership tests.
func (f Formula) VarSet() *bitset.BitSet { return f.vars }

// Mentions reports whether this formula's subtree mentions the named
// variable.
func (f Formula) Mentions(name string) bool {
	i, ok := varIndex[name]
	if !ok {
		return false
	}

	return f.vars.Test(i)
}
