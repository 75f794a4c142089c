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
package hilbert_test

import (
	"testing"

	"github.com/natded/go-natded/pkg/formula"
	"github.com/natded/go-natded/pkg/hilbert"
	"github.com/natded/go-natded/pkg/nd"
	"github.com/stretchr/testify/assert"
)

func instanceOf(k int) formula.Formula {
	switch k {
	case 1:
		return formula.NewImpl(a, formula.NewImpl(b, a))
	case 2:
		return formula.NewImpl(
			formula.NewImpl(a, b),
			formula.NewImpl(formula.NewImpl(a, formula.NewImpl(b, y)), formula.NewImpl(a, y)),
		)
	case 3:
		return formula.NewImpl(a, formula.NewImpl(b, formula.NewConj(a, b)))
	case 4:
		return formula.NewImpl(formula.NewConj(a, b), a)
	case 5:
		return formula.NewImpl(formula.NewConj(a, b), b)
	case 6:
		return formula.NewImpl(a, formula.NewDisj(a, b))
	case 7:
		return formula.NewImpl(b, formula.NewDisj(a, b))
	case 8:
		return formula.NewImpl(
			formula.NewImpl(a, y),
			formula.NewImpl(formula.NewImpl(b, y), formula.NewImpl(formula.NewDisj(a, b), y)),
		)
	case 9:
		return formula.NewImpl(
			formula.NewImpl(a, b),
			formula.NewImpl(formula.NewImpl(a, formula.NewImpl(b, bot)), formula.NewImpl(a, bot)),
		)
	case 10:
		return formula.NewImpl(a, formula.NewImpl(formula.NewImpl(a, bot), b))
	default:
		panic("bad k")
	}
}

// walk visits n and then, recursively, every node below it in pre-order, so
// tests can sanity check the shape without hard-coding every node.
func walk(n *nd.Node, visit func(*nd.Node)) {
	visit(n)
	for _, c := range n.Children {
		walk(c, visit)
	}
}

func TestBuildAxiomConcludesPhi(t *testing.T) {
	for k := 1; k <= 10; k++ {
		phi := instanceOf(k)
		root := hilbert.BuildAxiom(k, phi)

		assert.True(t, root.Expr.Equals(phi), "axiom %d: root.Expr != phi", k)
		assert.Equal(t, nd.IImpl, root.Rule, "axiom %d: root should be I->", k)
		assert.Nil(t, root.AddHyp, "axiom %d: root should discharge no ambient hypothesis", k)
	}
}

func TestBuildAxiomArityHolds(t *testing.T) {
	// nd.New panics internally on arity mismatch, so simply not panicking
	// while building and walking every node confirms each rule got the
	// right number of children.
	for k := 1; k <= 10; k++ {
		root := hilbert.BuildAxiom(k, instanceOf(k))
		assert.NotPanics(t, func() {
			walk(root, func(n *nd.Node) {
				assert.Len(t, n.Children, n.Rule.Arity())
			})
		})
	}
}

func TestBuildAxiomInvalidSchema(t *testing.T) {
	assert.Panics(t, func() {
		hilbert.BuildAxiom(0, a)
	})
	assert.Panics(t, func() {
		hilbert.BuildAxiom(11, a)
	})
}

func TestBuildAx8DischargesCaseHypotheses(t *testing.T) {
	phi := instanceOf(8)
	root := hilbert.BuildAxiom(8, phi)

	// root -> I-> child -> I-> child -> EDis node, whose two case branches
	// must each discharge the disjunct they assume.
	disNode := root.Children[0].Children[0].Children[0]
	assert.Equal(t, nd.EDis, disNode.Rule)
	assert.NotNil(t, disNode.AddHyp)

	left, right := disNode.Children[0], disNode.Children[1]
	assert.NotNil(t, left.AddHyp)
	assert.NotNil(t, right.AddHyp)
	assert.True(t, left.AddHyp.Equals(a))
	assert.True(t, right.AddHyp.Equals(b))
}
