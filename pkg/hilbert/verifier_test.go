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
	"errors"
	"testing"

	"github.com/natded/go-natded/pkg/formula"
	"github.com/natded/go-natded/pkg/hilbert"
	"github.com/natded/go-natded/pkg/nd"
	"github.com/stretchr/testify/assert"
)

func TestVerifyAcceptsEverySingleLineAxiomProof(t *testing.T) {
	for k := 1; k <= 10; k++ {
		phi := instanceOf(k)
		j := hilbert.Judgement{Goal: phi}

		root, err := hilbert.Verify(j, []formula.Formula{phi})

		assert.NoError(t, err, "axiom %d", k)
		assert.NotNil(t, root)
		assert.True(t, root.Expr.Equals(phi))
	}
}

func TestVerifyModusPonensPath(t *testing.T) {
	alpha := formula.NewVar("A")
	beta := formula.NewVar("B")
	alphaImplBeta := formula.NewImpl(alpha, beta)

	j := hilbert.Judgement{
		Hyps: []formula.Formula{alpha, alphaImplBeta},
		Goal: beta,
	}

	root, err := hilbert.Verify(j, []formula.Formula{alpha, alphaImplBeta, beta})

	assert.NoError(t, err)
	assert.NotNil(t, root)
	assert.Equal(t, nd.EImpl, root.Rule)
	assert.True(t, root.Expr.Equals(beta))
	assert.Len(t, root.Children, 2)
}

func TestVerifyRejectsBrokenProof(t *testing.T) {
	alpha := formula.NewVar("A")
	beta := formula.NewVar("B")
	unrelated := formula.NewVar("C")
	alphaImplBeta := formula.NewImpl(alpha, beta)

	j := hilbert.Judgement{
		Hyps: []formula.Formula{alpha, alphaImplBeta},
		Goal: beta,
	}

	_, err := hilbert.Verify(j, []formula.Formula{alpha, unrelated, beta})

	var lineErr *hilbert.LineError
	assert.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 3, lineErr.Line) // judgement is line 1, so "unrelated" is line 3
	assert.True(t, errors.Is(err, hilbert.ErrUnjustifiedStep))
	assert.Equal(t, "Proof is incorrect at line 3", err.Error())
}

func TestVerifyRejectsGoalMismatch(t *testing.T) {
	alpha := formula.NewVar("A")
	beta := formula.NewVar("B")

	j := hilbert.Judgement{Goal: beta}

	_, err := hilbert.Verify(j, []formula.Formula{alpha})

	assert.ErrorIs(t, err, hilbert.ErrGoalMismatch)
}

func TestVerifyEmptyProofIsGoalMismatch(t *testing.T) {
	j := hilbert.Judgement{Goal: formula.NewVar("A")}

	_, err := hilbert.Verify(j, nil)

	assert.ErrorIs(t, err, hilbert.ErrGoalMismatch)
}

// A later occurrence of the same antecedent/implication pair must not
// overwrite an MP precalc already committed by an earlier one (spec's "first
// occurrence wins" tie-break).
func TestVerifyMPPrecalcFirstOccurrenceWins(t *testing.T) {
	alpha := formula.NewVar("A")
	beta := formula.NewVar("B")
	alphaImplBeta := formula.NewImpl(alpha, beta)

	j := hilbert.Judgement{
		Hyps: []formula.Formula{alpha, alphaImplBeta},
		Goal: beta,
	}

	// alpha, alpha->beta, beta (claims beta via MP), beta (axiom 1 shape
	// would not match a bare variable, so this second beta line is only
	// reachable via the same precalc hit; re-verify it is a hypothesis-free
	// classification with identical shape, not a fresh rebuild).
	root, err := hilbert.Verify(j, []formula.Formula{alpha, alphaImplBeta, beta, beta})
	assert.NoError(t, err)
	assert.Equal(t, nd.EImpl, root.Rule)
}
