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
package hilbert

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/natded/go-natded/pkg/formula"
	"github.com/natded/go-natded/pkg/nd"
	"github.com/natded/go-natded/pkg/util/hash"
)

// ErrGoalMismatch means the last line of the proof does not equal the
// declared goal.
var ErrGoalMismatch = errors.New("the proof does not prove the required expression")

// ErrUnjustifiedStep means some proof line matches neither the MP
// precomputation, the hypothesis set, nor any of the ten axiom schemata.
// Always wrapped in a *LineError; test with errors.Is.
var ErrUnjustifiedStep = errors.New("proof is incorrect")

// LineError reports ErrUnjustifiedStep at a specific 1-based line number,
// counting the judgement line as line 1.
type LineError struct {
	Line int
}

func (e *LineError) Error() string {
	return fmt.Sprintf("Proof is incorrect at line %d", e.Line)
}

func (e *LineError) Unwrap() error {
	return ErrUnjustifiedStep
}

// Judgement is the parsed first line of an input: a set of hypotheses and a
// goal formula, "Γ |- φ".
type Judgement struct {
	Hyps []formula.Formula
	Goal formula.Formula
}

// Verify runs the incremental classifier over proof, assuming proof[len-1]
// is expected to equal j.Goal. It returns the natural-deduction node
// concluding the goal, or the first failure encountered (ErrGoalMismatch, or
// a *LineError wrapping ErrUnjustifiedStep).
//
// The single pass keeps two tables alongside the per-formula derivation
// cache (encountered): precalcMP, the modus-ponens conclusion waiting to be
// claimed the moment its consequent is next seen as a proof line, and
// inNeedOfLhs, the reverse index of lines still waiting on their
// antecedent. Together they let step i be classified in amortized O(|p_i|)
// instead of rescanning every earlier line for a matching implication.
func Verify(j Judgement, proof []formula.Formula) (*nd.Node, error) {
	if len(proof) == 0 || !proof[len(proof)-1].Equals(j.Goal) {
		return nil, ErrGoalMismatch
	}

	hyps := hash.NewMap[formula.Formula, struct{}]()
	for _, h := range j.Hyps {
		hyps.Set(h, struct{}{})
	}

	encountered := hash.NewMap[formula.Formula, *nd.Node]()
	precalcMP := hash.NewMap[formula.Formula, *nd.Node]()
	inNeedOfLhs := hash.NewMap[formula.Formula, []int]()

	var root *nd.Node

	for i, p := range proof {
		lineNo := i + 2 // judgement is line 1

		node, via := classify(p, hyps, encountered, precalcMP)
		if node == nil {
			return nil, &LineError{Line: lineNo}
		}

		log.Debugf("hilbert: line %d classified as %s (%s)", lineNo, p.View(), via)
		encountered.Set(p, node)
		updateTables(i, p, node, encountered, precalcMP, inNeedOfLhs, proof)
		root = node
	}

	return root, nil
}

// classify applies steps 1-3 of the per-line algorithm in priority order:
// an MP precalc hit beats a hypothesis match, which beats an axiom-schema
// match. It returns nil if none apply (step 4, the caller's reject case).
func classify(
	p formula.Formula,
	hyps *hash.Map[formula.Formula, struct{}],
	encountered *hash.Map[formula.Formula, *nd.Node],
	precalcMP *hash.Map[formula.Formula, *nd.Node],
) (*nd.Node, string) {
	if n, ok := precalcMP.Get(p); ok {
		return n, "modus ponens"
	}
	if hyps.Contains(p) {
		return nd.NewAx(nil, p), "hypothesis"
	}
	if k := MatchAny(p); k > 0 {
		return BuildAxiom(k, p), fmt.Sprintf("axiom %d, binding %s", k, DescribeBindings(p))
	}

	return nil, ""
}

// updateTables applies steps 5-6: having just classified p_i (at proof
// index i, with derivation node), record the modus-ponens conclusion it
// enables if its antecedent is already known, else queue it in
// inNeedOfLhs; then resolve any earlier lines that were waiting on p_i
// itself as their antecedent.
func updateTables(
	i int,
	p formula.Formula,
	node *nd.Node,
	encountered *hash.Map[formula.Formula, *nd.Node],
	precalcMP *hash.Map[formula.Formula, *nd.Node],
	inNeedOfLhs *hash.Map[formula.Formula, []int],
	proof []formula.Formula,
) {
	if p.Kind() == formula.Impl {
		alpha, beta := p.Left(), p.Right()
		if alphaNode, ok := encountered.Get(alpha); ok {
			if !precalcMP.Contains(beta) {
				precalcMP.Set(beta, nd.New(nil, beta, nd.EImpl, node, alphaNode))
			}
		} else {
			hash.GetOrAppend(inNeedOfLhs, alpha, i)
		}
	}

	waiting, ok := inNeedOfLhs.Get(p)
	if !ok {
		return
	}

	for _, j := range waiting {
		pj := proof[j]
		betaJ := pj.Right()
		pjNode, _ := encountered.Get(pj)
		if !precalcMP.Contains(betaJ) {
			precalcMP.Set(betaJ, nd.New(nil, betaJ, nd.EImpl, pjNode, node))
		}
	}
}
