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
package printer_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/natded/go-natded/pkg/formula"
	"github.com/natded/go-natded/pkg/hilbert"
	"github.com/natded/go-natded/pkg/nd"
	"github.com/natded/go-natded/pkg/parser"
	"github.com/natded/go-natded/pkg/printer"
	"github.com/stretchr/testify/assert"
)

func TestFormatFullyParenthesized(t *testing.T) {
	a := formula.NewVar("A")
	b := formula.NewVar("B")

	assert.Equal(t, "A", printer.Format(a))
	assert.Equal(t, "_|_", printer.Format(formula.NewBottom()))
	assert.Equal(t, "(A)->(A)", printer.Format(formula.NewImpl(a, a)))
	assert.Equal(t, "(A)&(B)", printer.Format(formula.NewConj(a, b)))
	assert.Equal(t, "(A)|(B)", printer.Format(formula.NewDisj(a, b)))
}

func lastLine(s string) string {
	s = strings.TrimRight(s, "\n")
	lines := strings.Split(s, "\n")
	return lines[len(lines)-1]
}

func runScenario(t *testing.T, judgementLine string, proofLines []string) string {
	t.Helper()

	j, err := parser.ParseJudgement(judgementLine)
	assert.NoError(t, err)

	proof := make([]formula.Formula, len(proofLines))
	for i, l := range proofLines {
		f, err := parser.ParseFormula(l)
		assert.NoError(t, err)
		proof[i] = f
	}

	root, err := hilbert.Verify(hilbert.Judgement{Hyps: j.Hyps, Goal: j.Goal}, proof)
	assert.NoError(t, err)

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	assert.NoError(t, printer.PrintDerivation(w, root, j.Hyps))
	assert.NoError(t, w.Flush())

	return buf.String()
}

func TestScenarioS1ReflexivityOfImplication(t *testing.T) {
	out := runScenario(t, "|-A->A", []string{
		"A->A->A",
		"A->(A->A)->A",
		"(A->A->A)->(A->(A->A)->A)->(A->A)",
		"(A->(A->A)->A)->(A->A)",
		"A->A",
	})

	assert.Equal(t, "[0] |-(A)->(A) [E->]", lastLine(out))
}

func TestPrintDerivationDoesNotDuplicateShadowedHypothesis(t *testing.T) {
	aa := formula.NewVar("A")
	leaf := nd.NewAx(nd.Hyp(aa), aa)
	root := nd.New(nil, aa, nd.ElCon, leaf)

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	assert.NoError(t, printer.PrintDerivation(w, root, []formula.Formula{aa}))
	assert.NoError(t, w.Flush())

	assert.Equal(t, "[1] A|-A [Ax]\n[0] A|-A [El&]\n", buf.String())
}

func TestScenarioS2ConjunctionIntroduction(t *testing.T) {
	out := runScenario(t, "A,B|-A&B", []string{
		"A",
		"B",
		"A->B->A&B",
		"B->A&B",
		"A&B",
	})

	assert.Equal(t, "[0] A,B|-(A)&(B) [E->]", lastLine(out))
}
