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

// Package hilbert implements the Hilbert-proof side of the conversion: the
// ten fixed axiom schemata (this file), the fixed natural-deduction shape
// for each instance (builder.go) and the incremental verifier that ties
// Formula, AxiomMatcher and NdBuilder together (verifier.go).
package hilbert

import (
	"fmt"

	"github.com/natded/go-natded/pkg/formula"
)

// matchers lists the ten axiom-schema predicates in schema order; axiom
// numbering (1-based) is its index+1, matched first-to-last so that among
// several schemata an expression could instantiate, the lowest-numbered one
// wins.
var matchers = [10]func(formula.Formula) bool{
	matchAx1, matchAx2, matchAx3, matchAx4, matchAx5,
	matchAx6, matchAx7, matchAx8, matchAx9, matchAx10,
}

// MatchAny scans the ten schemata in order and returns the 1-based schema
// number of the first match, or 0 if expr instantiates none of them. Each
// individual match is O(size of expr) (a handful of GetComponent path walks
// plus a constant number of Formula.Equals calls).
func MatchAny(expr formula.Formula) int {
	for i, m := range matchers {
		if m(expr) {
			return i + 1
		}
	}

	return 0
}

// DescribeBindings returns a short debug string naming how many distinct
// schema variables a matched axiom instance binds, via its VarSet
// cardinality. Used only for verbose logging of which instance matched;
// never consulted for correctness.
func DescribeBindings(expr formula.Formula) string {
	return fmt.Sprintf("%d variable(s)", expr.VarSet().Count())
}

// matchAx1 checks for "a -> b -> a".
func matchAx1(expr formula.Formula) bool {
	a1, ok1 := formula.GetComponent(expr, formula.ImplLeft)
	a2, ok2 := formula.GetComponent(expr, formula.ImplRight, formula.ImplRight)

	return ok1 && ok2 && a1.Equals(a2)
}

// matchAx2 checks for "(a -> b) -> (a -> b -> y) -> (a -> y)".
func matchAx2(expr formula.Formula) bool {
	a1, ok1 := formula.GetComponent(expr, formula.ImplLeft, formula.ImplLeft)
	b1, ok2 := formula.GetComponent(expr, formula.ImplLeft, formula.ImplRight)

	a2, ok3 := formula.GetComponent(expr, formula.ImplRight, formula.ImplLeft, formula.ImplLeft)
	b2, ok4 := formula.GetComponent(expr, formula.ImplRight, formula.ImplLeft, formula.ImplRight, formula.ImplLeft)
	y1, ok5 := formula.GetComponent(expr, formula.ImplRight, formula.ImplLeft, formula.ImplRight, formula.ImplRight)

	a3, ok6 := formula.GetComponent(expr, formula.ImplRight, formula.ImplRight, formula.ImplLeft)
	y2, ok7 := formula.GetComponent(expr, formula.ImplRight, formula.ImplRight, formula.ImplRight)

	return ok1 && ok2 && ok3 && ok4 && ok5 && ok6 && ok7 &&
		a1.Equals(a2) && a2.Equals(a3) &&
		b1.Equals(b2) &&
		y1.Equals(y2)
}

// matchAx3 checks for "a -> b -> a & b".
func matchAx3(expr formula.Formula) bool {
	a1, ok1 := formula.GetComponent(expr, formula.ImplLeft)
	b1, ok2 := formula.GetComponent(expr, formula.ImplRight, formula.ImplLeft)

	a2, ok3 := formula.GetComponent(expr, formula.ImplRight, formula.ImplRight, formula.ConjLeft)
	b2, ok4 := formula.GetComponent(expr, formula.ImplRight, formula.ImplRight, formula.ConjRight)

	return ok1 && ok2 && ok3 && ok4 && a1.Equals(a2) && b1.Equals(b2)
}

// matchAx4 checks for "a & b -> a".
func matchAx4(expr formula.Formula) bool {
	a1, ok1 := formula.GetComponent(expr, formula.ImplLeft, formula.ConjLeft)
	a2, ok2 := formula.GetComponent(expr, formula.ImplRight)

	return ok1 && ok2 && a1.Equals(a2)
}

// matchAx5 checks for "a & b -> b".
func matchAx5(expr formula.Formula) bool {
	b1, ok1 := formula.GetComponent(expr, formula.ImplLeft, formula.ConjRight)
	b2, ok2 := formula.GetComponent(expr, formula.ImplRight)

	return ok1 && ok2 && b1.Equals(b2)
}

// matchAx6 checks for "a -> a | b".
func matchAx6(expr formula.Formula) bool {
	a1, ok1 := formula.GetComponent(expr, formula.ImplLeft)
	a2, ok2 := formula.GetComponent(expr, formula.ImplRight, formula.DisjLeft)

	return ok1 && ok2 && a1.Equals(a2)
}

// matchAx7 checks for "b -> a | b".
func matchAx7(expr formula.Formula) bool {
	b1, ok1 := formula.GetComponent(expr, formula.ImplLeft)
	b2, ok2 := formula.GetComponent(expr, formula.ImplRight, formula.DisjRight)

	return ok1 && ok2 && b1.Equals(b2)
}

// matchAx8 checks for "(a -> y) -> (b -> y) -> (a | b -> y)".
func matchAx8(expr formula.Formula) bool {
	a1, ok1 := formula.GetComponent(expr, formula.ImplLeft, formula.ImplLeft)
	y1, ok2 := formula.GetComponent(expr, formula.ImplLeft, formula.ImplRight)

	b1, ok3 := formula.GetComponent(expr, formula.ImplRight, formula.ImplLeft, formula.ImplLeft)
	y2, ok4 := formula.GetComponent(expr, formula.ImplRight, formula.ImplLeft, formula.ImplRight)

	a2, ok5 := formula.GetComponent(expr, formula.ImplRight, formula.ImplRight, formula.ImplLeft, formula.DisjLeft)
	b2, ok6 := formula.GetComponent(expr, formula.ImplRight, formula.ImplRight, formula.ImplLeft, formula.DisjRight)
	y3, ok7 := formula.GetComponent(expr, formula.ImplRight, formula.ImplRight, formula.ImplRight)

	return ok1 && ok2 && ok3 && ok4 && ok5 && ok6 && ok7 &&
		a1.Equals(a2) &&
		b1.Equals(b2) &&
		y1.Equals(y2) && y2.Equals(y3)
}

// matchAx9 checks for "(a -> b) -> (a -> b -> _|_) -> (a -> _|_)".
func matchAx9(expr formula.Formula) bool {
	a1, ok1 := formula.GetComponent(expr, formula.ImplLeft, formula.ImplLeft)
	b1, ok2 := formula.GetComponent(expr, formula.ImplLeft, formula.ImplRight)

	a2, ok3 := formula.GetComponent(expr, formula.ImplRight, formula.ImplLeft, formula.ImplLeft)
	b2, ok4 := formula.GetComponent(expr, formula.ImplRight, formula.ImplLeft, formula.ImplRight, formula.ImplLeft)
	bot1, ok5 := formula.GetComponent(expr, formula.ImplRight, formula.ImplLeft, formula.ImplRight, formula.ImplRight)

	a3, ok6 := formula.GetComponent(expr, formula.ImplRight, formula.ImplRight, formula.ImplLeft)
	bot2, ok7 := formula.GetComponent(expr, formula.ImplRight, formula.ImplRight, formula.ImplRight)

	_, botOk1 := formula.IsBottom(bot1)
	_, botOk2 := formula.IsBottom(bot2)

	return ok1 && ok2 && ok3 && ok4 && ok5 && ok6 && ok7 && botOk1 && botOk2 &&
		a1.Equals(a2) && a2.Equals(a3) &&
		b1.Equals(b2) &&
		bot1.Equals(bot2)
}

// matchAx10 checks for "a -> (a -> _|_) -> b".
func matchAx10(expr formula.Formula) bool {
	a1, ok1 := formula.GetComponent(expr, formula.ImplLeft)
	a2, ok2 := formula.GetComponent(expr, formula.ImplRight, formula.ImplLeft, formula.ImplLeft)
	bot, ok3 := formula.GetComponent(expr, formula.ImplRight, formula.ImplLeft, formula.ImplRight)

	_, botOk := formula.IsBottom(bot)

	return ok1 && ok2 && ok3 && botOk && a1.Equals(a2)
}
