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
package formula

// Step destructures one level of a formula, returning the selected
// sub-formula and whether the current node had the shape the step expects.
// A chain of steps replaces a pointer-to-member walk down compile-time field
// offsets with a slice of closures GetComponent applies in order.
type Step func(Formula) (Formula, bool)

// ImplLeft selects the left side of an implication.
func ImplLeft(f Formula) (Formula, bool) {
	if f.kind != Impl {
		return Formula{}, false
	}

	return f.Left(), true
}

// ImplRight selects the right side of an implication.
func ImplRight(f Formula) (Formula, bool) {
	if f.kind != Impl {
		return Formula{}, false
	}

	return f.Right(), true
}

// ConjLeft selects the left side of a conjunction.
func ConjLeft(f Formula) (Formula, bool) {
	if f.kind != Conj {
		return Formula{}, false
	}

	return f.Left(), true
}

// ConjRight selects the right side of a conjunction.
func ConjRight(f Formula) (Formula, bool) {
	if f.kind != Conj {
		return Formula{}, false
	}

	return f.Right(), true
}

// DisjLeft selects the left side of a disjunction.
func DisjLeft(f Formula) (Formula, bool) {
	if f.kind != Disj {
		return Formula{}, false
	}

	return f.Left(), true
}

// DisjRight selects the right side of a disjunction.
func DisjRight(f Formula) (Formula, bool) {
	if f.kind != Disj {
		return Formula{}, false
	}

	return f.Right(), true
}

// GetComponent walks a chain of Steps from expr, returning the sub-formula
// reached if every step's shape requirement is met, or false if any step
// fails to match. Each step is O(1); overall cost is proportional to the
// length of the path, never to the size of expr.
func GetComponent(expr Formula, path ...Step) (Formula, bool) {
	cur := expr
	for _, step := range path {
		next, ok := step(cur)
		if !ok {
			return Formula{}, false
		}

		cur = next
	}

	return cur, true
}

// IsBottom reports whether expr is exactly the falsum constant.
func IsBottom(expr Formula) (Formula, bool) {
	if expr.kind != Bottom {
		return Formula{}, false
	}

	return expr, true
}
