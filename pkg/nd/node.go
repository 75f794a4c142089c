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

// Package nd defines the natural-deduction derivation tree that a Hilbert
// proof is translated into: immutable nodes, shared by reference wherever a
// sub-derivation is reused (e.g. the same Ax leaf feeding two modus-ponens
// steps), forming a DAG rather than a strict tree.
package nd

import "github.com/natded/go-natded/pkg/formula"

// Rule names the introduction/elimination rule an interior node applies, or
// Ax for a leaf.
type Rule uint8

const (
	// Ax is a leaf: either a hypothesis or an axiom-schema instance.
	Ax Rule = iota
	// IImpl introduces an implication by discharging a fresh hypothesis.
	IImpl
	// EImpl eliminates an implication by modus ponens.
	EImpl
	// ICon introduces a conjunction from its two conjuncts.
	ICon
	// ElCon eliminates a conjunction, keeping its left conjunct.
	ElCon
	// ErCon eliminates a conjunction, keeping its right conjunct.
	ErCon
	// IlDis introduces a disjunction from its left disjunct.
	IlDis
	// IrDis introduces a disjunction from its right disjunct.
	IrDis
	// EDis eliminates a disjunction by case analysis.
	EDis
	// EBot eliminates falsum, deriving anything.
	EBot
)

// Annotation returns the printed annotation token for this rule, as
// specified by the CLI output grammar.
func (r Rule) Annotation() string {
	switch r {
	case Ax:
		return "Ax"
	case EImpl:
		return "E->"
	case IImpl:
		return "I->"
	case ICon:
		return "I&"
	case ElCon:
		return "El&"
	case ErCon:
		return "Er&"
	case IlDis:
		return "Il|"
	case IrDis:
		return "Ir|"
	case EDis:
		return "E|"
	case EBot:
		return "E_|_"
	default:
		return "?"
	}
}

// Arity returns the number of children this rule's node must have.
func (r Rule) Arity() int {
	switch r {
	case Ax:
		return 0
	case IImpl, ElCon, ErCon, IlDis, IrDis, EBot:
		return 1
	case EImpl, ICon:
		return 2
	case EDis:
		return 3
	default:
		return 0
	}
}

// Node is one node of a natural-deduction derivation. Nodes are immutable
// once constructed and may be shared: the same *Node can appear as a child
// of more than one parent.
type Node struct {
	Expr     formula.Formula
	AddHyp   *formula.Formula // non-nil iff this node introduces a fresh hypothesis
	Rule     Rule
	Children []*Node
}

// New builds a node for the given rule. addHyp is nil unless this node is
// the point at which a fresh hypothesis enters scope (to be discharged by
// an enclosing IImpl) — this can be any rule, not just IImpl: a hypothesis
// introduced while constructing an axiom's derivation is attached to
// whichever node happens to be under construction at that point, exactly as
// the fixed per-axiom shapes in package hilbert require. New panics if the
// number of children doesn't match the rule's fixed arity, since that is a
// programming bug in a builder, never a user-facing error.
func New(addHyp *formula.Formula, expr formula.Formula, rule Rule, children ...*Node) *Node {
	if len(children) != rule.Arity() {
		panic("nd: wrong number of children for rule " + rule.Annotation())
	}

	return &Node{Expr: expr, AddHyp: addHyp, Rule: rule, Children: children}
}

// NewAx constructs a leaf node. addHyp is non-nil when the leaf corresponds
// to a hypothesis newly introduced at this point (as opposed to one already
// present in Gamma).
func NewAx(addHyp *formula.Formula, expr formula.Formula) *Node {
	return New(addHyp, expr, Ax)
}

// Hyp is a small convenience returning a pointer to a copy of f, for call
// sites that want to pass a fresh hypothesis inline to New.
func Hyp(f formula.Formula) *formula.Formula {
	h := f
	return &h
}
