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

// Package printer renders a Formula as fully-parenthesized infix text and a
// natural-deduction derivation as a post-order dump, one line per node.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/natded/go-natded/pkg/formula"
	"github.com/natded/go-natded/pkg/nd"
)

// Format renders f with fully-parenthesized infix operators, using the
// tokens "_|_", "&", "|", "->". A bare variable or "_|_" is never wrapped in
// parentheses; every binary connective wraps both of its operands.
func Format(f formula.Formula) string {
	switch f.Kind() {
	case formula.Bottom:
		return "_|_"
	case formula.Var:
		return f.Name()
	case formula.Conj:
		return "(" + Format(f.Left()) + ")&(" + Format(f.Right()) + ")"
	case formula.Disj:
		return "(" + Format(f.Left()) + ")|(" + Format(f.Right()) + ")"
	case formula.Impl:
		return "(" + Format(f.Left()) + ")->(" + Format(f.Right()) + ")"
	default:
		panic("printer: unknown formula kind " + f.Kind().String())
	}
}

// PrintDerivation writes root's derivation to w, one line per node in
// post-order (children before parent), in the form:
//
//	[<depth>] <ctx>|-<conclusion> [<annotation>]
//
// gamma is the judgement's initial hypothesis set; each node's printed
// context is gamma plus the AddHyp of every node from the root down to (and
// including) it, in insertion order, skipping an AddHyp already present in
// that context — fixing the source printer's omission of the initial Γ when
// some addHyp has also been introduced.
func PrintDerivation(w io.Writer, root *nd.Node, gamma []formula.Formula) error {
	return printNode(w, root, 0, gamma)
}

func printNode(w io.Writer, n *nd.Node, depth int, ctx []formula.Formula) error {
	nodeCtx := ctx
	if n.AddHyp != nil && !shadowedByContext(*n.AddHyp, ctx) {
		nodeCtx = make([]formula.Formula, len(ctx), len(ctx)+1)
		copy(nodeCtx, ctx)
		nodeCtx = append(nodeCtx, *n.AddHyp)
	}

	for _, child := range n.Children {
		if err := printNode(w, child, depth+1, nodeCtx); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "[%d] %s|-%s [%s]\n", depth, formatCtx(nodeCtx), Format(n.Expr), n.Rule.Annotation())
	return err
}

// shadowedByContext reports whether hyp is already present in ctx, so a
// freshly-introduced hypothesis that happens to repeat an existing context
// entry isn't printed twice. VarSet is checked first: two formulae that
// mention disjoint variables can never be structurally equal, so most
// candidates are ruled out in O(1) without a full canonical-string compare.
func shadowedByContext(hyp formula.Formula, ctx []formula.Formula) bool {
	for _, existing := range ctx {
		if hyp.VarSet().Any() && hyp.VarSet().IntersectionCardinality(existing.VarSet()) == 0 {
			continue // disjoint variables: cannot be structurally equal
		}
		if existing.Equals(hyp) {
			return true
		}
	}

	return false
}

func formatCtx(ctx []formula.Formula) string {
	if len(ctx) == 0 {
		return ""
	}

	parts := make([]string, len(ctx))
	for i, f := range ctx {
		parts[i] = Format(f)
	}

	return strings.Join(parts, ",")
}
