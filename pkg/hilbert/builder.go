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
	"fmt"

	"github.com/natded/go-natded/pkg/formula"
	"github.com/natded/go-natded/pkg/nd"
)

// BuildAxiom constructs the fixed natural-deduction sub-derivation for phi,
// assuming phi is an instance of schema k, as it is when k == MatchAny(phi)
// (the caller is responsible for having checked this; a k outside 1..10
// panics, and phi of the wrong shape is a programming error). Each
// buildAxK shape below is the standard textbook derivation for that schema,
// ported directly from the ten fixed shapes of the reference implementation.
func BuildAxiom(k int, phi formula.Formula) *nd.Node {
	switch k {
	case 1:
		return buildAx1(phi)
	case 2:
		return buildAx2(phi)
	case 3:
		return buildAx3(phi)
	case 4:
		return buildAx4(phi)
	case 5:
		return buildAx5(phi)
	case 6:
		return buildAx6(phi)
	case 7:
		return buildAx7(phi)
	case 8:
		return buildAx8(phi)
	case 9:
		return buildAx9(phi)
	case 10:
		return buildAx10(phi)
	default:
		panic(fmt.Sprintf("hilbert: no such axiom schema %d", k))
	}
}

// buildAx1 builds "a -> b -> a".
func buildAx1(phi formula.Formula) *nd.Node {
	a := phi.Left()
	bArrowA := phi.Right()
	b := bArrowA.Left()

	return nd.New(nil, phi, nd.IImpl,
		nd.New(nd.Hyp(a), bArrowA, nd.IImpl,
			nd.NewAx(nd.Hyp(b), a)))
}

// buildAx2 builds "(a -> b) -> (a -> b -> y) -> (a -> y)".
func buildAx2(phi formula.Formula) *nd.Node {
	ab := phi.Left()
	abyAy := phi.Right()
	aby := abyAy.Left()
	ay := abyAy.Right()
	a := ab.Left()
	y := ay.Right()
	by := aby.Right()

	return nd.New(nil, phi, nd.IImpl,
		nd.New(nd.Hyp(ab), abyAy, nd.IImpl,
			nd.New(nd.Hyp(aby), ay, nd.IImpl,
				nd.New(nd.Hyp(a), y, nd.EImpl,
					nd.New(nil, by, nd.EImpl, nd.NewAx(nil, aby), nd.NewAx(nil, a)),
					nd.New(nil, ab.Right(), nd.EImpl, nd.NewAx(nil, ab), nd.NewAx(nil, a))))))
}

// buildAx3 builds "a -> b -> a & b".
func buildAx3(phi formula.Formula) *nd.Node {
	bArrowAAndB := phi.Right()
	aAndB := bArrowAAndB.Right()
	a := aAndB.Left()
	b := aAndB.Right()

	return nd.New(nil, phi, nd.IImpl,
		nd.New(nd.Hyp(a), bArrowAAndB, nd.IImpl,
			nd.New(nd.Hyp(b), aAndB, nd.ICon, nd.NewAx(nil, a), nd.NewAx(nil, b))))
}

// buildAx4 builds "a & b -> a".
func buildAx4(phi formula.Formula) *nd.Node {
	aAndB := phi.Left()
	a := aAndB.Left()

	return nd.New(nil, phi, nd.IImpl,
		nd.New(nd.Hyp(aAndB), a, nd.ElCon, nd.NewAx(nil, aAndB)))
}

// buildAx5 builds "a & b -> b".
func buildAx5(phi formula.Formula) *nd.Node {
	aAndB := phi.Left()
	b := aAndB.Right()

	return nd.New(nil, phi, nd.IImpl,
		nd.New(nd.Hyp(aAndB), b, nd.ErCon, nd.NewAx(nil, aAndB)))
}

// buildAx6 builds "a -> a | b".
func buildAx6(phi formula.Formula) *nd.Node {
	aOrB := phi.Right()
	a := aOrB.Left()

	return nd.New(nil, phi, nd.IImpl,
		nd.New(nd.Hyp(a), aOrB, nd.IlDis, nd.NewAx(nil, a)))
}

// buildAx7 builds "b -> a | b".
func buildAx7(phi formula.Formula) *nd.Node {
	aOrB := phi.Right()
	b := aOrB.Right()

	return nd.New(nil, phi, nd.IImpl,
		nd.New(nd.Hyp(b), aOrB, nd.IrDis, nd.NewAx(nil, b)))
}

// buildAx8 builds "(a -> y) -> (b -> y) -> (a | b -> y)".
func buildAx8(phi formula.Formula) *nd.Node {
	ay := phi.Left()
	byAby := phi.Right()
	by := byAby.Left()
	aby := byAby.Right()
	ab := aby.Left()
	a := ab.Left()
	b := ab.Right()
	y := aby.Right()

	return nd.New(nil, phi, nd.IImpl,
		nd.New(nd.Hyp(ay), byAby, nd.IImpl,
			nd.New(nd.Hyp(by), aby, nd.IImpl,
				nd.New(nd.Hyp(ab), y, nd.EDis,
					nd.New(nd.Hyp(a), y, nd.EImpl, nd.NewAx(nil, ay), nd.NewAx(nil, a)),
					nd.New(nd.Hyp(b), y, nd.EImpl, nd.NewAx(nil, by), nd.NewAx(nil, b)),
					nd.NewAx(nil, ab)))))
}

// buildAx9 builds "(a -> b) -> (a -> b -> _|_) -> (a -> _|_)".
func buildAx9(phi formula.Formula) *nd.Node {
	ab := phi.Left()
	abBotABot := phi.Right()
	abBot := abBotABot.Left()
	aBot := abBotABot.Right()
	a := ab.Left()
	bBot := abBot.Right()
	bot := aBot.Right()

	return nd.New(nil, phi, nd.IImpl,
		nd.New(nd.Hyp(ab), abBotABot, nd.IImpl,
			nd.New(nd.Hyp(abBot), aBot, nd.IImpl,
				nd.New(nd.Hyp(a), bot, nd.EImpl,
					nd.New(nil, bBot, nd.EImpl, nd.NewAx(nil, abBot), nd.NewAx(nil, a)),
					nd.New(nil, ab.Right(), nd.EImpl, nd.NewAx(nil, ab), nd.NewAx(nil, a))))))
}

// buildAx10 builds "a -> (a -> _|_) -> b". Because the goal contains a free
// "b" not otherwise derivable structurally, the standard derivation proves
// bottom first and then uses EBot to derive b from it, wrapped in its own
// one-off IImpl(_|_ -> b) scaffold. That inner implication is never looked
// up by identity afterwards, so its left-hand Formula need not correspond to
// anything else in the tree — only its shape (an IImpl whose child concludes
// b from a fresh hypothesis of bot) matters to the printer.
func buildAx10(phi formula.Formula) *nd.Node {
	a := phi.Left()
	aBotB := phi.Right()
	aBot := aBotB.Left()
	b := aBotB.Right()
	bot := aBot.Right()
	botArrowB := formula.NewImpl(bot, b)

	return nd.New(nil, phi, nd.IImpl,
		nd.New(nd.Hyp(a), aBotB, nd.IImpl,
			nd.New(nd.Hyp(aBot), b, nd.EImpl,
				nd.New(nil, botArrowB, nd.IImpl,
					nd.New(nd.Hyp(bot), b, nd.EBot, nd.NewAx(nil, bot))),
				nd.New(nil, bot, nd.EImpl, nd.NewAx(nil, aBot), nd.NewAx(nil, a)))))
}
