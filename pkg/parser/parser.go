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
package parser

import (
	"errors"
	"fmt"

	"github.com/natded/go-natded/pkg/formula"
)

// ErrMalformedJudgement is returned when a judgement line carries no
// turnstile token at all.
var ErrMalformedJudgement = errors.New("malformed judgement: missing turnstile")

// Parser consumes a fixed token slice via recursive descent over the
// grammar:
//
//	Expression ::= Disj ('->' Expression)?          // right-associative
//	Disj       ::= Conj ('|' Conj)*                 // left-associative
//	Conj       ::= Prim ('&' Prim)*                  // left-associative
//	Prim       ::= Variable | '(' Expression ')' | '!' Prim
type Parser struct {
	tokens []Token
	pos    int
}

// New wraps a pre-lexed token slice for parsing.
func New(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}

	return p.tokens[p.pos], true
}

func (p *Parser) advance() (Token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}

	return t, ok
}

// atEnd reports whether every token has been consumed.
func (p *Parser) atEnd() bool {
	_, ok := p.peek()
	return !ok
}

// ParseExpression parses a full Expression, consuming tokens right up to
// (but not past) whatever follows it.
func (p *Parser) ParseExpression() (formula.Formula, error) {
	clauses := []formula.Formula{}

	first, err := p.parseDisj()
	if err != nil {
		return formula.Formula{}, err
	}
	clauses = append(clauses, first)

	for {
		t, ok := p.peek()
		if !ok || t.Kind != Arrow {
			break
		}
		p.advance()

		next, err := p.parseDisj()
		if err != nil {
			return formula.Formula{}, err
		}
		clauses = append(clauses, next)
	}

	// Right-associative: fold from the last clause backward.
	result := clauses[len(clauses)-1]
	for i := len(clauses) - 2; i >= 0; i-- {
		result = formula.NewImpl(clauses[i], result)
	}

	return result, nil
}

func (p *Parser) parseDisj() (formula.Formula, error) {
	result, err := p.parseConj()
	if err != nil {
		return formula.Formula{}, err
	}

	for {
		t, ok := p.peek()
		if !ok || t.Kind != Bar {
			break
		}
		p.advance()

		rhs, err := p.parseConj()
		if err != nil {
			return formula.Formula{}, err
		}
		result = formula.NewDisj(result, rhs)
	}

	return result, nil
}

func (p *Parser) parseConj() (formula.Formula, error) {
	result, err := p.parsePrim()
	if err != nil {
		return formula.Formula{}, err
	}

	for {
		t, ok := p.peek()
		if !ok || t.Kind != Ampersand {
			break
		}
		p.advance()

		rhs, err := p.parsePrim()
		if err != nil {
			return formula.Formula{}, err
		}
		result = formula.NewConj(result, rhs)
	}

	return result, nil
}

func (p *Parser) parsePrim() (formula.Formula, error) {
	t, ok := p.advance()
	if !ok {
		return formula.Formula{}, errors.New("parser: token expected at the beginning of expression primitive")
	}

	switch t.Kind {
	case LParen:
		expr, err := p.ParseExpression()
		if err != nil {
			return formula.Formula{}, err
		}

		closing, ok := p.advance()
		if !ok || closing.Kind != RParen {
			return formula.Formula{}, fmt.Errorf("parser: closing parenthesis expected, got %q", tokenText(closing, ok))
		}

		return expr, nil
	case Variable:
		return formula.NewVar(t.Text), nil
	case Exclamation:
		// "!phi" elaborates to "phi -> _|_"; negation is never a distinct
		// Formula variant.
		inner, err := p.parsePrim()
		if err != nil {
			return formula.Formula{}, err
		}

		return formula.NewImpl(inner, formula.NewBottom()), nil
	default:
		return formula.Formula{}, fmt.Errorf("parser: unexpected token %q at the start of primary expression", t.Text)
	}
}

func tokenText(t Token, ok bool) string {
	if !ok {
		return "no tokens"
	}

	return t.Text
}

// ParseFormula tokenizes and parses line as a single Expression, requiring
// every token to be consumed.
func ParseFormula(line string) (formula.Formula, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return formula.Formula{}, err
	}

	p := New(tokens)

	expr, err := p.ParseExpression()
	if err != nil {
		return formula.Formula{}, err
	}
	if !p.atEnd() {
		return formula.Formula{}, errors.New("parser: unexpected trailing tokens")
	}

	return expr, nil
}

// Judgement is the parsed first line of an input: a (possibly empty) list
// of hypotheses and a goal, "Γ |- φ".
type Judgement struct {
	Hyps []formula.Formula
	Goal formula.Formula
}

// ParseJudgement parses "(Expression (',' Expression)*)? '|-' Expression".
// It returns ErrMalformedJudgement when line contains no turnstile at all.
func ParseJudgement(line string) (Judgement, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return Judgement{}, err
	}

	turnstileAt := -1
	for i, t := range tokens {
		if t.Kind == Turnstile {
			turnstileAt = i
			break
		}
	}
	if turnstileAt < 0 {
		return Judgement{}, ErrMalformedJudgement
	}

	hyps, err := parseHypotheses(tokens[:turnstileAt])
	if err != nil {
		return Judgement{}, err
	}

	goalParser := New(tokens[turnstileAt+1:])
	goal, err := goalParser.ParseExpression()
	if err != nil {
		return Judgement{}, err
	}
	if !goalParser.atEnd() {
		return Judgement{}, errors.New("parser: unexpected trailing tokens after goal")
	}

	return Judgement{Hyps: hyps, Goal: goal}, nil
}

func parseHypotheses(tokens []Token) ([]formula.Formula, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	var hyps []formula.Formula
	for _, group := range splitOnComma(tokens) {
		p := New(group)

		h, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if !p.atEnd() {
			return nil, errors.New("parser: unexpected trailing tokens in hypothesis")
		}

		hyps = append(hyps, h)
	}

	return hyps, nil
}

func splitOnComma(tokens []Token) [][]Token {
	var groups [][]Token

	start := 0
	for i, t := range tokens {
		if t.Kind == Comma {
			groups = append(groups, tokens[start:i])
			start = i + 1
		}
	}
	groups = append(groups, tokens[start:])

	return groups
}
