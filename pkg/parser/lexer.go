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
	"fmt"
	"strings"
)

// whitespace lists every separator character; none of them carry meaning
// beyond separating adjacent tokens.
const whitespace = " \t\r\f\v"

var simpleTokens = []Token{
	{Turnstile, "|-"},
	{Arrow, "->"},
	{Ampersand, "&"},
	{Bar, "|"},
	{Exclamation, "!"},
	{LParen, "("},
	{RParen, ")"},
	{Comma, ","},
}

// Tokenize scans line into a flat token slice. Order of simpleTokens matters:
// "|-" must be tried before "|" or the turnstile would lex as Bar followed
// by a lone "-", which is not a token.
func Tokenize(line string) ([]Token, error) {
	var tokens []Token

	s := line
	for {
		s = strings.TrimLeft(s, whitespace)
		if s == "" {
			break
		}

		if tok, rest, ok := matchSimple(s); ok {
			tokens = append(tokens, tok)
			s = rest
			continue
		}

		if !isVarStart(s[0]) {
			return nil, fmt.Errorf("parser: unexpected character %q", s[0])
		}

		i := 1
		for i < len(s) && isVarCont(s[i]) {
			i++
		}
		tokens = append(tokens, Token{Variable, s[:i]})
		s = s[i:]
	}

	return tokens, nil
}

func matchSimple(s string) (Token, string, bool) {
	for _, t := range simpleTokens {
		if strings.HasPrefix(s, t.Text) {
			return t, s[len(t.Text):], true
		}
	}

	return Token{}, s, false
}

func isVarStart(c byte) bool { return c >= 'A' && c <= 'Z' }

func isVarCont(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '\''
}
