// Copyright Consensys Software Inc.
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
package source

import (
	"strconv"
	"unicode"
)

// keywords maps reserved identifiers to their token kinds.
var keywords = map[string]TokenKind{
	"let":     LET,
	"return":  RETURN,
	"public":  PUBLIC,
	"private": PRIVATE,
	"const":   CONST,
	"assert":  ASSERT,
}

// Lexer provides a top-level construct for tokenising a given input string.
type Lexer struct {
	input  []rune
	index  int
	line   uint
	column uint
}

// NewLexer constructs a new lexer over a given input string.
func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input), line: 1, column: 1}
}

// Lex tokenises the entire input in one go, producing an array of tokens
// terminated by an EOF token.  Comments (from "//" to end of line) and
// whitespace are discarded.
func Lex(input string) ([]Token, error) {
	return NewLexer(input).Collect()
}

// Collect parses all remaining tokens in one go, producing an array of tokens.
func (p *Lexer) Collect() ([]Token, error) {
	var tokens []Token
	// Keep scanning
	for {
		token, err := p.next()
		if err != nil {
			return nil, err
		}
		//
		tokens = append(tokens, token)
		//
		if token.Kind == EOF {
			return tokens, nil
		}
	}
}

// next scans the next token, skipping whitespace and comments.
func (p *Lexer) next() (Token, error) {
	p.skipTrivia()
	//
	if p.index >= len(p.input) {
		return Token{Kind: EOF, Line: p.line, Column: p.column}, nil
	}
	//
	var (
		line   = p.line
		column = p.column
		ch     = p.input[p.index]
	)
	//
	switch {
	case ch == '+':
		p.advance()
		return Token{PLUS, "+", 0, line, column}, nil
	case ch == '*':
		p.advance()
		return Token{STAR, "*", 0, line, column}, nil
	case ch == '(':
		p.advance()
		return Token{LPAREN, "(", 0, line, column}, nil
	case ch == ')':
		p.advance()
		return Token{RPAREN, ")", 0, line, column}, nil
	case ch == '=':
		p.advance()
		// Distinguish "=" from "=="
		if p.index < len(p.input) && p.input[p.index] == '=' {
			p.advance()
			return Token{EQUALS_EQUALS, "==", 0, line, column}, nil
		}
		//
		return Token{EQUALS, "=", 0, line, column}, nil
	case unicode.IsDigit(ch):
		return p.scanNumber(line, column)
	case isIdentStart(ch):
		return p.scanIdentifier(line, column), nil
	}
	//
	return Token{}, syntaxErrorf(line, column, "unexpected character %q", string(ch))
}

func (p *Lexer) scanNumber(line uint, column uint) (Token, error) {
	start := p.index
	//
	for p.index < len(p.input) && unicode.IsDigit(p.input[p.index]) {
		p.advance()
	}
	//
	text := string(p.input[start:p.index])
	//
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, syntaxErrorf(line, column, "number %s out of range", text)
	}
	//
	return Token{NUMBER, text, value, line, column}, nil
}

func (p *Lexer) scanIdentifier(line uint, column uint) Token {
	start := p.index
	//
	for p.index < len(p.input) && isIdentPart(p.input[p.index]) {
		p.advance()
	}
	//
	text := string(p.input[start:p.index])
	// Reserved words take precedence over identifiers.
	if kind, ok := keywords[text]; ok {
		return Token{kind, text, 0, line, column}
	}
	//
	return Token{IDENTIFIER, text, 0, line, column}
}

// skipTrivia discards whitespace and line comments.
func (p *Lexer) skipTrivia() {
	for p.index < len(p.input) {
		ch := p.input[p.index]
		//
		switch {
		case ch == '\n':
			p.index++
			p.line++
			p.column = 1
		case unicode.IsSpace(ch):
			p.advance()
		case ch == '/' && p.index+1 < len(p.input) && p.input[p.index+1] == '/':
			for p.index < len(p.input) && p.input[p.index] != '\n' {
				p.index++
			}
		default:
			return
		}
	}
}

func (p *Lexer) advance() {
	p.index++
	p.column++
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}
