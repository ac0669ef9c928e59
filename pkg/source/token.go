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

import "fmt"

// TokenKind identifies the lexical class of a token.
type TokenKind uint

// Token kinds for the Zirc grammar.
const (
	// End of input
	EOF TokenKind = iota
	// Keywords
	LET
	RETURN
	PUBLIC
	PRIVATE
	CONST
	ASSERT
	// Literals and identifiers
	IDENTIFIER
	NUMBER
	// Punctuation
	EQUALS
	EQUALS_EQUALS
	PLUS
	STAR
	LPAREN
	RPAREN
)

// Token associates a piece of information with a given range of characters in
// the string being scanned.
type Token struct {
	Kind TokenKind
	// Text is the exact lexeme as it appeared in the source.
	Text string
	// Value is the parsed value of a NUMBER token, and zero otherwise.
	Value int64
	// Line and Column give the 1-based position of the first character.
	Line   uint
	Column uint
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case IDENTIFIER, NUMBER:
		return fmt.Sprintf("%q", t.Text)
	default:
		return fmt.Sprintf("'%s'", t.Text)
	}
}

// SyntaxError reports a lexical or parsing failure at a given position.
type SyntaxError struct {
	Message string
	Line    uint
	Column  uint
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func syntaxErrorf(line uint, column uint, format string, args ...any) *SyntaxError {
	return &SyntaxError{fmt.Sprintf(format, args...), line, column}
}
