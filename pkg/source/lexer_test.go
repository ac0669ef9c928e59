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
	"testing"

	"github.com/stretchr/testify/require"
)

func kindsOf(tokens []Token) []TokenKind {
	kinds := make([]TokenKind, len(tokens))
	//
	for i, token := range tokens {
		kinds[i] = token.Kind
	}
	//
	return kinds
}

func TestLexStatement(t *testing.T) {
	tokens, err := Lex("let y = x + 2")
	require.NoError(t, err)
	require.Equal(t,
		[]TokenKind{LET, IDENTIFIER, EQUALS, IDENTIFIER, PLUS, NUMBER, EOF},
		kindsOf(tokens))
	require.Equal(t, "y", tokens[1].Text)
	require.Equal(t, int64(2), tokens[5].Value)
}

func TestLexKeywords(t *testing.T) {
	tokens, err := Lex("public private const assert let return")
	require.NoError(t, err)
	require.Equal(t,
		[]TokenKind{PUBLIC, PRIVATE, CONST, ASSERT, LET, RETURN, EOF},
		kindsOf(tokens))
}

func TestLexEquality(t *testing.T) {
	tokens, err := Lex("a == b = c")
	require.NoError(t, err)
	require.Equal(t,
		[]TokenKind{IDENTIFIER, EQUALS_EQUALS, IDENTIFIER, EQUALS, IDENTIFIER, EOF},
		kindsOf(tokens))
}

func TestLexCommentsAndWhitespace(t *testing.T) {
	tokens, err := Lex("// header\nreturn 7 // trailing\n")
	require.NoError(t, err)
	require.Equal(t, []TokenKind{RETURN, NUMBER, EOF}, kindsOf(tokens))
	// Comment on line 1, so the return sits on line 2.
	require.Equal(t, uint(2), tokens[0].Line)
}

func TestLexUnexpectedCharacter(t *testing.T) {
	_, err := Lex("let x = 1 - 2")
	require.Error(t, err)
	//
	var syntax *SyntaxError
	require.ErrorAs(t, err, &syntax)
}

func TestLexEmptyInput(t *testing.T) {
	tokens, err := Lex("")
	require.NoError(t, err)
	require.Equal(t, []TokenKind{EOF}, kindsOf(tokens))
}
