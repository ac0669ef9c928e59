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

	"github.com/consensys/go-zirc/pkg/ast"
)

func TestParseDeclarations(t *testing.T) {
	program, err := Parse("public x\nprivate w\nconst k = 3\nreturn x")
	require.NoError(t, err)
	require.Len(t, program.Statements, 4)
	//
	require.Equal(t, &ast.PublicInput{Name: "x"}, program.Statements[0])
	require.Equal(t, &ast.PrivateInput{Name: "w"}, program.Statements[1])
	require.Equal(t, &ast.ConstDecl{Name: "k", Value: 3}, program.Statements[2])
	require.Equal(t, &ast.Return{Expr: &ast.Var{Name: "x"}}, program.Statements[3])
}

func TestParseFlatAssociativity(t *testing.T) {
	// "+" and "*" bind equally tightly and associate left, so this parses as
	// ((1 + 2) * 3) rather than (1 + (2 * 3)).
	program, err := Parse("return 1 + 2 * 3")
	require.NoError(t, err)
	//
	ret := program.Statements[0].(*ast.Return)
	require.Equal(t, "((1 + 2) * 3)", ret.Expr.String())
}

func TestParseParentheses(t *testing.T) {
	program, err := Parse("return 1 + (2 * 3)")
	require.NoError(t, err)
	//
	ret := program.Statements[0].(*ast.Return)
	require.Equal(t, "(1 + (2 * 3))", ret.Expr.String())
}

func TestParseAssert(t *testing.T) {
	program, err := Parse("public x\nassert x * x == 9\nreturn x")
	require.NoError(t, err)
	//
	assert := program.Statements[1].(*ast.Assert)
	require.Equal(t, "(x * x)", assert.Left.String())
	require.Equal(t, "9", assert.Right.String())
}

func TestParseLet(t *testing.T) {
	program, err := Parse("let y = x + 2\nreturn y")
	require.NoError(t, err)
	//
	let := program.Statements[0].(*ast.Let)
	require.Equal(t, "y", let.Name)
	require.Equal(t, "(x + 2)", let.Expr.String())
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"let = 1",          // missing identifier
		"let x 1",          // missing equals
		"const k = x",      // constant requires a literal
		"assert x = 1",     // "=" instead of "=="
		"return (1 + 2",    // unbalanced parenthesis
		"x + 1",            // expression is not a statement
		"let x = return 1", // statement in expression position
	}
	//
	for _, test := range tests {
		_, err := Parse(test)
		require.Error(t, err, "input %q", test)
	}
}
