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
package ssa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/go-zirc/pkg/ast"
)

func TestConvertInputDeclarations(t *testing.T) {
	program, err := FromAST(&ast.Program{Statements: []ast.Stmt{
		&ast.PublicInput{Name: "x"},
		&ast.PrivateInput{Name: "w"},
		&ast.Return{Expr: &ast.Var{Name: "x"}},
	}})
	require.NoError(t, err)
	// Input declarations register values but emit no instructions.
	require.Empty(t, program.Instructions)
	require.Equal(t, []Value{{"x", 1}}, program.PublicInputs)
	require.Equal(t, []Value{{"w", 1}}, program.PrivateInputs)
	require.Equal(t, Value{"x", 1}, program.ReturnValue)
}

func TestConvertVersioning(t *testing.T) {
	// let a = 1 + 2; let a = a + 3; let a = a + 4; return a
	program, err := FromAST(&ast.Program{Statements: []ast.Stmt{
		&ast.Let{Name: "a", Expr: &ast.Add{Left: &ast.Literal{Value: 1}, Right: &ast.Literal{Value: 2}}},
		&ast.Let{Name: "a", Expr: &ast.Add{Left: &ast.Var{Name: "a"}, Right: &ast.Literal{Value: 3}}},
		&ast.Let{Name: "a", Expr: &ast.Add{Left: &ast.Var{Name: "a"}, Right: &ast.Literal{Value: 4}}},
		&ast.Return{Expr: &ast.Var{Name: "a"}},
	}})
	require.NoError(t, err)
	// Each rebinding allocates a distinct identity with a strictly increasing
	// version, and reads between rebindings resolve to the prior version.
	second := program.Instructions[4].(*Add)
	require.Equal(t, Value{"a", 2}, second.Dest)
	require.Equal(t, Value{"a", 1}, second.Left)
	//
	third := program.Instructions[6].(*Add)
	require.Equal(t, Value{"a", 3}, third.Dest)
	require.Equal(t, Value{"a", 2}, third.Left)
	//
	require.Equal(t, Value{"a", 3}, program.ReturnValue)
}

func TestConvertBindingDestination(t *testing.T) {
	// The final instruction of a binding carries the bound name directly;
	// only subexpression results get temporaries.
	program, err := FromAST(&ast.Program{Statements: []ast.Stmt{
		&ast.Let{Name: "y", Expr: &ast.Add{Left: &ast.Literal{Value: 1}, Right: &ast.Literal{Value: 2}}},
		&ast.Return{Expr: &ast.Var{Name: "y"}},
	}})
	require.NoError(t, err)
	require.Len(t, program.Instructions, 3)
	//
	require.Equal(t, &Const{Dest: Value{"t0", 0}, Value: 1}, program.Instructions[0])
	require.Equal(t, &Const{Dest: Value{"t1", 0}, Value: 2}, program.Instructions[1])
	require.Equal(t,
		&Add{Dest: Value{"y", 1}, Left: Value{"t0", 0}, Right: Value{"t1", 0}},
		program.Instructions[2])
}

func TestConvertConstDecl(t *testing.T) {
	program, err := FromAST(&ast.Program{Statements: []ast.Stmt{
		&ast.ConstDecl{Name: "k", Value: 42},
		&ast.Return{Expr: &ast.Var{Name: "k"}},
	}})
	require.NoError(t, err)
	require.Equal(t, []Instruction{&Const{Dest: Value{"k", 1}, Value: 42}}, program.Instructions)
	require.Equal(t, Value{"k", 1}, program.ReturnValue)
}

func TestConvertEvaluationOrder(t *testing.T) {
	// return (1 + 2) * (3 + 4): the left operand is fully lowered before the
	// right one begins.
	program, err := FromAST(&ast.Program{Statements: []ast.Stmt{
		&ast.Return{Expr: &ast.Mul{
			Left:  &ast.Add{Left: &ast.Literal{Value: 1}, Right: &ast.Literal{Value: 2}},
			Right: &ast.Add{Left: &ast.Literal{Value: 3}, Right: &ast.Literal{Value: 4}},
		}},
	}})
	require.NoError(t, err)
	require.Len(t, program.Instructions, 7)
	//
	require.IsType(t, &Const{}, program.Instructions[0])
	require.IsType(t, &Const{}, program.Instructions[1])
	require.IsType(t, &Add{}, program.Instructions[2])
	require.IsType(t, &Const{}, program.Instructions[3])
	require.IsType(t, &Const{}, program.Instructions[4])
	require.IsType(t, &Add{}, program.Instructions[5])
	require.IsType(t, &Mul{}, program.Instructions[6])
	//
	require.Equal(t, Value{"t6", 0}, program.ReturnValue)
}

func TestConvertAssert(t *testing.T) {
	program, err := FromAST(&ast.Program{Statements: []ast.Stmt{
		&ast.PublicInput{Name: "x"},
		&ast.Assert{Left: &ast.Var{Name: "x"}, Right: &ast.Literal{Value: 5}},
		&ast.Return{Expr: &ast.Var{Name: "x"}},
	}})
	require.NoError(t, err)
	require.Len(t, program.Instructions, 2)
	require.Equal(t,
		&Assert{Left: Value{"x", 1}, Right: Value{"t0", 0}},
		program.Instructions[1])
}

func TestConvertAlias(t *testing.T) {
	// A bare variable binding aliases the referenced definition rather than
	// defining anything new.
	program, err := FromAST(&ast.Program{Statements: []ast.Stmt{
		&ast.PublicInput{Name: "x"},
		&ast.Let{Name: "y", Expr: &ast.Var{Name: "x"}},
		&ast.Return{Expr: &ast.Var{Name: "y"}},
	}})
	require.NoError(t, err)
	require.Empty(t, program.Instructions)
	require.Equal(t, Value{"x", 1}, program.ReturnValue)
}

func TestConvertUnassignedRead(t *testing.T) {
	// Reading a never-assigned variable resolves to version 0, which no
	// declaration path produces.
	program, err := FromAST(&ast.Program{Statements: []ast.Stmt{
		&ast.Return{Expr: &ast.Var{Name: "ghost"}},
	}})
	require.NoError(t, err)
	require.Equal(t, Value{"ghost", 0}, program.ReturnValue)
}

func TestConvertMissingReturn(t *testing.T) {
	_, err := FromAST(&ast.Program{Statements: []ast.Stmt{
		&ast.PublicInput{Name: "x"},
	}})
	require.ErrorIs(t, err, ErrMissingReturn)
}
