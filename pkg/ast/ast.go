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
package ast

import "fmt"

// Program is an ordered list of statements, exactly as produced by the parser.
// Statement order is the only control-flow structure the language has.
type Program struct {
	Statements []Stmt
}

// Stmt represents all of the different statement forms within the Abstract
// Syntax Tree (AST).  This is a closed sum: adding a new statement form
// requires revisiting every type switch over Stmt.
type Stmt interface {
	isStmt()
}

// PublicInput declares a named public input of the circuit.
type PublicInput struct {
	Name string
}

// PrivateInput declares a named private input of the circuit.
type PrivateInput struct {
	Name string
}

// ConstDecl binds a name to a literal constant.
type ConstDecl struct {
	Name  string
	Value int64
}

// Let binds a name to the value of an expression.
type Let struct {
	Name string
	Expr Expr
}

// Assert requires two expressions to evaluate to the same value.
type Assert struct {
	Left  Expr
	Right Expr
}

// Return designates the program's output expression.
type Return struct {
	Expr Expr
}

func (*PublicInput) isStmt()  {}
func (*PrivateInput) isStmt() {}
func (*ConstDecl) isStmt()    {}
func (*Let) isStmt()          {}
func (*Assert) isStmt()       {}
func (*Return) isStmt()       {}

// Expr represents all of the different expression forms within the AST.
// Like Stmt, this is a closed sum.
type Expr interface {
	isExpr()
	fmt.Stringer
}

// Var is a reference to a previously bound name.
type Var struct {
	Name string
}

// Literal is a decimal integer literal.
type Literal struct {
	Value int64
}

// Add is the sum of two subexpressions.
type Add struct {
	Left  Expr
	Right Expr
}

// Mul is the product of two subexpressions.
type Mul struct {
	Left  Expr
	Right Expr
}

func (*Var) isExpr()     {}
func (*Literal) isExpr() {}
func (*Add) isExpr()     {}
func (*Mul) isExpr()     {}

func (e *Var) String() string {
	return e.Name
}

func (e *Literal) String() string {
	return fmt.Sprintf("%d", e.Value)
}

func (e *Add) String() string {
	return fmt.Sprintf("(%s + %s)", e.Left, e.Right)
}

func (e *Mul) String() string {
	return fmt.Sprintf("(%s * %s)", e.Left, e.Right)
}
