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
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-zirc/pkg/ast"
)

// ErrMissingReturn indicates a program without a return statement.  Such a
// program has no defined output and cannot proceed to circuit synthesis.
var ErrMissingReturn = errors.New("program has no return statement")

// Builder converts an abstract syntax tree into SSA form.  A builder owns its
// counters and is scoped to a single conversion: construct, use, discard.
type Builder struct {
	instructions []Instruction
	// defs maps each source name to its current definition.
	defs map[string]Value
	// versions counts the versions allocated so far for each source name.
	versions map[string]uint
	// temps counts the synthetic temporaries allocated so far.
	temps uint
	//
	publicInputs  []Value
	privateInputs []Value
}

// NewBuilder constructs an empty SSA builder.
func NewBuilder() *Builder {
	return &Builder{
		defs:     make(map[string]Value),
		versions: make(map[string]uint),
	}
}

// FromAST converts a program into SSA form.  Every binding allocates a fresh
// value identity; prior versions of the same name remain distinct and
// potentially referenced.  Input declarations register a value but emit no
// instruction.
func FromAST(program *ast.Program) (*Program, error) {
	return NewBuilder().Convert(program)
}

// Convert a program into SSA form.
func (b *Builder) Convert(program *ast.Program) (*Program, error) {
	var (
		returnValue Value
		returned    bool
	)
	//
	for _, stmt := range program.Statements {
		switch stmt := stmt.(type) {
		case *ast.PublicInput:
			b.publicInputs = append(b.publicInputs, b.bind(stmt.Name))
		case *ast.PrivateInput:
			b.privateInputs = append(b.privateInputs, b.bind(stmt.Name))
		case *ast.ConstDecl:
			dest := b.bind(stmt.Name)
			b.emit(&Const{Dest: dest, Value: stmt.Value})
		case *ast.Let:
			b.lowerBinding(stmt.Name, stmt.Expr)
		case *ast.Assert:
			left := b.lowerExpr(stmt.Left)
			right := b.lowerExpr(stmt.Right)
			b.emit(&Assert{Left: left, Right: right})
		case *ast.Return:
			returnValue = b.lowerExpr(stmt.Expr)
			returned = true
		default:
			panic(fmt.Sprintf("unknown statement %T", stmt))
		}
	}
	//
	if !returned {
		return nil, ErrMissingReturn
	}
	//
	return &Program{
		Instructions:  b.instructions,
		ReturnValue:   returnValue,
		PublicInputs:  b.publicInputs,
		PrivateInputs: b.privateInputs,
	}, nil
}

// lowerBinding lowers the right-hand side of a let binding, threading the
// bound name through so the final instruction is emitted with its destination
// already in place.  Observe that operands are lowered before the new version
// is allocated, hence reads of the bound name within the expression resolve
// to its previous version.
func (b *Builder) lowerBinding(name string, expr ast.Expr) {
	switch expr := expr.(type) {
	case *ast.Literal:
		b.emit(&Const{Dest: b.bind(name), Value: expr.Value})
	case *ast.Add:
		left := b.lowerExpr(expr.Left)
		right := b.lowerExpr(expr.Right)
		b.emit(&Add{Dest: b.bind(name), Left: left, Right: right})
	case *ast.Mul:
		left := b.lowerExpr(expr.Left)
		right := b.lowerExpr(expr.Right)
		b.emit(&Mul{Dest: b.bind(name), Left: left, Right: right})
	case *ast.Var:
		// A bare variable binding defines nothing new: the name simply
		// becomes an alias for the referenced definition.
		b.defs[name] = b.readVar(expr.Name)
	default:
		panic(fmt.Sprintf("unknown expression %T", expr))
	}
}

// lowerExpr lowers an expression into zero or more instructions, returning
// the value holding its result.  Operands are lowered left to right: the left
// subtree is fully lowered and appended before the right subtree begins.
func (b *Builder) lowerExpr(expr ast.Expr) Value {
	switch expr := expr.(type) {
	case *ast.Literal:
		temp := b.newTemp()
		b.emit(&Const{Dest: temp, Value: expr.Value})
		//
		return temp
	case *ast.Var:
		// Reading never defines, hence no instruction is emitted.
		return b.readVar(expr.Name)
	case *ast.Add:
		left := b.lowerExpr(expr.Left)
		right := b.lowerExpr(expr.Right)
		temp := b.newTemp()
		b.emit(&Add{Dest: temp, Left: left, Right: right})
		//
		return temp
	case *ast.Mul:
		left := b.lowerExpr(expr.Left)
		right := b.lowerExpr(expr.Right)
		temp := b.newTemp()
		b.emit(&Mul{Dest: temp, Left: left, Right: right})
		//
		return temp
	default:
		panic(fmt.Sprintf("unknown expression %T", expr))
	}
}

func (b *Builder) emit(insn Instruction) {
	b.instructions = append(b.instructions, insn)
}

// bind allocates the next version of a given name and makes it the name's
// current definition.
func (b *Builder) bind(name string) Value {
	version := b.versions[name] + 1
	b.versions[name] = version
	//
	value := Value{Name: name, Version: version}
	b.defs[name] = value
	//
	return value
}

// readVar resolves a name to its current definition.  A name read before any
// assignment resolves to version 0, which no declaration ever produces; the
// resulting wire can therefore never be populated.  This matches the
// historical behaviour, so it is reported rather than rejected.
func (b *Builder) readVar(name string) Value {
	if value, ok := b.defs[name]; ok {
		return value
	}
	//
	log.Warnf("variable %q read before assignment", name)
	//
	return Value{Name: name, Version: 0}
}

// newTemp allocates a fresh synthetic temporary.  Temporaries are always
// version 0 whilst user bindings are versioned from 1, so a temporary can
// never alias a source binding even when their names coincide.
func (b *Builder) newTemp() Value {
	name := fmt.Sprintf("t%d", b.temps)
	b.temps++
	//
	return Value{Name: name, Version: 0}
}
