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

import "fmt"

// Instruction represents all of the different instruction forms within an SSA
// program.  This is a closed sum: every consumer switches exhaustively over
// the variants, so adding a new form forces every downstream component to be
// revisited.
type Instruction interface {
	isInstruction()
	fmt.Stringer
}

// Const defines its destination to be a literal constant.
type Const struct {
	Dest  Value
	Value int64
}

// Add defines its destination to be the sum of two operands.
type Add struct {
	Dest  Value
	Left  Value
	Right Value
}

// Mul defines its destination to be the product of two operands.
type Mul struct {
	Dest  Value
	Left  Value
	Right Value
}

// Assert constrains two operands to be equal.  Unlike the other forms it
// defines no value of its own.
type Assert struct {
	Left  Value
	Right Value
}

func (*Const) isInstruction()  {}
func (*Add) isInstruction()    {}
func (*Mul) isInstruction()    {}
func (*Assert) isInstruction() {}

func (i *Const) String() string {
	return fmt.Sprintf("%s = %d", i.Dest, i.Value)
}

func (i *Add) String() string {
	return fmt.Sprintf("%s = %s + %s", i.Dest, i.Left, i.Right)
}

func (i *Mul) String() string {
	return fmt.Sprintf("%s = %s * %s", i.Dest, i.Left, i.Right)
}

func (i *Assert) String() string {
	return fmt.Sprintf("assert %s == %s", i.Left, i.Right)
}

// Destination returns the value defined by a given instruction, if any.
// Assert instructions define no value.
func Destination(insn Instruction) (Value, bool) {
	switch insn := insn.(type) {
	case *Const:
		return insn.Dest, true
	case *Add:
		return insn.Dest, true
	case *Mul:
		return insn.Dest, true
	case *Assert:
		return Value{}, false
	default:
		panic(fmt.Sprintf("unknown instruction %T", insn))
	}
}

// Operands returns the values read by a given instruction.
func Operands(insn Instruction) []Value {
	switch insn := insn.(type) {
	case *Const:
		return nil
	case *Add:
		return []Value{insn.Left, insn.Right}
	case *Mul:
		return []Value{insn.Left, insn.Right}
	case *Assert:
		return []Value{insn.Left, insn.Right}
	default:
		panic(fmt.Sprintf("unknown instruction %T", insn))
	}
}
