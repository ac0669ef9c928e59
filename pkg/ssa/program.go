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

import "strings"

// Program is an SSA rendering of a source program: an ordered instruction
// sequence, a mandatory return value, and the declared inputs.  Declared
// inputs have no producing instruction; their values arrive externally at
// witness time.  A program is immutable once built: optimisation passes
// consume one program and produce a fresh one.
type Program struct {
	Instructions []Instruction
	// ReturnValue is the value designated by the program's return statement.
	ReturnValue Value
	// PublicInputs are the declared public inputs, in declaration order.
	PublicInputs []Value
	// PrivateInputs are the declared private inputs, in declaration order.
	PrivateInputs []Value
}

func (p *Program) String() string {
	var builder strings.Builder
	//
	for _, insn := range p.Instructions {
		builder.WriteString(insn.String())
		builder.WriteString("\n")
	}
	//
	builder.WriteString("return ")
	builder.WriteString(p.ReturnValue.String())
	//
	return builder.String()
}
