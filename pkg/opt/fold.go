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
package opt

import (
	"fmt"

	"github.com/consensys/go-zirc/pkg/ssa"
)

// folder tracks values known to be constant during a folding pass.
type folder struct {
	constants map[ssa.Value]int64
}

// Fold performs constant folding over a given program: a single forward pass
// which rewrites any arithmetic instruction whose operands are both known
// constants into a direct constant definition.  Folding never deletes or
// reorders, so the output has exactly as many instructions as the input; on
// its own this pass enables gate reduction (via dead code elimination) rather
// than performing it.  Arithmetic is two's-complement with silent wraparound
// on overflow.
func Fold(program *ssa.Program) *ssa.Program {
	var (
		f      = folder{constants: make(map[ssa.Value]int64)}
		folded = make([]ssa.Instruction, len(program.Instructions))
	)
	//
	for i, insn := range program.Instructions {
		folded[i] = f.fold(insn)
	}
	//
	return &ssa.Program{
		Instructions:  folded,
		ReturnValue:   program.ReturnValue,
		PublicInputs:  program.PublicInputs,
		PrivateInputs: program.PrivateInputs,
	}
}

func (f *folder) fold(insn ssa.Instruction) ssa.Instruction {
	switch insn := insn.(type) {
	case *ssa.Const:
		f.constants[insn.Dest] = insn.Value
		return insn
	case *ssa.Add:
		if left, right, ok := f.operands(insn.Left, insn.Right); ok {
			return f.rewrite(insn.Dest, left+right)
		}
	case *ssa.Mul:
		if left, right, ok := f.operands(insn.Left, insn.Right); ok {
			return f.rewrite(insn.Dest, left*right)
		}
	case *ssa.Assert:
		// Asserts define no value and are left untouched.
	default:
		panic(fmt.Sprintf("unknown instruction %T", insn))
	}
	//
	return insn
}

// operands looks up both operands, succeeding only when both are known.
func (f *folder) operands(left ssa.Value, right ssa.Value) (int64, int64, bool) {
	lv, lok := f.constants[left]
	rv, rok := f.constants[right]
	//
	return lv, rv, lok && rok
}

func (f *folder) rewrite(dest ssa.Value, value int64) ssa.Instruction {
	f.constants[dest] = value
	//
	return &ssa.Const{Dest: dest, Value: value}
}
