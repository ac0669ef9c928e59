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
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-zirc/pkg/ssa"
)

// Eliminate removes dead instructions from a given program via two
// independent reachability directions.  The forward direction tracks
// input-dependence; the backward direction tracks liveness from the return
// value and assertions.  The directions are deliberately separate: declared
// inputs must remain bindable as wires even when locally dead, which is a
// property of the inputs themselves rather than of anything reading them, so
// the inputs seed the used set directly whilst instructions survive only
// through liveness.  Asserts are constraints on the circuit and never dead.
//
// Both fixpoints terminate since each iteration either grows a set bounded by
// the number of distinct values in the program, or changes nothing.
func Eliminate(program *ssa.Program) *ssa.Program {
	// Phase 1: forward input-dependence.  Seed with every declared input.
	dependent := make(map[ssa.Value]bool)
	//
	for _, input := range program.PublicInputs {
		dependent[input] = true
	}
	//
	for _, input := range program.PrivateInputs {
		dependent[input] = true
	}
	// Propagate dependence to a fixpoint: any instruction reading a dependent
	// value defines a dependent value.
	for changed := true; changed; {
		changed = false
		//
		for _, insn := range program.Instructions {
			dest, ok := ssa.Destination(insn)
			if !ok || dependent[dest] {
				continue
			}
			//
			for _, operand := range ssa.Operands(insn) {
				if dependent[operand] {
					dependent[dest] = true
					changed = true
					//
					break
				}
			}
		}
	}
	// The declared inputs are always used: their wires must materialise so
	// the witness pass can bind externally supplied values.
	used := make(map[ssa.Value]bool)
	//
	for _, input := range program.PublicInputs {
		used[input] = true
	}
	//
	for _, input := range program.PrivateInputs {
		used[input] = true
	}
	// Phase 2: backward liveness.  Seed with the return value, plus assertion
	// operands.
	used[program.ReturnValue] = true
	//
	for _, insn := range program.Instructions {
		if insn, ok := insn.(*ssa.Assert); ok {
			used[insn.Left] = true
			used[insn.Right] = true
		}
	}
	// Propagate liveness to a fixpoint: every operand of a used definition is
	// itself used.
	for changed := true; changed; {
		changed = false
		//
		for _, insn := range program.Instructions {
			dest, ok := ssa.Destination(insn)
			if !ok || !used[dest] {
				continue
			}
			//
			for _, operand := range ssa.Operands(insn) {
				if !used[operand] {
					used[operand] = true
					changed = true
				}
			}
		}
	}
	// Filter: retain asserts and every instruction defining a used value,
	// preserving relative order.
	var (
		filtered      []ssa.Instruction
		droppedInputs int
	)
	//
	for _, insn := range program.Instructions {
		dest, ok := ssa.Destination(insn)
		//
		if !ok || used[dest] {
			filtered = append(filtered, insn)
		} else if dependent[dest] {
			// Computed from an input, but the result feeds nothing.
			droppedInputs++
		}
	}
	//
	if droppedInputs > 0 {
		log.Debugf("eliminated %d unread input-dependent instructions", droppedInputs)
	}
	//
	return &ssa.Program{
		Instructions:  filtered,
		ReturnValue:   program.ReturnValue,
		PublicInputs:  program.PublicInputs,
		PrivateInputs: program.PrivateInputs,
	}
}
