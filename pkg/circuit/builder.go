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
package circuit

import (
	"fmt"

	"github.com/consensys/go-zirc/pkg/ssa"
)

// Builder synthesises a circuit from an SSA program in a single linear pass.
// Wire ids are allocated in strict first-use order: input wires first (public
// then private, in declaration order), then as instructions are visited.  A
// single identity map guarantees each distinct SSA value maps to exactly one
// wire for the life of the builder.
type Builder struct {
	gates []Gate
	next  Wire
	wires map[ssa.Value]Wire
	//
	publicInputs  []Input
	privateInputs []Input
}

// NewBuilder constructs an empty circuit builder.
func NewBuilder() *Builder {
	return &Builder{wires: make(map[ssa.Value]Wire)}
}

// FromSSA synthesises a circuit from a given SSA program.
func FromSSA(program *ssa.Program) *Circuit {
	builder := NewBuilder()
	//
	for _, input := range program.PublicInputs {
		wire := builder.wireOf(input)
		builder.publicInputs = append(builder.publicInputs, Input{input.Name, wire})
	}
	//
	for _, input := range program.PrivateInputs {
		wire := builder.wireOf(input)
		builder.privateInputs = append(builder.privateInputs, Input{input.Name, wire})
	}
	//
	for _, insn := range program.Instructions {
		builder.addGate(insn)
	}
	// The output wire is resolved last: it may already exist (produced by a
	// gate or declared as an input) or be entirely fresh.
	output := builder.wireOf(program.ReturnValue)
	//
	return &Circuit{
		PublicInputs:  builder.publicInputs,
		PrivateInputs: builder.privateInputs,
		Gates:         builder.gates,
		OutputWire:    output,
	}
}

// wireOf resolves the wire for a given SSA value, allocating one on first
// use.
func (b *Builder) wireOf(value ssa.Value) Wire {
	if wire, ok := b.wires[value]; ok {
		return wire
	}
	//
	wire := b.newWire()
	b.wires[value] = wire
	//
	return wire
}

// newWire allocates the next wire id.
func (b *Builder) newWire() Wire {
	wire := b.next
	b.next++
	//
	return wire
}

func (b *Builder) addGate(insn ssa.Instruction) {
	switch insn := insn.(type) {
	case *ssa.Const:
		b.gates = append(b.gates, &ConstGate{
			Output: b.wireOf(insn.Dest),
			Value:  insn.Value,
		})
	case *ssa.Add:
		b.gates = append(b.gates, &AddGate{
			Output: b.wireOf(insn.Dest),
			Left:   b.wireOf(insn.Left),
			Right:  b.wireOf(insn.Right),
		})
	case *ssa.Mul:
		b.gates = append(b.gates, &MulGate{
			Output: b.wireOf(insn.Dest),
			Left:   b.wireOf(insn.Left),
			Right:  b.wireOf(insn.Right),
		})
	case *ssa.Assert:
		left := b.wireOf(insn.Left)
		right := b.wireOf(insn.Right)
		// The difference wire is always fresh and never entered into the
		// identity map, since no SSA value names it.
		b.gates = append(b.gates, &AssertGate{
			Output: b.newWire(),
			Left:   left,
			Right:  right,
		})
	default:
		panic(fmt.Sprintf("unknown instruction %T", insn))
	}
}
