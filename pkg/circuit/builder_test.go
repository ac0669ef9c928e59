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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/go-zirc/pkg/ssa"
)

func TestFromSsaInputOrdering(t *testing.T) {
	// Wires are allocated inputs first (public then private, in declaration
	// order), then instruction destinations.
	program := &ssa.Program{
		Instructions: []ssa.Instruction{
			&ssa.Add{Dest: ssa.Value{Name: "y", Version: 1}, Left: ssa.Value{Name: "x", Version: 1}, Right: ssa.Value{Name: "w", Version: 1}},
		},
		ReturnValue:   ssa.Value{Name: "y", Version: 1},
		PublicInputs:  []ssa.Value{{Name: "x", Version: 1}},
		PrivateInputs: []ssa.Value{{Name: "w", Version: 1}},
	}
	//
	c := FromSSA(program)
	require.Equal(t, []Input{{"x", 0}}, c.PublicInputs)
	require.Equal(t, []Input{{"w", 1}}, c.PrivateInputs)
	require.Equal(t, []Gate{&AddGate{Output: 2, Left: 0, Right: 1}}, c.Gates)
	require.Equal(t, Wire(2), c.OutputWire)
	require.Equal(t, uint(3), c.NumWires())
}

func TestFromSsaWireUniqueness(t *testing.T) {
	// A value referenced many times maps to exactly one wire, and the ids
	// form a contiguous range from 0.
	program := &ssa.Program{
		Instructions: []ssa.Instruction{
			&ssa.Const{Dest: ssa.Value{Name: "t0"}, Value: 2},
			&ssa.Mul{Dest: ssa.Value{Name: "a", Version: 1}, Left: ssa.Value{Name: "t0"}, Right: ssa.Value{Name: "t0"}},
			&ssa.Add{Dest: ssa.Value{Name: "b", Version: 1}, Left: ssa.Value{Name: "a", Version: 1}, Right: ssa.Value{Name: "t0"}},
		},
		ReturnValue: ssa.Value{Name: "b", Version: 1},
	}
	//
	c := FromSSA(program)
	//
	seen := make(map[Wire]bool)
	for _, gate := range c.Gates {
		for _, wire := range gateWires(gate) {
			seen[wire] = true
		}
	}
	// Exactly three distinct values, hence wires 0..2.
	require.Equal(t, map[Wire]bool{0: true, 1: true, 2: true}, seen)
	require.Equal(t, uint(3), c.NumWires())
}

func TestFromSsaOperandBeforeDefinition(t *testing.T) {
	// An operand referenced ahead of its defining instruction gets its wire
	// allocated early, under the same identity, with no duplicate.
	program := &ssa.Program{
		Instructions: []ssa.Instruction{
			&ssa.Add{Dest: ssa.Value{Name: "a", Version: 1}, Left: ssa.Value{Name: "z", Version: 1}, Right: ssa.Value{Name: "z", Version: 1}},
			&ssa.Const{Dest: ssa.Value{Name: "z", Version: 1}, Value: 3},
		},
		ReturnValue: ssa.Value{Name: "a", Version: 1},
	}
	//
	c := FromSSA(program)
	add := c.Gates[0].(*AddGate)
	constant := c.Gates[1].(*ConstGate)
	// z's wire was allocated by the Add's operand lookup, then reused by its
	// own definition.
	require.Equal(t, add.Left, add.Right)
	require.Equal(t, add.Left, constant.Output)
}

func TestFromSsaAssertFreshWire(t *testing.T) {
	program := &ssa.Program{
		Instructions: []ssa.Instruction{
			&ssa.Const{Dest: ssa.Value{Name: "t0"}, Value: 5},
			&ssa.Assert{Left: ssa.Value{Name: "x", Version: 1}, Right: ssa.Value{Name: "t0"}},
		},
		ReturnValue:  ssa.Value{Name: "x", Version: 1},
		PublicInputs: []ssa.Value{{Name: "x", Version: 1}},
	}
	//
	c := FromSSA(program)
	assert := c.Gates[1].(*AssertGate)
	// Wires: x=0, t0=1, difference=2.
	require.Equal(t, Wire(2), assert.Output)
	require.Equal(t, Wire(0), assert.Left)
	require.Equal(t, Wire(1), assert.Right)
	// The difference wire is no SSA value's wire; the output resolves to x.
	require.Equal(t, Wire(0), c.OutputWire)
}

func TestFromSsaFreshOutputWire(t *testing.T) {
	// A return value defined by nothing still gets a wire, allocated last.
	program := &ssa.Program{
		Instructions: []ssa.Instruction{
			&ssa.Const{Dest: ssa.Value{Name: "t0"}, Value: 1},
		},
		ReturnValue: ssa.Value{Name: "ghost", Version: 0},
	}
	//
	c := FromSSA(program)
	require.Equal(t, Wire(1), c.OutputWire)
	require.Equal(t, uint(2), c.NumWires())
}
