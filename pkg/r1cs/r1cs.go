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

// Package r1cs lowers circuits into rank-1 constraint systems.  Each gate
// becomes one bilinear constraint (a·x) * (b·x) = (c·x) over a dense
// coefficient vector.  Slot 0 of every vector is the reserved constant-one
// term and wire w occupies slot w+1, so the assignment vector x is the
// witness array prefixed with a literal 1.
package r1cs

import (
	"fmt"

	"github.com/consensys/go-zirc/pkg/circuit"
)

// Constraint is a single rank-1 constraint: (a·x) * (b·x) = (c·x) must hold
// exactly for the true assignment x.
type Constraint struct {
	A []int64 `json:"a"`
	B []int64 `json:"b"`
	C []int64 `json:"c"`
}

// Input associates a declared input name with its wire id.  Wire ids index
// the witness array; the corresponding constraint slot is the id plus one.
type Input struct {
	Name string `json:"name"`
	Wire uint   `json:"wire"`
}

// System is a full rank-1 constraint system, serialisable independently of
// the circuit which produced it.
type System struct {
	NumConstraints int          `json:"num_constraints"`
	NumVariables   int          `json:"num_variables"`
	Constraints    []Constraint `json:"constraints"`
	PublicInputs   []Input      `json:"public_inputs"`
	PrivateInputs  []Input      `json:"private_inputs"`
	OutputWire     uint         `json:"output_wire"`
}

// FromCircuit lowers a circuit into a rank-1 constraint system, one
// constraint per gate:
//
//	Const(out, v)     1 * v                 = out
//	Add(out, l, r)    (l + r) * 1           = out
//	Mul(out, l, r)    l * r                 = out
//	Assert(out, l, r) (l - r) * 1           = out
//
// Linear gates are expressed bilinearly by multiplying with the constant-one
// term; Mul is natively bilinear.  An Assert constraint only forces the
// difference into its output wire; requiring that wire to actually be zero
// is the caller's contract, via witness.Calculator.VerifyAsserts.
func FromCircuit(c *circuit.Circuit) *System {
	// One slot per wire, plus the constant-one slot.
	width := c.NumWires() + 1
	constraints := make([]Constraint, len(c.Gates))
	//
	for i, gate := range c.Gates {
		constraints[i] = lower(gate, width)
	}
	//
	return &System{
		NumConstraints: len(constraints),
		NumVariables:   int(width),
		Constraints:    constraints,
		PublicInputs:   inputIds(c.PublicInputs),
		PrivateInputs:  inputIds(c.PrivateInputs),
		OutputWire:     uint(c.OutputWire),
	}
}

func lower(gate circuit.Gate, width uint) Constraint {
	constraint := Constraint{
		A: make([]int64, width),
		B: make([]int64, width),
		C: make([]int64, width),
	}
	//
	switch gate := gate.(type) {
	case *circuit.ConstGate:
		constraint.A[0] = 1
		constraint.B[0] = gate.Value
		constraint.C[slot(gate.Output)] = 1
	case *circuit.AddGate:
		constraint.A[slot(gate.Left)] = 1
		constraint.A[slot(gate.Right)] += 1
		constraint.B[0] = 1
		constraint.C[slot(gate.Output)] = 1
	case *circuit.MulGate:
		constraint.A[slot(gate.Left)] = 1
		constraint.B[slot(gate.Right)] = 1
		constraint.C[slot(gate.Output)] = 1
	case *circuit.AssertGate:
		constraint.A[slot(gate.Left)] = 1
		constraint.A[slot(gate.Right)] -= 1
		constraint.B[0] = 1
		constraint.C[slot(gate.Output)] = 1
	default:
		panic(fmt.Sprintf("unknown gate %T", gate))
	}
	//
	return constraint
}

// slot maps a wire onto its coefficient slot.
func slot(wire circuit.Wire) uint {
	return uint(wire) + 1
}

func inputIds(inputs []circuit.Input) []Input {
	ids := make([]Input, len(inputs))
	//
	for i, input := range inputs {
		ids[i] = Input{input.Name, uint(input.Wire)}
	}
	//
	return ids
}

// Satisfied checks every constraint against a given witness (the dense
// wire-indexed value array).  The assignment vector is the witness prefixed
// with the constant-one term.
func (s *System) Satisfied(witness []int64) error {
	x := make([]int64, len(witness)+1)
	x[0] = 1
	copy(x[1:], witness)
	//
	for i, constraint := range s.Constraints {
		var (
			a = dot(constraint.A, x)
			b = dot(constraint.B, x)
			c = dot(constraint.C, x)
		)
		//
		if a*b != c {
			return fmt.Errorf("constraint %d unsatisfied: %d * %d != %d", i, a, b, c)
		}
	}
	//
	return nil
}

func dot(coefficients []int64, x []int64) int64 {
	var sum int64
	//
	for i, coefficient := range coefficients {
		if i < len(x) {
			sum += coefficient * x[i]
		}
	}
	//
	return sum
}
