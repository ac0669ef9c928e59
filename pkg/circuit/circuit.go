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

import "fmt"

// Wire identifies a slot in the circuit holding one value of a witness.
// Wires are dense, zero based, and allocated in first-use order; the numeric
// value carries no further meaning.
type Wire uint

func (w Wire) String() string {
	return fmt.Sprintf("w%d", w)
}

// Gate represents all of the different elementary operations within a
// circuit.  This is a closed sum: every consumer switches exhaustively over
// the variants.
type Gate interface {
	isGate()
	fmt.Stringer
}

// ConstGate pins its output wire to a literal value.
type ConstGate struct {
	Output Wire
	Value  int64
}

// AddGate sets its output wire to the sum of two operand wires.
type AddGate struct {
	Output Wire
	Left   Wire
	Right  Wire
}

// MulGate sets its output wire to the product of two operand wires.
type MulGate struct {
	Output Wire
	Left   Wire
	Right  Wire
}

// AssertGate sets its output wire to the difference of two operand wires.
// The output is a fresh wire which nothing else reads: it exists so the
// equality constraint has a nameable slot, expected to hold zero.  Whether
// zero actually holds is checked separately (witness.Calculator.VerifyAsserts),
// never during gate execution itself.
type AssertGate struct {
	Output Wire
	Left   Wire
	Right  Wire
}

func (*ConstGate) isGate()  {}
func (*AddGate) isGate()    {}
func (*MulGate) isGate()    {}
func (*AssertGate) isGate() {}

func (g *ConstGate) String() string {
	return fmt.Sprintf("%s = %d", g.Output, g.Value)
}

func (g *AddGate) String() string {
	return fmt.Sprintf("%s = %s + %s", g.Output, g.Left, g.Right)
}

func (g *MulGate) String() string {
	return fmt.Sprintf("%s = %s * %s", g.Output, g.Left, g.Right)
}

func (g *AssertGate) String() string {
	return fmt.Sprintf("%s = %s - %s", g.Output, g.Left, g.Right)
}

// Input associates a declared input name with its wire.
type Input struct {
	Name string
	Wire Wire
}

// Circuit is an ordered arithmetic circuit: declared inputs, a gate list and
// one designated output wire.  By construction, every wire read by a gate is
// either an input wire or produced by an earlier gate in the list; this is
// not re-validated downstream.
type Circuit struct {
	PublicInputs  []Input
	PrivateInputs []Input
	Gates         []Gate
	OutputWire    Wire
}

// NumWires returns the number of wires in the circuit, that is one more than
// the highest wire id referenced anywhere (gates, inputs or output).
func (c *Circuit) NumWires() uint {
	max := c.OutputWire
	//
	for _, gate := range c.Gates {
		for _, w := range gateWires(gate) {
			if w > max {
				max = w
			}
		}
	}
	//
	for _, input := range c.PublicInputs {
		if input.Wire > max {
			max = input.Wire
		}
	}
	//
	for _, input := range c.PrivateInputs {
		if input.Wire > max {
			max = input.Wire
		}
	}
	//
	return uint(max) + 1
}

func gateWires(gate Gate) []Wire {
	switch gate := gate.(type) {
	case *ConstGate:
		return []Wire{gate.Output}
	case *AddGate:
		return []Wire{gate.Output, gate.Left, gate.Right}
	case *MulGate:
		return []Wire{gate.Output, gate.Left, gate.Right}
	case *AssertGate:
		return []Wire{gate.Output, gate.Left, gate.Right}
	default:
		panic(fmt.Sprintf("unknown gate %T", gate))
	}
}
