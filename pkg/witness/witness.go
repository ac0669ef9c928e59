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
package witness

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/consensys/go-zirc/pkg/circuit"
)

// Inputs supplies named values for the declared inputs of a circuit.  A nil
// map means no inputs of that kind were provided at all, which is distinct
// from an empty (but present) map.
type Inputs struct {
	Public  map[string]int64 `json:"public"`
	Private map[string]int64 `json:"private"`
}

// Calculator executes a circuit's gates against concrete input values to
// populate every wire.  The wire assignment is retained after calculation so
// it can be checked and serialised.
type Calculator struct {
	circuit *circuit.Circuit
	// values holds one slot per wire; only slots marked in assigned have
	// actually been written.
	values   []int64
	assigned *bitset.BitSet
}

// NewCalculator constructs a calculator for a given circuit.
func NewCalculator(c *circuit.Circuit) *Calculator {
	n := c.NumWires()
	//
	return &Calculator{
		circuit:  c,
		values:   make([]int64, n),
		assigned: bitset.New(n),
	}
}

// Calculate binds the declared input wires from the supplied values, executes
// every gate in list order, and returns the output wire's value.  Assert
// gates are evaluated as their linear difference but not zero-checked here;
// see VerifyAsserts.
func (w *Calculator) Calculate(inputs Inputs) (int64, error) {
	if err := w.setInputs(inputs); err != nil {
		return 0, err
	}
	//
	for _, gate := range w.circuit.Gates {
		if err := w.executeGate(gate); err != nil {
			return 0, err
		}
	}
	//
	return w.wireValue(w.circuit.OutputWire)
}

// VerifyAsserts checks that every assert gate's difference wire holds zero.
// This is deliberately separate from Calculate: the calculator's only job is
// to populate wires, and callers decide whether (and when) assertions are
// enforced.
func (w *Calculator) VerifyAsserts() error {
	for i, gate := range w.circuit.Gates {
		if gate, ok := gate.(*circuit.AssertGate); ok {
			difference, err := w.wireValue(gate.Output)
			//
			if err != nil {
				return err
			} else if difference != 0 {
				return &AssertionFailedError{Gate: i, Difference: difference}
			}
		}
	}
	//
	return nil
}

// Vector returns the dense wire-indexed witness array.  Wires never written
// (dead ends surviving only as declared structure) default to 0 rather than
// being reported missing.
func (w *Calculator) Vector() []int64 {
	vector := make([]int64, len(w.values))
	copy(vector, w.values)
	//
	return vector
}

// setInputs binds declared input wires from the supplied named values,
// applying the error taxonomy: a missing kind altogether versus a missing
// individual name.
func (w *Calculator) setInputs(inputs Inputs) error {
	if inputs.Public == nil && len(w.circuit.PublicInputs) != 0 {
		return ErrNoPublicInputs
	}
	//
	for _, input := range w.circuit.PublicInputs {
		value, ok := inputs.Public[input.Name]
		if !ok {
			return &MissingPublicInputError{input.Name}
		}
		//
		w.setWire(input.Wire, value)
	}
	//
	if inputs.Private == nil && len(w.circuit.PrivateInputs) != 0 {
		return ErrNoPrivateInputs
	}
	//
	for _, input := range w.circuit.PrivateInputs {
		value, ok := inputs.Private[input.Name]
		if !ok {
			return &MissingPrivateInputError{input.Name}
		}
		//
		w.setWire(input.Wire, value)
	}
	//
	return nil
}

func (w *Calculator) executeGate(gate circuit.Gate) error {
	switch gate := gate.(type) {
	case *circuit.ConstGate:
		w.setWire(gate.Output, gate.Value)
	case *circuit.AddGate:
		return w.executeBinary(gate.Output, gate.Left, gate.Right, func(l, r int64) int64 { return l + r })
	case *circuit.MulGate:
		return w.executeBinary(gate.Output, gate.Left, gate.Right, func(l, r int64) int64 { return l * r })
	case *circuit.AssertGate:
		return w.executeBinary(gate.Output, gate.Left, gate.Right, func(l, r int64) int64 { return l - r })
	default:
		panic(fmt.Sprintf("unknown gate %T", gate))
	}
	//
	return nil
}

func (w *Calculator) executeBinary(output, left, right circuit.Wire, op func(int64, int64) int64) error {
	lv, err := w.wireValue(left)
	if err != nil {
		return err
	}
	//
	rv, err := w.wireValue(right)
	if err != nil {
		return err
	}
	//
	w.setWire(output, op(lv, rv))
	//
	return nil
}

func (w *Calculator) wireValue(wire circuit.Wire) (int64, error) {
	if !w.assigned.Test(uint(wire)) {
		return 0, &MissingWireValueError{wire}
	}
	//
	return w.values[wire], nil
}

func (w *Calculator) setWire(wire circuit.Wire, value int64) {
	w.values[wire] = value
	w.assigned.Set(uint(wire))
}
