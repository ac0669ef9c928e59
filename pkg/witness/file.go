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

// File is the serialised form of a computed witness.
type File struct {
	// Witness is the dense value array, indexed by wire id.
	Witness []int64 `json:"witness"`
	// PublicInputs and PrivateInputs record the bound input values by name.
	PublicInputs  map[string]int64 `json:"public_inputs"`
	PrivateInputs map[string]int64 `json:"private_inputs"`
	// Result is the value of the designated output wire.
	Result int64 `json:"result"`
	//
	NumWires int `json:"num_wires"`
}

// Assignment packages the calculator's wire assignment for serialisation.
// Every wire gets a value: wires never written default to 0 rather than
// being treated as missing.
func (w *Calculator) Assignment(result int64) *File {
	var (
		vector        = w.Vector()
		publicInputs  = make(map[string]int64, len(w.circuit.PublicInputs))
		privateInputs = make(map[string]int64, len(w.circuit.PrivateInputs))
	)
	//
	for _, input := range w.circuit.PublicInputs {
		publicInputs[input.Name] = w.values[input.Wire]
	}
	//
	for _, input := range w.circuit.PrivateInputs {
		privateInputs[input.Name] = w.values[input.Wire]
	}
	//
	return &File{
		Witness:       vector,
		PublicInputs:  publicInputs,
		PrivateInputs: privateInputs,
		Result:        result,
		NumWires:      len(vector),
	}
}
