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
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Gate kind discriminators used in the serialised forms.
const (
	kindConst  = "const"
	kindAdd    = "add"
	kindMul    = "mul"
	kindAssert = "assert"
)

// circuitFile is the serialised form of a circuit, shared between the JSON
// and CBOR encodings.
type circuitFile struct {
	PublicInputs  []inputRecord `json:"public_inputs"`
	PrivateInputs []inputRecord `json:"private_inputs"`
	Gates         []gateRecord  `json:"gates"`
	OutputWire    Wire          `json:"output_wire"`
}

type inputRecord struct {
	Name string `json:"name"`
	Wire Wire   `json:"wire"`
}

// gateRecord is a flattened gate.  Kind discriminates the variant; fields
// irrelevant for a given kind are zero.
type gateRecord struct {
	Kind   string `json:"kind"`
	Output Wire   `json:"output"`
	Left   Wire   `json:"left"`
	Right  Wire   `json:"right"`
	Value  int64  `json:"value"`
}

// MarshalJSON implements json.Marshaler for circuits.
func (c *Circuit) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.toFile())
}

// UnmarshalJSON implements json.Unmarshaler for circuits.
func (c *Circuit) UnmarshalJSON(bytes []byte) error {
	var file circuitFile
	//
	if err := json.Unmarshal(bytes, &file); err != nil {
		return err
	}
	//
	return c.fromFile(&file)
}

// MarshalCBOR implements cbor.Marshaler for circuits.
func (c *Circuit) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(c.toFile())
}

// UnmarshalCBOR implements cbor.Unmarshaler for circuits.
func (c *Circuit) UnmarshalCBOR(bytes []byte) error {
	var file circuitFile
	//
	if err := cbor.Unmarshal(bytes, &file); err != nil {
		return err
	}
	//
	return c.fromFile(&file)
}

func (c *Circuit) toFile() *circuitFile {
	file := &circuitFile{
		PublicInputs:  make([]inputRecord, len(c.PublicInputs)),
		PrivateInputs: make([]inputRecord, len(c.PrivateInputs)),
		Gates:         make([]gateRecord, len(c.Gates)),
		OutputWire:    c.OutputWire,
	}
	//
	for i, input := range c.PublicInputs {
		file.PublicInputs[i] = inputRecord{input.Name, input.Wire}
	}
	//
	for i, input := range c.PrivateInputs {
		file.PrivateInputs[i] = inputRecord{input.Name, input.Wire}
	}
	//
	for i, gate := range c.Gates {
		switch gate := gate.(type) {
		case *ConstGate:
			file.Gates[i] = gateRecord{Kind: kindConst, Output: gate.Output, Value: gate.Value}
		case *AddGate:
			file.Gates[i] = gateRecord{Kind: kindAdd, Output: gate.Output, Left: gate.Left, Right: gate.Right}
		case *MulGate:
			file.Gates[i] = gateRecord{Kind: kindMul, Output: gate.Output, Left: gate.Left, Right: gate.Right}
		case *AssertGate:
			file.Gates[i] = gateRecord{Kind: kindAssert, Output: gate.Output, Left: gate.Left, Right: gate.Right}
		default:
			panic(fmt.Sprintf("unknown gate %T", gate))
		}
	}
	//
	return file
}

func (c *Circuit) fromFile(file *circuitFile) error {
	c.PublicInputs = make([]Input, len(file.PublicInputs))
	c.PrivateInputs = make([]Input, len(file.PrivateInputs))
	c.Gates = make([]Gate, len(file.Gates))
	c.OutputWire = file.OutputWire
	//
	for i, input := range file.PublicInputs {
		c.PublicInputs[i] = Input{input.Name, input.Wire}
	}
	//
	for i, input := range file.PrivateInputs {
		c.PrivateInputs[i] = Input{input.Name, input.Wire}
	}
	//
	for i, record := range file.Gates {
		switch record.Kind {
		case kindConst:
			c.Gates[i] = &ConstGate{Output: record.Output, Value: record.Value}
		case kindAdd:
			c.Gates[i] = &AddGate{Output: record.Output, Left: record.Left, Right: record.Right}
		case kindMul:
			c.Gates[i] = &MulGate{Output: record.Output, Left: record.Left, Right: record.Right}
		case kindAssert:
			c.Gates[i] = &AssertGate{Output: record.Output, Left: record.Left, Right: record.Right}
		default:
			return fmt.Errorf("unknown gate kind %q", record.Kind)
		}
	}
	//
	return nil
}
