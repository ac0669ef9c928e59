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
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"

	"github.com/consensys/go-zirc/pkg/circuit"
	"github.com/consensys/go-zirc/pkg/witness"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// ReadSourceFile reads a Zirc source file in its entirety.
func ReadSourceFile(filename string) string {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return string(bytes)
}

// ReadCircuitFile parses a circuit file using a decoder based on the
// extension of the filename.
func ReadCircuitFile(filename string) *circuit.Circuit {
	var c circuit.Circuit
	//
	bytes, err := os.ReadFile(filename)
	//
	if err == nil {
		switch ext := path.Ext(filename); ext {
		case ".json":
			err = json.Unmarshal(bytes, &c)
		case ".cbor":
			err = cbor.Unmarshal(bytes, &c)
		default:
			err = fmt.Errorf("unknown circuit file format: %s", ext)
		}
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return &c
}

// ReadInputsFile parses an input-values file, which is always JSON: a
// document with two optional named-integer mappings, "public" and "private".
func ReadInputsFile(filename string) witness.Inputs {
	var inputs witness.Inputs
	//
	bytes, err := os.ReadFile(filename)
	//
	if err == nil {
		err = json.Unmarshal(bytes, &inputs)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return inputs
}

// WriteArtifactFile serialises a given artifact to a file, selecting the
// encoding from the filename extension (.json or .cbor).
func WriteArtifactFile(filename string, artifact any) {
	var (
		bytes []byte
		err   error
	)
	//
	switch ext := path.Ext(filename); ext {
	case ".json":
		bytes, err = json.MarshalIndent(artifact, "", "  ")
	case ".cbor":
		bytes, err = cbor.Marshal(artifact)
	default:
		err = fmt.Errorf("unknown artifact file format: %s", ext)
	}
	//
	if err == nil {
		err = os.WriteFile(filename, bytes, 0644)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}
