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

	"github.com/consensys/go-zirc/pkg/r1cs"
	"github.com/consensys/go-zirc/pkg/witness"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] r1cs_file witness_file",
	Short: "check a witness against a constraint system.",
	Long: `Check that a previously computed witness satisfies every constraint of a
	 given rank-1 constraint system.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			system  = readR1csFile(args[0])
			assignd = readWitnessFile(args[1])
		)
		//
		if err := system.Satisfied(assignd.Witness); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Printf("all %d constraints satisfied\n", system.NumConstraints)
	},
}

// readR1csFile parses a constraint system file using a decoder based on the
// extension of the filename.
func readR1csFile(filename string) *r1cs.System {
	var system r1cs.System
	//
	decodeFile(filename, &system)
	//
	return &system
}

// readWitnessFile parses a witness file using a decoder based on the
// extension of the filename.
func readWitnessFile(filename string) *witness.File {
	var file witness.File
	//
	decodeFile(filename, &file)
	//
	return &file
}

func decodeFile(filename string, target any) {
	bytes, err := os.ReadFile(filename)
	//
	if err == nil {
		switch ext := path.Ext(filename); ext {
		case ".json":
			err = json.Unmarshal(bytes, target)
		case ".cbor":
			err = cbor.Unmarshal(bytes, target)
		default:
			err = fmt.Errorf("unknown file format: %s", ext)
		}
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
