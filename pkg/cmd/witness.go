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
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-zirc/pkg/r1cs"
	"github.com/consensys/go-zirc/pkg/witness"
)

var witnessCmd = &cobra.Command{
	Use:   "witness [flags] circuit_file inputs_file",
	Short: "evaluate a compiled circuit against concrete inputs.",
	Long: `Evaluate a compiled circuit against the concrete input values given in an
	 inputs file, producing the full witness (an assignment of values to every
	 wire).  Unless disabled, assertions and constraint satisfaction are also
	 checked.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			output  = GetString(cmd, "output")
			unsafe  = GetFlag(cmd, "no-check")
			c       = ReadCircuitFile(args[0])
			inputs  = ReadInputsFile(args[1])
			builder = witness.NewCalculator(c)
		)
		//
		result, err := builder.Calculate(inputs)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		if !unsafe {
			if err := builder.VerifyAsserts(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			if err := r1cs.FromCircuit(c).Satisfied(builder.Vector()); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			log.Debug("all assertions and constraints satisfied")
		}
		//
		fmt.Printf("result: %d\n", result)
		//
		if output != "" {
			WriteArtifactFile(output, builder.Assignment(result))
			log.Infof("wrote witness to %s", output)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(witnessCmd)
	witnessCmd.Flags().StringP("output", "o", "", "write the witness to a given file.")
	witnessCmd.Flags().Bool("no-check", false, "skip assertion and constraint checking.")
}
