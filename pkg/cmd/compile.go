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

	"github.com/consensys/go-zirc/pkg/circuit"
	"github.com/consensys/go-zirc/pkg/compiler"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] source_file",
	Short: "compile a Zirc source file into a circuit and constraint system.",
	Long: `Compile a given Zirc source file into an arithmetic circuit and a rank-1
	 constraint system, reporting the impact of any optimisation passes applied.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			config     = compiler.OptLevel(GetUint(cmd, "opt"))
			output     = GetString(cmd, "output")
			r1csOutput = GetString(cmd, "r1cs")
			input      = ReadSourceFile(args[0])
		)
		// Compile without any passes first, so the impact of optimisation can
		// be reported against a baseline.
		baseline, err := compiler.Compile(input, compiler.Config{})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		result, err := compiler.Compile(input, config)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		reportCompilation(baseline.Circuit, result.Circuit)
		//
		WriteArtifactFile(output, result.Circuit)
		log.Infof("wrote circuit to %s", output)
		//
		if r1csOutput != "" {
			WriteArtifactFile(r1csOutput, result.R1cs)
			log.Infof("wrote constraint system to %s", r1csOutput)
		}
	},
}

func reportCompilation(before *circuit.Circuit, after *circuit.Circuit) {
	fmt.Printf("gates before optimisation: %d\n", len(before.Gates))
	fmt.Printf("gates after optimisation:  %d\n", len(after.Gates))
	fmt.Printf("wires: %d, output: %s\n", after.NumWires(), after.OutputWire)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringP("output", "o", "a.json", "specify circuit output file.")
	compileCmd.Flags().String("r1cs", "", "also write the constraint system to a given file.")
}
