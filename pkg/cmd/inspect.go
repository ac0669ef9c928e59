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

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/go-zirc/pkg/circuit"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] circuit_file",
	Short: "print a human-readable listing of a compiled circuit.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inspectCircuit(ReadCircuitFile(args[0]))
	},
}

func inspectCircuit(c *circuit.Circuit) {
	fmt.Printf("public inputs:\n")
	//
	for _, input := range c.PublicInputs {
		fmt.Printf("  %s -> %s\n", input.Name, input.Wire)
	}
	//
	fmt.Printf("private inputs:\n")
	//
	for _, input := range c.PrivateInputs {
		fmt.Printf("  %s -> %s\n", input.Name, input.Wire)
	}
	//
	fmt.Printf("gates:\n")
	printGates(c.Gates)
	fmt.Printf("output: %s (%d gates, %d wires)\n", c.OutputWire, len(c.Gates), c.NumWires())
}

// printGates lays the gate listing out in as many columns as fit the
// terminal, falling back to a single column when stdout is not a terminal.
func printGates(gates []circuit.Gate) {
	var (
		width = terminalWidth()
		//
		widest  int
		entries = make([]string, len(gates))
	)
	//
	for i, gate := range gates {
		entries[i] = fmt.Sprintf("%d: %s", i, gate)
		widest = max(widest, len(entries[i]))
	}
	// Determine how many columns fit
	columns := max(1, width/(widest+2))
	//
	for i, entry := range entries {
		fmt.Printf("  %-*s", widest, entry)
		//
		if (i+1)%columns == 0 || i+1 == len(entries) {
			fmt.Println()
		}
	}
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil {
			return width
		}
	}
	// Sensible default
	return 80
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
