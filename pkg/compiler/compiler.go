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

// Package compiler drives the whole pipeline: source text is parsed into an
// AST, converted into SSA, optionally optimised, then synthesised into a
// circuit and lowered into a rank-1 constraint system.  Data flows strictly
// forward; each stage consumes an immutable input and produces a fresh
// output.
package compiler

import (
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-zirc/pkg/ast"
	"github.com/consensys/go-zirc/pkg/circuit"
	"github.com/consensys/go-zirc/pkg/opt"
	"github.com/consensys/go-zirc/pkg/r1cs"
	"github.com/consensys/go-zirc/pkg/source"
	"github.com/consensys/go-zirc/pkg/ssa"
)

// Config determines which optimisation passes are applied.
type Config struct {
	// Fold enables constant folding.
	Fold bool
	// Eliminate enables dead code elimination.
	Eliminate bool
}

// DefaultConfig applies every pass.
var DefaultConfig = Config{Fold: true, Eliminate: true}

// OptLevel maps a numeric optimisation level onto a configuration: level 0
// disables all passes, level 1 folds constants, level 2 and above also
// eliminates dead code.
func OptLevel(level uint) Config {
	return Config{Fold: level >= 1, Eliminate: level >= 2}
}

// Result holds every artifact of a compilation.  Ssa is the program as
// built, Optimised the program after the configured passes; the circuit and
// constraint system are synthesised from the latter.
type Result struct {
	Ssa       *ssa.Program
	Optimised *ssa.Program
	Circuit   *circuit.Circuit
	R1cs      *r1cs.System
}

// Compile a source string into a circuit and constraint system.
func Compile(input string, config Config) (*Result, error) {
	program, err := source.Parse(input)
	if err != nil {
		return nil, err
	}
	//
	return CompileProgram(program, config)
}

// CompileProgram compiles an already parsed program.
func CompileProgram(program *ast.Program, config Config) (*Result, error) {
	ssaProgram, err := ssa.FromAST(program)
	if err != nil {
		return nil, err
	}
	//
	log.Debugf("built SSA program (%d instructions)", len(ssaProgram.Instructions))
	//
	optimised := ssaProgram
	//
	if config.Fold {
		optimised = opt.Fold(optimised)
		log.Debug("applied constant folding")
	}
	//
	if config.Eliminate {
		before := len(optimised.Instructions)
		optimised = opt.Eliminate(optimised)
		log.Debugf("dead code elimination removed %d instructions", before-len(optimised.Instructions))
	}
	//
	cc := circuit.FromSSA(optimised)
	system := r1cs.FromCircuit(cc)
	//
	log.Debugf("synthesised circuit (%d gates, %d wires, %d constraints)",
		len(cc.Gates), cc.NumWires(), system.NumConstraints)
	//
	return &Result{
		Ssa:       ssaProgram,
		Optimised: optimised,
		Circuit:   cc,
		R1cs:      system,
	}, nil
}
