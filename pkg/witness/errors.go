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
	"errors"
	"fmt"

	"github.com/consensys/go-zirc/pkg/circuit"
)

// ErrNoPublicInputs indicates the circuit declares public inputs but the
// caller supplied none at all (as opposed to an incomplete set).
var ErrNoPublicInputs = errors.New("circuit requires public inputs but none provided")

// ErrNoPrivateInputs indicates the circuit declares private inputs but the
// caller supplied none at all.
var ErrNoPrivateInputs = errors.New("circuit requires private inputs but none provided")

// MissingPublicInputError indicates a declared public input had no matching
// entry amongst the supplied values.
type MissingPublicInputError struct {
	Name string
}

func (e *MissingPublicInputError) Error() string {
	return fmt.Sprintf("missing public input: %s", e.Name)
}

// MissingPrivateInputError indicates a declared private input had no matching
// entry amongst the supplied values.
type MissingPrivateInputError struct {
	Name string
}

func (e *MissingPrivateInputError) Error() string {
	return fmt.Sprintf("missing private input: %s", e.Name)
}

// MissingWireValueError indicates a gate read a wire which was never written.
// This is unreachable for a correctly built circuit: its occurrence signals a
// bug in an upstream component rather than a user-data problem.
type MissingWireValueError struct {
	Wire circuit.Wire
}

func (e *MissingWireValueError) Error() string {
	return fmt.Sprintf("wire %s has no value", e.Wire)
}

// AssertionFailedError indicates an assert gate's difference wire was
// nonzero, that is the two asserted expressions disagreed on this witness.
type AssertionFailedError struct {
	Gate       int
	Difference int64
}

func (e *AssertionFailedError) Error() string {
	return fmt.Sprintf("assertion at gate %d failed (difference %d)", e.Gate, e.Difference)
}
