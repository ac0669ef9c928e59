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
package ssa

import "fmt"

// Value identifies a single static assignment.  Identity is the (name,
// version) pair: two values are equal iff both fields match, and each
// distinct pair denotes exactly one definition site.  Names are either
// source variable names or synthetic temporaries ("t0", "t1", ...); the
// latter always carry version 0, whilst user variables are versioned from 1
// upwards as they are rebound.
type Value struct {
	Name    string
	Version uint
}

func (v Value) String() string {
	return fmt.Sprintf("%s.%d", v.Name, v.Version)
}
