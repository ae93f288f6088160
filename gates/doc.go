// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gates is the static catalogue of operations a state-vector kernel
// can implement.
//
// # Operation families
//
// Three closed enumerations identify what a kernel routine does:
//   - GateOperation: a named gate (PauliX, RX, CNOT, ...), plus GateMatrix,
//     the sentinel for a gate supplied as a dense matrix.
//   - GeneratorOperation: the generator of a parametric gate, used by
//     gradient routines.
//   - MatrixOperation: dense matrix application, selected purely by the
//     number of wires (single, two, multi).
//
// KernelType identifies an interchangeable implementation of those
// operations (reference, LM, AVX2, ...). The catalogue never orders or
// compares kernels.
//
// # Tables
//
// Every enumeration has a name table (GateNames, GeneratorNames,
// MatrixNames, KernelNames) of Pair values in declaration order. Generator
// names carry the "Generator" prefix; GeneratorNamesWithoutPrefix derives
// the bare physical names used to address generators by string:
//
//	op, ok := gates.ReverseLookup(gates.GeneratorNamesWithoutPrefix(), "RX")
//	// op == gates.GeneratorRX, ok == true
//
// GateWires, GateNumParams and GeneratorWires describe the fixed shape of
// each operation; variable-width operations (MultiRZ, GlobalPhase, Matrix)
// report 0 wires.
package gates
