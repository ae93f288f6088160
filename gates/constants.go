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

package gates

import "fmt"

// GateOperation identifies a named gate.
type GateOperation int

const (
	Identity GateOperation = iota
	PauliX
	PauliY
	PauliZ
	Hadamard
	S
	T
	PhaseShift
	RX
	RY
	RZ
	Rot
	CNOT
	CY
	CZ
	SWAP
	ControlledPhaseShift
	CRX
	CRY
	CRZ
	CRot
	IsingXX
	IsingXY
	IsingYY
	IsingZZ
	SingleExcitation
	SingleExcitationMinus
	SingleExcitationPlus
	DoubleExcitation
	DoubleExcitationMinus
	DoubleExcitationPlus
	MultiRZ
	GlobalPhase
	CSWAP
	Toffoli

	// GateMatrix is the sentinel for a gate supplied as a dense matrix.
	GateMatrix
)

// GeneratorOperation identifies the generator of a parametric gate.
type GeneratorOperation int

const (
	GeneratorPhaseShift GeneratorOperation = iota
	GeneratorRX
	GeneratorRY
	GeneratorRZ
	GeneratorIsingXX
	GeneratorIsingXY
	GeneratorIsingYY
	GeneratorIsingZZ
	GeneratorCRX
	GeneratorCRY
	GeneratorCRZ
	GeneratorControlledPhaseShift
	GeneratorSingleExcitation
	GeneratorSingleExcitationMinus
	GeneratorSingleExcitationPlus
	GeneratorDoubleExcitation
	GeneratorDoubleExcitationMinus
	GeneratorDoubleExcitationPlus
	GeneratorMultiRZ
	GeneratorGlobalPhase
)

// MatrixOperation identifies a dense matrix application. The variant is
// chosen by wire count only.
type MatrixOperation int

const (
	SingleQubitOp MatrixOperation = iota
	TwoQubitOp
	MultiQubitOp
)

// GeneratorPrefix is the prefix every generator catalogue name starts with.
const GeneratorPrefix = "Generator"

// Pair associates an enumerator with a value in a static table.
type Pair[K comparable, V any] struct {
	Op    K
	Value V
}

// GateNames maps every gate to its display name.
var GateNames = []Pair[GateOperation, string]{
	{Identity, "Identity"},
	{PauliX, "PauliX"},
	{PauliY, "PauliY"},
	{PauliZ, "PauliZ"},
	{Hadamard, "Hadamard"},
	{S, "S"},
	{T, "T"},
	{PhaseShift, "PhaseShift"},
	{RX, "RX"},
	{RY, "RY"},
	{RZ, "RZ"},
	{Rot, "Rot"},
	{CNOT, "CNOT"},
	{CY, "CY"},
	{CZ, "CZ"},
	{SWAP, "SWAP"},
	{ControlledPhaseShift, "ControlledPhaseShift"},
	{CRX, "CRX"},
	{CRY, "CRY"},
	{CRZ, "CRZ"},
	{CRot, "CRot"},
	{IsingXX, "IsingXX"},
	{IsingXY, "IsingXY"},
	{IsingYY, "IsingYY"},
	{IsingZZ, "IsingZZ"},
	{SingleExcitation, "SingleExcitation"},
	{SingleExcitationMinus, "SingleExcitationMinus"},
	{SingleExcitationPlus, "SingleExcitationPlus"},
	{DoubleExcitation, "DoubleExcitation"},
	{DoubleExcitationMinus, "DoubleExcitationMinus"},
	{DoubleExcitationPlus, "DoubleExcitationPlus"},
	{MultiRZ, "MultiRZ"},
	{GlobalPhase, "GlobalPhase"},
	{CSWAP, "CSWAP"},
	{Toffoli, "Toffoli"},
	{GateMatrix, "Matrix"},
}

// GeneratorNames maps every generator to its display name, including the
// "Generator" prefix.
var GeneratorNames = []Pair[GeneratorOperation, string]{
	{GeneratorPhaseShift, "GeneratorPhaseShift"},
	{GeneratorRX, "GeneratorRX"},
	{GeneratorRY, "GeneratorRY"},
	{GeneratorRZ, "GeneratorRZ"},
	{GeneratorIsingXX, "GeneratorIsingXX"},
	{GeneratorIsingXY, "GeneratorIsingXY"},
	{GeneratorIsingYY, "GeneratorIsingYY"},
	{GeneratorIsingZZ, "GeneratorIsingZZ"},
	{GeneratorCRX, "GeneratorCRX"},
	{GeneratorCRY, "GeneratorCRY"},
	{GeneratorCRZ, "GeneratorCRZ"},
	{GeneratorControlledPhaseShift, "GeneratorControlledPhaseShift"},
	{GeneratorSingleExcitation, "GeneratorSingleExcitation"},
	{GeneratorSingleExcitationMinus, "GeneratorSingleExcitationMinus"},
	{GeneratorSingleExcitationPlus, "GeneratorSingleExcitationPlus"},
	{GeneratorDoubleExcitation, "GeneratorDoubleExcitation"},
	{GeneratorDoubleExcitationMinus, "GeneratorDoubleExcitationMinus"},
	{GeneratorDoubleExcitationPlus, "GeneratorDoubleExcitationPlus"},
	{GeneratorMultiRZ, "GeneratorMultiRZ"},
	{GeneratorGlobalPhase, "GeneratorGlobalPhase"},
}

// MatrixNames maps every matrix operation to its display name.
var MatrixNames = []Pair[MatrixOperation, string]{
	{SingleQubitOp, "SingleQubitOp"},
	{TwoQubitOp, "TwoQubitOp"},
	{MultiQubitOp, "MultiQubitOp"},
}

// GateWires is the number of wires each gate acts on. Zero means the gate
// accepts any number of wires.
var GateWires = []Pair[GateOperation, int]{
	{Identity, 1},
	{PauliX, 1},
	{PauliY, 1},
	{PauliZ, 1},
	{Hadamard, 1},
	{S, 1},
	{T, 1},
	{PhaseShift, 1},
	{RX, 1},
	{RY, 1},
	{RZ, 1},
	{Rot, 1},
	{CNOT, 2},
	{CY, 2},
	{CZ, 2},
	{SWAP, 2},
	{ControlledPhaseShift, 2},
	{CRX, 2},
	{CRY, 2},
	{CRZ, 2},
	{CRot, 2},
	{IsingXX, 2},
	{IsingXY, 2},
	{IsingYY, 2},
	{IsingZZ, 2},
	{SingleExcitation, 2},
	{SingleExcitationMinus, 2},
	{SingleExcitationPlus, 2},
	{DoubleExcitation, 4},
	{DoubleExcitationMinus, 4},
	{DoubleExcitationPlus, 4},
	{MultiRZ, 0},
	{GlobalPhase, 0},
	{CSWAP, 3},
	{Toffoli, 3},
	{GateMatrix, 0},
}

// GateNumParams is the number of real parameters each gate takes.
var GateNumParams = []Pair[GateOperation, int]{
	{Identity, 0},
	{PauliX, 0},
	{PauliY, 0},
	{PauliZ, 0},
	{Hadamard, 0},
	{S, 0},
	{T, 0},
	{PhaseShift, 1},
	{RX, 1},
	{RY, 1},
	{RZ, 1},
	{Rot, 3},
	{CNOT, 0},
	{CY, 0},
	{CZ, 0},
	{SWAP, 0},
	{ControlledPhaseShift, 1},
	{CRX, 1},
	{CRY, 1},
	{CRZ, 1},
	{CRot, 3},
	{IsingXX, 1},
	{IsingXY, 1},
	{IsingYY, 1},
	{IsingZZ, 1},
	{SingleExcitation, 1},
	{SingleExcitationMinus, 1},
	{SingleExcitationPlus, 1},
	{DoubleExcitation, 1},
	{DoubleExcitationMinus, 1},
	{DoubleExcitationPlus, 1},
	{MultiRZ, 1},
	{GlobalPhase, 1},
	{CSWAP, 0},
	{Toffoli, 0},
	{GateMatrix, 0},
}

// GeneratorWires is the number of wires each generator acts on. Zero means
// any number of wires.
var GeneratorWires = []Pair[GeneratorOperation, int]{
	{GeneratorPhaseShift, 1},
	{GeneratorRX, 1},
	{GeneratorRY, 1},
	{GeneratorRZ, 1},
	{GeneratorIsingXX, 2},
	{GeneratorIsingXY, 2},
	{GeneratorIsingYY, 2},
	{GeneratorIsingZZ, 2},
	{GeneratorCRX, 2},
	{GeneratorCRY, 2},
	{GeneratorCRZ, 2},
	{GeneratorControlledPhaseShift, 2},
	{GeneratorSingleExcitation, 2},
	{GeneratorSingleExcitationMinus, 2},
	{GeneratorSingleExcitationPlus, 2},
	{GeneratorDoubleExcitation, 4},
	{GeneratorDoubleExcitationMinus, 4},
	{GeneratorDoubleExcitationPlus, 4},
	{GeneratorMultiRZ, 0},
	{GeneratorGlobalPhase, 0},
}

// String returns the catalogue name of the gate.
func (op GateOperation) String() string {
	if name, ok := find(GateNames, op); ok {
		return name
	}
	return fmt.Sprintf("GateOperation(%d)", int(op))
}

// String returns the catalogue name of the generator, including the
// "Generator" prefix.
func (op GeneratorOperation) String() string {
	if name, ok := find(GeneratorNames, op); ok {
		return name
	}
	return fmt.Sprintf("GeneratorOperation(%d)", int(op))
}

// String returns the catalogue name of the matrix operation.
func (op MatrixOperation) String() string {
	if name, ok := find(MatrixNames, op); ok {
		return name
	}
	return fmt.Sprintf("MatrixOperation(%d)", int(op))
}
