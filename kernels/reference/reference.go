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

// Package reference implements every catalogue operation in plain Go by
// building the operation's dense matrix and applying it to the state.
//
// It registers under gates.KernelReference and is the fallback kernel
// when no faster implementation supports an operation. Every other kernel
// is tested for agreement with it.
package reference

import (
	"math"

	"github.com/ajroetker/go-lightning/dispatch"
	"github.com/ajroetker/go-lightning/gates"
)

// matrixBuilder returns the dense matrix of a gate for the given
// parameters.
type matrixBuilder func(params []float64) []complex128

func fixed(m []complex128) matrixBuilder {
	return func([]float64) []complex128 { return m }
}

var gateMatrices = []gates.Pair[gates.GateOperation, matrixBuilder]{
	{gates.Identity, fixed(identity2)},
	{gates.PauliX, fixed(pauliX)},
	{gates.PauliY, fixed(pauliY)},
	{gates.PauliZ, fixed(pauliZ)},
	{gates.Hadamard, fixed(hadamard)},
	{gates.S, fixed(sGate)},
	{gates.T, fixed(tGate)},
	{gates.PhaseShift, func(p []float64) []complex128 { return phaseShift(p[0]) }},
	{gates.RX, func(p []float64) []complex128 { return rx(p[0]) }},
	{gates.RY, func(p []float64) []complex128 { return ry(p[0]) }},
	{gates.RZ, func(p []float64) []complex128 { return rz(p[0]) }},
	{gates.Rot, func(p []float64) []complex128 { return rot(p[0], p[1], p[2]) }},
	{gates.CNOT, fixed(controlled(pauliX, 1, 1))},
	{gates.CY, fixed(controlled(pauliY, 1, 1))},
	{gates.CZ, fixed(controlled(pauliZ, 1, 1))},
	{gates.SWAP, fixed(swap)},
	{gates.ControlledPhaseShift, func(p []float64) []complex128 { return controlled(phaseShift(p[0]), 1, 1) }},
	{gates.CRX, func(p []float64) []complex128 { return controlled(rx(p[0]), 1, 1) }},
	{gates.CRY, func(p []float64) []complex128 { return controlled(ry(p[0]), 1, 1) }},
	{gates.CRZ, func(p []float64) []complex128 { return controlled(rz(p[0]), 1, 1) }},
	{gates.CRot, func(p []float64) []complex128 { return controlled(rot(p[0], p[1], p[2]), 1, 1) }},
	{gates.IsingXX, func(p []float64) []complex128 { return isingXX(p[0]) }},
	{gates.IsingXY, func(p []float64) []complex128 { return isingXY(p[0]) }},
	{gates.IsingYY, func(p []float64) []complex128 { return isingYY(p[0]) }},
	{gates.IsingZZ, func(p []float64) []complex128 { return isingZZ(p[0]) }},
	{gates.SingleExcitation, func(p []float64) []complex128 { return excitation(4, 1, 2, p[0], 1) }},
	{gates.SingleExcitationMinus, func(p []float64) []complex128 { return excitation(4, 1, 2, p[0], halfPhase(-p[0])) }},
	{gates.SingleExcitationPlus, func(p []float64) []complex128 { return excitation(4, 1, 2, p[0], halfPhase(p[0])) }},
	{gates.DoubleExcitation, func(p []float64) []complex128 { return excitation(16, 3, 12, p[0], 1) }},
	{gates.DoubleExcitationMinus, func(p []float64) []complex128 { return excitation(16, 3, 12, p[0], halfPhase(-p[0])) }},
	{gates.DoubleExcitationPlus, func(p []float64) []complex128 { return excitation(16, 3, 12, p[0], halfPhase(p[0])) }},
	{gates.CSWAP, fixed(controlled(swap, 1, 1))},
	{gates.Toffoli, fixed(controlled(pauliX, 2, 1))},
}

// generatorMatrix pairs a generator's Hermitian matrix with its scale
// factor: the gate is exp(i * scale * theta * matrix).
type generatorMatrix struct {
	matrix []complex128
	scale  float64
}

var (
	singleExcitationY = diagonal(4, 0, map[[2]int]complex128{{1, 2}: -1i, {2, 1}: 1i})
	doubleExcitationY = diagonal(16, 0, map[[2]int]complex128{{3, 12}: -1i, {12, 3}: 1i})
)

var generatorMatrices = []gates.Pair[gates.GeneratorOperation, generatorMatrix]{
	{gates.GeneratorPhaseShift, generatorMatrix{proj1, 1}},
	{gates.GeneratorRX, generatorMatrix{pauliX, -0.5}},
	{gates.GeneratorRY, generatorMatrix{pauliY, -0.5}},
	{gates.GeneratorRZ, generatorMatrix{pauliZ, -0.5}},
	{gates.GeneratorIsingXX, generatorMatrix{kron(pauliX, pauliX), -0.5}},
	{gates.GeneratorIsingXY, generatorMatrix{diagonal(4, 0, map[[2]int]complex128{{1, 2}: 1, {2, 1}: 1}), 0.5}},
	{gates.GeneratorIsingYY, generatorMatrix{kron(pauliY, pauliY), -0.5}},
	{gates.GeneratorIsingZZ, generatorMatrix{kron(pauliZ, pauliZ), -0.5}},
	{gates.GeneratorCRX, generatorMatrix{controlled(pauliX, 1, 0), -0.5}},
	{gates.GeneratorCRY, generatorMatrix{controlled(pauliY, 1, 0), -0.5}},
	{gates.GeneratorCRZ, generatorMatrix{controlled(pauliZ, 1, 0), -0.5}},
	{gates.GeneratorControlledPhaseShift, generatorMatrix{controlled(proj1, 1, 0), 1}},
	{gates.GeneratorSingleExcitation, generatorMatrix{singleExcitationY, -0.5}},
	{gates.GeneratorSingleExcitationMinus, generatorMatrix{withCorners(singleExcitationY, 4, 1, 2, 1), -0.5}},
	{gates.GeneratorSingleExcitationPlus, generatorMatrix{withCorners(singleExcitationY, 4, 1, 2, -1), -0.5}},
	{gates.GeneratorDoubleExcitation, generatorMatrix{doubleExcitationY, -0.5}},
	{gates.GeneratorDoubleExcitationMinus, generatorMatrix{withCorners(doubleExcitationY, 16, 3, 12, 1), -0.5}},
	{gates.GeneratorDoubleExcitationPlus, generatorMatrix{withCorners(doubleExcitationY, 16, 3, 12, -1), -0.5}},
}

// halfPhase returns e^{i theta/2}.
func halfPhase(theta float64) complex128 {
	return complex(math.Cos(theta/2), math.Sin(theta/2))
}

// withCorners copies m and sets the diagonal outside the (lo, hi) subspace
// to d.
func withCorners(m []complex128, dim, lo, hi int, d complex128) []complex128 {
	out := append([]complex128(nil), m...)
	for i := range dim {
		if i != lo && i != hi {
			out[i*dim+i] = d
		}
	}
	return out
}

// Module registers the reference kernels.
type Module[C dispatch.Complex, P dispatch.Precision] struct{}

// New returns the reference kernel module.
func New[C dispatch.Complex, P dispatch.Precision]() Module[C, P] {
	return Module[C, P]{}
}

// Kernel returns gates.KernelReference.
func (Module[C, P]) Kernel() gates.KernelType { return gates.KernelReference }

// Name returns "Reference".
func (Module[C, P]) Name() string { return "Reference" }

// Register adds every reference gate, generator and matrix kernel to d.
func (m Module[C, P]) Register(d *dispatch.Dispatcher[C, P]) {
	k := m.Kernel()
	for _, g := range gateMatrices {
		d.RegisterGate(g.Op, k, gateFromMatrix[C, P](g.Value))
	}
	d.RegisterGate(gates.MultiRZ, k, multiRZ[C, P])
	d.RegisterGate(gates.GlobalPhase, k, globalPhase[C, P])

	for _, g := range generatorMatrices {
		d.RegisterGenerator(g.Op, k, generatorFromMatrix[C, P](g.Value))
	}
	d.RegisterGenerator(gates.GeneratorMultiRZ, k, generatorMultiRZ[C, P])
	d.RegisterGenerator(gates.GeneratorGlobalPhase, k, generatorGlobalPhase[C, P])

	for _, op := range []gates.MatrixOperation{gates.SingleQubitOp, gates.TwoQubitOp, gates.MultiQubitOp} {
		d.RegisterMatrix(op, k, ApplyMatrix[C])
	}
}

func gateFromMatrix[C dispatch.Complex, P dispatch.Precision](build matrixBuilder) dispatch.GateFunc[C, P] {
	return func(data []C, numQubits int, wires []int, inverse bool, params []P) {
		ApplyMatrix(data, numQubits, toComplex[C](build(toFloat64(params))), wires, inverse)
	}
}

func generatorFromMatrix[C dispatch.Complex, P dispatch.Precision](g generatorMatrix) dispatch.GeneratorFunc[C, P] {
	m := toComplex[C](g.matrix)
	return func(data []C, numQubits int, wires []int, adjoint bool) P {
		// Generators are Hermitian, so adjoint leaves the matrix unchanged.
		ApplyMatrix(data, numQubits, m, wires, adjoint)
		return P(g.scale)
	}
}

func multiRZ[C dispatch.Complex, P dispatch.Precision](data []C, numQubits int, wires []int, inverse bool, params []P) {
	theta := float64(params[0])
	if inverse {
		theta = -theta
	}
	applyMultiRZ(data, numQubits, wires, theta)
}

func globalPhase[C dispatch.Complex, P dispatch.Precision](data []C, _ int, _ []int, inverse bool, params []P) {
	theta := float64(params[0])
	if inverse {
		theta = -theta
	}
	scale(data, complex(math.Cos(theta), -math.Sin(theta)))
}

// generatorMultiRZ applies Z on every wire: a sign flip on odd parity.
func generatorMultiRZ[C dispatch.Complex, P dispatch.Precision](data []C, numQubits int, wires []int, _ bool) P {
	mask := wireMask(numQubits, wires)
	for i := range data {
		if parity(i, mask) {
			data[i] = -data[i]
		}
	}
	return -0.5
}

// generatorGlobalPhase applies the identity.
func generatorGlobalPhase[C dispatch.Complex, P dispatch.Precision](_ []C, _ int, _ []int, _ bool) P {
	return -1
}
