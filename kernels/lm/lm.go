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

// Package lm implements the "LM" kernels: loops that visit only the
// amplitude groups a gate touches, instead of sweeping every index.
//
// A k-wire gate on n qubits touches 2^(n-k) independent groups of 2^k
// amplitudes. The group bases are enumerated by inserting a zero bit at
// each target position into a counter, so no index is tested and skipped.
// From Module's parallel threshold on, the groups are split across a
// workerpool.Pool.
//
// Only the common operations are implemented. Every other operation is
// left unregistered and reports dispatch.ErrKernelNotRegistered.
package lm

import (
	"math"
	"slices"

	"github.com/ajroetker/go-lightning/dispatch"
	"github.com/ajroetker/go-lightning/gates"
	"github.com/ajroetker/go-lightning/internal/workerpool"
)

const (
	// DefaultParallelThreshold is the qubit count from which sweeps are
	// split across the pool.
	DefaultParallelThreshold = 14

	// groupGrain is the minimum number of groups handed to one worker.
	groupGrain = 1 << 10
)

// Module registers the LM kernels.
type Module[C dispatch.Complex, P dispatch.Precision] struct {
	pool      *workerpool.Pool
	threshold int
}

// New returns the LM module. Sweeps over states of at least threshold
// qubits run on pool; a nil pool keeps every sweep on the calling
// goroutine. A threshold <= 0 selects DefaultParallelThreshold.
func New[C dispatch.Complex, P dispatch.Precision](pool *workerpool.Pool, threshold int) Module[C, P] {
	if threshold <= 0 {
		threshold = DefaultParallelThreshold
	}
	return Module[C, P]{pool: pool, threshold: threshold}
}

// Kernel returns gates.KernelLM.
func (Module[C, P]) Kernel() gates.KernelType { return gates.KernelLM }

// Name returns "LM".
func (Module[C, P]) Name() string { return "LM" }

// Register adds the LM kernels to d.
func (m Module[C, P]) Register(d *dispatch.Dispatcher[C, P]) {
	k := m.Kernel()
	for _, g := range []gates.Pair[gates.GateOperation, dispatch.GateFunc[C, P]]{
		{gates.PauliX, m.pauliX},
		{gates.PauliY, m.pauliY},
		{gates.PauliZ, m.pauliZ},
		{gates.Hadamard, m.hadamard},
		{gates.S, m.s},
		{gates.T, m.t},
		{gates.PhaseShift, m.phaseShift},
		{gates.RX, m.rx},
		{gates.RY, m.ry},
		{gates.RZ, m.rz},
		{gates.CNOT, m.cnot},
		{gates.CZ, m.cz},
		{gates.SWAP, m.swap},
	} {
		d.RegisterGate(g.Op, k, g.Value)
	}

	d.RegisterGenerator(gates.GeneratorRX, k, m.generatorRX)
	d.RegisterGenerator(gates.GeneratorRY, k, m.generatorRY)
	d.RegisterGenerator(gates.GeneratorRZ, k, m.generatorRZ)

	d.RegisterMatrix(gates.SingleQubitOp, k, m.singleQubitOp)
	d.RegisterMatrix(gates.TwoQubitOp, k, m.applyMatrix)
	d.RegisterMatrix(gates.MultiQubitOp, k, m.applyMatrix)
}

// groups enumerates the bases of the amplitude groups of a gate, i.e. the
// indices with every target bit cleared.
type groups struct {
	bits []int // target bit masks, ascending
	n    int
}

func newGroups(numQubits int, bits ...int) groups {
	sorted := slices.Clone(bits)
	slices.Sort(sorted)
	return groups{bits: sorted, n: 1 << (numQubits - len(bits))}
}

// base returns the i-th group base: i with a zero inserted at every
// target bit.
func (g groups) base(i int) int {
	for _, b := range g.bits {
		low := i & (b - 1)
		i = low | (i^low)<<1
	}
	return i
}

// run calls fn over ranges covering [0, g.n), on the pool when the state
// is large enough.
func (m Module[C, P]) run(numQubits int, g groups, fn func(start, end int)) {
	if m.pool == nil || numQubits < m.threshold {
		fn(0, g.n)
		return
	}
	m.pool.ParallelFor(g.n, groupGrain, fn)
}

// bitOf returns the mask of wire in a numQubits state; wire 0 is the most
// significant bit.
func bitOf(numQubits, wire int) int {
	return 1 << (numQubits - 1 - wire)
}

// apply1 multiplies the pairs addressed by wire by the row-major 2x2 u.
func (m Module[C, P]) apply1(data []C, numQubits, wire int, u [4]C) {
	bit := bitOf(numQubits, wire)
	g := newGroups(numQubits, bit)
	m.run(numQubits, g, func(start, end int) {
		for i := start; i < end; i++ {
			i0 := g.base(i)
			i1 := i0 | bit
			v0, v1 := data[i0], data[i1]
			data[i0] = u[0]*v0 + u[1]*v1
			data[i1] = u[2]*v0 + u[3]*v1
		}
	})
}

// phase1 multiplies the amplitudes with wire set by p.
func (m Module[C, P]) phase1(data []C, numQubits, wire int, p C) {
	bit := bitOf(numQubits, wire)
	g := newGroups(numQubits, bit)
	m.run(numQubits, g, func(start, end int) {
		for i := start; i < end; i++ {
			data[g.base(i)|bit] *= p
		}
	})
}

func (m Module[C, P]) pauliX(data []C, numQubits int, wires []int, _ bool, _ []P) {
	bit := bitOf(numQubits, wires[0])
	g := newGroups(numQubits, bit)
	m.run(numQubits, g, func(start, end int) {
		for i := start; i < end; i++ {
			i0 := g.base(i)
			data[i0], data[i0|bit] = data[i0|bit], data[i0]
		}
	})
}

func (m Module[C, P]) pauliY(data []C, numQubits int, wires []int, _ bool, _ []P) {
	bit := bitOf(numQubits, wires[0])
	g := newGroups(numQubits, bit)
	m.run(numQubits, g, func(start, end int) {
		for i := start; i < end; i++ {
			i0 := g.base(i)
			i1 := i0 | bit
			v0, v1 := data[i0], data[i1]
			data[i0] = C(-1i) * v1
			data[i1] = C(1i) * v0
		}
	})
}

func (m Module[C, P]) pauliZ(data []C, numQubits int, wires []int, _ bool, _ []P) {
	m.phase1(data, numQubits, wires[0], -1)
}

func (m Module[C, P]) hadamard(data []C, numQubits int, wires []int, _ bool, _ []P) {
	h := C(complex(math.Sqrt2/2, 0))
	m.apply1(data, numQubits, wires[0], [4]C{h, h, h, -h})
}

func (m Module[C, P]) s(data []C, numQubits int, wires []int, inverse bool, _ []P) {
	m.phase1(data, numQubits, wires[0], C(phase(math.Pi/2, inverse)))
}

func (m Module[C, P]) t(data []C, numQubits int, wires []int, inverse bool, _ []P) {
	m.phase1(data, numQubits, wires[0], C(phase(math.Pi/4, inverse)))
}

func (m Module[C, P]) phaseShift(data []C, numQubits int, wires []int, inverse bool, params []P) {
	m.phase1(data, numQubits, wires[0], C(phase(float64(params[0]), inverse)))
}

func (m Module[C, P]) rx(data []C, numQubits int, wires []int, inverse bool, params []P) {
	c, s := halfAngle(float64(params[0]), inverse)
	m.apply1(data, numQubits, wires[0], [4]C{
		C(complex(c, 0)), C(complex(0, -s)),
		C(complex(0, -s)), C(complex(c, 0)),
	})
}

func (m Module[C, P]) ry(data []C, numQubits int, wires []int, inverse bool, params []P) {
	c, s := halfAngle(float64(params[0]), inverse)
	m.apply1(data, numQubits, wires[0], [4]C{
		C(complex(c, 0)), C(complex(-s, 0)),
		C(complex(s, 0)), C(complex(c, 0)),
	})
}

func (m Module[C, P]) rz(data []C, numQubits int, wires []int, inverse bool, params []P) {
	c, s := halfAngle(float64(params[0]), inverse)
	m.apply1(data, numQubits, wires[0], [4]C{
		C(complex(c, -s)), 0,
		0, C(complex(c, s)),
	})
}

func (m Module[C, P]) cnot(data []C, numQubits int, wires []int, _ bool, _ []P) {
	control, target := bitOf(numQubits, wires[0]), bitOf(numQubits, wires[1])
	g := newGroups(numQubits, control, target)
	m.run(numQubits, g, func(start, end int) {
		for i := start; i < end; i++ {
			i10 := g.base(i) | control
			i11 := i10 | target
			data[i10], data[i11] = data[i11], data[i10]
		}
	})
}

func (m Module[C, P]) cz(data []C, numQubits int, wires []int, _ bool, _ []P) {
	b0, b1 := bitOf(numQubits, wires[0]), bitOf(numQubits, wires[1])
	g := newGroups(numQubits, b0, b1)
	m.run(numQubits, g, func(start, end int) {
		for i := start; i < end; i++ {
			idx := g.base(i) | b0 | b1
			data[idx] = -data[idx]
		}
	})
}

func (m Module[C, P]) swap(data []C, numQubits int, wires []int, _ bool, _ []P) {
	b0, b1 := bitOf(numQubits, wires[0]), bitOf(numQubits, wires[1])
	g := newGroups(numQubits, b0, b1)
	m.run(numQubits, g, func(start, end int) {
		for i := start; i < end; i++ {
			base := g.base(i)
			data[base|b0], data[base|b1] = data[base|b1], data[base|b0]
		}
	})
}

// The rotation generators apply the Pauli of the same axis; the Paulis
// are Hermitian, so adjoint changes nothing.

func (m Module[C, P]) generatorRX(data []C, numQubits int, wires []int, _ bool) P {
	m.pauliX(data, numQubits, wires, false, nil)
	return -0.5
}

func (m Module[C, P]) generatorRY(data []C, numQubits int, wires []int, _ bool) P {
	m.pauliY(data, numQubits, wires, false, nil)
	return -0.5
}

func (m Module[C, P]) generatorRZ(data []C, numQubits int, wires []int, _ bool) P {
	m.pauliZ(data, numQubits, wires, false, nil)
	return -0.5
}

func (m Module[C, P]) singleQubitOp(data []C, numQubits int, matrix []C, wires []int, inverse bool) {
	u := [4]C(matrix)
	if inverse {
		u = [4]C(dagger(matrix, 2))
	}
	m.apply1(data, numQubits, wires[0], u)
}

// applyMatrix multiplies every group by the dense row-major matrix, whose
// first wire is the most significant bit of the local index.
func (m Module[C, P]) applyMatrix(data []C, numQubits int, matrix []C, wires []int, inverse bool) {
	k := len(wires)
	dim := 1 << k
	mat := matrix
	if inverse {
		mat = dagger(matrix, dim)
	}

	bits := make([]int, k)
	offsets := make([]int, dim)
	for i, w := range wires {
		bits[i] = bitOf(numQubits, w)
		for j := range dim {
			if j>>(k-1-i)&1 == 1 {
				offsets[j] |= bits[i]
			}
		}
	}

	g := newGroups(numQubits, bits...)
	m.run(numQubits, g, func(start, end int) {
		in := make([]C, dim)
		for i := start; i < end; i++ {
			base := g.base(i)
			for j, off := range offsets {
				in[j] = data[base|off]
			}
			for r, off := range offsets {
				row := mat[r*dim : (r+1)*dim]
				var acc C
				for c, v := range in {
					acc += row[c] * v
				}
				data[base|off] = acc
			}
		}
	})
}

func dagger[C dispatch.Complex](m []C, dim int) []C {
	out := make([]C, len(m))
	for r := range dim {
		for c := range dim {
			v := complex128(m[r*dim+c])
			out[c*dim+r] = C(complex(real(v), -imag(v)))
		}
	}
	return out
}

// phase returns e^{i angle}, or its conjugate when inverse is set.
func phase(angle float64, inverse bool) complex128 {
	if inverse {
		angle = -angle
	}
	return complex(math.Cos(angle), math.Sin(angle))
}

// halfAngle returns cos and sin of theta/2, with theta negated when
// inverse is set.
func halfAngle(theta float64, inverse bool) (c, s float64) {
	if inverse {
		theta = -theta
	}
	return math.Cos(theta / 2), math.Sin(theta / 2)
}
