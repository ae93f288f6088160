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

package reference

import (
	"math/bits"
	"math/cmplx"

	"github.com/ajroetker/go-lightning/dispatch"
)

// ApplyMatrix multiplies the amplitudes addressed by wires by the dense
// row-major matrix, or by its conjugate transpose when inverse is set.
// Wire w is bit numQubits-1-w of a state index.
//
// It visits every index of the state once and is meant as the yardstick
// other kernels are tested against, not as a fast path.
func ApplyMatrix[C dispatch.Complex](data []C, numQubits int, matrix []C, wires []int, inverse bool) {
	k := len(wires)
	dim := 1 << k
	if len(matrix) != dim*dim {
		panic("reference: matrix size does not match the number of wires")
	}
	mat := matrix
	if inverse {
		mat = Dagger(matrix, dim)
	}

	mask := 0
	offsets := make([]int, dim)
	for i, w := range wires {
		bit := 1 << (numQubits - 1 - w)
		mask |= bit
		for j := range dim {
			if j>>(k-1-i)&1 == 1 {
				offsets[j] |= bit
			}
		}
	}

	in := make([]C, dim)
	for base := range 1 << numQubits {
		if base&mask != 0 {
			continue
		}
		for j, off := range offsets {
			in[j] = data[base|off]
		}
		for r, off := range offsets {
			var acc C
			for c, v := range in {
				acc += mat[r*dim+c] * v
			}
			data[base|off] = acc
		}
	}
}

// Dagger returns the conjugate transpose of the dim x dim matrix m.
func Dagger[C dispatch.Complex](m []C, dim int) []C {
	out := make([]C, len(m))
	for r := range dim {
		for c := range dim {
			out[c*dim+r] = C(cmplx.Conj(complex128(m[r*dim+c])))
		}
	}
	return out
}

// parity reports whether an odd number of the bits in mask are set in idx.
func parity(idx, mask int) bool {
	return bits.OnesCount(uint(idx&mask))%2 == 1
}

func wireMask(numQubits int, wires []int) int {
	mask := 0
	for _, w := range wires {
		mask |= 1 << (numQubits - 1 - w)
	}
	return mask
}

// applyMultiRZ multiplies each amplitude by e^{-i theta/2} when the wires
// have even parity and e^{i theta/2} otherwise.
func applyMultiRZ[C dispatch.Complex](data []C, numQubits int, wires []int, theta float64) {
	even := C(cmplx.Exp(complex(0, -theta/2)))
	odd := C(cmplx.Exp(complex(0, theta/2)))
	mask := wireMask(numQubits, wires)
	for i := range data {
		if parity(i, mask) {
			data[i] *= odd
		} else {
			data[i] *= even
		}
	}
}

func scale[C dispatch.Complex](data []C, f complex128) {
	c := C(f)
	for i := range data {
		data[i] *= c
	}
}

func toComplex[C dispatch.Complex](m []complex128) []C {
	out := make([]C, len(m))
	for i, v := range m {
		out[i] = C(v)
	}
	return out
}

func toFloat64[P dispatch.Precision](params []P) []float64 {
	out := make([]float64, len(params))
	for i, p := range params {
		out[i] = float64(p)
	}
	return out
}
