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
	"math"
	"math/cmplx"
)

// Dense row-major matrices of the fixed-width gates and generators, in
// double precision. Wire i of a k-wire matrix is bit k-1-i of its local
// index, so the first wire is the most significant.

var (
	identity2 = []complex128{1, 0, 0, 1}
	pauliX    = []complex128{0, 1, 1, 0}
	pauliY    = []complex128{0, -1i, 1i, 0}
	pauliZ    = []complex128{1, 0, 0, -1}
	hadamard  = []complex128{
		math.Sqrt2 / 2, math.Sqrt2 / 2,
		math.Sqrt2 / 2, -math.Sqrt2 / 2,
	}
	sGate = []complex128{1, 0, 0, 1i}
	tGate = []complex128{1, 0, 0, cmplx.Exp(1i * math.Pi / 4)}
	swap  = []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	}

	// projector onto |1>
	proj1 = []complex128{0, 0, 0, 1}
)

func phaseShift(phi float64) []complex128 {
	return []complex128{1, 0, 0, cmplx.Exp(complex(0, phi))}
}

func rx(theta float64) []complex128 {
	c, s := math.Cos(theta/2), math.Sin(theta/2)
	return []complex128{
		complex(c, 0), complex(0, -s),
		complex(0, -s), complex(c, 0),
	}
}

func ry(theta float64) []complex128 {
	c, s := math.Cos(theta/2), math.Sin(theta/2)
	return []complex128{
		complex(c, 0), complex(-s, 0),
		complex(s, 0), complex(c, 0),
	}
}

func rz(theta float64) []complex128 {
	return []complex128{
		cmplx.Exp(complex(0, -theta/2)), 0,
		0, cmplx.Exp(complex(0, theta/2)),
	}
}

// rot is RZ(omega) RY(theta) RZ(phi).
func rot(phi, theta, omega float64) []complex128 {
	c, s := math.Cos(theta/2), math.Sin(theta/2)
	return []complex128{
		cmplx.Exp(complex(0, -(phi+omega)/2)) * complex(c, 0),
		-cmplx.Exp(complex(0, (phi-omega)/2)) * complex(s, 0),
		cmplx.Exp(complex(0, -(phi-omega)/2)) * complex(s, 0),
		cmplx.Exp(complex(0, (phi+omega)/2)) * complex(c, 0),
	}
}

func isingXX(phi float64) []complex128 {
	c, s := complex(math.Cos(phi/2), 0), complex(0, -math.Sin(phi/2))
	return []complex128{
		c, 0, 0, s,
		0, c, s, 0,
		0, s, c, 0,
		s, 0, 0, c,
	}
}

func isingXY(phi float64) []complex128 {
	c, s := complex(math.Cos(phi/2), 0), complex(0, math.Sin(phi/2))
	return []complex128{
		1, 0, 0, 0,
		0, c, s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

func isingYY(phi float64) []complex128 {
	c, s := complex(math.Cos(phi/2), 0), complex(0, math.Sin(phi/2))
	return []complex128{
		c, 0, 0, s,
		0, c, -s, 0,
		0, -s, c, 0,
		s, 0, 0, c,
	}
}

func isingZZ(phi float64) []complex128 {
	e, f := cmplx.Exp(complex(0, -phi/2)), cmplx.Exp(complex(0, phi/2))
	return []complex128{
		e, 0, 0, 0,
		0, f, 0, 0,
		0, 0, f, 0,
		0, 0, 0, e,
	}
}

// excitation returns the dim x dim matrix rotating the (lo, hi) subspace by
// theta/2 and multiplying every other basis state by outer.
func excitation(dim, lo, hi int, theta float64, outer complex128) []complex128 {
	m := make([]complex128, dim*dim)
	for i := range dim {
		m[i*dim+i] = outer
	}
	c, s := complex(math.Cos(theta/2), 0), complex(math.Sin(theta/2), 0)
	m[lo*dim+lo], m[lo*dim+hi] = c, -s
	m[hi*dim+lo], m[hi*dim+hi] = s, c
	return m
}

// controlled returns the matrix of u controlled on nControls leading wires.
// With diag 0 instead of 1, it returns the projector |1..1><1..1| ⊗ u,
// which is the shape of the controlled generators.
func controlled(u []complex128, nControls int, diag complex128) []complex128 {
	du := isqrt(len(u))
	dim := du << nControls
	m := make([]complex128, dim*dim)
	off := dim - du
	for i := range off {
		m[i*dim+i] = diag
	}
	for r := range du {
		copy(m[(off+r)*dim+off:(off+r)*dim+off+du], u[r*du:(r+1)*du])
	}
	return m
}

func kron(a, b []complex128) []complex128 {
	da, db := isqrt(len(a)), isqrt(len(b))
	dim := da * db
	m := make([]complex128, dim*dim)
	for ar := range da {
		for ac := range da {
			for br := range db {
				for bc := range db {
					m[(ar*db+br)*dim+ac*db+bc] = a[ar*da+ac] * b[br*db+bc]
				}
			}
		}
	}
	return m
}

// diagonal returns a matrix with d on the diagonal and v at the listed
// positions.
func diagonal(dim int, d complex128, entries map[[2]int]complex128) []complex128 {
	m := make([]complex128, dim*dim)
	for i := range dim {
		m[i*dim+i] = d
	}
	for rc, v := range entries {
		m[rc[0]*dim+rc[1]] = v
	}
	return m
}

func isqrt(n int) int {
	r := int(math.Round(math.Sqrt(float64(n))))
	if r*r != n {
		panic("reference: matrix is not square")
	}
	return r
}
