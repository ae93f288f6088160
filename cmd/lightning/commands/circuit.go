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

package commands

import (
	"fmt"
	"io"
	"math/cmplx"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-lightning/dispatch"
	"github.com/ajroetker/go-lightning/gates"
)

const (
	maxQubits     = 24
	inverseSuffix = ".inv"
)

// opSpec is one operation given on the command line as
// NAME[.inv]:WIRES[:PARAMS], e.g. "RX.inv:1:0.5" or "GlobalPhase::0.3".
type opSpec struct {
	name    string
	wires   []int
	params  []float64
	inverse bool
}

func parseOp(s string) (opSpec, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 || parts[0] == "" {
		return opSpec{}, fmt.Errorf("operation %q: want NAME[.inv]:WIRES[:PARAMS]", s)
	}
	spec := opSpec{name: parts[0]}
	if name, ok := strings.CutSuffix(spec.name, inverseSuffix); ok {
		spec.name, spec.inverse = name, true
	}

	var err error
	if len(parts) > 1 {
		if spec.wires, err = parseList(parts[1], strconv.Atoi); err != nil {
			return opSpec{}, fmt.Errorf("operation %q: wires: %w", s, err)
		}
	}
	if len(parts) > 2 {
		parseFloat := func(f string) (float64, error) { return strconv.ParseFloat(f, 64) }
		if spec.params, err = parseList(parts[2], parseFloat); err != nil {
			return opSpec{}, fmt.Errorf("operation %q: parameters: %w", s, err)
		}
	}
	return spec, nil
}

// matrixSpec is a dense matrix given as WIRES=ENTRIES, entries in row-major
// order, e.g. "0=0,1,1,0" or "0,1=1,0,0,0,0,1,0,0,0,0,0,1i,0,0,-1i,0".
type matrixSpec struct {
	wires   []int
	entries []complex128
}

func parseMatrix(s string) (matrixSpec, error) {
	w, e, ok := strings.Cut(s, "=")
	if !ok {
		return matrixSpec{}, fmt.Errorf("matrix %q: want WIRES=ENTRIES", s)
	}
	wires, err := parseList(w, strconv.Atoi)
	if err != nil {
		return matrixSpec{}, fmt.Errorf("matrix %q: wires: %w", s, err)
	}
	parseComplex := func(f string) (complex128, error) { return strconv.ParseComplex(f, 128) }
	entries, err := parseList(e, parseComplex)
	if err != nil {
		return matrixSpec{}, fmt.Errorf("matrix %q: entries: %w", s, err)
	}
	return matrixSpec{wires: wires, entries: entries}, nil
}

func parseList[T any](s string, parse func(string) (T, error)) ([]T, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]T, len(fields))
	for i, f := range fields {
		v, err := parse(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// checkWires rejects wires the kernels would index out of range with.
func checkWires(wires []int, numQubits int) error {
	for i, w := range wires {
		if w < 0 || w >= numQubits {
			return fmt.Errorf("wire %d out of range for %d qubits", w, numQubits)
		}
		if slices.Contains(wires[:i], w) {
			return fmt.Errorf("wire %d repeated", w)
		}
	}
	return nil
}

// checkOp validates an operation against the catalogue shape of the gate.
// Names not in the catalogue pass, so that dispatch reports them.
func checkOp(spec opSpec, numQubits int) error {
	if err := checkWires(spec.wires, numQubits); err != nil {
		return fmt.Errorf("%s: %w", spec.name, err)
	}
	op, ok := gates.ReverseLookup(gates.GateNames, spec.name)
	if !ok {
		return nil
	}
	if op == gates.GateMatrix {
		return fmt.Errorf("%s: use --matrix for dense matrices", spec.name)
	}
	if want := gates.Lookup(gates.GateWires, op); want != 0 && len(spec.wires) != want {
		return fmt.Errorf("%s acts on %d wires, got %d", spec.name, want, len(spec.wires))
	}
	if want := gates.Lookup(gates.GateNumParams, op); len(spec.params) != want {
		return fmt.Errorf("%s takes %d parameters, got %d", spec.name, want, len(spec.params))
	}
	return nil
}

// basisState returns the computational basis state |index> on numQubits.
func basisState[C dispatch.Complex](numQubits, index int) ([]C, error) {
	if numQubits < 1 || numQubits > maxQubits {
		return nil, fmt.Errorf("qubits must be between 1 and %d, got %d", maxQubits, numQubits)
	}
	if index < 0 || index >= 1<<numQubits {
		return nil, fmt.Errorf("basis state %d out of range for %d qubits", index, numQubits)
	}
	data := make([]C, 1<<numQubits)
	data[index] = 1
	return data, nil
}

func toPrecision[P dispatch.Precision](params []float64) []P {
	return lo.Map(params, func(p float64, _ int) P { return P(p) })
}

// writeState prints the non-negligible amplitudes of data, one basis state
// per line, wire 0 leftmost.
func writeState[C dispatch.Complex](w io.Writer, numQubits int, data []C) {
	for i, v := range data {
		c := complex128(v)
		if cmplx.Abs(c) < 1e-12 {
			continue
		}
		fmt.Fprintf(w, "|%0*b⟩  %+.6f%+.6fi\n", numQubits, i, real(c), imag(c))
	}
}
