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

package dispatch

import (
	"fmt"

	"github.com/ajroetker/go-lightning/gates"
)

// ApplyOperation applies gate op to data using kernel.
//
// data, numQubits, wires, inverse and params are passed to the registered
// callable unchanged; wires are not checked against numQubits here.
// Returns ErrKernelNotRegistered, with data untouched, if kernel does not
// implement op.
func (d *Dispatcher[C, P]) ApplyOperation(kernel gates.KernelType, data []C, numQubits int,
	op gates.GateOperation, wires []int, inverse bool, params []P) error {
	fn, ok := d.gateKernels[opKey[gates.GateOperation]{op, kernel}]
	if !ok {
		return &Error{Kind: ErrKernelNotRegistered, Op: "ApplyOperation", Operation: op.String(), Kernel: kernel}
	}
	fn(data, numQubits, wires, inverse, params)
	return nil
}

// ApplyOperationByName is ApplyOperation with the gate given by its
// catalogue name. Returns ErrUnknownOperation if name is not a gate.
func (d *Dispatcher[C, P]) ApplyOperationByName(kernel gates.KernelType, data []C, numQubits int,
	name string, wires []int, inverse bool, params []P) error {
	op, ok := d.strToGates[name]
	if !ok {
		return &Error{Kind: ErrUnknownOperation, Op: "ApplyOperation", Operation: name, Kernel: kernel}
	}
	return d.ApplyOperation(kernel, data, numQubits, op, wires, inverse, params)
}

// ApplyOperations applies the named gates in order. ops, wires, inverse
// and params are parallel slices and must have the same length; otherwise
// ErrArgumentCountMismatch is returned before any gate runs.
//
// The first failing gate stops the sequence. Gates before it have already
// modified data and are not rolled back. The returned error names the
// failing position and wraps the underlying *Error.
func (d *Dispatcher[C, P]) ApplyOperations(kernel gates.KernelType, data []C, numQubits int,
	ops []string, wires [][]int, inverse []bool, params [][]P) error {
	n := len(ops)
	if n != len(wires) || n != len(params) || n != len(inverse) {
		return &Error{
			Kind:   ErrArgumentCountMismatch,
			Op:     "ApplyOperations",
			Kernel: kernel,
			Detail: fmt.Sprintf("%d operations, %d wires, %d inverse flags, %d parameter lists",
				n, len(wires), len(inverse), len(params)),
		}
	}
	for i := range n {
		if err := d.ApplyOperationByName(kernel, data, numQubits, ops[i], wires[i], inverse[i], params[i]); err != nil {
			return fmt.Errorf("operation %d of %d: %w", i, n, err)
		}
	}
	return nil
}

// ApplyOperationsNoParams is ApplyOperations for non-parametric gates.
// Every gate receives an empty parameter list.
func (d *Dispatcher[C, P]) ApplyOperationsNoParams(kernel gates.KernelType, data []C, numQubits int,
	ops []string, wires [][]int, inverse []bool) error {
	n := len(ops)
	if n != len(wires) || n != len(inverse) {
		return &Error{
			Kind:   ErrArgumentCountMismatch,
			Op:     "ApplyOperations",
			Kernel: kernel,
			Detail: fmt.Sprintf("%d operations, %d wires, %d inverse flags", n, len(wires), len(inverse)),
		}
	}
	for i := range n {
		if err := d.ApplyOperationByName(kernel, data, numQubits, ops[i], wires[i], inverse[i], nil); err != nil {
			return fmt.Errorf("operation %d of %d: %w", i, n, err)
		}
	}
	return nil
}

// ClassifyMatrix returns the matrix operation used for a matrix over
// numWires wires: 1 is SingleQubitOp, 2 is TwoQubitOp, anything else is
// MultiQubitOp.
func ClassifyMatrix(numWires int) gates.MatrixOperation {
	switch numWires {
	case 1:
		return gates.SingleQubitOp
	case 2:
		return gates.TwoQubitOp
	default:
		return gates.MultiQubitOp
	}
}

// ApplyMatrix applies a dense row-major matrix over wires to data using
// kernel. The matrix must have 4^len(wires) elements.
//
// Panics if len(wires) > numQubits.
func (d *Dispatcher[C, P]) ApplyMatrix(kernel gates.KernelType, data []C, numQubits int,
	matrix []C, wires []int, inverse bool) error {
	if len(wires) > numQubits {
		panic(fmt.Sprintf("dispatch: ApplyMatrix on %d wires of a %d-qubit state", len(wires), numQubits))
	}
	op := ClassifyMatrix(len(wires))
	if want := 1 << (2 * len(wires)); len(matrix) != want {
		return &Error{
			Kind:      ErrMatrixSizeMismatch,
			Op:        "ApplyMatrix",
			Operation: op.String(),
			Kernel:    kernel,
			Detail:    fmt.Sprintf("%d elements for %d wires, want %d", len(matrix), len(wires), want),
		}
	}
	fn, ok := d.matrixKernels[opKey[gates.MatrixOperation]{op, kernel}]
	if !ok {
		return &Error{
			Kind:      ErrKernelNotRegistered,
			Op:        "ApplyMatrix",
			Operation: op.String(),
			Kernel:    kernel,
		}
	}
	fn(data, numQubits, matrix, wires, inverse)
	return nil
}

// ApplyGenerator applies generator op to data using kernel and returns the
// generator's scale factor exactly as the kernel reports it.
func (d *Dispatcher[C, P]) ApplyGenerator(kernel gates.KernelType, data []C, numQubits int,
	op gates.GeneratorOperation, wires []int, adjoint bool) (P, error) {
	fn, ok := d.generatorKernels[opKey[gates.GeneratorOperation]{op, kernel}]
	if !ok {
		return 0, &Error{Kind: ErrKernelNotRegistered, Op: "ApplyGenerator", Operation: op.String(), Kernel: kernel}
	}
	return fn(data, numQubits, wires, adjoint), nil
}

// ApplyGeneratorByName is ApplyGenerator with the generator given by its
// name without the "Generator" prefix, e.g. "RX".
func (d *Dispatcher[C, P]) ApplyGeneratorByName(kernel gates.KernelType, data []C, numQubits int,
	name string, wires []int, adjoint bool) (P, error) {
	op, ok := d.strToGenerators[name]
	if !ok {
		return 0, &Error{Kind: ErrUnknownOperation, Op: "ApplyGenerator", Operation: name, Kernel: kernel}
	}
	return d.ApplyGenerator(kernel, data, numQubits, op, wires, adjoint)
}
