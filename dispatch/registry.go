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
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-lightning/gates"
)

// RegisterGate stores fn as the implementation of op for kernel, unless one
// is already registered. It reports whether fn was stored.
func (d *Dispatcher[C, P]) RegisterGate(op gates.GateOperation, kernel gates.KernelType, fn GateFunc[C, P]) bool {
	d.mustBuild("RegisterGate", op, fn == nil)
	return d.logInsert(insertIfAbsent(d.gateKernels, opKey[gates.GateOperation]{op, kernel}, fn), op, kernel)
}

// RegisterGenerator stores fn as the implementation of op for kernel,
// unless one is already registered. It reports whether fn was stored.
func (d *Dispatcher[C, P]) RegisterGenerator(op gates.GeneratorOperation, kernel gates.KernelType, fn GeneratorFunc[C, P]) bool {
	d.mustBuild("RegisterGenerator", op, fn == nil)
	return d.logInsert(insertIfAbsent(d.generatorKernels, opKey[gates.GeneratorOperation]{op, kernel}, fn), op, kernel)
}

// RegisterMatrix stores fn as the implementation of op for kernel, unless
// one is already registered. It reports whether fn was stored.
func (d *Dispatcher[C, P]) RegisterMatrix(op gates.MatrixOperation, kernel gates.KernelType, fn MatrixFunc[C]) bool {
	d.mustBuild("RegisterMatrix", op, fn == nil)
	return d.logInsert(insertIfAbsent(d.matrixKernels, opKey[gates.MatrixOperation]{op, kernel}, fn), op, kernel)
}

// RegisterKernelName records the display name of kernel, unless one is
// already recorded. It reports whether name was stored.
func (d *Dispatcher[C, P]) RegisterKernelName(kernel gates.KernelType, name string) bool {
	d.mustBuild("RegisterKernelName", kernel, false)
	return d.logInsert(insertIfAbsent(d.kernelNames, kernel, name), name, kernel)
}

// KernelName returns the display name registered for kernel.
func (d *Dispatcher[C, P]) KernelName(kernel gates.KernelType) (string, error) {
	name, ok := d.kernelNames[kernel]
	if !ok {
		return "", &Error{Kind: ErrUnknownKernel, Op: "KernelName", Kernel: kernel}
	}
	return name, nil
}

// IsRegisteredKernel reports whether kernel has a display name.
func (d *Dispatcher[C, P]) IsRegisteredKernel(kernel gates.KernelType) bool {
	_, ok := d.kernelNames[kernel]
	return ok
}

// RegisteredKernels returns every kernel with a display name, in ascending
// order. A kernel may be named without implementing any operation.
func (d *Dispatcher[C, P]) RegisteredKernels() []gates.KernelType {
	kernels := lo.Keys(d.kernelNames)
	slices.Sort(kernels)
	return kernels
}

// IsGateRegistered reports whether kernel implements gate op.
func (d *Dispatcher[C, P]) IsGateRegistered(op gates.GateOperation, kernel gates.KernelType) bool {
	_, ok := d.gateKernels[opKey[gates.GateOperation]{op, kernel}]
	return ok
}

// IsGeneratorRegistered reports whether kernel implements generator op.
func (d *Dispatcher[C, P]) IsGeneratorRegistered(op gates.GeneratorOperation, kernel gates.KernelType) bool {
	_, ok := d.generatorKernels[opKey[gates.GeneratorOperation]{op, kernel}]
	return ok
}

// IsMatrixRegistered reports whether kernel implements matrix operation op.
func (d *Dispatcher[C, P]) IsMatrixRegistered(op gates.MatrixOperation, kernel gates.KernelType) bool {
	_, ok := d.matrixKernels[opKey[gates.MatrixOperation]{op, kernel}]
	return ok
}

// RegisteredGatesForKernel returns the gates kernel implements, in
// ascending order. It scans the whole gate table.
func (d *Dispatcher[C, P]) RegisteredGatesForKernel(kernel gates.KernelType) []gates.GateOperation {
	return opsForKernel(d.gateKernels, kernel)
}

// RegisteredGeneratorsForKernel returns the generators kernel implements,
// in ascending order. It scans the whole generator table.
func (d *Dispatcher[C, P]) RegisteredGeneratorsForKernel(kernel gates.KernelType) []gates.GeneratorOperation {
	return opsForKernel(d.generatorKernels, kernel)
}

// RegisteredMatricesForKernel returns the matrix operations kernel
// implements, in ascending order. It scans the whole matrix table.
func (d *Dispatcher[C, P]) RegisteredMatricesForKernel(kernel gates.KernelType) []gates.MatrixOperation {
	return opsForKernel(d.matrixKernels, kernel)
}

// mustBuild panics if the dispatcher is sealed or the callable is nil.
func (d *Dispatcher[C, P]) mustBuild(method string, what any, nilFunc bool) {
	if d.Sealed() {
		panic(fmt.Sprintf("dispatch: %s(%v) after Seal", method, what))
	}
	if nilFunc {
		panic(fmt.Sprintf("dispatch: %s(%v) with a nil function", method, what))
	}
}

func (d *Dispatcher[C, P]) logInsert(stored bool, what any, kernel gates.KernelType) bool {
	entry := d.log.WithFields(logrus.Fields{"op": fmt.Sprint(what), "kernel": kernel.String()})
	if stored {
		entry.Debug("registered")
	} else {
		entry.Debug("already registered, keeping the first registration")
	}
	return stored
}

func insertIfAbsent[K comparable, V any](m map[K]V, k K, v V) bool {
	if _, exists := m[k]; exists {
		return false
	}
	m[k] = v
	return true
}

func opsForKernel[O cmp.Ordered, V any](m map[opKey[O]]V, kernel gates.KernelType) []O {
	ops := lo.FilterMap(lo.Keys(m), func(k opKey[O], _ int) (O, bool) {
		return k.op, k.kernel == kernel
	})
	slices.Sort(ops)
	return ops
}
