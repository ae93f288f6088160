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

// Package kernels populates dispatchers with kernel modules and picks the
// kernel to dispatch to.
//
// The usual setup builds one dispatcher per precision at startup:
//
//	d := dispatch.New[complex128, float64](dispatch.WithLogger(log))
//	kernels.Bootstrap(d, kernels.Builtin[complex128, float64](pool, 0)...)
//	kernel := kernels.SelectGate(d, gates.CNOT)
//
// Default64 and Default32 return process-wide dispatchers built that way
// on first use.
package kernels

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-lightning/dispatch"
	"github.com/ajroetker/go-lightning/gates"
	"github.com/ajroetker/go-lightning/internal/cpuinfo"
	"github.com/ajroetker/go-lightning/internal/workerpool"
	"github.com/ajroetker/go-lightning/kernels/lm"
	"github.com/ajroetker/go-lightning/kernels/reference"
)

// Module is a set of kernels registered under one kernel identifier.
type Module[C dispatch.Complex, P dispatch.Precision] interface {
	// Kernel is the identifier the module registers under.
	Kernel() gates.KernelType

	// Name is the kernel's display name.
	Name() string

	// Register adds the module's gate, generator and matrix kernels to d.
	Register(d *dispatch.Dispatcher[C, P])
}

// Bootstrap names and registers every module in order, then seals d.
// Since registration is first-wins, a module listed earlier keeps its
// kernels if a later one registers the same (operation, kernel) pair.
//
// d must not be used for dispatch before Bootstrap returns.
func Bootstrap[C dispatch.Complex, P dispatch.Precision](d *dispatch.Dispatcher[C, P], modules ...Module[C, P]) {
	log := d.Logger()
	for _, m := range modules {
		k := m.Kernel()
		if !d.RegisterKernelName(k, m.Name()) {
			log.WithField("kernel", k).Warn("kernel already named, keeping the first name")
		}
		m.Register(d)
		log.WithFields(logrus.Fields{
			"kernel":     k,
			"gates":      len(d.RegisteredGatesForKernel(k)),
			"generators": len(d.RegisteredGeneratorsForKernel(k)),
			"matrices":   len(d.RegisteredMatricesForKernel(k)),
		}).Debug("kernel registered")
	}
	d.Seal()
}

// Builtin returns the modules shipped with this module, reference first.
// The LM kernels run states of at least threshold qubits on pool.
func Builtin[C dispatch.Complex, P dispatch.Precision](pool *workerpool.Pool, threshold int) []Module[C, P] {
	return []Module[C, P]{
		reference.New[C, P](),
		lm.New[C, P](pool, threshold),
	}
}

// defaultPool backs the LM kernels of the default dispatchers. It lives
// for the rest of the process.
var defaultPool = sync.OnceValue(func() *workerpool.Pool {
	return workerpool.New(0)
})

var (
	default64 = sync.OnceValue(func() *dispatch.Dispatcher64 {
		d := dispatch.New[complex128, float64]()
		Bootstrap(d, Builtin[complex128, float64](defaultPool(), 0)...)
		return d
	})
	default32 = sync.OnceValue(func() *dispatch.Dispatcher32 {
		d := dispatch.New[complex64, float32]()
		Bootstrap(d, Builtin[complex64, float32](defaultPool(), 0)...)
		return d
	})
)

// Default64 returns the process-wide double precision dispatcher with
// every built-in kernel registered. It is built on first call.
func Default64() *dispatch.Dispatcher64 { return default64() }

// Default32 returns the process-wide single precision dispatcher with
// every built-in kernel registered. It is built on first call.
func Default32() *dispatch.Dispatcher32 { return default32() }

// Select returns the first kernel of preferences that has a name in d. With
// no preferences it uses the order suited to the detected CPU, fastest
// first. If nothing matches it falls back to gates.KernelReference, or
// gates.KernelNone when d has no reference kernel either.
func Select[C dispatch.Complex, P dispatch.Precision](d *dispatch.Dispatcher[C, P], preferences ...gates.KernelType) gates.KernelType {
	return selectWhere(d, d.IsRegisteredKernel, preferences)
}

// SelectGate is Select restricted to kernels that implement op. Kernels
// implement different subsets of the catalogue, so callers dispatching a
// circuit pick a kernel per operation with SelectGate, SelectGenerator and
// SelectMatrix. When no preferred kernel implements op the fallback is the
// same as for Select, and dispatching then reports
// dispatch.ErrKernelNotRegistered.
func SelectGate[C dispatch.Complex, P dispatch.Precision](d *dispatch.Dispatcher[C, P], op gates.GateOperation, preferences ...gates.KernelType) gates.KernelType {
	return selectWhere(d, func(k gates.KernelType) bool { return d.IsGateRegistered(op, k) }, preferences)
}

// SelectGenerator is SelectGate for generators.
func SelectGenerator[C dispatch.Complex, P dispatch.Precision](d *dispatch.Dispatcher[C, P], op gates.GeneratorOperation, preferences ...gates.KernelType) gates.KernelType {
	return selectWhere(d, func(k gates.KernelType) bool { return d.IsGeneratorRegistered(op, k) }, preferences)
}

// SelectMatrix is SelectGate for matrix shapes.
func SelectMatrix[C dispatch.Complex, P dispatch.Precision](d *dispatch.Dispatcher[C, P], op gates.MatrixOperation, preferences ...gates.KernelType) gates.KernelType {
	return selectWhere(d, func(k gates.KernelType) bool { return d.IsMatrixRegistered(op, k) }, preferences)
}

func selectWhere[C dispatch.Complex, P dispatch.Precision](d *dispatch.Dispatcher[C, P], ok func(gates.KernelType) bool, preferences []gates.KernelType) gates.KernelType {
	if len(preferences) == 0 {
		preferences = preferenceOrder(cpuinfo.CurrentLevel())
	}
	for _, k := range preferences {
		if d.IsRegisteredKernel(k) && ok(k) {
			return k
		}
	}
	if d.IsRegisteredKernel(gates.KernelReference) {
		return gates.KernelReference
	}
	return gates.KernelNone
}

func preferenceOrder(level cpuinfo.Level) []gates.KernelType {
	switch level {
	case cpuinfo.AVX512:
		return []gates.KernelType{gates.KernelAVX512, gates.KernelAVX2, gates.KernelLM, gates.KernelReference}
	case cpuinfo.AVX2:
		return []gates.KernelType{gates.KernelAVX2, gates.KernelLM, gates.KernelReference}
	case cpuinfo.NEON:
		return []gates.KernelType{gates.KernelNEON, gates.KernelLM, gates.KernelReference}
	default:
		return []gates.KernelType{gates.KernelLM, gates.KernelReference}
	}
}
