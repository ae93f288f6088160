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
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-lightning/gates"
	"github.com/ajroetker/go-lightning/internal/logging"
)

// Complex is the element type of a state vector.
type Complex interface {
	~complex64 | ~complex128
}

// Precision is the type of gate parameters and generator scale factors.
type Precision interface {
	~float32 | ~float64
}

// GateFunc applies a gate to data in place. params holds the gate
// parameters; it is empty for non-parametric gates.
type GateFunc[C Complex, P Precision] func(data []C, numQubits int, wires []int, inverse bool, params []P)

// GeneratorFunc applies the generator of a parametric gate to data in place
// and returns its scale factor.
type GeneratorFunc[C Complex, P Precision] func(data []C, numQubits int, wires []int, adjoint bool) P

// MatrixFunc applies a dense row-major matrix over wires to data in place.
type MatrixFunc[C Complex] func(data []C, numQubits int, matrix []C, wires []int, inverse bool)

// opKey is the registry key shared by the three operation families.
type opKey[O comparable] struct {
	op     O
	kernel gates.KernelType
}

// Dispatcher is the kernel registry and dispatch façade for one state
// vector precision. The zero value is not usable; create one with New.
type Dispatcher[C Complex, P Precision] struct {
	strToGates      map[string]gates.GateOperation
	strToGenerators map[string]gates.GeneratorOperation

	gateKernels      map[opKey[gates.GateOperation]]GateFunc[C, P]
	generatorKernels map[opKey[gates.GeneratorOperation]]GeneratorFunc[C, P]
	matrixKernels    map[opKey[gates.MatrixOperation]]MatrixFunc[C]

	kernelNames map[gates.KernelType]string

	sealed atomic.Bool
	log    logrus.FieldLogger
}

// Dispatcher64 dispatches on double precision state vectors.
type Dispatcher64 = Dispatcher[complex128, float64]

// Dispatcher32 dispatches on single precision state vectors.
type Dispatcher32 = Dispatcher[complex64, float32]

// Option configures a Dispatcher.
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

// WithLogger sets the logger used to report registration outcomes.
// By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

// New creates an empty Dispatcher whose name tables are built from the
// gate catalogue.
func New[C Complex, P Precision](opts ...Option) *Dispatcher[C, P] {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.log == nil {
		o.log = logging.Discard()
	}

	d := &Dispatcher[C, P]{
		strToGates:       make(map[string]gates.GateOperation, len(gates.GateNames)),
		strToGenerators:  make(map[string]gates.GeneratorOperation, len(gates.GeneratorNames)),
		gateKernels:      make(map[opKey[gates.GateOperation]]GateFunc[C, P]),
		generatorKernels: make(map[opKey[gates.GeneratorOperation]]GeneratorFunc[C, P]),
		matrixKernels:    make(map[opKey[gates.MatrixOperation]]MatrixFunc[C]),
		kernelNames:      make(map[gates.KernelType]string),
		log:              o.log,
	}
	for _, p := range gates.GateNames {
		d.strToGates[p.Value] = p.Op
	}
	for _, p := range gates.GeneratorNamesWithoutPrefix() {
		d.strToGenerators[p.Value] = p.Op
	}
	return d
}

// Seal ends the build phase. Any later Register call panics. Seal is
// idempotent and reports whether this call changed the state.
func (d *Dispatcher[C, P]) Seal() bool {
	changed := !d.sealed.Swap(true)
	if changed {
		d.log.WithFields(logrus.Fields{
			"kernels":    len(d.kernelNames),
			"gates":      len(d.gateKernels),
			"generators": len(d.generatorKernels),
			"matrices":   len(d.matrixKernels),
		}).Debug("dispatcher sealed")
	}
	return changed
}

// Sealed reports whether Seal has been called.
func (d *Dispatcher[C, P]) Sealed() bool { return d.sealed.Load() }

// Logger returns the logger given by WithLogger.
func (d *Dispatcher[C, P]) Logger() logrus.FieldLogger { return d.log }

// GateOperationFor returns the gate whose catalogue name is name.
func (d *Dispatcher[C, P]) GateOperationFor(name string) (gates.GateOperation, error) {
	op, ok := d.strToGates[name]
	if !ok {
		return 0, &Error{Kind: ErrUnknownOperation, Op: "GateOperationFor", Operation: name}
	}
	return op, nil
}

// HasGateOperation reports whether name is a gate in the catalogue.
func (d *Dispatcher[C, P]) HasGateOperation(name string) bool {
	_, ok := d.strToGates[name]
	return ok
}

// GeneratorOperationFor returns the generator whose catalogue name, without
// the "Generator" prefix, is name. For example "RX" resolves to
// gates.GeneratorRX.
func (d *Dispatcher[C, P]) GeneratorOperationFor(name string) (gates.GeneratorOperation, error) {
	op, ok := d.strToGenerators[name]
	if !ok {
		return 0, &Error{Kind: ErrUnknownOperation, Op: "GeneratorOperationFor", Operation: name}
	}
	return op, nil
}
