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
	"errors"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lightning/dispatch"
	"github.com/ajroetker/go-lightning/gates"
)

type applyOptions struct {
	qubits   int
	state    int
	ops      []string
	matrices []string
	inverse  bool
}

func newApplyCmd(a *app) *cobra.Command {
	var o applyOptions
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a circuit to a basis state",
		Long: `Apply a sequence of gates, then dense matrices, to a computational basis
state and print the resulting amplitudes.

Gates are given as NAME[.inv]:WIRES[:PARAMS], for example
  --op Hadamard:0 --op CNOT:0,1 --op RX.inv:1:0.25 --op GlobalPhase::0.3
Matrices are given as WIRES=ENTRIES in row-major order, for example
  --matrix 0=0,1,1,0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(o.ops) == 0 && len(o.matrices) == 0 {
				return errors.New("nothing to apply: give at least one --op or --matrix")
			}
			if a.cfg.Precision == 32 {
				return runApply(cmd.OutOrStdout(), a, newDispatcher[complex64, float32](a), o)
			}
			return runApply(cmd.OutOrStdout(), a, newDispatcher[complex128, float64](a), o)
		},
	}
	cmd.Flags().IntVarP(&o.qubits, "qubits", "n", 1, "number of qubits")
	cmd.Flags().IntVar(&o.state, "state", 0, "initial basis state index (wire 0 is the most significant bit)")
	cmd.Flags().StringArrayVar(&o.ops, "op", nil, "gate to apply, NAME[.inv]:WIRES[:PARAMS] (repeatable)")
	cmd.Flags().StringArrayVar(&o.matrices, "matrix", nil, "dense matrix to apply, WIRES=ENTRIES (repeatable)")
	cmd.Flags().BoolVar(&o.inverse, "matrix-inverse", false, "apply the conjugate transpose of every --matrix")
	return cmd
}

func runApply[C dispatch.Complex, P dispatch.Precision](w io.Writer, a *app, d *dispatch.Dispatcher[C, P], o applyOptions) error {
	choice, err := kernelFor(a, d)
	if err != nil {
		return err
	}
	data, err := basisState[C](o.qubits, o.state)
	if err != nil {
		return err
	}

	specs := make([]opSpec, len(o.ops))
	for i, s := range o.ops {
		if specs[i], err = parseOp(s); err != nil {
			return err
		}
		if err := checkOp(specs[i], o.qubits); err != nil {
			return err
		}
	}
	mats := make([]matrixSpec, len(o.matrices))
	for i, s := range o.matrices {
		if mats[i], err = parseMatrix(s); err != nil {
			return err
		}
		if err := checkWires(mats[i].wires, o.qubits); err != nil {
			return fmt.Errorf("matrix %q: %w", s, err)
		}
	}

	used := make(map[gates.KernelType]bool)
	for i, s := range specs {
		op, err := d.GateOperationFor(s.name)
		if err != nil {
			return fmt.Errorf("operation %d of %d: %w", i, len(specs), err)
		}
		kernel := choice.gate(op)
		used[kernel] = true
		if err := d.ApplyOperation(kernel, data, o.qubits, op, s.wires, s.inverse, toPrecision[P](s.params)); err != nil {
			return fmt.Errorf("operation %d of %d: %w", i, len(specs), err)
		}
	}
	for _, m := range mats {
		kernel := choice.matrix(dispatch.ClassifyMatrix(len(m.wires)))
		used[kernel] = true
		matrix := lo.Map(m.entries, func(e complex128, _ int) C { return C(e) })
		if err := d.ApplyMatrix(kernel, data, o.qubits, matrix, m.wires, o.inverse); err != nil {
			return err
		}
	}

	a.log.WithFields(logrus.Fields{
		"kernels":  lo.Keys(used),
		"ops":      len(specs),
		"matrices": len(mats),
	}).Info("circuit applied")
	writeState(w, o.qubits, data)
	return nil
}

type generatorOptions struct {
	qubits  int
	state   int
	op      string
	adjoint bool
}

func newGeneratorCmd(a *app) *cobra.Command {
	var o generatorOptions
	cmd := &cobra.Command{
		Use:   "generator",
		Short: "Apply the generator of a parametric gate to a basis state",
		Long: `Apply the generator of a parametric gate, named without the "Generator"
prefix, and print its scale factor and the resulting amplitudes. The gate is
exp(i * scale * theta * G) for generator G.

  lightning generator --qubits 2 --op IsingXX:0,1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Precision == 32 {
				return runGenerator(cmd.OutOrStdout(), a, newDispatcher[complex64, float32](a), o)
			}
			return runGenerator(cmd.OutOrStdout(), a, newDispatcher[complex128, float64](a), o)
		},
	}
	cmd.Flags().IntVarP(&o.qubits, "qubits", "n", 1, "number of qubits")
	cmd.Flags().IntVar(&o.state, "state", 0, "initial basis state index")
	cmd.Flags().StringVar(&o.op, "op", "", "generator to apply, NAME:WIRES")
	cmd.Flags().BoolVar(&o.adjoint, "adjoint", false, "apply the adjoint generator")
	_ = cmd.MarkFlagRequired("op")
	return cmd
}

func runGenerator[C dispatch.Complex, P dispatch.Precision](w io.Writer, a *app, d *dispatch.Dispatcher[C, P], o generatorOptions) error {
	choice, err := kernelFor(a, d)
	if err != nil {
		return err
	}
	data, err := basisState[C](o.qubits, o.state)
	if err != nil {
		return err
	}
	spec, err := parseOp(o.op)
	if err != nil {
		return err
	}
	if err := checkWires(spec.wires, o.qubits); err != nil {
		return fmt.Errorf("%s: %w", spec.name, err)
	}
	op, err := d.GeneratorOperationFor(spec.name)
	if err != nil {
		return err
	}
	if want := gates.Lookup(gates.GeneratorWires, op); want != 0 && len(spec.wires) != want {
		return fmt.Errorf("%s acts on %d wires, got %d", spec.name, want, len(spec.wires))
	}

	scale, err := d.ApplyGeneratorByName(choice.generator(op), data, o.qubits, spec.name, spec.wires, o.adjoint)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "scale %g\n", float64(scale))
	writeState(w, o.qubits, data)
	return nil
}
