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
	"context"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-lightning/dispatch"
	"github.com/ajroetker/go-lightning/gates"
)

type verifyOptions struct {
	qubits int
	seed   uint64
}

func newVerifyCmd(a *app) *cobra.Command {
	var o verifyOptions
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every kernel against the reference kernel",
		Long: `Apply every operation each kernel implements to random states, with
random wires and parameters, and compare the result with the reference
kernel. Checks run concurrently; the command fails if any result deviates.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Precision == 32 {
				return runVerify(cmd.Context(), cmd.OutOrStdout(), a, newDispatcher[complex64, float32](a), o, 1e-4)
			}
			return runVerify(cmd.Context(), cmd.OutOrStdout(), a, newDispatcher[complex128, float64](a), o, 1e-9)
		},
	}
	cmd.Flags().IntVarP(&o.qubits, "qubits", "n", 6, "number of qubits of the test states")
	cmd.Flags().Uint64Var(&o.seed, "seed", 1, "random seed")
	return cmd
}

// check compares one operation of kernel with the reference kernel and
// returns the largest amplitude deviation.
type check struct {
	kernel gates.KernelType
	label  string
	run    func(rng *rand.Rand) (float64, error)
}

func runVerify[C dispatch.Complex, P dispatch.Precision](ctx context.Context, w io.Writer, a *app,
	d *dispatch.Dispatcher[C, P], o verifyOptions, tol float64) error {
	if o.qubits < 4 || o.qubits > maxQubits {
		return fmt.Errorf("qubits must be between 4 and %d, got %d", maxQubits, o.qubits)
	}
	if !d.IsRegisteredKernel(gates.KernelReference) {
		return fmt.Errorf("verify: %w", &dispatch.Error{Kind: dispatch.ErrUnknownKernel, Op: "verify", Kernel: gates.KernelReference})
	}

	checks := verifyChecks(d, o.qubits)
	if len(checks) == 0 {
		fmt.Fprintln(w, "only the reference kernel is registered")
		return nil
	}

	devs := make([]float64, len(checks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.pool.NumWorkers())
	for i, c := range checks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dev, err := c.run(rand.New(rand.NewPCG(o.seed, uint64(i))))
			if err != nil {
				return fmt.Errorf("%s on %s: %w", c.label, c.kernel, err)
			}
			devs[i] = dev
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	agree := make(map[gates.KernelType]int)
	var mismatches int
	for i, c := range checks {
		if devs[i] > tol {
			mismatches++
			fmt.Fprintf(w, "MISMATCH %s %s: deviation %g\n", c.kernel, c.label, devs[i])
			continue
		}
		agree[c.kernel]++
	}
	for _, k := range d.RegisteredKernels() {
		if n, ok := agree[k]; ok {
			fmt.Fprintln(w, selectedStyle.Render(fmt.Sprintf("%s: %d operations agree with Reference", k, n)))
		}
	}
	a.log.WithFields(logrus.Fields{"checks": len(checks), "mismatches": mismatches}).Info("verification finished")
	if mismatches > 0 {
		return fmt.Errorf("%d of %d operations deviate from Reference", mismatches, len(checks))
	}
	return nil
}

func verifyChecks[C dispatch.Complex, P dispatch.Precision](d *dispatch.Dispatcher[C, P], n int) []check {
	ref := gates.KernelReference
	var checks []check
	for _, k := range d.RegisteredKernels() {
		if k == ref {
			continue
		}
		for _, op := range d.RegisteredGatesForKernel(k) {
			if !d.IsGateRegistered(op, ref) {
				continue
			}
			nw := gates.Lookup(gates.GateWires, op)
			if nw == 0 {
				nw = 3
			}
			checks = append(checks, check{k, op.String(), func(rng *rand.Rand) (float64, error) {
				wires := rng.Perm(n)[:nw]
				params := make([]P, gates.Lookup(gates.GateNumParams, op))
				for i := range params {
					params[i] = P(rng.Float64()*2*math.Pi - math.Pi)
				}
				var dev float64
				for _, inverse := range []bool{false, true} {
					want := randomState[C](rng, n)
					got := slices.Clone(want)
					if err := d.ApplyOperation(ref, want, n, op, wires, inverse, params); err != nil {
						return 0, err
					}
					if err := d.ApplyOperation(k, got, n, op, wires, inverse, params); err != nil {
						return 0, err
					}
					dev = max(dev, maxDeviation(want, got))
				}
				return dev, nil
			}})
		}

		for _, op := range d.RegisteredGeneratorsForKernel(k) {
			if !d.IsGeneratorRegistered(op, ref) {
				continue
			}
			nw := gates.Lookup(gates.GeneratorWires, op)
			if nw == 0 {
				nw = 3
			}
			checks = append(checks, check{k, op.String(), func(rng *rand.Rand) (float64, error) {
				wires := rng.Perm(n)[:nw]
				want := randomState[C](rng, n)
				got := slices.Clone(want)
				wantScale, err := d.ApplyGenerator(ref, want, n, op, wires, false)
				if err != nil {
					return 0, err
				}
				gotScale, err := d.ApplyGenerator(k, got, n, op, wires, false)
				if err != nil {
					return 0, err
				}
				if wantScale != gotScale {
					return math.Inf(1), nil
				}
				return maxDeviation(want, got), nil
			}})
		}

		for _, op := range d.RegisteredMatricesForKernel(k) {
			if !d.IsMatrixRegistered(op, ref) {
				continue
			}
			nw := map[gates.MatrixOperation]int{gates.SingleQubitOp: 1, gates.TwoQubitOp: 2, gates.MultiQubitOp: 3}[op]
			checks = append(checks, check{k, op.String(), func(rng *rand.Rand) (float64, error) {
				wires := rng.Perm(n)[:nw]
				matrix := randomState[C](rng, 2*nw)
				var dev float64
				for _, inverse := range []bool{false, true} {
					want := randomState[C](rng, n)
					got := slices.Clone(want)
					if err := d.ApplyMatrix(ref, want, n, matrix, wires, inverse); err != nil {
						return 0, err
					}
					if err := d.ApplyMatrix(k, got, n, matrix, wires, inverse); err != nil {
						return 0, err
					}
					dev = max(dev, maxDeviation(want, got))
				}
				return dev, nil
			}})
		}
	}
	return checks
}

// randomState returns a normalized random state on n qubits.
func randomState[C dispatch.Complex](rng *rand.Rand, n int) []C {
	data := make([]complex128, 1<<n)
	var norm float64
	for i := range data {
		data[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		norm += real(data[i])*real(data[i]) + imag(data[i])*imag(data[i])
	}
	out := make([]C, len(data))
	for i, v := range data {
		out[i] = C(v / complex(math.Sqrt(norm), 0))
	}
	return out
}

func maxDeviation[C dispatch.Complex](a, b []C) float64 {
	var dev float64
	for i := range a {
		dev = max(dev, cmplx.Abs(complex128(a[i])-complex128(b[i])))
	}
	return dev
}
