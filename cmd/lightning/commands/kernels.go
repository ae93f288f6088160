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
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lightning/dispatch"
	"github.com/ajroetker/go-lightning/gates"
	"github.com/ajroetker/go-lightning/internal/cpuinfo"
)

func newKernelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "List registered kernels",
		Long: `List every kernel registered in the dispatcher with the number of gates,
generators and matrix shapes it implements. The kernel the current settings
resolve to is marked. With --kernel auto the marked kernel is preferred, and
operations it does not implement fall back to the next kernel that does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Precision == 32 {
				return listKernels(cmd.OutOrStdout(), a, newDispatcher[complex64, float32](a))
			}
			return listKernels(cmd.OutOrStdout(), a, newDispatcher[complex128, float64](a))
		},
	}
}

func listKernels[C dispatch.Complex, P dispatch.Precision](w io.Writer, a *app, d *dispatch.Dispatcher[C, P]) error {
	choice, err := kernelFor(a, d)
	if err != nil {
		return err
	}
	selected := choice.preferred()

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("CPU: %s/%s, SIMD level %s, precision %d",
		runtime.GOOS, runtime.GOARCH, cpuinfo.CurrentLevel(), a.cfg.Precision)))
	fmt.Fprintf(w, "%-12s %6s %11s %9s\n", "KERNEL", "GATES", "GENERATORS", "MATRICES")
	for _, k := range d.RegisteredKernels() {
		name, err := d.KernelName(k)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%-12s %6d %11d %9d", name,
			len(d.RegisteredGatesForKernel(k)),
			len(d.RegisteredGeneratorsForKernel(k)),
			len(d.RegisteredMatricesForKernel(k)))
		if k == selected {
			line = selectedStyle.Render(line + "  (selected)")
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

func newOpsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operations a kernel implements",
		Long: `List the gates, generators and matrix shapes implemented by the kernel
selected with --kernel (or picked automatically), followed by the catalogue
operations it does not implement.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Precision == 32 {
				return listOps(cmd.OutOrStdout(), a, newDispatcher[complex64, float32](a))
			}
			return listOps(cmd.OutOrStdout(), a, newDispatcher[complex128, float64](a))
		},
	}
}

func listOps[C dispatch.Complex, P dispatch.Precision](w io.Writer, a *app, d *dispatch.Dispatcher[C, P]) error {
	choice, err := kernelFor(a, d)
	if err != nil {
		return err
	}
	k := choice.preferred()
	name, err := d.KernelName(k)
	if err != nil {
		return err
	}

	gateOps := d.RegisteredGatesForKernel(k)
	missing := lo.FilterMap(gates.GateNames, func(p gates.Pair[gates.GateOperation, string], _ int) (string, bool) {
		return p.Value, p.Op != gates.GateMatrix && !d.IsGateRegistered(p.Op, k)
	})
	generators := lo.Map(d.RegisteredGeneratorsForKernel(k), func(op gates.GeneratorOperation, _ int) string {
		return strings.TrimPrefix(op.String(), gates.GeneratorPrefix)
	})

	fmt.Fprintln(w, headerStyle.Render("Kernel "+name))
	writeSection(w, "Gates", lo.Map(gateOps, func(op gates.GateOperation, _ int) string { return op.String() }))
	writeSection(w, "Generators", generators)
	writeSection(w, "Matrices", lo.Map(d.RegisteredMatricesForKernel(k), func(op gates.MatrixOperation, _ int) string { return op.String() }))
	writeSection(w, "Not implemented", missing)
	return nil
}

func writeSection(w io.Writer, title string, names []string) {
	fmt.Fprintf(w, "%s (%d):", title, len(names))
	if len(names) > 0 {
		fmt.Fprintf(w, " %s", strings.Join(names, " "))
	}
	fmt.Fprintln(w)
}
