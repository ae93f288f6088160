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
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lightning/dispatch"
)

// run executes the command tree with args and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root, a := newRootCmd()
	t.Cleanup(a.close)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParseOp(t *testing.T) {
	tests := []struct {
		in      string
		want    opSpec
		wantErr bool
	}{
		{in: "PauliX:0", want: opSpec{name: "PauliX", wires: []int{0}}},
		{in: "CNOT:0,1", want: opSpec{name: "CNOT", wires: []int{0, 1}}},
		{in: "RX.inv:1:0.5", want: opSpec{name: "RX", wires: []int{1}, params: []float64{0.5}, inverse: true}},
		{in: "Rot:2:0.1, 0.2 ,0.3", want: opSpec{name: "Rot", wires: []int{2}, params: []float64{0.1, 0.2, 0.3}}},
		{in: "GlobalPhase::0.3", want: opSpec{name: "GlobalPhase", params: []float64{0.3}}},
		{in: "Identity", want: opSpec{name: "Identity"}},
		{in: ":0", wantErr: true},
		{in: "PauliX:a", wantErr: true},
		{in: "RX:0:x", wantErr: true},
		{in: "RX:0:1:2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseOp(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(opSpec{})); diff != "" {
				t.Errorf("parseOp(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseMatrix(t *testing.T) {
	got, err := parseMatrix("1=0,1i,-1i,0")
	require.NoError(t, err)
	require.Equal(t, []int{1}, got.wires)
	require.Equal(t, []complex128{0, 1i, -1i, 0}, got.entries)

	_, err = parseMatrix("0,1")
	require.Error(t, err)
	_, err = parseMatrix("0=1,x")
	require.Error(t, err)
}

func TestCheckOp(t *testing.T) {
	tests := []struct {
		in      string
		qubits  int
		wantErr string
	}{
		{"CNOT:0,1", 2, ""},
		{"CNOT:0", 2, "acts on 2 wires"},
		{"CNOT:0,0", 2, "repeated"},
		{"PauliX:2", 2, "out of range"},
		{"RX:0", 1, "takes 1 parameters"},
		{"MultiRZ:0,1,2:0.5", 3, ""},
		{"Matrix:0", 1, "--matrix"},
		{"NotAGate:0", 1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			spec, err := parseOp(tt.in)
			require.NoError(t, err)
			err = checkOp(spec, tt.qubits)
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestApplyBellState(t *testing.T) {
	for _, kernel := range []string{"Reference", "LM", "auto"} {
		for _, precision := range []string{"64", "32"} {
			t.Run(kernel+"/"+precision, func(t *testing.T) {
				out, err := run(t, "apply", "--kernel", kernel, "--precision", precision,
					"--qubits", "2", "--op", "Hadamard:0", "--op", "CNOT:0,1")
				require.NoError(t, err)
				require.Equal(t, "|00⟩  +0.707107+0.000000i\n|11⟩  +0.707107+0.000000i\n", out)
			})
		}
	}
}

func TestApplyInverseAndMatrix(t *testing.T) {
	out, err := run(t, "apply", "--qubits", "1",
		"--op", "RX:0:0.7", "--op", "RX.inv:0:0.7", "--matrix", "0=0,1,1,0")
	require.NoError(t, err)
	require.Equal(t, "|1⟩  +1.000000+0.000000i\n", out)

	out, err = run(t, "apply", "--qubits", "1", "--state", "1", "--matrix", "0=1,0,0,1i", "--matrix-inverse")
	require.NoError(t, err)
	require.Equal(t, "|1⟩  +0.000000-1.000000i\n", out)
}

func TestApplyAutoMixesKernels(t *testing.T) {
	// LM implements Hadamard and CNOT but not CRX or Toffoli; the default
	// kernel setting falls back to Reference for those.
	for _, precision := range []string{"64", "32"} {
		t.Run(precision, func(t *testing.T) {
			out, err := run(t, "apply", "--precision", precision, "--qubits", "2", "--state", "2", "--op", "CRX:0,1:0.5")
			require.NoError(t, err)
			require.Contains(t, out, "|10⟩  +0.968912")
			require.Contains(t, out, "-0.247404i")

			out, err = run(t, "apply", "--precision", precision, "--qubits", "3",
				"--op", "Hadamard:0", "--op", "CNOT:0,1", "--op", "Toffoli:0,1,2", "--matrix", "0,1,2=" + identity(8))
			require.NoError(t, err)
			require.Equal(t, "|000⟩  +0.707107+0.000000i\n|111⟩  +0.707107+0.000000i\n", out)
		})
	}
}

// identity returns the entries of the dim x dim identity matrix in the
// --matrix syntax.
func identity(dim int) string {
	entries := make([]string, dim*dim)
	for i := range entries {
		entries[i] = "0"
		if i%(dim+1) == 0 {
			entries[i] = "1"
		}
	}
	return strings.Join(entries, ",")
}

func TestApplyErrors(t *testing.T) {
	_, err := run(t, "apply", "--qubits", "1", "--op", "Bogus:0")
	require.ErrorIs(t, err, dispatch.ErrUnknownOperation)

	_, err = run(t, "apply", "--kernel", "LM", "--qubits", "3", "--op", "Toffoli:0,1,2")
	require.ErrorIs(t, err, dispatch.ErrKernelNotRegistered)

	_, err = run(t, "apply", "--qubits", "2", "--matrix", "0,1=1,0,0,1")
	require.ErrorIs(t, err, dispatch.ErrMatrixSizeMismatch)

	_, err = run(t, "apply", "--kernel", "AVX2", "--qubits", "1", "--op", "PauliX:0")
	require.ErrorIs(t, err, dispatch.ErrUnknownKernel)

	_, err = run(t, "apply", "--qubits", "1", "--state", "2", "--op", "PauliX:0")
	require.ErrorContains(t, err, "out of range")

	_, err = run(t, "apply", "--qubits", "1")
	require.ErrorContains(t, err, "nothing to apply")
}

func TestGenerator(t *testing.T) {
	for _, kernel := range []string{"Reference", "auto"} {
		out, err := run(t, "generator", "--kernel", kernel, "--qubits", "2", "--op", "IsingXX:0,1")
		require.NoError(t, err, kernel)
		require.Equal(t, "scale -0.5\n|11⟩  +1.000000+0.000000i\n", out)
	}

	// The default kernel setting picks a kernel for each generator.
	out, err := run(t, "generator", "--qubits", "1", "--state", "1", "--op", "PhaseShift:0")
	require.NoError(t, err)
	require.Equal(t, "scale 1\n|1⟩  +1.000000+0.000000i\n", out)

	out, err = run(t, "generator", "--qubits", "1", "--op", "RX:0")
	require.NoError(t, err)
	require.Equal(t, "scale -0.5\n|1⟩  +1.000000+0.000000i\n", out)

	_, err = run(t, "generator", "--kernel", "LM", "--qubits", "1", "--op", "PhaseShift:0")
	require.ErrorIs(t, err, dispatch.ErrKernelNotRegistered)

	_, err = run(t, "generator", "--qubits", "1", "--op", "Hadamard:0")
	require.ErrorIs(t, err, dispatch.ErrUnknownOperation)

	_, err = run(t, "generator", "--qubits", "2", "--op", "RX:0,1")
	require.ErrorContains(t, err, "acts on 1 wires")
}

func TestKernelsAndOps(t *testing.T) {
	out, err := run(t, "kernels", "--kernel", "Reference")
	require.NoError(t, err)
	require.Contains(t, out, "Reference")
	require.Contains(t, out, "LM")
	require.Contains(t, out, "(selected)")

	out, err = run(t, "ops", "--kernel", "LM")
	require.NoError(t, err)
	require.Contains(t, out, "Kernel LM")
	require.Contains(t, out, "Generators (3): RX RY RZ")
	require.Contains(t, out, "Matrices (3): SingleQubitOp TwoQubitOp MultiQubitOp")
	require.Contains(t, out, "Toffoli")

	out, err = run(t, "ops", "--kernel", "Reference")
	require.NoError(t, err)
	require.Contains(t, out, "Not implemented (0):")
}

func TestVerify(t *testing.T) {
	for _, precision := range []string{"64", "32"} {
		t.Run(precision, func(t *testing.T) {
			out, err := run(t, "verify", "--precision", precision, "--qubits", "5", "--lm-threshold", "3", "--lm-workers", "2")
			require.NoError(t, err)
			require.Contains(t, out, "LM: 19 operations agree with Reference")
			require.NotContains(t, out, "MISMATCH")
		})
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, "lightning v"+version+"\n", out)
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "kernels", "--precision", "16")
	require.ErrorContains(t, err, "precision")
}
