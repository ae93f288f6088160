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

package kernels

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lightning/dispatch"
	"github.com/ajroetker/go-lightning/gates"
	"github.com/ajroetker/go-lightning/internal/cpuinfo"
)

// stubModule registers a single PauliX kernel that records its calls.
type stubModule struct {
	kernel gates.KernelType
	name   string
	calls  *int
}

func (m stubModule) Kernel() gates.KernelType { return m.kernel }
func (m stubModule) Name() string             { return m.name }

func (m stubModule) Register(d *dispatch.Dispatcher64) {
	d.RegisterGate(gates.PauliX, m.kernel, func([]complex128, int, []int, bool, []float64) {
		*m.calls++
	})
}

func TestBootstrapSeals(t *testing.T) {
	d := dispatch.New[complex128, float64]()
	Bootstrap(d, Builtin[complex128, float64](nil, 0)...)

	require.True(t, d.Sealed())
	require.Equal(t, []gates.KernelType{gates.KernelReference, gates.KernelLM}, d.RegisteredKernels())
	name, err := d.KernelName(gates.KernelLM)
	require.NoError(t, err)
	require.Equal(t, "LM", name)
	require.Panics(t, func() {
		d.RegisterKernelName(gates.KernelAVX2, "AVX2")
	})
}

func TestBootstrapFirstModuleWins(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	d := dispatch.New[complex128, float64](dispatch.WithLogger(logger))

	var first, second int
	Bootstrap[complex128, float64](d,
		stubModule{gates.KernelLM, "first", &first},
		stubModule{gates.KernelLM, "second", &second},
	)

	name, err := d.KernelName(gates.KernelLM)
	require.NoError(t, err)
	require.Equal(t, "first", name)

	require.NoError(t, d.ApplyOperation(gates.KernelLM, []complex128{1, 0}, 1, gates.PauliX, []int{0}, false, nil))
	require.Equal(t, 1, first)
	require.Equal(t, 0, second)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["kernel"] == gates.KernelLM {
			warned = true
		}
	}
	require.True(t, warned, "duplicate kernel name should be logged")
}

func TestDefaults(t *testing.T) {
	d64 := Default64()
	require.Same(t, d64, Default64())
	require.True(t, d64.Sealed())
	require.True(t, d64.IsGateRegistered(gates.Toffoli, gates.KernelReference))
	require.True(t, d64.IsMatrixRegistered(gates.MultiQubitOp, gates.KernelLM))

	d32 := Default32()
	require.Same(t, d32, Default32())
	require.Equal(t, d64.RegisteredKernels(), d32.RegisteredKernels())

	data := []complex64{1, 0}
	require.NoError(t, d32.ApplyOperationByName(Select(d32), data, 1, "PauliX", []int{0}, false, nil))
	require.Equal(t, []complex64{0, 1}, data)
}

func TestSelect(t *testing.T) {
	full := dispatch.New[complex128, float64]()
	Bootstrap(full, Builtin[complex128, float64](nil, 0)...)

	refOnly := dispatch.New[complex128, float64]()
	Bootstrap(refOnly, Builtin[complex128, float64](nil, 0)[:1]...)

	empty := dispatch.New[complex128, float64]()

	tests := []struct {
		name        string
		d           *dispatch.Dispatcher64
		preferences []gates.KernelType
		want        gates.KernelType
	}{
		{"auto", full, nil, gates.KernelLM},
		{"first available", full, []gates.KernelType{gates.KernelAVX512, gates.KernelReference, gates.KernelLM}, gates.KernelReference},
		{"unnamed kernels skipped", refOnly, []gates.KernelType{gates.KernelAVX2, gates.KernelLM}, gates.KernelReference},
		{"auto falls back", refOnly, nil, gates.KernelReference},
		{"nothing registered", empty, nil, gates.KernelNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.d, tt.preferences...); got != tt.want {
				t.Errorf("Select() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectPerOperation(t *testing.T) {
	full := dispatch.New[complex128, float64]()
	Bootstrap(full, Builtin[complex128, float64](nil, 0)...)

	empty := dispatch.New[complex128, float64]()

	// LM implements CNOT but not CRX or Toffoli.
	require.Equal(t, gates.KernelLM, SelectGate(full, gates.CNOT))
	require.Equal(t, gates.KernelReference, SelectGate(full, gates.CRX))
	require.Equal(t, gates.KernelReference, SelectGate(full, gates.Toffoli, gates.KernelAVX2, gates.KernelLM))
	require.Equal(t, gates.KernelReference, SelectGate(full, gates.CNOT, gates.KernelReference, gates.KernelLM))
	require.Equal(t, gates.KernelNone, SelectGate(empty, gates.CNOT))

	require.Equal(t, gates.KernelLM, SelectGenerator(full, gates.GeneratorRX))
	require.Equal(t, gates.KernelReference, SelectGenerator(full, gates.GeneratorIsingXX))
	require.Equal(t, gates.KernelReference, SelectGenerator(full, gates.GeneratorPhaseShift))

	require.Equal(t, gates.KernelLM, SelectMatrix(full, gates.TwoQubitOp))
	require.Equal(t, gates.KernelNone, SelectMatrix(empty, gates.MultiQubitOp))

	// Every catalogue gate resolves to a kernel that implements it.
	for _, p := range gates.GateNames {
		if p.Op == gates.GateMatrix {
			continue
		}
		k := SelectGate(full, p.Op)
		require.True(t, full.IsGateRegistered(p.Op, k), "%s on %s", p.Value, k)
	}
	for _, p := range gates.GeneratorNames {
		k := SelectGenerator(full, p.Op)
		require.True(t, full.IsGeneratorRegistered(p.Op, k), "%s on %s", p.Value, k)
	}
}

func TestPreferenceOrder(t *testing.T) {
	tests := []struct {
		level cpuinfo.Level
		want  []gates.KernelType
	}{
		{cpuinfo.AVX512, []gates.KernelType{gates.KernelAVX512, gates.KernelAVX2, gates.KernelLM, gates.KernelReference}},
		{cpuinfo.AVX2, []gates.KernelType{gates.KernelAVX2, gates.KernelLM, gates.KernelReference}},
		{cpuinfo.NEON, []gates.KernelType{gates.KernelNEON, gates.KernelLM, gates.KernelReference}},
		{cpuinfo.SSE2, []gates.KernelType{gates.KernelLM, gates.KernelReference}},
		{cpuinfo.Scalar, []gates.KernelType{gates.KernelLM, gates.KernelReference}},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, preferenceOrder(tt.level)); diff != "" {
				t.Errorf("preferenceOrder mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
