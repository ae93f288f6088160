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

package gates

import (
	"strings"
	"testing"
)

func TestTablesCoverEveryEnumerator(t *testing.T) {
	for op := Identity; op <= GateMatrix; op++ {
		if _, ok := find(GateNames, op); !ok {
			t.Errorf("GateNames missing %d", op)
		}
		if _, ok := find(GateWires, op); !ok {
			t.Errorf("GateWires missing %v", op)
		}
		if _, ok := find(GateNumParams, op); !ok {
			t.Errorf("GateNumParams missing %v", op)
		}
	}
	for op := GeneratorPhaseShift; op <= GeneratorGlobalPhase; op++ {
		if _, ok := find(GeneratorNames, op); !ok {
			t.Errorf("GeneratorNames missing %d", op)
		}
		if _, ok := find(GeneratorWires, op); !ok {
			t.Errorf("GeneratorWires missing %v", op)
		}
	}
	for op := SingleQubitOp; op <= MultiQubitOp; op++ {
		if _, ok := find(MatrixNames, op); !ok {
			t.Errorf("MatrixNames missing %d", op)
		}
	}
}

func TestNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range GateNames {
		if seen[p.Value] {
			t.Errorf("duplicate gate name %q", p.Value)
		}
		seen[p.Value] = true
	}
	seen = map[string]bool{}
	for _, p := range GeneratorNames {
		if seen[p.Value] {
			t.Errorf("duplicate generator name %q", p.Value)
		}
		seen[p.Value] = true
		if !strings.HasPrefix(p.Value, GeneratorPrefix) {
			t.Errorf("generator name %q lacks the %q prefix", p.Value, GeneratorPrefix)
		}
	}
}

func TestGateNameRoundTrip(t *testing.T) {
	for _, p := range GateNames {
		op, ok := ReverseLookup(GateNames, p.Value)
		if !ok || op != p.Op {
			t.Errorf("ReverseLookup(%q) = %v, %v; want %v", p.Value, op, ok, p.Op)
		}
		if got := Lookup(GateNames, op); got != p.Value {
			t.Errorf("Lookup(%v) = %q, want %q", op, got, p.Value)
		}
		if got := op.String(); got != p.Value {
			t.Errorf("String() = %q, want %q", got, p.Value)
		}
	}
}

func TestGeneratorNamesWithoutPrefix(t *testing.T) {
	stripped := GeneratorNamesWithoutPrefix()
	if len(stripped) != len(GeneratorNames) {
		t.Fatalf("len = %d, want %d", len(stripped), len(GeneratorNames))
	}
	for i, p := range stripped {
		if p.Op != GeneratorNames[i].Op {
			t.Errorf("[%d].Op = %v, want %v", i, p.Op, GeneratorNames[i].Op)
		}
		if GeneratorPrefix+p.Value != GeneratorNames[i].Value {
			t.Errorf("[%d] = %q, want suffix of %q", i, p.Value, GeneratorNames[i].Value)
		}
	}

	op, ok := ReverseLookup(stripped, "RX")
	if !ok || op != GeneratorRX {
		t.Errorf("ReverseLookup(RX) = %v, %v", op, ok)
	}
	if _, ok := ReverseLookup(stripped, "GeneratorRX"); ok {
		t.Error("prefixed name should not match the stripped table")
	}
}

func TestStringUnknown(t *testing.T) {
	if got := GateOperation(999).String(); got != "GateOperation(999)" {
		t.Errorf("got %q", got)
	}
	if got := GeneratorOperation(-1).String(); got != "GeneratorOperation(-1)" {
		t.Errorf("got %q", got)
	}
	if got := MatrixOperation(7).String(); got != "MatrixOperation(7)" {
		t.Errorf("got %q", got)
	}
	if got := KernelType(42).String(); got != "KernelType(42)" {
		t.Errorf("got %q", got)
	}
}

func TestLookupPanicsOnMiss(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Lookup of an unknown operation should panic")
		}
	}()
	Lookup(MatrixNames, MatrixOperation(99))
}

func TestParseKernelType(t *testing.T) {
	for _, p := range KernelNames {
		k, ok := ParseKernelType(p.Value)
		if !ok || k != p.Op {
			t.Errorf("ParseKernelType(%q) = %v, %v", p.Value, k, ok)
		}
	}
	if _, ok := ParseKernelType("reference"); ok {
		t.Error("kernel names are case sensitive")
	}
}

func TestShapes(t *testing.T) {
	tests := []struct {
		op     GateOperation
		wires  int
		params int
	}{
		{PauliX, 1, 0},
		{Rot, 1, 3},
		{CNOT, 2, 0},
		{CRot, 2, 3},
		{DoubleExcitation, 4, 1},
		{Toffoli, 3, 0},
		{MultiRZ, 0, 1},
		{GateMatrix, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if got := Lookup(GateWires, tt.op); got != tt.wires {
				t.Errorf("wires = %d, want %d", got, tt.wires)
			}
			if got := Lookup(GateNumParams, tt.op); got != tt.params {
				t.Errorf("params = %d, want %d", got, tt.params)
			}
		})
	}
}
