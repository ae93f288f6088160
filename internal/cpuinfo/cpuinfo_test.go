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

package cpuinfo

import (
	"runtime"
	"testing"
)

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("LIGHTNING_NO_SIMD", tt.val)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectHonoursNoSimd(t *testing.T) {
	t.Setenv("LIGHTNING_NO_SIMD", "1")
	if got := detect(); got != Scalar {
		t.Errorf("detect() = %v, want scalar", got)
	}
}

func TestDetectMatchesArch(t *testing.T) {
	t.Setenv("LIGHTNING_NO_SIMD", "")
	got := detect()
	switch runtime.GOARCH {
	case "amd64":
		if got != SSE2 && got != AVX2 && got != AVX512 {
			t.Errorf("detect() = %v on amd64", got)
		}
	case "arm64":
		if got != NEON && got != Scalar {
			t.Errorf("detect() = %v on arm64", got)
		}
	default:
		if got != Scalar {
			t.Errorf("detect() = %v, want scalar", got)
		}
	}
}

func TestLevelString(t *testing.T) {
	for l, want := range map[Level]string{Scalar: "scalar", SSE2: "sse2", AVX2: "avx2", AVX512: "avx512", NEON: "neon", Level(99): "unknown"} {
		if got := l.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(l), got, want)
		}
	}
}
