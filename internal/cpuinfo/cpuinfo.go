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

// Package cpuinfo reports the SIMD instruction set available at runtime.
// Kernel selection uses it to order kernel preferences; the dispatcher
// itself never looks at it.
package cpuinfo

import (
	"os"
	"strconv"
)

// Level represents a SIMD instruction set.
type Level int

const (
	// Scalar indicates no usable SIMD.
	Scalar Level = iota

	// SSE2 indicates 128-bit x86 SIMD (x86-64 baseline).
	SSE2

	// AVX2 indicates 256-bit x86 SIMD.
	AVX2

	// AVX512 indicates 512-bit x86 SIMD.
	AVX512

	// NEON indicates 128-bit ARM SIMD.
	NEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case Scalar:
		return "scalar"
	case SSE2:
		return "sse2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is set by init() in level_*.go files.
var currentLevel Level

// CurrentLevel returns the detected SIMD level.
func CurrentLevel() Level {
	return currentLevel
}

// NoSimdEnv reports whether LIGHTNING_NO_SIMD is set. When set, detection
// reports Scalar regardless of CPU capabilities, which forces kernel
// selection onto the portable kernels.
func NoSimdEnv() bool {
	val := os.Getenv("LIGHTNING_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value counts, except an explicit false.
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
