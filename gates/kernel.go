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

import "fmt"

// KernelType identifies an interchangeable implementation of the catalogue
// operations.
type KernelType int

const (
	// KernelNone is the zero value. No kernel registers under it.
	KernelNone KernelType = iota

	// KernelReference is the straightforward pure Go implementation.
	KernelReference

	// KernelLM uses bit-mask index loops and splits large states across
	// a worker pool.
	KernelLM

	// KernelAVX2 is reserved for kernels using 256-bit x86 SIMD.
	KernelAVX2

	// KernelAVX512 is reserved for kernels using 512-bit x86 SIMD.
	KernelAVX512

	// KernelNEON is reserved for kernels using ARM NEON.
	KernelNEON
)

// KernelNames maps every kernel identifier to its canonical name.
var KernelNames = []Pair[KernelType, string]{
	{KernelNone, "None"},
	{KernelReference, "Reference"},
	{KernelLM, "LM"},
	{KernelAVX2, "AVX2"},
	{KernelAVX512, "AVX512"},
	{KernelNEON, "NEON"},
}

// String returns the canonical name of the kernel.
func (k KernelType) String() string {
	if name, ok := find(KernelNames, k); ok {
		return name
	}
	return fmt.Sprintf("KernelType(%d)", int(k))
}

// ParseKernelType returns the kernel whose canonical name is name.
func ParseKernelType(name string) (KernelType, bool) {
	return ReverseLookup(KernelNames, name)
}
