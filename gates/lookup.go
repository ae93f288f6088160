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
	"fmt"
	"strings"
)

// Lookup returns the value associated with op in table.
//
// Panics if op is not in the table: the tables are static, so a miss is a
// programming error.
func Lookup[K comparable, V any](table []Pair[K, V], op K) V {
	v, ok := find(table, op)
	if !ok {
		panic(fmt.Sprintf("gates: %v is not in the table", op))
	}
	return v
}

// ReverseLookup returns the enumerator associated with value in table.
func ReverseLookup[K, V comparable](table []Pair[K, V], value V) (K, bool) {
	for _, p := range table {
		if p.Value == value {
			return p.Op, true
		}
	}
	var zero K
	return zero, false
}

// GeneratorNamesWithoutPrefix returns GeneratorNames with the "Generator"
// prefix removed from every name, in the same order.
func GeneratorNamesWithoutPrefix() []Pair[GeneratorOperation, string] {
	res := make([]Pair[GeneratorOperation, string], len(GeneratorNames))
	for i, p := range GeneratorNames {
		res[i] = Pair[GeneratorOperation, string]{p.Op, strings.TrimPrefix(p.Value, GeneratorPrefix)}
	}
	return res
}

func find[K comparable, V any](table []Pair[K, V], op K) (V, bool) {
	for _, p := range table {
		if p.Op == op {
			return p.Value, true
		}
	}
	var zero V
	return zero, false
}
