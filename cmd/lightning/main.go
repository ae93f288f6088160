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

// Command lightning inspects the kernel registry and applies small circuits
// to basis states.
//
// Usage:
//
//	lightning kernels
//	lightning ops --kernel LM
//	lightning apply --qubits 2 --op Hadamard:0 --op CNOT:0,1
//	lightning apply --qubits 1 --op RX.inv:0:0.5 --matrix 0=0,1,1,0
//	lightning generator --qubits 2 --op IsingXX:0,1
//	lightning verify --qubits 6
package main

import (
	"os"

	"github.com/ajroetker/go-lightning/cmd/lightning/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
