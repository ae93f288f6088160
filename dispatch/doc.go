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

// Package dispatch maps an operation and a kernel to an executable routine
// and applies it to a state vector.
//
// A Dispatcher holds three independent tables, one per operation family
// (gates, generators, dense matrices), each keyed by the pair (operation,
// kernel). Kernel modules fill them during start-up; afterwards callers
// select a kernel by identifier and apply operations by enumerator or by
// name.
//
// # Phases
//
// A Dispatcher has a build phase and an operate phase:
//
//	d := dispatch.New[complex128, float64]()
//	d.RegisterKernelName(gates.KernelReference, "Reference")
//	d.RegisterGate(gates.PauliX, gates.KernelReference, pauliX)
//	d.Seal()
//
//	err := d.ApplyOperationByName(gates.KernelReference, state, 1, "PauliX", []int{0}, false, nil)
//
// Registration is not synchronized. It must complete on one goroutine
// before any dispatch call; Seal marks the boundary and makes later
// registrations panic. Once sealed, every lookup and Apply method is
// read-only and safe for concurrent use. The state vector belongs to the
// caller and is never retained.
//
// # Registration
//
// Registration is insert-if-absent: the first callable registered for an
// (operation, kernel) pair wins and later attempts are ignored. Every
// Register method reports whether the callable was stored.
//
// # Errors
//
// Recoverable failures are returned as *Error values wrapping one of the
// sentinel kinds (ErrUnknownOperation, ErrKernelNotRegistered,
// ErrArgumentCountMismatch, ErrMatrixSizeMismatch, ErrUnknownKernel), so
// callers branch with errors.Is. All of them are detected before the state
// vector is touched. Contract violations, such as applying a matrix to
// more wires than the state has qubits, panic.
package dispatch
