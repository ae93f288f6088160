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

package dispatch

import (
	"errors"
	"strings"

	"github.com/ajroetker/go-lightning/gates"
)

var (
	// ErrUnknownOperation indicates a gate or generator name that is not in
	// the catalogue.
	ErrUnknownOperation = errors.New("dispatch: unknown operation")
	// ErrKernelNotRegistered indicates no callable is registered for the
	// requested (operation, kernel) pair.
	ErrKernelNotRegistered = errors.New("dispatch: kernel not registered for operation")
	// ErrArgumentCountMismatch indicates the parallel slices of a batch
	// call have different lengths.
	ErrArgumentCountMismatch = errors.New("dispatch: argument count mismatch")
	// ErrMatrixSizeMismatch indicates a matrix whose length is not
	// 4^len(wires).
	ErrMatrixSizeMismatch = errors.New("dispatch: matrix size mismatch")
	// ErrUnknownKernel indicates a kernel without a registered name.
	ErrUnknownKernel = errors.New("dispatch: unknown kernel")
)

// Error describes a failed dispatch call. Kind is one of the sentinel
// errors above and is what errors.Is matches against.
type Error struct {
	Kind error

	// Op is the dispatcher method that failed, e.g. "ApplyOperation".
	Op string

	// Operation is the requested operation: its catalogue name, or the
	// unresolved string for ErrUnknownOperation. Empty if not applicable.
	Operation string

	// Kernel is the requested kernel; KernelNone if not applicable.
	Kernel gates.KernelType

	// Detail is an optional free-form explanation.
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	} else {
		b.WriteString("dispatch: error")
	}
	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}
	if e.Operation != "" {
		b.WriteString(": operation ")
		b.WriteString(e.Operation)
	}
	if e.Kernel != gates.KernelNone {
		b.WriteString(", kernel ")
		b.WriteString(e.Kernel.String())
	}
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}
	return b.String()
}

// Unwrap returns Kind.
func (e *Error) Unwrap() error { return e.Kind }
