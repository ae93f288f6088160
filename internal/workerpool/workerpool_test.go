// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelForCoversRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, tc := range []struct{ n, grain int }{{100, 1}, {100, 7}, {3, 1}, {1000, 2000}, {1, 0}} {
		hits := make([]int32, tc.n)
		pool.ParallelFor(tc.n, tc.grain, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d grain=%d: index %d visited %d times", tc.n, tc.grain, i, h)
			}
		}
	}
}

func TestParallelForGrainRunsInline(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var calls int
	pool.ParallelFor(10, 64, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("range = [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestParallelForEmpty(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	pool.ParallelFor(0, 1, func(start, end int) {
		t.Error("fn called for n=0")
	})
}

func TestClosedAndNilPoolRunSequentially(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close()

	var nilPool *Pool
	for _, p := range []*Pool{pool, nilPool} {
		var calls int
		p.ParallelFor(50, 1, func(start, end int) {
			calls++
			if start != 0 || end != 50 {
				t.Errorf("range = [%d, %d), want [0, 50)", start, end)
			}
		})
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	}
}
