// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"sync"
	"testing"
)

func TestAtomicFloat32(t *testing.T) {
	t.Parallel()

	af := NewAtomicFloat32(1.5)
	if got := af.Load(); got != 1.5 {
		t.Errorf("Load() = %v, want 1.5", got)
	}

	af.Store(-0.25)
	if got := af.Load(); got != -0.25 {
		t.Errorf("Load() = %v, want -0.25", got)
	}
}

func TestAtomicFloat32_ZeroValue(t *testing.T) {
	t.Parallel()

	var af AtomicFloat32
	if got := af.Load(); got != 0 {
		t.Errorf("Load() = %v, want 0", got)
	}
}

func TestAtomicFloat32_Concurrent(t *testing.T) {
	t.Parallel()

	var af AtomicFloat32
	var wg sync.WaitGroup

	// Concurrent stores of a fixed set of values; the final value must be
	// one of them, never a torn mix.
	values := []float32{0.1, 0.5, 1.0, 2.0}
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(v float32) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				af.Store(v)
				af.Load()
			}
		}(values[i%len(values)])
	}
	wg.Wait()

	got := af.Load()
	found := false
	for _, v := range values {
		if got == v {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Load() = %v, want one of %v", got, values)
	}
}
