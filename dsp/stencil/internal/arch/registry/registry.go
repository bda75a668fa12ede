// Package registry holds the 3x3 stencil kernel implementations available
// on this build and selects the best one for a given set of CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-stencil/internal/cpu"
)

// ChunkWidth is the number of output columns a CorrelateRowFn computes per
// iteration: two 4-lane float32 vectors.
const ChunkWidth = 8

// Taps holds the nine kernel coefficients in row-major order.
type Taps = [9]float32

// CopyFn copies count floats from src to dst.
type CopyFn func(dst, src []float32, count int)

// CorrelateRowFn computes dst[x] for x in [0, n) from three consecutive
// zero-padded rows:
//
//	acc = 0
//	acc += taps[0]*r0[x] + ... in order r0[x], r0[x+1], r0[x+2], r1[x], ..., r2[x+2]
//	dst[x] = acc
//
// n must be a multiple of ChunkWidth and every row must hold at least n+2
// elements. Each product is rounded to float32 before it is added.
type CorrelateRowFn func(dst, r0, r1, r2 []float32, taps *Taps, n int)

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	Name         string
	SIMDLevel    cpu.SIMDLevel
	Priority     int
	CopyFloats   CopyFn
	CorrelateRow CorrelateRowFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry the stencil package dispatches through.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features,
// or nil if none is.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupByName returns the named implementation if it is registered and
// supported by features.
func (r *OpRegistry) LookupByName(name string, features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if entry.Name == name && cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// ListEntries returns a copy of the entries, highest priority first.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)

	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}

	// Insertion sort, descending priority; the registry holds a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}

	r.sorted = true
}
