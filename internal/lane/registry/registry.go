// Package registry is the kernel-tier registry for internal/lane,
// grounded on dsp/filter/biquad/internal/arch/registry's OpEntry /
// OpRegistry pattern: per-architecture packages Register a tier at
// init() time, and the first lookup picks the highest-priority tier the
// running CPU supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// OpEntry is one registered lane-width tier.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	// WidthF32/WidthF64 are the SIMD lane count (M) this tier selects
	// for float32/float64 sample streams respectively.
	WidthF32 int
	WidthF64 int

	// MulAddF32/MulAddF64 perform dst[i] += src[i]*scalar for the
	// sample type matching the suffix. Both are required; a tier with
	// no real vector instructions behind it (yet) still registers a
	// scalar-but-tiered loop, matching the teacher's own avx2 kernel
	// (an unrolled scalar loop with a TODO to add real asm).
	MulAddF32 func(dst, src []float32, scalar float32)
	MulAddF64 func(dst, src []float64, scalar float64)
}

// OpRegistry stores available lane-width tiers.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default lane-tier registry.
var Global = &OpRegistry{}

// Register adds a tier entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority tier supported by features, or
// nil if none is registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

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

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the registered entries, for tests.
func (r *OpRegistry) ListEntries() []OpEntry {
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
