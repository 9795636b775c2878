package lane

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/cascadeiir/internal/block"
	"github.com/cwbudde/cascadeiir/internal/lane/registry"
)

var (
	selectOnce sync.Once
	selected   *registry.OpEntry
)

func selectTier() {
	selected = registry.Global.Lookup(cpu.DetectFeatures())
	if selected == nil {
		panic("lane: no kernel tier registered (missing generic fallback?)")
	}
}

// Width returns the SIMD lane count M for sample type T, chosen once
// from the running CPU's instruction set (spec: >=AVX-512 -> 16/8,
// >=AVX2 -> 8/4, else 4/2).
func Width[T block.Sample]() int {
	selectOnce.Do(selectTier)

	var zero T
	switch any(zero).(type) {
	case float32:
		return selected.WidthF32
	case float64:
		return selected.WidthF64
	default:
		panic("lane: unsupported sample type")
	}
}

// TierName returns the name of the currently selected kernel tier
// (e.g. "avx2", "generic"). Intended for diagnostics and tests.
func TierName() string {
	selectOnce.Do(selectTier)
	return selected.Name
}
