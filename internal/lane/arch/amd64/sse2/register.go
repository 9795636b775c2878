//go:build amd64 && !purego

// Package sse2 registers the SSE2-tier lane width: 4 (float32) / 2
// (float64), the amd64 architectural baseline.
package sse2

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/cascadeiir/internal/lane/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		WidthF32:  4,
		WidthF64:  2,
		MulAddF32: mulAddF32,
		MulAddF64: mulAddF64,
	})
}

// mulAddF32 is a 2x-unrolled scalar kernel selected for SSE2-capable
// CPUs. TODO: replace with an explicit SSE2 asm kernel.
func mulAddF32(dst, src []float32, scalar float32) {
	i := 0
	n := len(dst)
	for ; i+1 < n; i += 2 {
		dst[i] += src[i] * scalar
		dst[i+1] += src[i+1] * scalar
	}
	for ; i < n; i++ {
		dst[i] += src[i] * scalar
	}
}

func mulAddF64(dst, src []float64, scalar float64) {
	i := 0
	n := len(dst)
	for ; i+1 < n; i += 2 {
		dst[i] += src[i] * scalar
		dst[i+1] += src[i+1] * scalar
	}
	for ; i < n; i++ {
		dst[i] += src[i] * scalar
	}
}
