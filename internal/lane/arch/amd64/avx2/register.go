//go:build amd64 && !purego

// Package avx2 registers the AVX2-tier lane width: 8 (float32) / 4
// (float64).
package avx2

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/cascadeiir/internal/lane/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		WidthF32:  8,
		WidthF64:  4,
		MulAddF32: mulAddF32,
		MulAddF64: mulAddF64,
	})
}

// mulAddF32 is a 4x-unrolled scalar kernel selected for AVX2-capable
// CPUs. TODO: replace with explicit AVX2 asm kernel.
func mulAddF32(dst, src []float32, scalar float32) {
	i := 0
	n := len(dst)
	for ; i+3 < n; i += 4 {
		dst[i] += src[i] * scalar
		dst[i+1] += src[i+1] * scalar
		dst[i+2] += src[i+2] * scalar
		dst[i+3] += src[i+3] * scalar
	}
	for ; i < n; i++ {
		dst[i] += src[i] * scalar
	}
}

func mulAddF64(dst, src []float64, scalar float64) {
	i := 0
	n := len(dst)
	for ; i+3 < n; i += 4 {
		dst[i] += src[i] * scalar
		dst[i+1] += src[i+1] * scalar
		dst[i+2] += src[i+2] * scalar
		dst[i+3] += src[i+3] * scalar
	}
	for ; i < n; i++ {
		dst[i] += src[i] * scalar
	}
}
