//go:build amd64 && !purego

// Package avx512 registers the AVX-512-tier lane width: 16 (float32) /
// 8 (float64).
package avx512

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/cascadeiir/internal/lane/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx512",
		SIMDLevel: cpu.SIMDAVX512,
		Priority:  30,
		WidthF32:  16,
		WidthF64:  8,
		MulAddF32: mulAddF32,
		MulAddF64: mulAddF64,
	})
}

// mulAddF32 is an 8x-unrolled scalar kernel selected for AVX-512-capable
// CPUs. TODO: replace with explicit AVX-512 asm kernel.
func mulAddF32(dst, src []float32, scalar float32) {
	i := 0
	n := len(dst)
	for ; i+7 < n; i += 8 {
		for j := 0; j < 8; j++ {
			dst[i+j] += src[i+j] * scalar
		}
	}
	for ; i < n; i++ {
		dst[i] += src[i] * scalar
	}
}

func mulAddF64(dst, src []float64, scalar float64) {
	i := 0
	n := len(dst)
	for ; i+7 < n; i += 8 {
		for j := 0; j < 8; j++ {
			dst[i+j] += src[i+j] * scalar
		}
	}
	for ; i < n; i++ {
		dst[i] += src[i] * scalar
	}
}
