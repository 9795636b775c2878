//go:build arm64 && !purego

// Package neon registers the NEON-tier lane width: 4 (float32) / 2
// (float64), the arm64 architectural baseline.
package neon

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/cascadeiir/internal/lane/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  20,
		WidthF32:  4,
		WidthF64:  2,
		MulAddF32: mulAddF32,
		MulAddF64: mulAddF64,
	})
}

func mulAddF32(dst, src []float32, scalar float32) {
	for i := range dst {
		dst[i] += src[i] * scalar
	}
}

func mulAddF64(dst, src []float64, scalar float64) {
	for i := range dst {
		dst[i] += src[i] * scalar
	}
}
