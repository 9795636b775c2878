// Package stage implements the per-section pipeline nodes: InitAdder,
// ZIC, IntraBlockRD, InterBlockBuffer, InterBlockRD and ICCForward.
// Each is grounded on the identically-named class in
// original_source/include/recursive_filter/*.h, generalized from a
// fixed vectorclass width to a runtime-selected lane count M.
package stage

import (
	"github.com/cwbudde/cascadeiir/internal/block"
	"github.com/cwbudde/cascadeiir/internal/companion"
)

// Coefficients are one section's biquad transfer coefficients, b0
// normalised to 1 by convention (but not assumed to be so — see
// DESIGN.md).
type Coefficients struct {
	B0, B1, B2, A1, A2 float64
}

// Precomputed holds every table a section's stages need, built once
// per section at construction and shared (read-only) across every
// Process call and every concurrent stage invocation.
type Precomputed[T block.Sample] struct {
	M                  int
	B0, B1, B2, A1, A2 T

	// H1, H2 are the single-sample homogeneous-solution weights: the
	// contribution of y[-1] and y[-2] respectively to y[k] under zero
	// input, for k = 0..M-1. Used only by ICCForward's final broadcast.
	H1, H2 []T

	// BlockH22/12/21/11 are the powers of the M-sample step matrix
	// (the companion matrix C=[[a1,1],[a2,0]] advanced by M samples),
	// length M, index i holding power i+1. Used by ICCForward's direct
	// row correction and by IntraBlockRD's recursive-doubling passes
	// (which only need the first M/2 entries).
	BlockH22, BlockH12, BlockH21, BlockH11 []T

	// InterH22/12/21/11 are the same step matrix's powers extended to
	// length M*(M/2), indexed at M*d-1 for a d-block distance. Used by
	// InterBlockRD's recursive-doubling passes across a group of up to
	// M blocks.
	InterH22, InterH12, InterH21, InterH11 []T
}

// NewPrecomputed builds the tables for one section running at lane
// width m.
func NewPrecomputed[T block.Sample](m int, c Coefficients) *Precomputed[T] {
	h1, h2 := companion.H1H2(c.A1, c.A2, m)
	a, b, cc, d := companion.StepMatrix(h1, h2, m)

	blockH22, blockH12, blockH21, blockH11 := companion.Powers(a, b, cc, d, m)

	half := m / 2
	if half < 1 {
		half = 1
	}
	interH22, interH12, interH21, interH11 := companion.Powers(a, b, cc, d, m*half)

	return &Precomputed[T]{
		M:        m,
		B0:       T(c.B0),
		B1:       T(c.B1),
		B2:       T(c.B2),
		A1:       T(c.A1),
		A2:       T(c.A2),
		H1:       toT[T](h1),
		H2:       toT[T](h2),
		BlockH22: toT[T](blockH22),
		BlockH12: toT[T](blockH12),
		BlockH21: toT[T](blockH21),
		BlockH11: toT[T](blockH11),
		InterH22: toT[T](interH22),
		InterH12: toT[T](interH12),
		InterH21: toT[T](interH21),
		InterH11: toT[T](interH11),
	}
}

func toT[T block.Sample](xs []float64) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = T(x)
	}
	return out
}
