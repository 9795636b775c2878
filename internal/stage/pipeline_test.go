package stage

import (
	"testing"

	"github.com/cwbudde/cascadeiir/internal/block"
	"github.com/cwbudde/cascadeiir/internal/lane"
	"github.com/cwbudde/cascadeiir/internal/testutil"
)

// scalarRef computes the direct-form recursion one sample at a time,
// the ground truth every parallel path must match.
func scalarRef(coef Coefficients, x []float64, x1, x2, y1, y2 float64) []float64 {
	y := make([]float64, len(x))
	xm1, xm2 := x1, x2
	ym1, ym2 := y1, y2
	for n, xn := range x {
		yn := coef.B0*xn + coef.B1*xm1 + coef.B2*xm2 + coef.A1*ym1 + coef.A2*ym2
		y[n] = yn
		xm2, xm1 = xm1, xn
		ym2, ym1 = ym1, yn
	}
	return y
}

// runPipeline drives all six stages over nBlocks blocks of L=m*m
// samples each, mirroring original_source's TBBIIRMultiCore wiring:
// PriorPermute -> InitAdder -> ZIC -> IntraBlockRD -> InterBlockBuffer
// -> InterBlockRD -> ICCForward -> PostPermute.
func runPipeline(pre *Precomputed[float64], x []float64, x1, x2, y1, y2 float64, m, nBlocks int) []float64 {
	l := m * m
	ia := NewInitAdder(x2, x1)
	ibuf := NewInterBlockBuffer[float64](m)
	ird := NewInterBlockRD(pre, y2, y1)

	blocks := make([]block.DataBlock[float64], nBlocks)
	for t := 0; t < nBlocks; t++ {
		raw := make([][]float64, m)
		for j := 0; j < m; j++ {
			raw[j] = append([]float64(nil), x[t*l+j*m:t*l+j*m+m]...)
		}
		b := block.New[float64](t, m)
		b.Data = lane.Transpose(raw)
		b.Last = t == nBlocks-1

		b = ia.Process(b)
		b = ZIC(pre, b)
		b = IntraBlockRD(pre, b)
		blocks[t] = b
	}

	var groups [][]block.DataBlock[float64]
	for _, b := range blocks {
		groups = append(groups, ibuf.Push(b)...)
	}
	groups = append(groups, ibuf.Drain()...)

	final := make([]block.DataBlock[float64], nBlocks)
	for _, g := range groups {
		processed := ird.ProcessGroup(g)
		for _, b := range processed {
			final[b.Tag] = b
		}
	}

	out := make([]float64, len(x))
	for t, b := range final {
		b = ICCForward(pre, b)
		raw := lane.Transpose(b.Data)
		for j := 0; j < m; j++ {
			copy(out[t*l+j*m:t*l+j*m+m], raw[j])
		}
	}
	return out
}

// TestPipelineMatchesScalarReference runs the full six-stage pipeline
// over several blocks and checks it reproduces the direct-form
// recursion to within floating-point tolerance.
func TestPipelineMatchesScalarReference(t *testing.T) {
	coef := Coefficients{B0: 1, B1: 0.3, B2: -0.1, A1: 0.6, A2: -0.2}
	const m = 4
	const nBlocks = 4
	const l = m * m

	pre := NewPrecomputed[float64](m, coef)

	x := testutil.DeterministicNoise(7, 1.0, nBlocks*l)
	x1, x2 := 0.2, -0.1
	y1, y2 := 0.05, -0.03

	want := scalarRef(coef, x, x1, x2, y1, y2)
	got := runPipeline(pre, x, x1, x2, y1, y2, m, nBlocks)

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

// TestPipelineHandlesPartialFinalGroup exercises InterBlockBuffer's
// power-of-two fallback flush with a stream whose block count is not a
// multiple of M.
func TestPipelineHandlesPartialFinalGroup(t *testing.T) {
	coef := Coefficients{B0: 1, B1: 0.2, B2: -0.05, A1: 0.5, A2: -0.15}
	const m = 4
	const nBlocks = 3 // not a multiple of m: flushes as 2 + 1
	const l = m * m

	pre := NewPrecomputed[float64](m, coef)

	x := testutil.Impulse(nBlocks*l, 0)
	x1, x2 := 0.0, 0.0
	y1, y2 := 0.0, 0.0

	want := scalarRef(coef, x, x1, x2, y1, y2)
	got := runPipeline(pre, x, x1, x2, y1, y2, m, nBlocks)

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}
