package cascadeiir

import (
	"github.com/cwbudde/cascadeiir/internal/lane"
	"github.com/cwbudde/cascadeiir/internal/pipeline"
	"github.com/cwbudde/cascadeiir/internal/stage"
)

// MultiCoreFilter cascades N biquad sections and drives them through
// one of three tiers depending on how many samples are available in a
// given Process call: the multi-core recursive-doubling block path for
// chunks of at least L=M*M samples, a "vector" path that runs the
// serial recursion in groups of M samples for chunks of at least M
// samples, and a direct scalar recursion below
// that. All three tiers share one state representation (per-section
// x/y history) via the embedded Cascade, so switching tiers mid-stream
// never loses or duplicates history.
type MultiCoreFilter[T Sample] struct {
	coeffs []stage.Coefficients
	m      int
	pool   *pipeline.Pool
	cas    *pipeline.Cascade[T]
}

// New builds a filter from one Coefficients and one InitialConditions
// per section. len(coeffs) must equal len(inits).
func New[T Sample](coeffs []Coefficients, inits []InitialConditions) (*MultiCoreFilter[T], error) {
	if len(coeffs) != len(inits) {
		return nil, ErrSectionCountMismatch
	}

	stageCoeffs := make([]stage.Coefficients, len(coeffs))
	x2 := make([]T, len(coeffs))
	x1 := make([]T, len(coeffs))
	y2 := make([]T, len(coeffs))
	y1 := make([]T, len(coeffs))
	for i, c := range coeffs {
		stageCoeffs[i] = stage.Coefficients{B0: c.B0, B1: c.B1, B2: c.B2, A1: c.A1, A2: c.A2}
		x2[i], x1[i] = T(inits[i].X2), T(inits[i].X1)
		y2[i], y1[i] = T(inits[i].Y2), T(inits[i].Y1)
	}

	m := lane.Width[T]()
	pool := pipeline.NewPool(0)
	cas := pipeline.NewCascade(pool, m, stageCoeffs, x2, x1, y2, y1)

	return &MultiCoreFilter[T]{coeffs: stageCoeffs, m: m, pool: pool, cas: cas}, nil
}

// NumSections returns the number of cascaded sections.
func (f *MultiCoreFilter[T]) NumSections() int { return f.cas.NumSections() }

// Order returns the total filter order, 2 per biquad section.
func (f *MultiCoreFilter[T]) Order() int { return 2 * f.cas.NumSections() }

// Close releases the filter's worker pool. Safe to skip if the
// process is exiting anyway.
func (f *MultiCoreFilter[T]) Close() { f.pool.Close() }

// Process filters src and returns the result appended to dst[:0].
// dst is used as backing storage when it has enough capacity,
// following the teacher's ProcessBlockTo append convention; pass nil
// to always allocate. State carries across calls: calling Process
// repeatedly on successive slices of one logical stream produces the
// same result as one call on the whole stream (spec.md Property 2).
func (f *MultiCoreFilter[T]) Process(dst, src []T) []T {
	out := dst[:0]
	if len(src) == 0 {
		return out
	}

	l := f.cas.BlockLen()
	m := f.m

	remaining := src
	for len(remaining) > 0 {
		switch {
		case len(remaining) >= l:
			n := (len(remaining) / l) * l
			isLast := n == len(remaining)
			out = append(out, f.cas.Process(remaining[:n], isLast)...)
			remaining = remaining[n:]

		case len(remaining) >= m:
			n := (len(remaining) / m) * m
			out = append(out, f.processVector(remaining[:n])...)
			remaining = remaining[n:]

		default:
			out = append(out, f.processScalar(remaining)...)
			remaining = nil
		}
	}

	return out
}

// processVector and processScalar both borrow the Cascade's history
// registers as their state store, so a chunk processed by either tier
// leaves state exactly where the multi-core tier would expect to find
// it on the next call.
func (f *MultiCoreFilter[T]) processVector(x []T) []T {
	hists := f.snapshotHists()
	y := vectorCascade(f.coeffs, hists, x, f.m)
	f.restoreHists(hists)
	return y
}

func (f *MultiCoreFilter[T]) processScalar(x []T) []T {
	hists := f.snapshotHists()
	y := scalarCascade(f.coeffs, hists, x)
	f.restoreHists(hists)
	return y
}

func (f *MultiCoreFilter[T]) snapshotHists() [][4]T {
	x2, x1, y2, y1 := f.cas.State()
	hists := make([][4]T, len(f.coeffs))
	for i := range hists {
		hists[i] = [4]T{x2[i], x1[i], y2[i], y1[i]}
	}
	return hists
}

func (f *MultiCoreFilter[T]) restoreHists(hists [][4]T) {
	n := len(hists)
	x2 := make([]T, n)
	x1 := make([]T, n)
	y2 := make([]T, n)
	y1 := make([]T, n)
	for i, h := range hists {
		x2[i], x1[i], y2[i], y1[i] = h[0], h[1], h[2], h[3]
	}
	f.cas.SetState(x2, x1, y2, y1)
}
