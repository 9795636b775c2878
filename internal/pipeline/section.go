package pipeline

import (
	"github.com/cwbudde/cascadeiir/internal/block"
	"github.com/cwbudde/cascadeiir/internal/lane"
	"github.com/cwbudde/cascadeiir/internal/stage"
)

// Section wires one biquad section's full node graph: PriorPermute ->
// InitAdder -> ZIC -> IntraBlockRD -> InterBlockBuffer -> InterBlockRD
// -> ICCForward -> PostPermute, grounded on
// original_source/include/recursive_filter/tbb_iir_multi_core.h's
// per-core flow graph. It holds all cross-call state for one section:
// the x-history register (InitAdder) and y-history register
// (InterBlockRD) both carry forward across successive Process calls.
type Section[T block.Sample] struct {
	pre  *stage.Precomputed[T]
	m    int
	pool *Pool

	ia   *stage.InitAdder[T]
	ibuf *stage.InterBlockBuffer[T]
	ird  *stage.InterBlockRD[T]
}

// NewSection builds a section running at lane width m, seeded with the
// given x/y history.
func NewSection[T block.Sample](pool *Pool, m int, coef stage.Coefficients, x2, x1, y2, y1 T) *Section[T] {
	pre := stage.NewPrecomputed[T](m, coef)
	return &Section[T]{
		pre:  pre,
		m:    m,
		pool: pool,
		ia:   stage.NewInitAdder(x2, x1),
		ibuf: stage.NewInterBlockBuffer[T](m),
		ird:  stage.NewInterBlockRD(pre, y2, y1),
	}
}

// BlockLen returns L = M*M, the chunk size this section's multi-core
// path operates on.
func (s *Section[T]) BlockLen() int { return s.m * s.m }

// Process filters x (a run of nBlocks*L samples) through this section
// and returns the result. isLastChunk marks whether x is the final
// chunk of the stream; it sets Last on the final block and fills that
// block's PostInits. InterBlockBuffer's remainder is drained through
// the power-of-two fallback groups at the end of every call, whatever
// isLastChunk is.
func (s *Section[T]) Process(x []T, isLastChunk bool) []T {
	raws := Split(x, s.m)
	n := len(raws)
	if n == 0 {
		return x[:0]
	}

	permuted := Sequence(s.pool, n, func(i int) [][]T {
		return lane.PriorPermute(raws[i])
	})

	blocks := make([]block.DataBlock[T], n)
	for i := 0; i < n; i++ {
		b := block.New[T](i, s.m)
		b.Data = permuted[i]
		b.Last = isLastChunk && i == n-1
		blocks[i] = s.ia.Process(b)
	}

	scanned := Sequence(s.pool, n, func(i int) block.DataBlock[T] {
		b := stage.ZIC(s.pre, blocks[i])
		return stage.IntraBlockRD(s.pre, b)
	})

	var groups [][]block.DataBlock[T]
	for i := 0; i < n; i++ {
		groups = append(groups, s.ibuf.Push(scanned[i])...)
	}
	groups = append(groups, s.ibuf.Drain()...)

	corrected := make([]block.DataBlock[T], n)
	for _, g := range groups {
		for _, b := range s.ird.ProcessGroup(g) {
			corrected[b.Tag] = b
		}
	}

	if corrected[n-1].Last {
		x2, x1 := s.ia.State()
		y2, y1 := s.ird.State()
		corrected[n-1].PostInits = [4]T{x2, x1, y2, y1}
	}

	finished := Sequence(s.pool, n, func(i int) [][]T {
		b := stage.ICCForward(s.pre, corrected[i])
		return lane.PostPermute(b.Data)
	})

	out := make([]T, len(x))
	return Join(finished, s.m, out)
}

// State returns the section's current cross-call history: x[-2],
// x[-1] from InitAdder and y[-2], y[-1] from InterBlockRD.
func (s *Section[T]) State() (x2, x1, y2, y1 T) {
	x2, x1 = s.ia.State()
	y2, y1 = s.ird.State()
	return
}

// SetState replaces the section's cross-call history, discarding any
// partially buffered group. Intended for restoring a serialized state
// between independent Process call sequences, not for mid-stream use.
func (s *Section[T]) SetState(x2, x1, y2, y1 T) {
	s.ia = stage.NewInitAdder(x2, x1)
	s.ibuf = stage.NewInterBlockBuffer[T](s.m)
	s.ird = stage.NewInterBlockRD(s.pre, y2, y1)
}
