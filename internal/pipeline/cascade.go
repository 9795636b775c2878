package pipeline

import (
	"github.com/cwbudde/cascadeiir/internal/block"
	"github.com/cwbudde/cascadeiir/internal/stage"
)

// Cascade chains N sections end to end, each section's output feeding
// the next section's input, grounded on
// original_source/include/recursive_filter/series_serial.h's Series
// (a compile-time tuple of cores chained by repeated application) and
// tbb_iir_multi_core.h's TBBIIRMultiCore (the per-core flow graphs
// wired one after another).
type Cascade[T block.Sample] struct {
	sections []*Section[T]
}

// NewCascade builds a cascade of len(coeffs) sections sharing one
// worker pool and lane width m, each seeded with its own initial
// conditions.
func NewCascade[T block.Sample](pool *Pool, m int, coeffs []stage.Coefficients, x2, x1, y2, y1 []T) *Cascade[T] {
	sections := make([]*Section[T], len(coeffs))
	for i, c := range coeffs {
		sections[i] = NewSection(pool, m, c, x2[i], x1[i], y2[i], y1[i])
	}
	return &Cascade[T]{sections: sections}
}

// NumSections returns the number of cascaded sections.
func (c *Cascade[T]) NumSections() int { return len(c.sections) }

// BlockLen returns the shared L = M*M chunk size every section in the
// cascade operates on.
func (c *Cascade[T]) BlockLen() int {
	if len(c.sections) == 0 {
		return 0
	}
	return c.sections[0].BlockLen()
}

// Process runs x through every section in turn.
func (c *Cascade[T]) Process(x []T, isLastChunk bool) []T {
	cur := x
	for _, s := range c.sections {
		cur = s.Process(cur, isLastChunk)
	}
	return cur
}

// State returns one (x2, x1, y2, y1) tuple per section, in cascade
// order, mirroring the C++ original's post_inits snapshot
// (multi_core_filter.h) but exposed per-section rather than as an
// opaque internal buffer — see SPEC_FULL.md §7.
func (c *Cascade[T]) State() (x2, x1, y2, y1 []T) {
	n := len(c.sections)
	x2 = make([]T, n)
	x1 = make([]T, n)
	y2 = make([]T, n)
	y1 = make([]T, n)
	for i, s := range c.sections {
		x2[i], x1[i], y2[i], y1[i] = s.State()
	}
	return
}

// SetState restores each section's cross-call history.
func (c *Cascade[T]) SetState(x2, x1, y2, y1 []T) {
	for i, s := range c.sections {
		s.SetState(x2[i], x1[i], y2[i], y1[i])
	}
}
