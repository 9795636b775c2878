package stage

import (
	"github.com/cwbudde/cascadeiir/internal/block"
	"github.com/cwbudde/cascadeiir/internal/lane"
)

// ZIC is a stateless, unlimited-concurrency pipeline node: it filters a
// block of x samples as if the section's y-history were zero, using
// the block's true x-history (in.XInit, set by InitAdder) to seed the
// first two output rows. Grounded on
// original_source/include/recursive_filter/no_state_zic.h. Each output
// row is an M-lane vector, so every feedforward/feedback accumulation
// below runs through internal/lane.MulAddInto rather than a per-lane
// loop.
func ZIC[T block.Sample](pre *Precomputed[T], in block.DataBlock[T]) block.DataBlock[T] {
	m := pre.M
	data := in.Data

	xi2 := lane.Blend(data[m-2], in.XInit[0])
	xi1 := lane.Blend(data[m-1], in.XInit[1])

	v := make([][]T, m)

	v[0] = make([]T, m)
	lane.MulAddInto(v[0], data[0], pre.B0)
	lane.MulAddInto(v[0], xi1, pre.B1)
	lane.MulAddInto(v[0], xi2, pre.B2)

	if m > 1 {
		v[1] = make([]T, m)
		lane.MulAddInto(v[1], data[1], pre.B0)
		lane.MulAddInto(v[1], data[0], pre.B1)
		lane.MulAddInto(v[1], xi1, pre.B2)
	}
	for n := 2; n < m; n++ {
		v[n] = make([]T, m)
		lane.MulAddInto(v[n], data[n], pre.B0)
		lane.MulAddInto(v[n], data[n-1], pre.B1)
		lane.MulAddInto(v[n], data[n-2], pre.B2)
	}

	w := make([][]T, m)
	w[0] = v[0]
	if m > 1 {
		w[1] = make([]T, m)
		copy(w[1], v[1])
		lane.MulAddInto(w[1], w[0], pre.A1)
	}
	for n := 2; n < m; n++ {
		w[n] = make([]T, m)
		copy(w[n], v[n])
		lane.MulAddInto(w[n], w[n-1], pre.A1)
		lane.MulAddInto(w[n], w[n-2], pre.A2)
	}

	out := in
	out.Data = w
	return out
}
