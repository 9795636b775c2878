package stage

import (
	"github.com/cwbudde/cascadeiir/internal/block"
	"github.com/cwbudde/cascadeiir/internal/lane"
)

// ICCForward is a stateless, unlimited-concurrency pipeline node: given
// a block whose YInit now holds the true y-history entering it (set by
// InterBlockRD), it corrects every lane's last two rows directly (no
// scan needed, since YInit is already exact) and then broadcasts that
// correction across the rest of the block using the single-sample
// homogeneous weights. Grounded on
// original_source/include/recursive_filter/iir_correction.h.
func ICCForward[T block.Sample](pre *Precomputed[T], in block.DataBlock[T]) block.DataBlock[T] {
	m := pre.M
	data := make([][]T, m)
	copy(data, in.Data)

	v := make([]T, m)
	w := make([]T, m)
	copy(v, data[m-2])
	copy(w, data[m-1])

	y2, y1 := in.YInit[0], in.YInit[1]
	for j := 0; j < m; j++ {
		v[j] += pre.BlockH22[j]*y2 + pre.BlockH12[j]*y1
		w[j] += pre.BlockH21[j]*y2 + pre.BlockH11[j]*y1
	}
	data[m-2] = v
	data[m-1] = w

	yi2 := lane.Blend(v, y2)
	yi1 := lane.Blend(w, y1)

	for n := 0; n < m-2; n++ {
		row := make([]T, m)
		for j := 0; j < m; j++ {
			row[j] = data[n][j] + pre.H2[n]*yi2[j] + pre.H1[n]*yi1[j]
		}
		data[n] = row
	}

	out := in
	out.Data = data
	return out
}
