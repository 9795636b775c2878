package stage

import "github.com/cwbudde/cascadeiir/internal/block"

// IntraBlockRD is a stateless, unlimited-concurrency pipeline node. It
// corrects the ZIC output's last two rows (Data[M-2], Data[M-1]) for
// the fact that each of the M lanes within a block is itself a
// sub-sequence whose y-history should carry forward from the lane
// before it: lane j's sub-sequence starts M samples after lane j-1's.
//
// It runs a work-efficient parallel-prefix scan in log2(M) passes: pass
// k folds the correctly-prefixed last lane of each size-2^(k-1) half
// into the following half, scaled by the M-sample companion-matrix
// power matching their lane distance. Grounded on
// original_source/include/recursive_filter/recursive_doubling.h's
// RecurDoubV (its compile-time permute8 shuffles over 8 lanes are the
// M=8 special case of the general loop below).
func IntraBlockRD[T block.Sample](pre *Precomputed[T], in block.DataBlock[T]) block.DataBlock[T] {
	m := pre.M

	v := make([]T, m)
	w := make([]T, m)
	copy(v, in.Data[m-2])
	copy(w, in.Data[m-1])

	for k := 1; (1 << k) <= m; k++ {
		g := 1 << k
		half := g / 2
		for start := 0; start < m; start += g {
			srcIdx := start + half - 1
			if srcIdx >= m {
				break
			}
			srcV, srcW := v[srcIdx], w[srcIdx]
			end := start + g
			if end > m {
				end = m
			}
			for i := start + half; i < end; i++ {
				d := i - srcIdx // 1..half
				v[i] += pre.BlockH22[d-1]*srcV + pre.BlockH12[d-1]*srcW
				w[i] += pre.BlockH21[d-1]*srcV + pre.BlockH11[d-1]*srcW
			}
		}
	}

	data := make([][]T, m)
	copy(data, in.Data)
	data[m-2] = v
	data[m-1] = w

	out := in
	out.Data = data
	return out
}
