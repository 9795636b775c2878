package stage

import "github.com/cwbudde/cascadeiir/internal/block"

// InterBlockRD is a serial, stateful pipeline node: given a group of up
// to M blocks (as delivered by InterBlockBuffer), it propagates the
// y-history across the group's block boundaries and stamps each
// block's YInit, carrying the running y-history forward in a two-deep
// shift register for the next group. Grounded on
// original_source/include/recursive_filter/recursive_doubling.h's
// InterBlockRD (its G=2/G=1 closed-form branches are special cases of
// the same general recursive-doubling loop used below and by
// IntraBlockRD; see DESIGN.md).
type InterBlockRD[T block.Sample] struct {
	pre *Precomputed[T]
	reg block.ShiftReg[T]
}

// NewInterBlockRD seeds the cross-group y-history register with
// y[-2], y[-1].
func NewInterBlockRD[T block.Sample](pre *Precomputed[T], y2, y1 T) *InterBlockRD[T] {
	return &InterBlockRD[T]{pre: pre, reg: block.NewShiftReg(y2, y1)}
}

// ProcessGroup takes ownership of a contiguous, tag-ordered run of
// blocks (length a power of two, at most M) and returns the same
// blocks with YInit filled in.
func (r *InterBlockRD[T]) ProcessGroup(group []block.DataBlock[T]) []block.DataBlock[T] {
	m := r.pre.M
	g := len(group)

	// yi2[j], yi1[j] are block j's own last-lane virtual y-history,
	// i.e. the ZIC+IntraBlockRD result assuming the group's leading
	// y-history were zero.
	yi2 := make([]T, g)
	yi1 := make([]T, g)
	for j, b := range group {
		yi2[j] = b.Data[m-2][m-1]
		yi1[j] = b.Data[m-1][m-1]
	}

	// step0: fold the true incoming y-history (from the previous
	// group) into block 0, using the one-block (M*M-sample) step: the
	// M-th power of the M-sample step matrix, BlockH index m-1 (equal
	// to InterH at the d=1 index used below).
	prevY2, prevY1 := r.reg.Prev(), r.reg.Cur()
	yi2[0] += r.pre.BlockH22[m-1]*prevY2 + r.pre.BlockH12[m-1]*prevY1
	yi1[0] += r.pre.BlockH21[m-1]*prevY2 + r.pre.BlockH11[m-1]*prevY1

	for k := 1; (1 << k) <= g; k++ {
		gg := 1 << k
		half := gg / 2
		for start := 0; start < g; start += gg {
			srcIdx := start + half - 1
			if srcIdx >= g {
				break
			}
			srcV, srcW := yi2[srcIdx], yi1[srcIdx]
			end := start + gg
			if end > g {
				end = g
			}
			for i := start + half; i < end; i++ {
				d := i - srcIdx // block distance
				idx := m*d - 1
				yi2[i] += r.pre.InterH22[idx]*srcV + r.pre.InterH12[idx]*srcW
				yi1[i] += r.pre.InterH21[idx]*srcV + r.pre.InterH11[idx]*srcW
			}
		}
	}

	out := make([]block.DataBlock[T], g)
	for j, b := range group {
		b.YInit = [2]T{prevY2, prevY1}
		if j > 0 {
			b.YInit = [2]T{yi2[j-1], yi1[j-1]}
		}
		out[j] = b
	}

	r.reg.Shift(yi2[g-1])
	r.reg.Shift(yi1[g-1])

	return out
}

// State returns the register's current (y[-2], y[-1]).
func (r *InterBlockRD[T]) State() (y2, y1 T) {
	return r.reg.Prev(), r.reg.Cur()
}
