package stage

import "github.com/cwbudde/cascadeiir/internal/block"

// InitAdder is a serial, stateful pipeline node: it hands each block
// the true x-history preceding it (from a two-deep shift register) and
// then advances that register with the block's own last two raw
// samples, grounded on
// original_source/include/recursive_filter/init_adder.h.
type InitAdder[T block.Sample] struct {
	reg block.ShiftReg[T]
}

// NewInitAdder seeds the x-history register with x[-2], x[-1].
func NewInitAdder[T block.Sample](x2, x1 T) *InitAdder[T] {
	return &InitAdder[T]{reg: block.NewShiftReg(x2, x1)}
}

// Process stamps in.XInit with the register's current state and
// advances the register using the raw x samples at the end of this
// block (Data[m-2][m-1], Data[m-1][m-1] — the block's last two samples
// in original time order, since PriorPermute places sample j*M+n at
// Data[n][j]). Data itself passes through unmodified.
func (a *InitAdder[T]) Process(in block.DataBlock[T]) block.DataBlock[T] {
	out := in
	out.XInit = [2]T{a.reg.Prev(), a.reg.Cur()}

	m := len(in.Data)
	a.reg.Shift(in.Data[m-2][m-1])
	a.reg.Shift(in.Data[m-1][m-1])

	return out
}

// State returns the register's current (x[-2], x[-1]).
func (a *InitAdder[T]) State() (x2, x1 T) {
	return a.reg.Prev(), a.reg.Cur()
}
