package block

// ShiftReg is a two-deep history register, grounded on
// original_source/include/recursive_filter/buffer.h's Shift<V>. It is
// used both for the incoming x-history feeding InitAdder and the
// inter-block y-history feeding InterBlockRD.
type ShiftReg[T Sample] struct {
	prev, cur T
}

// NewShiftReg seeds a register with (value two steps back, value one
// step back).
func NewShiftReg[T Sample](twoBack, oneBack T) ShiftReg[T] {
	return ShiftReg[T]{prev: twoBack, cur: oneBack}
}

// Shift pushes v in as the newest value.
func (s *ShiftReg[T]) Shift(v T) {
	s.prev, s.cur = s.cur, v
}

// Prev returns the value two steps back (the "[-2]" slot).
func (s *ShiftReg[T]) Prev() T { return s.prev }

// Cur returns the value one step back (the "[-1]" slot).
func (s *ShiftReg[T]) Cur() T { return s.cur }
