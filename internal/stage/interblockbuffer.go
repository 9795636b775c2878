package stage

import "github.com/cwbudde/cascadeiir/internal/block"

// InterBlockBuffer is a serial, stateful pipeline node: it accumulates
// blocks in tag order until it has M of them, then emits that group.
// When the caller invokes Drain, any remainder shorter than M is
// flushed as a cascade of power-of-two fallback groups (M/2, M/4, ...,
// 1); the buffer itself does not look at a block's Last flag. This
// generalizes
// original_source/include/recursive_filter/buffer.h's fixed M=8
// fallback schedule (M, M/2, M/4, M/8) to an arbitrary power-of-two M.
type InterBlockBuffer[T block.Sample] struct {
	m   int
	buf []block.DataBlock[T]
}

// NewInterBlockBuffer creates a buffer that groups blocks by m.
func NewInterBlockBuffer[T block.Sample](m int) *InterBlockBuffer[T] {
	return &InterBlockBuffer[T]{m: m}
}

// Push appends in and returns a group of exactly M blocks once the
// buffer fills, or no groups otherwise. Blocks that don't yet complete
// a full group stay buffered across calls to Push until the next Drain
// (internal/pipeline.Section.Process drains at the end of every call,
// so nothing stays buffered between Process calls).
func (b *InterBlockBuffer[T]) Push(in block.DataBlock[T]) [][]block.DataBlock[T] {
	b.buf = append(b.buf, in)

	if len(b.buf) == b.m {
		group := b.buf
		b.buf = nil
		return [][]block.DataBlock[T]{group}
	}
	return nil
}

// Drain flushes whatever remains buffered as a cascade of descending
// power-of-two groups (M/2, M/4, ..., 1), generalizing
// original_source/include/recursive_filter/buffer.h's fixed M=8
// end-of-stream fallback schedule to an arbitrary power-of-two M. A
// caller invokes this once it has no more blocks to offer this buffer
// for now (end of stream, or simply the end of the current Process
// call) so that every pushed block eventually reaches InterBlockRD.
func (b *InterBlockBuffer[T]) Drain() [][]block.DataBlock[T] {
	var groups [][]block.DataBlock[T]
	for size := b.m / 2; size >= 1 && len(b.buf) > 0; size /= 2 {
		if len(b.buf) >= size {
			groups = append(groups, b.buf[:size])
			b.buf = b.buf[size:]
		}
	}
	return groups
}
