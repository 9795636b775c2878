package pipeline

// Sequence runs fn for every index in [0, n) across pool and returns
// the results ordered by index, regardless of which worker finished
// first.
//
// This replaces original_source/include/recursive_filter/tbb_iir_multi_core.h's
// TBB sequencer_node: rather than an actor-style mailbox that buffers
// out-of-order tokens until the next expected tag arrives, the output
// is a pre-sized, tag-indexed slice. Each worker writes its own result
// to its own index, so the slice is already in tag order the instant
// every worker has returned — there is nothing to reorder. The next
// serial stage simply ranges over the slice.
func Sequence[T any](pool *Pool, n int, fn func(i int) T) []T {
	out := make([]T, n)
	pool.MapBlocks(n, func(i int) {
		out[i] = fn(i)
	})
	return out
}
