// Package pipeline wires internal/stage's per-block nodes into a
// running section (and a cascade of sections), matching the flow-graph
// topology of original_source/include/recursive_filter/tbb_iir_multi_core.h:
// unlimited-concurrency nodes (PriorPermute, ZIC, IntraBlockRD,
// ICCForward, PostPermute) run across a worker pool, serial nodes
// (InitAdder, InterBlockRD) run one block/group at a time in tag order.
package pipeline

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool reused across every unlimited-
// concurrency stage in a cascade, grounded on
// janpfeifer-go-highway/hwy/contrib/workerpool.Pool.
type Pool struct {
	numWorkers int
	workC      chan func()
	closeOnce  sync.Once
	closed     atomic.Bool
}

// NewPool creates a pool with the given worker count. If numWorkers <=
// 0, it uses GOMAXPROCS.
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan func(), numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for fn := range p.workC {
		fn()
	}
}

// NumWorkers returns the pool's worker count.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down. Safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// MapBlocks applies fn to every index in [0, n) across the pool and
// returns once every call has completed, distributing indices with
// atomic work stealing so that blocks of uneven cost (e.g. the last,
// possibly short, group) don't stall the others.
func (p *Pool) MapBlocks(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if p.closed.Load() || p.numWorkers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	workers := p.numWorkers
	if workers > n {
		workers = n
	}

	var nextIdx atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- func() {
			defer wg.Done()
			for {
				idx := int(nextIdx.Add(1)) - 1
				if idx >= n {
					return
				}
				fn(idx)
			}
		}
	}
	wg.Wait()
}
