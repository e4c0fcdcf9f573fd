// Package parallel provides the loop executor used by the block kernels.
//
// An Executor runs a loop body over the index range [0, n). Two
// implementations exist: Sequential, which runs the body inline, and Pool,
// which statically partitions the range into contiguous chunks executed by
// worker goroutines with a join barrier before For returns. Block dispatch
// depends only on the interface, so the threading backend is injectable
// rather than compiled in.
package parallel

import (
	"runtime"
	"sync"
)

// Executor runs body over the index range [0, n). body must be safe to call
// with any partition of the range; implementations may invoke it concurrently
// on disjoint subranges.
type Executor interface {
	For(n int, body func(start, end int))
}

// Sequential executes the loop body inline on the calling goroutine.
type Sequential struct{}

// For runs body(0, n) directly.
func (Sequential) For(n int, body func(start, end int)) {
	if n <= 0 {
		return
	}
	body(0, n)
}

// Pool executes loop bodies as a fork-join fan-out across a fixed number of
// goroutines. The index range is split into contiguous chunks, one per
// worker, and For blocks until all chunks complete. Ranges below MinChunk
// elements per worker run sequentially since the spawn overhead would
// dominate.
type Pool struct {
	workers int
}

// MinChunk is the smallest per-worker subrange worth forking for. Below
// workers*MinChunk total elements the Pool runs the body inline.
const MinChunk = 1024

// NewPool returns a Pool with the given worker count. Counts below 1 default
// to runtime.NumCPU().
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers}
}

// Workers returns the configured worker count.
func (p *Pool) Workers() int {
	return p.workers
}

// For partitions [0, n) into up to Workers() contiguous chunks and runs them
// concurrently, returning after every chunk has finished.
func (p *Pool) For(n int, body func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.workers == 1 || n < p.workers*MinChunk {
		body(0, n)
		return
	}

	chunk := (n + p.workers - 1) / p.workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			body(start, end)
		}(start, end)
	}
	wg.Wait()
}
