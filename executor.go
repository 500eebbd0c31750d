package rescale

import "golang.org/x/sync/errgroup"

// NewExecutor returns an Executor backed by an errgroup.Group, the same
// bounded-fan-out primitive mangaconv's own pipeline stages use. workers
// caps the number of chunk tasks running at once; workers <= 0 means
// unlimited.
//
// The returned Executor is scoped to a single resize call: construct one
// per call to Resize rather than sharing it across unrelated calls.
func NewExecutor(workers int) Executor {
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	return &errgroupExecutor{g: &g}
}

type errgroupExecutor struct {
	g *errgroup.Group
}

// Submit implements Executor. The task's error is swallowed by the
// underlying errgroup.Group since nothing ever calls Wait on it: raster's
// ChunkEngine owns its own completion latch and first-error aggregation,
// independent of whatever executor backs Submit (see raster.RunChunked).
func (e *errgroupExecutor) Submit(task func() error) {
	e.g.Go(task)
}
