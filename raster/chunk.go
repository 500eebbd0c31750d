package raster

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"
)

// ErrTaskFailure is returned by RunChunked (wrapped with chunk-specific
// detail) when a chunk task fails, including when it panics.
var ErrTaskFailure = errors.New("raster: chunk task failed")

// chunkCount computes N, the number of row ranges to split [0, dh) into,
// per the split-threshold formula: driven by whichever of source or
// destination area crosses its scaler-declared threshold first, capped at
// cores*10, and clamped to [1, dh].
func chunkCount(srcArea, dstArea, srcThreshold, dstThreshold int64, cores, dh int) int {
	if dh < 1 {
		return 1
	}
	bySrc := ceilDiv(srcArea+1, srcThreshold)
	byDst := ceilDiv(dstArea+1, dstThreshold)
	n := bySrc
	if byDst > n {
		n = byDst
	}
	if cap := int64(cores) * 10; n > cap {
		n = cap
	}
	if n < 1 {
		n = 1
	}
	if n > int64(dh) {
		n = int64(dh)
	}
	return int(n)
}

func ceilDiv(a, b int64) int64 {
	if b <= 0 {
		return 1
	}
	return (a + b - 1) / b
}

// rowRange is a destination row range [Start, End), End exclusive.
type rowRange struct{ Start, End int }

// splitRows partitions [0, dh) into n contiguous, non-empty row ranges
// whose boundaries are floor(k*dh/n + 0.5) for k = 1..n-1, with the first
// range starting at 0 and the last ending at dh. n is clamped to [1, dh]
// before partitioning, so every returned range is non-empty.
func splitRows(dh, n int) []rowRange {
	if dh <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > dh {
		n = dh
	}
	ranges := make([]rowRange, n)
	start := 0
	for k := 1; k <= n; k++ {
		var end int
		if k == n {
			end = dh
		} else {
			end = int(math.Floor(float64(k)*float64(dh)/float64(n) + 0.5))
		}
		if end <= start {
			end = start + 1
		}
		if end > dh {
			end = dh
		}
		ranges[k-1] = rowRange{start, end}
		start = end
	}
	// The k == n case above already ends the last range at dh; this
	// assignment restates that invariant.
	ranges[len(ranges)-1].End = dh
	return ranges
}

// RunChunked dispatches scaler across the destination rows [0, dh), either
// inline (exec == nil) or split into chunks submitted to exec, and blocks
// until every chunk completes. It guarantees the same pixel values whether
// run inline or in parallel: chunks partition [0, dh) disjointly and each
// destination pixel is a pure function of the source and its coordinates.
func RunChunked(src Source, dst Sink, dw, dh int, scaler Scaler, exec Executor) error {
	if dw <= 0 || dh <= 0 {
		return nil
	}

	sw, sh := src.Width(), src.Height()
	srcArea := int64(sw) * int64(sh)
	dstArea := int64(dw) * int64(dh)

	n := 1
	if exec != nil {
		n = chunkCount(srcArea, dstArea, scaler.SrcAreaThreshold(), scaler.DstAreaThreshold(), runtime.NumCPU(), dh)
	}
	ranges := splitRows(dh, n)

	if len(ranges) <= 1 {
		data := scaler.ComputeRunData(sw, sh, dw, dh, false)
		r := rowRange{0, dh}
		if len(ranges) == 1 {
			r = ranges[0]
		}
		scaler.ScaleChunk(src, r.Start, r.End, dst, dw, dh, data)
		return nil
	}

	data := scaler.ComputeRunData(sw, sh, dw, dh, true)
	needsDup := scaler.NeedsDuplicatedViews()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	wg.Add(len(ranges))
	for _, r := range ranges {
		r := r
		exec.Submit(func() (err error) {
			defer wg.Done()
			defer func() {
				if rec := recover(); rec != nil {
					err = fmt.Errorf("%w: rows [%d,%d): %v", ErrTaskFailure, r.Start, r.End, rec)
				}
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
			}()
			chunkSrc, chunkDst := src, dst
			if needsDup {
				chunkSrc = src.Duplicate()
				chunkDst = dst.Duplicate()
			}
			scaler.ScaleChunk(chunkSrc, r.Start, r.End, chunkDst, dw, dh, data)
			return nil
		})
	}
	wg.Wait()
	return firstErr
}
