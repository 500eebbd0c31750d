package raster

import "math"

// Unbounded is used as a scaler's area threshold when splitting on that
// dimension is never worthwhile; chunkCount treats it as contributing at
// most one chunk.
const Unbounded int64 = math.MaxInt32

// RunData is an opaque per-call payload a Scaler computes once before a
// resize and hands to every chunk task. It typically caches data that
// depends only on geometry (source/destination size), not on the row
// range a particular chunk owns, so every chunk can reuse it without
// recomputation.
type RunData interface{}

// Scaler is the capability set every resampling kernel satisfies. Tagged
// dispatch (the Facade's switch over ScalingKind in resolveScaler) is preferred
// over virtual inheritance, per the design notes: every kernel is a
// concrete type implementing this interface.
type Scaler interface {
	// ScaleChunk resamples destination rows [yStart, yEnd) from src into
	// dst. It must be safe to call concurrently with other ScaleChunk
	// calls on the same Scaler value, for disjoint row ranges.
	ScaleChunk(src Source, yStart, yEnd int, dst Sink, dw, dh int, data RunData)

	// ComputeRunData builds the per-call RunData for a src/dst pair of a
	// given size. parallel reports whether the caller intends to invoke
	// ScaleChunk from multiple goroutines; none of the kernels in this
	// package vary their RunData on it.
	ComputeRunData(sw, sh, dw, dh int, parallel bool) RunData

	// SrcAreaThreshold and DstAreaThreshold are the source/destination
	// pixel-area thresholds past which ChunkEngine considers parallel
	// splitting worthwhile. Unbounded means "never split on this axis".
	SrcAreaThreshold() int64
	DstAreaThreshold() int64

	// NeedsDuplicatedViews reports whether ChunkEngine must call
	// Duplicate on src and dst before handing them to a worker. Every
	// kernel in this package reads and writes through whatever view it
	// is given without caring who else holds a handle, so all of them
	// return true; a hypothetical scaler wrapping a non-reentrant
	// external blitter could return false to skip the duplication cost.
	NeedsDuplicatedViews() bool
}
