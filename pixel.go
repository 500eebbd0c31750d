package rescale

import "github.com/orisano/rescale/raster"

// PixelSource is the read side of the pixel I/O adapter contract: an image
// implementation exposes per-pixel, random-access reads of premultiplied
// ARGB32 at (x, y), plus a thread-safe Duplicate for concurrent chunk
// workers. Storage and format conversion are the caller's responsibility.
type PixelSource = raster.Source

// PixelSink is the write side of the pixel I/O adapter contract.
type PixelSink = raster.Sink

// Executor runs independent tasks, possibly concurrently; see NewExecutor
// for the default implementation backed by golang.org/x/sync/errgroup.
type Executor = raster.Executor
