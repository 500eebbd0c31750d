// Package rescale resizes a rectangular raster of premultiplied ARGB32
// pixels from one size to another using nearest-neighbor, bilinear,
// bicubic, or area-weighted box sampling, optionally wrapped in an
// iterative halving pass to avoid aliasing on strong downscales.
//
// It does not decode or encode image files and does not own pixel storage:
// callers supply a PixelSource and PixelSink, and optionally an Executor to
// run the resize across multiple goroutines.
package rescale
