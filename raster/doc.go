// Package raster implements the resampling kernels, the pixel accumulator,
// and the parallel row-chunk dispatch engine that back github.com/orisano/rescale.
//
// Nothing here decodes or encodes images, and nothing here knows about
// on-disk formats: every scaler reads through a Source and writes through a
// Sink, both defined in this package (the parent package re-exports them as
// PixelSource and PixelSink), so raster stays storage-agnostic.
package raster
