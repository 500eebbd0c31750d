package raster

// Copy implements the degenerate same-size resize: each destination pixel
// is its corresponding source pixel, verbatim, with no resampling. It
// still goes through the ordinary ScaleChunk/ChunkEngine machinery so a
// large same-size "resize" still parallelizes across rows.
type Copy struct{}

type copyRunData struct{}

// ComputeRunData implements Scaler.
func (Copy) ComputeRunData(sw, sh, dw, dh int, parallel bool) RunData { return copyRunData{} }

// SrcAreaThreshold implements Scaler.
func (Copy) SrcAreaThreshold() int64 { return Unbounded }

// DstAreaThreshold implements Scaler.
func (Copy) DstAreaThreshold() int64 { return 1 << 16 }

// NeedsDuplicatedViews implements Scaler.
func (Copy) NeedsDuplicatedViews() bool { return true }

// ScaleChunk implements Scaler.
func (Copy) ScaleChunk(src Source, yStart, yEnd int, dst Sink, dw, dh int, data RunData) {
	for dy := yStart; dy < yEnd; dy++ {
		for dx := 0; dx < dw; dx++ {
			dst.SetRawARGB32(dx, dy, src.GetPremulARGB32(dx, dy), true)
		}
	}
}
