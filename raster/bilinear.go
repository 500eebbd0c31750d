package raster

// Bilinear resamples using the 2x2 neighborhood around each destination
// pixel's mapped source center, blending in premultiplied space.
type Bilinear struct{}

// bilinearColumn is the horizontal half of a destination pixel's 2x2
// neighborhood: it depends only on the destination column, not the row, so
// it is computed once per call and shared by every row of every chunk.
type bilinearColumn struct {
	x0, x1 int32
	wx0    float64
}

type bilinearRunData struct {
	sw, sh  int32
	columns []bilinearColumn
}

// ComputeRunData implements Scaler.
func (Bilinear) ComputeRunData(sw, sh, dw, dh int, parallel bool) RunData {
	cols := make([]bilinearColumn, dw)
	for dx := 0; dx < dw; dx++ {
		sx := srcCenter(dx, dw, sw)
		x0, frac := floorFrac(sx)
		cols[dx] = bilinearColumn{
			x0: clampCoord(x0, int32(sw)),
			x1: clampCoord(x0+1, int32(sw)),
			wx0: 1 - frac,
		}
	}
	return &bilinearRunData{sw: int32(sw), sh: int32(sh), columns: cols}
}

// SrcAreaThreshold implements Scaler.
func (Bilinear) SrcAreaThreshold() int64 { return Unbounded }

// DstAreaThreshold implements Scaler.
func (Bilinear) DstAreaThreshold() int64 { return 1 << 14 }

// NeedsDuplicatedViews implements Scaler.
func (Bilinear) NeedsDuplicatedViews() bool { return true }

// ScaleChunk implements Scaler.
func (Bilinear) ScaleChunk(src Source, yStart, yEnd int, dst Sink, dw, dh int, data RunData) {
	rd := data.(*bilinearRunData)

	var acc accumulator
	for dy := yStart; dy < yEnd; dy++ {
		sy := srcCenter(dy, dh, int(rd.sh))
		y0, fracY := floorFrac(sy)
		yy0 := clampCoord(y0, rd.sh)
		yy1 := clampCoord(y0+1, rd.sh)
		wy0 := 1 - fracY

		for dx := 0; dx < dw; dx++ {
			c := rd.columns[dx]
			acc.clear()
			acc.add(src.GetPremulARGB32(int(c.x0), int(yy0)), c.wx0*wy0)
			acc.add(src.GetPremulARGB32(int(c.x1), int(yy0)), (1-c.wx0)*wy0)
			acc.add(src.GetPremulARGB32(int(c.x0), int(yy1)), c.wx0*(1-wy0))
			acc.add(src.GetPremulARGB32(int(c.x1), int(yy1)), (1-c.wx0)*(1-wy0))
			dst.SetPremulARGB32(dx, dy, acc.emitUnit())
		}
	}
}
