package raster

import "math"

// bicubicA is the Mitchell-family cubic parameter fixed by the spec.
const bicubicA = -0.5

// cubicWeight evaluates the cubic convolution kernel with a = bicubicA at
// distance t from the sample point.
func cubicWeight(t float64) float64 {
	x := math.Abs(t)
	switch {
	case x <= 1:
		return x*x*(x*(bicubicA+2)-(bicubicA+3)) + 1
	case x <= 2:
		return bicubicA * (x*x*(x-5) + 8*x - 4)
	default:
		return 0
	}
}

// Bicubic resamples using a 4x4 neighborhood and the Mitchell-family cubic
// kernel (a = -0.5), blending in premultiplied space. Weights can be
// negative, so the accumulator's sums are signed and only saturated at
// emit time.
type Bicubic struct{}

// bicubicTap is the weight and clamped source coordinate for one of the
// four taps along one axis.
type bicubicTap struct {
	coord  int32
	weight float64
}

type bicubicRunData struct {
	// columns and rows each hold dw (resp. dh) 4-slot tap sets. Since the
	// horizontal taps depend only on the destination column and the
	// vertical taps only on the destination row, both are computed once
	// per call and shared across every chunk.
	columns [][4]bicubicTap
	rows    [][4]bicubicTap
}

func bicubicTaps(dn, sn int) [][4]bicubicTap {
	taps := make([][4]bicubicTap, dn)
	for d := 0; d < dn; d++ {
		s := srcCenter(d, dn, sn)
		floor, frac := floorFrac(s)
		var t [4]bicubicTap
		for i, k := range [4]int32{-1, 0, 1, 2} {
			t[i] = bicubicTap{
				coord:  clampCoord(floor+k, int32(sn)),
				weight: cubicWeight(frac - float64(k)),
			}
		}
		taps[d] = t
	}
	return taps
}

// ComputeRunData implements Scaler.
func (Bicubic) ComputeRunData(sw, sh, dw, dh int, parallel bool) RunData {
	return &bicubicRunData{
		columns: bicubicTaps(dw, sw),
		rows:    bicubicTaps(dh, sh),
	}
}

// SrcAreaThreshold implements Scaler.
func (Bicubic) SrcAreaThreshold() int64 { return Unbounded }

// DstAreaThreshold implements Scaler.
func (Bicubic) DstAreaThreshold() int64 { return 1 << 13 }

// NeedsDuplicatedViews implements Scaler.
func (Bicubic) NeedsDuplicatedViews() bool { return true }

// ScaleChunk implements Scaler.
func (Bicubic) ScaleChunk(src Source, yStart, yEnd int, dst Sink, dw, dh int, data RunData) {
	rd := data.(*bicubicRunData)

	var acc accumulator
	for dy := yStart; dy < yEnd; dy++ {
		rowTaps := rd.rows[dy]
		for dx := 0; dx < dw; dx++ {
			colTaps := rd.columns[dx]
			acc.clear()
			for _, rt := range rowTaps {
				if rt.weight == 0 {
					continue
				}
				for _, ct := range colTaps {
					if ct.weight == 0 {
						continue
					}
					acc.add(src.GetPremulARGB32(int(ct.coord), int(rt.coord)), ct.weight*rt.weight)
				}
			}
			dst.SetPremulARGB32(dx, dy, acc.emitUnit())
		}
	}
}
