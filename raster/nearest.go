package raster

import "math"

// Nearest resamples by a single source-pixel read per destination pixel.
// It never enters premul interpolation space: the source pixel is copied
// to the destination verbatim via SetRawARGB32, so no premultiply or
// unpremultiply conversion ever runs on this path.
type Nearest struct{}

// nearestRunData caches the destination-column-to-source-column map so
// every row of every chunk reuses the same lookup instead of recomputing
// round((dx+0.5)*(sw/dw)-0.5) per pixel.
type nearestRunData struct {
	siByDx []int32
	sjByDy []int32
}

// ComputeRunData implements Scaler.
func (Nearest) ComputeRunData(sw, sh, dw, dh int, parallel bool) RunData {
	return &nearestRunData{
		siByDx: nearestIndexMap(dw, sw),
		sjByDy: nearestIndexMap(dh, sh),
	}
}

func nearestIndexMap(dn, sn int) []int32 {
	m := make([]int32, dn)
	scale := float64(sn) / float64(dn)
	for d := 0; d < dn; d++ {
		c := (float64(d)+0.5)*scale - 0.5
		i := int32(math.Floor(c + 0.5))
		m[d] = clampCoord(i, int32(sn))
	}
	return m
}

// SrcAreaThreshold implements Scaler: nearest never needs to split on
// source area, only on how much destination work there is.
func (Nearest) SrcAreaThreshold() int64 { return Unbounded }

// DstAreaThreshold implements Scaler.
func (Nearest) DstAreaThreshold() int64 { return 1 << 16 }

// NeedsDuplicatedViews implements Scaler.
func (Nearest) NeedsDuplicatedViews() bool { return true }

// ScaleChunk implements Scaler.
func (Nearest) ScaleChunk(src Source, yStart, yEnd int, dst Sink, dw, dh int, data RunData) {
	rd := data.(*nearestRunData)

	// Cache the current source row/column and reuse the pixel across
	// consecutive destination columns that resolve to the same source
	// cell, which is common when upscaling.
	for dy := yStart; dy < yEnd; dy++ {
		sy := int(rd.sjByDy[dy])
		lastSx := int32(-1)
		var lastPixel uint32
		for dx := 0; dx < dw; dx++ {
			sx := rd.siByDx[dx]
			var p uint32
			if sx == lastSx {
				p = lastPixel
			} else {
				p = src.GetPremulARGB32(int(sx), sy)
				lastSx = sx
				lastPixel = p
			}
			dst.SetRawARGB32(dx, dy, p, true)
		}
	}
}
