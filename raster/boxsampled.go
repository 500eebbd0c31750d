package raster

import "math"

// boxEpsilon guards against pathological sub-pixel leaks: area ratios below
// it are treated as zero contribution rather than risking a read at a
// coordinate whose weight rounds to nothing anyway.
const boxEpsilon = 1 / float64(math.MaxInt32)

// Boxsampled resamples by exact area-weighted averaging: every destination
// pixel's value is the area-weighted mean of every source pixel its
// footprint overlaps. It has a fast integer path for aligned shrinking
// (SW%DW=0, SH%DH=0) and a general path that clips each destination
// pixel's source-space footprint against the image bounds and integrates
// it exactly.
type Boxsampled struct{}

// boxAxis holds one axis's (x or y) exact-coverage parameters for a single
// destination column or row: the two edge pixels (f0, f1) with their
// fractional coverage (lo, hi), the inclusive range of fully covered
// pixels [fullMin, fullMax] (empty when fullMin > fullMax), and the total
// clipped span, used to build inv_surface together with the other axis.
type boxAxis struct {
	f0, f1           int32
	lo, hi           float64
	fullMin, fullMax int32
	clip             float64
}

// axisParams computes a boxAxis for a destination pixel whose footprint is
// centered at center and spans span source-pixel widths, against an axis
// of n source pixels.
func axisParams(center, span float64, n int32) boxAxis {
	half := span / 2
	rectMin := center - half
	rectMax := center + half
	clippedMin := clampf(rectMin, -0.5, float64(n)-0.5)
	clippedMax := clampf(rectMax, -0.5, float64(n)-0.5)
	clip := clippedMax - clippedMin
	if clip <= 0 {
		return boxAxis{clip: 0}
	}

	dMin := clippedMin + 0.5
	dMax := clippedMax + 0.5
	f0 := int32(math.Floor(dMin))
	f1 := int32(math.Floor(dMax))

	if f0 == f1 || float64(f0+1) == dMax {
		return boxAxis{
			f0:      clampCoord(f0, n),
			f1:      clampCoord(f0, n),
			lo:      dMax - dMin,
			hi:      0,
			fullMin: f0 + 1,
			fullMax: f0,
			clip:    clip,
		}
	}

	return boxAxis{
		f0:      clampCoord(f0, n),
		f1:      clampCoord(f1, n),
		lo:      float64(f0+1) - dMin,
		hi:      dMax - float64(f1),
		fullMin: f0 + 1,
		fullMax: f1 - 1,
		clip:    clip,
	}
}

type boxsampledRunData struct {
	sw, sh int32

	fastPath       bool
	sxSpan, sySpan int32
	invSurfaceFast float64

	// cols holds one boxAxis per destination column, shared by every row
	// and every chunk since the horizontal footprint never depends on
	// the destination row.
	cols []boxAxis
}

// ComputeRunData implements Scaler.
func (Boxsampled) ComputeRunData(sw, sh, dw, dh int, parallel bool) RunData {
	if dw > 0 && dh > 0 && sw%dw == 0 && sh%dh == 0 {
		sxSpan, sySpan := sw/dw, sh/dh
		return &boxsampledRunData{
			sw: int32(sw), sh: int32(sh),
			fastPath: true,
			sxSpan:   int32(sxSpan), sySpan: int32(sySpan),
			invSurfaceFast: 1 / (float64(sxSpan) * float64(sySpan)),
		}
	}

	dxSpan := float64(sw) / float64(dw)
	cols := make([]boxAxis, dw)
	for dx := 0; dx < dw; dx++ {
		cols[dx] = axisParams(srcCenter(dx, dw, sw), dxSpan, int32(sw))
	}
	return &boxsampledRunData{sw: int32(sw), sh: int32(sh), cols: cols}
}

// SrcAreaThreshold implements Scaler: box sampling's general path iterates
// the source window per pixel, so heavy downscales are split on source
// area too, not just destination area.
func (Boxsampled) SrcAreaThreshold() int64 { return 1 << 16 }

// DstAreaThreshold implements Scaler.
func (Boxsampled) DstAreaThreshold() int64 { return 1 << 14 }

// NeedsDuplicatedViews implements Scaler.
func (Boxsampled) NeedsDuplicatedViews() bool { return true }

// ScaleChunk implements Scaler.
func (Boxsampled) ScaleChunk(src Source, yStart, yEnd int, dst Sink, dw, dh int, data RunData) {
	rd := data.(*boxsampledRunData)
	if rd.fastPath {
		scaleBoxAligned(src, yStart, yEnd, dst, dw, rd)
		return
	}
	scaleBoxGeneral(src, yStart, yEnd, dst, dw, dh, rd)
}

func scaleBoxAligned(src Source, yStart, yEnd int, dst Sink, dw int, rd *boxsampledRunData) {
	var acc accumulator
	sxSpan, sySpan := int(rd.sxSpan), int(rd.sySpan)
	for dy := yStart; dy < yEnd; dy++ {
		sy0 := dy * sySpan
		for dx := 0; dx < dw; dx++ {
			sx0 := dx * sxSpan
			acc.clear()
			for j := 0; j < sySpan; j++ {
				for i := 0; i < sxSpan; i++ {
					acc.addFull(src.GetPremulARGB32(sx0+i, sy0+j))
				}
			}
			dst.SetPremulARGB32(dx, dy, acc.emitScaled(rd.invSurfaceFast))
		}
	}
}

func scaleBoxGeneral(src Source, yStart, yEnd int, dst Sink, dw, dh int, rd *boxsampledRunData) {
	dySpan := float64(rd.sh) / float64(dh)
	var acc accumulator
	for dy := yStart; dy < yEnd; dy++ {
		cy := srcCenter(dy, dh, int(rd.sh))
		yAxis := axisParams(cy, dySpan, rd.sh)

		for dx := 0; dx < dw; dx++ {
			xAxis := rd.cols[dx]

			if xAxis.clip <= 0 || yAxis.clip <= 0 {
				cx := srcCenter(dx, dw, int(rd.sw))
				sx := clampCoord(int32(roundHalfUp(cx)), rd.sw)
				sy := clampCoord(int32(roundHalfUp(cy)), rd.sh)
				dst.SetPremulARGB32(dx, dy, src.GetPremulARGB32(int(sx), int(sy)))
				continue
			}

			invSurface := 1 / (xAxis.clip * yAxis.clip)
			acc.clear()

			if w := xAxis.lo * yAxis.lo; w > boxEpsilon {
				acc.add(src.GetPremulARGB32(int(xAxis.f0), int(yAxis.f0)), w)
			}
			if yAxis.lo > boxEpsilon {
				for cx := xAxis.fullMin; cx <= xAxis.fullMax; cx++ {
					acc.add(src.GetPremulARGB32(int(cx), int(yAxis.f0)), yAxis.lo)
				}
			}
			if w := xAxis.hi * yAxis.lo; w > boxEpsilon {
				acc.add(src.GetPremulARGB32(int(xAxis.f1), int(yAxis.f0)), w)
			}

			for cy := yAxis.fullMin; cy <= yAxis.fullMax; cy++ {
				if xAxis.lo > boxEpsilon {
					acc.add(src.GetPremulARGB32(int(xAxis.f0), int(cy)), xAxis.lo)
				}
				for cx := xAxis.fullMin; cx <= xAxis.fullMax; cx++ {
					acc.addFull(src.GetPremulARGB32(int(cx), int(cy)))
				}
				if xAxis.hi > boxEpsilon {
					acc.add(src.GetPremulARGB32(int(xAxis.f1), int(cy)), xAxis.hi)
				}
			}

			if w := xAxis.lo * yAxis.hi; w > boxEpsilon {
				acc.add(src.GetPremulARGB32(int(xAxis.f0), int(yAxis.f1)), w)
			}
			if yAxis.hi > boxEpsilon {
				for cx := xAxis.fullMin; cx <= xAxis.fullMax; cx++ {
					acc.add(src.GetPremulARGB32(int(cx), int(yAxis.f1)), yAxis.hi)
				}
			}
			if w := xAxis.hi * yAxis.hi; w > boxEpsilon {
				acc.add(src.GetPremulARGB32(int(xAxis.f1), int(yAxis.f1)), w)
			}

			dst.SetPremulARGB32(dx, dy, acc.emitScaled(invSurface))
		}
	}
}
