package raster

import "math"

// srcCenter maps destination index d (of span dn) to the source coordinate
// of the destination pixel's center, per the geometry convention shared by
// every non-nearest scaler: sx = (d + 0.5) * (sn/dn) - 0.5.
func srcCenter(d, dn, sn int) float64 {
	return (float64(d)+0.5)*(float64(sn)/float64(dn)) - 0.5
}

// floorFrac splits a source coordinate into its floor and fractional part.
func floorFrac(s float64) (floor int32, frac float64) {
	f := math.Floor(s)
	return int32(f), s - f
}
