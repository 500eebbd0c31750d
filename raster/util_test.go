package raster

import "testing"

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.5, 0},
		{-1.5, -1},
		{2.4999, 2},
	}
	for _, tt := range tests {
		if got := roundHalfUp(tt.in); got != tt.want {
			t.Errorf("roundHalfUp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampCoord(t *testing.T) {
	tests := []struct {
		c, n int32
		want int32
	}{
		{-1, 10, 0},
		{0, 10, 0},
		{9, 10, 9},
		{10, 10, 9},
		{100, 10, 9},
	}
	for _, tt := range tests {
		if got := clampCoord(tt.c, tt.n); got != tt.want {
			t.Errorf("clampCoord(%v, %v) = %v, want %v", tt.c, tt.n, got, tt.want)
		}
	}
}

func TestPremultiply(t *testing.T) {
	tests := []struct {
		in   uint32
		want uint32
	}{
		{0xFFFFFFFF, 0xFFFFFFFF},
		{0x00FFFFFF, 0x00000000},
		{0x80FF8000, 0x80804000},
	}
	for _, tt := range tests {
		if got := premultiply(tt.in); got != tt.want {
			t.Errorf("premultiply(%#08x) = %#08x, want %#08x", tt.in, got, tt.want)
		}
	}
}
