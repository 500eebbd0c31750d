package raster

import (
	"sync/atomic"
	"testing"
)

func TestSplitRowsPartitionCompleteness(t *testing.T) {
	tests := []struct{ dh, n int }{
		{1, 1}, {1, 8}, {7, 1}, {7, 3}, {100, 7}, {500, 64}, {3, 10},
	}
	for _, tt := range tests {
		ranges := splitRows(tt.dh, tt.n)
		if len(ranges) == 0 {
			t.Fatalf("splitRows(%d, %d): empty result", tt.dh, tt.n)
		}
		if ranges[0].Start != 0 {
			t.Errorf("splitRows(%d, %d): first range starts at %d, want 0", tt.dh, tt.n, ranges[0].Start)
		}
		if last := ranges[len(ranges)-1].End; last != tt.dh {
			t.Errorf("splitRows(%d, %d): last range ends at %d, want %d", tt.dh, tt.n, last, tt.dh)
		}
		for i, r := range ranges {
			if r.End <= r.Start {
				t.Errorf("splitRows(%d, %d): range %d (%v) is empty", tt.dh, tt.n, i, r)
			}
			if i > 0 && r.Start != ranges[i-1].End {
				t.Errorf("splitRows(%d, %d): range %d does not abut range %d", tt.dh, tt.n, i, i-1)
			}
		}
	}
}

func TestRunChunkedDeterminismAcrossWorkerCounts(t *testing.T) {
	src := newMemImage(37, 29, 0)
	for i := range src.pix {
		src.pix[i] = uint32(0xFF000000 | (i*91)&0xFFFFFF)
	}

	scalers := map[string]Scaler{
		"nearest":    Nearest{},
		"bilinear":   Bilinear{},
		"bicubic":    Bicubic{},
		"boxsampled": Boxsampled{},
	}

	for name, scaler := range scalers {
		t.Run(name, func(t *testing.T) {
			// 300x250 is large enough that every scaler's destination-area
			// threshold yields more than one chunk when an executor is given.
			want := newMemImage(300, 250, 0)
			if err := RunChunked(src.asSource(), want.asSink(), 300, 250, scaler, nil); err != nil {
				t.Fatalf("sequential RunChunked: %v", err)
			}

			for _, workers := range []int{1, 2, 8} {
				got := newMemImage(300, 250, 0)
				exec := newFixedExecutor(workers)
				if err := RunChunked(src.asSource(), got.asSink(), 300, 250, scaler, exec); err != nil {
					t.Fatalf("parallel RunChunked (workers=%d): %v", workers, err)
				}
				for i := range want.pix {
					if want.pix[i] != got.pix[i] {
						t.Errorf("workers=%d: pixel %d differs: sequential=%#08x parallel=%#08x", workers, i, want.pix[i], got.pix[i])
						break
					}
				}
			}
		})
	}
}

func TestRunChunkedSurfacesTaskFailure(t *testing.T) {
	src := newMemImage(4000, 4000, 0xFF000000)
	dst := newMemImage(4000, 4000, 0)

	var calls int32
	panicky := panickyScaler{trigger: func() bool {
		return atomic.AddInt32(&calls, 1) == 3
	}}

	exec := newFixedExecutor(4)
	err := RunChunked(src.asSource(), dst.asSink(), 4000, 4000, panicky, exec)
	if err == nil {
		t.Fatal("expected an error from a panicking chunk task")
	}
}

// panickyScaler wraps Nearest but panics on the chunk for which trigger
// returns true, to exercise the scoped-release/first-error path.
type panickyScaler struct {
	trigger func() bool
}

func (p panickyScaler) ComputeRunData(sw, sh, dw, dh int, parallel bool) RunData {
	return Nearest{}.ComputeRunData(sw, sh, dw, dh, parallel)
}
func (p panickyScaler) SrcAreaThreshold() int64 { return Nearest{}.SrcAreaThreshold() }
func (p panickyScaler) DstAreaThreshold() int64 { return 1 << 10 }
func (p panickyScaler) NeedsDuplicatedViews() bool { return true }
func (p panickyScaler) ScaleChunk(src Source, yStart, yEnd int, dst Sink, dw, dh int, data RunData) {
	if p.trigger() {
		panic("boom")
	}
	Nearest{}.ScaleChunk(src, yStart, yEnd, dst, dw, dh, data)
}
