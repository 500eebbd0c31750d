package raster

// memImage is a flat, in-memory premul ARGB32 image used as a Source/Sink
// test double. It is the test-only stand-in for the external pixel-buffer
// adapter this package leaves to callers.
type memImage struct {
	w, h int
	pix  []uint32
}

func newMemImage(w, h int, fill uint32) *memImage {
	pix := make([]uint32, w*h)
	for i := range pix {
		pix[i] = fill
	}
	return &memImage{w: w, h: h, pix: pix}
}

func memImageFromRows(w, h int, rows ...uint32) *memImage {
	pix := make([]uint32, w*h)
	copy(pix, rows)
	return &memImage{w: w, h: h, pix: pix}
}

func (m *memImage) Width() int  { return m.w }
func (m *memImage) Height() int { return m.h }

func (m *memImage) GetPremulARGB32(x, y int) uint32 { return m.pix[y*m.w+x] }
func (m *memImage) SetPremulARGB32(x, y int, v uint32) {
	m.pix[y*m.w+x] = v
}
func (m *memImage) SetRawARGB32(x, y int, v uint32, isPremul bool) {
	if !isPremul {
		v = premultiply(v)
	}
	m.pix[y*m.w+x] = v
}

func (m *memImage) Duplicate() *memImage { return m }

// asSource/asSink adapt memImage's typed Duplicate to the Source/Sink
// interfaces, which require Duplicate to return the interface type.
func (m *memImage) asSource() Source { return memSource{m} }
func (m *memImage) asSink() Sink     { return memSink{m} }

type memSource struct{ m *memImage }

func (s memSource) Width() int                      { return s.m.Width() }
func (s memSource) Height() int                     { return s.m.Height() }
func (s memSource) GetPremulARGB32(x, y int) uint32 { return s.m.GetPremulARGB32(x, y) }
func (s memSource) Duplicate() Source               { return s }

type memSink struct{ m *memImage }

func (s memSink) SetPremulARGB32(x, y int, v uint32)          { s.m.SetPremulARGB32(x, y, v) }
func (s memSink) SetRawARGB32(x, y int, v uint32, isPremul bool) { s.m.SetRawARGB32(x, y, v, isPremul) }
func (s memSink) Duplicate() Sink                             { return s }

// fixedExecutor runs every submitted task on its own goroutine, bounded to
// workers concurrent at a time; workers <= 0 means unbounded.
type fixedExecutor struct {
	sem chan struct{}
}

func newFixedExecutor(workers int) *fixedExecutor {
	e := &fixedExecutor{}
	if workers > 0 {
		e.sem = make(chan struct{}, workers)
	}
	return e
}

func (e *fixedExecutor) Submit(task func() error) {
	if e.sem == nil {
		go task()
		return
	}
	e.sem <- struct{}{}
	go func() {
		defer func() { <-e.sem }()
		task()
	}()
}
