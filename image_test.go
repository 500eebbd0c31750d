package rescale

// memImage is a flat in-memory premul ARGB32 PixelSource/PixelSink test
// double, standing in for the external image adapter this package leaves
// to callers.
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

func (m *memImage) Width() int                      { return m.w }
func (m *memImage) Height() int                     { return m.h }
func (m *memImage) GetPremulARGB32(x, y int) uint32 { return m.pix[y*m.w+x] }
func (m *memImage) SetPremulARGB32(x, y int, v uint32) {
	m.pix[y*m.w+x] = v
}
func (m *memImage) SetRawARGB32(x, y int, v uint32, isPremul bool) {
	// Test fixtures only ever feed already-premultiplied data through this
	// path; straight-alpha conversion isn't exercised here.
	m.pix[y*m.w+x] = v
}

// Duplicate returns m itself: the memory is safe to share read-only across
// workers, and writers are always given disjoint rows by the chunk engine.
// It returns *memImage, so memImage satisfies neither PixelSource nor
// PixelSink; the memSource and memSink wrappers below do.
func (m *memImage) Duplicate() *memImage { return m }

func (m *memImage) asSource() PixelSource { return memSource{m} }
func (m *memImage) asSink() PixelSink     { return memSink{m} }

type memSource struct{ m *memImage }

func (s memSource) Width() int                      { return s.m.Width() }
func (s memSource) Height() int                     { return s.m.Height() }
func (s memSource) GetPremulARGB32(x, y int) uint32 { return s.m.GetPremulARGB32(x, y) }
func (s memSource) Duplicate() PixelSource           { return s }
func (s memSource) aliasKey() interface{}            { return s.m }

type memSink struct{ m *memImage }

func (s memSink) SetPremulARGB32(x, y int, v uint32) { s.m.SetPremulARGB32(x, y, v) }
func (s memSink) SetRawARGB32(x, y int, v uint32, isPremul bool) {
	s.m.SetRawARGB32(x, y, v, isPremul)
}
func (s memSink) Duplicate() PixelSink  { return s }
func (s memSink) aliasKey() interface{} { return s.m }
