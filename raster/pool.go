package raster

import "sync"

// BufferPool maintains a sync.Pool of premul ARGB32 pixel slices keyed by
// pixel count, so the iterative downscaler's intermediate images reuse
// backing arrays across iterations and across calls instead of allocating a
// fresh one every pass.
type BufferPool struct {
	cache map[int]*sync.Pool
	mu    sync.Mutex
}

// NewBufferPool creates a BufferPool.
func NewBufferPool() *BufferPool {
	return &BufferPool{cache: make(map[int]*sync.Pool)}
}

func (p *BufferPool) getPool(pixLen int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	pool, ok := p.cache[pixLen]
	if !ok {
		pool = &sync.Pool{
			New: func() interface{} {
				buf := make([]uint32, pixLen)
				return &buf
			},
		}
		p.cache[pixLen] = pool
	}
	return pool
}

// Get returns a BufferImage of the given dimensions, its backing slice taken
// from the pool. Contents are not zeroed; every pixel is overwritten by a
// scaler before it is ever read back, so a stale pixel from a prior borrower
// is never observed.
func (p *BufferPool) Get(width, height int) *BufferImage {
	pix := p.getPool(width * height).Get().(*[]uint32)
	return &BufferImage{w: width, h: height, pix: *pix, owner: p}
}

// Put returns b's backing slice to the pool. b must not be used afterward.
func (p *BufferPool) Put(b *BufferImage) {
	if b == nil {
		return
	}
	p.getPool(len(b.pix)).Put(&b.pix)
}

// BufferImage is a flat, premultiplied-ARGB32 intermediate image used by
// the iterative downscaler between passes. It is never exposed directly as
// a Source or Sink (see AsSource/AsSink): Go cannot let one concrete type
// satisfy both Source.Duplicate() Source and Sink.Duplicate() Sink with a
// single method, since the two differ only in result type, so the two
// views are thin wrappers sharing the same backing BufferImage.
type BufferImage struct {
	w, h  int
	pix   []uint32
	owner *BufferPool
}

// AsSource returns a Source view over b.
func (b *BufferImage) AsSource() Source { return bufSource{b} }

// AsSink returns a Sink view over b.
func (b *BufferImage) AsSink() Sink { return bufSink{b} }

type bufSource struct{ b *BufferImage }

func (s bufSource) Width() int  { return s.b.w }
func (s bufSource) Height() int { return s.b.h }
func (s bufSource) GetPremulARGB32(x, y int) uint32 {
	return s.b.pix[y*s.b.w+x]
}
func (s bufSource) Duplicate() Source { return s }

type bufSink struct{ b *BufferImage }

func (s bufSink) SetPremulARGB32(x, y int, v uint32) {
	s.b.pix[y*s.b.w+x] = v
}
func (s bufSink) SetRawARGB32(x, y int, v uint32, isPremul bool) {
	if !isPremul {
		v = premultiply(v)
	}
	s.b.pix[y*s.b.w+x] = v
}
func (s bufSink) Duplicate() Sink { return s }
