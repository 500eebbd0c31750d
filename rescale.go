package rescale

import (
	"fmt"
	"math"

	"github.com/orisano/rescale/raster"
)

// maxArea is the largest width*height this package will accept; larger
// products could overflow the int32 arithmetic the chunk-split heuristic
// relies on.
const maxArea = math.MaxInt32

// ResizeOption configures a single Resize call.
type ResizeOption func(*resizeOptions)

type resizeOptions struct {
	downscaleFirst bool
	allowSrcDirect bool
	allowDstDirect bool
}

func defaultResizeOptions() resizeOptions {
	return resizeOptions{downscaleFirst: true, allowSrcDirect: true, allowDstDirect: true}
}

// WithDownscaleFirst controls whether a resize that shrinks one axis and
// grows the other shrinks first (DownThenUp) or only pre-shrinks enough to
// stay within the iterative halving ratio before finishing in one pass
// (PreDownThenRest). Defaults to true.
func WithDownscaleFirst(v bool) ResizeOption {
	return func(o *resizeOptions) { o.downscaleFirst = v }
}

// WithAllowSrcDirect controls whether the source image may be read through
// directly rather than via a defensive adapter. Defaults to true.
func WithAllowSrcDirect(v bool) ResizeOption {
	return func(o *resizeOptions) { o.allowSrcDirect = v }
}

// WithAllowDstDirect controls whether the destination image may be written
// through directly rather than via a defensive adapter. Defaults to true.
func WithAllowDstDirect(v bool) ResizeOption {
	return func(o *resizeOptions) { o.allowDstDirect = v }
}

// Facade is the single entry point. It holds a buffer pool for
// iterative-halving and two-stage intermediates; scalers are stateless
// values chosen per call by resolveScaler. It is safe for concurrent use by
// multiple goroutines.
type Facade struct {
	pool *raster.BufferPool
}

// New creates a Facade.
func New() *Facade {
	return &Facade{pool: raster.NewBufferPool()}
}

// Resize scales src into dst using kFirst and kSecond, composed per the
// composer's simplification rules, dispatched across exec if non-nil or
// run inline otherwise.
func (f *Facade) Resize(kFirst, kSecond ScalingKind, src PixelSource, dst PixelSink, exec Executor, opts ...ResizeOption) error {
	o := defaultResizeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if src == nil || dst == nil {
		return fmt.Errorf("%w: src and dst must be non-nil", ErrInvalidArgument)
	}
	if sameImage(src, dst) {
		return fmt.Errorf("%w: src and dst must not be the same image", ErrInvalidArgument)
	}

	sw, sh := src.Width(), src.Height()
	dw, dh := dst.Width(), dst.Height()
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return fmt.Errorf("%w: width and height must be positive", ErrInvalidDimensions)
	}
	if int64(sw)*int64(sh) > maxArea || int64(dw)*int64(dh) > maxArea {
		return fmt.Errorf("%w: image area too large", ErrInvalidDimensions)
	}

	srcView := directOrDuplicate(src, o.allowSrcDirect)
	dstView := directOrDuplicate(dst, o.allowDstDirect)

	plan := compose(kFirst, kSecond, sw, sh, dw, dh, o.downscaleFirst)
	return f.run(plan, srcView, dstView, dw, dh, exec)
}

// aliasKeyer is an optional interface a PixelSource or PixelSink adapter
// may implement to expose the identity of its underlying storage. Source
// and Sink views are necessarily distinct wrapper types (Go has no way for
// one method to satisfy both Duplicate() Source and Duplicate() Sink), so
// a plain == between a PixelSource and a PixelSink value can never match
// even when they wrap the same storage; aliasKey lets an adapter opt into
// being recognized anyway.
type aliasKeyer interface {
	aliasKey() interface{}
}

// sameImage reports whether src and dst are the same underlying image,
// rejecting aliasing per the validation contract. It checks aliasKey first
// since that's the only reliable signal across the Source/Sink wrapper
// split, then falls back to direct == for the (now rare) case of a
// concrete type passed as both parameters untyped. Concrete
// implementations aren't guaranteed comparable (one could embed a slice),
// so a == that would panic is treated as "not the same image".
func sameImage(src PixelSource, dst PixelSink) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	if sk, ok := src.(aliasKeyer); ok {
		if dk, ok := dst.(aliasKeyer); ok {
			return sk.aliasKey() == dk.aliasKey()
		}
	}
	return interface{}(src) == interface{}(dst)
}

// directOrDuplicate returns src's own handle when direct access is
// allowed, or a duplicated view otherwise. Duplicating up front means the
// rest of the pipeline never has to special-case "may this be shared".
func directOrDuplicate(src PixelSource, allowDirect bool) PixelSource {
	if allowDirect {
		return src
	}
	return src.Duplicate()
}

func (f *Facade) run(plan Plan, src PixelSource, dst PixelSink, dw, dh int, exec Executor) error {
	switch plan.kind {
	case planCopy:
		return raster.RunChunked(src, dst, dw, dh, raster.Copy{}, exec)

	case planSingle:
		return f.runStage(plan.kind1, src, dst, dw, dh, exec)

	case planDownThenUp:
		sw, sh := src.Width(), src.Height()
		midW, midH := minInt(sw, dw), minInt(sh, dh)
		if midW == dw && midH == dh {
			return f.runStage(plan.down, src, dst, dw, dh, exec)
		}
		mid := f.pool.Get(midW, midH)
		defer f.pool.Put(mid)
		if err := f.runStage(plan.down, src, mid.AsSink(), midW, midH, exec); err != nil {
			return err
		}
		return f.runStage(plan.up, mid.AsSource(), dst, dw, dh, exec)

	case planPreDownThenRest:
		pre := resolveScaler(plan.down.base())
		rest := resolveScaler(plan.up.base())
		return raster.RunIterative(pre, rest, plan.maxRatio, src, dst, dw, dh, exec, f.pool)

	default:
		return fmt.Errorf("%w: unknown plan kind", ErrInvalidArgument)
	}
}

// runStage executes a single ScalingKind from src to (dw, dh) into dst,
// routing iterative kinds through the halving loop and plain kinds
// straight through the chunk engine.
func (f *Facade) runStage(kind ScalingKind, src PixelSource, dst PixelSink, dw, dh int, exec Executor) error {
	if kind.iterative() {
		base := resolveScaler(kind.base())
		return raster.RunIterative(base, base, 2.0, src, dst, dw, dh, exec, f.pool)
	}
	return raster.RunChunked(src, dst, dw, dh, resolveScaler(kind), exec)
}

func resolveScaler(kind ScalingKind) raster.Scaler {
	switch kind {
	case Nearest:
		return raster.Nearest{}
	case Bilinear:
		return raster.Bilinear{}
	case Bicubic:
		return raster.Bicubic{}
	case Boxsampled:
		return raster.Boxsampled{}
	default:
		// IterBilinear/IterBicubic never reach here: runStage and
		// planPreDownThenRest both resolve iterative kinds to their
		// base before calling resolveScaler.
		return raster.Nearest{}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
