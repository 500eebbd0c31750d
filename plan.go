package rescale

// planKind is one of the tagged Plan variants.
type planKind int

const (
	planCopy planKind = iota
	planSingle
	planDownThenUp
	planPreDownThenRest
)

// Plan is the composer's output: how to get from (SW, SH) to (DW, DH)
// using one or two passes.
type Plan struct {
	kind planKind

	// Single
	kind1 ScalingKind

	// DownThenUp / PreDownThenRest
	down, up ScalingKind
	maxRatio float64
}

// compose applies the composer's simplification rules to (k1, k2) in
// order and returns the resulting Plan. sw, sh, dw, dh are the source and
// destination dimensions; downscaleFirst selects DownThenUp over
// PreDownThenRest when the pair doesn't collapse to a single pass.
func compose(k1, k2 ScalingKind, sw, sh, dw, dh int, downscaleFirst bool) Plan {
	if sw == dw && sh == dh {
		return Plan{kind: planCopy}
	}

	// Pixel-aligned integer upscaling: BOXSAMPLED on an exact integer
	// multiple degenerates to NEAREST (replication), which is both
	// equivalent and far cheaper.
	if k2 == Boxsampled && dw%sw == 0 && dh%sh == 0 {
		k1, k2 = Nearest, Nearest
	}

	// Upscaling is never iterated: an iterative kind in the "up" slot
	// lowers to its plain base.
	if k2.iterative() {
		k2 = k2.base()
	}

	// Collapse an iterative/plain pair that now agree on base kind: the
	// iterative halving loop already reaches the exact destination on
	// its own, so a separate up pass adds nothing.
	if (k1 == IterBilinear && k2 == Bilinear) || (k1 == IterBicubic && k2 == Bicubic) {
		k2 = k1
	}

	if k1 == k2 {
		return Plan{kind: planSingle, kind1: k1}
	}
	if downscaleFirst {
		return Plan{kind: planDownThenUp, down: k1, up: k2}
	}
	return Plan{kind: planPreDownThenRest, down: k1, up: k2, maxRatio: 2.0}
}

// idempotent reports whether re-composing p's own (effective) kind pair
// against the same dimensions yields an identical plan; used to verify the
// composer's simplification rules are a fixed point.
func (p Plan) idempotent(sw, sh, dw, dh int, downscaleFirst bool) bool {
	k1, k2 := p.kindPair()
	return compose(k1, k2, sw, sh, dw, dh, downscaleFirst) == p
}

func (p Plan) kindPair() (k1, k2 ScalingKind) {
	switch p.kind {
	case planSingle:
		return p.kind1, p.kind1
	case planDownThenUp, planPreDownThenRest:
		return p.down, p.up
	default:
		return Nearest, Nearest
	}
}
