package rescale

import (
	"errors"

	"github.com/orisano/rescale/raster"
)

// Sentinel errors returned (optionally wrapped with fmt.Errorf's %w) by
// Resize. Callers compare against these with errors.Is.
var (
	// ErrInvalidArgument is returned for a nil src or dst, or src and dst
	// being the same image. Kinds are not validated: a ScalingKind outside
	// the defined constants is resolved as Nearest.
	ErrInvalidArgument = errors.New("rescale: invalid argument")

	// ErrInvalidDimensions is returned for a zero width or height in
	// either image, or for dimensions whose area product would overflow
	// int32 (the chunk-split heuristic relies on non-overflow).
	ErrInvalidDimensions = errors.New("rescale: invalid dimensions")

	// ErrTaskFailure is the same sentinel raster.RunChunked wraps when a
	// chunk task fails, re-exported so callers only need to import this
	// package to compare against it with errors.Is.
	ErrTaskFailure = raster.ErrTaskFailure
)
