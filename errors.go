package objshape

import "errors"

var (
	// ErrInvalidGeometry is returned when a shape lacks the points required to build it,
	// or when a canvas is requested with non-positive dimensions.
	ErrInvalidGeometry = errors.New("objshape: invalid geometry")

	// ErrUnknownBlendMode is returned by ParseBlendMode for names outside the supported set.
	ErrUnknownBlendMode = errors.New("objshape: unknown blend mode")

	// ErrUnknownShape is returned for shape values the package cannot handle.
	ErrUnknownShape = errors.New("objshape: unknown shape")

	// ErrUnknownFormat is returned by Canvas.Encode for unsupported image formats.
	ErrUnknownFormat = errors.New("objshape: unknown image format")
)
