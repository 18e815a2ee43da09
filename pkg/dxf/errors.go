package dxf

import "errors"

// Errors returned by the dxf package. Check them with errors.Is.
var (
	// ErrUnsupportedUnits is returned by NewDocument for an unknown unit name.
	ErrUnsupportedUnits = errors.New("dxf: unsupported units")

	// ErrNonASCII is returned by Save when the rendered drawing contains
	// characters outside 7-bit ASCII (typically in a layer name).
	ErrNonASCII = errors.New("dxf: output is not ASCII")
)
