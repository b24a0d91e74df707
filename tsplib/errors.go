package tsplib

import "errors"

var (
	// ErrFileNotFound is returned when the given path cannot be opened.
	ErrFileNotFound = errors.New("tsplib: file not found")

	// ErrMalformedFile is returned for structurally invalid content: a
	// non-numeric DIMENSION, a coordinate line with the wrong field
	// count, or a node index outside [1, DIMENSION].
	ErrMalformedFile = errors.New("tsplib: malformed file")

	// ErrMissingSection is returned when DIMENSION or NODE_COORD_SECTION
	// is absent, or NODE_COORD_SECTION ends without an EOF marker.
	ErrMissingSection = errors.New("tsplib: missing required section")

	// ErrUnsupportedWeightType is returned when EDGE_WEIGHT_TYPE is
	// present and names anything other than EUC_2D.
	ErrUnsupportedWeightType = errors.New("tsplib: unsupported edge weight type")
)
