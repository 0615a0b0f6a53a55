package analysis

import "errors"

var (
	// ErrIO tags failures reading or materializing the input file. These are
	// environmental and reported to the user as a single descriptive line.
	ErrIO = errors.New("io failure")

	// ErrValidation tags invariant violations raised while constructing the
	// result model. Under correct ranking these never occur; when one does it
	// is a programming defect and must surface loudly.
	ErrValidation = errors.New("validation failure")
)
