package dataset

import "errors"

// Sentinel kinds for assembly errors.
var (
	ErrEmptyAssembly  = errors.New("empty assembly")
	ErrSchemaMismatch = errors.New("schema mismatch across cohort frames")
)
