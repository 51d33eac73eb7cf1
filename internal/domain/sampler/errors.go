package sampler

import "errors"

// Sentinel kinds for sampling errors.
var (
	ErrNotPositiveDefinite = errors.New("correlation matrix not positive definite")
)
