package cohort

import "errors"

// Sentinel kinds for cohort configuration errors.
var (
	ErrInvalidSpec        = errors.New("invalid cohort spec")
	ErrInvalidMatrix      = errors.New("invalid correlation matrix")
	ErrInvalidSizeRange   = errors.New("invalid firm-size range")
	ErrInvalidSampleCount = errors.New("invalid sample count")
	ErrDuplicateName      = errors.New("duplicate cohort name")
)
