package frame

import "errors"

// Sentinel kinds for frame errors.
var (
	ErrInvalidFrame = errors.New("invalid frame")
	ErrNoSuchColumn = errors.New("no such column")
	ErrColumnKind   = errors.New("column kind mismatch")
)
