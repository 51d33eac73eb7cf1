package verify

import "errors"

// Sentinel kinds for verification errors.
var (
	ErrVerificationFailed = errors.New("verification failed")
)
