package filter

import "errors"

// Sentinel kinds for filter errors.
var (
	ErrUnknownField = errors.New("unknown filter field")
)
