package matching

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrInvalidLimit = errors.New("invalid result limit")
	// ErrUnavailable marks failures of external collaborators (history
	// persistence). The ranking response is all-or-nothing per request.
	ErrUnavailable = errors.New("collaborator unavailable")
)
