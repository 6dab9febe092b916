package history

import "errors"

// Sentinel kinds for history errors.
var (
	ErrInvalidRequester = errors.New("invalid requester id")
	ErrBatchTooLarge    = errors.New("history batch exceeds emission cap")
)
