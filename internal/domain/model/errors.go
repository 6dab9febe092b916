package model

import "errors"

// Sentinel kinds for profile validation.
var (
	ErrInvalidProfile = errors.New("invalid preference profile")
)
