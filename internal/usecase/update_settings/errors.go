package update_settings

import "errors"

var (
	// ErrInvalidInput is returned for malformed or out-of-bounds settings
	ErrInvalidInput = errors.New("update_settings: invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("update_settings: internal error")
)
