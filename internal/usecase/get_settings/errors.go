package get_settings

import "errors"

var (
	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("get_settings: internal error")
)
