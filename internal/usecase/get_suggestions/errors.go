package get_suggestions

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_suggestions: invalid input data")

	// ErrServiceNotFound is returned when the requested service does not exist
	ErrServiceNotFound = errors.New("get_suggestions: service not found")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("get_suggestions: internal error")
)
