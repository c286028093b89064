package get_client_appointments

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_client_appointments: invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("get_client_appointments: internal error")
)
