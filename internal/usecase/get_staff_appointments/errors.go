package get_staff_appointments

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_staff_appointments: invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("get_staff_appointments: internal error")
)
