package get_appointment

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_appointment: invalid input data")

	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("get_appointment: appointment not found")

	// ErrAccessDenied is returned when the client does not own the appointment
	ErrAccessDenied = errors.New("get_appointment: access denied")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("get_appointment: internal error")
)
