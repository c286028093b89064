package cancel_appointment

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("cancel_appointment: invalid input data")

	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("cancel_appointment: appointment not found")

	// ErrAccessDenied is returned when the client does not own the appointment
	ErrAccessDenied = errors.New("cancel_appointment: access denied")

	// ErrAlreadyCancelled is returned when the appointment is cancelled already
	ErrAlreadyCancelled = errors.New("cancel_appointment: appointment is already cancelled")

	// ErrCannotCancel is returned when the appointment's status does not
	// allow cancellation
	ErrCannotCancel = errors.New("cancel_appointment: appointment cannot be cancelled")

	// ErrTooLateToCancel is returned when the cancellation deadline has passed
	ErrTooLateToCancel = errors.New("cancel_appointment: cancellation deadline has passed")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("cancel_appointment: internal error")
)
