package reschedule_appointment

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrAccessDenied is returned when the client does not own the appointment
	ErrAccessDenied = errors.New("reschedule_appointment: access denied")

	// ErrCannotReschedule is returned when the appointment's status does not
	// allow moving it
	ErrCannotReschedule = errors.New("reschedule_appointment: appointment cannot be rescheduled")

	// ErrSlotTaken is returned when the update loses the race for the new
	// slot; the store's uniqueness constraint is the authoritative signal
	ErrSlotTaken = errors.New("reschedule_appointment: slot was taken by a concurrent booking")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
