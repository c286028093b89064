package create_appointment

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrServiceNotFound is returned when the requested service does not exist
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceInactive is returned when the requested service is not bookable
	ErrServiceInactive = errors.New("create_appointment: service is not bookable")

	// ErrSlotTaken is returned when the insert loses the race for the slot.
	// The pre-check verdict is advisory; this error is the authoritative
	// conflict signal from the store's uniqueness constraint.
	ErrSlotTaken = errors.New("create_appointment: slot was taken by a concurrent booking")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("create_appointment: internal error")
)
