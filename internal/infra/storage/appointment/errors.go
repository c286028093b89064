package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when an appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken is returned when an insert or reschedule hits the
	// partial unique index on (staff_id, start_at) for non-cancelled rows.
	// This is the authoritative conflict signal: the validator's pre-check
	// is advisory and a concurrent booking can still win the race to insert.
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
