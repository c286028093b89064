package cancel_appointment

import "time"

// Request is the input for cancelling an appointment.
// Reason is optional and stored verbatim on the record.
type Request struct {
	AppointmentID int64
	ClientID      int64
	Reason        *string
}

// Response is the cancelled appointment as returned to callers
type Response struct {
	ID          int64
	ClientID    int64
	StaffID     int64
	StartAt     time.Time
	EndAt       time.Time
	Status      string
	CancelledAt time.Time
}
