package reschedule_appointment

import (
	"time"

	"github.com/salonhub/booking-service/internal/domain"
)

// Request is the input for moving an appointment to a new start time.
// The duration of the existing appointment is preserved.
type Request struct {
	AppointmentID int64
	ClientID      int64
	StartAt       time.Time
}

// Response carries the outcome of a reschedule attempt, mirroring the
// create flow: a nil Appointment with a populated Verdict means the new
// time was rejected.
type Response struct {
	Appointment *RescheduledAppointment
	Verdict     *domain.Verdict
	Suggestions []domain.Slot
}

// RescheduledAppointment is the moved appointment as returned to callers
type RescheduledAppointment struct {
	ID           int64
	ClientID     int64
	StaffID      int64
	ServiceID    int64
	StartAt      time.Time
	EndAt        time.Time
	Status       string
	ServiceName  string
	ServicePrice float64
}
