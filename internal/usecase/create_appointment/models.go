package create_appointment

import (
	"time"

	"github.com/salonhub/booking-service/internal/domain"
)

// Request is the input for creating an appointment.
// The end time is derived from the service's configured duration.
type Request struct {
	ClientID  int64
	StaffID   int64
	ServiceID int64
	StartAt   time.Time
	Notes     *string
}

// Response carries the outcome of a create attempt.
// When the pre-check rejects the request, Appointment is nil, Verdict
// lists every violated rule and, if the rejection involves a conflict,
// Suggestions offers alternative slots for the same staff member and day.
type Response struct {
	Appointment *CreatedAppointment
	Verdict     *domain.Verdict
	Suggestions []domain.Slot
}

// CreatedAppointment is the created appointment as returned to callers
type CreatedAppointment struct {
	ID           int64
	ClientID     int64
	StaffID      int64
	ServiceID    int64
	StartAt      time.Time
	EndAt        time.Time
	Status       string
	ServiceName  string
	ServicePrice float64
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func fromDomain(appt *domain.Appointment) *CreatedAppointment {
	return &CreatedAppointment{
		ID:           appt.ID,
		ClientID:     appt.ClientID,
		StaffID:      appt.StaffID,
		ServiceID:    appt.ServiceID,
		StartAt:      appt.StartAt,
		EndAt:        appt.EndAt,
		Status:       string(appt.Status),
		ServiceName:  appt.ServiceName,
		ServicePrice: appt.ServicePrice,
		Notes:        appt.Notes,
		CreatedAt:    appt.CreatedAt,
		UpdatedAt:    appt.UpdatedAt,
	}
}
