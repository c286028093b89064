package get_appointment

import (
	"github.com/salonhub/booking-service/internal/domain"
)

// Request identifies the appointment and the client asking for it
type Request struct {
	AppointmentID int64
	ClientID      int64
}

// Response is the appointment as returned to callers
type Response struct {
	Appointment *domain.Appointment
}
