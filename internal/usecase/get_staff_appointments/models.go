package get_staff_appointments

import (
	"time"

	"github.com/salonhub/booking-service/internal/domain"
)

// Request selects one staff member's appointments for a calendar day
type Request struct {
	StaffID          int64
	Day              time.Time
	IncludeCancelled bool
}

// Response is the staff member's day sheet in chronological order
type Response struct {
	Appointments []*domain.Appointment
}
