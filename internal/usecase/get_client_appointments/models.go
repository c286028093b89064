package get_client_appointments

import (
	"github.com/salonhub/booking-service/internal/domain"
)

// Request selects a client's appointments, optionally by status
type Request struct {
	ClientID int64
	Status   *domain.AppointmentStatus
}

// Response is the client's appointment list, newest first
type Response struct {
	Appointments []*domain.Appointment
}
