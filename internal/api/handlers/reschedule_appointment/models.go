package reschedule_appointment

import (
	"time"

	"github.com/salonhub/booking-service/internal/api/handlers"
	rescheduleAppointment "github.com/salonhub/booking-service/internal/usecase/reschedule_appointment"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	StartAt string `json:"startAt"` // RFC3339
}

// AppointmentResponse HTTP response model for a moved appointment
type AppointmentResponse struct {
	ID           int64   `json:"id"`
	ClientID     int64   `json:"clientId"`
	StaffID      int64   `json:"staffId"`
	ServiceID    int64   `json:"serviceId"`
	StartAt      string  `json:"startAt"`
	EndAt        string  `json:"endAt"`
	Status       string  `json:"status"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
}

// RejectedResponse HTTP response model when the booking rules reject the
// new time
type RejectedResponse struct {
	Valid       bool                `json:"valid"`
	Errors      []string            `json:"errors"`
	Suggestions []handlers.SlotView `json:"suggestions,omitempty"`
}

// FromUseCaseResponse converts the use case response to the HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *AppointmentResponse {
	appt := resp.Appointment
	return &AppointmentResponse{
		ID:           appt.ID,
		ClientID:     appt.ClientID,
		StaffID:      appt.StaffID,
		ServiceID:    appt.ServiceID,
		StartAt:      appt.StartAt.Format(time.RFC3339),
		EndAt:        appt.EndAt.Format(time.RFC3339),
		Status:       appt.Status,
		ServiceName:  appt.ServiceName,
		ServicePrice: appt.ServicePrice,
	}
}
