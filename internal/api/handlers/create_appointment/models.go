package create_appointment

import (
	"time"

	"github.com/salonhub/booking-service/internal/api/handlers"
	createAppointment "github.com/salonhub/booking-service/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	StaffID   int64   `json:"staffId"`
	ServiceID int64   `json:"serviceId"`
	StartAt   string  `json:"startAt"` // RFC3339
	Notes     *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model for a created appointment
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
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// RejectedResponse HTTP response model when the booking rules reject the
// requested time; suggestions are present when the rejection involves a
// scheduling conflict
type RejectedResponse struct {
	Valid       bool                `json:"valid"`
	Errors      []string            `json:"errors"`
	Suggestions []handlers.SlotView `json:"suggestions,omitempty"`
}

// ToUseCaseRequest converts the HTTP request to the use case model
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID int64) (*createAppointment.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientID:  clientID,
		StaffID:   r.StaffID,
		ServiceID: r.ServiceID,
		StartAt:   startAt,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
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
		Notes:        appt.Notes,
		CreatedAt:    appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    appt.UpdatedAt.Format(time.RFC3339),
	}
}
