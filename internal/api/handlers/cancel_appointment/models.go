package cancel_appointment

import (
	"time"

	cancelAppointment "github.com/salonhub/booking-service/internal/usecase/cancel_appointment"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// CancelledResponse HTTP response model
type CancelledResponse struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"clientId"`
	StaffID     int64  `json:"staffId"`
	StartAt     string `json:"startAt"`
	EndAt       string `json:"endAt"`
	Status      string `json:"status"`
	CancelledAt string `json:"cancelledAt"`
}

// FromUseCaseResponse converts the use case response to the HTTP response
func FromUseCaseResponse(resp *cancelAppointment.Response) *CancelledResponse {
	return &CancelledResponse{
		ID:          resp.ID,
		ClientID:    resp.ClientID,
		StaffID:     resp.StaffID,
		StartAt:     resp.StartAt.Format(time.RFC3339),
		EndAt:       resp.EndAt.Format(time.RFC3339),
		Status:      resp.Status,
		CancelledAt: resp.CancelledAt.Format(time.RFC3339),
	}
}
