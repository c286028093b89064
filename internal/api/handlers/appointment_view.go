package handlers

import (
	"time"

	"github.com/salonhub/booking-service/internal/domain"
)

// AppointmentView is the JSON shape appointments are rendered with on
// every read endpoint
type AppointmentView struct {
	ID                 int64   `json:"id"`
	ClientID           int64   `json:"clientId"`
	StaffID            int64   `json:"staffId"`
	ServiceID          int64   `json:"serviceId"`
	StartAt            string  `json:"startAt"`
	EndAt              string  `json:"endAt"`
	Status             string  `json:"status"`
	ServiceName        string  `json:"serviceName"`
	ServicePrice       float64 `json:"servicePrice"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// AppointmentToView converts a domain appointment to its JSON shape
func AppointmentToView(appt *domain.Appointment) *AppointmentView {
	view := &AppointmentView{
		ID:           appt.ID,
		ClientID:     appt.ClientID,
		StaffID:      appt.StaffID,
		ServiceID:    appt.ServiceID,
		StartAt:      appt.StartAt.Format(time.RFC3339),
		EndAt:        appt.EndAt.Format(time.RFC3339),
		Status:       string(appt.Status),
		ServiceName:  appt.ServiceName,
		ServicePrice: appt.ServicePrice,
		Notes:        appt.Notes,
		CreatedAt:    appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    appt.UpdatedAt.Format(time.RFC3339),
	}

	view.CancellationReason = appt.CancellationReason
	if appt.CancelledAt != nil {
		cancelledAt := appt.CancelledAt.Format(time.RFC3339)
		view.CancelledAt = &cancelledAt
	}

	return view
}

// AppointmentsToViews converts a list of appointments
func AppointmentsToViews(appointments []*domain.Appointment) []*AppointmentView {
	views := make([]*AppointmentView, 0, len(appointments))
	for _, appt := range appointments {
		views = append(views, AppointmentToView(appt))
	}
	return views
}

// SlotView is the JSON shape of a suggested slot
type SlotView struct {
	StaffID int64  `json:"staffId"`
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
}

// SlotsToViews converts suggested slots to their JSON shape
func SlotsToViews(slots []domain.Slot) []SlotView {
	views := make([]SlotView, 0, len(slots))
	for _, slot := range slots {
		views = append(views, SlotView{
			StaffID: slot.StaffID,
			StartAt: slot.StartAt.Format(time.RFC3339),
			EndAt:   slot.EndAt.Format(time.RFC3339),
		})
	}
	return views
}
