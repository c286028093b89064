package reschedule_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/salonhub/booking-service/internal/api/handlers"
	"github.com/salonhub/booking-service/internal/api/middleware"
	rescheduleAppointment "github.com/salonhub/booking-service/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidStartAt       = "invalid startAt, RFC3339 timestamp expected"
	msgMissingUserID        = "missing user id"
	msgNotFound             = "appointment not found"
	msgForbidden            = "access denied"
	msgCannotReschedule     = "the appointment can no longer be rescheduled"
	msgSlotTaken            = "the selected time slot was just taken, please pick another"
	msgInvalidInput         = "invalid appointment data"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathInt64(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Failed to parse startAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		ClientID:      clientID,
		StartAt:       startAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid input: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleAppointment.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Access denied: appointment_id=%d, client_id=%d", appointmentID, clientID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleAppointment.ErrCannotReschedule):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Cannot reschedule: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotReschedule)

		case errors.Is(err, rescheduleAppointment.ErrSlotTaken):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Slot taken: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		default:
			h.logger.Error("PATCH /appointments/{id}/reschedule - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Appointment == nil {
		h.logger.Info("PATCH /appointments/{id}/reschedule - Rejected by booking rules: appointment_id=%d, reasons=%d",
			appointmentID, len(result.Verdict.Errors))
		handlers.RespondJSON(w, http.StatusUnprocessableEntity, &RejectedResponse{
			Valid:       false,
			Errors:      result.Verdict.Errors,
			Suggestions: handlers.SlotsToViews(result.Suggestions),
		})
		return
	}

	h.logger.Info("PATCH /appointments/{id}/reschedule - Appointment moved: appointment_id=%d, client_id=%d",
		appointmentID, clientID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
