package get_appointment

import (
	"errors"
	"net/http"

	"github.com/salonhub/booking-service/internal/api/handlers"
	"github.com/salonhub/booking-service/internal/api/middleware"
	getAppointment "github.com/salonhub/booking-service/internal/usecase/get_appointment"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgMissingUserID        = "missing user id"
	msgNotFound             = "appointment not found"
	msgForbidden            = "access denied"
)

type Handler struct {
	useCase GetAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase GetAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathInt64(r, "appointmentId")
	if err != nil {
		h.logger.Warn("GET /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAppointment.Request{
		AppointmentID: appointmentID,
		ClientID:      clientID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAppointment.ErrInvalidInput):
			h.logger.Warn("GET /appointments/{id} - Invalid input: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		case errors.Is(err, getAppointment.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getAppointment.ErrAccessDenied):
			h.logger.Warn("GET /appointments/{id} - Access denied: appointment_id=%d, client_id=%d", appointmentID, clientID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /appointments/{id} - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{id} - Appointment retrieved: appointment_id=%d, client_id=%d",
		appointmentID, clientID)
	handlers.RespondJSON(w, http.StatusOK, handlers.AppointmentToView(result.Appointment))
}
