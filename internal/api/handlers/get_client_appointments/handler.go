package get_client_appointments

import (
	"errors"
	"net/http"

	"github.com/salonhub/booking-service/internal/api/handlers"
	"github.com/salonhub/booking-service/internal/api/middleware"
	"github.com/salonhub/booking-service/internal/domain"
	getClientAppointments "github.com/salonhub/booking-service/internal/usecase/get_client_appointments"
)

const (
	msgInvalidClientID = "invalid client id"
	msgInvalidStatus   = "invalid status filter"
	msgMissingUserID   = "missing user id"
	msgForbidden       = "access denied"
)

type Handler struct {
	useCase GetClientAppointmentsUseCase
	logger  Logger
}

func NewHandler(useCase GetClientAppointmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// AppointmentsResponse HTTP response model
type AppointmentsResponse struct {
	Appointments []*handlers.AppointmentView `json:"appointments"`
}

// Handle GET /api/v1/clients/{clientId}/appointments?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := handlers.PathInt64(r, "clientId")
	if err != nil {
		h.logger.Warn("GET /clients/{id}/appointments - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /clients/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Clients may only read their own history
	if userID != clientID {
		h.logger.Warn("GET /clients/{id}/appointments - Access denied: client_id=%d, user_id=%d", clientID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var status *domain.AppointmentStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed := domain.AppointmentStatus(raw)
		if !parsed.IsValid() {
			h.logger.Warn("GET /clients/{id}/appointments - Invalid status: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		status = &parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getClientAppointments.Request{
		ClientID: clientID,
		Status:   status,
	})
	if err != nil {
		switch {
		case errors.Is(err, getClientAppointments.ErrInvalidInput):
			h.logger.Warn("GET /clients/{id}/appointments - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidClientID)

		default:
			h.logger.Error("GET /clients/{id}/appointments - Failed: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{id}/appointments - Retrieved %d appointments: client_id=%d",
		len(result.Appointments), clientID)
	handlers.RespondJSON(w, http.StatusOK, &AppointmentsResponse{
		Appointments: handlers.AppointmentsToViews(result.Appointments),
	})
}
