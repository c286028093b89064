package update_settings

import (
	"errors"
	"net/http"

	"github.com/salonhub/booking-service/internal/api/handlers"
	"github.com/salonhub/booking-service/internal/domain"
	updateSettings "github.com/salonhub/booking-service/internal/usecase/update_settings"
)

const (
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	useCase UpdateSettingsUseCase
	logger  Logger
}

func NewHandler(useCase UpdateSettingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// UpdateSettingsRequest HTTP request model; both documents are optional
// but at least one must be present
type UpdateSettingsRequest struct {
	BusinessHours *domain.BusinessHours `json:"businessHours,omitempty"`
	BookingLimits *domain.BookingLimits `json:"bookingLimits,omitempty"`
}

// SettingsResponse HTTP response model echoing the stored documents
type SettingsResponse struct {
	BusinessHours *domain.BusinessHours `json:"businessHours,omitempty"`
	BookingLimits *domain.BookingLimits `json:"bookingLimits,omitempty"`
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateSettings.Request{
		BusinessHours: req.BusinessHours,
		BookingLimits: req.BookingLimits,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateSettings.ErrInvalidInput):
			h.logger.Warn("PUT /settings - Rejected: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /settings - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings updated")
	handlers.RespondJSON(w, http.StatusOK, &SettingsResponse{
		BusinessHours: result.BusinessHours,
		BookingLimits: result.BookingLimits,
	})
}
