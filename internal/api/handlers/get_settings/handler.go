package get_settings

import (
	"net/http"

	"github.com/salonhub/booking-service/internal/api/handlers"
	"github.com/salonhub/booking-service/internal/domain"
)

type Handler struct {
	useCase GetSettingsUseCase
	logger  Logger
}

func NewHandler(useCase GetSettingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SettingsResponse HTTP response model
type SettingsResponse struct {
	BusinessHours *domain.BusinessHours `json:"businessHours"`
	BookingLimits *domain.BookingLimits `json:"bookingLimits"`
}

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /settings - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /settings - Settings retrieved")
	handlers.RespondJSON(w, http.StatusOK, &SettingsResponse{
		BusinessHours: result.BusinessHours,
		BookingLimits: result.BookingLimits,
	})
}
