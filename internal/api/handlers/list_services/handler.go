package list_services

import (
	"net/http"

	"github.com/salonhub/booking-service/internal/api/handlers"
)

type Handler struct {
	useCase ListServicesUseCase
	logger  Logger
}

func NewHandler(useCase ListServicesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// ServiceView HTTP model of one menu entry
type ServiceView struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services []ServiceView `json:"services"`
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	views := make([]ServiceView, 0, len(result.Services))
	for _, service := range result.Services {
		views = append(views, ServiceView{
			ID:              service.ID,
			Name:            service.Name,
			DurationMinutes: service.DurationMinutes,
			Price:           service.Price,
		})
	}

	h.logger.Info("GET /services - Retrieved %d services", len(views))
	handlers.RespondJSON(w, http.StatusOK, &ServicesResponse{Services: views})
}
