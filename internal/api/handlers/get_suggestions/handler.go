package get_suggestions

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/salonhub/booking-service/internal/api/handlers"
	"github.com/salonhub/booking-service/internal/domain"
	getSuggestions "github.com/salonhub/booking-service/internal/usecase/get_suggestions"
	"github.com/salonhub/booking-service/pkg/ptr"
)

const (
	msgInvalidStaffID  = "invalid staff id"
	msgInvalidDate     = "invalid date, YYYY-MM-DD expected"
	msgInvalidQuery    = "invalid query parameters"
	msgServiceNotFound = "service not found"
)

type Handler struct {
	useCase GetSuggestionsUseCase
	logger  Logger
}

func NewHandler(useCase GetSuggestionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SuggestionsResponse HTTP response model
type SuggestionsResponse struct {
	StaffID         int64               `json:"staffId"`
	Date            string              `json:"date"`
	DurationMinutes int                 `json:"durationMinutes"`
	Slots           []handlers.SlotView `json:"slots"`
}

// Handle GET /api/v1/staff/{staffId}/suggestions?date=&serviceId=&durationMinutes=&max=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/suggestions - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /staff/{id}/suggestions - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getSuggestions.Request{
		StaffID: staffID,
		Date:    date,
	}

	if raw := query.Get("serviceId"); raw != "" {
		serviceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || serviceID <= 0 {
			h.logger.Warn("GET /staff/{id}/suggestions - Invalid serviceId: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.ServiceID = ptr.Ptr(serviceID)
	}

	if raw := query.Get("durationMinutes"); raw != "" {
		duration, err := strconv.Atoi(raw)
		if err != nil || duration <= 0 {
			h.logger.Warn("GET /staff/{id}/suggestions - Invalid durationMinutes: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.DurationMinutes = duration
	}

	if raw := query.Get("max"); raw != "" {
		max, err := strconv.Atoi(raw)
		if err != nil || max <= 0 {
			h.logger.Warn("GET /staff/{id}/suggestions - Invalid max: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.MaxSuggestions = max
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSuggestions.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/suggestions - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, getSuggestions.ErrServiceNotFound):
			h.logger.Warn("GET /staff/{id}/suggestions - Service not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /staff/{id}/suggestions - Failed: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/suggestions - Generated %d slots: staff_id=%d, date=%s",
		len(result.Slots), staffID, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, &SuggestionsResponse{
		StaffID:         result.StaffID,
		Date:            result.Date.Format(domain.DateFormat),
		DurationMinutes: result.DurationMinutes,
		Slots:           handlers.SlotsToViews(result.Slots),
	})
}
