package get_staff_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/salonhub/booking-service/internal/api/handlers"
	"github.com/salonhub/booking-service/internal/domain"
	getStaffAppointments "github.com/salonhub/booking-service/internal/usecase/get_staff_appointments"
)

const (
	msgInvalidStaffID = "invalid staff id"
	msgInvalidDate    = "invalid date, YYYY-MM-DD expected"
)

type Handler struct {
	useCase GetStaffAppointmentsUseCase
	logger  Logger
}

func NewHandler(useCase GetStaffAppointmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// AppointmentsResponse HTTP response model
type AppointmentsResponse struct {
	StaffID      int64                       `json:"staffId"`
	Date         string                      `json:"date"`
	Appointments []*handlers.AppointmentView `json:"appointments"`
}

// Handle GET /api/v1/staff/{staffId}/appointments?date=&includeCancelled=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/appointments - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	day, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /staff/{id}/appointments - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeCancelled := r.URL.Query().Get("includeCancelled") == "true"

	result, err := h.useCase.Execute(r.Context(), &getStaffAppointments.Request{
		StaffID:          staffID,
		Day:              day,
		IncludeCancelled: includeCancelled,
	})
	if err != nil {
		switch {
		case errors.Is(err, getStaffAppointments.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/appointments - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)

		default:
			h.logger.Error("GET /staff/{id}/appointments - Failed: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/appointments - Retrieved %d appointments: staff_id=%d, date=%s",
		len(result.Appointments), staffID, day.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, &AppointmentsResponse{
		StaffID:      staffID,
		Date:         day.Format(domain.DateFormat),
		Appointments: handlers.AppointmentsToViews(result.Appointments),
	})
}
