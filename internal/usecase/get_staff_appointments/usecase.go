package get_staff_appointments

import (
	"context"
	"fmt"

	"github.com/salonhub/booking-service/internal/domain"
)

// UseCase returns a staff member's day sheet
type UseCase struct {
	appointments AppointmentRepository
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(appointments AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{appointments: appointments, logger: logger}
}

// Execute lists the staff member's appointments for the day
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if req.Day.IsZero() {
		return nil, fmt.Errorf("%w: day is required", ErrInvalidInput)
	}

	appointments, err := uc.appointments.GetByStaffAndDay(ctx, domain.StaffDayFilter{
		StaffID:          req.StaffID,
		Day:              req.Day,
		IncludeCancelled: req.IncludeCancelled,
	})
	if err != nil {
		uc.logger.Error("GetStaffAppointments: failed to list appointments for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	return &Response{Appointments: appointments}, nil
}
