package get_appointment

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/salonhub/booking-service/internal/infra/storage/appointment"
)

// UseCase returns a single appointment to its owner
type UseCase struct {
	appointments AppointmentRepository
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(appointments AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{appointments: appointments, logger: logger}
}

// Execute fetches the appointment and checks ownership
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if req.ClientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	appt, err := uc.appointments.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("GetAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if appt.ClientID != req.ClientID {
		uc.logger.Warn("GetAppointment: client=%d does not own appointment=%d", req.ClientID, req.AppointmentID)
		return nil, ErrAccessDenied
	}

	return &Response{Appointment: appt}, nil
}
