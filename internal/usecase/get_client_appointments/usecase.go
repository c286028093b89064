package get_client_appointments

import (
	"context"
	"fmt"

	"github.com/salonhub/booking-service/internal/domain"
)

// UseCase returns a client's appointment history
type UseCase struct {
	appointments AppointmentRepository
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(appointments AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{appointments: appointments, logger: logger}
}

// Execute lists the client's appointments, newest first
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ClientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	appointments, err := uc.appointments.GetByClientWithFilter(ctx, domain.ClientAppointmentsFilter{
		ClientID: req.ClientID,
		Status:   req.Status,
	})
	if err != nil {
		uc.logger.Error("GetClientAppointments: failed to list appointments for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	return &Response{Appointments: appointments}, nil
}
