package cancel_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonhub/booking-service/internal/domain"
	apptRepo "github.com/salonhub/booking-service/internal/infra/storage/appointment"
)

// UseCase cancels a client's appointment, enforcing ownership and the
// configured cancellation lead time
type UseCase struct {
	appointments AppointmentRepository
	settings     SettingsReader
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	appointments AppointmentRepository,
	settings SettingsReader,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		settings:     settings,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute cancels the appointment
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAppointment: appointment=%d, client=%d", req.AppointmentID, req.ClientID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelAppointment: validation failed: %v", err)
		return nil, err
	}

	appt, err := uc.appointments.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("CancelAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if appt.ClientID != req.ClientID {
		uc.logger.Warn("CancelAppointment: client=%d does not own appointment=%d", req.ClientID, req.AppointmentID)
		return nil, ErrAccessDenied
	}

	if appt.IsCancelled() {
		return nil, ErrAlreadyCancelled
	}
	if !appt.CanBeCancelled() {
		uc.logger.Warn("CancelAppointment: appointment=%d has status %s", req.AppointmentID, appt.Status)
		return nil, ErrCannotCancel
	}

	limits, err := uc.settings.GetBookingLimits(ctx)
	if err != nil {
		uc.logger.Error("CancelAppointment: failed to get booking limits: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking limits: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	deadline := appt.StartAt.Add(-time.Duration(limits.CancellationHours) * time.Hour)
	if now.After(deadline) {
		uc.logger.Warn("CancelAppointment: appointment=%d is past the %dh cancellation deadline",
			req.AppointmentID, limits.CancellationHours)
		return nil, fmt.Errorf("%w: appointments must be cancelled at least %d hours in advance",
			ErrTooLateToCancel, limits.CancellationHours)
	}

	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}

	if err := uc.appointments.Cancel(ctx, req.AppointmentID, reason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("CancelAppointment: failed to cancel appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelAppointment: appointment=%d cancelled", req.AppointmentID)

	return &Response{
		ID:          appt.ID,
		ClientID:    appt.ClientID,
		StaffID:     appt.StaffID,
		StartAt:     appt.StartAt,
		EndAt:       appt.EndAt,
		Status:      string(domain.StatusCancelled),
		CancelledAt: now,
	}, nil
}

func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxCancelReasonLength {
		return fmt.Errorf("%w: cancellation reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancelReasonLength)
	}
	return nil
}
