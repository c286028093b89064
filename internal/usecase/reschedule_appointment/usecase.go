package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonhub/booking-service/internal/domain"
	appointmentRepo "github.com/salonhub/booking-service/internal/infra/storage/appointment"
	"github.com/salonhub/booking-service/internal/service/scheduling"
	"github.com/salonhub/booking-service/pkg/ptr"
)

const conflictSuggestionCount = 3

// UseCase moves an existing appointment to a new time. The candidate
// carries the appointment's own id as the exclusion, so the appointment
// never conflicts with itself, and the same advisory-check-then-
// authoritative-write contract as creation applies.
type UseCase struct {
	appointments AppointmentRepository
	settings     SettingsReader
	validator    BookingValidator
	suggester    SlotSuggester
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	appointments AppointmentRepository,
	settings SettingsReader,
	validator BookingValidator,
	suggester SlotSuggester,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		settings:     settings,
		validator:    validator,
		suggester:    suggester,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute runs the reschedule flow
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: appointment=%d, client=%d, newStart=%s",
		req.AppointmentID, req.ClientID, req.StartAt.Format(time.RFC3339))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	existing, err := uc.appointments.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if existing.ClientID != req.ClientID {
		uc.logger.Warn("RescheduleAppointment: client=%d does not own appointment id=%d",
			req.ClientID, req.AppointmentID)
		return nil, ErrAccessDenied
	}
	if !existing.CanBeRescheduled() {
		uc.logger.Warn("RescheduleAppointment: appointment id=%d has status=%s, cannot reschedule",
			req.AppointmentID, existing.Status)
		return nil, ErrCannotReschedule
	}

	duration := existing.Duration()
	candidate := &domain.Candidate{
		StaffID:              existing.StaffID,
		ServiceID:            ptr.Ptr(existing.ServiceID),
		StartAt:              req.StartAt,
		EndAt:                req.StartAt.Add(duration),
		ExcludeAppointmentID: ptr.Ptr(existing.ID),
	}

	var verdict *domain.Verdict

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		v, err := uc.validator.Validate(txCtx, candidate)
		if err != nil {
			if errors.Is(err, scheduling.ErrInvalidCandidate) {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return fmt.Errorf("%w: validation: %v", ErrInternal, err)
		}
		verdict = v

		if !verdict.Valid {
			return nil
		}

		if err := uc.appointments.Reschedule(txCtx, existing.ID, candidate.StartAt, candidate.EndAt); err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to reschedule: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("RescheduleAppointment: lost update race for staff=%d start=%s",
				existing.StaffID, req.StartAt.Format(time.RFC3339))
		}
		return nil, err
	}

	if !verdict.Valid {
		uc.logger.Info("RescheduleAppointment: rejected with %d reason(s)", len(verdict.Errors))
		return &Response{
			Verdict:     verdict,
			Suggestions: uc.suggestAlternatives(ctx, existing, req.StartAt, int(duration.Minutes()), verdict),
		}, nil
	}

	uc.logger.Info("RescheduleAppointment: successfully moved appointment id=%d", existing.ID)

	return &Response{
		Appointment: &RescheduledAppointment{
			ID:           existing.ID,
			ClientID:     existing.ClientID,
			StaffID:      existing.StaffID,
			ServiceID:    existing.ServiceID,
			StartAt:      candidate.StartAt,
			EndAt:        candidate.EndAt,
			Status:       string(existing.Status),
			ServiceName:  existing.ServiceName,
			ServicePrice: existing.ServicePrice,
		},
		Verdict: verdict,
	}, nil
}

func (uc *UseCase) suggestAlternatives(ctx context.Context, existing *domain.Appointment, date time.Time, durationMinutes int, verdict *domain.Verdict) []domain.Slot {
	hasConflict := false
	for _, reason := range verdict.Errors {
		if scheduling.IsConflictReason(reason) {
			hasConflict = true
			break
		}
	}
	if !hasConflict {
		return nil
	}

	limits, err := uc.settings.GetBookingLimits(ctx)
	if err != nil {
		uc.logger.Warn("RescheduleAppointment: cannot load limits for suggestions: %v", err)
		return nil
	}

	slots, err := uc.suggester.Suggest(ctx, existing.StaffID, date,
		durationMinutes, limits.BufferMinutes, conflictSuggestionCount)
	if err != nil {
		uc.logger.Warn("RescheduleAppointment: failed to generate suggestions: %v", err)
		return nil
	}
	return slots
}

func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}
	return nil
}
