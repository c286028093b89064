package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonhub/booking-service/internal/domain"
	appointmentRepo "github.com/salonhub/booking-service/internal/infra/storage/appointment"
	catalogRepo "github.com/salonhub/booking-service/internal/infra/storage/servicecatalog"
	"github.com/salonhub/booking-service/internal/service/scheduling"
	"github.com/salonhub/booking-service/pkg/ptr"
)

// How many alternative slots to offer when the requested time conflicts
const conflictSuggestionCount = 3

// UseCase creates appointments with the two-phase booking contract:
// the validator's verdict is an advisory pre-check, the insert inside a
// serializable transaction is the authoritative answer, and a losing race
// surfaces as ErrSlotTaken even after a clean verdict.
type UseCase struct {
	appointments AppointmentRepository
	catalog      ServiceCatalog
	settings     SettingsReader
	validator    BookingValidator
	suggester    SlotSuggester
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	appointments AppointmentRepository,
	catalog ServiceCatalog,
	settings SettingsReader,
	validator BookingValidator,
	suggester SlotSuggester,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		catalog:      catalog,
		settings:     settings,
		validator:    validator,
		suggester:    suggester,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute runs the create flow
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, staff=%d, service=%d, start=%s",
		req.ClientID, req.StaffID, req.ServiceID, req.StartAt.Format(time.RFC3339))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	service, err := uc.catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	candidate := &domain.Candidate{
		StaffID:   req.StaffID,
		ServiceID: ptr.Ptr(req.ServiceID),
		StartAt:   req.StartAt,
		EndAt:     req.StartAt.Add(time.Duration(service.DurationMinutes) * time.Minute),
	}

	var (
		verdict *domain.Verdict
		created *domain.Appointment
	)

	// Pre-check and insert share one serializable transaction so the
	// validator's reads are taken under the same snapshot the insert
	// commits against. The unique index still has the last word.
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
			// Nothing to insert; the verdict is the result.
			return nil
		}

		appt := &domain.Appointment{
			ClientID:     req.ClientID,
			StaffID:      req.StaffID,
			ServiceID:    req.ServiceID,
			StartAt:      candidate.StartAt,
			EndAt:        candidate.EndAt,
			Status:       domain.StatusConfirmed,
			ServiceName:  service.Name,
			ServicePrice: service.Price,
			Notes:        req.Notes,
		}

		created, err = uc.appointments.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("CreateAppointment: lost insert race for staff=%d start=%s",
				req.StaffID, req.StartAt.Format(time.RFC3339))
		}
		return nil, err
	}

	if !verdict.Valid {
		uc.logger.Info("CreateAppointment: rejected with %d reason(s)", len(verdict.Errors))
		return &Response{
			Verdict:     verdict,
			Suggestions: uc.suggestAlternatives(ctx, req, service, verdict),
		}, nil
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", created.ID)

	return &Response{
		Appointment: fromDomain(created),
		Verdict:     verdict,
	}, nil
}

// suggestAlternatives offers substitute slots when the rejection involves
// a conflict. Suggestion failures never mask the verdict; the caller just
// gets no alternatives.
func (uc *UseCase) suggestAlternatives(ctx context.Context, req *Request, service *domain.Service, verdict *domain.Verdict) []domain.Slot {
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
		uc.logger.Warn("CreateAppointment: cannot load limits for suggestions: %v", err)
		return nil
	}

	slots, err := uc.suggester.Suggest(ctx, req.StaffID, req.StartAt,
		service.DurationMinutes, limits.BufferMinutes, conflictSuggestionCount)
	if err != nil {
		uc.logger.Warn("CreateAppointment: failed to generate suggestions: %v", err)
		return nil
	}
	return slots
}

// validateRequest validates the request input
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
