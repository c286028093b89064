package get_suggestions

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonhub/booking-service/internal/domain"
	catalogRepo "github.com/salonhub/booking-service/internal/infra/storage/servicecatalog"
)

// DefaultMaxSuggestions is used when the caller does not cap the result
const DefaultMaxSuggestions = 10

// UseCase exposes slot suggestions to the API. The buffer always comes
// from the stored booking limits so a suggested slot passes the exact
// validation a direct booking of it would run.
type UseCase struct {
	suggester SlotSuggester
	catalog   ServiceCatalog
	settings  SettingsReader
	logger    Logger
}

// NewUseCase creates the use case
func NewUseCase(
	suggester SlotSuggester,
	catalog ServiceCatalog,
	settings SettingsReader,
	logger Logger,
) *UseCase {
	return &UseCase{
		suggester: suggester,
		catalog:   catalog,
		settings:  settings,
		logger:    logger,
	}
}

// Execute resolves the duration and policy and generates the slots
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSuggestions: staff=%d, date=%s, service=%v, duration=%d",
		req.StaffID, req.Date.Format(domain.DateFormat), req.ServiceID, req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSuggestions: validation failed: %v", err)
		return nil, err
	}

	durationMinutes := req.DurationMinutes
	if req.ServiceID != nil {
		service, err := uc.catalog.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetSuggestions: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetSuggestions: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		durationMinutes = service.DurationMinutes
	}

	limits, err := uc.settings.GetBookingLimits(ctx)
	if err != nil {
		uc.logger.Error("GetSuggestions: failed to get booking limits: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking limits: %v", ErrInternal, err)
	}

	maxSuggestions := req.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}

	slots, err := uc.suggester.Suggest(ctx, req.StaffID, req.Date,
		durationMinutes, limits.BufferMinutes, maxSuggestions)
	if err != nil {
		uc.logger.Error("GetSuggestions: suggestion generation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{
		StaffID:         req.StaffID,
		Date:            req.Date,
		DurationMinutes: durationMinutes,
		Slots:           slots,
	}, nil
}

func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.ServiceID == nil && req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: either serviceId or a positive durationMinutes is required", ErrInvalidInput)
	}
	return nil
}
