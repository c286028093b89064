package get_settings

import (
	"context"
	"fmt"
)

// UseCase exposes the effective salon configuration
type UseCase struct {
	settings SettingsRepository
	logger   Logger
}

// NewUseCase creates the use case
func NewUseCase(settings SettingsRepository, logger Logger) *UseCase {
	return &UseCase{settings: settings, logger: logger}
}

// Execute reads both configuration documents
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	hours, err := uc.settings.GetBusinessHours(ctx)
	if err != nil {
		uc.logger.Error("GetSettings: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	limits, err := uc.settings.GetBookingLimits(ctx)
	if err != nil {
		uc.logger.Error("GetSettings: failed to get booking limits: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking limits: %v", ErrInternal, err)
	}

	return &Response{
		BusinessHours: hours,
		BookingLimits: limits,
	}, nil
}
