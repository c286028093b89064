package update_settings

import (
	"context"
	"fmt"

	"github.com/salonhub/booking-service/internal/domain"
)

// UseCase validates and stores the salon configuration
type UseCase struct {
	settings SettingsRepository
	logger   Logger
}

// NewUseCase creates the use case
func NewUseCase(settings SettingsRepository, logger Logger) *UseCase {
	return &UseCase{settings: settings, logger: logger}
}

// Execute validates the supplied documents and stores each one that is
// present. Validation runs for both documents before either is written so
// a rejected request leaves the store untouched.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BusinessHours == nil && req.BookingLimits == nil {
		return nil, fmt.Errorf("%w: at least one of businessHours or bookingLimits is required", ErrInvalidInput)
	}

	if req.BusinessHours != nil {
		if err := validateBusinessHours(req.BusinessHours); err != nil {
			uc.logger.Warn("UpdateSettings: business hours rejected: %v", err)
			return nil, err
		}
	}
	if req.BookingLimits != nil {
		if err := validateBookingLimits(req.BookingLimits); err != nil {
			uc.logger.Warn("UpdateSettings: booking limits rejected: %v", err)
			return nil, err
		}
	}

	if req.BusinessHours != nil {
		if err := uc.settings.UpsertBusinessHours(ctx, req.BusinessHours); err != nil {
			uc.logger.Error("UpdateSettings: failed to store business hours: %v", err)
			return nil, fmt.Errorf("%w: failed to store business hours: %v", ErrInternal, err)
		}
		uc.logger.Info("UpdateSettings: business hours updated")
	}
	if req.BookingLimits != nil {
		if err := uc.settings.UpsertBookingLimits(ctx, req.BookingLimits); err != nil {
			uc.logger.Error("UpdateSettings: failed to store booking limits: %v", err)
			return nil, fmt.Errorf("%w: failed to store booking limits: %v", ErrInternal, err)
		}
		uc.logger.Info("UpdateSettings: booking limits updated")
	}

	return &Response{
		BusinessHours: req.BusinessHours,
		BookingLimits: req.BookingLimits,
	}, nil
}

func validateBusinessHours(hours *domain.BusinessHours) error {
	days := []struct {
		name  string
		hours domain.DayHours
	}{
		{"monday", hours.Monday},
		{"tuesday", hours.Tuesday},
		{"wednesday", hours.Wednesday},
		{"thursday", hours.Thursday},
		{"friday", hours.Friday},
		{"saturday", hours.Saturday},
		{"sunday", hours.Sunday},
	}

	for _, day := range days {
		if day.hours.Closed {
			continue
		}
		if err := day.hours.Open.Validate(); err != nil {
			return fmt.Errorf("%w: %s: invalid open time: %v", ErrInvalidInput, day.name, err)
		}
		if err := day.hours.Close.Validate(); err != nil {
			return fmt.Errorf("%w: %s: invalid close time: %v", ErrInvalidInput, day.name, err)
		}
		if !day.hours.Open.IsBefore(day.hours.Close) {
			return fmt.Errorf("%w: %s: open time %s must be before close time %s",
				ErrInvalidInput, day.name, day.hours.Open, day.hours.Close)
		}
	}

	return nil
}

func validateBookingLimits(limits *domain.BookingLimits) error {
	if limits.BookingWindowDays < domain.MinBookingWindowDays || limits.BookingWindowDays > domain.MaxBookingWindowDays {
		return fmt.Errorf("%w: bookingWindowDays must be between %d and %d",
			ErrInvalidInput, domain.MinBookingWindowDays, domain.MaxBookingWindowDays)
	}
	if limits.BufferMinutes < domain.MinBufferMinutes || limits.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}
	if limits.MinAdvanceHours < domain.MinMinAdvanceHours || limits.MinAdvanceHours > domain.MaxMinAdvanceHours {
		return fmt.Errorf("%w: minAdvanceHours must be between %d and %d",
			ErrInvalidInput, domain.MinMinAdvanceHours, domain.MaxMinAdvanceHours)
	}
	if limits.MaxAppointmentsPerDay < domain.MinMaxAppointmentsPerDay || limits.MaxAppointmentsPerDay > domain.MaxMaxAppointmentsPerDay {
		return fmt.Errorf("%w: maxAppointmentsPerDay must be between %d and %d",
			ErrInvalidInput, domain.MinMaxAppointmentsPerDay, domain.MaxMaxAppointmentsPerDay)
	}
	if limits.CancellationHours < domain.MinCancellationHours || limits.CancellationHours > domain.MaxCancellationHours {
		return fmt.Errorf("%w: cancellationHours must be between %d and %d",
			ErrInvalidInput, domain.MinCancellationHours, domain.MaxCancellationHours)
	}
	return nil
}
