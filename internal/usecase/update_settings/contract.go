package update_settings

import (
	"context"

	"github.com/salonhub/booking-service/internal/domain"
)

// SettingsRepository stores the salon configuration
type SettingsRepository interface {
	UpsertBusinessHours(ctx context.Context, hours *domain.BusinessHours) error
	UpsertBookingLimits(ctx context.Context, limits *domain.BookingLimits) error
}

// Logger is the logging interface used by this package
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
