package get_settings

import (
	"context"

	"github.com/salonhub/booking-service/internal/domain"
)

// SettingsRepository reads the stored salon configuration
type SettingsRepository interface {
	GetBusinessHours(ctx context.Context) (*domain.BusinessHours, error)
	GetBookingLimits(ctx context.Context) (*domain.BookingLimits, error)
}

// Logger is the logging interface used by this package
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
