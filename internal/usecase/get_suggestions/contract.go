package get_suggestions

import (
	"context"
	"time"

	"github.com/salonhub/booking-service/internal/domain"
)

// SlotSuggester generates valid slots for a staff member and day
type SlotSuggester interface {
	Suggest(ctx context.Context, staffID int64, date time.Time, durationMinutes, bufferMinutes, maxSuggestions int) ([]domain.Slot, error)
}

// ServiceCatalog resolves service durations
type ServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// SettingsReader provides the booking policy
type SettingsReader interface {
	GetBookingLimits(ctx context.Context) (*domain.BookingLimits, error)
}

// Logger is the logging interface used by this package
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
