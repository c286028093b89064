package scheduling

import (
	"context"
	"time"

	"github.com/salonhub/booking-service/internal/domain"
)

// AppointmentReader provides read access to existing appointments
type AppointmentReader interface {
	// GetActiveByStaffAndRange returns all non-cancelled appointments for a
	// staff member overlapping [from, to). excludeID, when set, removes one
	// appointment from the result (reschedule flows).
	GetActiveByStaffAndRange(ctx context.Context, staffID int64, from, to time.Time, excludeID *int64) ([]*domain.Appointment, error)

	// CountActiveByDay counts non-cancelled appointments starting within the
	// calendar day of the given instant, across all staff.
	CountActiveByDay(ctx context.Context, day time.Time) (int, error)
}

// SettingsReader provides the salon configuration snapshot.
// Implementations read fresh on every call; the core never caches.
type SettingsReader interface {
	GetBusinessHours(ctx context.Context) (*domain.BusinessHours, error)
	GetBookingLimits(ctx context.Context) (*domain.BookingLimits, error)
}

// TimeProvider provides the current time (injectable for testing)
type TimeProvider interface {
	Now() time.Time
}

// MetricsRecorder records validation and suggestion outcomes
type MetricsRecorder interface {
	ObserveValidation(valid bool)
	AddSuggestions(n int)
}

// Logger is the logging interface used by this package
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
