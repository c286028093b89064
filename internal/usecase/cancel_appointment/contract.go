package cancel_appointment

import (
	"context"
	"time"

	"github.com/salonhub/booking-service/internal/domain"
)

// AppointmentRepository reads and cancels appointments
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// SettingsReader provides the cancellation lead-time policy
type SettingsReader interface {
	GetBookingLimits(ctx context.Context) (*domain.BookingLimits, error)
}

// TimeProvider supplies the current time
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by this package
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
