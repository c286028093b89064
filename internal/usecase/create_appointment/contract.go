package create_appointment

import (
	"context"
	"time"

	"github.com/salonhub/booking-service/internal/domain"
)

// AppointmentRepository persists appointments
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// ServiceCatalog resolves bookable services
type ServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// SettingsReader provides the booking policy (the buffer for suggestions)
type SettingsReader interface {
	GetBookingLimits(ctx context.Context) (*domain.BookingLimits, error)
}

// BookingValidator produces the advisory pre-check verdict
type BookingValidator interface {
	Validate(ctx context.Context, candidate *domain.Candidate) (*domain.Verdict, error)
}

// SlotSuggester proposes alternative slots on conflict
type SlotSuggester interface {
	Suggest(ctx context.Context, staffID int64, date time.Time, durationMinutes, bufferMinutes, maxSuggestions int) ([]domain.Slot, error)
}

// TransactionManager runs the check-then-insert sequence atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface used by this package
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
