package get_appointment

import (
	"context"

	"github.com/salonhub/booking-service/internal/domain"
)

// AppointmentRepository reads appointments
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
}

// Logger is the logging interface used by this package
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
