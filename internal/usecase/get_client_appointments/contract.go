package get_client_appointments

import (
	"context"

	"github.com/salonhub/booking-service/internal/domain"
)

// AppointmentRepository reads a client's appointment history
type AppointmentRepository interface {
	GetByClientWithFilter(ctx context.Context, filter domain.ClientAppointmentsFilter) ([]*domain.Appointment, error)
}

// Logger is the logging interface used by this package
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
