package get_staff_appointments

import (
	"context"

	"github.com/salonhub/booking-service/internal/domain"
)

// AppointmentRepository reads a staff member's day sheet
type AppointmentRepository interface {
	GetByStaffAndDay(ctx context.Context, filter domain.StaffDayFilter) ([]*domain.Appointment, error)
}

// Logger is the logging interface used by this package
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
