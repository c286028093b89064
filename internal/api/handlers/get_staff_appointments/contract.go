package get_staff_appointments

import (
	"context"

	getStaffAppointments "github.com/salonhub/booking-service/internal/usecase/get_staff_appointments"
)

type GetStaffAppointmentsUseCase interface {
	Execute(ctx context.Context, req *getStaffAppointments.Request) (*getStaffAppointments.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
