package get_client_appointments

import (
	"context"

	getClientAppointments "github.com/salonhub/booking-service/internal/usecase/get_client_appointments"
)

type GetClientAppointmentsUseCase interface {
	Execute(ctx context.Context, req *getClientAppointments.Request) (*getClientAppointments.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
