package get_appointment

import (
	"context"

	getAppointment "github.com/salonhub/booking-service/internal/usecase/get_appointment"
)

type GetAppointmentUseCase interface {
	Execute(ctx context.Context, req *getAppointment.Request) (*getAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
