package get_settings

import (
	"context"

	getSettings "github.com/salonhub/booking-service/internal/usecase/get_settings"
)

type GetSettingsUseCase interface {
	Execute(ctx context.Context) (*getSettings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
