package update_settings

import (
	"context"

	updateSettings "github.com/salonhub/booking-service/internal/usecase/update_settings"
)

type UpdateSettingsUseCase interface {
	Execute(ctx context.Context, req *updateSettings.Request) (*updateSettings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
