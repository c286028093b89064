package list_services

import (
	"context"

	"github.com/salonhub/booking-service/internal/domain"
)

// ServiceCatalog reads the service menu
type ServiceCatalog interface {
	ListActive(ctx context.Context) ([]*domain.Service, error)
}

// Logger is the logging interface used by this package
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
