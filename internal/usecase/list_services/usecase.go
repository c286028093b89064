package list_services

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonhub/booking-service/internal/domain"
)

// ErrInternal is returned on unexpected failures
var ErrInternal = errors.New("list_services: internal error")

// Response is the active service menu, sorted by name
type Response struct {
	Services []*domain.Service
}

// UseCase returns the bookable service menu
type UseCase struct {
	catalog ServiceCatalog
	logger  Logger
}

// NewUseCase creates the use case
func NewUseCase(catalog ServiceCatalog, logger Logger) *UseCase {
	return &UseCase{catalog: catalog, logger: logger}
}

// Execute lists the active services
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	services, err := uc.catalog.ListActive(ctx)
	if err != nil {
		uc.logger.Error("ListServices: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	return &Response{Services: services}, nil
}
