package get_settings

import (
	"github.com/salonhub/booking-service/internal/domain"
)

// Response is the effective salon configuration, with defaults already
// applied to anything not explicitly stored
type Response struct {
	BusinessHours *domain.BusinessHours
	BookingLimits *domain.BookingLimits
}
