package update_settings

import (
	"github.com/salonhub/booking-service/internal/domain"
)

// Request carries the settings documents to replace. A nil document is
// left untouched; a present document replaces the stored one as a whole.
type Request struct {
	BusinessHours *domain.BusinessHours
	BookingLimits *domain.BookingLimits
}

// Response echoes the stored configuration
type Response struct {
	BusinessHours *domain.BusinessHours
	BookingLimits *domain.BookingLimits
}
