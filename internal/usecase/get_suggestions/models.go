package get_suggestions

import (
	"time"

	"github.com/salonhub/booking-service/internal/domain"
)

// Request is the input for listing available slots.
// Duration is taken from the service when ServiceID is set, otherwise
// DurationMinutes is used directly.
type Request struct {
	StaffID         int64
	Date            time.Time
	ServiceID       *int64
	DurationMinutes int
	MaxSuggestions  int
}

// Response lists the valid slots for the requested staff member and day
type Response struct {
	StaffID         int64
	Date            time.Time
	DurationMinutes int
	Slots           []domain.Slot
}
