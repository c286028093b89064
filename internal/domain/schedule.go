package domain

import (
	"time"

	"github.com/salonhub/booking-service/pkg/types"
)

// DayHours is the operating window for one weekday
type DayHours struct {
	Closed bool             `json:"closed"`
	Open   types.TimeString `json:"open,omitempty"`
	Close  types.TimeString `json:"close,omitempty"`
}

// BusinessHours maps each weekday to its operating window.
// The week is Monday-first, matching how the settings UI presents it.
type BusinessHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// ForWeekday returns the operating window for the given weekday
func (h *BusinessHours) ForWeekday(weekday time.Weekday) DayHours {
	switch weekday {
	case time.Monday:
		return h.Monday
	case time.Tuesday:
		return h.Tuesday
	case time.Wednesday:
		return h.Wednesday
	case time.Thursday:
		return h.Thursday
	case time.Friday:
		return h.Friday
	case time.Saturday:
		return h.Saturday
	case time.Sunday:
		return h.Sunday
	default:
		return DayHours{Closed: true}
	}
}

// ForDate returns the operating window for the given date
func (h *BusinessHours) ForDate(date time.Time) DayHours {
	return h.ForWeekday(date.Weekday())
}

// IsOpen returns true if the day has a usable operating window
func (d DayHours) IsOpen() bool {
	return !d.Closed && !d.Open.IsZero() && !d.Close.IsZero()
}

// DefaultBusinessHours returns the schedule used when none has been
// configured yet: weekdays 09:00-18:00, Saturday 10:00-16:00, Sunday closed
func DefaultBusinessHours() *BusinessHours {
	weekday := DayHours{Open: "09:00", Close: "18:00"}
	return &BusinessHours{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  DayHours{Open: "10:00", Close: "16:00"},
		Sunday:    DayHours{Closed: true},
	}
}
