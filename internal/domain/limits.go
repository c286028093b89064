package domain

// BookingLimits is the salon-wide booking policy.
// Values are decoded from the settings store and normalized exactly once
// there; rule evaluation never falls back to defaults on its own.
type BookingLimits struct {
	BookingWindowDays     int `json:"bookingWindowDays"`     // max days in advance a slot may be booked
	BufferMinutes         int `json:"bufferMinutes"`         // required idle gap around an appointment, per staff member
	MinAdvanceHours       int `json:"minAdvanceHours"`       // minimum lead time from now
	MaxAppointmentsPerDay int `json:"maxAppointmentsPerDay"` // salon-wide daily cap, across all staff
	CancellationHours     int `json:"cancellationHours"`     // minimum lead time to cancel without penalty
}

// Normalize replaces non-positive values with the documented defaults
func (l *BookingLimits) Normalize() {
	if l.BookingWindowDays <= 0 {
		l.BookingWindowDays = DefaultBookingWindowDays
	}
	if l.BufferMinutes < 0 {
		l.BufferMinutes = DefaultBufferMinutes
	}
	if l.MinAdvanceHours < 0 {
		l.MinAdvanceHours = DefaultMinAdvanceHours
	}
	if l.MaxAppointmentsPerDay <= 0 {
		l.MaxAppointmentsPerDay = DefaultMaxAppointmentsPerDay
	}
	if l.CancellationHours < 0 {
		l.CancellationHours = DefaultCancellationHours
	}
}
