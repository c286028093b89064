package domain

// Default booking limits, applied at the settings boundary when a value
// is missing from the store
const (
	DefaultBookingWindowDays     = 30
	DefaultBufferMinutes         = 15
	DefaultMinAdvanceHours       = 24
	DefaultMaxAppointmentsPerDay = 50
	DefaultCancellationHours     = 24
)

// Business validation bounds for settings updates
const (
	MinBookingWindowDays     = 1
	MaxBookingWindowDays     = 365
	MinBufferMinutes         = 0
	MaxBufferMinutes         = 240
	MinMinAdvanceHours       = 0
	MaxMinAdvanceHours       = 168 // 1 week
	MinMaxAppointmentsPerDay = 1
	MaxMaxAppointmentsPerDay = 1000
	MinCancellationHours     = 0
	MaxCancellationHours     = 168 // 1 week
	MaxNotesLength           = 500
	MaxCancelReasonLength    = 500
)

// SuggestionStepMinutes is the fixed increment the slot suggestion
// generator walks the operating window with
const SuggestionStepMinutes = 30

// MaxSuggestionsLimit caps how many suggestions one call may request
const MaxSuggestionsLimit = 50

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Settings store keys
const (
	SettingBusinessHours = "business_hours"
	SettingBookingLimits = "booking_limits"
)
