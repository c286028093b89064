package scheduling

import (
	"fmt"
	"time"

	"github.com/salonhub/booking-service/internal/domain"
)

// EvaluateRules checks a candidate against the business-hours, booking-window
// and daily-capacity rules. Checks run in that fixed order, each failing rule
// appends one human-readable reason, and no rule short-circuits another.
//
// now must be captured once by the caller and passed in; the evaluator never
// reads the system clock, so one validation cannot observe two different
// "now" values across its checks.
//
// dayCount is the number of non-cancelled appointments already starting on
// the candidate's calendar day, across all staff. The daily cap is
// deliberately salon-wide rather than per staff member.
func EvaluateRules(
	candidate *domain.Candidate,
	hours *domain.BusinessHours,
	limits *domain.BookingLimits,
	dayCount int,
	now time.Time,
) []string {
	reasons := make([]string, 0)

	if reason := checkBusinessHours(candidate, hours); reason != "" {
		reasons = append(reasons, reason)
	}
	if reason := checkBookingWindow(candidate, limits, now); reason != "" {
		reasons = append(reasons, reason)
	}
	if reason := checkDailyCapacity(candidate, limits, dayCount); reason != "" {
		reasons = append(reasons, reason)
	}

	return reasons
}

// checkBusinessHours verifies the candidate falls inside the operating
// window of its weekday. Both endpoints are validated: the start must lie
// in [open, close) and the appointment must not run past closing time.
func checkBusinessHours(candidate *domain.Candidate, hours *domain.BusinessHours) string {
	weekday := candidate.StartAt.Weekday()
	day := hours.ForWeekday(weekday)

	if !day.IsOpen() {
		return fmt.Sprintf("the salon is closed on %s", weekday)
	}

	openMin, err := day.Open.Minutes()
	if err != nil {
		return fmt.Sprintf("the operating hours for %s are misconfigured", weekday)
	}
	closeMin, err := day.Close.Minutes()
	if err != nil {
		return fmt.Sprintf("the operating hours for %s are misconfigured", weekday)
	}

	startMin := candidate.StartAt.Hour()*60 + candidate.StartAt.Minute()
	endMin := startMin + int(candidate.EndAt.Sub(candidate.StartAt).Minutes())

	if startMin < openMin || startMin >= closeMin {
		return fmt.Sprintf("the requested time is outside business hours (%s-%s)", day.Open, day.Close)
	}
	if endMin > closeMin {
		return fmt.Sprintf("the appointment would end after closing time (%s)", day.Close)
	}

	return ""
}

// checkBookingWindow verifies the start time lies between now plus the
// minimum advance notice and now plus the booking window. Both bounds are
// computed from the single now passed in.
func checkBookingWindow(candidate *domain.Candidate, limits *domain.BookingLimits, now time.Time) string {
	minInstant := now.Add(time.Duration(limits.MinAdvanceHours) * time.Hour)
	maxInstant := now.AddDate(0, 0, limits.BookingWindowDays)

	if candidate.StartAt.Before(minInstant) {
		return fmt.Sprintf("appointments require at least %d hours notice", limits.MinAdvanceHours)
	}
	if candidate.StartAt.After(maxInstant) {
		return fmt.Sprintf("appointments can be booked at most %d days in advance", limits.BookingWindowDays)
	}

	return ""
}

// checkDailyCapacity enforces the salon-wide daily appointment cap
func checkDailyCapacity(candidate *domain.Candidate, limits *domain.BookingLimits, dayCount int) string {
	if dayCount >= limits.MaxAppointmentsPerDay {
		return fmt.Sprintf("the salon is fully booked on %s", candidate.StartAt.Format(domain.DateFormat))
	}
	return ""
}
