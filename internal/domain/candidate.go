package domain

import "time"

// Candidate is a proposed appointment being validated.
// ExcludeAppointmentID is set when validating a reschedule so the
// appointment does not conflict with itself.
type Candidate struct {
	StaffID              int64
	ServiceID            *int64
	StartAt              time.Time
	EndAt                time.Time
	ExcludeAppointmentID *int64
}

// Verdict is the aggregated validation result for a candidate.
// Reasons are collected in the fixed check order: business hours,
// booking window, daily capacity, conflict. No check short-circuits
// another, so a caller sees every violated rule at once.
type Verdict struct {
	Valid  bool
	Errors []string
}

// Slot is a candidate (start, end) pair for one staff member that passed
// every validation rule at the moment of generation
type Slot struct {
	StaffID int64
	StartAt time.Time
	EndAt   time.Time
}
