package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// IsValid reports whether the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Appointment represents a salon appointment in the system
type Appointment struct {
	ID        int64
	ClientID  int64
	StaffID   int64
	ServiceID int64
	StartAt   time.Time
	EndAt     time.Time
	Status    AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the appointment has been cancelled.
// Only cancelled appointments drop out of conflict and capacity checks;
// no-shows keep their slot in history but the slot itself is over.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the appointment can be moved to a new time
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// Duration returns the appointment length
func (a *Appointment) Duration() time.Duration {
	return a.EndAt.Sub(a.StartAt)
}

// ClientAppointmentsFilter filters a client's appointment history
type ClientAppointmentsFilter struct {
	ClientID int64
	Status   *AppointmentStatus // optional, nil = all statuses
}

// StaffDayFilter selects one staff member's appointments for a calendar day
type StaffDayFilter struct {
	StaffID          int64
	Day              time.Time
	IncludeCancelled bool
}
