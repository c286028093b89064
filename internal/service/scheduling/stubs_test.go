package scheduling

import (
	"context"
	"time"

	"github.com/salonhub/booking-service/internal/domain"
)

type stubAppointments struct {
	appointments []*domain.Appointment
	dayCount     int
	rangeErr     error
	countErr     error

	gotStaffID   int64
	gotFrom      time.Time
	gotTo        time.Time
	gotExcludeID *int64
}

func (s *stubAppointments) GetActiveByStaffAndRange(_ context.Context, staffID int64, from, to time.Time, excludeID *int64) ([]*domain.Appointment, error) {
	s.gotStaffID = staffID
	s.gotFrom = from
	s.gotTo = to
	s.gotExcludeID = excludeID
	if s.rangeErr != nil {
		return nil, s.rangeErr
	}
	return s.appointments, nil
}

func (s *stubAppointments) CountActiveByDay(context.Context, time.Time) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return s.dayCount, nil
}

type stubSettings struct {
	hours     *domain.BusinessHours
	limits    *domain.BookingLimits
	hoursErr  error
	limitsErr error
}

func (s *stubSettings) GetBusinessHours(context.Context) (*domain.BusinessHours, error) {
	if s.hoursErr != nil {
		return nil, s.hoursErr
	}
	return s.hours, nil
}

func (s *stubSettings) GetBookingLimits(context.Context) (*domain.BookingLimits, error) {
	if s.limitsErr != nil {
		return nil, s.limitsErr
	}
	return s.limits, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testLimits() *domain.BookingLimits {
	return &domain.BookingLimits{
		BookingWindowDays:     30,
		BufferMinutes:         15,
		MinAdvanceHours:       24,
		MaxAppointmentsPerDay: 50,
		CancellationHours:     24,
	}
}

func appt(start, end time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:      1,
		StaffID: 7,
		StartAt: start,
		EndAt:   end,
		Status:  status,
	}
}
