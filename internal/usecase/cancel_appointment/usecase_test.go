package cancel_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/booking-service/internal/domain"
	appointmentRepo "github.com/salonhub/booking-service/internal/infra/storage/appointment"
	"github.com/salonhub/booking-service/pkg/ptr"
)

type stubAppointments struct {
	appointment *domain.Appointment
	getErr      error
	cancelErr   error
	cancelCalls int
}

func (s *stubAppointments) GetByID(context.Context, int64) (*domain.Appointment, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.appointment, nil
}

func (s *stubAppointments) Cancel(context.Context, int64, string) error {
	s.cancelCalls++
	return s.cancelErr
}

type stubSettings struct {
	limits *domain.BookingLimits
	err    error
}

func (s *stubSettings) GetBookingLimits(context.Context) (*domain.BookingLimits, error) {
	if s.err != nil {
		return nil, s.err
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

func bookedAppointment(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:       42,
		ClientID: 3,
		StaffID:  7,
		StartAt:  time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		EndAt:    time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
		Status:   status,
	}
}

func TestUseCase_CancelsInTime(t *testing.T) {
	appointments := &stubAppointments{appointment: bookedAppointment(domain.StatusConfirmed)}
	// 48h before the start, with a 24h policy: allowed
	now := time.Date(2025, 5, 31, 10, 0, 0, 0, time.UTC)
	uc := NewUseCase(appointments,
		&stubSettings{limits: &domain.BookingLimits{CancellationHours: 24}},
		&fixedTime{now: now}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 42,
		ClientID:      3,
		Reason:        ptr.Ptr("change of plans"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, appointments.cancelCalls)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, int64(42), resp.ID)
}

func TestUseCase_CancellationDeadline(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{
			name: "exactly on the deadline is allowed",
			now:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:    "one minute past the deadline is rejected",
			now:     time.Date(2025, 6, 1, 10, 1, 0, 0, time.UTC),
			wantErr: ErrTooLateToCancel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointments := &stubAppointments{appointment: bookedAppointment(domain.StatusConfirmed)}
			uc := NewUseCase(appointments,
				&stubSettings{limits: &domain.BookingLimits{CancellationHours: 24}},
				&fixedTime{now: tt.now}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, ClientID: 3})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, appointments.cancelCalls)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 1, appointments.cancelCalls)
			}
		})
	}
}

func TestUseCase_StatusGuards(t *testing.T) {
	now := time.Date(2025, 5, 31, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  domain.AppointmentStatus
		wantErr error
	}{
		{name: "already cancelled", status: domain.StatusCancelled, wantErr: ErrAlreadyCancelled},
		{name: "completed", status: domain.StatusCompleted, wantErr: ErrCannotCancel},
		{name: "no-show", status: domain.StatusNoShow, wantErr: ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointments := &stubAppointments{appointment: bookedAppointment(tt.status)}
			uc := NewUseCase(appointments,
				&stubSettings{limits: &domain.BookingLimits{CancellationHours: 24}},
				&fixedTime{now: now}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, ClientID: 3})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, appointments.cancelCalls)
		})
	}
}

func TestUseCase_OwnershipAndExistence(t *testing.T) {
	now := time.Date(2025, 5, 31, 10, 0, 0, 0, time.UTC)

	t.Run("not found", func(t *testing.T) {
		appointments := &stubAppointments{getErr: appointmentRepo.ErrAppointmentNotFound}
		uc := NewUseCase(appointments,
			&stubSettings{limits: &domain.BookingLimits{CancellationHours: 24}},
			&fixedTime{now: now}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, ClientID: 3})

		require.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("wrong owner", func(t *testing.T) {
		appointments := &stubAppointments{appointment: bookedAppointment(domain.StatusConfirmed)}
		uc := NewUseCase(appointments,
			&stubSettings{limits: &domain.BookingLimits{CancellationHours: 24}},
			&fixedTime{now: now}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, ClientID: 99})

		require.ErrorIs(t, err, ErrAccessDenied)
		assert.Zero(t, appointments.cancelCalls)
	})
}
