package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/booking-service/internal/domain"
	appointmentRepo "github.com/salonhub/booking-service/internal/infra/storage/appointment"
	catalogRepo "github.com/salonhub/booking-service/internal/infra/storage/servicecatalog"
)

type stubAppointments struct {
	created   *domain.Appointment
	createErr error
	calls     int
}

func (s *stubAppointments) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	s.calls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *appt
	created.ID = 101
	s.created = &created
	return &created, nil
}

type stubCatalog struct {
	service *domain.Service
	err     error
}

func (s *stubCatalog) GetByID(context.Context, int64) (*domain.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.service, nil
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

type stubValidator struct {
	verdict *domain.Verdict
	err     error
}

func (s *stubValidator) Validate(context.Context, *domain.Candidate) (*domain.Verdict, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.verdict, nil
}

type stubSuggester struct {
	slots []domain.Slot
	err   error
	calls int
}

func (s *stubSuggester) Suggest(context.Context, int64, time.Time, int, int, int) ([]domain.Slot, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.slots, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		ClientID:  3,
		StaffID:   7,
		ServiceID: 5,
		StartAt:   time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
	}
}

func activeService() *domain.Service {
	return &domain.Service{ID: 5, Name: "Haircut", DurationMinutes: 60, Price: 45, Active: true}
}

func newTestUseCase(
	appointments *stubAppointments,
	catalog *stubCatalog,
	settings *stubSettings,
	validator *stubValidator,
	suggester *stubSuggester,
) *UseCase {
	return NewUseCase(appointments, catalog, settings, validator, suggester, passthroughTxManager{}, nopLogger{})
}

func TestUseCase_CreatesAppointmentOnValidVerdict(t *testing.T) {
	appointments := &stubAppointments{}
	uc := newTestUseCase(
		appointments,
		&stubCatalog{service: activeService()},
		&stubSettings{limits: &domain.BookingLimits{BufferMinutes: 15}},
		&stubValidator{verdict: &domain.Verdict{Valid: true}},
		&stubSuggester{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, int64(101), resp.Appointment.ID)
	assert.Equal(t, "Haircut", resp.Appointment.ServiceName)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Appointment.Status)
	// The end time comes from the service duration, not the caller
	assert.Equal(t, time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC), resp.Appointment.EndAt)
	assert.True(t, resp.Verdict.Valid)
}

func TestUseCase_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "zero client", mutate: func(r *Request) { r.ClientID = 0 }},
		{name: "zero staff", mutate: func(r *Request) { r.StaffID = 0 }},
		{name: "zero service", mutate: func(r *Request) { r.ServiceID = 0 }},
		{name: "zero start", mutate: func(r *Request) { r.StartAt = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(
				&stubAppointments{},
				&stubCatalog{service: activeService()},
				&stubSettings{},
				&stubValidator{verdict: &domain.Verdict{Valid: true}},
				&stubSuggester{},
			)

			req := validRequest()
			tt.mutate(req)
			resp, err := uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
		})
	}
}

func TestUseCase_ServiceLookup(t *testing.T) {
	t.Run("unknown service", func(t *testing.T) {
		uc := newTestUseCase(
			&stubAppointments{},
			&stubCatalog{err: catalogRepo.ErrServiceNotFound},
			&stubSettings{},
			&stubValidator{verdict: &domain.Verdict{Valid: true}},
			&stubSuggester{},
		)

		resp, err := uc.Execute(context.Background(), validRequest())

		require.ErrorIs(t, err, ErrServiceNotFound)
		assert.Nil(t, resp)
	})

	t.Run("inactive service", func(t *testing.T) {
		service := activeService()
		service.Active = false
		uc := newTestUseCase(
			&stubAppointments{},
			&stubCatalog{service: service},
			&stubSettings{},
			&stubValidator{verdict: &domain.Verdict{Valid: true}},
			&stubSuggester{},
		)

		resp, err := uc.Execute(context.Background(), validRequest())

		require.ErrorIs(t, err, ErrServiceInactive)
		assert.Nil(t, resp)
	})
}

func TestUseCase_InvalidVerdictSkipsInsert(t *testing.T) {
	appointments := &stubAppointments{}
	uc := newTestUseCase(
		appointments,
		&stubCatalog{service: activeService()},
		&stubSettings{limits: &domain.BookingLimits{BufferMinutes: 15}},
		&stubValidator{verdict: &domain.Verdict{
			Valid:  false,
			Errors: []string{"appointments require at least 24 hours notice"},
		}},
		&stubSuggester{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Nil(t, resp.Appointment)
	assert.False(t, resp.Verdict.Valid)
	assert.Zero(t, appointments.calls, "an invalid verdict must never reach the store")
}

func TestUseCase_ConflictRejectionCarriesSuggestions(t *testing.T) {
	slots := []domain.Slot{
		{StaffID: 7, StartAt: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC), EndAt: time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC)},
	}
	suggester := &stubSuggester{slots: slots}
	uc := newTestUseCase(
		&stubAppointments{},
		&stubCatalog{service: activeService()},
		&stubSettings{limits: &domain.BookingLimits{BufferMinutes: 15}},
		&stubValidator{verdict: &domain.Verdict{
			Valid:  false,
			Errors: []string{"the requested time conflicts with another appointment for this staff member (a 15 minute gap is required between appointments)"},
		}},
		suggester,
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Nil(t, resp.Appointment)
	assert.Equal(t, slots, resp.Suggestions)
	assert.Equal(t, 1, suggester.calls)
}

func TestUseCase_NonConflictRejectionHasNoSuggestions(t *testing.T) {
	suggester := &stubSuggester{}
	uc := newTestUseCase(
		&stubAppointments{},
		&stubCatalog{service: activeService()},
		&stubSettings{limits: &domain.BookingLimits{BufferMinutes: 15}},
		&stubValidator{verdict: &domain.Verdict{
			Valid:  false,
			Errors: []string{"the salon is closed on Sunday"},
		}},
		suggester,
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Suggestions)
	assert.Zero(t, suggester.calls)
}

func TestUseCase_SlotTakenAfterCleanVerdict(t *testing.T) {
	// The advisory pre-check passes but the insert loses the race: the
	// store's uniqueness constraint is authoritative and the caller sees
	// ErrSlotTaken.
	uc := newTestUseCase(
		&stubAppointments{createErr: appointmentRepo.ErrSlotTaken},
		&stubCatalog{service: activeService()},
		&stubSettings{limits: &domain.BookingLimits{BufferMinutes: 15}},
		&stubValidator{verdict: &domain.Verdict{Valid: true}},
		&stubSuggester{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, resp)
}

func TestUseCase_SuggestionFailureDoesNotMaskVerdict(t *testing.T) {
	uc := newTestUseCase(
		&stubAppointments{},
		&stubCatalog{service: activeService()},
		&stubSettings{limits: &domain.BookingLimits{BufferMinutes: 15}},
		&stubValidator{verdict: &domain.Verdict{
			Valid:  false,
			Errors: []string{"the requested time conflicts with another appointment for this staff member (a 15 minute gap is required between appointments)"},
		}},
		&stubSuggester{err: errors.New("boom")},
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.Verdict.Valid)
	assert.Empty(t, resp.Suggestions)
}
