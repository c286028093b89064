package appointment

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/booking-service/internal/domain"
	"github.com/salonhub/booking-service/pkg/dbmetrics"
	"github.com/salonhub/booking-service/pkg/ptr"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewRepository(db), mock, func() { db.Close() }
}

func appointmentRows(appts ...*domain.Appointment) *sqlmock.Rows {
	rows := sqlmock.NewRows(appointmentColumns)
	for _, a := range appts {
		var notes, reason driver.Value
		if a.Notes != nil {
			notes = *a.Notes
		}
		if a.CancellationReason != nil {
			reason = *a.CancellationReason
		}
		var cancelledAt driver.Value
		if a.CancelledAt != nil {
			cancelledAt = *a.CancelledAt
		}
		rows.AddRow(
			a.ID, a.ClientID, a.StaffID, a.ServiceID,
			a.StartAt, a.EndAt, string(a.Status),
			a.ServiceName, a.ServicePrice, notes,
			reason, cancelledAt,
			a.CreatedAt, a.UpdatedAt,
		)
	}
	return rows
}

func sampleAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:           42,
		ClientID:     3,
		StaffID:      7,
		ServiceID:    5,
		StartAt:      time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		EndAt:        time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
		Status:       domain.StatusConfirmed,
		ServiceName:  "Haircut",
		ServicePrice: 45,
		CreatedAt:    time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, closeDB := newMockRepository(t)
	defer closeDB()

	createdAt := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), createdAt, createdAt))

	appt := sampleAppointment()
	appt.ID = 0

	created, err := repo.Create(context.Background(), appt)

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_SlotTaken(t *testing.T) {
	repo, mock, closeDB := newMockRepository(t)
	defer closeDB()

	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_appointments_staff_start_active"})

	_, err := repo.Create(context.Background(), sampleAppointment())

	require.ErrorIs(t, err, ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock, closeDB := newMockRepository(t)
	defer closeDB()

	want := sampleAppointment()
	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WithArgs(int64(42)).
		WillReturnRows(appointmentRows(want))

	got, err := repo.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.ClientID, got.ClientID)
	assert.Equal(t, want.Status, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, closeDB := newMockRepository(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)

	require.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetActiveByStaffAndRange(t *testing.T) {
	repo, mock, closeDB := newMockRepository(t)
	defer closeDB()

	from := time.Date(2025, 6, 2, 9, 45, 0, 0, time.UTC)
	to := time.Date(2025, 6, 2, 11, 15, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM appointments WHERE staff_id = \$1 AND status <> \$2 AND start_at < \$3 AND end_at > \$4 ORDER BY start_at ASC`).
		WithArgs(int64(7), domain.StatusCancelled, to, from).
		WillReturnRows(appointmentRows(sampleAppointment()))

	appts, err := repo.GetActiveByStaffAndRange(context.Background(), 7, from, to, nil)

	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, int64(42), appts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetActiveByStaffAndRange_ExcludesAppointment(t *testing.T) {
	repo, mock, closeDB := newMockRepository(t)
	defer closeDB()

	from := time.Date(2025, 6, 2, 9, 45, 0, 0, time.UTC)
	to := time.Date(2025, 6, 2, 11, 15, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM appointments WHERE (.+) AND id <> \$5 ORDER BY start_at ASC`).
		WithArgs(int64(7), domain.StatusCancelled, to, from, int64(42)).
		WillReturnRows(appointmentRows())

	appts, err := repo.GetActiveByStaffAndRange(context.Background(), 7, from, to, ptr.Ptr(int64(42)))

	require.NoError(t, err)
	assert.Empty(t, appts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetActiveByStaffAndRange_LocksRowsInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM appointments (.+) FOR UPDATE`).
		WillReturnRows(appointmentRows())
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	ctx := dbmetrics.WithExecutor(context.Background(), tx)

	from := time.Date(2025, 6, 2, 9, 45, 0, 0, time.UTC)
	to := time.Date(2025, 6, 2, 11, 15, 0, 0, time.UTC)

	_, err = repo.GetActiveByStaffAndRange(ctx, 7, from, to, nil)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountActiveByDay(t *testing.T) {
	repo, mock, closeDB := newMockRepository(t)
	defer closeDB()

	day := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)
	dayStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM appointments`).
		WithArgs(domain.StatusCancelled, dayStart, dayEnd).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountActiveByDay(context.Background(), day)

	require.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByClientWithFilter(t *testing.T) {
	repo, mock, closeDB := newMockRepository(t)
	defer closeDB()

	status := domain.StatusCompleted
	mock.ExpectQuery(`SELECT (.+) FROM appointments WHERE client_id = \$1 AND status = \$2 ORDER BY start_at DESC`).
		WithArgs(int64(3), status).
		WillReturnRows(appointmentRows(sampleAppointment()))

	appts, err := repo.GetByClientWithFilter(context.Background(), domain.ClientAppointmentsFilter{
		ClientID: 3,
		Status:   &status,
	})

	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByStaffAndDay(t *testing.T) {
	repo, mock, closeDB := newMockRepository(t)
	defer closeDB()

	tests := []struct {
		name             string
		includeCancelled bool
		pattern          string
	}{
		{
			name:             "cancelled excluded by default",
			includeCancelled: false,
			pattern:          `SELECT (.+) FROM appointments WHERE staff_id = \$1 AND start_at >= \$2 AND start_at < \$3 AND status <> \$4 ORDER BY start_at ASC`,
		},
		{
			name:             "cancelled included on request",
			includeCancelled: true,
			pattern:          `SELECT (.+) FROM appointments WHERE staff_id = \$1 AND start_at >= \$2 AND start_at < \$3 ORDER BY start_at ASC`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectQuery(tt.pattern).
				WillReturnRows(appointmentRows(sampleAppointment()))

			appts, err := repo.GetByStaffAndDay(context.Background(), domain.StaffDayFilter{
				StaffID:          7,
				Day:              time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
				IncludeCancelled: tt.includeCancelled,
			})

			require.NoError(t, err)
			assert.Len(t, appts, 1)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Reschedule(t *testing.T) {
	repo, mock, closeDB := newMockRepository(t)
	defer closeDB()

	mock.ExpectExec("UPDATE appointments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Reschedule(context.Background(), 42,
		time.Date(2025, 6, 3, 14, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 3, 15, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Reschedule_SlotTaken(t *testing.T) {
	repo, mock, closeDB := newMockRepository(t)
	defer closeDB()

	mock.ExpectExec("UPDATE appointments").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Reschedule(context.Background(), 42,
		time.Date(2025, 6, 3, 14, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 3, 15, 0, 0, 0, time.UTC))

	require.ErrorIs(t, err, ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock, closeDB := newMockRepository(t)
	defer closeDB()

	mock.ExpectExec("UPDATE appointments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Cancel(context.Background(), 42, "change of plans")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel_NotFound(t *testing.T) {
	repo, mock, closeDB := newMockRepository(t)
	defer closeDB()

	mock.ExpectExec("UPDATE appointments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), 404, "")

	require.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock, closeDB := newMockRepository(t)
	defer closeDB()

	mock.ExpectExec("UPDATE appointments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 404, domain.StatusCompleted)

	require.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "40001"}))
	assert.False(t, isUniqueViolation(errors.New("plain error")))
}
