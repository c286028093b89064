package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salonhub/booking-service/internal/domain"
)

func TestHasConflict(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	at := func(hour, minute int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}

	tests := []struct {
		name         string
		startAt      time.Time
		endAt        time.Time
		buffer       int
		appointments []*domain.Appointment
		wantConflict bool
	}{
		{
			name:         "no appointments",
			startAt:      at(10, 0),
			endAt:        at(11, 0),
			buffer:       15,
			appointments: nil,
			wantConflict: false,
		},
		{
			name:    "exact overlap",
			startAt: at(10, 0),
			endAt:   at(11, 0),
			buffer:  15,
			appointments: []*domain.Appointment{
				appt(at(10, 0), at(11, 0), domain.StatusConfirmed),
			},
			wantConflict: true,
		},
		{
			name:    "partial overlap",
			startAt: at(10, 0),
			endAt:   at(11, 0),
			buffer:  0,
			appointments: []*domain.Appointment{
				appt(at(10, 30), at(11, 30), domain.StatusPending),
			},
			wantConflict: true,
		},
		{
			name:    "gap of exactly the buffer is legal",
			startAt: at(10, 15),
			endAt:   at(11, 15),
			buffer:  15,
			appointments: []*domain.Appointment{
				appt(at(9, 0), at(10, 0), domain.StatusConfirmed),
			},
			wantConflict: false,
		},
		{
			name:    "gap one minute short of the buffer conflicts",
			startAt: at(10, 14),
			endAt:   at(11, 14),
			buffer:  15,
			appointments: []*domain.Appointment{
				appt(at(9, 0), at(10, 0), domain.StatusConfirmed),
			},
			wantConflict: true,
		},
		{
			name:    "buffer applies after the candidate too",
			startAt: at(10, 0),
			endAt:   at(11, 0),
			buffer:  15,
			appointments: []*domain.Appointment{
				appt(at(11, 14), at(12, 0), domain.StatusConfirmed),
			},
			wantConflict: true,
		},
		{
			name:    "back to back with zero buffer is legal",
			startAt: at(10, 0),
			endAt:   at(11, 0),
			buffer:  0,
			appointments: []*domain.Appointment{
				appt(at(9, 0), at(10, 0), domain.StatusConfirmed),
				appt(at(11, 0), at(12, 0), domain.StatusConfirmed),
			},
			wantConflict: false,
		},
		{
			name:    "cancelled appointments never conflict",
			startAt: at(10, 0),
			endAt:   at(11, 0),
			buffer:  15,
			appointments: []*domain.Appointment{
				appt(at(10, 0), at(11, 0), domain.StatusCancelled),
			},
			wantConflict: false,
		},
		{
			name:    "no-show keeps its slot",
			startAt: at(10, 0),
			endAt:   at(11, 0),
			buffer:  15,
			appointments: []*domain.Appointment{
				appt(at(10, 0), at(11, 0), domain.StatusNoShow),
			},
			wantConflict: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict, reason := HasConflict(tt.startAt, tt.endAt, tt.buffer, tt.appointments)

			assert.Equal(t, tt.wantConflict, conflict)
			if tt.wantConflict {
				assert.True(t, IsConflictReason(reason))
			} else {
				assert.Empty(t, reason)
			}
		})
	}
}

func TestIsConflictReason(t *testing.T) {
	_, reason := HasConflict(
		time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
		15,
		[]*domain.Appointment{
			appt(
				time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
				domain.StatusConfirmed,
			),
		},
	)

	assert.True(t, IsConflictReason(reason))
	assert.False(t, IsConflictReason("the salon is closed on Sunday"))
	assert.False(t, IsConflictReason(""))
}
