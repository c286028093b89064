package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/booking-service/internal/domain"
)

func TestEvaluateRules(t *testing.T) {
	// 2025-06-02 is a Monday; default hours are 09:00-18:00
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	hours := domain.DefaultBusinessHours()
	limits := testLimits()

	candidate := func(start, end time.Time) *domain.Candidate {
		return &domain.Candidate{StaffID: 7, StartAt: start, EndAt: end}
	}

	tests := []struct {
		name        string
		candidate   *domain.Candidate
		dayCount    int
		wantReasons []string
	}{
		{
			name: "all rules pass",
			candidate: candidate(
				time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
			),
			wantReasons: nil,
		},
		{
			name: "start exactly at opening passes",
			candidate: candidate(
				time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			),
			wantReasons: nil,
		},
		{
			name: "end exactly at closing passes",
			candidate: candidate(
				time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
			),
			wantReasons: nil,
		},
		{
			name: "closed day",
			candidate: candidate(
				time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC), // Sunday
				time.Date(2025, 6, 8, 11, 0, 0, 0, time.UTC),
			),
			wantReasons: []string{"the salon is closed on Sunday"},
		},
		{
			name: "start before opening",
			candidate: candidate(
				time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			),
			wantReasons: []string{"the requested time is outside business hours (09:00-18:00)"},
		},
		{
			name: "start exactly at closing is rejected",
			candidate: candidate(
				time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 2, 19, 0, 0, 0, time.UTC),
			),
			wantReasons: []string{"the requested time is outside business hours (09:00-18:00)"},
		},
		{
			name: "appointment runs past closing",
			candidate: candidate(
				time.Date(2025, 6, 2, 17, 30, 0, 0, time.UTC),
				time.Date(2025, 6, 2, 18, 30, 0, 0, time.UTC),
			),
			wantReasons: []string{"the appointment would end after closing time (18:00)"},
		},
		{
			name: "too little advance notice",
			candidate: candidate(
				time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), // 2h after now, Sunday is also closed
				time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
			),
			wantReasons: []string{
				"the salon is closed on Sunday",
				"appointments require at least 24 hours notice",
			},
		},
		{
			name: "beyond the booking window",
			candidate: candidate(
				time.Date(2025, 7, 7, 10, 0, 0, 0, time.UTC), // Monday, 36 days out
				time.Date(2025, 7, 7, 11, 0, 0, 0, time.UTC),
			),
			wantReasons: []string{"appointments can be booked at most 30 days in advance"},
		},
		{
			name: "day at capacity",
			candidate: candidate(
				time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
			),
			dayCount:    50,
			wantReasons: []string{"the salon is fully booked on 2025-06-02"},
		},
		{
			name: "violations aggregate in check order without short-circuit",
			candidate: candidate(
				time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC), // Sunday, closed
				time.Date(2025, 6, 8, 11, 0, 0, 0, time.UTC),
			),
			dayCount: 50,
			wantReasons: []string{
				"the salon is closed on Sunday",
				"the salon is fully booked on 2025-06-08",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reasons := EvaluateRules(tt.candidate, hours, limits, tt.dayCount, now)

			require.Len(t, reasons, len(tt.wantReasons))
			for i, want := range tt.wantReasons {
				assert.Equal(t, want, reasons[i])
			}
		})
	}
}

func TestEvaluateRules_SingleNowForAllChecks(t *testing.T) {
	hours := domain.DefaultBusinessHours()
	limits := testLimits()

	// Start sits exactly on the minimum-advance boundary for the given now.
	// Being on the boundary (not before it) must pass, which only holds if
	// every check sees the same instant.
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	c := &domain.Candidate{
		StaffID: 7,
		StartAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
	}

	reasons := EvaluateRules(c, hours, limits, 0, now)
	assert.Empty(t, reasons)
}
