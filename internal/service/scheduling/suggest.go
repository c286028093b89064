package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/salonhub/booking-service/internal/domain"
)

// Suggester generates alternative time slots for a staff member and day.
// Every suggestion passes the exact same rule evaluator and conflict
// detector as direct booking, so a suggested slot fed back into the
// validator cannot disagree with it at the moment of generation.
type Suggester struct {
	appointments AppointmentReader
	settings     SettingsReader
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

// NewSuggester creates a suggestion generator. metrics may be nil.
func NewSuggester(
	appointments AppointmentReader,
	settings SettingsReader,
	metrics MetricsRecorder,
	logger Logger,
) *Suggester {
	return &Suggester{
		appointments: appointments,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// WithTimeProvider overrides the clock, for tests.
func (s *Suggester) WithTimeProvider(tp TimeProvider) *Suggester {
	s.timeProvider = tp
	return s
}

// Suggest walks the day's operating window in fixed 30-minute increments
// and returns, in chronological order, up to maxSuggestions slots of the
// requested duration that pass every validation rule.
//
// A closed day yields an empty list. All store reads happen before the
// walk, so the result is never a truncated list from a failed mid-scan:
// either the whole call fails or a complete (possibly empty) list is
// returned.
func (s *Suggester) Suggest(
	ctx context.Context,
	staffID int64,
	date time.Time,
	durationMinutes int,
	bufferMinutes int,
	maxSuggestions int,
) ([]domain.Slot, error) {
	if err := validateSuggestInput(staffID, date, durationMinutes, bufferMinutes, maxSuggestions); err != nil {
		return nil, err
	}
	if maxSuggestions > domain.MaxSuggestionsLimit {
		maxSuggestions = domain.MaxSuggestionsLimit
	}

	now := s.timeProvider.Now()

	hours, err := s.settings.GetBusinessHours(ctx)
	if err != nil {
		s.logger.Error("Suggest: failed to read business hours: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}
	limits, err := s.settings.GetBookingLimits(ctx)
	if err != nil {
		s.logger.Error("Suggest: failed to read booking limits: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}

	day := hours.ForDate(date)
	if !day.IsOpen() {
		s.logger.Info("Suggest: salon closed on %s, no slots", date.Format(domain.DateFormat))
		return []domain.Slot{}, nil
	}

	openMin, err := day.Open.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed opening time: %v", ErrConfigUnavailable, err)
	}
	closeMin, err := day.Close.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed closing time: %v", ErrConfigUnavailable, err)
	}

	// All reads up front: the day's global count for the capacity rule and
	// the staff member's appointments around the whole operating window for
	// the conflict checks.
	dayCount, err := s.appointments.CountActiveByDay(ctx, date)
	if err != nil {
		s.logger.Error("Suggest: failed to count appointments for day %s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: count appointments for day: %v", ErrInternal, err)
	}

	dayBase := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	buffer := time.Duration(bufferMinutes) * time.Minute
	windowStart := dayBase.Add(time.Duration(openMin)*time.Minute - buffer)
	windowEnd := dayBase.Add(time.Duration(closeMin)*time.Minute + buffer)

	appointments, err := s.appointments.GetActiveByStaffAndRange(ctx, staffID, windowStart, windowEnd, nil)
	if err != nil {
		s.logger.Error("Suggest: failed to fetch appointments for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: fetch appointments for staff: %v", ErrInternal, err)
	}

	slots := make([]domain.Slot, 0, maxSuggestions)

	for startMin := openMin; startMin+durationMinutes <= closeMin; startMin += domain.SuggestionStepMinutes {
		startAt := dayBase.Add(time.Duration(startMin) * time.Minute)
		endAt := startAt.Add(time.Duration(durationMinutes) * time.Minute)

		candidate := &domain.Candidate{
			StaffID: staffID,
			StartAt: startAt,
			EndAt:   endAt,
		}

		if reasons := EvaluateRules(candidate, hours, limits, dayCount, now); len(reasons) > 0 {
			continue
		}
		if conflict, _ := HasConflict(startAt, endAt, bufferMinutes, appointments); conflict {
			continue
		}

		slots = append(slots, domain.Slot{
			StaffID: staffID,
			StartAt: startAt,
			EndAt:   endAt,
		})
		if len(slots) >= maxSuggestions {
			break
		}
	}

	if s.metrics != nil {
		s.metrics.AddSuggestions(len(slots))
	}

	s.logger.Info("Suggest: %d slot(s) for staff=%d on %s",
		len(slots), staffID, date.Format(domain.DateFormat))

	return slots, nil
}

func validateSuggestInput(staffID int64, date time.Time, durationMinutes, bufferMinutes, maxSuggestions int) error {
	if staffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	if bufferMinutes < 0 {
		return fmt.Errorf("%w: bufferMinutes must not be negative", ErrInvalidInput)
	}
	if maxSuggestions <= 0 {
		return fmt.Errorf("%w: maxSuggestions must be positive", ErrInvalidInput)
	}
	return nil
}
