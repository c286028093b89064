package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/salonhub/booking-service/internal/domain"
)

// Validator is the composition root for appointment validation. It fetches
// a fresh configuration snapshot, runs the rule evaluator and the conflict
// detector, and aggregates every failure into one verdict.
//
// Validate is the only entry point production callers should use; the rule
// evaluator and conflict detector are exported for the suggestion generator
// and for tests, not for direct use in booking flows.
//
// A "valid" verdict is advisory, not transactional: the appointment store's
// uniqueness constraint remains the final arbiter at insert time, and
// callers must handle a conflicting insert even after a clean pre-check.
type Validator struct {
	appointments AppointmentReader
	settings     SettingsReader
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

// NewValidator creates a validator. metrics may be nil when metrics are
// disabled.
func NewValidator(
	appointments AppointmentReader,
	settings SettingsReader,
	metrics MetricsRecorder,
	logger Logger,
) *Validator {
	return &Validator{
		appointments: appointments,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// WithTimeProvider overrides the clock, for tests.
func (v *Validator) WithTimeProvider(tp TimeProvider) *Validator {
	v.timeProvider = tp
	return v
}

// Validate produces the aggregated verdict for a candidate.
//
// A malformed candidate is rejected with ErrInvalidCandidate before any
// rule runs. A configuration read failure produces a fail-closed invalid
// verdict with a single generic reason. An appointment store read failure
// is returned as an error.
func (v *Validator) Validate(ctx context.Context, candidate *domain.Candidate) (*domain.Verdict, error) {
	if err := validateCandidate(candidate); err != nil {
		return nil, err
	}

	// Captured once; every sub-check sees the same instant.
	now := v.timeProvider.Now()

	hours, limits, err := v.fetchConfig(ctx)
	if err != nil {
		v.logger.Error("Validate: configuration read failed, failing closed: %v", err)
		verdict := &domain.Verdict{Valid: false, Errors: []string{msgConfigUnavailable}}
		v.observe(verdict)
		return verdict, nil
	}

	dayCount, err := v.appointments.CountActiveByDay(ctx, candidate.StartAt)
	if err != nil {
		v.logger.Error("Validate: failed to count appointments for day %s: %v",
			candidate.StartAt.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: count appointments for day: %v", ErrInternal, err)
	}

	reasons := EvaluateRules(candidate, hours, limits, dayCount, now)

	conflictReason, err := v.checkConflict(ctx, candidate, limits.BufferMinutes)
	if err != nil {
		return nil, err
	}
	if conflictReason != "" {
		reasons = append(reasons, conflictReason)
	}

	verdict := &domain.Verdict{
		Valid:  len(reasons) == 0,
		Errors: reasons,
	}
	v.observe(verdict)

	if !verdict.Valid {
		v.logger.Info("Validate: candidate staff=%d start=%s rejected: %d rule(s) violated",
			candidate.StaffID, candidate.StartAt.Format(time.RFC3339), len(verdict.Errors))
	}

	return verdict, nil
}

func (v *Validator) fetchConfig(ctx context.Context) (*domain.BusinessHours, *domain.BookingLimits, error) {
	hours, err := v.settings.GetBusinessHours(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("get business hours: %w", err)
	}
	limits, err := v.settings.GetBookingLimits(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("get booking limits: %w", err)
	}
	return hours, limits, nil
}

func (v *Validator) checkConflict(ctx context.Context, candidate *domain.Candidate, bufferMinutes int) (string, error) {
	buffer := time.Duration(bufferMinutes) * time.Minute

	appointments, err := v.appointments.GetActiveByStaffAndRange(
		ctx,
		candidate.StaffID,
		candidate.StartAt.Add(-buffer),
		candidate.EndAt.Add(buffer),
		candidate.ExcludeAppointmentID,
	)
	if err != nil {
		v.logger.Error("Validate: failed to fetch appointments for staff=%d: %v", candidate.StaffID, err)
		return "", fmt.Errorf("%w: fetch appointments for staff: %v", ErrInternal, err)
	}

	conflict, reason := HasConflict(candidate.StartAt, candidate.EndAt, bufferMinutes, appointments)
	if !conflict {
		return "", nil
	}
	return reason, nil
}

func (v *Validator) observe(verdict *domain.Verdict) {
	if v.metrics != nil {
		v.metrics.ObserveValidation(verdict.Valid)
	}
}

// validateCandidate rejects malformed candidates before any rule runs
func validateCandidate(candidate *domain.Candidate) error {
	if candidate == nil {
		return fmt.Errorf("%w: candidate is required", ErrInvalidCandidate)
	}
	if candidate.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidCandidate)
	}
	if candidate.StartAt.IsZero() || candidate.EndAt.IsZero() {
		return fmt.Errorf("%w: startAt and endAt are required", ErrInvalidCandidate)
	}
	if !candidate.EndAt.After(candidate.StartAt) {
		return fmt.Errorf("%w: endAt must be after startAt", ErrInvalidCandidate)
	}
	return nil
}
