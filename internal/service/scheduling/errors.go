package scheduling

import "errors"

var (
	// ErrInvalidCandidate is returned when a candidate is malformed
	// (endTime not after startTime, missing staff id). Distinct from rule
	// violations: no rule runs for a malformed candidate.
	ErrInvalidCandidate = errors.New("scheduling: invalid candidate")

	// ErrInvalidInput is returned for malformed suggestion parameters
	ErrInvalidInput = errors.New("scheduling: invalid input data")

	// ErrConfigUnavailable is returned by the suggestion generator when the
	// salon configuration cannot be read
	ErrConfigUnavailable = errors.New("scheduling: configuration unavailable")

	// ErrInternal is returned on appointment store failures
	ErrInternal = errors.New("scheduling: internal error")
)

// msgConfigUnavailable is the single fail-closed verdict reason used when
// configuration cannot be read during validation. Booking must fail
// closed, never default to permissive limits.
const msgConfigUnavailable = "booking configuration is unavailable, please try again later"
