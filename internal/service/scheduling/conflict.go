package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/salonhub/booking-service/internal/domain"
)

const conflictReasonPrefix = "the requested time conflicts with another appointment"

// IsConflictReason reports whether a verdict reason was produced by the
// conflict detector. Callers use it to decide when to offer alternative
// slots.
func IsConflictReason(reason string) bool {
	return strings.HasPrefix(reason, conflictReasonPrefix)
}

// HasConflict reports whether any non-cancelled appointment overlaps the
// candidate interval inflated by the buffer on both sides.
//
// The inflated interval is [startAt-buffer, endAt+buffer]. An appointment
// conflicts when its raw interval intersects the inflated one:
//
//	aStart < endAt+buffer && aEnd > startAt-buffer
//
// Applying the buffer symmetrically means two back-to-back appointments
// must leave a real gap of at least bufferMinutes between them. The strict
// inequalities make a gap of exactly bufferMinutes legal while one minute
// less is a conflict.
//
// The check is conservative: any appointment even partially inside the
// inflated window counts. It answers accept/reject only and does not
// enumerate every colliding appointment.
func HasConflict(startAt, endAt time.Time, bufferMinutes int, appointments []*domain.Appointment) (bool, string) {
	buffer := time.Duration(bufferMinutes) * time.Minute
	inflatedStart := startAt.Add(-buffer)
	inflatedEnd := endAt.Add(buffer)

	for _, appt := range appointments {
		if appt.IsCancelled() {
			continue
		}
		if appt.StartAt.Before(inflatedEnd) && appt.EndAt.After(inflatedStart) {
			return true, fmt.Sprintf(
				"%s for this staff member (a %d minute gap is required between appointments)",
				conflictReasonPrefix, bufferMinutes)
		}
	}

	return false, ""
}
