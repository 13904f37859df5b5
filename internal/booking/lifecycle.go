package booking

import (
	"time"

	"github.com/412299-Rodriguez/club-appointments/internal/schedule"
)

// CancellationWindow is the minimum lead time before a session start
// within which a member may no longer cancel. Policy constant shared
// with the backend; the gate here only avoids round trips the backend
// would reject anyway.
const CancellationWindow = 2 * time.Hour

// StartsAt resolves the booking's session start instant. A denormalized
// SessionStartTime wins over recomputing from the embedded session,
// whose fields may be partial or stale. Unresolvable bookings yield the
// zero time and are treated as already elapsed.
func (b Booking) StartsAt() time.Time {
	if b.SessionStartTime != "" {
		if t, err := schedule.ParseInstant(b.SessionStartTime); err == nil {
			return t
		}
	}
	if b.TrainingSession != nil {
		return b.TrainingSession.StartsAt()
	}
	return time.Time{}
}

// CanCancel reports whether the member may still cancel the booking at
// the given instant: only confirmed bookings, and only strictly more
// than CancellationWindow before the session starts. Exactly on the
// boundary is not cancellable.
func CanCancel(b Booking, now time.Time) bool {
	if b.Status != StatusConfirmed {
		return false
	}
	return schedule.HoursUntil(b.StartsAt(), now) > CancellationWindow.Hours()
}

// Categorize partitions a member's bookings into upcoming and past.
// Upcoming means confirmed and not yet started; everything else —
// cancelled, completed, or confirmed but elapsed — is past. The
// partition is total and disjoint.
func Categorize(bookings []Booking, now time.Time) Categorized {
	out := Categorized{
		Upcoming: []Booking{},
		Past:     []Booking{},
	}
	for _, b := range bookings {
		if b.Status == StatusConfirmed && schedule.IsFuture(b.StartsAt(), now) {
			out.Upcoming = append(out.Upcoming, b)
		} else {
			out.Past = append(out.Past, b)
		}
	}
	return out
}

// ComputeStats derives the profile counters from a member's bookings.
func ComputeStats(bookings []Booking, now time.Time) Stats {
	stats := Stats{Total: len(bookings)}
	for _, b := range bookings {
		if b.Status == StatusConfirmed && schedule.IsFuture(b.StartsAt(), now) {
			stats.Upcoming++
		}
		if b.Status == StatusCompleted {
			stats.Completed++
		}
	}
	return stats
}

// IsAlreadyBooked reports whether any booking in the set is a confirmed
// reservation against the given session. Drives button state only; the
// backend remains the authority on duplicates.
func IsAlreadyBooked(sessionID int64, bookings []Booking) bool {
	for _, b := range bookings {
		if b.Status != StatusConfirmed {
			continue
		}
		if b.TrainingSession != nil && b.TrainingSession.ID == sessionID {
			return true
		}
	}
	return false
}
