package booking

import (
	"github.com/412299-Rodriguez/club-appointments/internal/session"
	"github.com/412299-Rodriguez/club-appointments/internal/user"
)

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// Booking is an immutable snapshot of a member's reservation as served
// by the backend. The embedded session may be absent on denormalized
// payloads; SessionStartTime carries the start instant in that case.
type Booking struct {
	ID               int64            `json:"id"`
	User             user.User        `json:"user"`
	TrainingSession  *session.Session `json:"trainingSession,omitempty"`
	SessionStartTime string           `json:"sessionStartTime,omitempty"`
	Status           Status           `json:"status"`
	CreatedAt        string           `json:"createdAt,omitempty"`
	UpdatedAt        string           `json:"updatedAt,omitempty"`
}

type CreateBookingRequest struct {
	TrainingSessionID int64 `json:"trainingSessionId" binding:"required" validate:"required,gt=0"`
}

// Categorized is a member's booking list split into the two tabs of the
// bookings screen. Every booking lands in exactly one bucket.
type Categorized struct {
	Upcoming []Booking `json:"upcoming"`
	Past     []Booking `json:"past"`
}

// Stats holds the profile screen counters. Upcoming plus completed need
// not add up to total: cancelled and elapsed-but-still-confirmed
// bookings count toward neither.
type Stats struct {
	Total     int `json:"total"`
	Upcoming  int `json:"upcomingCount"`
	Completed int `json:"completedCount"`
}
