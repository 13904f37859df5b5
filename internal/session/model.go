package session

import (
	"time"

	"github.com/412299-Rodriguez/club-appointments/internal/schedule"
	"github.com/412299-Rodriguez/club-appointments/internal/user"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// Session is an immutable snapshot of a scheduled training session as
// served by the backend. Date and time-of-day stay wire strings; field
// names mirror the backend payload.
type Session struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	Trainer             user.User `json:"trainer"`
	Date                string    `json:"date"`
	StartTime           string    `json:"startTime"`
	EndTime             string    `json:"endTime"`
	Location            string    `json:"location"`
	MaxParticipants     int       `json:"maxParticipants"`
	CurrentParticipants int       `json:"currentParticipants"`
	Status              Status    `json:"status"`
	CreatedAt           string    `json:"createdAt,omitempty"`
	UpdatedAt           string    `json:"updatedAt,omitempty"`
}

// StartsAt combines the session's date and start time into an absolute
// instant. Unparsable fields yield the zero time, which every caller
// treats as already elapsed.
func (s Session) StartsAt() time.Time {
	t, err := schedule.At(s.Date, s.StartTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

// View is a Session decorated with the derived presentation state the
// session cards render.
type View struct {
	Session
	AvailableSpots int  `json:"availableSpots"`
	IsFull         bool `json:"isFull"`
	IsAlmostFull   bool `json:"isAlmostFull"`
	AlreadyBooked  bool `json:"alreadyBooked"`
}

// NewView derives the presentation fields for one session snapshot.
func NewView(s Session, alreadyBooked bool) View {
	return View{
		Session:        s,
		AvailableSpots: AvailableSpots(s),
		IsFull:         IsFull(s),
		IsAlmostFull:   IsAlmostFull(s),
		AlreadyBooked:  alreadyBooked,
	}
}

type CreateSessionRequest struct {
	Name            string `json:"name" binding:"required" validate:"required,max=100"`
	Description     string `json:"description" validate:"max=2000"`
	TrainerID       int64  `json:"trainerId" binding:"required" validate:"required,gt=0"`
	Date            string `json:"date" binding:"required" validate:"required"`
	StartTime       string `json:"startTime" binding:"required" validate:"required"`
	EndTime         string `json:"endTime" binding:"required" validate:"required"`
	Location        string `json:"location" binding:"required" validate:"required,max=100"`
	MaxParticipants int    `json:"maxParticipants" binding:"required" validate:"required,gte=1"`
}
