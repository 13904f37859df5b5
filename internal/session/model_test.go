package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_StartsAt(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		startTime string
		want      time.Time
	}{
		{"date and seconds time", "2026-03-20", "09:00:00", time.Date(2026, 3, 20, 9, 0, 0, 0, time.Local)},
		{"minutes-only time", "2026-03-20", "09:30", time.Date(2026, 3, 20, 9, 30, 0, 0, time.Local)},
		{"missing date yields zero", "", "09:00:00", time.Time{}},
		{"missing time yields zero", "2026-03-20", "", time.Time{}},
		{"garbage yields zero", "soon", "morning", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{Date: tt.date, StartTime: tt.startTime}
			assert.True(t, s.StartsAt().Equal(tt.want))
		})
	}
}
