package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/412299-Rodriguez/club-appointments/internal/user"
)

func catalogFixture() []Session {
	return []Session{
		{ID: 1, Name: "Morning Yoga", Description: "Sun salutations", Trainer: user.User{FullName: "Ana Torres"}, Location: "Studio A"},
		{ID: 2, Name: "HIIT Blast", Description: "High intensity cardio", Trainer: user.User{FullName: "Ana Torres"}, Location: "Main Hall"},
		{ID: 3, Name: "Spin Class", Description: "", Trainer: user.User{FullName: "Yogi Bear"}, Location: "Cycle Room"},
		{ID: 4, Name: "Pilates", Trainer: user.User{FullName: "Carla Núñez"}, Location: "Studio A"},
	}
}

func sessionIDs(sessions []Session) []int64 {
	ids := make([]int64, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{"empty query keeps everything", "", []int64{1, 2, 3, 4}},
		{"whitespace query keeps everything", "   ", []int64{1, 2, 3, 4}},
		{"matches name and trainer, case-insensitive", "yoga", []int64{1}},
		{"trainer substring", "yog", []int64{1, 3}},
		{"location match", "studio a", []int64{1, 4}},
		{"description match", "cardio", []int64{2}},
		{"uppercase query", "PILATES", []int64{4}},
		{"no match", "swimming", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := catalogFixture()
			got := Filter(catalog, tt.query)
			assert.Equal(t, tt.wantIDs, sessionIDs(got))
		})
	}
}

func TestFilter_EmptyQueryReturnsInputUnchanged(t *testing.T) {
	catalog := catalogFixture()
	got := Filter(catalog, "")
	assert.Equal(t, catalog, got)
	// Same backing slice, not a copy.
	assert.Equal(t, &catalog[0], &got[0])
}

func TestFilter_Idempotent(t *testing.T) {
	catalog := catalogFixture()
	once := Filter(catalog, "yog")
	twice := Filter(once, "yog")
	assert.Equal(t, once, twice)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	catalog := catalogFixture()
	ids := sessionIDs(catalog)

	Filter(catalog, "yoga")

	assert.Equal(t, ids, sessionIDs(catalog))
}

func TestFilter_AbsentDescription(t *testing.T) {
	catalog := []Session{{ID: 1, Name: "Spin"}}
	assert.Empty(t, Filter(catalog, "cardio"))
	assert.Len(t, Filter(catalog, "spin"), 1)
}
