package session

// almostFullRatio is the remaining-share threshold below which a
// session is flagged as almost full on the cards.
const almostFullRatio = 0.3

// AvailableSpots returns the remaining open spots, clamped at zero in
// case the backend ever serves an over-booked snapshot.
func AvailableSpots(s Session) int {
	spots := s.MaxParticipants - s.CurrentParticipants
	if spots < 0 {
		return 0
	}
	return spots
}

// IsFull reports whether no spots remain. A session with
// maxParticipants of zero is full by definition.
func IsFull(s Session) bool {
	return AvailableSpots(s) == 0
}

// IsAlmostFull reports whether the remaining share of spots is at or
// below the scarcity threshold but not yet zero. The spots check
// short-circuits before any division, so maxParticipants of zero never
// divides by zero.
func IsAlmostFull(s Session) bool {
	spots := AvailableSpots(s)
	if spots == 0 {
		return false
	}
	return float64(spots)/float64(s.MaxParticipants) <= almostFullRatio
}
