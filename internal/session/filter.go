package session

import "strings"

// Filter returns the sessions matching the free-text query. A blank
// query returns the input unchanged. Matching is a case-insensitive
// substring test against name, description, trainer name and location;
// the result preserves input order and never mutates the input.
func Filter(sessions []Session, query string) []Session {
	query = strings.TrimSpace(query)
	if query == "" {
		return sessions
	}

	term := strings.ToLower(query)
	matched := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if matchesQuery(s, term) {
			matched = append(matched, s)
		}
	}
	return matched
}

func matchesQuery(s Session, term string) bool {
	return strings.Contains(strings.ToLower(s.Name), term) ||
		strings.Contains(strings.ToLower(s.Description), term) ||
		strings.Contains(strings.ToLower(s.Trainer.FullName), term) ||
		strings.Contains(strings.ToLower(s.Location), term)
}
