package store

import "strings"

// FilterByCategory returns records whose category equals cat, ignoring case.
func (s *Store[T, P]) FilterByCategory(cat string) []P {
	var out []P
	for _, r := range s.items {
		if strings.EqualFold(r.RecordCategory(), cat) {
			out = append(out, r)
		}
	}
	return out
}

// Search returns records whose description or category contains query,
// ignoring case.
func (s *Store[T, P]) Search(query string) []P {
	q := strings.ToLower(query)
	var out []P
	for _, r := range s.items {
		if matchesQuery(q, r.Searchable()) {
			out = append(out, r)
		}
	}
	return out
}

func matchesQuery(q string, fields []string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
