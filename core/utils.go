package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// ContainsFold reports whether any of the haystack fields contains the query,
// case-insensitively. An empty query matches everything.
func ContainsFold(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// MatchesStatus compares a record's status against a filter value.
// The "all" filter bypasses the check; otherwise comparison is on
// the normalized (lower-cased, trimmed) forms.
func MatchesStatus(status, filter string) bool {
	filter = CleanString(filter, true)
	if filter == "" || filter == "all" {
		return true
	}
	return CleanString(status, true) == filter
}
