// Package search holds the substring matcher and the match accumulator for a
// single search run.
package search

import "strings"

// Matcher performs case-insensitive substring matching against a fixed query.
// The query is lowercased once at construction so each Matches call only pays
// for lowercasing the candidate content.
type Matcher struct {
	query      string
	queryLower string
}

// NewMatcher creates a matcher for the given search string.
func NewMatcher(query string) *Matcher {
	return &Matcher{
		query:      query,
		queryLower: strings.ToLower(query),
	}
}

// Matches reports whether content contains the query, ignoring case.
func (m *Matcher) Matches(content string) bool {
	return strings.Contains(strings.ToLower(content), m.queryLower)
}

// Query returns the search string as supplied by the user.
func (m *Matcher) Query() string {
	return m.query
}
