package search

import "fmt"

// Result records a single match location. Path is the filesystem path of the
// matched file or archive. Entry is the path inside the archive when the
// match came from an archive entry, empty otherwise.
type Result struct {
	Path  string
	Entry string
}

// IsArchiveEntry reports whether the result points inside an archive.
func (r Result) IsArchiveEntry() bool {
	return r.Entry != ""
}

// String renders the result as it appears in the final report.
func (r Result) String() string {
	if r.Entry != "" {
		return fmt.Sprintf("%s -> %s", r.Path, r.Entry)
	}
	return r.Path
}

// Results accumulates match locations in the order they were found. It is
// owned by a single search run and is not safe for concurrent use.
type Results struct {
	matches []Result
}

// NewResults creates an empty accumulator.
func NewResults() *Results {
	return &Results{matches: make([]Result, 0)}
}

// Add appends a match location.
func (r *Results) Add(result Result) {
	r.matches = append(r.matches, result)
}

// All returns the accumulated matches in discovery order.
func (r *Results) All() []Result {
	return r.matches
}

// Count returns the number of accumulated matches.
func (r *Results) Count() int {
	return len(r.matches)
}

// Empty reports whether no matches have been recorded.
func (r *Results) Empty() bool {
	return len(r.matches) == 0
}
