package customer

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultDebounce is the quiet period after the last search keystroke before
// the query is committed.
const DefaultDebounce = 200 * time.Millisecond

// newLower returns a Unicode default lower-caser. A Caser is stateful and not
// safe for concurrent use; callers create one and reuse it across a pass.
func newLower() cases.Caser {
	return cases.Lower(language.Und)
}

// NormalizeQuery trims and lower-cases a raw search query.
func NormalizeQuery(raw string) string {
	return newLower().String(strings.TrimSpace(raw))
}

// Filter returns the records whose name, phone, and email (space-joined and
// lower-cased) contain query. An empty query returns every record in order.
// The result is always a new slice.
func Filter(records []Record, query string) []Record {
	q := NormalizeQuery(query)
	if q == "" {
		return append([]Record(nil), records...)
	}
	lower := newLower()
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(haystack(lower, r), q) {
			out = append(out, r)
		}
	}
	return out
}

func haystack(lower cases.Caser, r Record) string {
	return lower.String(r.Name + " " + r.Phone + " " + r.Email)
}

// SearchToken identifies one scheduled query commit.
type SearchToken uint64

// SearchState buffers raw search input and holds the committed query.
// Each Set supersedes every earlier token, so only the most recently
// scheduled commit can take effect.
type SearchState struct {
	raw       string
	committed string
	seq       SearchToken
}

// Set records the latest raw input and returns the token for its commit.
func (s *SearchState) Set(raw string) SearchToken {
	s.raw = raw
	s.seq++
	return s.seq
}

// Commit applies the latest raw input if tok is still current.
// It reports whether the committed query was updated.
func (s *SearchState) Commit(tok SearchToken) bool {
	if tok != s.seq {
		return false
	}
	s.committed = NormalizeQuery(s.raw)
	return true
}

// Flush commits the latest raw input immediately.
func (s *SearchState) Flush() {
	s.committed = NormalizeQuery(s.raw)
}

// Raw returns the latest raw input.
func (s *SearchState) Raw() string { return s.raw }

// Query returns the committed, normalized query.
func (s *SearchState) Query() string { return s.committed }
