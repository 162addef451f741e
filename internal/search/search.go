// Package search implements literal substring search over a text buffer
// with wraparound navigation between matches. Sessions are immutable
// snapshots: any pattern or buffer change builds a fresh session.
package search

import "strings"

// Match is one located occurrence of the pattern, in byte offsets.
type Match struct {
	Start  int
	Length int
}

// Session holds the matches of one pattern against one buffer snapshot and
// the index of the current match. Current is -1 when there are no matches.
type Session struct {
	Pattern string
	Matches []Match
	Current int
}

// New scans text for literal, case-sensitive occurrences of pattern.
// Matching is non-overlapping, left-to-right and greedy: the scan resumes at
// the end of each match, never inside it. An empty pattern yields an empty
// session. The current index starts at the first match.
func New(text, pattern string) *Session {
	s := &Session{Pattern: pattern, Current: -1}
	if pattern == "" {
		return s
	}
	for off := 0; ; {
		i := strings.Index(text[off:], pattern)
		if i < 0 {
			break
		}
		start := off + i
		s.Matches = append(s.Matches, Match{Start: start, Length: len(pattern)})
		off = start + len(pattern)
	}
	if len(s.Matches) > 0 {
		s.Current = 0
	}
	return s
}

// HasMatches reports whether the session located at least one match.
func (s *Session) HasMatches() bool { return s != nil && len(s.Matches) > 0 }

// CurrentMatch returns the match under the cursor. ok is false for an empty
// session.
func (s *Session) CurrentMatch() (Match, bool) {
	if !s.HasMatches() {
		return Match{}, false
	}
	return s.Matches[s.Current], true
}

// Next advances the current match, wrapping past the last back to the
// first. No-op when there are no matches.
func (s *Session) Next() {
	if s.HasMatches() {
		s.Current = (s.Current + 1) % len(s.Matches)
	}
}

// Prev steps back to the previous match, wrapping from the first to the
// last. No-op when there are no matches.
func (s *Session) Prev() {
	if s.HasMatches() {
		s.Current = (s.Current - 1 + len(s.Matches)) % len(s.Matches)
	}
}
