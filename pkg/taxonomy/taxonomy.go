// Package taxonomy provides fixed, ordered keyword taxonomies and the
// substring-matching disciplines used to map free text onto their labels.
package taxonomy

import "strings"

// Entry pairs a taxonomy label with the keywords that indicate it.
type Entry struct {
	// Label is the canonical label recorded in profiles.
	Label string

	// Keywords are lowercase substrings whose presence indicates the label.
	Keywords []string
}

// Taxonomy is an ordered list of entries with a default label for the
// no-match case. Declaration order is part of the contract: it decides
// tie-breaks in MatchBest and winner selection in MatchFirst, and it is the
// order in which MatchAll emits labels.
type Taxonomy struct {
	// Name identifies the taxonomy in listings and reports.
	Name string

	// Default is returned when no entry matches. Empty for accumulating
	// taxonomies, which return an empty set instead.
	Default string

	Entries []Entry
}

// contains reports whether any keyword of the entry occurs as a substring of
// the corpus. Matching is deliberately word-boundary-free: "car" matches
// inside "scarce". Callers are expected to pass a lowercased corpus.
func (e Entry) contains(corpus string) bool {
	for _, keyword := range e.Keywords {
		if strings.Contains(corpus, keyword) {
			return true
		}
	}
	return false
}

// keywordCount returns how many distinct keywords of the entry occur in the
// corpus.
func (e Entry) keywordCount(corpus string) int {
	count := 0
	for _, keyword := range e.Keywords {
		if strings.Contains(corpus, keyword) {
			count++
		}
	}
	return count
}

// MatchBest returns the label whose entry has the highest distinct-keyword
// count in the corpus. The running best is replaced only on a strictly
// greater count, so ties resolve to the earliest-declared entry, and the
// default label (implicit count 0) loses to any single keyword hit.
func (t *Taxonomy) MatchBest(corpus string) string {
	best := t.Default
	bestCount := 0
	for _, entry := range t.Entries {
		if count := entry.keywordCount(corpus); count > bestCount {
			bestCount = count
			best = entry.Label
		}
	}
	return best
}

// MatchFirst returns the label of the first entry, in declared order, with
// any keyword present in the corpus. The default label stands if no entry
// matches.
func (t *Taxonomy) MatchFirst(corpus string) string {
	for _, entry := range t.Entries {
		if entry.contains(corpus) {
			return entry.Label
		}
	}
	return t.Default
}

// MatchAll returns the labels of every entry with any keyword present in the
// corpus, in declared order. The result contains no duplicates and may be
// empty.
func (t *Taxonomy) MatchAll(corpus string) []string {
	var matched []string
	for _, entry := range t.Entries {
		if entry.contains(corpus) {
			matched = append(matched, entry.Label)
		}
	}
	return matched
}

// Labels returns the declared labels in order.
func (t *Taxonomy) Labels() []string {
	labels := make([]string, len(t.Entries))
	for i, entry := range t.Entries {
		labels[i] = entry.Label
	}
	return labels
}
