// Package kasiski implements the Kasiski examination: repeated
// substrings of a polyalphabetic ciphertext betray the key period,
// because identical plaintext under identical key alignment produces
// identical ciphertext.
package kasiski

import "strings"

// PatternTable maps each repeating pattern to the ascending list of
// indices where it occurs in the ciphertext.
type PatternTable map[string][]int

// PatternIndex accumulates the repeating patterns of one ciphertext.
// The usual lifecycle is Initialize, Maximize, Deduplicate; each stage
// refines the table in place.
type PatternIndex struct {
	text  string
	table PatternTable
}

// NewPatternIndex creates an empty index over cryptText.
func NewPatternIndex(cryptText string) *PatternIndex {
	return &PatternIndex{
		text:  cryptText,
		table: make(PatternTable),
	}
}

// Table exposes the current pattern table.
func (pi *PatternIndex) Table() PatternTable {
	return pi.table
}

// Initialize seeds the table with every substring of exactly minLength
// characters that occurs more than once. Text shorter than minLength
// yields an empty table.
func (pi *PatternIndex) Initialize(minLength int) {
	seen := make(PatternTable)
	for index := 0; index+minLength <= len(pi.text); index++ {
		pattern := pi.text[index : index+minLength]
		seen[pattern] = append(seen[pattern], index)
	}

	pi.table = make(PatternTable)
	for pattern, indices := range seen {
		if len(indices) > 1 {
			pi.table[pattern] = indices
		}
	}
}

// Maximize widens known patterns one character at a time, up to
// maxLength characters. A widened pattern can only occur where its base
// pattern occurs, so each candidate is re-scanned against the base
// pattern's index list alone. Widened patterns that still repeat join
// the table; the base patterns stay for Deduplicate to judge.
func (pi *PatternIndex) Maximize(maxLength int) {
	work := pi.table
	for len(work) > 0 {
		widened := make(PatternTable)
		for pattern, indices := range work {
			width := len(pattern) + 1
			if width > maxLength {
				continue
			}
			for _, index := range indices {
				if index+width > len(pi.text) {
					continue
				}
				candidate := pi.text[index : index+width]
				if _, done := widened[candidate]; done {
					continue
				}
				matches := findMatches(pi.text, candidate, indices)
				if len(matches) > 1 {
					widened[candidate] = matches
				}
			}
		}
		for pattern, indices := range widened {
			pi.table[pattern] = indices
		}
		work = widened
	}
}

// Deduplicate drops patterns that only ever occur inside a single
// longer pattern. "OW" tells the analyst nothing that "COW" does not,
// provided every occurrence of "OW" sits inside an occurrence of "COW".
// Removal repeats until no pattern is redundant.
func (pi *PatternIndex) Deduplicate() {
	for {
		var redundant []string
		for suspect, suspectIndices := range pi.table {
			for larger, largerIndices := range pi.table {
				if len(suspect) >= len(larger) {
					continue
				}
				offset := strings.Index(larger, suspect)
				if offset < 0 {
					continue
				}
				if len(suspectIndices) != len(largerIndices) {
					continue
				}
				if indicesCoincide(suspectIndices, largerIndices, offset) {
					redundant = append(redundant, suspect)
					break
				}
			}
		}
		if len(redundant) == 0 {
			return
		}
		for _, pattern := range redundant {
			delete(pi.table, pattern)
		}
	}
}

// findMatches returns the candidate locations where pattern actually
// occurs in text. Locations too close to the end to hold the pattern
// are skipped.
func findMatches(text, pattern string, candidates []int) []int {
	var matches []int
	for _, index := range candidates {
		if index+len(pattern) > len(text) {
			continue
		}
		if text[index:index+len(pattern)] == pattern {
			matches = append(matches, index)
		}
	}
	return matches
}

// indicesCoincide reports whether every suspect occurrence sits at
// exactly the given offset inside the corresponding larger occurrence.
func indicesCoincide(suspect, larger []int, offset int) bool {
	for i := range suspect {
		if suspect[i]-offset != larger[i] {
			return false
		}
	}
	return true
}
