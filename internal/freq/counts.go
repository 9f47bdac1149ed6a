// Package freq provides the letter and n-graph statistics that drive
// frequency analysis of substitution ciphers.
package freq

import (
	"sort"
	"strings"

	"github.com/scytale-project/scytale/internal/cipher"
)

// LetterCounts tallies the letters A-Z in text, case-insensitively.
// Every alphabet letter appears in the result even at a zero count;
// non-letters are ignored.
func LetterCounts(text string) map[rune]int {
	counts := make(map[rune]int, 26)
	for r := 'A'; r <= 'Z'; r++ {
		counts[r] = 0
	}
	for _, r := range strings.ToUpper(text) {
		if r < 'A' || r > 'Z' {
			continue
		}
		counts[r]++
	}
	return counts
}

// SortedCounts orders letter counts in descending order. Equal counts
// are broken alphabetically so the ranking is deterministic.
func SortedCounts(counts map[rune]int) []cipher.RankedCount {
	ranked := make([]cipher.RankedCount, 0, len(counts))
	for letter, count := range counts {
		ranked = append(ranked, cipher.RankedCount{Letter: letter, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Letter < ranked[j].Letter
	})

	return ranked
}
