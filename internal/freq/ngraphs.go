package freq

import "sort"

// NGraphCount pairs an n-graph with the number of times it was seen.
type NGraphCount struct {
	Graph string `json:"graph"`
	Count int    `json:"count"`
}

// NGraphs counts every n-graph (digraphs for n=2, trigraphs for n=3,
// and so on) across a list of words. N-graphs never span word
// boundaries.
func NGraphs(words []string, n int) map[string]int {
	graphs := make(map[string]int)
	for _, word := range words {
		runes := []rune(word)
		for i := 0; i+n <= len(runes); i++ {
			graphs[string(runes[i:i+n])]++
		}
	}
	return graphs
}

// NGraphPrefixes counts the n-graph at the start of each word. Words
// shorter than n are skipped.
func NGraphPrefixes(words []string, n int) map[string]int {
	graphs := make(map[string]int)
	for _, word := range words {
		runes := []rune(word)
		if len(runes) < n {
			continue
		}
		graphs[string(runes[:n])]++
	}
	return graphs
}

// NGraphSuffixes counts the n-graph at the end of each word. Words
// shorter than n are skipped.
func NGraphSuffixes(words []string, n int) map[string]int {
	graphs := make(map[string]int)
	for _, word := range words {
		runes := []rune(word)
		if len(runes) < n {
			continue
		}
		graphs[string(runes[len(runes)-n:])]++
	}
	return graphs
}

// ByCount ranks n-graph counts in descending order, dropping those
// seen only once. Repetition is what makes an n-graph interesting to
// an analyst; singletons are noise. Equal counts are broken
// lexicographically so the ranking is deterministic.
func ByCount(graphs map[string]int) []NGraphCount {
	ranked := make([]NGraphCount, 0, len(graphs))
	for graph, count := range graphs {
		if count < 2 {
			continue
		}
		ranked = append(ranked, NGraphCount{Graph: graph, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Graph < ranked[j].Graph
	})

	return ranked
}
