package kasiski

import (
	"errors"
	"sort"
)

// ErrNoConsistentPeriod is returned when no pattern repeats at a
// consistent interval, leaving nothing to factor.
var ErrNoConsistentPeriod = errors.New("no pattern repeats at a consistent interval")

// PatternDistances extracts the period of every consistently repeating
// pattern. A pattern whose occurrences are not evenly spaced is
// discarded; the surviving periods are deduplicated and returned in
// ascending order.
func PatternDistances(table PatternTable) []int {
	periods := make(map[int]struct{})
	for _, indices := range table {
		deltas := make(map[int]struct{})
		for i := 1; i < len(indices); i++ {
			deltas[indices[i]-indices[i-1]] = struct{}{}
		}
		if len(deltas) != 1 {
			continue
		}
		for delta := range deltas {
			periods[delta] = struct{}{}
		}
	}

	result := make([]int, 0, len(periods))
	for period := range periods {
		result = append(result, period)
	}
	sort.Ints(result)
	return result
}

// Factors returns the divisors of n in ascending order.
func Factors(n int) []int {
	var factors []int
	for i := 1; i <= n; i++ {
		if n%i == 0 {
			factors = append(factors, i)
		}
	}
	return factors
}

// IntersectFactors finds the factors common to every period, in
// descending order. The key length must divide every consistent
// repeat distance, so the common factors are the candidate lengths.
func IntersectFactors(periods []int) ([]int, error) {
	if len(periods) == 0 {
		return nil, ErrNoConsistentPeriod
	}

	common := Factors(periods[0])
	for _, period := range periods[1:] {
		factors := make(map[int]struct{})
		for _, f := range Factors(period) {
			factors[f] = struct{}{}
		}
		kept := common[:0]
		for _, f := range common {
			if _, ok := factors[f]; ok {
				kept = append(kept, f)
			}
		}
		common = kept
	}

	sort.Sort(sort.Reverse(sort.IntSlice(common)))
	return common, nil
}
