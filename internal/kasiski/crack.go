package kasiski

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/scytale-project/scytale/internal/freq"
	"github.com/scytale-project/scytale/internal/logging"
)

// ErrNoCandidates is returned when no Kasiski key length falls inside
// the requested key size bounds.
var ErrNoCandidates = errors.New("no candidate key lengths within bounds")

// KeyCandidate is one recovered key with its goodness of fit. Lower
// chi-squared means the decryption looks more like English.
type KeyCandidate struct {
	Key        string  `json:"key"`
	Length     int     `json:"length"`
	ChiSquared float64 `json:"chi_squared"`
}

// CrackResult carries the ranked key candidates together with the key
// length the index of coincidence favours on its own. Agreement between
// the two methods is strong evidence; disagreement means a human should
// look at both.
type CrackResult struct {
	Candidates      []KeyCandidate `json:"candidates"`
	EstimatedLength int            `json:"estimated_length"`
}

// CrackVigenere recovers candidate Vigenère keys for cryptText. The
// Kasiski examination proposes key lengths, lengths outside
// [minKeySize, maxKeySize] are discarded, and for each surviving
// length the best key letter per column is chosen by chi-squared
// against English letter frequencies. Candidates are ranked best fit
// first.
func (e *Examiner) CrackVigenere(cryptText string, minKeySize, maxKeySize int) (*CrackResult, error) {
	if minKeySize < 1 || maxKeySize < minKeySize {
		return nil, fmt.Errorf("invalid key size bounds [%d, %d]", minKeySize, maxKeySize)
	}

	lengths, err := e.Examine(cryptText)
	if err != nil {
		return nil, err
	}

	plausible := make([]int, 0, len(lengths))
	for _, length := range lengths {
		if length >= minKeySize && length <= maxKeySize {
			plausible = append(plausible, length)
		}
	}
	if len(plausible) == 0 {
		return nil, fmt.Errorf("crack: %w", ErrNoCandidates)
	}

	candidates := make([]KeyCandidate, 0, len(plausible))
	for _, length := range plausible {
		key, chiSq := bestKeyForLength(cryptText, length)
		candidate := KeyCandidate{Key: key, Length: length, ChiSquared: chiSq}
		candidates = append(candidates, candidate)
		e.emit(logging.EventKeyCandidate, map[string]any{
			"key":         candidate.Key,
			"length":      candidate.Length,
			"chi_squared": candidate.ChiSquared,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].ChiSquared != candidates[j].ChiSquared {
			return candidates[i].ChiSquared < candidates[j].ChiSquared
		}
		return candidates[i].Length < candidates[j].Length
	})

	return &CrackResult{
		Candidates:      candidates,
		EstimatedLength: EstimateKeyLength(cryptText, maxKeySize),
	}, nil
}

// bestKeyForLength assembles the key of the given length whose removal
// leaves each column looking most like English, along with the summed
// chi-squared statistic across columns.
func bestKeyForLength(cryptText string, length int) (string, float64) {
	var key strings.Builder
	total := 0.0
	for column := 0; column < length; column++ {
		shift, chiSq := freq.BestCaesarShift(columnText(cryptText, column, length))
		key.WriteByte(byte('a' + shift))
		total += chiSq
	}
	return key.String(), total
}

// columnText extracts the characters enciphered by one key position.
// Every character advances the key, so the column is a straight stride
// over the full text.
func columnText(cryptText string, column, length int) string {
	var b strings.Builder
	runes := []rune(cryptText)
	for i := column; i < len(runes); i += length {
		b.WriteRune(runes[i])
	}
	return b.String()
}

// EstimateKeyLength guesses the key length from the index of
// coincidence alone. For each trial length the text is split into
// columns; the length whose columns average closest to English prose
// wins. Ties break toward the shorter length. A maxKeySize below 2
// leaves nothing to try, so the estimate is 1.
func EstimateKeyLength(cryptText string, maxKeySize int) int {
	best := 1
	minDiff := math.MaxFloat64
	for length := 2; length <= maxKeySize; length++ {
		average := 0.0
		for column := 0; column < length; column++ {
			average += freq.IndexOfCoincidence(columnText(cryptText, column, length))
		}
		average /= float64(length)

		if diff := math.Abs(average - freq.EnglishIoC); diff < minDiff {
			minDiff = diff
			best = length
		}
	}
	return best
}
