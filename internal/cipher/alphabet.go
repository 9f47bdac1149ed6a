package cipher

import (
	"errors"
	"fmt"
	"strings"
)

const alphabetSize = 26

// EnglishFrequencyOrder lists the letters of the alphabet from most to
// least common in typical English text. NaiveSubstitution assumes the
// analysed text follows this distribution.
const EnglishFrequencyOrder = "ETAOINSHRDLCUMWFGYPBVKJXQZ"

// Unmapped is the sentinel value NaiveSubstitution assigns to letters it
// observed zero times and therefore cannot place in the table.
const Unmapped = '-'

// ErrKeyLongerThanText is returned when a Vigenère key does not fit the
// text it should be applied to.
var ErrKeyLongerThanText = errors.New("key is longer than text")

// ErrInvalidKey is returned when a Vigenère key is empty or contains
// non-alphabetic characters.
var ErrInvalidKey = errors.New("key must be non-empty and alphabetic")

// RotateLetter shifts a single alphabetic character by shift positions in
// the alphabet, preserving case. Non-alphabetic characters pass through
// unchanged. The shift may be negative or larger than the alphabet; it is
// normalised modulo 26.
func RotateLetter(letter rune, shift int) rune {
	var base rune
	switch {
	case letter >= 'a' && letter <= 'z':
		base = 'a'
	case letter >= 'A' && letter <= 'Z':
		base = 'A'
	default:
		return letter
	}
	offset := (int(letter-base) + shift) % alphabetSize
	if offset < 0 {
		offset += alphabetSize
	}
	return base + rune(offset)
}

// Rotate applies a Caesar shift to every character of text. Ordering and
// non-alphabetic characters are preserved.
func Rotate(text string, shift int) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(RotateLetter(r, shift))
	}
	return b.String()
}

// AllRotations returns the 26 possible Caesar shifts of text, indexed by
// shift amount. Useful when brute forcing a rotation cipher by eye.
func AllRotations(text string) []string {
	rotations := make([]string, alphabetSize)
	for shift := range rotations {
		rotations[shift] = Rotate(text, shift)
	}
	return rotations
}

// keySchedule converts a Vigenère key into per-letter shift amounts
// (a=0 .. z=25). The key is case-insensitive.
func keySchedule(key string) ([]int, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}
	shifts := make([]int, 0, len(key))
	for _, r := range strings.ToLower(key) {
		if r < 'a' || r > 'z' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, r)
		}
		shifts = append(shifts, int(r-'a'))
	}
	return shifts, nil
}

// VigenereEncode encrypts text with a repeating-key Caesar shift: the
// first character is shifted by the first key letter's value, the second
// by the second, cycling through the key. The key must not be longer
// than the text.
func VigenereEncode(text, key string) (string, error) {
	shifts, err := keySchedule(key)
	if err != nil {
		return "", err
	}
	if len(text) < len(shifts) {
		return "", fmt.Errorf("%w: key %d chars, text %d", ErrKeyLongerThanText, len(shifts), len(text))
	}
	var b strings.Builder
	b.Grow(len(text))
	for i, r := range []rune(text) {
		b.WriteRune(RotateLetter(r, shifts[i%len(shifts)]))
	}
	return b.String(), nil
}

// VigenereDecode decrypts text encrypted with VigenereEncode. Decoding is
// encoding under the complementary key: each key letter k becomes
// (26-k) mod 26, so a message locked with "cat" opens with "yah".
func VigenereDecode(cryptText, key string) (string, error) {
	shifts, err := keySchedule(key)
	if err != nil {
		return "", err
	}
	inverse := make([]byte, len(shifts))
	for i, s := range shifts {
		inverse[i] = byte('a' + (alphabetSize-s)%alphabetSize)
	}
	return VigenereEncode(cryptText, string(inverse))
}

// SubstituteAlphabet replaces every character present in mapping with its
// mapped value. Characters absent from the mapping pass through
// unchanged.
func SubstituteAlphabet(text string, mapping map[rune]rune) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if replacement, ok := mapping[r]; ok {
			b.WriteRune(replacement)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RankedCount pairs an uppercase letter with the number of times it was
// observed, pre-sorted by descending count.
type RankedCount struct {
	Letter rune
	Count  int
}

// NaiveSubstitution builds a substitution table from letter counts sorted
// by descending frequency, assuming the text's frequency rank matches
// EnglishFrequencyOrder. Letters never observed map to Unmapped. The
// result is a heuristic starting point, not a guaranteed decryption.
func NaiveSubstitution(sortedCounts []RankedCount) map[rune]rune {
	table := make(map[rune]rune, alphabetSize)
	for letter := 'A'; letter <= 'Z'; letter++ {
		table[letter] = Unmapped
	}
	for i, rc := range sortedCounts {
		if rc.Count == 0 || i >= len(EnglishFrequencyOrder) {
			break
		}
		table[rc.Letter] = rune(EnglishFrequencyOrder[i])
	}
	return table
}
