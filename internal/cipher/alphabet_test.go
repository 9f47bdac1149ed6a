package cipher

import (
	"errors"
	"testing"
)

func TestRotateLetter(t *testing.T) {
	tests := []struct {
		name     string
		letter   rune
		shift    int
		expected rune
	}{
		{"lowercase forward", 'a', 1, 'b'},
		{"lowercase wraps", 'z', 1, 'a'},
		{"uppercase preserved", 'A', 3, 'D'},
		{"uppercase wraps", 'Y', 4, 'C'},
		{"negative shift", 'b', -1, 'a'},
		{"negative wraps", 'a', -1, 'z'},
		{"large shift normalised", 'a', 27, 'b'},
		{"large negative shift", 'a', -27, 'z'},
		{"full rotation identity", 'm', 26, 'm'},
		{"digit passes through", '7', 5, '7'},
		{"space passes through", ' ', 5, ' '},
		{"punctuation passes through", '!', 13, '!'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RotateLetter(tt.letter, tt.shift); got != tt.expected {
				t.Errorf("RotateLetter(%q, %d) = %q, want %q", tt.letter, tt.shift, got, tt.expected)
			}
		})
	}
}

func TestRotateInverse(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog"
	for _, shift := range []int{0, 1, 13, 25, 26, 52, -3, -26, 100} {
		if got := Rotate(Rotate(text, shift), -shift); got != text {
			t.Errorf("rotate by %d then %d changed text: %q", shift, -shift, got)
		}
	}
}

func TestAllRotations(t *testing.T) {
	rotations := AllRotations("abc")
	if len(rotations) != 26 {
		t.Fatalf("expected 26 rotations, got %d", len(rotations))
	}
	if rotations[0] != "abc" {
		t.Errorf("shift 0 should be identity, got %q", rotations[0])
	}
	if rotations[1] != "bcd" {
		t.Errorf("shift 1: expected %q, got %q", "bcd", rotations[1])
	}
	if rotations[25] != "zab" {
		t.Errorf("shift 25: expected %q, got %q", "zab", rotations[25])
	}
}

func TestVigenereEncode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		key      string
		expected string
	}{
		{"identity key", "attackatdawn", "a", "attackatdawn"},
		{"classic example", "attackatdawn", "lemon", "lxfopvefrnhr"},
		{"key cycles", "aaaa", "ab", "abab"},
		{"case insensitive key", "aaaa", "AB", "abab"},
		{"text case preserved", "AaAa", "bb", "BbBb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VigenereEncode(tt.text, tt.key)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestVigenereRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
	}{
		{"short key", "cryptoisshortforcryptography", "abcd"},
		{"key as long as text", "cipher", "secret"},
		{"mixed case text", "AttackAtDawn", "lemon"},
		{"non-alphabetic pass-through", "attack at dawn!", "cab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := VigenereEncode(tt.text, tt.key)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			decoded, err := VigenereDecode(encoded, tt.key)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if decoded != tt.text {
				t.Errorf("round trip: expected %q, got %q", tt.text, decoded)
			}
		})
	}
}

func TestVigenereEncodeRejectsBadInput(t *testing.T) {
	if _, err := VigenereEncode("abc", "toolongkey"); !errors.Is(err, ErrKeyLongerThanText) {
		t.Errorf("expected ErrKeyLongerThanText, got %v", err)
	}
	if _, err := VigenereEncode("abc", ""); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey for empty key, got %v", err)
	}
	if _, err := VigenereEncode("abcdef", "k3y"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey for numeric key, got %v", err)
	}
	if _, err := VigenereDecode("abc", "toolongkey"); !errors.Is(err, ErrKeyLongerThanText) {
		t.Errorf("decode: expected ErrKeyLongerThanText, got %v", err)
	}
}

func TestSubstituteAlphabet(t *testing.T) {
	mapping := map[rune]rune{'a': 'x', 'b': 'y'}
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"mapped characters", "abba", "xyyx"},
		{"unmapped pass through", "cab!", "cxy!"},
		{"empty text", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubstituteAlphabet(tt.text, mapping); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNaiveSubstitution(t *testing.T) {
	counts := []RankedCount{
		{Letter: 'X', Count: 10},
		{Letter: 'Q', Count: 7},
		{Letter: 'M', Count: 3},
		{Letter: 'Z', Count: 0},
	}

	table := NaiveSubstitution(counts)

	// Frequency rank maps onto ETAOIN...
	if table['X'] != 'E' {
		t.Errorf("most frequent letter should map to E, got %q", table['X'])
	}
	if table['Q'] != 'T' {
		t.Errorf("second letter should map to T, got %q", table['Q'])
	}
	if table['M'] != 'A' {
		t.Errorf("third letter should map to A, got %q", table['M'])
	}

	// Zero-count letters stay unmapped.
	if table['Z'] != Unmapped {
		t.Errorf("unseen letter should stay unmapped, got %q", table['Z'])
	}

	// Every alphabet letter has an entry.
	if len(table) != 26 {
		t.Errorf("expected 26 table entries, got %d", len(table))
	}
}
