package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRotateBy(t *testing.T) {
	input := writeInputFile(t, "Why did the chicken cross the road?")
	var out bytes.Buffer
	if code := runRotateTo(&out, []string{"--by", "13", input}); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if got := strings.TrimSuffix(out.String(), "\n"); got != "Jul qvq gur puvpxra pebff gur ebnq?" {
		t.Fatalf("rotated = %q", got)
	}
}

func TestRotateAll(t *testing.T) {
	input := writeInputFile(t, "abc")
	var out bytes.Buffer
	if code := runRotateTo(&out, []string{"--all", input}); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 26 {
		t.Fatalf("got %d rotations, want 26", len(lines))
	}
	if lines[0] != " 0 abc" {
		t.Errorf("shift 0 line = %q", lines[0])
	}
	if lines[3] != " 3 def" {
		t.Errorf("shift 3 line = %q", lines[3])
	}
	if lines[25] != "25 zab" {
		t.Errorf("shift 25 line = %q", lines[25])
	}
}

func TestRouteSpiralRoundTrip(t *testing.T) {
	input := writeInputFile(t, "abcdefghi")
	var encoded bytes.Buffer
	if code := runRouteTo(&encoded, []string{"--width", "3", "--length", "3", input}, true); code != 0 {
		t.Fatalf("encode exit code = %d", code)
	}
	crypt := strings.TrimSuffix(encoded.String(), "\n")
	if crypt != "abchidgfe" {
		t.Fatalf("encoded = %q", crypt)
	}

	cryptFile := writeInputFile(t, crypt)
	var decoded bytes.Buffer
	if code := runRouteTo(&decoded, []string{"--width", "3", "--length", "3", cryptFile}, false); code != 0 {
		t.Fatalf("decode exit code = %d", code)
	}
	if got := strings.TrimSuffix(decoded.String(), "\n"); got != "abcdefghi" {
		t.Fatalf("decoded = %q", got)
	}
}

func TestRouteRejectsMissingGrid(t *testing.T) {
	var out bytes.Buffer
	if code := runRouteTo(&out, []string{"--width", "3"}, true); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
}
