package route

import (
	"errors"
	"testing"
)

func TestSpiralCoversEveryCellOnce(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		length int
	}{
		{"square", 4, 4},
		{"wide", 5, 3},
		{"tall", 3, 5},
		{"single row", 6, 1},
		{"single column", 1, 6},
		{"single cell", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, clockwise := range []bool{true, false} {
				for _, inward := range []bool{true, false} {
					path := Spiral(tt.width, tt.length, clockwise, inward)
					if len(path) != tt.width*tt.length {
						t.Fatalf("clockwise=%v inward=%v: path has %d cells, want %d",
							clockwise, inward, len(path), tt.width*tt.length)
					}
					seen := make(map[Point]bool, len(path))
					for _, p := range path {
						if p.X < 0 || p.X >= tt.width || p.Y < 0 || p.Y >= tt.length {
							t.Fatalf("cell %v out of bounds", p)
						}
						if seen[p] {
							t.Fatalf("cell %v visited twice", p)
						}
						seen[p] = true
					}
				}
			}
		})
	}
}

func TestSpiralStartsAtCorner(t *testing.T) {
	for _, clockwise := range []bool{true, false} {
		path := Spiral(4, 3, clockwise, true)
		if path[0] != (Point{X: 0, Y: 0}) {
			t.Errorf("clockwise=%v: inward spiral should start at top-left, got %v", clockwise, path[0])
		}
	}
}

func TestSpiralOutwardReversesInward(t *testing.T) {
	inward := Spiral(4, 3, true, true)
	outward := Spiral(4, 3, true, false)
	for i := range inward {
		if inward[i] != outward[len(outward)-1-i] {
			t.Fatalf("outward path is not the reverse of inward at index %d", i)
		}
	}
}

func TestSpiralEncode(t *testing.T) {
	tests := []struct {
		name      string
		clockwise bool
		inward    bool
		expected  string
	}{
		{"clockwise inward", true, true, "abchidgfe"},
		{"counterclockwise inward", false, true, "ahgbifcde"},
		{"clockwise outward", true, false, "ihgbafcde"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SpiralEncode("abcdefghi", 3, 3, tt.clockwise, tt.inward)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSpiralRoundTrip(t *testing.T) {
	text := "attackatdawnatnoonorelse"
	for _, clockwise := range []bool{true, false} {
		for _, inward := range []bool{true, false} {
			encoded, err := SpiralEncode(text, 6, 4, clockwise, inward)
			if err != nil {
				t.Fatalf("clockwise=%v inward=%v: encode failed: %v", clockwise, inward, err)
			}
			decoded, err := SpiralDecode(encoded, 6, 4, clockwise, inward)
			if err != nil {
				t.Fatalf("clockwise=%v inward=%v: decode failed: %v", clockwise, inward, err)
			}
			if decoded != text {
				t.Errorf("clockwise=%v inward=%v: round trip gave %q", clockwise, inward, decoded)
			}
		}
	}
}

func TestSpiralEncodeSizeMismatch(t *testing.T) {
	if _, err := SpiralEncode("short", 3, 3, true, true); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
	if _, err := SpiralDecode("short", 3, 3, true, true); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestWriteAlongPartial(t *testing.T) {
	path := Spiral(3, 3, true, true)
	grid, err := WriteAlong(NewRectangle(3, 3), "abcd", path)
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if got := ReadAlong(grid, path); got != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", got)
	}
	if _, err := WriteAlong(NewRectangle(2, 2), "abcde", Spiral(2, 2, true, true)); !errors.Is(err, ErrTextTooLong) {
		t.Errorf("expected ErrTextTooLong, got %v", err)
	}
}
