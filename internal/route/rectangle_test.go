package route

import (
	"errors"
	"testing"
)

func TestFormRectangleHorizontally(t *testing.T) {
	grid, err := FormRectangleHorizontally("abcdef", 3, 2)
	if err != nil {
		t.Fatalf("form failed: %v", err)
	}
	if string(grid[0]) != "abc" || string(grid[1]) != "def" {
		t.Errorf("unexpected grid: %q %q", string(grid[0]), string(grid[1]))
	}
	if got := UnravelHorizontally(grid); got != "abcdef" {
		t.Errorf("horizontal round trip: got %q", got)
	}
	if got := UnravelVertically(grid); got != "adbecf" {
		t.Errorf("vertical unravel: expected %q, got %q", "adbecf", got)
	}
}

func TestFormRectangleVertically(t *testing.T) {
	grid, err := FormRectangleVertically("abcdef", 3, 2)
	if err != nil {
		t.Fatalf("form failed: %v", err)
	}
	if string(grid[0]) != "ace" || string(grid[1]) != "bdf" {
		t.Errorf("unexpected grid: %q %q", string(grid[0]), string(grid[1]))
	}
	if got := UnravelVertically(grid); got != "abcdef" {
		t.Errorf("vertical round trip: got %q", got)
	}
	if got := UnravelHorizontally(grid); got != "acebdf" {
		t.Errorf("horizontal unravel: expected %q, got %q", "acebdf", got)
	}
}

func TestFormRectanglePartialFill(t *testing.T) {
	grid, err := FormRectangleHorizontally("abcd", 3, 2)
	if err != nil {
		t.Fatalf("form failed: %v", err)
	}
	if got := UnravelHorizontally(grid); got != "abcd" {
		t.Errorf("empty cells should be skipped, got %q", got)
	}
	if got := UnravelVertically(grid); got != "adbc" {
		t.Errorf("expected %q, got %q", "adbc", got)
	}
}

func TestFormRectangleTooLong(t *testing.T) {
	if _, err := FormRectangleHorizontally("abcdefg", 3, 2); !errors.Is(err, ErrTextTooLong) {
		t.Errorf("expected ErrTextTooLong, got %v", err)
	}
	if _, err := FormRectangleVertically("abcdefg", 3, 2); !errors.Is(err, ErrTextTooLong) {
		t.Errorf("expected ErrTextTooLong, got %v", err)
	}
}

func TestSwapRows(t *testing.T) {
	grid, _ := FormRectangleHorizontally("abcdef", 3, 2)
	SwapRows(grid, 0, 1)
	if got := UnravelHorizontally(grid); got != "defabc" {
		t.Errorf("expected %q, got %q", "defabc", got)
	}
}

func TestSwapColumns(t *testing.T) {
	grid, _ := FormRectangleHorizontally("abcdef", 3, 2)
	SwapColumns(grid, 0, 2)
	if got := UnravelHorizontally(grid); got != "cbafed" {
		t.Errorf("expected %q, got %q", "cbafed", got)
	}
}
