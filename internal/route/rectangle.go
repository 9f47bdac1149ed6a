// Package route implements geometric transposition ciphers: text is
// written into a rectangular grid and read back along a different path.
package route

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTextTooLong is returned when the text does not fit the grid.
var ErrTextTooLong = errors.New("text does not fit the grid")

// ErrSizeMismatch is returned by the encode/decode helpers when the text
// length does not exactly match the grid capacity. Transposition loses
// positional information otherwise, so round-tripping would break.
var ErrSizeMismatch = errors.New("text length must equal width*length")

// Rectangle is a grid of runes indexed [row][column]. Unfilled cells
// hold the zero rune and are skipped when unravelling.
type Rectangle [][]rune

// NewRectangle returns an empty width×length grid.
func NewRectangle(width, length int) Rectangle {
	grid := make(Rectangle, length)
	for y := range grid {
		grid[y] = make([]rune, width)
	}
	return grid
}

// FormRectangleHorizontally fills a width×length grid with text row by
// row, left to right. Text shorter than the grid leaves trailing cells
// empty; longer text is an error.
func FormRectangleHorizontally(text string, width, length int) (Rectangle, error) {
	runes := []rune(text)
	if len(runes) > width*length {
		return nil, fmt.Errorf("%w: %d runes into %dx%d", ErrTextTooLong, len(runes), width, length)
	}
	grid := NewRectangle(width, length)
	for i, r := range runes {
		grid[i/width][i%width] = r
	}
	return grid, nil
}

// FormRectangleVertically fills a width×length grid with text column by
// column, top to bottom.
func FormRectangleVertically(text string, width, length int) (Rectangle, error) {
	runes := []rune(text)
	if len(runes) > width*length {
		return nil, fmt.Errorf("%w: %d runes into %dx%d", ErrTextTooLong, len(runes), width, length)
	}
	grid := NewRectangle(width, length)
	for i, r := range runes {
		grid[i%length][i/length] = r
	}
	return grid, nil
}

// UnravelHorizontally reads the grid row by row, skipping empty cells.
func UnravelHorizontally(grid Rectangle) string {
	var b strings.Builder
	for _, row := range grid {
		for _, r := range row {
			if r != 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// UnravelVertically reads the grid column by column, skipping empty
// cells.
func UnravelVertically(grid Rectangle) string {
	if len(grid) == 0 {
		return ""
	}
	var b strings.Builder
	width := len(grid[0])
	for x := 0; x < width; x++ {
		for y := 0; y < len(grid); y++ {
			if r := grid[y][x]; r != 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// SwapRows exchanges two rows of the grid in place and returns it.
func SwapRows(grid Rectangle, row1, row2 int) Rectangle {
	grid[row1], grid[row2] = grid[row2], grid[row1]
	return grid
}

// SwapColumns exchanges two columns of the grid in place and returns it.
func SwapColumns(grid Rectangle, col1, col2 int) Rectangle {
	for y := range grid {
		grid[y][col1], grid[y][col2] = grid[y][col2], grid[y][col1]
	}
	return grid
}
