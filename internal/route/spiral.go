package route

import "fmt"

// Point is an (x, y) cell coordinate within a rectangle: x is the
// column, y the row.
type Point struct {
	X int
	Y int
}

// Spiral returns the order of cells to visit in a width×length grid when
// following a spiral route. The default orientation is clockwise moving
// inward from the top-left corner; counterclockwise reverses each ring's
// traversal after its shared starting cell, and outward reverses the
// whole path.
func Spiral(width, length int, clockwise, inward bool) []Point {
	var path []Point
	// The number of cells per ring shrinks unevenly, so keep peeling
	// rings until one comes back empty.
	for ring := 0; ; ring++ {
		rotation := spiralRing(width, length, ring)
		if len(rotation) == 0 {
			break
		}
		if !clockwise && len(rotation) > 1 {
			// The first cell of a ring is the same either way round;
			// the rest of the ring runs in the opposite order.
			reversed := make([]Point, 0, len(rotation))
			reversed = append(reversed, rotation[0])
			for i := len(rotation) - 1; i >= 1; i-- {
				reversed = append(reversed, rotation[i])
			}
			rotation = reversed
		}
		path = append(path, rotation...)
	}
	if !inward {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}
	return path
}

// spiralRing lists the cells of one rectangular ring clockwise, starting
// at its top-left corner. Ring 0 is the outermost.
func spiralRing(width, length, ring int) []Point {
	var cells []Point

	top := ring
	bottom := length - ring - 1
	left := ring
	right := width - ring - 1

	if top > bottom || left > right {
		return nil
	}

	// Top row, left to right.
	for x := left; x <= right; x++ {
		cells = append(cells, Point{X: x, Y: top})
	}
	// Right column, top to bottom, excluding the corner already taken.
	for y := top + 1; y <= bottom; y++ {
		cells = append(cells, Point{X: right, Y: y})
	}
	// Bottom row, right to left, excluding both corners already taken.
	if bottom > top {
		for x := right - 1; x >= left; x-- {
			cells = append(cells, Point{X: x, Y: bottom})
		}
	}
	// Left column, bottom to top, excluding both corners already taken.
	if right > left {
		for y := bottom - 1; y >= top+1; y-- {
			cells = append(cells, Point{X: left, Y: y})
		}
	}

	return cells
}

// WriteAlong writes text into the grid cell by cell following path.
// Text shorter than the path leaves the remaining cells empty; text
// longer than the path is an error.
func WriteAlong(grid Rectangle, text string, path []Point) (Rectangle, error) {
	runes := []rune(text)
	if len(runes) > len(path) {
		return nil, fmt.Errorf("%w: %d runes along %d cells", ErrTextTooLong, len(runes), len(path))
	}
	for i, r := range runes {
		grid[path[i].Y][path[i].X] = r
	}
	return grid, nil
}

// ReadAlong reads the grid cell by cell following path, skipping empty
// cells.
func ReadAlong(grid Rectangle, path []Point) string {
	runes := make([]rune, 0, len(path))
	for _, p := range path {
		if r := grid[p.Y][p.X]; r != 0 {
			runes = append(runes, r)
		}
	}
	return string(runes)
}

// SpiralEncode writes text into a width×length grid along a spiral route
// and reads the ciphertext back row by row. The text must fill the grid
// exactly: a partially filled grid cannot be decoded again because the
// row-wise read loses track of which cells were empty.
func SpiralEncode(text string, width, length int, clockwise, inward bool) (string, error) {
	if len([]rune(text)) != width*length {
		return "", fmt.Errorf("%w: %d runes, grid %dx%d", ErrSizeMismatch, len([]rune(text)), width, length)
	}
	grid, err := WriteAlong(NewRectangle(width, length), text, Spiral(width, length, clockwise, inward))
	if err != nil {
		return "", err
	}
	return UnravelHorizontally(grid), nil
}

// SpiralDecode reverses SpiralEncode: the ciphertext is laid back into
// the grid row by row and the plaintext read off along the same spiral
// route.
func SpiralDecode(cryptText string, width, length int, clockwise, inward bool) (string, error) {
	if len([]rune(cryptText)) != width*length {
		return "", fmt.Errorf("%w: %d runes, grid %dx%d", ErrSizeMismatch, len([]rune(cryptText)), width, length)
	}
	grid, err := FormRectangleHorizontally(cryptText, width, length)
	if err != nil {
		return "", err
	}
	return ReadAlong(grid, Spiral(width, length, clockwise, inward)), nil
}
