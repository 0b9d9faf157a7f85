// Package bitmatrix holds the two-valued QR code grid drawn on the badge and
// the tooling to generate it offline and bake it into a Go source file.
package bitmatrix

// Cell is the pen value of one QR module.
type Cell uint8

const (
	Black Cell = 0
	White Cell = 15
)

// Matrix is an ordered list of rows. Once generated it is never modified.
type Matrix [][]Cell

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the length of the first row, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Count returns how many cells hold c.
func (m Matrix) Count(c Cell) int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v == c {
				n++
			}
		}
	}
	return n
}

// FromBitmap converts a bitmap where true marks a dark module.
func FromBitmap(bitmap [][]bool) Matrix {
	m := make(Matrix, len(bitmap))
	for y, row := range bitmap {
		m[y] = make([]Cell, len(row))
		for x, dark := range row {
			if dark {
				m[y][x] = Black
			} else {
				m[y][x] = White
			}
		}
	}
	return m
}

func validCell(c Cell) bool {
	return c == Black || c == White
}
