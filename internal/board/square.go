// Package board implements the piece-movement model for the drill
// using bitboards.
package board

import "fmt"

// Square represents a square on the board (0-63).
// Row 0 is rank 8 (the top of the board), col 0 is file a:
// A8=0, H8=7, A1=56, H1=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	NoSquare Square = 64
)

// Col returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) Col() int {
	return int(sq) & 7
}

// Row returns the row of the square (0-7, where 0 is rank 8 at the top).
func (sq Square) Row() int {
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col(), '8'-sq.Row())
}

// NewSquare creates a square from col and row (0-indexed, row 0 on top).
func NewSquare(col, row int) Square {
	return Square(row*8 + col)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	col := int(s[0] - 'a')
	row := int('8' - s[1])

	if col < 0 || col > 7 || row < 0 || row > 7 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(col, row), nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}
