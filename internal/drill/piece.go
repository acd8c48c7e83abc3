// Package drill implements the visualization drill: piece placement,
// move history, and the weighted target selection that drives each
// "find this square" challenge.
package drill

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/nvkov/squaresight/internal/board"
)

// Piece is one drill piece. The ID is stable for the piece's lifetime
// within a single drill and is what the move history records.
type Piece struct {
	ID      uuid.UUID
	Kind    board.PieceKind
	Color   board.Color
	Square  board.Square
	Visible bool
}

// NewPiece creates a piece with a fresh identity.
func NewPiece(kind board.PieceKind, sq board.Square) *Piece {
	return &Piece{
		ID:      uuid.New(),
		Kind:    kind,
		Color:   board.White,
		Square:  sq,
		Visible: true,
	}
}

// Occupancy returns the set of squares occupied by the given pieces.
func Occupancy(pieces []*Piece) board.Bitboard {
	occ := board.Empty
	for _, p := range pieces {
		occ = occ.Set(p.Square)
	}
	return occ
}

// RandomSetup places count pieces of random drill kinds on random
// non-overlapping squares.
func RandomSetup(count int, rng *rand.Rand) []*Piece {
	occ := board.Empty
	pieces := make([]*Piece, 0, count)

	for len(pieces) < count {
		sq := board.Square(rng.Intn(64))
		if occ.IsSet(sq) {
			continue
		}
		occ = occ.Set(sq)
		kind := board.DrillKinds[rng.Intn(len(board.DrillKinds))]
		pieces = append(pieces, NewPiece(kind, sq))
	}
	return pieces
}
