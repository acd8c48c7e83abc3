package board

import "fmt"

// Pre-computed attack tables for the single-step pieces and the ray
// tables the sliding pieces walk along.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard

	// rayTable[sq][dir] lists the squares outward from sq in one
	// direction, nearest first. Directions 0-3 are orthogonal,
	// 4-7 diagonal.
	rayTable [64][8][]Square
)

// Direction deltas as (col, row) steps. Row grows downward
// (row 0 is rank 8).
var rayDeltas = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0}, // orthogonal
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // diagonal
}

func init() {
	initKnightAttacks()
	initKingAttacks()
	initRayTable()
}

func initKnightAttacks() {
	offsets := [8][2]int{
		{1, -2}, {2, -1}, {2, 1}, {1, 2},
		{-1, 2}, {-2, 1}, {-2, -1}, {-1, -2},
	}

	for sq := A8; sq <= H1; sq++ {
		attacks := Empty
		for _, off := range offsets {
			c, r := sq.Col()+off[0], sq.Row()+off[1]
			if c >= 0 && c <= 7 && r >= 0 && r <= 7 {
				attacks = attacks.Set(NewSquare(c, r))
			}
		}
		knightAttacks[sq] = attacks
	}
}

func initKingAttacks() {
	for sq := A8; sq <= H1; sq++ {
		attacks := Empty
		for dc := -1; dc <= 1; dc++ {
			for dr := -1; dr <= 1; dr++ {
				if dc == 0 && dr == 0 {
					continue
				}
				c, r := sq.Col()+dc, sq.Row()+dr
				if c >= 0 && c <= 7 && r >= 0 && r <= 7 {
					attacks = attacks.Set(NewSquare(c, r))
				}
			}
		}
		kingAttacks[sq] = attacks
	}
}

func initRayTable() {
	for sq := A8; sq <= H1; sq++ {
		for dir, d := range rayDeltas {
			c, r := sq.Col()+d[0], sq.Row()+d[1]
			for c >= 0 && c <= 7 && r >= 0 && r <= 7 {
				rayTable[sq][dir] = append(rayTable[sq][dir], NewSquare(c, r))
				c += d[0]
				r += d[1]
			}
		}
	}
}

// slidingMoves walks the rays in [dirFrom, dirTo) outward from sq.
// Each stepped-to square is included; a blocked square is included
// too, and ends the ray. Landing on a blocker models "can reach",
// not "can capture" - the drill has no captures.
func slidingMoves(sq Square, blockers Bitboard, dirFrom, dirTo int) Bitboard {
	moves := Empty
	for dir := dirFrom; dir < dirTo; dir++ {
		for _, to := range rayTable[sq][dir] {
			moves = moves.Set(to)
			if blockers.IsSet(to) {
				break
			}
		}
	}
	return moves
}

// LegalMoves returns the destination squares a piece of the given kind
// can reach from sq. blockers holds the squares occupied by every
// other piece; the moving piece's own square must not be in it.
// Invalid square or kind is a caller contract violation and panics.
func LegalMoves(sq Square, kind PieceKind, blockers Bitboard) Bitboard {
	if !sq.IsValid() {
		panic(fmt.Sprintf("board: invalid square %d", sq))
	}

	switch kind {
	case Knight:
		return knightAttacks[sq]
	case King:
		return kingAttacks[sq]
	case Rook:
		return slidingMoves(sq, blockers, 0, 4)
	case Bishop:
		return slidingMoves(sq, blockers, 4, 8)
	case Queen:
		return slidingMoves(sq, blockers, 0, 8)
	default:
		panic(fmt.Sprintf("board: invalid piece kind %d", kind))
	}
}

// CanReach returns true if a piece of the given kind standing on from
// can reach to. occupied holds every occupied square on the board; the
// moving piece's own square is excluded here.
func CanReach(from, to Square, kind PieceKind, occupied Bitboard) bool {
	return LegalMoves(from, kind, occupied.Clear(from)).IsSet(to)
}
