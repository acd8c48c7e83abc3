package drill

import (
	"math/rand"

	"github.com/nvkov/squaresight/internal/board"
)

// Repetition penalties applied to a piece's selection weight.
const (
	baseWeight     = 1.0
	historyPenalty = 0.3 // per occurrence in the history
	lastPenalty    = 0.6 // extra if the piece moved most recently
)

// validMoves returns the squares piece i can move to: its legal moves
// with every other piece as a blocker, minus every occupied square.
// Targets must be empty squares - the drill has no captures.
func validMoves(pieces []*Piece, i int, occ board.Bitboard) board.Bitboard {
	p := pieces[i]
	blockers := occ.Clear(p.Square)
	return board.LegalMoves(p.Square, p.Kind, blockers) &^ occ
}

// pieceWeight computes the selection weight for a piece from the move
// history. A piece that moved twice in a row is weighted to zero so no
// piece is asked to move three times consecutively.
func pieceWeight(p *Piece, history *History) float64 {
	if history.IsLastTwo(p.ID) {
		return 0
	}

	w := baseWeight - historyPenalty*float64(history.Count(p.ID))
	if history.IsLast(p.ID) {
		w -= lastPenalty
	}
	if w < 0 {
		w = 0
	}
	return w
}

// NextTarget selects the next challenge square: an empty square that
// exactly one piece can reach, drawn with weights that disfavor
// recently moved pieces. When no uniquely reachable square exists it
// falls back to a uniform draw over every reachable empty square, and
// returns NoSquare when nothing is reachable at all (the drill is
// stalled). Pure function of its inputs; the caller owns mutating the
// pieces and the history.
func NextTarget(pieces []*Piece, history *History, rng *rand.Rand) board.Square {
	occ := Occupancy(pieces)

	// Reachability count and first reacher per candidate square.
	var reachCount [64]int
	var reacher [64]int
	union := board.Empty

	for i := range pieces {
		moves := validMoves(pieces, i, occ)
		union |= moves
		for _, sq := range moves.Squares() {
			if reachCount[sq] == 0 {
				reacher[sq] = i
			}
			reachCount[sq]++
		}
	}

	if union.IsEmpty() {
		return board.NoSquare
	}

	// Unique targets keep the challenge well-posed: only one piece on
	// the board can answer.
	unique := board.Empty
	for _, sq := range union.Squares() {
		if reachCount[sq] == 1 {
			unique = unique.Set(sq)
		}
	}

	if unique.IsEmpty() {
		all := union.Squares()
		return all[rng.Intn(len(all))]
	}

	targets := unique.Squares()
	weights := make([]float64, len(targets))
	total := 0.0
	for i, sq := range targets {
		weights[i] = pieceWeight(pieces[reacher[sq]], history)
		total += weights[i]
	}

	// Every candidate maxed out its penalty: fall back to uniform.
	if total <= 0 {
		return targets[rng.Intn(len(targets))]
	}

	draw := rng.Float64() * total
	acc := 0.0
	for i, sq := range targets {
		acc += weights[i]
		if draw < acc {
			return sq
		}
	}
	// Floating rounding left a remainder; the final entry is the
	// fallback.
	return targets[len(targets)-1]
}
