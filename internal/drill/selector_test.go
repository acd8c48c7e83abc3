package drill

import (
	"math"
	"math/rand"
	"testing"

	"github.com/nvkov/squaresight/internal/board"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNextTargetNeverOccupied(t *testing.T) {
	rng := testRNG()

	for trial := 0; trial < 200; trial++ {
		pieces := RandomSetup(4, rng)
		occ := Occupancy(pieces)

		target := NextTarget(pieces, NewHistory(), rng)
		if target == board.NoSquare {
			continue
		}
		if occ.IsSet(target) {
			t.Fatalf("trial %d: target %v is occupied", trial, target)
		}
	}
}

func TestNextTargetEmptyBoardIsStalled(t *testing.T) {
	if got := NextTarget(nil, NewHistory(), testRNG()); got != board.NoSquare {
		t.Errorf("no pieces: got %v, want NoSquare", got)
	}
}

func TestNextTargetFullBoardIsStalled(t *testing.T) {
	// Every square occupied: no empty square is reachable by anyone.
	pieces := make([]*Piece, 0, 64)
	for sq := board.A8; sq <= board.H1; sq++ {
		pieces = append(pieces, NewPiece(board.Knight, sq))
	}

	if got := NextTarget(pieces, NewHistory(), testRNG()); got != board.NoSquare {
		t.Errorf("full board: got %v, want NoSquare", got)
	}
}

// TestNextTargetOnlyOptionIgnoresZeroWeight builds a board where a8 is
// the only empty square, reachable only by one knight, and that knight
// moved twice in a row. The zero-weight rule must not block the only
// available target.
func TestNextTargetOnlyOptionIgnoresZeroWeight(t *testing.T) {
	var reacherKnight *Piece
	pieces := make([]*Piece, 0, 63)

	for sq := board.B8; sq <= board.H1; sq++ {
		var p *Piece
		switch {
		case sq == 10:
			// The sole piece that can reach a8 (knight on c7).
			p = NewPiece(board.Knight, sq)
			reacherKnight = p
		case sq == 17:
			// The other knight-jump source to a8 must not hold a knight.
			p = NewPiece(board.Bishop, sq)
		case sq.Row() == 0 || sq.Col() == 0:
			// Rank-8 and a-file squares must not reach a8 orthogonally.
			p = NewPiece(board.Bishop, sq)
		default:
			p = NewPiece(board.Knight, sq)
		}
		pieces = append(pieces, p)
	}

	occ := Occupancy(pieces)
	if occ.PopCount() != 63 || occ.IsSet(board.A8) {
		t.Fatalf("setup broken: %d occupied, a8 occupied=%v", occ.PopCount(), occ.IsSet(board.A8))
	}

	history := NewHistory()
	history.Push(reacherKnight.ID)
	history.Push(reacherKnight.ID)

	for i := 0; i < 20; i++ {
		got := NextTarget(pieces, history, testRNG())
		if got != board.A8 {
			t.Fatalf("got %v, want a8 (the only possible target)", got)
		}
	}
}

// TestNextTargetWeightedDistribution checks that targets are drawn in
// proportion to their sole reacher's weight. Knight A on a8 uniquely
// reaches {b6, c7}; knight B on h1 uniquely reaches {g3, f2}. With A
// as the most recent mover its weight is 1 - 0.3 - 0.6 = 0.1 against
// B's 1.0, so A's squares should be drawn about 9.1% of the time.
func TestNextTargetWeightedDistribution(t *testing.T) {
	a := NewPiece(board.Knight, board.A8)
	b := NewPiece(board.Knight, board.H1)
	pieces := []*Piece{a, b}

	history := NewHistory()
	history.Push(a.ID)

	aTargets := board.Empty.Set(10).Set(17)

	rng := testRNG()
	const draws = 50000
	aHits := 0
	for i := 0; i < draws; i++ {
		target := NextTarget(pieces, history, rng)
		if target == board.NoSquare {
			t.Fatal("unexpected stall")
		}
		if aTargets.IsSet(target) {
			aHits++
		}
	}

	got := float64(aHits) / draws
	want := 0.2 / 2.2 // A's total weight over the pool's total weight
	if math.Abs(got-want) > 0.02 {
		t.Errorf("A-target frequency = %.4f, want %.4f +/- 0.02", got, want)
	}
}

// TestNextTargetUniquePreferred checks that a square reachable by two
// pieces is never selected while unique targets exist.
func TestNextTargetUniquePreferred(t *testing.T) {
	// Two rooks sharing a file see each other's squares; the squares
	// between them are reachable by both and must never be targets.
	a := NewPiece(board.Rook, board.A8)
	b := NewPiece(board.Rook, board.A1)
	pieces := []*Piece{a, b}

	shared := board.Empty
	for sq := board.A7; sq <= board.A2; sq += 8 {
		shared = shared.Set(sq)
	}

	rng := testRNG()
	for i := 0; i < 500; i++ {
		target := NextTarget(pieces, NewHistory(), rng)
		if shared.IsSet(target) {
			t.Fatalf("selected %v, reachable by both rooks", target)
		}
	}
}

func TestPieceWeight(t *testing.T) {
	p := NewPiece(board.Queen, board.D4)
	other := NewPiece(board.Rook, board.A8)

	tests := []struct {
		name    string
		history []*Piece
		want    float64
	}{
		{"empty history", nil, 1.0},
		{"one old occurrence", []*Piece{p, other}, 1.0 - 0.3},
		{"most recent", []*Piece{p}, 1.0 - 0.3 - 0.6},
		{"twice in a row", []*Piece{p, p}, 0},
		// Three occurrences (-0.9) plus most recent (-0.6) drives the
		// weight negative; the clamp floors it at 0.
		{"clamped at zero", []*Piece{p, other, p, other, p}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHistory()
			for _, e := range tc.history {
				h.Push(e.ID)
			}
			got := pieceWeight(p, h)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("weight = %v, want %v", got, tc.want)
			}
		})
	}
}
