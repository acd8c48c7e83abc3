package board

import "testing"

// allKinds covers every kind LegalMoves accepts.
var allKinds = []PieceKind{Queen, Rook, Bishop, Knight, King}

// TestLegalMovesNeverIncludeOrigin checks that for every square and
// kind the origin square is never in the result and every result
// square is on the board.
func TestLegalMovesNeverIncludeOrigin(t *testing.T) {
	for _, kind := range allKinds {
		for sq := A8; sq <= H1; sq++ {
			moves := LegalMoves(sq, kind, Empty)
			if moves.IsSet(sq) {
				t.Errorf("%v from %v includes its own square", kind, sq)
			}
			for _, to := range moves.Squares() {
				if !to.IsValid() {
					t.Errorf("%v from %v produced off-board square %d", kind, sq, to)
				}
			}
		}
	}
}

func TestKnightCorner(t *testing.T) {
	moves := LegalMoves(A8, Knight, Empty)

	want := []Square{10, 17}
	got := moves.Squares()
	if len(got) != len(want) {
		t.Fatalf("knight on a8: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("knight on a8: got %v, want %v", got, want)
		}
	}
}

func TestRookCorner(t *testing.T) {
	moves := LegalMoves(A8, Rook, Empty)

	if moves.PopCount() != 14 {
		t.Fatalf("rook on a8: got %d squares, want 14", moves.PopCount())
	}
	for _, to := range moves.Squares() {
		if to.Row() != 0 && to.Col() != 0 {
			t.Errorf("rook on a8 reaches %v, off its rank and file", to)
		}
	}
}

func TestBishopCorner(t *testing.T) {
	moves := LegalMoves(A8, Bishop, Empty)

	want := []Square{9, 18, 27, 36, 45, 54, 63}
	got := moves.Squares()
	if len(got) != len(want) {
		t.Fatalf("bishop on a8: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bishop on a8: got %v, want %v", got, want)
		}
	}
}

// TestSlidingStopsAtBlocker checks that sliding moves include the
// first blocker on a ray and nothing beyond it.
func TestSlidingStopsAtBlocker(t *testing.T) {
	// Rook on a8, blocker on d8 (square 3).
	blockers := Empty.Set(D8)
	moves := LegalMoves(A8, Rook, blockers)

	for _, sq := range []Square{B8, C8, D8} {
		if !moves.IsSet(sq) {
			t.Errorf("rook a8 with blocker d8: missing %v", sq)
		}
	}
	for _, sq := range []Square{E8, F8, G8, H8} {
		if moves.IsSet(sq) {
			t.Errorf("rook a8 with blocker d8: must not reach %v", sq)
		}
	}

	// The a-file ray is unaffected.
	if !moves.IsSet(A1) {
		t.Errorf("rook a8 with blocker d8: a-file ray should be open")
	}
}

func TestQueenIsRookPlusBishop(t *testing.T) {
	blockers := Empty.Set(D8).Set(C6)
	for sq := A8; sq <= H1; sq++ {
		queen := LegalMoves(sq, Queen, blockers)
		union := LegalMoves(sq, Rook, blockers) | LegalMoves(sq, Bishop, blockers)
		if queen != union {
			t.Errorf("queen from %v != rook|bishop", sq)
		}
	}
}

func TestCanReachMatchesLegalMoves(t *testing.T) {
	occupied := Empty.Set(A8).Set(D8).Set(D4)

	for _, kind := range allKinds {
		moves := LegalMoves(A8, kind, occupied.Clear(A8))
		for to := A8; to <= H1; to++ {
			want := moves.IsSet(to)
			if got := CanReach(A8, to, kind, occupied); got != want {
				t.Errorf("CanReach(a8, %v, %v) = %v, want %v", to, kind, got, want)
			}
		}
	}
}

func TestLegalMovesPanicsOnInvalidInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid square")
		}
	}()
	LegalMoves(NoSquare, Rook, Empty)
}
