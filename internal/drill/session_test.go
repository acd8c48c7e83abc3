package drill

import (
	"math/rand"
	"testing"

	"github.com/nvkov/squaresight/internal/board"
)

// answerTarget finds the kind that reaches the session's active target
// so tests can play a correct answer deterministically.
func answerTarget(t *testing.T, s *Session) board.PieceKind {
	t.Helper()
	occ := Occupancy(s.Pieces())
	for _, p := range s.Pieces() {
		if board.CanReach(p.Square, s.Target(), p.Kind, occ) {
			return p.Kind
		}
	}
	t.Fatalf("no piece reaches target %v", s.Target())
	return board.NoPieceKind
}

func TestNewSessionSetup(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSession(Config{PieceCount: 4}, rng)

	if len(s.Pieces()) != 4 {
		t.Fatalf("piece count = %d, want 4", len(s.Pieces()))
	}
	if occ := Occupancy(s.Pieces()); occ.PopCount() != 4 {
		t.Fatal("pieces overlap at drill start")
	}
	for _, p := range s.Pieces() {
		if !p.Square.IsValid() {
			t.Errorf("piece on invalid square %d", p.Square)
		}
		if p.Kind == board.King || p.Kind == board.Pawn {
			t.Errorf("drill placed a %v", p.Kind)
		}
	}
	if s.Stalled() {
		t.Fatal("fresh 4-piece drill has no target")
	}
}

func TestSessionCorrectAnswerMovesPiece(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSession(DefaultConfig(), rng)

	target := s.Target()
	ans := s.Submit(answerTarget(t, s))

	if !ans.Correct {
		t.Fatal("correct kind rejected")
	}
	if ans.Piece.Square != target || ans.To != target {
		t.Errorf("piece landed on %v, want %v", ans.Piece.Square, target)
	}
	if s.Score() != 1 || s.Misses() != 0 || s.Streak() != 1 {
		t.Errorf("score/misses/streak = %d/%d/%d, want 1/0/1", s.Score(), s.Misses(), s.Streak())
	}
	if s.Target() == target {
		t.Error("target not reselected after a correct answer")
	}
}

func TestSessionWrongAnswerIsMiss(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSession(DefaultConfig(), rng)

	// The drill never places a king, so a king claim always misses.
	ans := s.Submit(board.King)
	if ans.Correct {
		t.Fatal("king claim accepted")
	}
	if s.Misses() != 1 || s.Score() != 0 {
		t.Errorf("score/misses = %d/%d, want 0/1", s.Score(), s.Misses())
	}
}

// TestSessionInvariants plays six correct answers and checks the
// history cap, occupancy, and streak bookkeeping hold throughout.
func TestSessionInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := NewSession(Config{PieceCount: 4}, rng)

	for move := 0; move < 6; move++ {
		if s.Stalled() {
			t.Fatalf("drill stalled after %d moves", move)
		}

		ans := s.Submit(answerTarget(t, s))
		if !ans.Correct {
			t.Fatalf("move %d rejected", move)
		}

		if occ := Occupancy(s.Pieces()); occ.PopCount() != 4 {
			t.Fatalf("move %d: pieces overlap", move)
		}
		if s.History().Len() > HistoryCap {
			t.Fatalf("move %d: history len %d exceeds cap", move, s.History().Len())
		}
	}

	if s.History().Len() != HistoryCap {
		t.Errorf("history len = %d after 6 moves, want %d", s.History().Len(), HistoryCap)
	}
	if s.Score() != 6 || s.BestStreak() != 6 {
		t.Errorf("score/bestStreak = %d/%d, want 6/6", s.Score(), s.BestStreak())
	}
	if s.Accuracy() != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", s.Accuracy())
	}
}
