package drill

import (
	"math/rand"
	"time"

	"github.com/nvkov/squaresight/internal/board"
)

// Config holds the tunable parameters for one drill run.
type Config struct {
	PieceCount int
}

// DefaultConfig returns the standard drill setup.
func DefaultConfig() Config {
	return Config{PieceCount: 3}
}

// Answer is the outcome of one player response.
type Answer struct {
	Correct bool
	Piece   *Piece // the piece that moved (nil on a miss)
	From    board.Square
	To      board.Square
}

// Session is the state of one drill run: the placed pieces, the move
// history feeding the selector, the active target, and the score
// bookkeeping. It is mutated from the UI's single event loop and is
// discarded at drill end.
type Session struct {
	pieces  []*Piece
	history *History
	target  board.Square
	rng     *rand.Rand

	score      int
	misses     int
	streak     int
	bestStreak int
}

// NewSession creates a fresh drill with random piece placement and an
// initial target. Pass a seeded rng for deterministic runs.
func NewSession(cfg Config, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		pieces:  RandomSetup(cfg.PieceCount, rng),
		history: NewHistory(),
		rng:     rng,
	}
	s.target = NextTarget(s.pieces, s.history, s.rng)
	return s
}

// Pieces returns the live piece list.
func (s *Session) Pieces() []*Piece {
	return s.pieces
}

// History returns the move history.
func (s *Session) History() *History {
	return s.history
}

// Target returns the active target square, or NoSquare when the drill
// has stalled (no piece can reach any empty square).
func (s *Session) Target() board.Square {
	return s.target
}

// Stalled returns true when no further target exists. Callers must
// treat this as the end of the drill, not an error.
func (s *Session) Stalled() bool {
	return s.target == board.NoSquare
}

// Score returns the number of correct answers.
func (s *Session) Score() int {
	return s.score
}

// Misses returns the number of wrong answers.
func (s *Session) Misses() int {
	return s.misses
}

// Streak returns the current run of consecutive correct answers.
func (s *Session) Streak() int {
	return s.streak
}

// BestStreak returns the longest run of consecutive correct answers.
func (s *Session) BestStreak() int {
	return s.bestStreak
}

// resolve finds the first piece of the given kind that can reach the
// target. Kind, not a specific piece, is the selectable unit: when two
// pieces of the same kind both reach the target the first match moves.
func (s *Session) resolve(kind board.PieceKind) *Piece {
	occ := Occupancy(s.pieces)
	for _, p := range s.pieces {
		if p.Kind != kind {
			continue
		}
		if board.CanReach(p.Square, s.target, p.Kind, occ) {
			return p
		}
	}
	return nil
}

// Submit resolves a player's claim that a piece of the given kind can
// reach the active target. On a correct claim the piece relocates to
// the target, its ID enters the history, and the next target is
// selected.
func (s *Session) Submit(kind board.PieceKind) Answer {
	if s.Stalled() {
		return Answer{Correct: false, To: board.NoSquare}
	}

	p := s.resolve(kind)
	if p == nil {
		s.misses++
		s.streak = 0
		return Answer{Correct: false, To: s.target}
	}

	from := p.Square
	p.Square = s.target
	s.history.Push(p.ID)

	s.score++
	s.streak++
	if s.streak > s.bestStreak {
		s.bestStreak = s.streak
	}

	ans := Answer{Correct: true, Piece: p, From: from, To: s.target}
	s.target = NextTarget(s.pieces, s.history, s.rng)
	return ans
}

// Accuracy returns the fraction of correct answers in [0,1].
func (s *Session) Accuracy() float64 {
	total := s.score + s.misses
	if total == 0 {
		return 0
	}
	return float64(s.score) / float64(total)
}
