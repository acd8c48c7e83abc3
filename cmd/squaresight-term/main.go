// squaresight-term runs the visualization drill in the terminal.
// Useful for practicing over SSH and for exercising the drill logic
// without a display.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/nvkov/squaresight/internal/board"
	"github.com/nvkov/squaresight/internal/drill"
)

func main() {
	var (
		seed   = flag.Int64("seed", 0, "random seed (0 = time-based)")
		pieces = flag.Int("pieces", 3, "number of pieces on the board")
		rounds = flag.Int("rounds", 20, "number of targets per drill")
	)
	flag.Parse()

	if *pieces < 1 || *pieces > 64 {
		fmt.Fprintln(os.Stderr, "pieces must be between 1 and 64")
		os.Exit(1)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	session := drill.NewSession(drill.Config{PieceCount: *pieces}, rng)

	fmt.Println("SquareSight terminal drill")
	fmt.Println("Answer with the piece letter that reaches the target: Q, R, B, or N. Ctrl-D quits.")
	fmt.Println()
	printPieces(session)

	scanner := bufio.NewScanner(os.Stdin)
	for round := 1; round <= *rounds; round++ {
		if session.Stalled() {
			fmt.Println("No reachable squares left; drill over.")
			break
		}

		fmt.Printf("[%2d/%d] Target %s > ", round, *rounds, session.Target())
		if !scanner.Scan() {
			fmt.Println()
			break
		}

		answer := strings.TrimSpace(strings.ToUpper(scanner.Text()))
		if answer == "" {
			round--
			continue
		}

		kind := board.KindFromChar(answer[0])
		if kind == board.NoPieceKind {
			fmt.Println("        Unknown piece; use Q, R, B, or N.")
			round--
			continue
		}

		ans := session.Submit(kind)
		if ans.Correct {
			fmt.Printf("        Correct: %s %s -> %s\n", ans.Piece.Kind, ans.From, ans.To)
		} else {
			fmt.Printf("        Miss: no %s reaches %s\n", kind, ans.To)
		}
	}

	fmt.Println()
	fmt.Printf("Score %d, misses %d, best streak %d, accuracy %.0f%%\n",
		session.Score(), session.Misses(), session.BestStreak(), session.Accuracy()*100)
	fmt.Println(grade(session))
}

// grade maps the finished drill to a short verdict.
func grade(session *drill.Session) string {
	acc := session.Accuracy()
	score := session.Score()
	switch {
	case score >= 20 && acc >= 0.9:
		return "Grandmaster vision"
	case score >= 12 && acc >= 0.8:
		return "Sharp eyes"
	case score >= 6:
		return "Getting there"
	default:
		return "Keep training"
	}
}

func printPieces(session *drill.Session) {
	fmt.Println("Pieces:")
	for _, p := range session.Pieces() {
		fmt.Printf("  %-7s %s\n", p.Kind, p.Square)
	}
	fmt.Println()
}
