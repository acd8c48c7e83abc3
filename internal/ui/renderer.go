package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/nvkov/squaresight/internal/board"
	"github.com/nvkov/squaresight/internal/drill"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare  color.RGBA
	DarkSquare   color.RGBA
	TargetColor  color.RGBA
	LastMove     color.RGBA
	CorrectColor color.RGBA
	MissColor    color.RGBA
	Background   color.RGBA
	CoordColor   color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:  color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:   color.RGBA{181, 136, 99, 255},  // Brown
		TargetColor:  color.RGBA{247, 247, 105, 200}, // Yellow highlight
		LastMove:     color.RGBA{180, 190, 100, 90},  // Soft yellow-green
		CorrectColor: color.RGBA{130, 200, 120, 170}, // Green flash
		MissColor:    color.RGBA{255, 80, 80, 150},   // Red flash
		Background:   color.RGBA{40, 44, 52, 255},    // Dark gray
		CoordColor:   color.RGBA{40, 44, 52, 160},    // Faint labels
	}
}

// Renderer handles all board drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	scale      float64 // HiDPI scale factor
	pulse      float64 // Drives the target marker animation
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
		scale:      1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
}

// Update advances the renderer's animation clock.
func (r *Renderer) Update() {
	r.pulse += 1.0 / 60.0
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the board squares and coordinate labels.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			x := r.s(col * r.squareSize)
			y := r.s(row * r.squareSize)

			var c color.RGBA
			if (row+col)%2 == 0 {
				c = r.theme.LightSquare
			} else {
				c = r.theme.DarkSquare
			}

			vector.DrawFilledRect(screen, x, y, r.s(r.squareSize), r.s(r.squareSize), c, false)
		}
	}

	r.drawCoordinates(screen)
}

// drawCoordinates draws file letters along the bottom edge and rank
// numbers along the left edge.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetFaceWithSize(12 * r.scale)
	if face == nil {
		return
	}

	for col := 0; col < 8; col++ {
		label := string(rune('a' + col))
		x := float64(r.s(col*r.squareSize + r.squareSize - 12))
		y := float64(r.s(r.boardSize - 18))
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(r.theme.CoordColor)
		text.Draw(screen, label, face, op)
	}

	for row := 0; row < 8; row++ {
		label := string(rune('8' - row))
		x := float64(r.s(4))
		y := float64(r.s(row*r.squareSize + 4))
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(r.theme.CoordColor)
		text.Draw(screen, label, face, op)
	}
}

// DrawLastMove highlights the squares of the most recent relocation.
func (r *Renderer) DrawLastMove(screen *ebiten.Image, from, to board.Square) {
	for _, sq := range []board.Square{from, to} {
		if sq == board.NoSquare {
			continue
		}
		x, y := r.SquareToScreen(sq)
		vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), r.theme.LastMove, false)
	}
}

// DrawTarget draws the pulsing marker on the active target square.
func (r *Renderer) DrawTarget(screen *ebiten.Image, sq board.Square) {
	if sq == board.NoSquare {
		return
	}

	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), r.theme.TargetColor, false)

	// Pulsing ring centered in the square
	cx := r.s(x) + r.s(r.squareSize)/2
	cy := r.s(y) + r.s(r.squareSize)/2
	base := float64(r.s(r.squareSize)) * 0.32
	radius := float32(base + base*0.12*math.Sin(r.pulse*4))
	vector.StrokeCircle(screen, cx, cy, radius, r.s(3), color.RGBA{180, 140, 20, 230}, false)
}

// DrawPieces draws all drill pieces. When visible is false the pieces
// are drawn at the given alpha, which lets a blindfold drill fade them
// out instead of popping.
func (r *Renderer) DrawPieces(screen *ebiten.Image, pieces []*drill.Piece, visible bool, hiddenAlpha float32, anims *AnimationManager) {
	for _, p := range pieces {
		alpha := float32(1.0)
		if !visible {
			alpha = hiddenAlpha
			if alpha <= 0 {
				continue
			}
		}

		x, y := r.SquareToScreen(p.Square)

		if anims != nil {
			offsetX, offsetY := anims.GetShakeOffset(p.Square)
			x += int(offsetX)
			y += int(offsetY)
		}

		r.sprites.DrawPieceAtAlpha(screen, p.Kind, int(r.s(x)), int(r.s(y)), alpha, r.scale)
	}
}

// SquareToScreen converts a board square to logical screen coordinates.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	x := sq.Col() * r.squareSize
	y := sq.Row() * r.squareSize // Row 0 is the top rank
	return x, y
}

// ScreenToSquare converts logical screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	return board.NewSquare(x/r.squareSize, y/r.squareSize)
}

// BoardSize returns the board size in pixels.
func (r *Renderer) BoardSize() int {
	return r.boardSize
}

// SquareSize returns the size of one square in pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Sprites returns the sprite manager.
func (r *Renderer) Sprites() *SpriteManager {
	return r.sprites
}
