package ui

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/nvkov/squaresight/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// SpriteManager manages piece sprites. The drill is single-color, so
// sprites are keyed by kind only.
type SpriteManager struct {
	pieces      map[board.PieceKind]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.PieceKind]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	sm.loadPieces()
	return sm
}

// GetPiece returns the sprite for a piece kind.
func (sm *SpriteManager) GetPiece(kind board.PieceKind) *ebiten.Image {
	return sm.pieces[kind]
}

// pieceFiles maps piece kinds to their asset file paths.
var pieceFiles = map[board.PieceKind]string{
	board.Queen:  "assets/pieces/queen.svg",
	board.Rook:   "assets/pieces/rook.svg",
	board.Bishop: "assets/pieces/bishop.svg",
	board.Knight: "assets/pieces/knight.svg",
	board.King:   "assets/pieces/king.svg",
	board.Pawn:   "assets/pieces/pawn.svg",
}

// loadPieces loads all piece sprites from embedded SVG files.
func (sm *SpriteManager) loadPieces() {
	// Render at higher resolution for better quality when scaled
	renderSize := int(float64(sm.size) * sm.renderScale)

	for kind, path := range pieceFiles {
		data, err := pieceAssets.ReadFile(path)
		if err != nil {
			log.Printf("Failed to read piece asset %s: %v", path, err)
			continue
		}

		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			log.Printf("Failed to parse SVG %s: %v", path, err)
			continue
		}

		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		sm.pieces[kind] = ebiten.NewImageFromImage(rgba)
	}
}

// DrawPieceAt draws a piece at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, kind board.PieceKind, x, y int) {
	sm.DrawPieceAtAlpha(screen, kind, x, y, 1.0, 1.0)
}

// DrawPieceAtAlpha draws a piece with the given opacity and HiDPI
// scale. Alpha below 1.0 is used to fade pieces out when a blindfold
// drill starts.
func (sm *SpriteManager) DrawPieceAtAlpha(screen *ebiten.Image, kind board.PieceKind, x, y int, alpha float32, hidpi float64) {
	sprite := sm.GetPiece(kind)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := hidpi / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
