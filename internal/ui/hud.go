package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/nvkov/squaresight/internal/board"
)

// Panel dimensions
const (
	PanelPadding   = 20
	SectionSpacing = 28
	ButtonHeight   = 40
	SectionLabelH  = 20
	AnswerBtnH     = 48
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}    // Dark background
	sectionBg       = color.RGBA{48, 52, 58, 255}    // Slightly lighter section
	buttonBg        = color.RGBA{50, 54, 60, 255}    // Button background (darker)
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}    // Button hover (brighter)
	buttonPressedBg = color.RGBA{40, 44, 50, 255}    // Button pressed (darker)
	buttonBorder    = color.RGBA{70, 75, 82, 255}    // Subtle button border
	accentColor     = color.RGBA{76, 175, 120, 255}  // Green accent
	accentHover     = color.RGBA{96, 195, 140, 255}  // Lighter green on hover
	accentPressed   = color.RGBA{56, 155, 100, 255}  // Darker green on press
	textPrimary     = color.RGBA{240, 240, 245, 255} // Primary text
	textSecondary   = color.RGBA{160, 165, 175, 255} // Secondary text
	textMuted       = color.RGBA{120, 125, 135, 255} // Muted text
	dividerColor    = color.RGBA{60, 65, 72, 255}    // Divider line
	clockWarning    = color.RGBA{255, 100, 100, 255} // Red for final seconds
	statusPaused    = color.RGBA{255, 200, 80, 255}  // Yellow for paused
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	hovered    bool
	pressed    bool
}

// HUD is the side panel with the target prompt, clock, answer buttons,
// and drill controls.
type HUD struct {
	game *Game

	answerBtns  []*Button // one per drill kind, in DrillKinds order
	newDrillBtn *Button
	pauseBtn    *Button
	settingsBtn *Button
}

// NewHUD creates the side panel for the given game.
func NewHUD(g *Game) *HUD {
	h := &HUD{game: g}
	h.createButtons()
	return h
}

// createButtons initializes all panel buttons.
func (h *HUD) createButtons() {
	contentX := BoardSize + PanelPadding
	contentW := PanelWidth - PanelPadding*2

	// Answer buttons: one per selectable kind, laid out in a row
	// below the target and clock sections.
	answerY := 238
	btnW := contentW / len(board.DrillKinds)
	h.answerBtns = make([]*Button, 0, len(board.DrillKinds))
	for i, kind := range board.DrillKinds {
		k := kind
		h.answerBtns = append(h.answerBtns, &Button{
			X: contentX + i*btnW, Y: answerY,
			W: btnW, H: AnswerBtnH,
			Label:   string(k.Char()),
			OnClick: func() { h.game.SubmitAnswer(k) },
		})
	}

	// Control buttons at the bottom
	btnY := ScreenHeight - PanelPadding - ButtonHeight
	h.settingsBtn = &Button{
		X: contentX, Y: btnY,
		W: contentW, H: ButtonHeight - 6,
		Label:   "Settings",
		OnClick: h.game.ShowSettings,
	}

	btnY -= ButtonHeight + 4
	h.pauseBtn = &Button{
		X: contentX, Y: btnY,
		W: contentW, H: ButtonHeight - 6,
		Label:   "Pause",
		OnClick: h.game.TogglePause,
	}

	btnY -= ButtonHeight + 8
	h.newDrillBtn = &Button{
		X: contentX, Y: btnY,
		W: contentW, H: ButtonHeight,
		Label:   "New Drill",
		OnClick: h.game.NewDrillAction,
	}
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (h *HUD) HandleInput(input *InputHandler) bool {
	buttons := h.allButtons()

	for _, btn := range buttons {
		btn.hovered = input.IsInBounds(btn.X, btn.Y, btn.W, btn.H)
		btn.pressed = input.IsLeftPressed() && btn.hovered
	}

	if input.IsLeftJustPressed() {
		for _, btn := range buttons {
			if btn.hovered {
				btn.OnClick()
				return true
			}
		}
	}

	return false
}

func (h *HUD) allButtons() []*Button {
	buttons := make([]*Button, 0, len(h.answerBtns)+3)
	buttons = append(buttons, h.answerBtns...)
	buttons = append(buttons, h.newDrillBtn, h.pauseBtn, h.settingsBtn)
	return buttons
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (h *HUD) AnyButtonHovered() bool {
	for _, btn := range h.allButtons() {
		if btn.hovered {
			return true
		}
	}
	return false
}

// Draw renders the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	// Panel background
	vector.DrawFilledRect(screen, scaleF(BoardSize), 0, scaleF(PanelWidth), scaleF(ScreenHeight), panelBg, false)

	contentX := BoardSize + PanelPadding

	// Target section
	h.drawSectionLabel(screen, "Target", contentX, PanelPadding+8)
	h.drawTarget(screen, contentX, PanelPadding+8+SectionLabelH)

	// Clock
	h.drawClock(screen, contentX, 150)

	// Answer section
	h.drawSectionLabel(screen, "Which piece reaches it?", contentX, h.answerBtns[0].Y-SectionLabelH)
	for _, btn := range h.answerBtns {
		h.drawAnswerButton(screen, btn)
	}

	// Score section
	scoreY := h.answerBtns[0].Y + AnswerBtnH + SectionSpacing
	h.drawScore(screen, contentX, scoreY)

	// Roster section
	rosterY := scoreY + 58
	h.drawSectionLabel(screen, "Pieces", contentX, rosterY)
	h.drawRoster(screen, contentX, rosterY+SectionLabelH+4)

	// Control buttons
	h.drawPrimaryButton(screen, h.newDrillBtn)
	h.drawSecondaryButton(screen, h.pauseBtn)
	h.drawSecondaryButton(screen, h.settingsBtn)

	// Status bar above the controls
	h.drawStatusBar(screen)
}

// drawTarget draws the active target square name in large type.
func (h *HUD) drawTarget(screen *ebiten.Image, x, y int) {
	face := GetBoldFaceWithSize(52 * UIScale)
	if face == nil {
		return
	}

	label := "--"
	session := h.game.Session()
	if session != nil && !session.Stalled() && h.game.Phase() == PhaseRunning {
		label = session.Target().String()
	} else if h.game.Phase() == PhasePaused {
		label = "··"
	}

	contentW := PanelWidth - PanelPadding*2
	w, _ := MeasureText(label, face)
	cx := scaleD(x) + scaleD(contentW)/2 - w/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, scaleD(y))
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, label, face, op)
}

// drawClock draws the remaining drill time.
func (h *HUD) drawClock(screen *ebiten.Image, x, y int) {
	face := GetBoldFaceWithSize(24 * UIScale)
	if face == nil {
		return
	}

	remaining := h.game.Remaining()
	if remaining < 0 {
		remaining = 0
	}
	secs := int(remaining.Round(time.Second).Seconds())
	label := fmt.Sprintf("%d:%02d", secs/60, secs%60)

	clockColor := textSecondary
	if h.game.Phase() == PhaseRunning && remaining <= 10*time.Second {
		clockColor = clockWarning
	} else if h.game.Phase() == PhasePaused {
		clockColor = statusPaused
	}

	contentW := PanelWidth - PanelPadding*2
	w, _ := MeasureText(label, face)
	cx := scaleD(x) + scaleD(contentW)/2 - w/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, scaleD(y))
	op.ColorScale.ScaleWithColor(clockColor)
	text.Draw(screen, label, face, op)
}

// drawScore draws the score, miss, and streak counters in one row.
func (h *HUD) drawScore(screen *ebiten.Image, x, y int) {
	session := h.game.Session()
	score, misses, streak := 0, 0, 0
	if session != nil {
		score = session.Score()
		misses = session.Misses()
		streak = session.Streak()
	}

	contentW := PanelWidth - PanelPadding*2
	colW := contentW / 3

	h.drawCounter(screen, "Score", fmt.Sprintf("%d", score), x, y, colW, textPrimary)
	h.drawCounter(screen, "Misses", fmt.Sprintf("%d", misses), x+colW, y, colW, textSecondary)
	h.drawCounter(screen, "Streak", fmt.Sprintf("%d", streak), x+colW*2, y, colW, accentColor)
}

func (h *HUD) drawCounter(screen *ebiten.Image, label, value string, x, y, w int, valueColor color.RGBA) {
	face := GetRegularFace()
	bold := GetBoldFaceWithSize(20 * UIScale)
	if face == nil || bold == nil {
		return
	}

	lw, _ := MeasureText(label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(x)+scaleD(w)/2-lw/2, scaleD(y))
	op.ColorScale.ScaleWithColor(textMuted)
	text.Draw(screen, label, face, op)

	vw, _ := MeasureText(value, bold)
	op = &text.DrawOptions{}
	op.GeoM.Translate(scaleD(x)+scaleD(w)/2-vw/2, scaleD(y+18))
	op.ColorScale.ScaleWithColor(valueColor)
	text.Draw(screen, value, bold, op)
}

// drawRoster lists the drill pieces. Squares are shown only while the
// board is visible; in a blindfold drill the player has to hold them
// in their head.
func (h *HUD) drawRoster(screen *ebiten.Image, x, y int) {
	session := h.game.Session()
	if session == nil {
		return
	}

	rowHeight := 20
	for i, p := range session.Pieces() {
		label := p.Kind.String()
		if h.game.BoardVisible() {
			label = fmt.Sprintf("%-7s %s", p.Kind, p.Square)
		}
		h.drawText(screen, label, x, y+i*rowHeight, textSecondary)
	}
}

func (h *HUD) drawStatusBar(screen *ebiten.Image) {
	statusY := h.newDrillBtn.Y - 34
	x := BoardSize + PanelPadding

	vector.DrawFilledRect(screen, scaleF(x), scaleF(statusY-10),
		scaleF(PanelWidth-PanelPadding*2), 1, dividerColor, false)

	username := h.game.Username()
	if len(username) > 12 {
		username = username[:12] + "..."
	}
	h.drawText(screen, username, x, statusY, textPrimary)

	var statusText string
	var statusColor color.RGBA
	switch h.game.Phase() {
	case PhaseRunning:
		statusText = "Drill running"
		statusColor = accentColor
	case PhasePaused:
		statusText = "Paused"
		statusColor = statusPaused
	case PhaseFinished:
		statusText = "Finished"
		statusColor = textSecondary
	default:
		statusText = "Press New Drill"
		statusColor = textMuted
	}
	h.drawText(screen, statusText, x+130, statusY, statusColor)
}

func (h *HUD) drawAnswerButton(screen *ebiten.Image, btn *Button) {
	enabled := h.game.Phase() == PhaseRunning

	bgColor := buttonBg
	if enabled {
		if btn.pressed {
			bgColor = buttonPressedBg
		} else if btn.hovered {
			bgColor = buttonHoverBg
		}
	}
	vector.DrawFilledRect(screen, scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H), bgColor, false)

	borderC := buttonBorder
	if enabled && btn.hovered {
		borderC = accentColor
	}
	vector.StrokeRect(screen, scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H), 1, borderC, false)

	face := GetBoldFaceWithSize(22 * UIScale)
	if face == nil {
		return
	}
	labelColor := textPrimary
	if !enabled {
		labelColor = textMuted
	}
	w, hgt := MeasureText(btn.Label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(btn.X)+scaleD(btn.W)/2-w/2, scaleD(btn.Y)+scaleD(btn.H)/2-hgt/2)
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(screen, btn.Label, face, op)
}

func (h *HUD) drawPrimaryButton(screen *ebiten.Image, btn *Button) {
	bgColor := accentColor
	if btn.pressed {
		bgColor = accentPressed
	} else if btn.hovered {
		bgColor = accentHover
	}

	vector.DrawFilledRect(screen, scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H), bgColor, false)

	borderC := color.RGBA{56, 155, 100, 255}
	if btn.hovered {
		borderC = color.RGBA{116, 215, 160, 255} // Lighter border on hover
	}
	vector.StrokeRect(screen, scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H), 1, borderC, false)

	h.drawTextCentered(screen, btn.Label, btn.X+btn.W/2, btn.Y+btn.H/2, textPrimary)
}

func (h *HUD) drawSecondaryButton(screen *ebiten.Image, btn *Button) {
	bgColor := buttonBg
	if btn.pressed {
		bgColor = buttonPressedBg
	} else if btn.hovered {
		bgColor = buttonHoverBg
	}

	vector.DrawFilledRect(screen, scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H), bgColor, false)

	borderC := buttonBorder
	if btn.hovered {
		borderC = accentColor // Green border on hover
	}
	vector.StrokeRect(screen, scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H), 1, borderC, false)

	h.drawTextCentered(screen, btn.Label, btn.X+btn.W/2, btn.Y+btn.H/2, textSecondary)
}

func (h *HUD) drawSectionLabel(screen *ebiten.Image, label string, x, y int) {
	h.drawText(screen, label, x, y, textMuted)
}

// Text drawing helpers
func (h *HUD) drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(x), scaleD(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func (h *HUD) drawTextCentered(screen *ebiten.Image, s string, centerX, centerY int, c color.Color) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	w, hgt := MeasureText(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(centerX)-w/2, scaleD(centerY)-hgt/2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
