package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/nvkov/squaresight/internal/storage"
)

// Welcome screen dimensions
const (
	WelcomeWidth  = 400
	WelcomeHeight = 380
	WelcomePadX   = 32
	WelcomePadY   = 24
)

// WelcomeScreen is shown on first launch.
type WelcomeScreen struct {
	visible      bool
	needsCapture bool // Set true when opening to capture background

	// Position (centered on screen)
	x, y int

	// Widgets
	nameInput *TextInput
	modeBtns  *ButtonGroup
	startBtn  *ModalButton

	// Callback
	onComplete func(name string, mode storage.BoardMode)
}

// NewWelcomeScreen creates a new welcome screen.
func NewWelcomeScreen() *WelcomeScreen {
	ws := &WelcomeScreen{}
	ws.calculatePosition()
	ws.createWidgets()
	return ws
}

// calculatePosition centers the screen.
func (ws *WelcomeScreen) calculatePosition() {
	ws.x = (ScreenWidth - WelcomeWidth) / 2
	ws.y = (ScreenHeight - WelcomeHeight) / 2
}

// createWidgets initializes all welcome screen widgets.
func (ws *WelcomeScreen) createWidgets() {
	contentX := ws.x + WelcomePadX
	contentW := WelcomeWidth - WelcomePadX*2

	// Name input
	inputY := ws.y + 140
	ws.nameInput = NewTextInput(contentX, inputY, contentW, 40, "Enter your name", 20)

	// Board mode selection
	modeY := inputY + 80
	ws.modeBtns = NewButtonGroup(contentX, modeY, []string{"Visible", "Blindfold"}, 0, contentW/2, 34)

	// Start button
	btnW := 160
	btnH := 44
	btnX := ws.x + (WelcomeWidth-btnW)/2
	btnY := ws.y + WelcomeHeight - WelcomePadY - btnH
	ws.startBtn = NewModalButton(btnX, btnY, btnW, btnH, "Start Training", true, nil)
}

// Show displays the welcome screen.
func (ws *WelcomeScreen) Show(onComplete func(name string, mode storage.BoardMode)) {
	ws.visible = true
	ws.needsCapture = true // Capture background on first draw
	ws.onComplete = onComplete
	ws.nameInput.Value = ""
	ws.modeBtns.Selected = 0
	ws.startBtn.OnClick = ws.handleStart
}

// Hide closes the welcome screen.
func (ws *WelcomeScreen) Hide() {
	ws.visible = false
	ws.nameInput.SetFocused(false)
}

// IsVisible returns true if the screen is visible.
func (ws *WelcomeScreen) IsVisible() bool {
	return ws.visible
}

// handleStart handles the start button click.
func (ws *WelcomeScreen) handleStart() {
	name := ws.nameInput.Value
	if name == "" {
		name = "Player"
	}
	mode := storage.BoardMode(ws.modeBtns.Selected)

	if ws.onComplete != nil {
		ws.onComplete(name, mode)
	}
	ws.Hide()
}

// Update handles input for the welcome screen.
func (ws *WelcomeScreen) Update(input *InputHandler) bool {
	if !ws.visible {
		return false
	}

	// Handle enter key to start
	if IsKeyJustPressed(ebiten.KeyEnter) && !ws.nameInput.IsFocused() {
		ws.handleStart()
		return true
	}

	// Update widgets
	ws.nameInput.Update(input)
	ws.modeBtns.Update(input)
	ws.startBtn.Update(input)

	// Welcome screen consumes all input
	return true
}

// AnyButtonHovered returns true if any button in the screen is hovered.
func (ws *WelcomeScreen) AnyButtonHovered() bool {
	if !ws.visible {
		return false
	}
	return ws.startBtn.IsHovered() || ws.modeBtns.hovered >= 0
}

// Draw renders the welcome screen.
func (ws *WelcomeScreen) Draw(screen *ebiten.Image, glass *GlassEffect) {
	if !ws.visible {
		return
	}

	// Capture background once when modal first opens (fixes flicker)
	if ws.needsCapture && glass != nil && glass.IsEnabled() {
		glass.CaptureForModal(screen, 3.0) // sigma=3.0 blur
		ws.needsCapture = false
	}

	// Draw blurred, dimmed background
	if glass != nil && glass.IsEnabled() {
		glass.DrawModalBackground(screen, 0.4) // 40% dimming
	} else {
		// Fallback: semi-transparent overlay
		vector.DrawFilledRect(screen, 0, 0, scaleF(ScreenWidth), scaleF(ScreenHeight), modalOverlay, false)
	}

	// Modal background
	vector.DrawFilledRect(screen, scaleF(ws.x), scaleF(ws.y), scaleF(WelcomeWidth), scaleF(WelcomeHeight), modalBg, false)

	// Modal border
	vector.StrokeRect(screen, scaleF(ws.x), scaleF(ws.y), scaleF(WelcomeWidth), scaleF(WelcomeHeight), float32(UIScale*2), modalBorder, false)

	// Draw target icon
	ws.drawTargetIcon(screen)

	// Draw title
	ws.drawTitle(screen)

	// Draw subtitle
	ws.drawSubtitle(screen)

	// Section labels
	contentX := ws.x + WelcomePadX
	ws.drawSectionLabel(screen, "Your Name", contentX, ws.nameInput.Y-20)
	ws.drawSectionLabel(screen, "Board", contentX, ws.modeBtns.Y-20)

	// Draw widgets
	ws.nameInput.Draw(screen)
	ws.modeBtns.Draw(screen)
	ws.startBtn.Draw(screen)
}

// drawTargetIcon draws a decorative target marker.
func (ws *WelcomeScreen) drawTargetIcon(screen *ebiten.Image) {
	centerX := scaleF(ws.x + WelcomeWidth/2)
	cy := scaleF(ws.y + 36)

	iconColor := accentColor

	vector.StrokeCircle(screen, centerX, cy, scaleF(14), scaleF(3), iconColor, false)
	vector.DrawFilledCircle(screen, centerX, cy, scaleF(5), iconColor, false)
}

// drawTitle draws the main title.
func (ws *WelcomeScreen) drawTitle(screen *ebiten.Image) {
	face := GetFaceWithSize(24)
	if face == nil {
		return
	}

	title := "SQUARESIGHT"
	w, _ := MeasureText(title, face)
	centerX := scaleD(ws.x) + scaleD(WelcomeWidth)/2 - w/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, scaleD(ws.y+64))
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, title, face, op)
}

// drawSubtitle draws the subtitle.
func (ws *WelcomeScreen) drawSubtitle(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	subtitle := "Train your board visualization."
	w, _ := MeasureText(subtitle, face)
	centerX := scaleD(ws.x) + scaleD(WelcomeWidth)/2 - w/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, scaleD(ws.y+96))
	op.ColorScale.ScaleWithColor(textSecondary)
	text.Draw(screen, subtitle, face, op)
}

// drawSectionLabel draws a section label.
func (ws *WelcomeScreen) drawSectionLabel(screen *ebiten.Image, label string, x, y int) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(x), scaleD(y))
	op.ColorScale.ScaleWithColor(textSecondary)
	text.Draw(screen, label, face, op)
}
