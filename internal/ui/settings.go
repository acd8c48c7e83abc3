package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/nvkov/squaresight/internal/storage"
)

// Settings modal dimensions
const (
	SettingsWidth  = 380
	SettingsHeight = 500
	SettingsPadX   = 24
	SettingsPadY   = 20
)

// Settings modal colors
var (
	modalOverlay = color.RGBA{0, 0, 0, 180}
	modalBg      = color.RGBA{38, 40, 45, 255}
	modalHeader  = color.RGBA{48, 52, 58, 255}
	modalBorder  = color.RGBA{58, 62, 68, 255}
)

// Selectable piece counts and drill lengths.
var (
	pieceCountOptions   = []int{2, 3, 4, 5}
	drillSecondsOptions = []int{60, 120, 180}
)

// SettingsModal is the settings configuration screen.
type SettingsModal struct {
	visible bool

	// Position (centered on screen)
	x, y int

	// Widgets
	usernameInput *TextInput
	pieceBtns     *ButtonGroup
	durationBtns  *ButtonGroup
	modeBtns      *ButtonGroup
	soundCheckbox *Checkbox
	saveBtn       *ModalButton
	cancelBtn     *ModalButton

	// Callbacks
	onSave   func(prefs *storage.UserPreferences)
	onCancel func()
}

// NewSettingsModal creates a new settings modal.
func NewSettingsModal() *SettingsModal {
	sm := &SettingsModal{}
	sm.calculatePosition()
	sm.createWidgets()
	return sm
}

// calculatePosition centers the modal on screen.
func (sm *SettingsModal) calculatePosition() {
	sm.x = (ScreenWidth - SettingsWidth) / 2
	sm.y = (ScreenHeight - SettingsHeight) / 2
}

// createWidgets initializes all settings widgets.
func (sm *SettingsModal) createWidgets() {
	contentX := sm.x + SettingsPadX
	contentW := SettingsWidth - SettingsPadX*2

	// Username input (below header)
	inputY := sm.y + 60
	sm.usernameInput = NewTextInput(contentX, inputY, contentW, 36, "Enter your name", 20)

	// Piece count buttons
	pieceY := inputY + 70
	labels := make([]string, len(pieceCountOptions))
	for i, n := range pieceCountOptions {
		labels[i] = strconv.Itoa(n)
	}
	sm.pieceBtns = NewButtonGroup(contentX, pieceY, labels, 1, contentW/len(labels), 34)

	// Drill length buttons
	durY := pieceY + 70
	durLabels := make([]string, len(drillSecondsOptions))
	for i, secs := range drillSecondsOptions {
		durLabels[i] = fmt.Sprintf("%d min", secs/60)
	}
	sm.durationBtns = NewButtonGroup(contentX, durY, durLabels, 0, contentW/len(durLabels), 34)

	// Board mode buttons
	modeY := durY + 70
	sm.modeBtns = NewButtonGroup(contentX, modeY, []string{"Visible", "Blindfold"}, 0, contentW/2, 34)

	// Sound checkbox
	checkY := modeY + 70
	sm.soundCheckbox = NewCheckbox(contentX, checkY, "Sound Effects", true)

	// Buttons at bottom
	btnW := 100
	btnH := 38
	btnY := sm.y + SettingsHeight - SettingsPadY - btnH
	btnSpacing := 12

	sm.cancelBtn = NewModalButton(
		sm.x+SettingsWidth-SettingsPadX-btnW*2-btnSpacing,
		btnY, btnW, btnH, "Cancel", false, nil,
	)
	sm.saveBtn = NewModalButton(
		sm.x+SettingsWidth-SettingsPadX-btnW,
		btnY, btnW, btnH, "Save", true, nil,
	)
}

// Show displays the settings modal with the given preferences.
func (sm *SettingsModal) Show(prefs *storage.UserPreferences, onSave func(*storage.UserPreferences), onCancel func()) {
	sm.visible = true
	sm.onSave = onSave
	sm.onCancel = onCancel

	// Load current values into widgets
	sm.usernameInput.Value = prefs.Username
	sm.pieceBtns.Selected = indexOfInt(pieceCountOptions, prefs.PieceCount, 1)
	sm.durationBtns.Selected = indexOfInt(drillSecondsOptions, prefs.DrillSeconds, 0)
	sm.modeBtns.Selected = int(prefs.BoardMode)
	sm.soundCheckbox.Checked = prefs.SoundEnabled

	// Set button callbacks
	sm.saveBtn.OnClick = sm.handleSave
	sm.cancelBtn.OnClick = sm.handleCancel
}

func indexOfInt(options []int, value, fallback int) int {
	for i, v := range options {
		if v == value {
			return i
		}
	}
	return fallback
}

// Hide closes the settings modal.
func (sm *SettingsModal) Hide() {
	sm.visible = false
	sm.usernameInput.SetFocused(false)
}

// IsVisible returns true if the modal is visible.
func (sm *SettingsModal) IsVisible() bool {
	return sm.visible
}

// handleSave saves settings and closes the modal.
func (sm *SettingsModal) handleSave() {
	prefs := &storage.UserPreferences{
		Username:     sm.usernameInput.Value,
		PieceCount:   pieceCountOptions[sm.pieceBtns.Selected],
		DrillSeconds: drillSecondsOptions[sm.durationBtns.Selected],
		BoardMode:    storage.BoardMode(sm.modeBtns.Selected),
		SoundEnabled: sm.soundCheckbox.Checked,
	}

	// Use default name if empty
	if prefs.Username == "" {
		prefs.Username = "Player"
	}

	if sm.onSave != nil {
		sm.onSave(prefs)
	}
	sm.Hide()
}

// handleCancel discards changes and closes the modal.
func (sm *SettingsModal) handleCancel() {
	if sm.onCancel != nil {
		sm.onCancel()
	}
	sm.Hide()
}

// Update handles input for the settings modal.
func (sm *SettingsModal) Update(input *InputHandler) bool {
	if !sm.visible {
		return false
	}

	// Handle escape key to close
	if IsKeyJustPressed(ebiten.KeyEscape) {
		sm.handleCancel()
		return true
	}

	// Handle enter key to save
	if IsKeyJustPressed(ebiten.KeyEnter) && !sm.usernameInput.IsFocused() {
		sm.handleSave()
		return true
	}

	// Update widgets
	sm.usernameInput.Update(input)
	sm.pieceBtns.Update(input)
	sm.durationBtns.Update(input)
	sm.modeBtns.Update(input)
	sm.soundCheckbox.Update(input)
	sm.saveBtn.Update(input)
	sm.cancelBtn.Update(input)

	// Modal consumes all input
	return true
}

// AnyButtonHovered returns true if any button in the modal is hovered.
func (sm *SettingsModal) AnyButtonHovered() bool {
	if !sm.visible {
		return false
	}
	return sm.saveBtn.IsHovered() || sm.cancelBtn.IsHovered() ||
		sm.pieceBtns.hovered >= 0 || sm.durationBtns.hovered >= 0 ||
		sm.modeBtns.hovered >= 0 || sm.soundCheckbox.hovered
}

// Draw renders the settings modal.
func (sm *SettingsModal) Draw(screen *ebiten.Image, glass *GlassEffect) {
	if !sm.visible {
		return
	}

	// Full-screen blur overlay with glass effect
	if glass != nil && glass.IsEnabled() {
		tint := color.RGBA{0, 0, 0, 100} // Dark tint for modal backdrop
		glass.DrawGlass(screen, 0, 0, scaleI(ScreenWidth), scaleI(ScreenHeight), tint, 3.0)
	} else {
		// Fallback: semi-transparent overlay
		vector.DrawFilledRect(screen, 0, 0, scaleF(ScreenWidth), scaleF(ScreenHeight), modalOverlay, false)
	}

	// Modal background
	vector.DrawFilledRect(screen, scaleF(sm.x), scaleF(sm.y), scaleF(SettingsWidth), scaleF(SettingsHeight), modalBg, false)

	// Modal border
	vector.StrokeRect(screen, scaleF(sm.x), scaleF(sm.y), scaleF(SettingsWidth), scaleF(SettingsHeight), float32(UIScale*2), modalBorder, false)

	// Header background
	vector.DrawFilledRect(screen, scaleF(sm.x), scaleF(sm.y), scaleF(SettingsWidth), scaleF(44), modalHeader, false)

	// Header title
	sm.drawTitle(screen)

	// Section labels
	contentX := sm.x + SettingsPadX
	sm.drawSectionLabel(screen, "Player Name", contentX, sm.y+52)
	sm.drawSectionLabel(screen, "Pieces", contentX, sm.pieceBtns.Y-SectionLabelH)
	sm.drawSectionLabel(screen, "Drill Length", contentX, sm.durationBtns.Y-SectionLabelH)
	sm.drawSectionLabel(screen, "Board", contentX, sm.modeBtns.Y-SectionLabelH)
	sm.drawSectionLabel(screen, "Audio", contentX, sm.soundCheckbox.Y-SectionLabelH)

	// Draw widgets
	sm.usernameInput.Draw(screen)
	sm.pieceBtns.Draw(screen)
	sm.durationBtns.Draw(screen)
	sm.modeBtns.Draw(screen)
	sm.soundCheckbox.Draw(screen)
	sm.saveBtn.Draw(screen)
	sm.cancelBtn.Draw(screen)
}

// drawTitle draws the modal title.
func (sm *SettingsModal) drawTitle(screen *ebiten.Image) {
	face := GetBoldFace()
	if face == nil {
		return
	}

	title := "Settings"
	w, h := MeasureText(title, face)
	centerX := scaleD(sm.x) + scaleD(SettingsWidth)/2 - w/2
	centerY := scaleD(sm.y) + scaleD(22) - h/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, title, face, op)
}

// drawSectionLabel draws a section label.
func (sm *SettingsModal) drawSectionLabel(screen *ebiten.Image, label string, x, y int) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(x), scaleD(y))
	op.ColorScale.ScaleWithColor(textMuted)
	text.Draw(screen, label, face, op)
}
