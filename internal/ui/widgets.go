package ui

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scale helpers for modal drawing. Widget geometry is stored in logical
// coordinates; these convert to screen pixels at draw time.
func scaleI(v int) int {
	return int(float64(v) * UIScale)
}

func scaleF(v int) float32 {
	return float32(float64(v) * UIScale)
}

func scaleD(v int) float64 {
	return float64(v) * UIScale
}

// Widget colors (uses colors from hud.go: buttonBg, buttonHoverBg, accentColor, textPrimary, textSecondary)
var (
	widgetBg          = color.RGBA{48, 52, 58, 255}
	widgetBorder      = color.RGBA{68, 72, 78, 255}
	widgetFocusBorder = color.RGBA{76, 175, 120, 255}
	widgetHoverBg     = color.RGBA{65, 70, 78, 255}
	checkboxCheck     = color.RGBA{76, 175, 120, 255}
	inputTextColor    = color.RGBA{240, 240, 245, 255}
	inputPlaceholder  = color.RGBA{120, 125, 135, 255}
)

// TextInput is an editable text field widget.
type TextInput struct {
	X, Y, W, H  int
	Value       string
	Placeholder string
	MaxLength   int
	focused     bool
	hovered     bool
	cursorBlink int
}

// NewTextInput creates a new text input widget.
func NewTextInput(x, y, w, h int, placeholder string, maxLen int) *TextInput {
	return &TextInput{
		X: x, Y: y, W: w, H: h,
		Placeholder: placeholder,
		MaxLength:   maxLen,
	}
}

// Update handles text input updates.
func (ti *TextInput) Update(input *InputHandler) bool {
	ti.hovered = input.IsInBounds(ti.X, ti.Y, ti.W, ti.H)

	// Handle click to focus
	if input.IsLeftJustPressed() {
		ti.focused = ti.hovered
	}

	if !ti.focused {
		return false
	}

	ti.cursorBlink++
	if ti.cursorBlink > 60 {
		ti.cursorBlink = 0
	}

	// Handle text input
	chars := ebiten.AppendInputChars(nil)
	for _, c := range chars {
		if ti.MaxLength == 0 || utf8.RuneCountInString(ti.Value) < ti.MaxLength {
			ti.Value += string(c)
		}
	}

	// Handle backspace
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if len(ti.Value) > 0 {
			_, size := utf8.DecodeLastRuneInString(ti.Value)
			ti.Value = ti.Value[:len(ti.Value)-size]
		}
	}

	// Handle escape to unfocus
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ti.focused = false
	}

	return true
}

// Draw renders the text input.
func (ti *TextInput) Draw(screen *ebiten.Image) {
	// Background - slightly lighter on hover
	bgColor := widgetBg
	if ti.hovered && !ti.focused {
		bgColor = color.RGBA{52, 56, 62, 255}
	}
	vector.DrawFilledRect(screen, scaleF(ti.X), scaleF(ti.Y), scaleF(ti.W), scaleF(ti.H), bgColor, false)

	// Border - accent on hover/focus
	borderColor := widgetBorder
	if ti.focused {
		borderColor = widgetFocusBorder
	} else if ti.hovered {
		borderColor = accentColor
	}
	vector.StrokeRect(screen, scaleF(ti.X), scaleF(ti.Y), scaleF(ti.W), scaleF(ti.H), 2, borderColor, false)

	face := GetRegularFace()
	if face == nil {
		return
	}

	textX := scaleD(ti.X + 10)
	textY := scaleD(ti.Y) + scaleD(ti.H)/2

	if ti.Value != "" {
		op := &text.DrawOptions{}
		_, h := MeasureText(ti.Value, face)
		op.GeoM.Translate(textX, textY-h/2)
		op.ColorScale.ScaleWithColor(inputTextColor)
		text.Draw(screen, ti.Value, face, op)

		// Cursor
		if ti.focused && ti.cursorBlink < 30 {
			w, _ := MeasureText(ti.Value, face)
			cursorX := float32(textX) + float32(w) + 2
			vector.DrawFilledRect(screen, cursorX, scaleF(ti.Y+8), 2, scaleF(ti.H-16), inputTextColor, false)
		}
	} else if ti.Placeholder != "" {
		op := &text.DrawOptions{}
		_, h := MeasureText(ti.Placeholder, face)
		op.GeoM.Translate(textX, textY-h/2)
		op.ColorScale.ScaleWithColor(inputPlaceholder)
		text.Draw(screen, ti.Placeholder, face, op)

		// Cursor when focused and empty
		if ti.focused && ti.cursorBlink < 30 {
			vector.DrawFilledRect(screen, float32(textX), scaleF(ti.Y+8), 2, scaleF(ti.H-16), inputTextColor, false)
		}
	}
}

// IsFocused returns true if the input is focused.
func (ti *TextInput) IsFocused() bool {
	return ti.focused
}

// SetFocused sets the focus state.
func (ti *TextInput) SetFocused(focused bool) {
	ti.focused = focused
}

// Checkbox is a toggleable checkbox widget.
type Checkbox struct {
	X, Y    int
	Label   string
	Checked bool
	hovered bool
}

// NewCheckbox creates a new checkbox.
func NewCheckbox(x, y int, label string, checked bool) *Checkbox {
	return &Checkbox{
		X:       x,
		Y:       y,
		Label:   label,
		Checked: checked,
	}
}

// Update handles checkbox input.
func (cb *Checkbox) Update(input *InputHandler) bool {
	cb.hovered = input.IsInBounds(cb.X, cb.Y, 200, 24)

	if input.IsLeftJustPressed() && cb.hovered {
		cb.Checked = !cb.Checked
		return true
	}
	return false
}

// Draw renders the checkbox.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	boxX := scaleF(cb.X)
	boxY := scaleF(cb.Y)
	boxSize := scaleF(20)

	bgColor := widgetBg
	if cb.hovered {
		bgColor = widgetHoverBg
	}
	vector.DrawFilledRect(screen, boxX, boxY, boxSize, boxSize, bgColor, false)

	// Border - accent on hover
	borderC := widgetBorder
	if cb.hovered {
		borderC = accentColor
	} else if cb.Checked {
		borderC = checkboxCheck
	}
	vector.StrokeRect(screen, boxX, boxY, boxSize, boxSize, 2, borderC, false)

	// Checkmark
	if cb.Checked {
		vector.StrokeLine(screen, boxX+scaleF(4), boxY+scaleF(10), boxX+scaleF(8), boxY+scaleF(14), 2, checkboxCheck, false)
		vector.StrokeLine(screen, boxX+scaleF(8), boxY+scaleF(14), boxX+scaleF(16), boxY+scaleF(6), 2, checkboxCheck, false)
	}

	// Label
	op := &text.DrawOptions{}
	_, h := MeasureText(cb.Label, face)
	op.GeoM.Translate(scaleD(cb.X+30), scaleD(cb.Y+10)-h/2)
	textColor := textSecondary
	if cb.Checked {
		textColor = textPrimary
	} else if cb.hovered {
		textColor = inputTextColor
	}
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, cb.Label, face, op)
}

// ButtonGroup is a horizontal group of toggle buttons.
type ButtonGroup struct {
	X, Y     int
	Options  []string
	Selected int
	ButtonW  int
	ButtonH  int
	hovered  int
	pressed  int
}

// NewButtonGroup creates a new button group.
func NewButtonGroup(x, y int, options []string, selected int, buttonW, buttonH int) *ButtonGroup {
	return &ButtonGroup{
		X:        x,
		Y:        y,
		Options:  options,
		Selected: selected,
		ButtonW:  buttonW,
		ButtonH:  buttonH,
		hovered:  -1,
		pressed:  -1,
	}
}

// Update handles button group input.
func (bg *ButtonGroup) Update(input *InputHandler) bool {
	bg.hovered = -1
	bg.pressed = -1

	for i := range bg.Options {
		btnX := bg.X + i*bg.ButtonW
		if input.IsInBounds(btnX, bg.Y, bg.ButtonW, bg.ButtonH) {
			bg.hovered = i
			if input.IsLeftPressed() {
				bg.pressed = i
			}
			if input.IsLeftJustPressed() {
				bg.Selected = i
				return true
			}
		}
	}
	return false
}

// Draw renders the button group.
func (bg *ButtonGroup) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	// Tab colors - keep in sync with hud.go
	tabActive := color.RGBA{76, 132, 96, 255}
	tabInactive := color.RGBA{50, 54, 60, 255}
	tabHover := color.RGBA{65, 70, 78, 255}
	tabPressed := color.RGBA{40, 44, 50, 255}
	borderColor := color.RGBA{70, 75, 82, 255}

	for i, label := range bg.Options {
		btnX := bg.X + i*bg.ButtonW
		isSelected := i == bg.Selected
		isHovered := i == bg.hovered
		isPressed := i == bg.pressed

		// Button background
		bgColor := tabInactive
		if isSelected {
			bgColor = tabActive
		} else if isPressed {
			bgColor = tabPressed
		} else if isHovered {
			bgColor = tabHover
		}
		vector.DrawFilledRect(screen, scaleF(btnX), scaleF(bg.Y), scaleF(bg.ButtonW), scaleF(bg.ButtonH), bgColor, false)

		// Border - accent on hover, match bg on selected
		bordC := borderColor
		if isSelected {
			bordC = tabActive
		} else if isHovered {
			bordC = accentColor
		}
		vector.StrokeRect(screen, scaleF(btnX), scaleF(bg.Y), scaleF(bg.ButtonW), scaleF(bg.ButtonH), 1, bordC, false)

		// Label
		w, h := MeasureText(label, face)
		centerX := scaleD(btnX) + scaleD(bg.ButtonW)/2 - w/2
		centerY := scaleD(bg.Y) + scaleD(bg.ButtonH)/2 - h/2
		op := &text.DrawOptions{}
		op.GeoM.Translate(centerX, centerY)
		textColor := textSecondary
		if isSelected {
			textColor = textPrimary
		}
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, label, face, op)
	}
}

// ModalButton is a button for modal dialogs.
type ModalButton struct {
	X, Y, W, H int
	Label      string
	Primary    bool
	OnClick    func()
	hovered    bool
	pressed    bool
}

// NewModalButton creates a new modal button.
func NewModalButton(x, y, w, h int, label string, primary bool, onClick func()) *ModalButton {
	return &ModalButton{
		X: x, Y: y, W: w, H: h,
		Label:   label,
		Primary: primary,
		OnClick: onClick,
	}
}

// IsHovered returns true if the button is hovered.
func (mb *ModalButton) IsHovered() bool {
	return mb.hovered
}

// Update handles modal button input.
func (mb *ModalButton) Update(input *InputHandler) bool {
	mb.hovered = input.IsInBounds(mb.X, mb.Y, mb.W, mb.H)
	mb.pressed = input.IsLeftPressed() && mb.hovered

	if input.IsLeftJustPressed() && mb.hovered && mb.OnClick != nil {
		mb.OnClick()
		return true
	}
	return false
}

// Draw renders the modal button.
func (mb *ModalButton) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	var bgColor color.RGBA
	var borderC color.RGBA

	if mb.Primary {
		bgColor = accentColor
		borderC = color.RGBA{56, 155, 100, 255}
		if mb.pressed {
			bgColor = color.RGBA{56, 155, 100, 255}
		} else if mb.hovered {
			bgColor = color.RGBA{96, 195, 140, 255}
			borderC = color.RGBA{116, 215, 160, 255}
		}
	} else {
		bgColor = buttonBg
		borderC = widgetBorder
		if mb.pressed {
			bgColor = color.RGBA{40, 44, 50, 255}
		} else if mb.hovered {
			bgColor = buttonHoverBg
			borderC = accentColor
		}
	}

	vector.DrawFilledRect(screen, scaleF(mb.X), scaleF(mb.Y), scaleF(mb.W), scaleF(mb.H), bgColor, false)
	vector.StrokeRect(screen, scaleF(mb.X), scaleF(mb.Y), scaleF(mb.W), scaleF(mb.H), 1, borderC, false)

	// Label
	w, h := MeasureText(mb.Label, face)
	centerX := scaleD(mb.X) + scaleD(mb.W)/2 - w/2
	centerY := scaleD(mb.Y) + scaleD(mb.H)/2 - h/2
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, mb.Label, face, op)
}
