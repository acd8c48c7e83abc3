package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/nvkov/squaresight/internal/board"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
	ToastSuccess
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{
		toasts:   make([]*Toast, 0),
		maxStack: 3,
	}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	toast := &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	}
	tm.toasts = append(tm.toasts, toast)
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := make([]*Toast, 0)
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Draw renders all active toasts.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	y := scaleD(50)
	for _, t := range tm.toasts {
		elapsed := time.Since(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		// Fade in/out
		alpha := 1.0
		fadeTime := 0.2
		if elapsed < fadeTime {
			alpha = elapsed / fadeTime
		} else if elapsed > duration-fadeTime {
			alpha = (duration - elapsed) / fadeTime
		}

		// Get colors based on type
		var bgColor, textColor color.RGBA
		switch t.Type {
		case ToastWarning:
			bgColor = color.RGBA{180, 140, 20, uint8(220 * alpha)}
			textColor = color.RGBA{40, 30, 0, uint8(255 * alpha)}
		case ToastError:
			bgColor = color.RGBA{180, 50, 50, uint8(220 * alpha)}
			textColor = color.RGBA{255, 255, 255, uint8(255 * alpha)}
		case ToastSuccess:
			bgColor = color.RGBA{50, 150, 50, uint8(220 * alpha)}
			textColor = color.RGBA{255, 255, 255, uint8(255 * alpha)}
		default: // ToastInfo
			bgColor = color.RGBA{50, 100, 150, uint8(220 * alpha)}
			textColor = color.RGBA{255, 255, 255, uint8(255 * alpha)}
		}

		// Measure text
		w, h := MeasureText(t.Message, face)
		padding := 12.0
		boxW := w + padding*2
		boxH := h + padding*2

		// Center horizontally on the board
		x := scaleD(BoardSize)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bgColor, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8
	}
}

// ShakeAnimation represents a piece shake effect.
type ShakeAnimation struct {
	Square    board.Square
	StartTime time.Time
	Duration  time.Duration
	Intensity float64
}

// FlashAnimation represents a square flash effect.
type FlashAnimation struct {
	Square    board.Square
	StartTime time.Time
	Duration  time.Duration
	Color     color.RGBA
}

// AnimationManager manages visual animations.
type AnimationManager struct {
	shakes  []*ShakeAnimation
	flashes []*FlashAnimation
}

// NewAnimationManager creates a new animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{
		shakes:  make([]*ShakeAnimation, 0),
		flashes: make([]*FlashAnimation, 0),
	}
}

// StartShake begins a shake animation on a square.
func (am *AnimationManager) StartShake(sq board.Square) {
	am.shakes = append(am.shakes, &ShakeAnimation{
		Square:    sq,
		StartTime: time.Now(),
		Duration:  300 * time.Millisecond,
		Intensity: 8.0,
	})
}

// StartFlash begins a flash animation on a square.
func (am *AnimationManager) StartFlash(sq board.Square, c color.RGBA) {
	am.flashes = append(am.flashes, &FlashAnimation{
		Square:    sq,
		StartTime: time.Now(),
		Duration:  400 * time.Millisecond,
		Color:     c,
	})
}

// Update removes expired animations.
func (am *AnimationManager) Update() {
	now := time.Now()

	activeShakes := make([]*ShakeAnimation, 0)
	for _, s := range am.shakes {
		if now.Sub(s.StartTime) < s.Duration {
			activeShakes = append(activeShakes, s)
		}
	}
	am.shakes = activeShakes

	activeFlashes := make([]*FlashAnimation, 0)
	for _, f := range am.flashes {
		if now.Sub(f.StartTime) < f.Duration {
			activeFlashes = append(activeFlashes, f)
		}
	}
	am.flashes = activeFlashes
}

// GetShakeOffset returns the current shake offset for a square.
func (am *AnimationManager) GetShakeOffset(sq board.Square) (float64, float64) {
	for _, s := range am.shakes {
		if s.Square == sq {
			elapsed := time.Since(s.StartTime).Seconds()
			progress := elapsed / s.Duration.Seconds()
			if progress >= 1.0 {
				return 0, 0
			}
			// Damped sine wave oscillation
			decay := 5.0
			freq := 40.0
			amplitude := s.Intensity * math.Exp(-decay*progress)
			offset := amplitude * math.Sin(freq*progress)
			return offset, 0
		}
	}
	return 0, 0
}

// DrawFlashes renders all active flash overlays.
func (am *AnimationManager) DrawFlashes(screen *ebiten.Image, renderer *Renderer) {
	for _, f := range am.flashes {
		elapsed := time.Since(f.StartTime).Seconds()
		progress := elapsed / f.Duration.Seconds()
		if progress >= 1.0 {
			continue
		}

		// Fade out
		alpha := 1.0 - progress
		c := color.RGBA{f.Color.R, f.Color.G, f.Color.B, uint8(float64(f.Color.A) * alpha)}

		x, y := renderer.SquareToScreen(f.Square)
		size := renderer.s(renderer.SquareSize())
		vector.DrawFilledRect(screen, renderer.s(x), renderer.s(y), size, size, c, false)
	}
}

// FeedbackManager coordinates toasts, animations, and audio.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{
		toasts:     NewToastManager(),
		animations: NewAnimationManager(),
		audio:      NewAudioManager(),
	}
}

// Update updates all feedback systems.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw renders all feedback overlays.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, renderer *Renderer) {
	fm.animations.DrawFlashes(screen, renderer)
	fm.toasts.Draw(screen)
}

// Animations returns the animation manager for renderer integration.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// OnCorrect handles a correct answer: flash the target green and play
// the landing click.
func (fm *FeedbackManager) OnCorrect(to board.Square, streak int) {
	fm.animations.StartFlash(to, color.RGBA{130, 200, 120, 170})
	fm.audio.Play(SoundCorrect)

	if streak > 0 && streak%5 == 0 {
		fm.toasts.Show(fmt.Sprintf("%d in a row!", streak), ToastSuccess, 2*time.Second)
	}
}

// OnMiss handles a wrong answer.
func (fm *FeedbackManager) OnMiss(kind board.PieceKind, target board.Square) {
	fm.toasts.Show(fmt.Sprintf("No %s reaches %s", kind, target), ToastWarning, 2*time.Second)
	fm.animations.StartFlash(target, color.RGBA{255, 80, 80, 150})
	fm.animations.StartShake(target)
	fm.audio.Play(SoundMiss)
}

// OnDrillStart handles the start of a new drill.
func (fm *FeedbackManager) OnDrillStart() {
	fm.audio.Play(SoundStart)
}

// OnDrillEnd handles the end of a drill.
func (fm *FeedbackManager) OnDrillEnd(score int) {
	fm.toasts.Show(fmt.Sprintf("Drill over - %d correct", score), ToastInfo, 4*time.Second)
	fm.audio.Play(SoundFinish)
}

// OnStall handles a drill that ran out of reachable squares.
func (fm *FeedbackManager) OnStall() {
	fm.toasts.Show("No reachable squares left", ToastInfo, 3*time.Second)
}

// OnTick plays the countdown tick for the final seconds.
func (fm *FeedbackManager) OnTick() {
	fm.audio.Play(SoundTick)
}

// Audio returns the audio manager for settings access.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}
