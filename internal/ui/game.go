package ui

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/nvkov/squaresight/internal/board"
	"github.com/nvkov/squaresight/internal/drill"
	"github.com/nvkov/squaresight/internal/storage"
)

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640 // Match board height to eliminate unused space
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used by widgets and modals.
var UIScale float64 = 1.0

// answerLock is how long answer input stays disabled after a submission,
// so a double click cannot consume the next target by accident.
const answerLock = 450 * time.Millisecond

// missLimit ends the drill early after this many wrong answers.
const missLimit = 3

// Phase represents the drill lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseFinished
)

// Game implements ebiten.Game interface.
type Game struct {
	// Drill state
	session  *drill.Session
	phase    Phase
	endTime  time.Time     // Wall-clock end of the running drill
	paused   time.Duration // Remaining time frozen while paused
	started  time.Time     // When the current drill began
	lastTick int           // Last whole second a tick sound played for

	// Answer input lock
	lockUntil time.Time

	// Most recent relocation, for the board highlight
	lastFrom board.Square
	lastTo   board.Square

	// Blindfold fade: 1.0 fully visible, 0.0 hidden
	hideAlpha float32

	// Settings
	username string
	prefs    *storage.UserPreferences

	// Storage
	storage *storage.Storage

	// Components
	renderer *Renderer
	input    *InputHandler
	hud      *HUD
	feedback *FeedbackManager

	// Modals
	settingsModal *SettingsModal
	welcomeScreen *WelcomeScreen

	// Visual effects
	glass *GlassEffect

	// HiDPI scaling
	scale float64
}

// NewGame creates a new drill game.
func NewGame() *Game {
	g := &Game{
		phase:     PhaseIdle,
		username:  "Player",
		renderer:  NewRenderer(BoardSize, SquareSize),
		input:     NewInputHandler(),
		hideAlpha: 1.0,
		lastFrom:  board.NoSquare,
		lastTo:    board.NoSquare,
	}

	// Initialize storage
	var err error
	g.storage, err = storage.NewStorage()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	}

	// Load preferences
	g.loadPreferences()

	g.hud = NewHUD(g)
	g.feedback = NewFeedbackManager()
	g.glass = NewGlassEffect()

	// Initialize modals
	g.settingsModal = NewSettingsModal()
	g.welcomeScreen = NewWelcomeScreen()

	// Check for first launch
	g.checkFirstLaunch()

	return g
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		g.prefs = storage.DefaultPreferences()
	}

	g.username = g.prefs.Username
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}

	g.prefs.Username = g.username
	g.prefs.LastPlayed = time.Now()

	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// checkFirstLaunch shows welcome screen on first launch.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}

	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		log.Printf("Warning: Failed to check first launch: %v", err)
		return
	}

	if isFirst {
		g.welcomeScreen.Show(func(name string, mode storage.BoardMode) {
			g.username = name
			g.prefs.Username = name
			g.prefs.BoardMode = mode

			if err := g.storage.MarkFirstLaunchComplete(); err != nil {
				log.Printf("Warning: Failed to mark first launch complete: %v", err)
			}

			g.savePreferences()
		})
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()
	g.renderer.Update()

	// During a blindfold drill the pieces fade out over the first
	// couple of seconds.
	if g.phase == PhaseRunning && g.prefs.BoardMode == storage.BoardBlindfold && g.hideAlpha > 0 {
		g.hideAlpha -= 1.0 / 120.0
		if g.hideAlpha < 0 {
			g.hideAlpha = 0
		}
	}

	// Handle welcome screen first (blocks other input)
	if g.welcomeScreen.IsVisible() {
		g.welcomeScreen.Update(g.input)
		g.updateCursor()
		return nil
	}

	// Handle settings modal (blocks other input)
	if g.settingsModal.IsVisible() {
		g.settingsModal.Update(g.input)
		g.updateCursor()
		return nil
	}

	g.handleKeyboard()
	g.checkClock()

	// Handle panel interactions
	if g.hud.HandleInput(g.input) {
		g.updateCursor()
		return nil
	}

	g.updateCursor()
	return nil
}

// answerKeys maps keyboard shortcuts to piece kinds.
var answerKeys = map[ebiten.Key]board.PieceKind{
	ebiten.KeyQ: board.Queen,
	ebiten.KeyR: board.Rook,
	ebiten.KeyB: board.Bishop,
	ebiten.KeyN: board.Knight,
}

// handleKeyboard processes drill keyboard shortcuts.
func (g *Game) handleKeyboard() {
	for key, kind := range answerKeys {
		if IsKeyJustPressed(key) {
			g.SubmitAnswer(kind)
		}
	}

	if IsKeyJustPressed(ebiten.KeySpace) || IsKeyJustPressed(ebiten.KeyP) {
		g.TogglePause()
	}
	if IsKeyJustPressed(ebiten.KeyEnter) {
		if g.phase == PhaseIdle || g.phase == PhaseFinished {
			g.NewDrillAction()
		}
	}
	if IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}

// checkClock ends the drill when time runs out and plays the countdown
// ticks for the final seconds.
func (g *Game) checkClock() {
	if g.phase != PhaseRunning {
		return
	}

	remaining := time.Until(g.endTime)
	if remaining <= 0 {
		g.finishDrill()
		return
	}

	if remaining <= 5*time.Second {
		sec := int(remaining.Seconds())
		if sec != g.lastTick {
			g.lastTick = sec
			g.feedback.OnTick()
		}
	}
}

// updateCursor sets the cursor shape based on what's being hovered.
func (g *Game) updateCursor() {
	anyHovered := false

	if g.welcomeScreen.IsVisible() {
		anyHovered = g.welcomeScreen.AnyButtonHovered()
	} else if g.settingsModal.IsVisible() {
		anyHovered = g.settingsModal.AnyButtonHovered()
	} else {
		anyHovered = g.hud.AnyButtonHovered()
	}

	if anyHovered {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	// Clear background
	screen.Fill(g.renderer.Theme().Background)

	// Draw board
	g.renderer.DrawBoard(screen)

	// Draw the last relocation and the active target
	if g.session != nil && g.phase != PhaseIdle {
		g.renderer.DrawLastMove(screen, g.lastFrom, g.lastTo)
	}
	if g.phase == PhaseRunning && g.session != nil {
		g.renderer.DrawTarget(screen, g.session.Target())
	}

	// Draw pieces
	if g.session != nil && g.phase != PhaseIdle {
		visible := g.prefs.BoardMode == storage.BoardVisible || g.phase == PhaseFinished
		g.renderer.DrawPieces(screen, g.session.Pieces(), visible, g.hideAlpha, g.feedback.Animations())
	}

	// Draw feedback overlays (animations, toasts)
	g.feedback.Draw(screen, g.renderer)

	// Draw panel
	g.hud.Draw(screen)

	// Finished overlay on the board area
	if g.phase == PhaseFinished {
		g.drawFinished(screen)
	}

	// Draw modals on top (with glass effect)
	g.settingsModal.Draw(screen, g.glass)
	g.welcomeScreen.Draw(screen, g.glass)
}

// drawFinished draws the end-of-drill summary over the board.
func (g *Game) drawFinished(screen *ebiten.Image) {
	boxW, boxH := 360, 220
	x := (BoardSize - boxW) / 2
	y := (BoardSize - boxH) / 2

	g.glass.DrawGlass(screen, scaleI(x), scaleI(y), scaleI(boxW), scaleI(boxH), modalHeader, 2.5)
	vector.StrokeRect(screen, scaleF(x), scaleF(y), scaleF(boxW), scaleF(boxH), float32(UIScale*2), modalBorder, false)

	title := GetBoldFaceWithSize(22 * UIScale)
	regular := GetRegularFace()
	if title == nil || regular == nil {
		return
	}

	drawCentered := func(s string, face *text.GoTextFace, yOff int, c color.Color) {
		w, _ := MeasureText(s, face)
		op := &text.DrawOptions{}
		op.GeoM.Translate(scaleD(x)+scaleD(boxW)/2-w/2, scaleD(y+yOff))
		op.ColorScale.ScaleWithColor(c)
		text.Draw(screen, s, face, op)
	}

	drawCentered("Drill Complete", title, 24, textPrimary)
	drawCentered(g.gradeText(), title, 60, accentColor)
	drawCentered(fmt.Sprintf("Score %d   Misses %d", g.session.Score(), g.session.Misses()), regular, 104, textPrimary)
	drawCentered(fmt.Sprintf("Accuracy %.0f%%   Best streak %d", g.session.Accuracy()*100, g.session.BestStreak()), regular, 132, textSecondary)
	drawCentered("Press Enter for a new drill", regular, 176, textMuted)
}

// gradeText maps the finished drill's accuracy and score to a short verdict.
func (g *Game) gradeText() string {
	if g.session == nil {
		return ""
	}
	acc := g.session.Accuracy()
	score := g.session.Score()
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

// Layout returns the game's screen dimensions.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Get and store device scale factor (2.0 on Retina, 1.0 on standard displays)
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0 // Ensure minimum scale of 1.0
	}

	// Update global scale for widgets and modals
	UIScale = g.scale

	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// NewDrillAction starts a fresh drill with the current settings.
func (g *Game) NewDrillAction() {
	g.session = drill.NewSession(drill.Config{PieceCount: g.prefs.PieceCount}, nil)
	g.phase = PhaseRunning
	g.started = time.Now()
	g.endTime = g.started.Add(time.Duration(g.prefs.DrillSeconds) * time.Second)
	g.lastTick = -1
	g.lockUntil = time.Time{}
	g.lastFrom = board.NoSquare
	g.lastTo = board.NoSquare
	g.hideAlpha = 1.0
	g.hud.pauseBtn.Label = "Pause"

	g.feedback.OnDrillStart()

	if g.session.Stalled() {
		// Can happen only with a degenerate setup; end immediately.
		g.feedback.OnStall()
		g.finishDrill()
	}
}

// TogglePause pauses or resumes the running drill.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhaseRunning:
		g.paused = time.Until(g.endTime)
		g.phase = PhasePaused
		g.hud.pauseBtn.Label = "Resume"
	case PhasePaused:
		g.endTime = time.Now().Add(g.paused)
		g.phase = PhaseRunning
		g.hud.pauseBtn.Label = "Pause"
	}
}

// SubmitAnswer resolves a player's claim that a piece of the given
// kind reaches the target.
func (g *Game) SubmitAnswer(kind board.PieceKind) {
	if g.phase != PhaseRunning || g.session == nil {
		return
	}
	if time.Now().Before(g.lockUntil) {
		return
	}

	target := g.session.Target()
	ans := g.session.Submit(kind)
	g.lockUntil = time.Now().Add(answerLock)

	if ans.Correct {
		g.lastFrom = ans.From
		g.lastTo = ans.To
		g.feedback.OnCorrect(ans.To, g.session.Streak())
	} else {
		g.feedback.OnMiss(kind, target)
		if g.session.Misses() >= missLimit {
			g.finishDrill()
			return
		}
	}

	if g.session.Stalled() {
		g.feedback.OnStall()
		g.finishDrill()
	}
}

// finishDrill ends the current drill and records the result.
func (g *Game) finishDrill() {
	if g.phase != PhaseRunning && g.phase != PhasePaused {
		return
	}
	g.phase = PhaseFinished
	g.feedback.OnDrillEnd(g.session.Score())

	if g.storage != nil {
		err := g.storage.RecordDrill(storage.DrillResult{
			Score:      g.session.Score(),
			Misses:     g.session.Misses(),
			BestStreak: g.session.BestStreak(),
			Duration:   time.Since(g.started),
		})
		if err != nil {
			log.Printf("Warning: Failed to record drill: %v", err)
		}
	}

	g.savePreferences()
}

// ShowSettings opens the settings modal. The drill pauses while the
// modal is open.
func (g *Game) ShowSettings() {
	if g.phase == PhaseRunning {
		g.TogglePause()
	}

	g.settingsModal.Show(g.prefs, func(prefs *storage.UserPreferences) {
		g.username = prefs.Username
		g.prefs.Username = prefs.Username
		g.prefs.PieceCount = prefs.PieceCount
		g.prefs.DrillSeconds = prefs.DrillSeconds
		g.prefs.BoardMode = prefs.BoardMode
		g.prefs.SoundEnabled = prefs.SoundEnabled
		g.feedback.Audio().SetEnabled(prefs.SoundEnabled)
		g.savePreferences()
	}, nil)
}

// Session returns the active drill session, or nil before the first drill.
func (g *Game) Session() *drill.Session {
	return g.session
}

// Phase returns the current drill phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Remaining returns the time left in the drill.
func (g *Game) Remaining() time.Duration {
	switch g.phase {
	case PhaseRunning:
		return time.Until(g.endTime)
	case PhasePaused:
		return g.paused
	case PhaseFinished:
		return 0
	default:
		return time.Duration(g.prefs.DrillSeconds) * time.Second
	}
}

// Username returns the current username.
func (g *Game) Username() string {
	return g.username
}

// BoardVisible returns true when pieces should be drawn at full
// opacity.
func (g *Game) BoardVisible() bool {
	return g.prefs.BoardMode == storage.BoardVisible || g.phase == PhaseFinished
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.storage != nil {
		g.storage.Close()
	}
}
