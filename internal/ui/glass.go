package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Kage shader for Gaussian blur (horizontal pass)
// Uses 9-tap Gaussian kernel (fixed size for Kage compatibility)
var blurHorizontalShader = []byte(`
//kage:unit pixels

package main

var Sigma float  // Controls blur strength (pixel spread)

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
    // 9-tap Gaussian blur weights (precomputed, sums to 1.0)
    var result vec4

    result += imageSrc0At(srcPos + vec2(-4*Sigma, 0)) * 0.0162
    result += imageSrc0At(srcPos + vec2(-3*Sigma, 0)) * 0.0540
    result += imageSrc0At(srcPos + vec2(-2*Sigma, 0)) * 0.1218
    result += imageSrc0At(srcPos + vec2(-1*Sigma, 0)) * 0.1954
    result += imageSrc0At(srcPos + vec2(0, 0)) * 0.2252
    result += imageSrc0At(srcPos + vec2(1*Sigma, 0)) * 0.1954
    result += imageSrc0At(srcPos + vec2(2*Sigma, 0)) * 0.1218
    result += imageSrc0At(srcPos + vec2(3*Sigma, 0)) * 0.0540
    result += imageSrc0At(srcPos + vec2(4*Sigma, 0)) * 0.0162

    return result
}
`)

// Kage shader for Gaussian blur (vertical pass)
var blurVerticalShader = []byte(`
//kage:unit pixels

package main

var Sigma float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
    var result vec4

    result += imageSrc0At(srcPos + vec2(0, -4*Sigma)) * 0.0162
    result += imageSrc0At(srcPos + vec2(0, -3*Sigma)) * 0.0540
    result += imageSrc0At(srcPos + vec2(0, -2*Sigma)) * 0.1218
    result += imageSrc0At(srcPos + vec2(0, -1*Sigma)) * 0.1954
    result += imageSrc0At(srcPos + vec2(0, 0)) * 0.2252
    result += imageSrc0At(srcPos + vec2(0, 1*Sigma)) * 0.1954
    result += imageSrc0At(srcPos + vec2(0, 2*Sigma)) * 0.1218
    result += imageSrc0At(srcPos + vec2(0, 3*Sigma)) * 0.0540
    result += imageSrc0At(srcPos + vec2(0, 4*Sigma)) * 0.0162

    return result
}
`)

// GlassEffect manages blurred modal backdrops.
type GlassEffect struct {
	blurH    *ebiten.Shader
	blurV    *ebiten.Shader
	tempH    *ebiten.Image // Horizontal blur result
	tempV    *ebiten.Image // Vertical blur result
	captured *ebiten.Image // Frozen blurred frame for modal backgrounds
	enabled  bool
}

// NewGlassEffect creates a new glass effect manager.
func NewGlassEffect() *GlassEffect {
	ge := &GlassEffect{
		enabled: true,
	}

	var err error
	ge.blurH, err = ebiten.NewShader(blurHorizontalShader)
	if err != nil {
		ge.enabled = false
		return ge
	}

	ge.blurV, err = ebiten.NewShader(blurVerticalShader)
	if err != nil {
		ge.enabled = false
		return ge
	}

	return ge
}

// IsEnabled returns whether the glass effect is available.
func (ge *GlassEffect) IsEnabled() bool {
	return ge != nil && ge.enabled
}

// ensureImages creates or resizes offscreen images as needed.
func (ge *GlassEffect) ensureImages(w, h int) {
	if ge.tempH == nil || ge.tempH.Bounds().Dx() != w || ge.tempH.Bounds().Dy() != h {
		ge.tempH = ebiten.NewImage(w, h)
	}
	if ge.tempV == nil || ge.tempV.Bounds().Dx() != w || ge.tempV.Bounds().Dy() != h {
		ge.tempV = ebiten.NewImage(w, h)
	}
}

// blurRegion blurs the given screen region into tempH.
func (ge *GlassEffect) blurRegion(screen *ebiten.Image, x, y, w, h int, sigma float64) {
	ge.ensureImages(w, h)
	ge.tempH.Clear()

	// Capture the region from screen to tempH
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(-x), float64(-y))
	ge.tempH.DrawImage(screen, op)

	// Apply horizontal blur: tempH -> tempV
	ge.tempV.Clear()
	blurOpH := &ebiten.DrawRectShaderOptions{
		Uniforms: map[string]interface{}{
			"Sigma": float32(sigma),
		},
		Images: [4]*ebiten.Image{ge.tempH},
	}
	ge.tempV.DrawRectShader(w, h, ge.blurH, blurOpH)

	// Apply vertical blur: tempV -> tempH
	ge.tempH.Clear()
	blurOpV := &ebiten.DrawRectShaderOptions{
		Uniforms: map[string]interface{}{
			"Sigma": float32(sigma),
		},
		Images: [4]*ebiten.Image{ge.tempV},
	}
	ge.tempH.DrawRectShader(w, h, ge.blurV, blurOpV)
}

// DrawGlass blurs the region under a modal and tints it.
// x, y, w, h are in screen coordinates (already scaled).
// sigma controls blur strength (1.0-4.0 recommended).
func (ge *GlassEffect) DrawGlass(screen *ebiten.Image, x, y, w, h int, tint color.RGBA, sigma float64) {
	if !ge.IsEnabled() {
		ge.drawFallback(screen, x, y, w, h, tint)
		return
	}

	if w <= 0 || h <= 0 {
		return
	}

	ge.blurRegion(screen, x, y, w, h, sigma)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(ge.tempH, op)

	tintImg := ebiten.NewImage(w, h)
	tintImg.Fill(tint)
	screen.DrawImage(tintImg, op)
}

// CaptureForModal freezes a blurred copy of the current frame. The
// copy is drawn behind modals until the next capture, which avoids the
// feedback flicker of re-blurring a frame that already contains the
// modal.
func (ge *GlassEffect) CaptureForModal(screen *ebiten.Image, sigma float64) {
	if !ge.IsEnabled() {
		return
	}

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return
	}

	ge.blurRegion(screen, 0, 0, w, h, sigma)

	if ge.captured == nil || ge.captured.Bounds().Dx() != w || ge.captured.Bounds().Dy() != h {
		ge.captured = ebiten.NewImage(w, h)
	}
	ge.captured.Clear()
	ge.captured.DrawImage(ge.tempH, nil)
}

// DrawModalBackground draws the captured blurred frame dimmed by the
// given fraction (0 = no dimming, 1 = black).
func (ge *GlassEffect) DrawModalBackground(screen *ebiten.Image, dim float64) {
	if ge.captured == nil {
		return
	}

	screen.DrawImage(ge.captured, nil)

	if dim > 0 {
		w := screen.Bounds().Dx()
		h := screen.Bounds().Dy()
		overlay := ebiten.NewImage(w, h)
		overlay.Fill(color.RGBA{0, 0, 0, uint8(255 * dim)})
		screen.DrawImage(overlay, nil)
	}
}

// drawFallback draws a simple semi-transparent overlay when shaders
// are unavailable.
func (ge *GlassEffect) drawFallback(screen *ebiten.Image, x, y, w, h int, tint color.RGBA) {
	fallbackImg := ebiten.NewImage(w, h)
	fallbackImg.Fill(tint)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(fallbackImg, op)
}
