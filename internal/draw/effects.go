package draw

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/linuxmatters/magiccanvas/internal/palette"
)

// Effect is a text decoration.
type Effect string

const (
	NoEffect Effect = "none"
	Outline  Effect = "outline"
	Shadow   Effect = "shadow"
	Glow     Effect = "glow"
)

// Effects lists every effect.
var Effects = []Effect{NoEffect, Outline, Shadow, Glow}

// ParseEffect accepts an effect name in any case. Empty means none.
func ParseEffect(s string) (Effect, error) {
	if s == "" {
		return NoEffect, nil
	}
	for _, e := range Effects {
		if strings.EqualFold(string(e), s) {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown text effect %q", s)
}

// Effect parameters
const (
	OutlineWidth  = 2
	ShadowOffsetX = 3
	ShadowOffsetY = 3
	GlowRadius    = 5
	glowMaxAlpha  = 100
	glowStepDeg   = 30
)

// TextStyle describes how arc text is painted.
type TextStyle struct {
	Color       palette.RGB
	Effect      Effect
	EffectColor palette.RGB
}

// DrawStyledText draws glyphs with the style's effect underneath the text.
// The context's font face must already be set.
func DrawStyledText(dc *gg.Context, glyphs []Glyph, st TextStyle) {
	switch st.Effect {
	case Outline:
		dc.SetColor(st.EffectColor.RGBA())
		for dx := -OutlineWidth; dx <= OutlineWidth; dx++ {
			for dy := -OutlineWidth; dy <= OutlineWidth; dy++ {
				if dx != 0 || dy != 0 {
					DrawArcText(dc, glyphs, float64(dx), float64(dy))
				}
			}
		}
	case Shadow:
		dc.SetColor(st.EffectColor.RGBA())
		DrawArcText(dc, glyphs, ShadowOffsetX, ShadowOffsetY)
	case Glow:
		drawGlow(dc, glyphs, st.EffectColor)
	}

	dc.SetColor(st.Color.RGBA())
	DrawArcText(dc, glyphs, 0, 0)
}

// drawGlow stamps rings of copies from GlowRadius inward. Alpha rises toward
// the text; the outermost ring is fully transparent.
func drawGlow(dc *gg.Context, glyphs []Glyph, c palette.RGB) {
	for i := GlowRadius; i > 0; i-- {
		alpha := uint8(glowMaxAlpha * (GlowRadius - i) / GlowRadius)
		if alpha == 0 {
			continue
		}
		dc.SetColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha})
		for deg := 0; deg < 360; deg += glowStepDeg {
			rad := gg.Radians(float64(deg))
			dx := float64(int(float64(i) * math.Cos(rad)))
			dy := float64(int(float64(i) * math.Sin(rad)))
			DrawArcText(dc, glyphs, dx, dy)
		}
	}
}
