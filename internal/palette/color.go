// Package palette provides named colour palettes, colour harmonies and small
// colour utilities used by the editor's colour picker.
package palette

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/linuxmatters/magiccanvas/internal/config"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (RGB, error) {
	r, g, b, err := config.ParseHexColor(s)
	if err != nil {
		return RGB{}, err
	}
	return RGB{r, g, b}, nil
}

// Hex renders the colour as "#RRGGBB".
func (c RGB) Hex() string {
	return config.FormatHexColor(c.R, c.G, c.B)
}

// RGBA returns the colour as a fully opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// WithAlpha returns the colour as non-premultiplied RGBA with the given alpha.
func (c RGB) WithAlpha(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Lighten moves each channel toward white by amount (0.0-1.0).
func Lighten(c RGB, amount float64) RGB {
	amount = clamp01(amount)
	f := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)+(255-float64(v))*amount))
	}
	return RGB{f(c.R), f(c.G), f(c.B)}
}

// Darken moves each channel toward black by amount (0.0-1.0).
func Darken(c RGB, amount float64) RGB {
	amount = clamp01(amount)
	f := func(v uint8) uint8 {
		return uint8(math.Max(0, float64(v)*(1-amount)))
	}
	return RGB{f(c.R), f(c.G), f(c.B)}
}

// Blend mixes two colours in RGB space. ratio 0.0 returns a, 1.0 returns b.
func Blend(a, b RGB, ratio float64) RGB {
	return fromColorful(a.toColorful().BlendRgb(b.toColorful(), clamp01(ratio)))
}

// Random returns a uniformly random colour.
func Random() RGB {
	return RGB{uint8(rand.Intn(256)), uint8(rand.Intn(256)), uint8(rand.Intn(256))}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
