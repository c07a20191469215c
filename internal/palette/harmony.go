package palette

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Harmony names a colour harmony scheme.
type Harmony string

// Supported harmony schemes.
const (
	Complementary Harmony = "complementary"
	Analogous     Harmony = "analogous"
	Triadic       Harmony = "triadic"
	Tetradic      Harmony = "tetradic"
	Monochromatic Harmony = "monochromatic"
)

// Harmonies lists every scheme in display order.
var Harmonies = []Harmony{Complementary, Analogous, Triadic, Tetradic, Monochromatic}

// ParseHarmony resolves a scheme by name (case-insensitive).
func ParseHarmony(name string) (Harmony, error) {
	for _, h := range Harmonies {
		if strings.EqualFold(string(h), name) {
			return h, nil
		}
	}
	return "", fmt.Errorf("%w: harmony %q", ErrNotFound, name)
}

// Generate builds the harmony for base. count only affects Monochromatic.
func Generate(h Harmony, base RGB, count int) ([]RGB, error) {
	switch h {
	case Complementary:
		return ComplementaryOf(base), nil
	case Analogous:
		return AnalogousOf(base), nil
	case Triadic:
		return TriadicOf(base), nil
	case Tetradic:
		return TetradicOf(base), nil
	case Monochromatic:
		return MonochromaticOf(base, count), nil
	}
	return nil, fmt.Errorf("%w: harmony %q", ErrNotFound, h)
}

// rotateHue turns the hue of c by deg degrees, keeping saturation and value.
func rotateHue(c RGB, deg float64) RGB {
	h, s, v := c.toColorful().Hsv()
	h = math.Mod(h+deg, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsv(h, s, v))
}

// ComplementaryOf returns the base colour and its 180° opposite.
func ComplementaryOf(base RGB) []RGB {
	return []RGB{base, rotateHue(base, 180)}
}

// AnalogousOf returns the neighbours 30° either side of base, base in the middle.
func AnalogousOf(base RGB) []RGB {
	return []RGB{rotateHue(base, -30), base, rotateHue(base, 30)}
}

// TriadicOf returns base plus the colours at +120° and +240°.
func TriadicOf(base RGB) []RGB {
	return []RGB{base, rotateHue(base, 120), rotateHue(base, 240)}
}

// TetradicOf returns the square harmony: base plus +90°, +180° and +270°.
func TetradicOf(base RGB) []RGB {
	return []RGB{base, rotateHue(base, 90), rotateHue(base, 180), rotateHue(base, 270)}
}

// MonochromaticOf ramps value from 0.3 to 1.0 over count steps at the base hue
// and saturation. A count of 1 returns the base colour; less than 1 returns nil.
func MonochromaticOf(base RGB, count int) []RGB {
	if count < 1 {
		return nil
	}
	h, s, v := base.toColorful().Hsv()
	out := make([]RGB, count)
	for i := range out {
		nv := v
		if count > 1 {
			nv = 0.3 + 0.7*float64(i)/float64(count-1)
		}
		out[i] = fromColorful(colorful.Hsv(h, s, nv))
	}
	return out
}
