package draw

import (
	"errors"
	"math"

	"github.com/fogleman/gg"
	"github.com/linuxmatters/magiccanvas/internal/config"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ErrInvalidRadius is returned for an arc radius that is not positive.
var ErrInvalidRadius = errors.New("arc radius must be positive")

// Arc is the circle segment text is laid out on.
type Arc struct {
	CX, CY     float64 // centre in pixels
	Radius     float64
	StartAngle float64 // degrees
	Sweep      float64 // degrees; positive runs clockwise from StartAngle
}

// DefaultArc centres the default semicircle on a canvas of the given size.
func DefaultArc(width, height int) Arc {
	return Arc{
		CX:         float64(width / 2),
		CY:         float64(height / 2),
		Radius:     config.ArcRadius,
		StartAngle: config.ArcStartAngle,
		Sweep:      config.ArcSweep,
	}
}

// Glyph is one placed character.
type Glyph struct {
	Text     string
	X, Y     float64 // glyph centre
	Angle    float64 // position on the arc, degrees
	Rotation float64 // screen rotation in radians, clockwise positive
}

// LayoutArc places each rune of text on arc. Every glyph gets an angular
// share of the sweep proportional to its advance width in face, and is
// rotated to sit tangent to the arc with its top pointing away from the
// centre (toward the centre for a negative sweep).
//
// Empty text yields no glyphs. The sweep is clamped to ±360°.
func LayoutArc(text string, face font.Face, arc Arc) ([]Glyph, error) {
	if arc.Radius <= 0 {
		return nil, ErrInvalidRadius
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, nil
	}

	sweep := ClampSweep(arc.Sweep)

	advances := make([]fixed.Int26_6, len(runes))
	var total fixed.Int26_6
	for i, r := range runes {
		if face != nil {
			if adv, ok := face.GlyphAdvance(r); ok {
				advances[i] = adv
			}
		}
		total += advances[i]
	}

	glyphs := make([]Glyph, len(runes))
	var cum fixed.Int26_6
	for i, r := range runes {
		var frac float64
		if total > 0 {
			frac = (float64(cum) + float64(advances[i])/2) / float64(total)
		} else {
			frac = (float64(i) + 0.5) / float64(len(runes))
		}
		cum += advances[i]

		theta := arc.StartAngle - sweep*frac
		rad := gg.Radians(theta)
		glyphs[i] = Glyph{
			Text:     string(r),
			X:        arc.CX + arc.Radius*math.Cos(rad),
			Y:        arc.CY - arc.Radius*math.Sin(rad),
			Angle:    theta,
			Rotation: tangentRotation(theta, sweep),
		}
	}
	return glyphs, nil
}

// ClampSweep limits a sweep to ±360°.
func ClampSweep(sweep float64) float64 {
	return math.Max(-config.MaxArcSweep, math.Min(config.MaxArcSweep, sweep))
}

func tangentRotation(theta, sweep float64) float64 {
	if sweep < 0 {
		return gg.Radians(-90 - theta)
	}
	return gg.Radians(90 - theta)
}

// DrawArcText draws glyphs with the context's current font face and colour,
// shifted by (dx, dy).
func DrawArcText(dc *gg.Context, glyphs []Glyph, dx, dy float64) {
	for _, g := range glyphs {
		x, y := g.X+dx, g.Y+dy
		dc.Push()
		dc.RotateAbout(g.Rotation, x, y)
		dc.DrawStringAnchored(g.Text, x, y, 0.5, 0.5)
		dc.Pop()
	}
}
