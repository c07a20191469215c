package draw

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/linuxmatters/magiccanvas/internal/palette"
)

// GradientKind selects the gradient geometry.
type GradientKind string

const (
	Horizontal GradientKind = "horizontal"
	Vertical   GradientKind = "vertical"
	Diagonal   GradientKind = "diagonal"
	Radial     GradientKind = "radial"
)

// GradientKinds lists the supported kinds.
var GradientKinds = []GradientKind{Horizontal, Vertical, Diagonal, Radial}

// ParseGradientKind accepts a kind name in any case.
func ParseGradientKind(s string) (GradientKind, error) {
	for _, k := range GradientKinds {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown gradient %q", s)
}

// Gradient renders a w×h gradient from one colour to another. Radial
// gradients are centred on the canvas.
func Gradient(kind GradientKind, w, h int, from, to palette.RGB) *image.RGBA {
	switch kind {
	case Radial:
		return RadialGradient(w, h, from, to, nil)
	default:
		return LinearGradient(kind, w, h, from, to)
	}
}

// LinearGradient blends from → to across the canvas. Horizontal and vertical
// gradients step per column or row; diagonal gradients follow the distance
// from the top-left corner. Channels are truncated, not rounded.
func LinearGradient(kind GradientKind, w, h int, from, to palette.RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}

	switch kind {
	case Vertical:
		for y := 0; y < h; y++ {
			c := mix(from, to, float64(y)/float64(h))
			for x := 0; x < w; x++ {
				set(img, x, y, c)
			}
		}
	case Diagonal:
		maxDist := math.Hypot(float64(w), float64(h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				set(img, x, y, mix(from, to, math.Hypot(float64(x), float64(y))/maxDist))
			}
		}
	default:
		for x := 0; x < w; x++ {
			c := mix(from, to, float64(x)/float64(w))
			for y := 0; y < h; y++ {
				set(img, x, y, c)
			}
		}
	}
	return img
}

// RadialGradient blends from the centre (from) outward (to). A nil centre
// uses the middle of the canvas. Distance is normalised by the half
// diagonal and capped at 1.
func RadialGradient(w, h int, from, to palette.RGB, centre *image.Point) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}
	c := image.Pt(w/2, h/2)
	if centre != nil {
		c = *centre
	}
	maxDist := math.Hypot(float64(w)/2, float64(h)/2)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := math.Min(math.Hypot(float64(x-c.X), float64(y-c.Y))/maxDist, 1)
			set(img, x, y, mix(from, to, t))
		}
	}
	return img
}

func mix(a, b palette.RGB, t float64) palette.RGB {
	ch := func(x, y uint8) uint8 {
		return uint8(float64(x) + float64(int(y)-int(x))*t)
	}
	return palette.RGB{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B)}
}

func set(img *image.RGBA, x, y int, c palette.RGB) {
	i := img.PixOffset(x, y)
	img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, 255
}
