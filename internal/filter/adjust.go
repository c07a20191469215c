package filter

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Adjustments interpolate between a degenerate image and the original:
// out = deg + factor*(in-deg), clamped to [0,255]. Factor 1.0 returns the
// original unchanged, 0.0 returns the degenerate image.

// Brightness scales toward black.
func Brightness(img image.Image, factor float64) *image.NRGBA {
	if factor == 1 {
		return imaging.Clone(img)
	}
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.R = clampRound(factor * float64(c.R))
		c.G = clampRound(factor * float64(c.G))
		c.B = clampRound(factor * float64(c.B))
		return c
	})
}

// Contrast scales toward a flat gray at the image's mean luminance.
func Contrast(img image.Image, factor float64) *image.NRGBA {
	if factor == 1 {
		return imaging.Clone(img)
	}
	mean := 0.0
	for i, v := range imaging.Histogram(img) {
		mean += float64(i) * v
	}
	gray := float64(int(mean + 0.5))
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.R = lerp(gray, float64(c.R), factor)
		c.G = lerp(gray, float64(c.G), factor)
		c.B = lerp(gray, float64(c.B), factor)
		return c
	})
}

// Saturation scales toward the grayscale image.
func Saturation(img image.Image, factor float64) *image.NRGBA {
	if factor == 1 {
		return imaging.Clone(img)
	}
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		l := float64(luma(c.R, c.G, c.B))
		c.R = lerp(l, float64(c.R), factor)
		c.G = lerp(l, float64(c.G), factor)
		c.B = lerp(l, float64(c.B), factor)
		return c
	})
}

// Sharpness scales toward the smoothed image.
func Sharpness(img image.Image, factor float64) *image.NRGBA {
	src := imaging.Clone(img)
	if factor == 1 {
		return src
	}
	return blend(Smooth(src), src, factor)
}

// blend computes deg + factor*(src-deg) per colour channel, keeping src alpha.
// Both images must share bounds and stride.
func blend(deg, src *image.NRGBA, factor float64) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	for i := 0; i+3 < len(src.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			dst.Pix[i+c] = lerp(float64(deg.Pix[i+c]), float64(src.Pix[i+c]), factor)
		}
		dst.Pix[i+3] = src.Pix[i+3]
	}
	return dst
}

func lerp(deg, v, factor float64) uint8 {
	return clampRound(deg + factor*(v-deg))
}

func clampRound(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

// luma is ITU-R 601 luminance in 16.16 fixed point.
func luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*19595 + uint32(g)*38470 + uint32(b)*7471 + 0x8000) >> 16)
}
