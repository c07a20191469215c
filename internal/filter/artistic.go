package filter

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/disintegration/imaging"
)

// Sepia tints the grayscale image brown.
func Sepia(img image.Image) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		l := float64(luma(c.R, c.G, c.B))
		c.R = uint8(l)
		c.G = uint8(l * 0.95)
		c.B = uint8(l * 0.82)
		return c
	})
}

// Vignette darkens toward the corners. Intensity 0 leaves the image as is,
// 1 takes the corners to black.
func Vignette(img image.Image, intensity float64) *image.NRGBA {
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	cx, cy := w/2, h/2
	maxDist := math.Hypot(float64(cx), float64(cy))
	if maxDist == 0 {
		return src
	}

	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x-cx), float64(y-cy))
			mask := int((1 - d/maxDist*intensity) * 255)
			mask = max(0, min(255, mask))
			p := row[x*4 : x*4+3]
			for i := range p {
				p[i] = uint8(int(p[i]) * mask / 255)
			}
		}
	}
	return src
}

// Pixelate scales the image down by size and back up with nearest neighbour.
func Pixelate(img image.Image, size int) *image.NRGBA {
	b := img.Bounds()
	if size <= 1 {
		return imaging.Clone(img)
	}
	w := max(1, b.Dx()/size)
	h := max(1, b.Dy()/size)
	small := imaging.Resize(img, w, h, imaging.NearestNeighbor)
	return imaging.Resize(small, b.Dx(), b.Dy(), imaging.NearestNeighbor)
}

// OilPainting approximates brush strokes with a per-channel median filter of
// the given window size.
func OilPainting(img image.Image, size int) *image.NRGBA {
	src := imaging.Clone(img)
	r := size / 2
	if r < 1 {
		return src
	}
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewNRGBA(src.Rect)
	window := make([]uint8, 0, (2*r+1)*(2*r+1))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := y*dst.Stride + x*4
			for ch := 0; ch < 3; ch++ {
				window = window[:0]
				for dy := -r; dy <= r; dy++ {
					sy := max(0, min(h-1, y+dy))
					for dx := -r; dx <= r; dx++ {
						sx := max(0, min(w-1, x+dx))
						window = append(window, src.Pix[sy*src.Stride+sx*4+ch])
					}
				}
				slices.Sort(window)
				dst.Pix[o+ch] = window[len(window)/2]
			}
			dst.Pix[o+3] = src.Pix[o+3]
		}
	}
	return dst
}

// Sketch produces a pencil drawing look.
func Sketch(img image.Image) *image.NRGBA {
	gray := imaging.Grayscale(img)
	blurred := imaging.Blur(imaging.Invert(gray), 5)
	return imaging.Overlay(gray, blurred, image.Point{}, 0.5)
}

// Cartoon flattens colours and overlays the edges.
func Cartoon(img image.Image) *image.NRGBA {
	edges := FindEdges(img)
	return imaging.Overlay(Posterize(img, 4), edges, image.Point{}, 0.3)
}
