package filter

import (
	"image"

	"github.com/disintegration/imaging"
)

// 3x3 kernels with the weights and offsets of the classic PIL filters.
var (
	kernelSmooth      = [9]float64{1, 1, 1, 1, 5, 1, 1, 1, 1}
	kernelSharpen     = [9]float64{-2, -2, -2, -2, 32, -2, -2, -2, -2}
	kernelEdgeEnhance = [9]float64{-1, -1, -1, -1, 10, -1, -1, -1, -1}
	kernelFindEdges   = [9]float64{-1, -1, -1, -1, 8, -1, -1, -1, -1}
	kernelEmboss      = [9]float64{-1, 0, 0, 0, 1, 0, 0, 0, 0}
	kernelDetail      = [9]float64{0, -1, 0, -1, 10, -1, 0, -1, 0}
)

var normalize = &imaging.ConvolveOptions{Normalize: true}

// Blur applies a gaussian blur with the given radius (sigma).
func Blur(img image.Image, radius float64) *image.NRGBA {
	if radius <= 0 {
		return imaging.Clone(img)
	}
	return imaging.Blur(img, radius)
}

// Sharpen emphasises local detail.
func Sharpen(img image.Image) *image.NRGBA {
	return imaging.Convolve3x3(img, kernelSharpen, normalize)
}

// Smooth softens the image slightly.
func Smooth(img image.Image) *image.NRGBA {
	return imaging.Convolve3x3(img, kernelSmooth, normalize)
}

// EdgeEnhance boosts edges while keeping the image.
func EdgeEnhance(img image.Image) *image.NRGBA {
	return imaging.Convolve3x3(img, kernelEdgeEnhance, normalize)
}

// FindEdges keeps only the edges.
func FindEdges(img image.Image) *image.NRGBA {
	return imaging.Convolve3x3(img, kernelFindEdges, nil)
}

// Emboss renders a relief around mid gray.
func Emboss(img image.Image) *image.NRGBA {
	return imaging.Convolve3x3(img, kernelEmboss, &imaging.ConvolveOptions{Bias: 128})
}

// Contour draws dark edge lines on white.
func Contour(img image.Image) *image.NRGBA {
	return imaging.Convolve3x3(img, kernelFindEdges, &imaging.ConvolveOptions{Bias: 255})
}

// Detail sharpens fine detail more gently than Sharpen.
func Detail(img image.Image) *image.NRGBA {
	return imaging.Convolve3x3(img, kernelDetail, normalize)
}
