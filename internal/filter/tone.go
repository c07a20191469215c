package filter

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// lut is a per-channel lookup table.
type lut [3][256]uint8

func (l *lut) apply(img image.Image) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.R = l[0][c.R]
		c.G = l[1][c.G]
		c.B = l[2][c.B]
		return c
	})
}

// histograms counts every colour channel of src separately.
func histograms(src *image.NRGBA) (h [3][256]int, n int) {
	for i := 0; i+3 < len(src.Pix); i += 4 {
		h[0][src.Pix[i]]++
		h[1][src.Pix[i+1]]++
		h[2][src.Pix[i+2]]++
		n++
	}
	return h, n
}

// AutoContrast stretches each channel so its darkest and lightest values map
// to 0 and 255, ignoring cutoff percent of pixels at each end.
func AutoContrast(img image.Image, cutoff float64) *image.NRGBA {
	src := imaging.Clone(img)
	hists, n := histograms(src)

	var table lut
	for ch, h := range hists {
		if cutoff > 0 {
			trim(&h, int(float64(n)*cutoff/100))
		}
		lo, hi := 0, 255
		for lo < 256 && h[lo] == 0 {
			lo++
		}
		for hi >= 0 && h[hi] == 0 {
			hi--
		}
		for i := range table[ch] {
			if hi <= lo {
				table[ch][i] = uint8(i)
				continue
			}
			v := (i - lo) * 255 / (hi - lo)
			table[ch][i] = uint8(max(0, min(255, v)))
		}
	}
	return table.apply(src)
}

// trim removes cut samples from both ends of h.
func trim(h *[256]int, cut int) {
	for lo, c := 0, cut; lo < 256 && c > 0; lo++ {
		take := min(h[lo], c)
		h[lo] -= take
		c -= take
	}
	for hi, c := 255, cut; hi >= 0 && c > 0; hi-- {
		take := min(h[hi], c)
		h[hi] -= take
		c -= take
	}
}

// Equalize flattens each channel's histogram.
func Equalize(img image.Image) *image.NRGBA {
	src := imaging.Clone(img)
	hists, _ := histograms(src)

	var table lut
	for ch, h := range hists {
		total, last := 0, 0
		for _, v := range h {
			if v > 0 {
				total += v
				last = v
			}
		}
		step := (total - last) / 255
		for i := range table[ch] {
			table[ch][i] = uint8(i)
		}
		if step == 0 {
			continue
		}
		acc := step / 2
		for i := range table[ch] {
			table[ch][i] = uint8(min(255, acc/step))
			acc += h[i]
		}
	}
	return table.apply(src)
}

// Invert negates every colour channel.
func Invert(img image.Image) *image.NRGBA {
	return imaging.Invert(img)
}

// Grayscale removes all colour.
func Grayscale(img image.Image) *image.NRGBA {
	return imaging.Grayscale(img)
}

// Posterize keeps the top bits of each channel (1-8).
func Posterize(img image.Image, bits int) *image.NRGBA {
	bits = max(1, min(8, bits))
	mask := uint8(0xFF << (8 - bits))
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.R &= mask
		c.G &= mask
		c.B &= mask
		return c
	})
}

// Solarize inverts channel values at or above threshold.
func Solarize(img image.Image, threshold uint8) *image.NRGBA {
	f := func(v uint8) uint8 {
		if v >= threshold {
			return 255 - v
		}
		return v
	}
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.R, c.G, c.B = f(c.R), f(c.G), f(c.B)
		return c
	})
}
