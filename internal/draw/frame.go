package draw

import (
	"github.com/fogleman/gg"
	"github.com/linuxmatters/magiccanvas/internal/config"
	"github.com/linuxmatters/magiccanvas/internal/palette"
)

// DrawFrame paints the inset border and the four corner dots.
func DrawFrame(dc *gg.Context, border, accent palette.RGB) {
	w, h := float64(dc.Width()), float64(dc.Height())

	// Keep the stroke inside the inset box.
	half := float64(config.FrameWidth) / 2
	inset := float64(config.FrameInset) + half
	Rectangle(dc, inset, inset, w-inset, h-inset, 0, Style{
		Stroke: border.RGBA(),
		Width:  config.FrameWidth,
	})

	span := float64(config.FrameCornerSpan)
	for _, p := range []gg.Point{
		{X: span, Y: span},
		{X: w - span, Y: span},
		{X: span, Y: h - span},
		{X: w - span, Y: h - span},
	} {
		Circle(dc, p.X, p.Y, config.FrameCornerDot, Style{Fill: accent.RGBA()})
	}
}
