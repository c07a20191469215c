package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/linuxmatters/magiccanvas/internal/config"
)

// PreviewConfig holds configuration for the canvas preview
type PreviewConfig struct {
	Width  int // Width in terminal cells
	Height int // Height in terminal cells; each cell shows two pixel rows
}

// DefaultPreviewConfig returns the default preview size
func DefaultPreviewConfig() PreviewConfig {
	return PreviewConfig{
		Width:  config.PreviewWidth,
		Height: config.PreviewHeight,
	}
}

// FitPreview sizes a preview for a w×h canvas inside maxCols×maxRows cells,
// keeping the canvas aspect ratio. Terminal cells are about twice as tall as
// wide, which the half-block rendering cancels out.
func FitPreview(w, h, maxCols, maxRows int) PreviewConfig {
	if w <= 0 || h <= 0 || maxCols <= 0 || maxRows <= 0 {
		return PreviewConfig{Width: max(1, maxCols), Height: max(1, maxRows)}
	}
	cols := maxCols
	rows := (cols*h/w + 1) / 2
	if rows > maxRows {
		rows = maxRows
		cols = rows * 2 * w / h
	}
	return PreviewConfig{Width: max(1, cols), Height: max(1, rows)}
}

// DownsampleFrame averages frame into a grid of Width columns and 2×Height
// pixel rows. Every grid pixel covers at least one source pixel.
func DownsampleFrame(frame image.Image, config PreviewConfig) [][]color.RGBA {
	bounds := frame.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()
	rows := config.Height * 2

	preview := make([][]color.RGBA, rows)
	for row := 0; row < rows; row++ {
		preview[row] = make([]color.RGBA, config.Width)

		y0 := row * srcHeight / rows
		y1 := max(y0+1, (row+1)*srcHeight/rows)

		for col := 0; col < config.Width; col++ {
			x0 := col * srcWidth / config.Width
			x1 := max(x0+1, (col+1)*srcWidth/config.Width)

			var sumR, sumG, sumB uint32
			pixelCount := uint32(0)
			for y := y0; y < y1 && y < srcHeight; y++ {
				for x := x0; x < x1 && x < srcWidth; x++ {
					r, g, b, _ := frame.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
					// RGBA() returns 16-bit values, convert to 8-bit
					sumR += r >> 8
					sumG += g >> 8
					sumB += b >> 8
					pixelCount++
				}
			}

			if pixelCount > 0 {
				preview[row][col] = color.RGBA{
					R: uint8(sumR / pixelCount),
					G: uint8(sumG / pixelCount),
					B: uint8(sumB / pixelCount),
					A: 255,
				}
			}
		}
	}

	return preview
}

// RenderPreview draws a downsampled grid with ANSI 24-bit colour. Each
// terminal cell is an upper half block: foreground is the top pixel,
// background the bottom one.
func RenderPreview(preview [][]color.RGBA) string {
	if len(preview) == 0 || len(preview[0]) == 0 {
		return ""
	}
	width := len(preview[0])

	var s strings.Builder
	s.WriteString("┌" + strings.Repeat("─", width) + "┐\n")

	for row := 0; row < len(preview); row += 2 {
		s.WriteString("│")
		for col, top := range preview[row] {
			bottom := top
			if row+1 < len(preview) {
				bottom = preview[row+1][col]
			}
			fmt.Fprintf(&s, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		s.WriteString("│\n")
	}

	s.WriteString("└" + strings.Repeat("─", width) + "┘")
	return s.String()
}
