package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/linuxmatters/magiccanvas/internal/palette"
)

// ColorPicker browses the built-in palettes one swatch at a time.
type ColorPicker struct {
	palettes []palette.Palette
	current  int
	selected int
}

// NewColorPicker starts on the first built-in palette.
func NewColorPicker() ColorPicker {
	return ColorPicker{palettes: palette.All()}
}

// Palette returns the palette being browsed.
func (p ColorPicker) Palette() palette.Palette {
	return p.palettes[p.current]
}

// Index returns the selected swatch position.
func (p ColorPicker) Index() int { return p.selected }

// Selected returns the selected colour.
func (p ColorPicker) Selected() palette.RGB {
	return p.Palette().Color(p.selected)
}

// NextPalette switches palette, wrapping, and resets the selection.
func (p *ColorPicker) NextPalette(delta int) {
	p.current = wrapIndex(p.current+delta, len(p.palettes))
	p.selected = 0
}

// Move moves the selection within the palette, wrapping.
func (p *ColorPicker) Move(delta int) {
	p.selected = wrapIndex(p.selected+delta, p.Palette().Len())
}

// View renders the palette name and its swatches with the selection marked.
func (p ColorPicker) View() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(p.Palette().Name()))
	b.WriteString("\n")

	var swatches, marks []string
	for i, c := range p.Palette().Colors() {
		swatches = append(swatches, swatchCell(c.Hex()))
		mark := "  "
		if i == p.selected {
			mark = selectedStyle.Render("▲ ")
		}
		marks = append(marks, mark)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, swatches...))
	b.WriteString("\n")
	b.WriteString(strings.Join(marks, ""))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(p.Selected().Hex()))
	return b.String()
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
