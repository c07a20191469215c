package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/linuxmatters/magiccanvas/internal/cli"
)

// Slider is a bounded integer control drawn as a gradient bar.
type Slider struct {
	Label string
	Min   int
	Max   int
	Step  int

	value int
	bar   progress.Model
}

// NewSlider creates a slider. value is clamped into range.
func NewSlider(label string, lo, hi, step, value int) Slider {
	s := Slider{
		Label: label,
		Min:   lo,
		Max:   hi,
		Step:  max(1, step),
		bar: progress.New(
			progress.WithGradient(string(cli.PaintTeal), string(cli.PaintCoral)),
			progress.WithWidth(24),
			progress.WithoutPercentage(),
		),
	}
	s.SetValue(value)
	return s
}

// Value returns the current value.
func (s Slider) Value() int { return s.value }

// SetValue clamps v into range. Values off the step grid are kept so the
// slider always shows the real value.
func (s *Slider) SetValue(v int) {
	s.value = max(s.Min, min(s.Max, v))
}

// Increment moves one step up. It reports whether the value changed.
func (s *Slider) Increment() bool {
	old := s.value
	s.SetValue(s.value + s.Step)
	return s.value != old
}

// Decrement moves one step down. It reports whether the value changed.
func (s *Slider) Decrement() bool {
	old := s.value
	s.SetValue(s.value - s.Step)
	return s.value != old
}

// Ratio is the position of the value within the range, 0 to 1.
func (s Slider) Ratio() float64 {
	if s.Max == s.Min {
		return 0
	}
	return float64(s.value-s.Min) / float64(s.Max-s.Min)
}

// SetWidth changes the bar width in cells.
func (s *Slider) SetWidth(w int) {
	s.bar.Width = max(4, w)
}

// View renders "Label [bar] value".
func (s Slider) View() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(s.Label + " "))
	b.WriteString(s.bar.ViewAs(s.Ratio()))
	b.WriteString(" ")
	b.WriteString(valueStyle.Render(fmt.Sprintf("%dpt", s.value)))
	return b.String()
}
