package palette

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a palette or harmony name is unknown.
var ErrNotFound = errors.New("not found")

// Palette is an immutable named list of colours.
type Palette struct {
	name   string
	colors []RGB
}

// New creates a palette, copying colors.
func New(name string, colors ...RGB) Palette {
	return Palette{name: name, colors: append([]RGB(nil), colors...)}
}

// Name returns the palette name.
func (p Palette) Name() string { return p.name }

// Len returns the number of colours.
func (p Palette) Len() int { return len(p.colors) }

// Colors returns a copy of the colours.
func (p Palette) Colors() []RGB {
	return append([]RGB(nil), p.colors...)
}

// Color returns the colour at index, wrapping in both directions.
// An empty palette returns black.
func (p Palette) Color(index int) RGB {
	n := len(p.colors)
	if n == 0 {
		return RGB{}
	}
	index %= n
	if index < 0 {
		index += n
	}
	return p.colors[index]
}

// With returns a copy of the palette with c appended.
func (p Palette) With(c RGB) Palette {
	return New(p.name, append(p.Colors(), c)...)
}

// Without returns a copy of the palette with the colour at index removed.
// Out of range indexes return an unchanged copy.
func (p Palette) Without(index int) Palette {
	colors := p.Colors()
	if index < 0 || index >= len(colors) {
		return New(p.name, colors...)
	}
	return New(p.name, append(colors[:index], colors[index+1:]...)...)
}

var library = []Palette{
	New("Material Red",
		RGB{244, 67, 54}, RGB{239, 83, 80}, RGB{229, 115, 115}, RGB{239, 154, 154}),
	New("Material Blue",
		RGB{33, 150, 243}, RGB{66, 165, 245}, RGB{100, 181, 246}, RGB{144, 202, 249}),
	New("Material Green",
		RGB{76, 175, 80}, RGB{102, 187, 106}, RGB{129, 199, 132}, RGB{165, 214, 167}),
	New("Flat UI",
		RGB{52, 152, 219}, RGB{155, 89, 182}, RGB{46, 204, 113},
		RGB{241, 196, 15}, RGB{230, 126, 34}, RGB{231, 76, 60}),
	New("Pastel",
		RGB{255, 179, 186}, RGB{255, 223, 186}, RGB{255, 255, 186},
		RGB{186, 255, 201}, RGB{186, 225, 255}, RGB{220, 198, 224}),
	New("Dark Theme",
		RGB{30, 30, 30}, RGB{45, 45, 48}, RGB{60, 63, 65}, RGB{187, 187, 187}, RGB{255, 255, 255}),
	New("Vibrant",
		RGB{255, 0, 127}, RGB{0, 255, 255}, RGB{255, 255, 0}, RGB{255, 0, 255}, RGB{0, 255, 0}),
	New("Earth Tones",
		RGB{139, 90, 43}, RGB{101, 67, 33}, RGB{160, 82, 45}, RGB{188, 143, 143}, RGB{210, 180, 140}),
	New("Ocean",
		RGB{0, 105, 148}, RGB{0, 119, 182}, RGB{3, 169, 244}, RGB{0, 188, 212}, RGB{77, 208, 225}),
	New("Sunset",
		RGB{255, 87, 34}, RGB{255, 112, 67}, RGB{255, 152, 0}, RGB{255, 193, 7}, RGB{255, 235, 59}),
}

// All returns every built-in palette in display order.
func All() []Palette {
	return append([]Palette(nil), library...)
}

// ByName looks a palette up case-insensitively.
func ByName(name string) (Palette, error) {
	for _, p := range library {
		if strings.EqualFold(p.name, name) {
			return p, nil
		}
	}
	return Palette{}, fmt.Errorf("%w: palette %q", ErrNotFound, name)
}
