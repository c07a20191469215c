package filter

import (
	"fmt"
	"image"
	"strings"
)

// Preset is a named filter pipeline.
type Preset struct {
	Name        string
	Description string
	build       func() *Pipeline
}

// Pipeline returns a fresh pipeline for the preset.
func (p Preset) Pipeline() *Pipeline {
	return p.build()
}

// Apply runs the preset over img.
func (p Preset) Apply(img image.Image) *image.NRGBA {
	return p.build().Apply(img)
}

var presets = []Preset{
	{
		Name:        "vintage",
		Description: "Faded colours, sepia tone and a soft vignette",
		build: func() *Pipeline {
			return NewPipeline().
				Add("saturation 0.7", func(img image.Image) *image.NRGBA { return Saturation(img, 0.7) }).
				Add("sepia", Sepia).
				Add("contrast 0.9", func(img image.Image) *image.NRGBA { return Contrast(img, 0.9) }).
				Add("vignette 0.3", func(img image.Image) *image.NRGBA { return Vignette(img, 0.3) })
		},
	},
	{
		Name:        "dramatic",
		Description: "High contrast, muted colour and dark corners",
		build: func() *Pipeline {
			return NewPipeline().
				Add("contrast 1.3", func(img image.Image) *image.NRGBA { return Contrast(img, 1.3) }).
				Add("saturation 0.8", func(img image.Image) *image.NRGBA { return Saturation(img, 0.8) }).
				Add("brightness 0.9", func(img image.Image) *image.NRGBA { return Brightness(img, 0.9) }).
				Add("vignette 0.4", func(img image.Image) *image.NRGBA { return Vignette(img, 0.4) })
		},
	},
	{
		Name:        "bright-and-airy",
		Description: "Lighter, softer and slightly more colourful",
		build: func() *Pipeline {
			return NewPipeline().
				Add("brightness 1.2", func(img image.Image) *image.NRGBA { return Brightness(img, 1.2) }).
				Add("contrast 0.9", func(img image.Image) *image.NRGBA { return Contrast(img, 0.9) }).
				Add("saturation 1.1", func(img image.Image) *image.NRGBA { return Saturation(img, 1.1) })
		},
	},
	{
		Name:        "bw-contrast",
		Description: "High contrast black and white",
		build: func() *Pipeline {
			return NewPipeline().
				Add("grayscale", Grayscale).
				Add("contrast 1.5", func(img image.Image) *image.NRGBA { return Contrast(img, 1.5) })
		},
	},
}

// Presets returns every preset in display order.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// PresetNames lists preset names in display order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// PresetByName looks a preset up case-insensitively.
func PresetByName(name string) (Preset, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
