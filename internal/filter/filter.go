// Package filter implements image adjustments, convolution filters, artistic
// effects and the named filter presets applied to a finished design.
//
// Every filter is pure: it returns a new image and never touches its input.
package filter

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"strings"

	"github.com/disintegration/imaging"
)

// Common errors for filter lookups.
var (
	ErrUnknownFilter = errors.New("unknown filter")
	ErrUnknownPreset = errors.New("unknown filter preset")
)

// Filter transforms an image into a new one.
type Filter func(image.Image) *image.NRGBA

// Pipeline is an ordered list of named filters applied left to right.
type Pipeline struct {
	names   []string
	filters []Filter
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Add appends a filter and returns the pipeline for chaining.
func (p *Pipeline) Add(name string, f Filter) *Pipeline {
	p.names = append(p.names, name)
	p.filters = append(p.filters, f)
	return p
}

// Names returns the step names in order.
func (p *Pipeline) Names() []string {
	return slices.Clone(p.names)
}

// Len returns the number of steps.
func (p *Pipeline) Len() int {
	return len(p.filters)
}

// Apply runs every step in order. An empty pipeline returns a copy of img.
func (p *Pipeline) Apply(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for _, f := range p.filters {
		out = f(out)
	}
	return out
}

// simple holds the filters that take no parameters, keyed by CLI name.
var simple = map[string]Filter{
	"blur":          func(img image.Image) *image.NRGBA { return Blur(img, 2) },
	"sharpen":       Sharpen,
	"smooth":        Smooth,
	"edge-enhance":  EdgeEnhance,
	"find-edges":    FindEdges,
	"emboss":        Emboss,
	"contour":       Contour,
	"detail":        Detail,
	"auto-contrast": func(img image.Image) *image.NRGBA { return AutoContrast(img, 0) },
	"equalize":      Equalize,
	"invert":        Invert,
	"grayscale":     Grayscale,
	"posterize":     func(img image.Image) *image.NRGBA { return Posterize(img, 4) },
	"solarize":      func(img image.Image) *image.NRGBA { return Solarize(img, 128) },
	"sepia":         Sepia,
	"vignette":      func(img image.Image) *image.NRGBA { return Vignette(img, 0.5) },
	"pixelate":      func(img image.Image) *image.NRGBA { return Pixelate(img, 10) },
	"oil-paint":     func(img image.Image) *image.NRGBA { return OilPainting(img, 5) },
	"sketch":        Sketch,
	"cartoon":       Cartoon,
}

// FilterNames lists the filters usable by name, sorted.
func FilterNames() []string {
	names := make([]string, 0, len(simple))
	for name := range simple {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FilterByName returns a filter with its default parameters.
func FilterByName(name string) (Filter, error) {
	f, ok := simple[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	return f, nil
}
