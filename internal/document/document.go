// Package document holds the design being edited and the reversible
// commands that change it.
//
// A Document is only mutated through commands executed by a
// history.History, so every change can be undone.
package document

import (
	"errors"
	"slices"

	"github.com/linuxmatters/magiccanvas/internal/config"
	"github.com/linuxmatters/magiccanvas/internal/draw"
	"github.com/linuxmatters/magiccanvas/internal/palette"
)

// Validation errors returned by command Apply.
var (
	ErrOutOfRange   = errors.New("value out of range")
	ErrInvalidValue = errors.New("invalid value")
	ErrNoSuchShape  = errors.New("no such shape")
)

// Gradient is an optional two colour background.
type Gradient struct {
	Kind draw.GradientKind
	From palette.RGB
	To   palette.RGB
}

// ArcGeometry positions the text arc relative to the canvas centre.
type ArcGeometry struct {
	Radius     float64
	StartAngle float64
	Sweep      float64
}

// Document is the full state of a design.
type Document struct {
	Text       string
	FontFamily string
	FontStyle  string
	FontSize   int

	TextColor  palette.RGB
	Background palette.RGB
	Gradient   *Gradient

	Width  int
	Height int
	DPI    int

	Arc         ArcGeometry
	Effect      draw.Effect
	EffectColor palette.RGB
	Frame       bool

	Shapes       []Shape
	FilterPreset string
}

// New returns a document with the default design.
func New() *Document {
	return &Document{
		Text:        config.DefaultText,
		FontFamily:  config.FontFamily,
		FontStyle:   config.FontStyle,
		FontSize:    config.FontSize,
		TextColor:   palette.RGB{R: config.TextColorR, G: config.TextColorG, B: config.TextColorB},
		Background:  palette.RGB{R: config.BackgroundColorR, G: config.BackgroundColorG, B: config.BackgroundColorB},
		Width:       config.Width,
		Height:      config.Height,
		DPI:         config.DPI,
		Arc:         ArcGeometry{Radius: config.ArcRadius, StartAngle: config.ArcStartAngle, Sweep: config.ArcSweep},
		Effect:      draw.NoEffect,
		EffectColor: palette.RGB{R: config.FrameColorR, G: config.FrameColorG, B: config.FrameColorB},
		Frame:       true,
	}
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	c := *d
	if d.Gradient != nil {
		g := *d.Gradient
		c.Gradient = &g
	}
	c.Shapes = make([]Shape, len(d.Shapes))
	for i, s := range d.Shapes {
		c.Shapes[i] = s.clone()
	}
	return &c
}

// Equal reports whether two documents hold the same design.
func (d *Document) Equal(o *Document) bool {
	if d.Text != o.Text || d.FontFamily != o.FontFamily || d.FontStyle != o.FontStyle ||
		d.FontSize != o.FontSize || d.TextColor != o.TextColor || d.Background != o.Background ||
		d.Width != o.Width || d.Height != o.Height || d.DPI != o.DPI ||
		d.Arc != o.Arc || d.Effect != o.Effect || d.EffectColor != o.EffectColor ||
		d.Frame != o.Frame || d.FilterPreset != o.FilterPreset {
		return false
	}
	if (d.Gradient == nil) != (o.Gradient == nil) {
		return false
	}
	if d.Gradient != nil && *d.Gradient != *o.Gradient {
		return false
	}
	return slices.EqualFunc(d.Shapes, o.Shapes, Shape.equal)
}
