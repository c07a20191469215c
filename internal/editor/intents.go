package editor

import (
	"fmt"
	"slices"

	"github.com/linuxmatters/magiccanvas/internal/document"
	"github.com/linuxmatters/magiccanvas/internal/draw"
	"github.com/linuxmatters/magiccanvas/internal/palette"
	"github.com/linuxmatters/magiccanvas/internal/preset"
)

// ColorTarget selects which document colour an intent changes.
type ColorTarget int

const (
	TextColor ColorTarget = iota
	BackgroundColor
	EffectColor
)

func (t ColorTarget) String() string {
	switch t {
	case TextColor:
		return "text"
	case BackgroundColor:
		return "background"
	case EffectColor:
		return "effect"
	}
	return fmt.Sprintf("ColorTarget(%d)", int(t))
}

// SetText replaces the banner text.
func (c *Controller) SetText(text string) error {
	return c.Do(document.SetText(text))
}

// SetFont changes family and style as one undo step. An empty style keeps
// the current one.
func (c *Controller) SetFont(family, style string) error {
	return c.Transaction("Font: "+family, func() error {
		if err := c.Do(document.SetFontFamily(family)); err != nil {
			return err
		}
		if style == "" {
			return nil
		}
		return c.Do(document.SetFontStyle(style))
	})
}

// CycleFont moves to the next (delta > 0) or previous installed family.
func (c *Controller) CycleFont(delta int) error {
	families := c.fonts.Families()
	if len(families) == 0 {
		return fmt.Errorf("%w: no fonts installed", document.ErrInvalidValue)
	}
	next := families[0]
	if i := slices.Index(families, c.history.Target().FontFamily); i >= 0 {
		next = families[wrap(i+delta, len(families))]
	}

	style := ""
	if styles := c.fonts.Styles(next); len(styles) > 0 {
		style = styles[0]
		if slices.Contains(styles, c.history.Target().FontStyle) {
			style = c.history.Target().FontStyle
		}
	}
	return c.SetFont(next, style)
}

// SetFontSize changes the point size.
func (c *Controller) SetFontSize(size int) error {
	return c.Do(document.SetFontSize(size))
}

// SetColor sets a document colour.
func (c *Controller) SetColor(target ColorTarget, col palette.RGB) error {
	switch target {
	case TextColor:
		return c.Do(document.SetTextColor(col))
	case BackgroundColor:
		return c.Do(document.SetBackground(col))
	case EffectColor:
		return c.Do(document.SetEffectColor(col))
	}
	return fmt.Errorf("%w: colour target %v", document.ErrInvalidValue, target)
}

// SetColorHex parses hex and sets a document colour. An invalid value
// records nothing.
func (c *Controller) SetColorHex(target ColorTarget, hex string) error {
	col, err := palette.ParseHex(hex)
	if err != nil {
		return err
	}
	return c.SetColor(target, col)
}

// SetGradient sets a two colour background gradient from hex values.
func (c *Controller) SetGradient(kind, fromHex, toHex string) error {
	k, err := draw.ParseGradientKind(kind)
	if err != nil {
		return err
	}
	from, err := palette.ParseHex(fromHex)
	if err != nil {
		return fmt.Errorf("gradient start: %w", err)
	}
	to, err := palette.ParseHex(toHex)
	if err != nil {
		return fmt.Errorf("gradient end: %w", err)
	}
	return c.Do(document.SetGradient(&document.Gradient{Kind: k, From: from, To: to}))
}

// ClearGradient returns to a solid background.
func (c *Controller) ClearGradient() error {
	return c.Do(document.SetGradient(nil))
}

// SetCanvasSize resizes the canvas.
func (c *Controller) SetCanvasSize(w, h int) error {
	return c.Do(document.SetCanvasSize(w, h))
}

// SetDPI changes the export resolution.
func (c *Controller) SetDPI(dpi int) error {
	return c.Do(document.SetDPI(dpi))
}

// ApplyPreset resizes the canvas to a named preset.
func (c *Controller) ApplyPreset(name string) error {
	p, err := preset.CanvasByName(name)
	if err != nil {
		return err
	}
	return c.Do(document.ApplyPreset(p))
}

// ApplyTemplate switches to a named design template.
func (c *Controller) ApplyTemplate(name string) error {
	t, err := preset.TemplateByName(name)
	if err != nil {
		return err
	}
	return c.Do(document.ApplyTemplate(t))
}

// SetArc changes the text arc.
func (c *Controller) SetArc(radius, startAngle, sweep float64) error {
	return c.Do(document.SetArc(document.ArcGeometry{Radius: radius, StartAngle: startAngle, Sweep: sweep}))
}

// SetEffect selects a text effect by name.
func (c *Controller) SetEffect(name string) error {
	e, err := draw.ParseEffect(name)
	if err != nil {
		return err
	}
	return c.Do(document.SetEffect(e))
}

// CycleEffect moves to the next text effect.
func (c *Controller) CycleEffect() error {
	i := slices.Index(draw.Effects, c.history.Target().Effect)
	return c.Do(document.SetEffect(draw.Effects[wrap(i+1, len(draw.Effects))]))
}

// ToggleFrame switches the decorative frame on or off.
func (c *Controller) ToggleFrame() error {
	return c.Do(document.SetFrame(!c.history.Target().Frame))
}

// SetFilterPreset selects a filter preset; empty clears it.
func (c *Controller) SetFilterPreset(name string) error {
	return c.Do(document.SetFilterPreset(name))
}

// AddShape appends a shape.
func (c *Controller) AddShape(s document.Shape) error {
	return c.Do(document.AddShape(s))
}

// RemoveShape deletes the shape at index.
func (c *Controller) RemoveShape(index int) error {
	return c.Do(document.RemoveShape(index))
}

// ApplyPaletteColor sets target to colour index of the named palette.
// The index wraps.
func (c *Controller) ApplyPaletteColor(name string, index int, target ColorTarget) error {
	p, err := palette.ByName(name)
	if err != nil {
		return err
	}
	return c.SetColor(target, p.Color(index))
}

// ApplyHarmony derives an accent from the text colour using h and makes it
// the effect colour. It returns the full harmony.
func (c *Controller) ApplyHarmony(h palette.Harmony) ([]palette.RGB, error) {
	base := c.history.Target().TextColor
	colors, err := palette.Generate(h, base, 5)
	if err != nil {
		return nil, err
	}
	accent := accentOf(colors, base)
	if err := c.SetColor(EffectColor, accent); err != nil {
		return nil, err
	}
	return colors, nil
}

// accentOf picks the first harmony colour that differs from base.
func accentOf(colors []palette.RGB, base palette.RGB) palette.RGB {
	for _, col := range colors {
		if col != base {
			return col
		}
	}
	return base
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
