package document

import (
	"fmt"
	"slices"
	"strings"

	"github.com/linuxmatters/magiccanvas/internal/config"
	"github.com/linuxmatters/magiccanvas/internal/draw"
	"github.com/linuxmatters/magiccanvas/internal/filter"
	"github.com/linuxmatters/magiccanvas/internal/history"
	"github.com/linuxmatters/magiccanvas/internal/palette"
	"github.com/linuxmatters/magiccanvas/internal/preset"
)

// Command is a reversible change to a Document.
type Command = history.Command[*Document]

// setField replaces one property. The previous value is captured on the
// first Apply so redo after undo restores the same pair.
type setField[V any] struct {
	label    string
	value    V
	old      V
	captured bool
	get      func(*Document) V
	set      func(*Document, V)
	validate func(V) error
}

func (c *setField[V]) Apply(d *Document) error {
	if c.validate != nil {
		if err := c.validate(c.value); err != nil {
			return err
		}
	}
	if !c.captured {
		c.old = c.get(d)
		c.captured = true
	}
	c.set(d, c.value)
	return nil
}

func (c *setField[V]) Revert(d *Document) error {
	if !c.captured {
		return nil
	}
	c.set(d, c.old)
	return nil
}

func (c *setField[V]) Description() string {
	return c.label
}

func inRange(name string, lo, hi int) func(int) error {
	return func(v int) error {
		if v < lo || v > hi {
			return fmt.Errorf("%w: %s %d not in [%d, %d]", ErrOutOfRange, name, v, lo, hi)
		}
		return nil
	}
}

// SetText changes the banner text.
func SetText(text string) Command {
	return &setField[string]{
		label: fmt.Sprintf("Text: %q", text),
		value: text,
		get:   func(d *Document) string { return d.Text },
		set:   func(d *Document, v string) { d.Text = v },
	}
}

// SetFontFamily changes the font family.
func SetFontFamily(family string) Command {
	return &setField[string]{
		label: "Font: " + family,
		value: family,
		get:   func(d *Document) string { return d.FontFamily },
		set:   func(d *Document, v string) { d.FontFamily = v },
		validate: func(v string) error {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("%w: empty font family", ErrInvalidValue)
			}
			return nil
		},
	}
}

// SetFontStyle changes the font style.
func SetFontStyle(style string) Command {
	return &setField[string]{
		label: "Font style: " + style,
		value: style,
		get:   func(d *Document) string { return d.FontStyle },
		set:   func(d *Document, v string) { d.FontStyle = v },
	}
}

// SetFontSize changes the point size.
func SetFontSize(size int) Command {
	return &setField[int]{
		label:    fmt.Sprintf("Font size: %dpt", size),
		value:    size,
		get:      func(d *Document) int { return d.FontSize },
		set:      func(d *Document, v int) { d.FontSize = v },
		validate: inRange("font size", config.MinFontSize, config.MaxFontSize),
	}
}

// SetTextColor changes the text colour.
func SetTextColor(c palette.RGB) Command {
	return &setField[palette.RGB]{
		label: "Text color: " + c.Hex(),
		value: c,
		get:   func(d *Document) palette.RGB { return d.TextColor },
		set:   func(d *Document, v palette.RGB) { d.TextColor = v },
	}
}

// SetEffectColor changes the outline, shadow or glow colour.
func SetEffectColor(c palette.RGB) Command {
	return &setField[palette.RGB]{
		label: "Effect color: " + c.Hex(),
		value: c,
		get:   func(d *Document) palette.RGB { return d.EffectColor },
		set:   func(d *Document, v palette.RGB) { d.EffectColor = v },
	}
}

func setBackgroundColor(c palette.RGB) Command {
	return &setField[palette.RGB]{
		label: "Background color: " + c.Hex(),
		value: c,
		get:   func(d *Document) palette.RGB { return d.Background },
		set:   func(d *Document, v palette.RGB) { d.Background = v },
	}
}

// SetBackground sets a solid background, removing any gradient.
func SetBackground(c palette.RGB) Command {
	return history.NewComposite("Background: "+c.Hex(), setBackgroundColor(c), SetGradient(nil))
}

// SetGradient sets or, with nil, clears the background gradient.
func SetGradient(g *Gradient) Command {
	label := "Gradient: none"
	var value *Gradient
	if g != nil {
		cp := *g
		value = &cp
		label = fmt.Sprintf("Gradient: %s %s→%s", g.Kind, g.From.Hex(), g.To.Hex())
	}
	return &setField[*Gradient]{
		label: label,
		value: value,
		get:   func(d *Document) *Gradient { return d.Gradient },
		set:   func(d *Document, v *Gradient) { d.Gradient = v },
		validate: func(v *Gradient) error {
			if v == nil {
				return nil
			}
			if _, err := draw.ParseGradientKind(string(v.Kind)); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidValue, err)
			}
			return nil
		},
	}
}

func setWidth(w int) Command {
	return &setField[int]{
		label:    fmt.Sprintf("Width: %d", w),
		value:    w,
		get:      func(d *Document) int { return d.Width },
		set:      func(d *Document, v int) { d.Width = v },
		validate: inRange("canvas width", config.MinCanvasSide, config.MaxCanvasSide),
	}
}

func setHeight(h int) Command {
	return &setField[int]{
		label:    fmt.Sprintf("Height: %d", h),
		value:    h,
		get:      func(d *Document) int { return d.Height },
		set:      func(d *Document, v int) { d.Height = v },
		validate: inRange("canvas height", config.MinCanvasSide, config.MaxCanvasSide),
	}
}

// SetCanvasSize resizes the canvas as one undo step.
func SetCanvasSize(w, h int) Command {
	return history.NewComposite(fmt.Sprintf("Canvas size: %dx%d", w, h), setWidth(w), setHeight(h))
}

// SetDPI changes the resolution recorded on export.
func SetDPI(dpi int) Command {
	return &setField[int]{
		label:    fmt.Sprintf("DPI: %d", dpi),
		value:    dpi,
		get:      func(d *Document) int { return d.DPI },
		set:      func(d *Document, v int) { d.DPI = v },
		validate: inRange("DPI", 1, 2400),
	}
}

// SetArc changes the text arc geometry. The sweep is clamped to ±360°.
func SetArc(a ArcGeometry) Command {
	a.Sweep = draw.ClampSweep(a.Sweep)
	radius := &setField[float64]{
		label: fmt.Sprintf("Arc radius: %.0f", a.Radius),
		value: a.Radius,
		get:   func(d *Document) float64 { return d.Arc.Radius },
		set:   func(d *Document, v float64) { d.Arc.Radius = v },
		validate: func(v float64) error {
			if v <= 0 {
				return fmt.Errorf("%w: %v", draw.ErrInvalidRadius, v)
			}
			return nil
		},
	}
	start := &setField[float64]{
		label: fmt.Sprintf("Arc start: %.0f°", a.StartAngle),
		value: a.StartAngle,
		get:   func(d *Document) float64 { return d.Arc.StartAngle },
		set:   func(d *Document, v float64) { d.Arc.StartAngle = v },
	}
	sweep := &setField[float64]{
		label: fmt.Sprintf("Arc sweep: %.0f°", a.Sweep),
		value: a.Sweep,
		get:   func(d *Document) float64 { return d.Arc.Sweep },
		set:   func(d *Document, v float64) { d.Arc.Sweep = v },
	}
	return history.NewComposite[*Document]("Arc", radius, start, sweep)
}

// SetEffect changes the text effect.
func SetEffect(e draw.Effect) Command {
	return &setField[draw.Effect]{
		label: "Effect: " + string(e),
		value: e,
		get:   func(d *Document) draw.Effect { return d.Effect },
		set:   func(d *Document, v draw.Effect) { d.Effect = v },
		validate: func(v draw.Effect) error {
			if !slices.Contains(draw.Effects, v) {
				return fmt.Errorf("%w: effect %q", ErrInvalidValue, v)
			}
			return nil
		},
	}
}

// SetFrame toggles the decorative frame.
func SetFrame(on bool) Command {
	label := "Frame: off"
	if on {
		label = "Frame: on"
	}
	return &setField[bool]{
		label: label,
		value: on,
		get:   func(d *Document) bool { return d.Frame },
		set:   func(d *Document, v bool) { d.Frame = v },
	}
}

// SetFilterPreset selects a filter preset by name; empty clears it.
func SetFilterPreset(name string) Command {
	label := "Filter: none"
	if name != "" {
		label = "Filter: " + name
	}
	return &setField[string]{
		label: label,
		value: name,
		get:   func(d *Document) string { return d.FilterPreset },
		set:   func(d *Document, v string) { d.FilterPreset = v },
		validate: func(v string) error {
			if v == "" {
				return nil
			}
			_, err := filter.PresetByName(v)
			return err
		},
	}
}

// ApplyPreset resizes the canvas to a preset and takes its DPI.
func ApplyPreset(p preset.Canvas) Command {
	return history.NewComposite("Preset: "+p.Name, SetCanvasSize(p.Width, p.Height), SetDPI(p.DPI))
}

// ApplyTemplate resizes the canvas to a template and takes its background.
func ApplyTemplate(t preset.Template) Command {
	bg := palette.RGB{R: t.Background.R, G: t.Background.G, B: t.Background.B}
	return history.NewComposite("Template: "+t.Name, SetCanvasSize(t.Width, t.Height), SetBackground(bg))
}
