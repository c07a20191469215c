package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/linuxmatters/magiccanvas/internal/cli"
	"github.com/linuxmatters/magiccanvas/internal/document"
	"github.com/linuxmatters/magiccanvas/internal/editor"
	"github.com/linuxmatters/magiccanvas/internal/export"
	"github.com/linuxmatters/magiccanvas/internal/filter"
	"github.com/linuxmatters/magiccanvas/internal/ui"
)

// designFlags are shared by render and edit.
type designFlags struct {
	Template string `help:"Start from a design template" placeholder:"name"`
	Preset   string `help:"Canvas size preset" placeholder:"name"`
	Width    int    `help:"Canvas width in pixels"`
	Height   int    `help:"Canvas height in pixels"`
	DPI      int    `help:"Resolution recorded in the exported file"`

	Text       string `short:"t" help:"Banner text"`
	Font       string `help:"Font family" placeholder:"family"`
	Style      string `help:"Font style" placeholder:"style"`
	Size       int    `short:"s" help:"Font size in points"`
	Color      string `short:"c" help:"Text colour" placeholder:"#RRGGBB"`
	Background string `short:"b" help:"Background colour" placeholder:"#RRGGBB"`
	Gradient   string `help:"Background gradient" placeholder:"kind:#from:#to"`

	Radius float64 `help:"Text arc radius" default:"${arc_radius}"`
	Start  float64 `help:"Text arc start angle in degrees" default:"${arc_start}"`
	Sweep  float64 `help:"Text arc sweep in degrees" default:"${arc_sweep}"`

	Effect      string   `help:"Text effect" enum:"none,outline,shadow,glow" default:"none"`
	EffectColor string   `help:"Outline, shadow or glow colour" placeholder:"#RRGGBB"`
	NoFrame     bool     `help:"Omit the decorative frame"`
	Filter      string   `help:"Filter preset" placeholder:"preset"`
	Shape       []string `help:"Add a shape, e.g. circle:100,100,40:#FF6B6B (repeatable)" placeholder:"spec"`
}

// canvasSize merges the width and height flags over the current size.
func (f *designFlags) canvasSize(c *editor.Controller) error {
	d := c.Document()
	w, h := d.Width, d.Height
	if f.Width > 0 {
		w = f.Width
	}
	if f.Height > 0 {
		h = f.Height
	}
	return c.SetCanvasSize(w, h)
}

func (f *designFlags) font(c *editor.Controller) error {
	family := f.Font
	if family == "" {
		family = c.Document().FontFamily
	}
	return c.SetFont(family, f.Style)
}

func (f *designFlags) gradient(c *editor.Controller) error {
	parts := strings.Split(f.Gradient, ":")
	if len(parts) != 3 {
		return fmt.Errorf("--gradient wants kind:#from:#to, got %q", f.Gradient)
	}
	return c.SetGradient(parts[0], parts[1], parts[2])
}

// apply turns the flags into controller intents, in template, canvas, then
// styling order so later flags win.
func (f *designFlags) apply(c *editor.Controller) error {
	steps := []struct {
		set bool
		fn  func() error
	}{
		{f.Template != "", func() error { return c.ApplyTemplate(f.Template) }},
		{f.Preset != "", func() error { return c.ApplyPreset(f.Preset) }},
		{f.Width > 0 || f.Height > 0, func() error { return f.canvasSize(c) }},
		{f.DPI > 0, func() error { return c.SetDPI(f.DPI) }},
		{f.Text != "", func() error { return c.SetText(f.Text) }},
		{f.Font != "" || f.Style != "", func() error { return f.font(c) }},
		{f.Size > 0, func() error { return c.SetFontSize(f.Size) }},
		{f.Color != "", func() error { return c.SetColorHex(editor.TextColor, f.Color) }},
		{f.Background != "", func() error { return c.SetColorHex(editor.BackgroundColor, f.Background) }},
		{f.Gradient != "", func() error { return f.gradient(c) }},
		{true, func() error { return c.SetArc(f.Radius, f.Start, f.Sweep) }},
		{true, func() error { return c.SetEffect(f.Effect) }},
		{f.EffectColor != "", func() error { return c.SetColorHex(editor.EffectColor, f.EffectColor) }},
		{f.NoFrame, c.ToggleFrame},
		{f.Filter != "", func() error { return c.SetFilterPreset(f.Filter) }},
	}

	for _, s := range steps {
		if !s.set {
			continue
		}
		if err := s.fn(); err != nil {
			return err
		}
	}

	for _, spec := range f.Shape {
		shape, err := document.ParseShape(spec)
		if err != nil {
			return err
		}
		if err := c.AddShape(shape); err != nil {
			return err
		}
	}
	return nil
}

type renderCmd struct {
	Output string `arg:"" name:"output" help:"Output image (.png .jpg .gif .tif .bmp)" type:"path"`

	designFlags `embed:""`

	Quality      int      `short:"q" help:"JPEG quality 0-100 (default from config)"`
	ExportPreset string   `help:"Export preset: web, print, high-quality, small-size" placeholder:"name"`
	Also         []string `help:"Also write these formats next to OUTPUT, e.g. jpg,tiff" placeholder:"fmt"`
	Apply        []string `help:"Extra filters applied after rendering, e.g. sharpen,vignette" placeholder:"filter"`
	Thumbnail    bool     `help:"Also write a thumbnail next to OUTPUT"`
	ThumbSize    int      `help:"Thumbnail bounding box in pixels" default:"${thumb_size}"`
}

// settings resolves export settings: controller defaults, then the export
// preset, then an explicit quality. A recognised output extension always
// decides the format; the preset's format only applies to bare paths.
func (r *renderCmd) settings(c *editor.Controller) (export.Settings, error) {
	s := c.ExportSettings()
	if r.ExportPreset != "" {
		p, err := export.PresetByName(r.ExportPreset)
		if err != nil {
			return s, err
		}
		s = p
		if _, err := export.ParseFormat(filepath.Ext(r.Output)); err == nil {
			s.Format = ""
		}
	}
	if r.Quality > 0 {
		s.Quality = r.Quality
	}
	return s, nil
}

func (r *renderCmd) Run(a *app) error {
	c := a.newController()
	if err := r.designFlags.apply(c); err != nil {
		return err
	}

	s, err := r.settings(c)
	if err != nil {
		return err
	}

	img, err := c.Render()
	if err != nil {
		return err
	}

	var out image.Image = img
	if len(r.Apply) > 0 {
		p := filter.NewPipeline()
		for _, name := range r.Apply {
			fn, err := filter.FilterByName(name)
			if err != nil {
				return err
			}
			p.Add(name, fn)
		}
		out = p.Apply(img)
		err = export.Export(out, r.Output, s)
	} else {
		err = c.Export(r.Output, s)
	}
	if err != nil {
		return err
	}

	d := c.Document()
	format := s.Format
	if format == "" {
		format = export.FormatFromPath(r.Output)
	}
	size := "?"
	if info, err := os.Stat(r.Output); err == nil {
		size = cli.FormatBytes(info.Size())
	}
	cli.PrintExportSummary(r.Output, string(format), size, d.Width, d.Height, s.DPI)

	base := strings.TrimSuffix(r.Output, filepath.Ext(r.Output))
	if len(r.Also) > 0 {
		var formats []export.Format
		per := make(map[export.Format]export.Settings)
		for _, name := range r.Also {
			f, err := export.ParseFormat(name)
			if err != nil {
				return err
			}
			formats = append(formats, f)
			per[f] = s
		}
		results := export.Batch(out, base, formats, per)
		for _, f := range formats {
			if err := results[f]; err != nil {
				cli.PrintWarning(fmt.Sprintf("%s: %v", f, err))
				continue
			}
			cli.PrintSuccess(base + f.Extension())
		}
	}

	if r.Thumbnail {
		thumb := export.Thumbnail(out, r.ThumbSize, r.ThumbSize, true)
		path := base + "-thumb.png"
		if err := export.Export(thumb, path, export.DefaultSettings()); err != nil {
			return fmt.Errorf("thumbnail: %w", err)
		}
		cli.PrintSuccess(path)
	}
	return nil
}

type editCmd struct {
	Output string `arg:"" name:"output" optional:"" help:"Suggested export path" type:"path"`

	designFlags `embed:""`
}

func (e *editCmd) Run(a *app) error {
	c := a.newController()
	if err := e.designFlags.apply(c); err != nil {
		return err
	}
	// Flags set the starting point; they are not undo steps.
	c.ClearHistory()
	return ui.Run(c, e.Output)
}
