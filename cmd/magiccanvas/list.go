package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/linuxmatters/magiccanvas/internal/cli"
	"github.com/linuxmatters/magiccanvas/internal/export"
	"github.com/linuxmatters/magiccanvas/internal/filter"
	"github.com/linuxmatters/magiccanvas/internal/fonts"
	"github.com/linuxmatters/magiccanvas/internal/palette"
	"github.com/linuxmatters/magiccanvas/internal/preset"
)

type presetsCmd struct {
	Search string  `arg:"" optional:"" help:"Only show presets matching this keyword"`
	Ratio  float64 `help:"Only show presets with this aspect ratio (width/height)"`
}

func (p *presetsCmd) Run(*app) error {
	switch {
	case p.Ratio > 0:
		writeCanvases(fmt.Sprintf("Aspect ratio %.2f", p.Ratio), preset.ByAspectRatio(p.Ratio, 0.02))
	case p.Search != "":
		writeCanvases(fmt.Sprintf("Matching %q", p.Search), preset.Search(p.Search))
	default:
		for _, g := range preset.CanvasesByCategory() {
			writeCanvases(g.Category, g.Items)
		}
	}
	return nil
}

func writeCanvases(title string, canvases []preset.Canvas) {
	rows := make([]cli.Row, len(canvases))
	for i, c := range canvases {
		rows[i] = cli.Row{
			Key:   c.Name,
			Value: fmt.Sprintf("%d×%d @ %d dpi  %s", c.Width, c.Height, c.DPI, c.Description),
		}
	}
	cli.WriteTable(os.Stdout, title, rows)
}

type templatesCmd struct{}

func (templatesCmd) Run(*app) error {
	for _, g := range preset.TemplatesByCategory() {
		rows := make([]cli.Row, len(g.Items))
		for i, t := range g.Items {
			hex := palette.RGB{R: t.Background.R, G: t.Background.G, B: t.Background.B}.Hex()
			rows[i] = cli.Row{
				Key:   t.Name,
				Value: fmt.Sprintf("%s %d×%d  %s", cli.Swatch(hex), t.Width, t.Height, t.Description),
			}
		}
		cli.WriteTable(os.Stdout, g.Category, rows)
	}
	return nil
}

type palettesCmd struct{}

func (palettesCmd) Run(*app) error {
	all := palette.All()
	rows := make([]cli.Row, len(all))
	for i, p := range all {
		rows[i] = cli.Row{Key: p.Name(), Value: swatches(p.Colors())}
	}
	cli.WriteTable(os.Stdout, "Palettes", rows)
	return nil
}

type harmonyCmd struct {
	Color  string `arg:"" help:"Base colour" placeholder:"#RRGGBB"`
	Scheme string `arg:"" optional:"" help:"complementary, analogous, triadic, tetradic or monochromatic (default: all)"`
	Count  int    `help:"Number of monochromatic steps" default:"5"`
}

func (h *harmonyCmd) Run(*app) error {
	base, err := palette.ParseHex(h.Color)
	if err != nil {
		return err
	}

	schemes := palette.Harmonies
	if h.Scheme != "" {
		s, err := palette.ParseHarmony(h.Scheme)
		if err != nil {
			return err
		}
		schemes = []palette.Harmony{s}
	}

	rows := make([]cli.Row, 0, len(schemes))
	for _, s := range schemes {
		colors, err := palette.Generate(s, base, h.Count)
		if err != nil {
			return err
		}
		rows = append(rows, cli.Row{Key: string(s), Value: swatches(colors)})
	}
	cli.WriteTable(os.Stdout, "Harmonies for "+base.Hex(), rows)
	return nil
}

func swatches(colors []palette.RGB) string {
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = cli.Swatch(c.Hex()) + " " + c.Hex()
	}
	return strings.Join(parts, "  ")
}

type fontsCmd struct {
	Search      string `arg:"" optional:"" help:"Only show families containing this text"`
	Recommended string `help:"Show recommended families for a category: serif, sans-serif, monospace, decorative" placeholder:"category"`
}

func (f *fontsCmd) Run(a *app) error {
	n := a.fonts.Scan()

	var families []string
	title := fmt.Sprintf("Fonts (%d files in %s)", n, strings.Join(a.fonts.Dirs(), ", "))
	switch {
	case f.Recommended != "":
		families = a.fonts.Recommended(f.Recommended)
		title = "Recommended " + f.Recommended
	case f.Search != "":
		families = a.fonts.Search(f.Search)
	default:
		families = a.fonts.Families()
	}

	if len(families) == 0 {
		cli.PrintWarning("no matching fonts installed; the embedded Go fonts will be used")
		cli.PrintInfo("Categories", strings.Join(fonts.Categories(), ", "))
		return nil
	}

	rows := make([]cli.Row, len(families))
	for i, fam := range families {
		rows[i] = cli.Row{Key: fam, Value: strings.Join(a.fonts.Styles(fam), ", ")}
	}
	cli.WriteTable(os.Stdout, title, rows)
	return nil
}

type filtersCmd struct{}

func (filtersCmd) Run(*app) error {
	presets := filter.Presets()
	rows := make([]cli.Row, len(presets))
	for i, p := range presets {
		rows[i] = cli.Row{Key: p.Name, Value: p.Description}
	}
	cli.WriteTable(os.Stdout, "Filter presets", rows)

	names := filter.FilterNames()
	cli.WriteTable(os.Stdout, "Filters", []cli.Row{{Key: "--apply", Value: strings.Join(names, ", ")}})

	exp := export.PresetNames()
	cli.WriteTable(os.Stdout, "Export presets", []cli.Row{{Key: "--export-preset", Value: strings.Join(exp, ", ")}})
	return nil
}
