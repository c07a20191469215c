package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/linuxmatters/magiccanvas/internal/cli"
	"github.com/linuxmatters/magiccanvas/internal/config"
	"github.com/linuxmatters/magiccanvas/internal/editor"
	"github.com/linuxmatters/magiccanvas/internal/fonts"
	"github.com/linuxmatters/magiccanvas/internal/logging"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

// versionFlag prints the styled version banner and exits.
type versionFlag bool

func (versionFlag) BeforeApply(app *kong.Kong) error {
	cli.PrintVersion(version)
	app.Exit(0)
	return nil
}

var CLI struct {
	Config  string      `help:"YAML file overriding the built-in defaults" type:"existingfile" placeholder:"file"`
	Verbose bool        `short:"v" help:"Log debug output to stderr"`
	Version versionFlag `help:"Show version information"`

	Render    renderCmd    `cmd:"" help:"Render a design from flags and export it."`
	Edit      editCmd      `cmd:"" help:"Open the interactive terminal editor."`
	Presets   presetsCmd   `cmd:"" help:"List canvas size presets."`
	Templates templatesCmd `cmd:"" help:"List design templates."`
	Palettes  palettesCmd  `cmd:"" help:"List colour palettes."`
	Harmony   harmonyCmd   `cmd:"" help:"Show a colour harmony for a base colour."`
	Fonts     fontsCmd     `cmd:"" help:"List installed font families."`
	Filters   filtersCmd   `cmd:"" help:"List image filters and filter presets."`
}

// app carries what every command needs.
type app struct {
	cfg   *config.RuntimeConfig
	fonts *fonts.Manager
}

// newController scans fonts and creates an editor controller.
func (a *app) newController() *editor.Controller {
	n := a.fonts.Scan()
	logging.Logger().Debug("fonts scanned", "count", n)
	return editor.New(a.fonts, a.cfg)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("magiccanvas"),
		kong.Description("Design banners and social graphics from your terminal."),
		kong.Vars{
			"version":    version,
			"arc_radius": fmt.Sprint(config.ArcRadius),
			"arc_start":  fmt.Sprint(config.ArcStartAngle),
			"arc_sweep":  fmt.Sprint(config.ArcSweep),
			"thumb_size": fmt.Sprint(config.ThumbnailSize),
		},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if CLI.Verbose {
		logging.SetLogger(logging.NewTextLogger(os.Stderr, slog.LevelDebug))
	}

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	dirs := append(fonts.DefaultDirs(), cfg.GetFontDirs()...)
	a := &app{cfg: cfg, fonts: fonts.NewManager(dirs...)}

	if err := ctx.Run(a); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
