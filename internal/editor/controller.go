// Package editor translates user intents into document commands.
//
// The Controller is the only writer of a design: every intent becomes a
// document.Command executed through the history, so all changes can be
// undone. It is not safe for concurrent use.
package editor

import (
	"errors"
	"fmt"
	"image"

	"github.com/linuxmatters/magiccanvas/internal/config"
	"github.com/linuxmatters/magiccanvas/internal/document"
	"github.com/linuxmatters/magiccanvas/internal/export"
	"github.com/linuxmatters/magiccanvas/internal/history"
	"github.com/linuxmatters/magiccanvas/internal/logging"
	"github.com/linuxmatters/magiccanvas/internal/renderer"
)

// Fonts supplies faces to the renderer and font names to the editor.
// *fonts.Manager satisfies it.
type Fonts interface {
	renderer.FaceSource
	Families() []string
	Styles(family string) []string
}

// Controller owns one document, its history and a cached render.
type Controller struct {
	history  *history.History[*document.Document]
	renderer *renderer.Renderer
	fonts    Fonts
	cfg      *config.RuntimeConfig

	cached *image.RGBA
}

// New creates a controller with a fresh document. Defaults come from cfg,
// which may be nil.
func New(f Fonts, cfg *config.RuntimeConfig) *Controller {
	if cfg == nil {
		cfg = &config.RuntimeConfig{}
	}
	return &Controller{
		history:  history.New(newDocument(cfg), cfg.GetMaxHistory()),
		renderer: renderer.New(f),
		fonts:    f,
		cfg:      cfg,
	}
}

func newDocument(cfg *config.RuntimeConfig) *document.Document {
	d := document.New()
	d.Text = cfg.GetText()
	d.FontFamily = cfg.GetFontFamily()
	d.FontStyle = cfg.GetFontStyle()
	d.FontSize = cfg.GetFontSize()
	d.TextColor.R, d.TextColor.G, d.TextColor.B = cfg.GetTextColor()
	d.Background.R, d.Background.G, d.Background.B = cfg.GetBackgroundColor()
	d.Width, d.Height = cfg.GetCanvasSize()
	return d
}

// Document returns a copy of the current design.
func (c *Controller) Document() *document.Document {
	return c.history.Target().Clone()
}

// Fonts returns the font source.
func (c *Controller) Fonts() Fonts {
	return c.fonts
}

// Do executes cmd through the history. A failed command changes nothing.
func (c *Controller) Do(cmd document.Command) error {
	if err := c.history.Execute(cmd); err != nil {
		logging.Logger().Debug("editor: command rejected", "command", cmd.Description(), "err", err)
		return err
	}
	logging.Logger().Debug("editor: executed", "command", cmd.Description())
	c.invalidate()
	return nil
}

// Transaction runs fn as one undo step. If fn fails every command it
// executed is reverted.
func (c *Controller) Transaction(name string, fn func() error) error {
	err := c.history.Transaction(name, fn)
	c.invalidate()
	return err
}

// Undo reverts the most recent change.
func (c *Controller) Undo() error {
	if err := c.history.Undo(); err != nil {
		return err
	}
	c.invalidate()
	return nil
}

// Redo reapplies the most recently undone change.
func (c *Controller) Redo() error {
	if err := c.history.Redo(); err != nil {
		return err
	}
	c.invalidate()
	return nil
}

// CanUndo reports whether Undo has anything to revert.
func (c *Controller) CanUndo() bool { return c.history.CanUndo() }

// CanRedo reports whether Redo has anything to reapply.
func (c *Controller) CanRedo() bool { return c.history.CanRedo() }

// HistoryInfo summarises the undo and redo stacks.
func (c *Controller) HistoryInfo() history.Info { return c.history.Info() }

// UndoDescriptions lists the undo stack, newest first.
func (c *Controller) UndoDescriptions() []string { return c.history.UndoDescriptions() }

// RedoDescriptions lists the redo stack, newest first.
func (c *Controller) RedoDescriptions() []string { return c.history.RedoDescriptions() }

// ClearHistory forgets every undo and redo step, keeping the design.
func (c *Controller) ClearHistory() { c.history.Clear() }

func (c *Controller) invalidate() {
	c.cached = nil
}

// Render returns the rendered design. The image is cached until the next
// change and must not be modified by the caller.
func (c *Controller) Render() (*image.RGBA, error) {
	if c.cached != nil {
		return c.cached, nil
	}
	img, err := c.renderer.Render(c.history.Target())
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	c.cached = img
	return img, nil
}

// ExportSettings returns export defaults for the current design: the
// configured JPEG quality and the document DPI.
func (c *Controller) ExportSettings() export.Settings {
	s := export.DefaultSettings()
	s.Quality = c.cfg.GetJPEGQuality()
	s.DPI = c.history.Target().DPI
	return s
}

// Export renders the design and writes it to path. The document is never
// changed, whether or not the export succeeds.
func (c *Controller) Export(path string, s export.Settings) error {
	if path == "" {
		return errors.New("export: no output path")
	}
	img, err := c.Render()
	if err != nil {
		return err
	}
	if err := export.Export(img, path, s); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	logging.Logger().Info("editor: exported design", "path", path)
	return nil
}
