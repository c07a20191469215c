package ui

import (
	"errors"
	"fmt"
	"image"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/linuxmatters/magiccanvas/internal/cli"
	"github.com/linuxmatters/magiccanvas/internal/config"
	"github.com/linuxmatters/magiccanvas/internal/editor"
	"github.com/linuxmatters/magiccanvas/internal/filter"
	"github.com/linuxmatters/magiccanvas/internal/history"
	"github.com/linuxmatters/magiccanvas/internal/palette"
	"github.com/linuxmatters/magiccanvas/internal/renderer"
)

// prompt identifies what the text input is editing.
type prompt int

const (
	promptNone prompt = iota
	promptText
	promptTextColor
	promptBackground
	promptGradient
	promptPreset
	promptTemplate
	promptArc
	promptExport
)

var promptLabels = map[prompt]string{
	promptText:       "Text: ",
	promptTextColor:  "Text colour (#RRGGBB): ",
	promptBackground: "Background (#RRGGBB): ",
	promptGradient:   "Gradient (kind from to, or none): ",
	promptPreset:     "Canvas preset: ",
	promptTemplate:   "Template: ",
	promptArc:        "Arc (radius start sweep): ",
	promptExport:     "Export to: ",
}

// Model is the interactive editor. It drives an editor.Controller from key
// presses and shows a live truecolor preview of the design.
type Model struct {
	ctrl *editor.Controller

	keys      keyMap
	inputKeys inputKeys
	help      help.Model
	input     textinput.Model
	prompt    prompt

	picker  ColorPicker
	slider  Slider
	harmony int

	status    string
	statusErr bool

	exportPath string

	// Preview cache
	width       int
	height      int
	frame       *image.RGBA
	previewSize PreviewConfig
	preview     string
}

// NewModel creates the editor UI. exportPath is the suggested output file.
func NewModel(ctrl *editor.Controller, exportPath string) *Model {
	in := textinput.New()
	in.CharLimit = 256
	in.Width = 48
	in.PromptStyle = selectedStyle

	if exportPath == "" {
		exportPath = "design" + config.DefaultExtension
	}

	m := &Model{
		ctrl:       ctrl,
		keys:       defaultKeyMap(),
		inputKeys:  defaultInputKeys(),
		help:       help.New(),
		input:      in,
		picker:     NewColorPicker(),
		slider:     NewSlider("Size", config.MinFontSize, config.MaxFontSize, config.SliderStepPt, config.FontSize),
		status:     "Ready",
		exportPath: exportPath,
	}
	m.syncSlider()
	return m
}

// Run starts the editor in the terminal's alternate screen.
func Run(ctrl *editor.Controller, exportPath string) error {
	_, err := tea.NewProgram(NewModel(ctrl, exportPath), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.frame = nil
		return m, nil

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.ctrl.Document()
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, k.EditText):
		return m, m.openPrompt(promptText, d.Text)
	case key.Matches(msg, k.TextColor):
		return m, m.openPrompt(promptTextColor, d.TextColor.Hex())
	case key.Matches(msg, k.Background):
		return m, m.openPrompt(promptBackground, d.Background.Hex())
	case key.Matches(msg, k.Gradient):
		value := "horizontal " + d.Background.Hex() + " " + d.TextColor.Hex()
		if g := d.Gradient; g != nil {
			value = fmt.Sprintf("%s %s %s", g.Kind, g.From.Hex(), g.To.Hex())
		}
		return m, m.openPrompt(promptGradient, value)
	case key.Matches(msg, k.Preset):
		return m, m.openPrompt(promptPreset, "")
	case key.Matches(msg, k.Template):
		return m, m.openPrompt(promptTemplate, "")
	case key.Matches(msg, k.Arc):
		return m, m.openPrompt(promptArc, fmt.Sprintf("%g %g %g", d.Arc.Radius, d.Arc.StartAngle, d.Arc.Sweep))
	case key.Matches(msg, k.Export):
		return m, m.openPrompt(promptExport, m.exportPath)

	case key.Matches(msg, k.NextFont):
		m.report(m.ctrl.CycleFont(1), "Font changed")
	case key.Matches(msg, k.PrevFont):
		m.report(m.ctrl.CycleFont(-1), "Font changed")
	case key.Matches(msg, k.Bigger):
		if m.slider.Increment() {
			m.report(m.ctrl.SetFontSize(m.slider.Value()), fmt.Sprintf("Font size %dpt", m.slider.Value()))
		}
	case key.Matches(msg, k.Smaller):
		if m.slider.Decrement() {
			m.report(m.ctrl.SetFontSize(m.slider.Value()), fmt.Sprintf("Font size %dpt", m.slider.Value()))
		}

	case key.Matches(msg, k.Palette):
		m.picker.NextPalette(1)
	case key.Matches(msg, k.SwatchLeft):
		m.picker.Move(-1)
	case key.Matches(msg, k.SwatchRight):
		m.picker.Move(1)
	case key.Matches(msg, k.SwatchText):
		m.report(m.ctrl.ApplyPaletteColor(m.picker.Palette().Name(), m.picker.Index(), editor.TextColor),
			"Text colour "+m.picker.Selected().Hex())
	case key.Matches(msg, k.SwatchBg):
		m.report(m.ctrl.ApplyPaletteColor(m.picker.Palette().Name(), m.picker.Index(), editor.BackgroundColor),
			"Background "+m.picker.Selected().Hex())
	case key.Matches(msg, k.Harmony):
		h := palette.Harmonies[m.harmony]
		m.harmony = wrapIndex(m.harmony+1, len(palette.Harmonies))
		_, err := m.ctrl.ApplyHarmony(h)
		m.report(err, fmt.Sprintf("Accent from %s harmony", h))

	case key.Matches(msg, k.Effect):
		err := m.ctrl.CycleEffect()
		m.report(err, fmt.Sprintf("Effect %s", m.ctrl.Document().Effect))
	case key.Matches(msg, k.Frame):
		m.report(m.ctrl.ToggleFrame(), "Frame toggled")
	case key.Matches(msg, k.Filter):
		next := nextFilter(d.FilterPreset)
		label := next
		if label == "" {
			label = "none"
		}
		m.report(m.ctrl.SetFilterPreset(next), "Filter "+label)

	case key.Matches(msg, k.Undo):
		m.undoRedo(m.ctrl.Undo, "Undo", history.ErrNothingToUndo)
	case key.Matches(msg, k.Redo):
		m.undoRedo(m.ctrl.Redo, "Redo", history.ErrNothingToRedo)
	}

	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.inputKeys.Cancel):
		m.closePrompt()
		m.setStatus("Cancelled", false)
		return m, nil

	case key.Matches(msg, m.inputKeys.Submit):
		p, value := m.prompt, m.input.Value()
		m.closePrompt()
		m.submit(p, value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) openPrompt(p prompt, value string) tea.Cmd {
	m.prompt = p
	m.input.Prompt = promptLabels[p]
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
	m.input.Reset()
}

// submit applies the value typed into prompt p.
func (m *Model) submit(p prompt, value string) {
	trimmed := strings.TrimSpace(value)

	switch p {
	case promptText:
		m.report(m.ctrl.SetText(value), "Text updated")
	case promptTextColor:
		m.report(m.ctrl.SetColorHex(editor.TextColor, trimmed), "Text colour "+strings.ToUpper(trimmed))
	case promptBackground:
		m.report(m.ctrl.SetColorHex(editor.BackgroundColor, trimmed), "Background "+strings.ToUpper(trimmed))
	case promptGradient:
		m.report(m.submitGradient(trimmed), "Background gradient updated")
	case promptPreset:
		m.report(m.ctrl.ApplyPreset(trimmed), "Canvas preset "+trimmed)
	case promptTemplate:
		m.report(m.ctrl.ApplyTemplate(trimmed), "Template "+trimmed)
	case promptArc:
		m.report(m.submitArc(trimmed), "Arc updated")
	case promptExport:
		m.export(trimmed)
	}
}

func (m *Model) submitGradient(value string) error {
	fields := strings.Fields(value)
	switch {
	case len(fields) == 0 || (len(fields) == 1 && strings.EqualFold(fields[0], "none")):
		return m.ctrl.ClearGradient()
	case len(fields) == 3:
		return m.ctrl.SetGradient(fields[0], fields[1], fields[2])
	}
	return errors.New("gradient needs: kind from to")
}

func (m *Model) submitArc(value string) error {
	fields := strings.Fields(value)
	if len(fields) != 3 {
		return errors.New("arc needs: radius start sweep")
	}
	var nums [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fmt.Errorf("arc value %q: %w", f, err)
		}
		nums[i] = v
	}
	return m.ctrl.SetArc(nums[0], nums[1], nums[2])
}

func (m *Model) export(path string) {
	if err := m.ctrl.Export(path, m.ctrl.ExportSettings()); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.exportPath = path
	msg := "Exported " + path
	if info, err := os.Stat(path); err == nil {
		msg += " (" + cli.FormatBytes(info.Size()) + ")"
	}
	m.setStatus(msg, false)
}

func (m *Model) undoRedo(fn func() error, verb string, empty error) {
	if err := fn(); err != nil {
		if errors.Is(err, empty) {
			m.setStatus(err.Error(), false)
			return
		}
		m.setStatus(err.Error(), true)
		return
	}
	m.syncSlider()
	m.setStatus(verb, false)
}

// report shows err, or ok when the intent succeeded.
func (m *Model) report(err error, ok string) {
	m.syncSlider()
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(ok, false)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *Model) syncSlider() {
	m.slider.SetValue(m.ctrl.Document().FontSize)
}

// nextFilter cycles none → each filter preset → none.
func nextFilter(current string) string {
	names := append([]string{""}, filter.PresetNames()...)
	i := slices.Index(names, current)
	return names[wrapIndex(i+1, len(names))]
}

// View renders the UI
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("MagicCanvas 🎨"))
	s.WriteString("\n\n")

	side := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(inspectorView(m.ctrl.Document())+"\n\n"+m.slider.View()),
		panelStyle.Render(m.picker.View()),
		panelStyle.Render(historyView(m.ctrl.HistoryInfo(), m.ctrl.UndoDescriptions(), m.ctrl.RedoDescriptions(), 5)),
	)
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.previewView(lipgloss.Width(side)), "  ", side))
	s.WriteString("\n\n")

	if m.statusErr {
		s.WriteString(errorStyle.Render("✗ " + m.status))
	} else {
		s.WriteString(okStyle.Render("● " + m.status))
	}
	s.WriteString("\n")

	if m.prompt != promptNone {
		s.WriteString(m.input.View())
		s.WriteString("\n")
		s.WriteString(m.help.View(m.inputKeys))
	} else {
		s.WriteString(m.help.View(m.keys))
	}

	return appStyle.Render(s.String())
}

// previewView renders the design, reusing the cached preview while neither
// the design nor the terminal size has changed.
func (m *Model) previewView(sideWidth int) string {
	frame, err := m.ctrl.Render()
	if err != nil {
		return errorStyle.Render("Render failed: " + err.Error())
	}

	maxCols, maxRows := config.PreviewWidth, config.PreviewHeight
	if m.width > 0 {
		maxCols = max(16, m.width-sideWidth-8)
		maxRows = max(4, m.height-12)
	}
	b := frame.Bounds()
	size := FitPreview(b.Dx(), b.Dy(), maxCols, maxRows)

	if frame != m.frame || size != m.previewSize {
		// Pre-scale large canvases so averaging touches a bounded number of pixels.
		src := renderer.Scale(frame, size.Width*4, size.Height*8)
		m.preview = RenderPreview(DownsampleFrame(src, size))
		m.frame = frame
		m.previewSize = size
	}

	return panelTitleStyle.Render("Canvas Preview") + "\n" + m.preview
}
