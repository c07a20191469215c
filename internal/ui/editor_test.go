package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linuxmatters/magiccanvas/internal/config"
	"github.com/linuxmatters/magiccanvas/internal/editor"
	"github.com/linuxmatters/magiccanvas/internal/fonts"
	"golang.org/x/image/font"
)

type embeddedFonts struct{}

func (embeddedFonts) Face(_, style string, size float64) font.Face {
	return fonts.EmbeddedFace(style, size)
}

func (embeddedFonts) Families() []string { return []string{"Go"} }

func (embeddedFonts) Styles(string) []string { return []string{"Regular", "Bold"} }

func newTestModel(t *testing.T) *Model {
	t.Helper()
	w, h := 160, 80
	cfg := &config.RuntimeConfig{Width: &w, Height: &h}
	return NewModel(editor.New(embeddedFonts{}, cfg), filepath.Join(t.TempDir(), "out.png"))
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestEditTextPrompt(t *testing.T) {
	m := newTestModel(t)

	press(m, "e")
	if m.prompt != promptText {
		t.Fatalf("prompt = %v, want text prompt", m.prompt)
	}
	m.input.SetValue("Grand Opening")
	press(m, "enter")

	if m.prompt != promptNone {
		t.Error("prompt should close on enter")
	}
	if got := m.ctrl.Document().Text; got != "Grand Opening" {
		t.Errorf("text = %q", got)
	}

	press(m, "u")
	if got := m.ctrl.Document().Text; got != config.DefaultText {
		t.Errorf("after undo text = %q, want default", got)
	}
	press(m, "U")
	if got := m.ctrl.Document().Text; got != "Grand Opening" {
		t.Errorf("after redo text = %q", got)
	}
}

func TestCancelPrompt(t *testing.T) {
	m := newTestModel(t)

	press(m, "c")
	m.input.SetValue("#000000")
	press(m, "esc")

	if m.ctrl.CanUndo() {
		t.Error("cancelled prompt changed the design")
	}
	if m.status != "Cancelled" {
		t.Errorf("status = %q", m.status)
	}
}

func TestInvalidColourShowsError(t *testing.T) {
	m := newTestModel(t)

	press(m, "b")
	m.input.SetValue("not-a-colour")
	press(m, "enter")

	if !m.statusErr {
		t.Errorf("status %q should be an error", m.status)
	}
	if m.ctrl.CanUndo() {
		t.Error("invalid colour was recorded")
	}
}

func TestFontSizeSlider(t *testing.T) {
	m := newTestModel(t)
	start := m.ctrl.Document().FontSize

	press(m, "+", "+")
	if got := m.ctrl.Document().FontSize; got != start+2*config.SliderStepPt {
		t.Errorf("font size = %d, want %d", got, start+2*config.SliderStepPt)
	}
	if m.slider.Value() != m.ctrl.Document().FontSize {
		t.Error("slider out of sync with document")
	}

	press(m, "u")
	if m.slider.Value() != start+config.SliderStepPt {
		t.Errorf("slider after undo = %d", m.slider.Value())
	}
}

func TestFontSizeSliderBeyondDefaultRange(t *testing.T) {
	m := newTestModel(t)
	if err := m.ctrl.SetFontSize(121); err != nil {
		t.Fatal(err)
	}
	m.syncSlider()
	if m.slider.Value() != 121 {
		t.Fatalf("slider shows %d, want 121", m.slider.Value())
	}

	press(m, "-")
	if got := m.ctrl.Document().FontSize; got != 121-config.SliderStepPt {
		t.Errorf("font size after one step down = %d, want %d", got, 121-config.SliderStepPt)
	}
	if !strings.Contains(m.slider.View(), "119pt") {
		t.Errorf("slider view %q missing the real size", m.slider.View())
	}
}

func TestToggleKeys(t *testing.T) {
	m := newTestModel(t)

	press(m, "r")
	if m.ctrl.Document().Frame {
		t.Error("frame should be off")
	}
	press(m, "x")
	if got := m.ctrl.Document().Effect; got != "outline" {
		t.Errorf("effect = %q", got)
	}
	press(m, "i")
	if got := m.ctrl.Document().FilterPreset; got == "" {
		t.Error("filter key should select a preset")
	}
	if n := m.ctrl.HistoryInfo().UndoCount; n != 3 {
		t.Errorf("undo count = %d, want 3", n)
	}
}

func TestSwatchToText(t *testing.T) {
	m := newTestModel(t)

	press(m, "left", "t")
	want := m.picker.Palette().Color(-1)
	if got := m.ctrl.Document().TextColor; got != want {
		t.Errorf("text colour = %v, want last swatch %v", got, want)
	}

	press(m, "p")
	if m.picker.Index() != 0 || m.picker.Palette().Name() == "Material Red" {
		t.Error("next palette should reset the selection")
	}
}

func TestArcAndGradientPrompts(t *testing.T) {
	m := newTestModel(t)

	press(m, "a")
	m.input.SetValue("120 90 270")
	press(m, "enter")
	if arc := m.ctrl.Document().Arc; arc.Radius != 120 || arc.Sweep != 270 {
		t.Errorf("arc = %+v", arc)
	}

	press(m, "a")
	m.input.SetValue("120 90")
	press(m, "enter")
	if !m.statusErr {
		t.Error("short arc input should fail")
	}

	press(m, "g")
	m.input.SetValue("vertical #000000 #FFFFFF")
	press(m, "enter")
	if g := m.ctrl.Document().Gradient; g == nil || g.Kind != "vertical" {
		t.Fatalf("gradient = %+v", g)
	}
	press(m, "g")
	m.input.SetValue("none")
	press(m, "enter")
	if m.ctrl.Document().Gradient != nil {
		t.Error("none should clear the gradient")
	}
}

func TestExportPrompt(t *testing.T) {
	m := newTestModel(t)
	path := filepath.Join(t.TempDir(), "banner.jpg")

	press(m, "o")
	m.input.SetValue(path)
	press(m, "enter")

	if m.statusErr {
		t.Fatalf("export failed: %s", m.status)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("export not written: %v", err)
	}
	if m.exportPath != path {
		t.Error("export path should be remembered")
	}
}

func TestViewShowsPanels(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})

	out := m.View()
	for _, want := range []string{"MagicCanvas", "Canvas Preview", "Properties", "History", "▀"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	// A second view with no changes reuses the cached preview.
	frame := m.frame
	m.View()
	if m.frame != frame {
		t.Error("preview re-rendered without a change")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
