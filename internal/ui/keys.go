package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the editor toolbar.
type keyMap struct {
	EditText    key.Binding
	TextColor   key.Binding
	Background  key.Binding
	Gradient    key.Binding
	NextFont    key.Binding
	PrevFont    key.Binding
	Bigger      key.Binding
	Smaller     key.Binding
	Palette     key.Binding
	SwatchLeft  key.Binding
	SwatchRight key.Binding
	SwatchText  key.Binding
	SwatchBg    key.Binding
	Harmony     key.Binding
	Effect      key.Binding
	Frame       key.Binding
	Filter      key.Binding
	Preset      key.Binding
	Template    key.Binding
	Arc         key.Binding
	Export      key.Binding
	Undo        key.Binding
	Redo        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// inputKeys are active while a prompt is open.
type inputKeys struct {
	Submit key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		EditText:    key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit text")),
		TextColor:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "text colour")),
		Background:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "background")),
		Gradient:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gradient")),
		NextFont:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f/F", "font")),
		PrevFont:    key.NewBinding(key.WithKeys("F")),
		Bigger:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "size")),
		Smaller:     key.NewBinding(key.WithKeys("-", "_")),
		Palette:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next palette")),
		SwatchLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "swatch")),
		SwatchRight: key.NewBinding(key.WithKeys("right", "l")),
		SwatchText:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "swatch → text")),
		SwatchBg:    key.NewBinding(key.WithKeys("B"), key.WithHelp("B", "swatch → background")),
		Harmony:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "harmony accent")),
		Effect:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "effect")),
		Frame:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "frame")),
		Filter:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "filter")),
		Preset:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "canvas preset")),
		Template:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "template")),
		Arc:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "arc")),
		Export:      key.NewBinding(key.WithKeys("o", "ctrl+s"), key.WithHelp("o", "export")),
		Undo:        key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Redo:        key.NewBinding(key.WithKeys("U", "ctrl+y"), key.WithHelp("U", "redo")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func defaultInputKeys() inputKeys {
	return inputKeys{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.EditText, k.TextColor, k.NextFont, k.Bigger, k.Undo, k.Redo, k.Export, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.EditText, k.TextColor, k.Background, k.Gradient, k.Arc},
		{k.NextFont, k.Bigger, k.Effect, k.Frame, k.Filter},
		{k.Palette, k.SwatchLeft, k.SwatchText, k.SwatchBg, k.Harmony},
		{k.Preset, k.Template, k.Export, k.Undo, k.Redo},
		{k.Help, k.Quit},
	}
}

// ShortHelp implements help.KeyMap.
func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
