package ui

import (
	"fmt"
	"strings"

	"github.com/linuxmatters/magiccanvas/internal/document"
	"github.com/linuxmatters/magiccanvas/internal/history"
)

// inspectorView lists the document properties.
func inspectorView(d *document.Document) string {
	var s strings.Builder
	s.WriteString(panelTitleStyle.Render("Properties"))
	s.WriteString("\n")

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(fmt.Sprintf("%-11s", label)))
		s.WriteString(valueStyle.Render(value))
		s.WriteString("\n")
	}

	row("Text", fmt.Sprintf("%q", d.Text))
	row("Font", fmt.Sprintf("%s %s %dpt", d.FontFamily, d.FontStyle, d.FontSize))
	row("Color", swatchCell(d.TextColor.Hex())+" "+d.TextColor.Hex())
	if g := d.Gradient; g != nil {
		row("Background", fmt.Sprintf("%s %s %s→%s", swatchCell(g.From.Hex())+swatchCell(g.To.Hex()), g.Kind, g.From.Hex(), g.To.Hex()))
	} else {
		row("Background", swatchCell(d.Background.Hex())+" "+d.Background.Hex())
	}
	row("Canvas", fmt.Sprintf("%dx%d @ %d DPI", d.Width, d.Height, d.DPI))
	row("Arc", fmt.Sprintf("r=%.0f start=%.0f° sweep=%.0f°", d.Arc.Radius, d.Arc.StartAngle, d.Arc.Sweep))
	row("Effect", fmt.Sprintf("%s %s", d.Effect, swatchCell(d.EffectColor.Hex())))
	frame := "off"
	if d.Frame {
		frame = "on"
	}
	row("Frame", frame)
	filter := d.FilterPreset
	if filter == "" {
		filter = "none"
	}
	row("Filter", filter)
	row("Shapes", fmt.Sprintf("%d", len(d.Shapes)))

	return strings.TrimSuffix(s.String(), "\n")
}

// historyView lists the most recent undo and redo entries, newest first.
func historyView(info history.Info, undo, redo []string, limit int) string {
	var s strings.Builder
	s.WriteString(panelTitleStyle.Render(fmt.Sprintf("History %d/%d", info.UndoCount, info.MaxHistory)))
	s.WriteString("\n")

	if len(undo) == 0 && len(redo) == 0 {
		s.WriteString(faintStyle.Render("No changes yet"))
		return s.String()
	}

	// Redo entries sit above the current state, oldest redo at the top.
	shown := 0
	for i := min(len(redo), limit) - 1; i >= 0; i-- {
		s.WriteString(faintStyle.Render("  ↷ " + redo[i]))
		s.WriteString("\n")
		shown++
	}
	for i, desc := range undo {
		if shown >= limit*2 {
			s.WriteString(faintStyle.Render(fmt.Sprintf("  … %d more", len(undo)-i)))
			s.WriteString("\n")
			break
		}
		prefix := "  "
		if i == 0 {
			prefix = selectedStyle.Render("▶ ")
		}
		s.WriteString(prefix + desc)
		s.WriteString("\n")
		shown++
	}
	return strings.TrimSuffix(s.String(), "\n")
}
