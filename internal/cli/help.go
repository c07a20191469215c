package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpDescStyle    = lipgloss.NewStyle().Italic(true).Foreground(PaintTeal)
	helpSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(PaintTeal).MarginTop(1)
	helpFlagStyle    = lipgloss.NewStyle().Bold(true).Foreground(PaintYellow)
	helpArgStyle     = lipgloss.NewStyle().Bold(true).Foreground(PaintSky)
	helpNoteStyle    = lipgloss.NewStyle().Italic(true).Foreground(CanvasGray)
)

// helpLine is one name/description pair in a help section.
type helpLine struct {
	name string
	help string
	note string // default value or enum choices
}

// StyledHelpPrinter returns a kong help printer in the paint theme. It
// describes the selected command, or the application when none is selected.
func StyledHelpPrinter(kong.HelpOptions) kong.HelpPrinter {
	return func(_ kong.HelpOptions, ctx *kong.Context) error {
		node := ctx.Selected()
		if node == nil {
			node = ctx.Model.Node
		}

		desc := appTagline
		if node != ctx.Model.Node && node.Help != "" {
			desc = node.Help
		}

		var sb strings.Builder
		sb.WriteString(nameStyle.Render(appName) + "\n")
		sb.WriteString(helpDescStyle.Render(desc) + "\n")

		sb.WriteString(helpSectionStyle.Render("Usage:") + "\n")
		sb.WriteString("  " + strings.TrimSpace(ctx.Model.Name+" "+node.Summary()) + "\n")

		writeHelpSection(&sb, "Commands:", helpArgStyle, commandLines(node))
		writeHelpSection(&sb, "Arguments:", helpArgStyle, argumentLines(node))
		writeHelpSection(&sb, "Flags:", helpFlagStyle, flagLines(node))

		fmt.Fprintln(ctx.Stdout, sb.String())
		return nil
	}
}

func writeHelpSection(sb *strings.Builder, title string, style lipgloss.Style, lines []helpLine) {
	if len(lines) == 0 {
		return
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l.name))
	}

	sb.WriteString(helpSectionStyle.Render(title) + "\n")
	for _, l := range lines {
		sb.WriteString("  " + style.Render(l.name))
		sb.WriteString(strings.Repeat(" ", width-len(l.name)+2))
		sb.WriteString(l.help)
		if l.note != "" {
			sb.WriteString(" " + helpNoteStyle.Render("("+l.note+")"))
		}
		sb.WriteString("\n")
	}
}

func commandLines(node *kong.Node) []helpLine {
	var lines []helpLine
	for _, child := range node.Children {
		if child.Hidden || child.Type != kong.CommandNode {
			continue
		}
		lines = append(lines, helpLine{name: child.Name, help: child.Help})
	}
	return lines
}

func argumentLines(node *kong.Node) []helpLine {
	lines := make([]helpLine, 0, len(node.Positional))
	for _, arg := range node.Positional {
		lines = append(lines, helpLine{name: arg.Summary(), help: arg.Help})
	}
	return lines
}

func flagLines(node *kong.Node) []helpLine {
	lines := []helpLine{{name: "-h, --help", help: "Show context-sensitive help."}}
	for _, group := range node.AllFlags(true) {
		for _, f := range group {
			if f.Name == "help" {
				continue
			}
			l := helpLine{name: f.String(), help: f.Help}
			switch {
			case f.Enum != "":
				l.note = strings.Join(f.EnumSlice(), ", ")
			case f.HasDefault && !f.IsBool() && f.Default != "":
				l.note = "default: " + f.Default
			}
			lines = append(lines, l)
		}
	}
	return lines
}
