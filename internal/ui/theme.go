package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/linuxmatters/magiccanvas/internal/cli"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PaintCoral)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PaintTeal)

	labelStyle = lipgloss.NewStyle().Foreground(cli.CanvasGray)
	valueStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PaintYellow)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PaintCoral)

	okStyle = lipgloss.NewStyle().Foreground(cli.PaintTeal)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(cli.PaintSky).
			Padding(0, 1)

	appStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(cli.PaintCoral).
			Padding(0, 1)
)

// swatchCell renders a colour block two cells wide.
func swatchCell(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
