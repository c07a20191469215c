package cli

import "github.com/charmbracelet/lipgloss"

// Paint colour palette 🎨
// Shared theme colours for consistent branding across CLI and TUI
var (
	// Core paint colours
	PaintCoral  = lipgloss.Color("#FF6B6B") // Warm coral
	PaintTeal   = lipgloss.Color("#4ECDC4") // Soft teal
	PaintSky    = lipgloss.Color("#45B7D1") // Sky blue
	PaintYellow = lipgloss.Color("#F7DC6F") // Pale yellow

	// Accent colours
	CanvasGray = lipgloss.Color("#8A8F98") // Neutral gray for subtle text
)
