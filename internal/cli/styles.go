package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	appName    = "MagicCanvas 🎨"
	appTagline = "Design banners and social graphics from your terminal: arc text, palettes, presets and filters."
)

var (
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(PaintCoral)
	taglineStyle = lipgloss.NewStyle().Italic(true).Foreground(CanvasGray)

	// HeaderStyle titles a listing table.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(PaintTeal).MarginTop(1)
	// KeyStyle is used for the left column of tables and summaries.
	KeyStyle = lipgloss.NewStyle().Foreground(CanvasGray)
	// ValueStyle is used for the right column of summaries.
	ValueStyle = lipgloss.NewStyle().Bold(true)

	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PaintTeal).
			Padding(1, 2).
			MarginTop(1)
)

// Status line markers
var (
	markOK    = lipgloss.NewStyle().Bold(true).Foreground(PaintTeal).Render("✓")
	markWarn  = lipgloss.NewStyle().Bold(true).Foreground(PaintYellow).Render("!")
	markError = lipgloss.NewStyle().Bold(true).Foreground(PaintCoral).Render("✗")
)

func status(w io.Writer, mark, message string) {
	fmt.Fprintf(w, "%s %s\n", mark, message)
}

// PrintVersion prints the application name and version.
func PrintVersion(version string) {
	fmt.Println(nameStyle.Render(appName))
	fmt.Println(taglineStyle.Render(appTagline))
	fmt.Printf("%s %s\n", KeyStyle.Render("version"), ValueStyle.Render(version))
}

// PrintError writes message to stderr.
func PrintError(message string) { status(os.Stderr, markError, message) }

// PrintWarning writes message to stdout.
func PrintWarning(message string) { status(os.Stdout, markWarn, message) }

// PrintSuccess writes message to stdout.
func PrintSuccess(message string) { status(os.Stdout, markOK, message) }

// PrintInfo writes a single key: value line.
func PrintInfo(key, value string) {
	fmt.Printf("%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// FormatBytes renders a byte count with a binary unit, e.g. 1.5 KB.
func FormatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	v := float64(n) / 1024
	units := "KMGTPE"
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %cB", v, units[i])
}

// Swatch renders a two cell colour sample.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

// Row is one line of a listing table.
type Row struct {
	Key   string
	Value string
}

func renderRows(rows []Row, valueStyle lipgloss.Style) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.Key))
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		pad := strings.Repeat(" ", width-lipgloss.Width(r.Key))
		lines[i] = KeyStyle.Render(r.Key) + pad + "  " + valueStyle.Render(r.Value)
	}
	return strings.Join(lines, "\n")
}

// WriteTable writes rows as aligned key/value pairs under a section title.
func WriteTable(w io.Writer, title string, rows []Row) {
	fmt.Fprintln(w, HeaderStyle.Render(title))
	for _, line := range strings.Split(renderRows(rows, lipgloss.NewStyle()), "\n") {
		fmt.Fprintln(w, "  "+line)
	}
}

// PrintExportSummary prints the result of an export in a box.
func PrintExportSummary(path, format, size string, width, height, dpi int) {
	body := renderRows([]Row{
		{"Output", path},
		{"Format", format},
		{"Canvas", fmt.Sprintf("%d×%d @ %d dpi", width, height, dpi)},
		{"Size", size},
	}, ValueStyle)
	fmt.Println(summaryStyle.Render(markOK + " Exported\n\n" + body))
}
