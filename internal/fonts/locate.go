package fonts

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDirs returns the standard font directories for the running OS.
func DefaultDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Windows\Fonts`,
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Microsoft", "Windows", "Fonts"),
		}
	case "darwin":
		return []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
			filepath.Join(home, "Library", "Fonts"),
		}
	default:
		return []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
		}
	}
}

// defaultFont is a well known system font tried before the embedded fallback.
type defaultFont struct {
	family string
	path   string
}

func defaultFonts() []defaultFont {
	switch runtime.GOOS {
	case "windows":
		base := `C:\Windows\Fonts`
		return []defaultFont{
			{"Arial", filepath.Join(base, "arial.ttf")},
			{"Times New Roman", filepath.Join(base, "times.ttf")},
			{"Courier New", filepath.Join(base, "cour.ttf")},
			{"Verdana", filepath.Join(base, "verdana.ttf")},
		}
	case "darwin":
		return []defaultFont{
			{"Arial", "/System/Library/Fonts/Supplemental/Arial.ttf"},
			{"Helvetica", "/System/Library/Fonts/Helvetica.ttc"},
			{"Times New Roman", "/System/Library/Fonts/Supplemental/Times New Roman.ttf"},
		}
	default:
		return []defaultFont{
			{"DejaVu Sans", "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"},
			{"Liberation Sans", "/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf"},
			{"Liberation Serif", "/usr/share/fonts/truetype/liberation/LiberationSerif-Regular.ttf"},
			{"DejaVu Sans", "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"},
			{"DejaVu Serif", "/usr/share/fonts/truetype/dejavu/DejaVuSerif.ttf"},
		}
	}
}
