package export

import (
	"fmt"
	"image/png"
	"slices"
	"strings"

	"github.com/linuxmatters/magiccanvas/internal/config"
)

// Settings control how an image is written.
type Settings struct {
	Format      Format // empty: taken from the file extension
	Quality     int    // JPEG quality 0-100
	Compression int    // PNG compression 0-9
	DPI         int    // resolution metadata; 0 writes none
}

// DefaultSettings returns print-ready defaults.
func DefaultSettings() Settings {
	return Settings{
		Quality:     config.JPEGQuality,
		Compression: config.PNGCompression,
		DPI:         config.ExportDPI,
	}
}

func (s Settings) jpegQuality() int {
	return max(0, min(100, s.Quality))
}

// pngLevel maps 0-9 onto the levels image/png offers.
func (s Settings) pngLevel() png.CompressionLevel {
	switch c := max(0, min(9, s.Compression)); {
	case c == 0:
		return png.NoCompression
	case c <= 3:
		return png.BestSpeed
	case c <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

// Presets
const (
	PresetWeb         = "web"
	PresetPrint       = "print"
	PresetHighQuality = "high-quality"
	PresetSmallSize   = "small-size"
)

var presets = map[string]Settings{
	PresetWeb:         {Format: JPEG, Quality: 85, Compression: config.PNGCompression, DPI: config.ExportDPI},
	PresetPrint:       {Format: PNG, Quality: config.JPEGQuality, Compression: config.PNGCompression, DPI: 300},
	PresetHighQuality: {Format: PNG, Quality: config.JPEGQuality, Compression: 3, DPI: config.ExportDPI},
	PresetSmallSize:   {Format: JPEG, Quality: 70, Compression: config.PNGCompression, DPI: config.ExportDPI},
}

// PresetNames lists the export presets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PresetByName returns an export preset. Underscores match dashes.
func PresetByName(name string) (Settings, error) {
	key := strings.ReplaceAll(strings.ToLower(name), "_", "-")
	s, ok := presets[key]
	if !ok {
		return Settings{}, fmt.Errorf("unknown export preset %q", name)
	}
	return s, nil
}
