package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidHexColor is returned for anything that is not a six digit hex colour.
var ErrInvalidHexColor = errors.New("invalid hex colour")

// ParseHexColor parses "RRGGBB" or "#RRGGBB" (case-insensitive).
func ParseHexColor(s string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}

	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// FormatHexColor renders a colour as "#RRGGBB".
func FormatHexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// RuntimeConfig holds user overrides read from a YAML file.
// Zero values mean "use the compiled default"; the Get* accessors apply that rule.
type RuntimeConfig struct {
	Text            string   `yaml:"text"`
	FontFamily      string   `yaml:"font_family"`
	FontStyle       string   `yaml:"font_style"`
	FontSize        *int     `yaml:"font_size"`
	TextColor       string   `yaml:"text_color"`
	BackgroundColor string   `yaml:"background_color"`
	Width           *int     `yaml:"width"`
	Height          *int     `yaml:"height"`
	MaxHistory      *int     `yaml:"max_history"`
	JPEGQuality     *int     `yaml:"jpeg_quality"`
	FontDirs        []string `yaml:"font_dirs"`
}

// Load reads a RuntimeConfig from path. An empty path yields an empty config.
func Load(path string) (*RuntimeConfig, error) {
	if path == "" {
		return &RuntimeConfig{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	var cfg RuntimeConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate rejects overrides that could never be applied.
func (c *RuntimeConfig) Validate() error {
	if c.TextColor != "" {
		if _, _, _, err := ParseHexColor(c.TextColor); err != nil {
			return fmt.Errorf("text_color: %w", err)
		}
	}
	if c.BackgroundColor != "" {
		if _, _, _, err := ParseHexColor(c.BackgroundColor); err != nil {
			return fmt.Errorf("background_color: %w", err)
		}
	}
	if c.FontSize != nil && (*c.FontSize < MinFontSize || *c.FontSize > MaxFontSize) {
		return fmt.Errorf("font_size %d out of range %d-%d", *c.FontSize, MinFontSize, MaxFontSize)
	}
	for _, side := range []struct {
		name string
		v    *int
	}{{"width", c.Width}, {"height", c.Height}} {
		if side.v != nil && (*side.v < MinCanvasSide || *side.v > MaxCanvasSide) {
			return fmt.Errorf("%s %d out of range %d-%d", side.name, *side.v, MinCanvasSide, MaxCanvasSide)
		}
	}
	if c.JPEGQuality != nil && (*c.JPEGQuality < 0 || *c.JPEGQuality > 100) {
		return fmt.Errorf("jpeg_quality %d out of range 0-100", *c.JPEGQuality)
	}
	return nil
}

// GetText returns the banner text override or the default.
func (c *RuntimeConfig) GetText() string {
	if c.Text != "" {
		return c.Text
	}
	return DefaultText
}

// GetFontFamily returns the font family override or the default.
func (c *RuntimeConfig) GetFontFamily() string {
	if c.FontFamily != "" {
		return c.FontFamily
	}
	return FontFamily
}

// GetFontStyle returns the font style override or the default.
func (c *RuntimeConfig) GetFontStyle() string {
	if c.FontStyle != "" {
		return c.FontStyle
	}
	return FontStyle
}

// GetFontSize returns the font size override or the default.
func (c *RuntimeConfig) GetFontSize() int {
	if c.FontSize != nil {
		return *c.FontSize
	}
	return FontSize
}

// GetTextColor returns the text colour override or the default.
func (c *RuntimeConfig) GetTextColor() (uint8, uint8, uint8) {
	if r, g, b, err := ParseHexColor(c.TextColor); err == nil {
		return r, g, b
	}
	return TextColorR, TextColorG, TextColorB
}

// GetBackgroundColor returns the background colour override or the default.
func (c *RuntimeConfig) GetBackgroundColor() (uint8, uint8, uint8) {
	if r, g, b, err := ParseHexColor(c.BackgroundColor); err == nil {
		return r, g, b
	}
	return BackgroundColorR, BackgroundColorG, BackgroundColorB
}

// GetCanvasSize returns the canvas size override. Both dimensions must be set,
// otherwise the default size is returned.
func (c *RuntimeConfig) GetCanvasSize() (int, int) {
	if c.Width != nil && c.Height != nil {
		return *c.Width, *c.Height
	}
	return Width, Height
}

// GetMaxHistory returns the history bound override or the default.
func (c *RuntimeConfig) GetMaxHistory() int {
	if c.MaxHistory != nil && *c.MaxHistory > 0 {
		return *c.MaxHistory
	}
	return MaxHistory
}

// GetJPEGQuality returns the JPEG quality override or the default.
func (c *RuntimeConfig) GetJPEGQuality() int {
	if c.JPEGQuality != nil {
		return *c.JPEGQuality
	}
	return JPEGQuality
}

// GetFontDirs returns extra font directories to scan. Nil means OS defaults only.
func (c *RuntimeConfig) GetFontDirs() []string {
	return c.FontDirs
}
