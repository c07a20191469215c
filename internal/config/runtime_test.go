package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestParseHexColor_SentinelError verifies callers can branch on ErrInvalidHexColor.
func TestParseHexColor_SentinelError(t *testing.T) {
	_, _, _, err := ParseHexColor("#12345G")
	if !errors.Is(err, ErrInvalidHexColor) {
		t.Fatalf("ParseHexColor error = %v, want ErrInvalidHexColor", err)
	}
}

func TestFormatHexColor_RoundTrip(t *testing.T) {
	for _, in := range []string{"#000000", "#FFFFFF", "#4ECDC4", "#FF6B6B"} {
		r, g, b, err := ParseHexColor(in)
		if err != nil {
			t.Fatalf("ParseHexColor(%q): %v", in, err)
		}
		if got := FormatHexColor(r, g, b); got != in {
			t.Errorf("FormatHexColor(ParseHexColor(%q)) = %q", in, got)
		}
	}
}

// TestRuntimeConfig_NilFields verifies that Get*() methods return defaults
// when optional fields are nil or empty.
func TestRuntimeConfig_NilFields(t *testing.T) {
	tests := []struct {
		name     string
		config   *RuntimeConfig
		validate func(t *testing.T, c *RuntimeConfig)
	}{
		{
			name:   "Completely empty config",
			config: &RuntimeConfig{},
			validate: func(t *testing.T, c *RuntimeConfig) {
				if got := c.GetText(); got != DefaultText {
					t.Errorf("GetText() = %q, want %q", got, DefaultText)
				}
				if got := c.GetFontSize(); got != FontSize {
					t.Errorf("GetFontSize() = %d, want %d", got, FontSize)
				}
				r, g, b := c.GetTextColor()
				if r != TextColorR || g != TextColorG || b != TextColorB {
					t.Errorf("GetTextColor() = (%d, %d, %d), want defaults", r, g, b)
				}
				r, g, b = c.GetBackgroundColor()
				if r != BackgroundColorR || g != BackgroundColorG || b != BackgroundColorB {
					t.Errorf("GetBackgroundColor() = (%d, %d, %d), want defaults", r, g, b)
				}
				w, h := c.GetCanvasSize()
				if w != Width || h != Height {
					t.Errorf("GetCanvasSize() = (%d, %d), want (%d, %d)", w, h, Width, Height)
				}
				if got := c.GetMaxHistory(); got != MaxHistory {
					t.Errorf("GetMaxHistory() = %d, want %d", got, MaxHistory)
				}
				if got := c.GetJPEGQuality(); got != JPEGQuality {
					t.Errorf("GetJPEGQuality() = %d, want %d", got, JPEGQuality)
				}
			},
		},
		{
			name:   "Width without height",
			config: &RuntimeConfig{Width: ptrInt(1080)},
			validate: func(t *testing.T, c *RuntimeConfig) {
				w, h := c.GetCanvasSize()
				if w != Width || h != Height {
					t.Errorf("partial canvas size = (%d, %d), want defaults", w, h)
				}
			},
		},
		{
			name:   "Non-positive max history",
			config: &RuntimeConfig{MaxHistory: ptrInt(0)},
			validate: func(t *testing.T, c *RuntimeConfig) {
				if got := c.GetMaxHistory(); got != MaxHistory {
					t.Errorf("GetMaxHistory() = %d, want %d", got, MaxHistory)
				}
			},
		},
		{
			name: "All fields set - should use overrides",
			config: &RuntimeConfig{
				Text:            "HELLO",
				FontFamily:      "Liberation Serif",
				FontStyle:       "Italic",
				FontSize:        ptrInt(64),
				TextColor:       "#102030",
				BackgroundColor: "405060",
				Width:           ptrInt(1080),
				Height:          ptrInt(1920),
				MaxHistory:      ptrInt(5),
				JPEGQuality:     ptrInt(70),
			},
			validate: func(t *testing.T, c *RuntimeConfig) {
				if c.GetText() != "HELLO" || c.GetFontFamily() != "Liberation Serif" || c.GetFontStyle() != "Italic" {
					t.Errorf("text/font overrides not applied: %q %q %q", c.GetText(), c.GetFontFamily(), c.GetFontStyle())
				}
				if c.GetFontSize() != 64 {
					t.Errorf("GetFontSize() = %d, want 64", c.GetFontSize())
				}
				r, g, b := c.GetTextColor()
				if r != 0x10 || g != 0x20 || b != 0x30 {
					t.Errorf("GetTextColor() = (%d, %d, %d), want (16, 32, 48)", r, g, b)
				}
				r, g, b = c.GetBackgroundColor()
				if r != 0x40 || g != 0x50 || b != 0x60 {
					t.Errorf("GetBackgroundColor() = (%d, %d, %d), want (64, 80, 96)", r, g, b)
				}
				w, h := c.GetCanvasSize()
				if w != 1080 || h != 1920 {
					t.Errorf("GetCanvasSize() = (%d, %d), want (1080, 1920)", w, h)
				}
				if c.GetMaxHistory() != 5 || c.GetJPEGQuality() != 70 {
					t.Errorf("history/quality overrides not applied: %d %d", c.GetMaxHistory(), c.GetJPEGQuality())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.config)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	write := func(t *testing.T, name, body string) string {
		t.Helper()
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load(\"\") error: %v", err)
		}
		if cfg.GetText() != DefaultText {
			t.Errorf("GetText() = %q, want default", cfg.GetText())
		}
	})

	t.Run("valid file", func(t *testing.T) {
		p := write(t, "ok.yaml", "text: Summer Sale\nfont_size: 60\ntext_color: \"#112233\"\nwidth: 1200\nheight: 630\nfont_dirs:\n  - /opt/fonts\n")
		cfg, err := Load(p)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.GetText() != "Summer Sale" || cfg.GetFontSize() != 60 {
			t.Errorf("unexpected values: %q %d", cfg.GetText(), cfg.GetFontSize())
		}
		if w, h := cfg.GetCanvasSize(); w != 1200 || h != 630 {
			t.Errorf("GetCanvasSize() = (%d, %d), want (1200, 630)", w, h)
		}
		if dirs := cfg.GetFontDirs(); len(dirs) != 1 || dirs[0] != "/opt/fonts" {
			t.Errorf("GetFontDirs() = %v", dirs)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		p := write(t, "typo.yaml", "txt: oops\n")
		if _, err := Load(p); err == nil {
			t.Error("expected error for unknown key")
		}
	})

	t.Run("bad colour", func(t *testing.T) {
		p := write(t, "colour.yaml", "background_color: teal\n")
		_, err := Load(p)
		if !errors.Is(err, ErrInvalidHexColor) {
			t.Errorf("Load error = %v, want ErrInvalidHexColor", err)
		}
	})

	t.Run("canvas size out of range", func(t *testing.T) {
		bodies := map[string]string{
			"zero.yaml":  "width: 0\nheight: -5\n",
			"tiny.yaml":  "height: 15\n",
			"huge.yaml":  "width: 100000\n",
			"huge2.yaml": "width: 800\nheight: 8193\n",
		}
		for name, body := range bodies {
			if _, err := Load(write(t, name, body)); err == nil {
				t.Errorf("%s: expected error for canvas size %q", name, body)
			}
		}
		if _, err := Load(write(t, "edge.yaml", "width: 16\nheight: 8192\n")); err != nil {
			t.Errorf("canvas at the limits rejected: %v", err)
		}
	})

	t.Run("font size out of range", func(t *testing.T) {
		p := write(t, "size.yaml", "font_size: 2\n")
		if _, err := Load(p); err == nil {
			t.Error("expected error for tiny font size")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "absent.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

// ptrInt is a helper to create pointers to int values for testing.
func ptrInt(v int) *int {
	return &v
}
