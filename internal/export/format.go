// Package export writes rendered designs to image files.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedFormat is returned for formats that cannot be written.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format is an output file format.
type Format string

const (
	PNG  Format = "PNG"
	JPEG Format = "JPEG"
	GIF  Format = "GIF"
	TIFF Format = "TIFF"
	BMP  Format = "BMP"
	WebP Format = "WebP"
	PDF  Format = "PDF"
)

// Formats lists every known format. WebP and PDF are recognised but cannot
// be written.
var Formats = []Format{PNG, JPEG, WebP, BMP, TIFF, PDF, GIF}

var extensions = map[Format]string{
	PNG:  ".png",
	JPEG: ".jpg",
	WebP: ".webp",
	BMP:  ".bmp",
	TIFF: ".tiff",
	PDF:  ".pdf",
	GIF:  ".gif",
}

// Extension returns the canonical file extension.
func (f Format) Extension() string {
	if ext, ok := extensions[f]; ok {
		return ext
	}
	return ".png"
}

// Supported reports whether the format can be written.
func (f Format) Supported() bool {
	_, err := f.imaging()
	return err == nil
}

// HasAlpha reports whether the format keeps transparency.
func (f Format) HasAlpha() bool {
	return f != JPEG && f != BMP
}

func (f Format) imaging() (imaging.Format, error) {
	switch f {
	case PNG:
		return imaging.PNG, nil
	case JPEG:
		return imaging.JPEG, nil
	case GIF:
		return imaging.GIF, nil
	case TIFF:
		return imaging.TIFF, nil
	case BMP:
		return imaging.BMP, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
}

// ParseFormat accepts a format name or extension in any case.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimPrefix(strings.ToLower(s), ".")
	switch s {
	case "jpg", "jpeg":
		return JPEG, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	for _, f := range Formats {
		if strings.ToLower(string(f)) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath picks the format from a file extension, defaulting to PNG.
func FormatFromPath(path string) Format {
	ext := filepath.Ext(path)
	if ext == "" {
		return PNG
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return PNG
	}
	return f
}
