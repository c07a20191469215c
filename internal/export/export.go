package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/linuxmatters/magiccanvas/internal/logging"
)

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format, s Settings) error {
	ifmt, err := f.imaging()
	if err != nil {
		return err
	}
	if !f.HasAlpha() {
		img = flatten(img)
	}

	var buf bytes.Buffer
	opts := []imaging.EncodeOption{
		imaging.JPEGQuality(s.jpegQuality()),
		imaging.PNGCompressionLevel(s.pngLevel()),
	}
	if err := imaging.Encode(&buf, img, ifmt, opts...); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}

	data := buf.Bytes()
	if s.DPI > 0 {
		switch f {
		case PNG:
			data, err = withPNGDPI(data, s.DPI)
		case JPEG:
			data, err = withJPEGDPI(data, s.DPI)
		}
		if err != nil {
			return fmt.Errorf("write %s resolution: %w", f, err)
		}
	}

	_, err = w.Write(data)
	return err
}

// flatten composites img over white.
func flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Point{}, 1.0)
}

// Export writes img to path. The format comes from s.Format, or the file
// extension when that is empty. The file is written to a temporary name and
// renamed into place, so a failed export leaves nothing behind.
func Export(img image.Image, path string, s Settings) error {
	f := s.Format
	if f == "" {
		f = FormatFromPath(path)
	}
	if !f.Supported() {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".magiccanvas-*"+f.Extension())
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if err := Encode(tmp, img, f, s); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("write output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("rename output: %w", err)
	}

	logging.Logger().Debug("export: wrote image", "path", path, "format", f, "dpi", s.DPI)
	return nil
}

// Batch writes img once per format as basePath plus the format's extension.
// Settings come from perFormat when present, otherwise the defaults. The
// result maps each format to its error, nil on success.
func Batch(img image.Image, basePath string, formats []Format, perFormat map[Format]Settings) map[Format]error {
	results := make(map[Format]error, len(formats))
	for _, f := range formats {
		s, ok := perFormat[f]
		if !ok {
			s = DefaultSettings()
		}
		s.Format = f
		results[f] = Export(img, basePath+f.Extension(), s)
	}
	return results
}

// Thumbnail scales img to fit within w×h keeping the aspect ratio, or to
// exactly w×h when keepAspect is false. Lanczos resampling.
func Thumbnail(img image.Image, w, h int, keepAspect bool) *image.NRGBA {
	if keepAspect {
		return imaging.Fit(img, w, h, imaging.Lanczos)
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}
