package export

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 128, A: 255})
		}
	}
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.png", PNG},
		{"out.JPG", JPEG},
		{"out.jpeg", JPEG},
		{"out.gif", GIF},
		{"out.tif", TIFF},
		{"out.tiff", TIFF},
		{"out.bmp", BMP},
		{"out.webp", WebP},
		{"out", PNG},
		{"out.xyz", PNG},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	for _, f := range []Format{PNG, JPEG, GIF, TIFF, BMP} {
		if !f.Supported() {
			t.Errorf("%s should be supported", f)
		}
	}
	for _, f := range []Format{WebP, PDF} {
		if f.Supported() {
			t.Errorf("%s should not be supported", f)
		}
	}
}

// pngDPI reads the pHYs chunk back out of an encoded PNG.
func pngDPI(t *testing.T, data []byte) int {
	t.Helper()
	pos := len(pngSignature)
	for pos+8 <= len(data) {
		n := int(binary.BigEndian.Uint32(data[pos:]))
		typ := string(data[pos+4 : pos+8])
		if typ == "pHYs" {
			ppm := binary.BigEndian.Uint32(data[pos+8:])
			return int(float64(ppm)*0.0254 + 0.5)
		}
		pos += 12 + n
	}
	t.Fatal("no pHYs chunk")
	return 0
}

func TestExportPNGWithDPI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "design.png")

	if err := Export(testImage(20, 10), path, DefaultSettings()); err != nil {
		t.Fatalf("Export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := pngDPI(t, data); got != 300 {
		t.Errorf("PNG DPI = %d, want 300", got)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if mode := info.Mode().Perm(); mode != 0o644 {
			t.Errorf("exported file mode = %v, want -rw-r--r--", mode)
		}
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode exported PNG: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("exported size = %v", img.Bounds())
	}
}

func TestExportJPEG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "design.jpg")

	src := image.NewNRGBA(image.Rect(0, 0, 16, 16)) // fully transparent
	s := DefaultSettings()
	s.DPI = 150
	if err := Export(src, path, s); err != nil {
		t.Fatalf("Export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data[2:4], []byte{0xFF, 0xE0}) || string(data[6:10]) != "JFIF" {
		t.Fatal("missing JFIF APP0 segment")
	}
	if d := binary.BigEndian.Uint16(data[14:16]); d != 150 {
		t.Errorf("JFIF density = %d, want 150", d)
	}

	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode exported JPEG: %v", err)
	}
	r, g, b, _ := img.At(8, 8).RGBA()
	if r>>8 < 250 || g>>8 < 250 || b>>8 < 250 {
		t.Errorf("transparent pixels should flatten to white, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestExportFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "no", "such", "dir", "out.png")
	if err := Export(testImage(4, 4), missing, DefaultSettings()); err == nil {
		t.Error("export into a missing directory should fail")
	}

	webp := filepath.Join(dir, "out.webp")
	if err := Export(testImage(4, 4), webp, DefaultSettings()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("WebP export error = %v, want ErrUnsupportedFormat", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "no" {
			t.Errorf("unexpected leftover file %q", e.Name())
		}
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "design")

	results := Batch(testImage(8, 8), base, []Format{PNG, JPEG, BMP, PDF}, map[Format]Settings{
		JPEG: {Quality: 50},
	})

	for _, f := range []Format{PNG, JPEG, BMP} {
		if results[f] != nil {
			t.Errorf("%s: %v", f, results[f])
		}
		if _, err := os.Stat(base + f.Extension()); err != nil {
			t.Errorf("%s not written: %v", f, err)
		}
	}
	if !errors.Is(results[PDF], ErrUnsupportedFormat) {
		t.Errorf("PDF result = %v, want ErrUnsupportedFormat", results[PDF])
	}
}

func TestPresets(t *testing.T) {
	web, err := PresetByName("web")
	if err != nil {
		t.Fatal(err)
	}
	if web.Format != JPEG || web.Quality != 85 || web.DPI != 300 {
		t.Errorf("web preset = %+v", web)
	}

	hq, err := PresetByName("high_quality")
	if err != nil {
		t.Fatal(err)
	}
	if hq.Format != PNG || hq.Compression != 3 {
		t.Errorf("high quality preset = %+v", hq)
	}

	if _, err := PresetByName("archival"); err == nil {
		t.Error("expected error for unknown preset")
	}
	if n := len(PresetNames()); n != 4 {
		t.Errorf("PresetNames() returned %d names, want 4", n)
	}
}

func TestSettingsClamp(t *testing.T) {
	if q := (Settings{Quality: 150}).jpegQuality(); q != 100 {
		t.Errorf("quality 150 clamped to %d", q)
	}
	if q := (Settings{Quality: -5}).jpegQuality(); q != 0 {
		t.Errorf("quality -5 clamped to %d", q)
	}
	if l := (Settings{Compression: 0}).pngLevel(); l != png.NoCompression {
		t.Errorf("compression 0 = %v", l)
	}
	if l := (Settings{Compression: 9}).pngLevel(); l != png.BestCompression {
		t.Errorf("compression 9 = %v", l)
	}
}

func TestThumbnail(t *testing.T) {
	src := testImage(40, 20)

	fit := Thumbnail(src, 10, 10, true)
	if fit.Bounds().Dx() != 10 || fit.Bounds().Dy() != 5 {
		t.Errorf("aspect thumbnail = %v, want 10x5", fit.Bounds())
	}

	exact := Thumbnail(src, 10, 10, false)
	if exact.Bounds().Dx() != 10 || exact.Bounds().Dy() != 10 {
		t.Errorf("exact thumbnail = %v, want 10x10", exact.Bounds())
	}
}
