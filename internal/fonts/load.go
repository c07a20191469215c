package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/linuxmatters/magiccanvas/internal/config"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFace loads a font file at the given point size.
// TrueType files go through freetype; OpenType and collections through
// x/image/font/opentype.
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf":
		if f, err := truetype.Parse(data); err == nil {
			return truetypeFace(f, size), nil
		}
		// CFF outlines in a .ttf: let opentype have a go.
		return opentypeFace(data, size)
	case ".otf", ".ttc", ".otc":
		return opentypeFace(data, size)
	default:
		return nil, fmt.Errorf("unsupported font file %s", filepath.Base(path))
	}
}

func truetypeFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     config.FontDPI,
		Hinting: font.HintingFull,
	})
}

func opentypeFace(data []byte, size float64) (font.Face, error) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	if coll.NumFonts() == 0 {
		return nil, fmt.Errorf("font collection is empty")
	}
	f, err := coll.Font(0)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     config.FontDPI,
		Hinting: font.HintingFull,
	})
}

var (
	goRegular = sync.OnceValue(func() *truetype.Font { return mustParse(goregular.TTF) })
	goBold    = sync.OnceValue(func() *truetype.Font { return mustParse(gobold.TTF) })
)

func mustParse(data []byte) *truetype.Font {
	f, err := truetype.Parse(data)
	if err != nil {
		panic(fmt.Sprintf("embedded font: %v", err))
	}
	return f
}

// EmbeddedFace returns the bundled Go font, bold when style says so.
func EmbeddedFace(style string, size float64) font.Face {
	if strings.Contains(strings.ToLower(style), "bold") {
		return truetypeFace(goBold(), size)
	}
	return truetypeFace(goRegular(), size)
}
