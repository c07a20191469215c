// Package fonts discovers installed fonts and hands out cached font faces.
//
// Missing or broken fonts never fail a render: Face always returns something
// drawable, falling back to well known system fonts and finally to the Go
// fonts compiled into the binary.
package fonts

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/linuxmatters/magiccanvas/internal/logging"
	"golang.org/x/image/font"
)

// Info describes one font file.
type Info struct {
	Path   string
	Family string
	Style  string
}

// Recommendation categories
const (
	Serif      = "serif"
	SansSerif  = "sans-serif"
	Monospace  = "monospace"
	Decorative = "decorative"
)

var recommended = map[string][]string{
	Serif: {
		"Times New Roman", "Georgia", "Garamond", "Palatino", "Baskerville",
		"Liberation Serif", "DejaVu Serif",
	},
	SansSerif: {
		"Arial", "Helvetica", "Verdana", "Tahoma", "Trebuchet MS", "Segoe UI",
		"Liberation Sans", "DejaVu Sans", "Roboto",
	},
	Monospace: {
		"Courier New", "Consolas", "Monaco", "Menlo", "Liberation Mono", "DejaVu Sans Mono",
	},
	Decorative: {
		"Impact", "Comic Sans MS", "Brush Script MT",
	},
}

// Categories lists the recommendation categories.
func Categories() []string {
	return []string{Serif, SansSerif, Monospace, Decorative}
}

type faceKey struct {
	family string
	style  string
	size   float64
}

// Manager indexes installed fonts by family and caches loaded faces for the
// life of the process. It is not safe for concurrent use.
type Manager struct {
	dirs     []string
	families map[string][]Info
	faces    map[faceKey]font.Face
}

// NewManager creates a manager that scans dirs. With no dirs it uses
// DefaultDirs.
func NewManager(dirs ...string) *Manager {
	if len(dirs) == 0 {
		dirs = DefaultDirs()
	}
	return &Manager{
		dirs:     dirs,
		families: make(map[string][]Info),
		faces:    make(map[faceKey]font.Face),
	}
}

// Dirs returns the directories the manager scans.
func (m *Manager) Dirs() []string {
	return slices.Clone(m.dirs)
}

// Scan walks the font directories and indexes every .ttf, .otf and .ttc file.
// Missing directories are skipped. It returns the number of fonts found.
func (m *Manager) Scan() int {
	found := 0
	for _, dir := range m.dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logging.Logger().Debug("fonts: skipping", "path", path, "err", err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !isFontFile(path) {
				return nil
			}
			family, style := ParseFileName(d.Name())
			m.Add(Info{Path: path, Family: family, Style: style})
			found++
			return nil
		})
	}
	logging.Logger().Debug("fonts: scan complete", "fonts", found, "families", len(m.families))
	return found
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc":
		return true
	}
	return false
}

// ParseFileName derives family and style from a font file name. With more
// than one dash or space separated word the last word is the style;
// otherwise the style is Regular.
func ParseFileName(name string) (family, style string) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.Fields(strings.ReplaceAll(base, "-", " "))
	if len(parts) > 1 {
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
	return base, "Regular"
}

// Add indexes a font.
func (m *Manager) Add(info Info) {
	m.families[info.Family] = append(m.families[info.Family], info)
}

// Families returns the sorted family names.
func (m *Manager) Families() []string {
	out := make([]string, 0, len(m.families))
	for family := range m.families {
		out = append(out, family)
	}
	slices.Sort(out)
	return out
}

// Styles returns the styles of family in discovery order.
func (m *Manager) Styles(family string) []string {
	var out []string
	for _, info := range m.families[family] {
		out = append(out, info.Style)
	}
	return out
}

// Search returns the sorted families containing query, ignoring case.
func (m *Manager) Search(query string) []string {
	q := strings.ToLower(query)
	var out []string
	for _, family := range m.Families() {
		if strings.Contains(strings.ToLower(family), q) {
			out = append(out, family)
		}
	}
	return out
}

// Recommended returns the installed fonts suggested for category.
func (m *Manager) Recommended(category string) []string {
	var out []string
	for _, family := range recommended[category] {
		if _, ok := m.families[family]; ok {
			out = append(out, family)
		}
	}
	return out
}

// Resolve finds the file for family and style. An unknown style resolves to
// the family's first style.
func (m *Manager) Resolve(family, style string) (Info, bool) {
	infos := m.families[family]
	if len(infos) == 0 {
		return Info{}, false
	}
	for _, info := range infos {
		if strings.EqualFold(info.Style, style) {
			return info, true
		}
	}
	return infos[0], true
}

// Face returns a face for family, style and size. Faces are cached.
func (m *Manager) Face(family, style string, size float64) font.Face {
	key := faceKey{family, style, size}
	if face, ok := m.faces[key]; ok {
		return face
	}

	face := m.load(family, style, size)
	m.faces[key] = face
	return face
}

func (m *Manager) load(family, style string, size float64) font.Face {
	log := logging.Logger()

	if info, ok := m.Resolve(family, style); ok {
		face, err := LoadFace(info.Path, size)
		if err == nil {
			return face
		}
		log.Warn("fonts: failed to load font", "path", info.Path, "err", err)
	} else {
		log.Warn("fonts: family not installed, using fallback", "family", family)
	}

	for _, def := range defaultFonts() {
		if _, err := os.Stat(def.path); err != nil {
			continue
		}
		if face, err := LoadFace(def.path, size); err == nil {
			log.Debug("fonts: using default font", "family", def.family)
			return face
		}
	}

	return EmbeddedFace(style, size)
}

// CachedFaces reports how many faces have been loaded.
func (m *Manager) CachedFaces() int {
	return len(m.faces)
}
