package preset

import (
	"fmt"
	"image/color"
)

// Template categories
const (
	CategoryBusinessCards = "Business Cards"
	CategorySocialMedia   = "Social Media"
	CategoryFlyers        = "Flyers"
	CategoryPosters       = "Posters"
)

// Template is a ready-made starting point: canvas size plus background colour.
type Template struct {
	Name        string
	Width       int
	Height      int
	Background  color.RGBA
	Category    string
	Description string
}

func rgba(r, g, b, a uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: a}
}

var templates = []Template{
	{"Business Card - Standard", 1050, 600, rgba(255, 255, 255, 255), CategoryBusinessCards,
		"Standard business card (3.5 x 2 inches at 300 DPI)"},
	{"Business Card - Modern", 1050, 600, rgba(30, 30, 40, 255), CategoryBusinessCards,
		"Modern dark business card"},
	{"Instagram Post", 1080, 1080, rgba(255, 90, 95, 255), CategorySocialMedia,
		"Instagram square post (1:1 ratio)"},
	{"Instagram Story", 1080, 1920, rgba(138, 58, 185, 255), CategorySocialMedia,
		"Instagram story format (9:16 ratio)"},
	{"Twitter Post", 1200, 675, rgba(29, 161, 242, 255), CategorySocialMedia,
		"Twitter post image (16:9 ratio)"},
	{"Facebook Post", 1200, 630, rgba(59, 89, 152, 255), CategorySocialMedia,
		"Facebook shared image"},
	{"Flyer - A4", 2480, 3508, rgba(255, 255, 255, 255), CategoryFlyers,
		"A4 flyer (8.27 x 11.69 inches at 300 DPI)"},
	{"Flyer - US Letter", 2550, 3300, rgba(240, 248, 255, 255), CategoryFlyers,
		"US Letter size (8.5 x 11 inches at 300 DPI)"},
	{"Flyer - Half Page", 2550, 1650, rgba(255, 250, 240, 255), CategoryFlyers,
		"Half page flyer (8.5 x 5.5 inches at 300 DPI)"},
	{"Poster - Small", 3300, 5100, rgba(255, 255, 255, 255), CategoryPosters,
		"Small poster (11 x 17 inches at 300 DPI)"},
	{"Poster - Medium", 5400, 7200, rgba(245, 245, 250, 255), CategoryPosters,
		"Medium poster (18 x 24 inches at 300 DPI)"},
}

// Templates returns every design template in registry order.
func Templates() []Template {
	return append([]Template(nil), templates...)
}

// TemplatesByCategory groups templates by category in registry order.
func TemplatesByCategory() []Group[Template] {
	return groupBy(templates, func(t Template) string { return t.Category })
}

// TemplateByName looks a template up by exact name.
func TemplateByName(name string) (Template, error) {
	for _, t := range templates {
		if t.Name == name {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: template %q", ErrNotFound, name)
}
