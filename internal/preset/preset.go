// Package preset holds the static registries of canvas size presets and
// design templates.
package preset

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrNotFound is returned when a preset or template name is unknown.
var ErrNotFound = errors.New("not found")

// Canvas categories
const (
	CategoryInstagram = "Instagram"
	CategoryFacebook  = "Facebook"
	CategoryTwitter   = "Twitter"
	CategoryLinkedIn  = "LinkedIn"
	CategoryPinterest = "Pinterest"
	CategoryYouTube   = "YouTube"
	CategoryTikTok    = "TikTok"
	CategoryPrint     = "Print"
	CategoryDigital   = "Digital"
)

const (
	screenDPI = 72
	printDPI  = 300
)

// Canvas is a named canvas size.
type Canvas struct {
	Name        string
	Width       int
	Height      int
	Category    string
	Description string
	DPI         int
}

// AspectRatio returns width divided by height.
func (c Canvas) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

func socialCanvas(name string, w, h int, category, desc string) Canvas {
	return Canvas{Name: name, Width: w, Height: h, Category: category, Description: desc, DPI: screenDPI}
}

func printCanvas(name string, w, h int, desc string) Canvas {
	return Canvas{Name: name, Width: w, Height: h, Category: CategoryPrint, Description: desc, DPI: printDPI}
}

func digitalCanvas(name string, w, h int, desc string) Canvas {
	return Canvas{Name: name, Width: w, Height: h, Category: CategoryDigital, Description: desc, DPI: screenDPI}
}

var canvases = []Canvas{
	socialCanvas("Instagram Post (Square)", 1080, 1080, CategoryInstagram, "Square post format (1:1)"),
	socialCanvas("Instagram Portrait", 1080, 1350, CategoryInstagram, "Portrait post format (4:5)"),
	socialCanvas("Instagram Landscape", 1080, 566, CategoryInstagram, "Landscape post format (1.91:1)"),
	socialCanvas("Instagram Story", 1080, 1920, CategoryInstagram, "Story format (9:16)"),
	socialCanvas("Instagram Reel", 1080, 1920, CategoryInstagram, "Reel format (9:16)"),
	socialCanvas("Facebook Post", 1200, 630, CategoryFacebook, "Link preview image"),
	socialCanvas("Facebook Cover Photo", 820, 312, CategoryFacebook, "Profile cover photo"),
	socialCanvas("Facebook Story", 1080, 1920, CategoryFacebook, "Story format (9:16)"),
	socialCanvas("Twitter/X Post", 1200, 675, CategoryTwitter, "Post image (16:9)"),
	socialCanvas("Twitter/X Header", 1500, 500, CategoryTwitter, "Profile header image"),
	socialCanvas("LinkedIn Post", 1200, 627, CategoryLinkedIn, "Post image"),
	socialCanvas("LinkedIn Cover", 1584, 396, CategoryLinkedIn, "Profile background"),
	socialCanvas("Pinterest Pin", 1000, 1500, CategoryPinterest, "Standard pin (2:3)"),
	socialCanvas("YouTube Thumbnail", 1280, 720, CategoryYouTube, "Video thumbnail (16:9)"),
	socialCanvas("YouTube Channel Art", 2560, 1440, CategoryYouTube, "Channel banner"),
	socialCanvas("TikTok Video", 1080, 1920, CategoryTikTok, "Video format (9:16)"),

	printCanvas("Business Card (US)", 1050, 600, "3.5 x 2 inches"),
	printCanvas("Business Card (EU)", 1063, 638, "85 x 55 mm"),
	printCanvas("Poster A4", 2480, 3508, "210 x 297 mm (8.27 x 11.69 inches)"),
	printCanvas("Poster A3", 3508, 4961, "297 x 420 mm (11.69 x 16.54 inches)"),
	printCanvas(`Poster 11x17"`, 3300, 5100, "11 x 17 inches (Tabloid)"),
	printCanvas(`Poster 18x24"`, 5400, 7200, "18 x 24 inches"),
	printCanvas("Flyer (US Letter)", 2550, 3300, "8.5 x 11 inches"),
	printCanvas("Flyer A5", 1748, 2480, "148 x 210 mm (5.83 x 8.27 inches)"),
	printCanvas(`Postcard 4x6"`, 1200, 1800, "4 x 6 inches"),
	printCanvas(`Postcard 5x7"`, 1500, 2100, "5 x 7 inches"),

	digitalCanvas("Desktop Wallpaper (FHD)", 1920, 1080, "Full HD (1920x1080)"),
	digitalCanvas("Desktop Wallpaper (QHD)", 2560, 1440, "Quad HD (2560x1440)"),
	digitalCanvas("Desktop Wallpaper (4K)", 3840, 2160, "4K Ultra HD (3840x2160)"),
	digitalCanvas("iPhone Wallpaper", 1170, 2532, "iPhone 14/15 Pro"),
	digitalCanvas("Android Wallpaper", 1440, 3200, "Common Android resolution"),
	digitalCanvas("Leaderboard Banner", 728, 90, "Standard web banner"),
	digitalCanvas("Large Rectangle Banner", 336, 280, "Large rectangle ad"),
	digitalCanvas("Skyscraper Banner", 160, 600, "Wide skyscraper ad"),
	digitalCanvas("Email Header", 600, 200, "Standard email header width"),
	digitalCanvas("Blog Featured Image", 1200, 630, "Open Graph standard size"),
}

// Canvases returns every canvas preset in registry order.
func Canvases() []Canvas {
	return append([]Canvas(nil), canvases...)
}

// CanvasByName looks a preset up case-insensitively.
func CanvasByName(name string) (Canvas, error) {
	for _, c := range canvases {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return Canvas{}, fmt.Errorf("%w: canvas preset %q", ErrNotFound, name)
}

// Search returns presets whose name, description or category contains keyword
// (case-insensitive). An empty keyword matches everything.
func Search(keyword string) []Canvas {
	kw := strings.ToLower(keyword)
	var out []Canvas
	for _, c := range canvases {
		if strings.Contains(strings.ToLower(c.Name), kw) ||
			strings.Contains(strings.ToLower(c.Description), kw) ||
			strings.Contains(strings.ToLower(c.Category), kw) {
			out = append(out, c)
		}
	}
	return out
}

// Group is an ordered category bucket.
type Group[T any] struct {
	Category string
	Items    []T
}

// CanvasesByCategory groups presets by category in first-seen order.
func CanvasesByCategory() []Group[Canvas] {
	return groupBy(canvases, func(c Canvas) string { return c.Category })
}

// ByAspectRatio returns presets whose aspect ratio is within tolerance of ratio.
func ByAspectRatio(ratio, tolerance float64) []Canvas {
	var out []Canvas
	for _, c := range canvases {
		if math.Abs(c.AspectRatio()-ratio) <= tolerance {
			out = append(out, c)
		}
	}
	return out
}

func groupBy[T any](items []T, key func(T) string) []Group[T] {
	var groups []Group[T]
	index := make(map[string]int)
	for _, it := range items {
		k := key(it)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[T]{Category: k})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}
