// Package renderer turns a document into pixels.
package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/linuxmatters/magiccanvas/internal/config"
	"github.com/linuxmatters/magiccanvas/internal/document"
	"github.com/linuxmatters/magiccanvas/internal/draw"
	"github.com/linuxmatters/magiccanvas/internal/filter"
	"github.com/linuxmatters/magiccanvas/internal/logging"
	"github.com/linuxmatters/magiccanvas/internal/palette"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// FaceSource supplies font faces. *fonts.Manager satisfies it.
type FaceSource interface {
	Face(family, style string, size float64) font.Face
}

// Renderer draws documents using faces from a FaceSource.
type Renderer struct {
	faces FaceSource
}

// New creates a renderer.
func New(faces FaceSource) *Renderer {
	return &Renderer{faces: faces}
}

// Render draws d: background, shapes, frame, arc text, then the filter
// preset. The document is not modified.
func (r *Renderer) Render(d *document.Document) (*image.RGBA, error) {
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", d.Width, d.Height)
	}

	dc := gg.NewContext(d.Width, d.Height)
	drawBackground(dc, d)

	for _, s := range d.Shapes {
		drawShape(dc, s)
	}

	if d.Frame {
		frame := palette.RGB{R: config.FrameColorR, G: config.FrameColorG, B: config.FrameColorB}
		draw.DrawFrame(dc, frame, d.TextColor)
	}

	if err := r.drawText(dc, d); err != nil {
		return nil, err
	}

	img := dc.Image().(*image.RGBA)
	if d.FilterPreset == "" {
		return img, nil
	}

	p, err := filter.PresetByName(d.FilterPreset)
	if err != nil {
		return nil, err
	}
	logging.Logger().Debug("renderer: applying filter preset", "preset", p.Name)
	return toRGBA(p.Apply(img)), nil
}

func drawBackground(dc *gg.Context, d *document.Document) {
	if g := d.Gradient; g != nil {
		dc.DrawImage(draw.Gradient(g.Kind, d.Width, d.Height, g.From, g.To), 0, 0)
		return
	}
	dc.SetColor(d.Background.RGBA())
	dc.Clear()
}

func (r *Renderer) drawText(dc *gg.Context, d *document.Document) error {
	if d.Text == "" {
		return nil
	}
	face := r.faces.Face(d.FontFamily, d.FontStyle, float64(d.FontSize))
	dc.SetFontFace(face)

	glyphs, err := draw.LayoutArc(d.Text, face, draw.Arc{
		CX:         float64(d.Width / 2),
		CY:         float64(d.Height / 2),
		Radius:     d.Arc.Radius,
		StartAngle: d.Arc.StartAngle,
		Sweep:      d.Arc.Sweep,
	})
	if err != nil {
		return fmt.Errorf("layout text: %w", err)
	}

	draw.DrawStyledText(dc, glyphs, draw.TextStyle{
		Color:       d.TextColor,
		Effect:      d.Effect,
		EffectColor: d.EffectColor,
	})
	return nil
}

func drawShape(dc *gg.Context, s document.Shape) {
	st := draw.Style{Width: s.StrokeWidth}
	if s.Fill.A > 0 {
		st.Fill = s.Fill
	}
	if s.Stroke.A > 0 {
		st.Stroke = s.Stroke
	}

	switch s.Kind {
	case document.Rectangle:
		draw.Rectangle(dc, s.X, s.Y, s.X2, s.Y2, s.Radius, st)
	case document.Circle:
		draw.Circle(dc, s.X, s.Y, s.Radius, st)
	case document.Star:
		draw.Star(dc, s.X, s.Y, s.Radius, s.InnerRadius, s.Points, st)
	case document.Polygon:
		draw.Polygon(dc, s.Vertices, st)
	case document.Arrow:
		var c color.Color = color.Black
		if st.Fill != nil {
			c = st.Fill
		}
		width := s.StrokeWidth
		if width <= 0 {
			width = 5
		}
		head := s.Radius
		if head <= 0 {
			head = 20
		}
		draw.Arrow(dc, gg.Point{X: s.X, Y: s.Y}, gg.Point{X: s.X2, Y: s.Y2}, width, head, c)
	}
}

func toRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, src, b, xdraw.Src, nil)
	return dst
}

// Scale resizes img to fit within maxW×maxH, keeping the aspect ratio.
// Images already small enough are returned as is.
func Scale(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return img
	}
	ratio := min(float64(maxW)/float64(b.Dx()), float64(maxH)/float64(b.Dy()))
	w := max(1, int(float64(b.Dx())*ratio))
	h := max(1, int(float64(b.Dy())*ratio))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
