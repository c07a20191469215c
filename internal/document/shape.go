package document

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"github.com/fogleman/gg"
)

// ShapeKind names a drawable shape.
type ShapeKind string

const (
	Rectangle ShapeKind = "rectangle"
	Circle    ShapeKind = "circle"
	Star      ShapeKind = "star"
	Polygon   ShapeKind = "polygon"
	Arrow     ShapeKind = "arrow"
)

// ShapeKinds lists every kind.
var ShapeKinds = []ShapeKind{Rectangle, Circle, Star, Polygon, Arrow}

// ParseShapeKind accepts a kind name in any case.
func ParseShapeKind(s string) (ShapeKind, error) {
	for _, k := range ShapeKinds {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: shape %q", ErrInvalidValue, s)
}

// Shape is a decoration drawn between the background and the text.
//
// Geometry by kind:
//   - Rectangle: (X, Y)-(X2, Y2), corners rounded by Radius
//   - Circle: centre (X, Y), Radius
//   - Star: centre (X, Y), Radius outer, InnerRadius, Points
//   - Polygon: Vertices
//   - Arrow: (X, Y) to (X2, Y2), head size Radius, line width StrokeWidth
type Shape struct {
	Kind        ShapeKind
	X, Y        float64
	X2, Y2      float64
	Radius      float64
	InnerRadius float64
	Points      int
	Vertices    []gg.Point

	Fill        color.NRGBA // zero alpha: no fill
	Stroke      color.NRGBA // zero alpha: no stroke
	StrokeWidth float64
}

// Validate checks the geometry is drawable.
func (s Shape) Validate() error {
	switch s.Kind {
	case Rectangle, Arrow:
	case Circle:
		if s.Radius <= 0 {
			return fmt.Errorf("%w: circle radius %v", ErrOutOfRange, s.Radius)
		}
	case Star:
		if s.Points < 2 || s.Radius <= 0 || s.InnerRadius <= 0 {
			return fmt.Errorf("%w: star needs 2+ points and positive radii", ErrOutOfRange)
		}
	case Polygon:
		if len(s.Vertices) < 3 {
			return fmt.Errorf("%w: polygon needs 3+ vertices", ErrOutOfRange)
		}
	default:
		return fmt.Errorf("%w: shape %q", ErrInvalidValue, s.Kind)
	}
	return nil
}

// Describe returns a short label for lists.
func (s Shape) Describe() string {
	switch s.Kind {
	case Circle:
		return fmt.Sprintf("circle r=%.0f at (%.0f,%.0f)", s.Radius, s.X, s.Y)
	case Star:
		return fmt.Sprintf("%d-point star at (%.0f,%.0f)", s.Points, s.X, s.Y)
	case Polygon:
		return fmt.Sprintf("polygon with %d vertices", len(s.Vertices))
	default:
		return fmt.Sprintf("%s (%.0f,%.0f)-(%.0f,%.0f)", s.Kind, s.X, s.Y, s.X2, s.Y2)
	}
}

func (s Shape) clone() Shape {
	s.Vertices = slices.Clone(s.Vertices)
	return s
}

func (s Shape) equal(o Shape) bool {
	return s.Kind == o.Kind &&
		s.X == o.X && s.Y == o.Y && s.X2 == o.X2 && s.Y2 == o.Y2 &&
		s.Radius == o.Radius && s.InnerRadius == o.InnerRadius && s.Points == o.Points &&
		s.Fill == o.Fill && s.Stroke == o.Stroke && s.StrokeWidth == o.StrokeWidth &&
		slices.Equal(s.Vertices, o.Vertices)
}
