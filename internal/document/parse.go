package document

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/linuxmatters/magiccanvas/internal/palette"
)

// ParseShape reads a shape from its command line form KIND:NUMBERS[:FILL[:STROKE[:WIDTH]]].
//
//	rect:X0,Y0,X1,Y1[,RADIUS]
//	circle:CX,CY,R
//	star:CX,CY,OUTER,INNER,POINTS
//	polygon:X,Y,X,Y,X,Y[,...]
//	arrow:X0,Y0,X1,Y1[,HEAD]
//
// FILL and STROKE are hex colours; an empty FILL means no fill. Without
// either colour the shape is filled black.
func ParseShape(spec string) (Shape, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 5 {
		return Shape{}, fmt.Errorf("%w: shape %q", ErrInvalidValue, spec)
	}

	kindName := parts[0]
	if strings.EqualFold(kindName, "rect") {
		kindName = string(Rectangle)
	}
	kind, err := ParseShapeKind(kindName)
	if err != nil {
		return Shape{}, err
	}

	nums, err := parseNumbers(parts[1])
	if err != nil {
		return Shape{}, fmt.Errorf("shape %q: %w", spec, err)
	}

	s := Shape{Kind: kind}
	need := func(lo, hi int) error {
		if len(nums) < lo || len(nums) > hi {
			return fmt.Errorf("%w: %s takes %d-%d numbers, got %d", ErrInvalidValue, kind, lo, hi, len(nums))
		}
		return nil
	}

	switch kind {
	case Rectangle, Arrow:
		if err := need(4, 5); err != nil {
			return Shape{}, err
		}
		s.X, s.Y, s.X2, s.Y2 = nums[0], nums[1], nums[2], nums[3]
		if len(nums) == 5 {
			s.Radius = nums[4]
		}
	case Circle:
		if err := need(3, 3); err != nil {
			return Shape{}, err
		}
		s.X, s.Y, s.Radius = nums[0], nums[1], nums[2]
	case Star:
		if err := need(5, 5); err != nil {
			return Shape{}, err
		}
		s.X, s.Y, s.Radius, s.InnerRadius, s.Points = nums[0], nums[1], nums[2], nums[3], int(nums[4])
	case Polygon:
		if len(nums)%2 != 0 {
			return Shape{}, fmt.Errorf("%w: polygon needs x,y pairs", ErrInvalidValue)
		}
		for i := 0; i < len(nums); i += 2 {
			s.Vertices = append(s.Vertices, gg.Point{X: nums[i], Y: nums[i+1]})
		}
	}

	s.Fill.A = 255 // black unless told otherwise
	if len(parts) > 2 {
		if s.Fill, err = parseOptionalColor(parts[2]); err != nil {
			return Shape{}, err
		}
	}
	if len(parts) > 3 {
		if s.Stroke, err = parseOptionalColor(parts[3]); err != nil {
			return Shape{}, err
		}
		s.StrokeWidth = 1
	}
	if len(parts) > 4 {
		if s.StrokeWidth, err = strconv.ParseFloat(parts[4], 64); err != nil {
			return Shape{}, fmt.Errorf("%w: stroke width %q", ErrInvalidValue, parts[4])
		}
	}

	return s, s.Validate()
}

func parseNumbers(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrInvalidValue, f)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseOptionalColor(hex string) (c color.NRGBA, err error) {
	if hex == "" {
		return c, nil
	}
	rgb, err := palette.ParseHex(hex)
	if err != nil {
		return c, err
	}
	return rgb.WithAlpha(255), nil
}
