package draw

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Style controls how a shape is painted. A nil Fill or Stroke skips that
// part; Width <= 0 skips the stroke.
type Style struct {
	Fill   color.Color
	Stroke color.Color
	Width  float64
}

func paint(dc *gg.Context, st Style) {
	if st.Fill != nil {
		dc.SetColor(st.Fill)
		dc.FillPreserve()
	}
	if st.Stroke != nil && st.Width > 0 {
		dc.SetColor(st.Stroke)
		dc.SetLineWidth(st.Width)
		dc.StrokePreserve()
	}
	dc.ClearPath()
}

// Rectangle draws the box (x0,y0)-(x1,y1). A positive radius rounds the
// corners.
func Rectangle(dc *gg.Context, x0, y0, x1, y1, radius float64, st Style) {
	x, y := math.Min(x0, x1), math.Min(y0, y1)
	w, h := math.Abs(x1-x0), math.Abs(y1-y0)
	if radius > 0 {
		dc.DrawRoundedRectangle(x, y, w, h, radius)
	} else {
		dc.DrawRectangle(x, y, w, h)
	}
	paint(dc, st)
}

// Circle draws a circle around (cx, cy).
func Circle(dc *gg.Context, cx, cy, r float64, st Style) {
	dc.DrawCircle(cx, cy, r)
	paint(dc, st)
}

// StarPoints returns the 2·points vertices of a star, starting at the top
// and alternating outer and inner radius.
func StarPoints(cx, cy, outer, inner float64, points int) []gg.Point {
	if points < 2 {
		return nil
	}
	n := points * 2
	pts := make([]gg.Point, n)
	for i := range pts {
		angle := math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts[i] = gg.Point{X: cx + r*math.Cos(angle), Y: cy - r*math.Sin(angle)}
	}
	return pts
}

// Star draws a star with the given number of points.
func Star(dc *gg.Context, cx, cy, outer, inner float64, points int, st Style) {
	Polygon(dc, StarPoints(cx, cy, outer, inner, points), st)
}

// Polygon draws a closed polygon. Fewer than three points draws nothing.
func Polygon(dc *gg.Context, pts []gg.Point, st Style) {
	if len(pts) < 3 {
		return
	}
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	paint(dc, st)
}

// ArrowHead returns the triangle at end of the segment start-end. It reports
// false for a zero length segment.
func ArrowHead(start, end gg.Point, size float64) ([3]gg.Point, bool) {
	dx, dy := end.X-start.X, end.Y-start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return [3]gg.Point{}, false
	}
	ux, uy := dx/length, dy/length
	px, py := -uy, ux
	return [3]gg.Point{
		end,
		{X: end.X - size*ux + size/2*px, Y: end.Y - size*uy + size/2*py},
		{X: end.X - size*ux - size/2*px, Y: end.Y - size*uy - size/2*py},
	}, true
}

// Arrow draws a line from start to end with a triangular head. A zero length
// arrow draws only the line.
func Arrow(dc *gg.Context, start, end gg.Point, width, headSize float64, c color.Color) {
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.DrawLine(start.X, start.Y, end.X, end.Y)
	dc.Stroke()

	head, ok := ArrowHead(start, end, headSize)
	if !ok {
		return
	}
	Polygon(dc, head[:], Style{Fill: c})
}
