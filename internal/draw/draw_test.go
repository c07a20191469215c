package draw

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/linuxmatters/magiccanvas/internal/palette"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T) font.Face {
	t.Helper()
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: 24, DPI: 72})
}

func TestLayoutArc_Empty(t *testing.T) {
	glyphs, err := LayoutArc("", testFace(t), DefaultArc(800, 400))
	if err != nil || glyphs != nil {
		t.Errorf("LayoutArc(\"\") = %v, %v; want nil, nil", glyphs, err)
	}
}

func TestLayoutArc_InvalidRadius(t *testing.T) {
	for _, r := range []float64{0, -10} {
		arc := DefaultArc(800, 400)
		arc.Radius = r
		if _, err := LayoutArc("HI", testFace(t), arc); !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("radius %v: error = %v, want ErrInvalidRadius", r, err)
		}
	}
}

func TestLayoutArc_DefaultReadsAcrossTop(t *testing.T) {
	arc := DefaultArc(800, 400)
	glyphs, err := LayoutArc("MAGIC", testFace(t), arc)
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 5 {
		t.Fatalf("got %d glyphs, want 5", len(glyphs))
	}
	for i, g := range glyphs {
		if g.Y > arc.CY {
			t.Errorf("glyph %d (%s) below centre: y=%.1f", i, g.Text, g.Y)
		}
		if i > 0 && g.X <= glyphs[i-1].X {
			t.Errorf("glyph %d not right of glyph %d", i, i-1)
		}
		if d := math.Hypot(g.X-arc.CX, g.Y-arc.CY); math.Abs(d-arc.Radius) > 1e-9 {
			t.Errorf("glyph %d is %.3f from centre, want %.0f", i, d, arc.Radius)
		}
	}
	// The middle glyph of a symmetric word sits at the top, upright.
	mid, _ := LayoutArc("OXO", testFace(t), arc)
	if math.Abs(mid[1].Angle-90) > 1e-9 || math.Abs(mid[1].Rotation) > 1e-9 {
		t.Errorf("middle glyph angle %.3f rotation %.3f, want 90 and 0", mid[1].Angle, mid[1].Rotation)
	}
}

func TestLayoutArc_ProportionalSpacing(t *testing.T) {
	face := testFace(t)
	arc := DefaultArc(800, 400)
	glyphs, err := LayoutArc("WiW", face, arc)
	if err != nil {
		t.Fatal(err)
	}
	aw, _ := face.GlyphAdvance('W')
	ai, _ := face.GlyphAdvance('i')
	total := float64(2*aw + ai)

	wantGap := arc.Sweep * (float64(aw)/2 + float64(ai)/2) / total
	for i := 1; i < 3; i++ {
		gap := glyphs[i-1].Angle - glyphs[i].Angle
		if math.Abs(gap-wantGap) > 1e-9 {
			t.Errorf("gap %d = %.4f°, want %.4f°", i, gap, wantGap)
		}
	}
}

func TestLayoutArc_SweepClamped(t *testing.T) {
	face := testFace(t)
	arc := DefaultArc(800, 400)

	arc.Sweep = 720
	wide, _ := LayoutArc("ROUND", face, arc)
	arc.Sweep = 360
	full, _ := LayoutArc("ROUND", face, arc)

	for i := range full {
		if wide[i].Angle != full[i].Angle {
			t.Errorf("glyph %d angle %.3f, want clamped %.3f", i, wide[i].Angle, full[i].Angle)
		}
	}
	if ClampSweep(-1000) != -360 {
		t.Errorf("ClampSweep(-1000) = %v", ClampSweep(-1000))
	}
}

func TestLayoutArc_NoFaceSpacesEvenly(t *testing.T) {
	arc := DefaultArc(100, 100)
	glyphs, err := LayoutArc("abcd", nil, arc)
	if err != nil {
		t.Fatal(err)
	}
	for i, g := range glyphs {
		want := arc.StartAngle - arc.Sweep*(float64(i)+0.5)/4
		if math.Abs(g.Angle-want) > 1e-9 {
			t.Errorf("glyph %d angle %.3f, want %.3f", i, g.Angle, want)
		}
	}
}

func TestGradients(t *testing.T) {
	black := palette.RGB{}
	white := palette.RGB{R: 255, G: 255, B: 255}

	tests := []struct {
		name string
		img  *image.RGBA
		x, y int
		want uint8
	}{
		{"horizontal start", LinearGradient(Horizontal, 10, 4, black, white), 0, 2, 0},
		{"horizontal middle", LinearGradient(Horizontal, 10, 4, black, white), 5, 0, 127},
		{"vertical row", LinearGradient(Vertical, 4, 10, white, black), 3, 5, 127},
		{"diagonal origin", LinearGradient(Diagonal, 10, 10, black, white), 0, 0, 0},
		{"radial centre", RadialGradient(10, 10, white, black, nil), 5, 5, 255},
		{"radial corner", RadialGradient(10, 10, white, black, nil), 0, 0, 0},
		{"radial offset centre", RadialGradient(10, 10, black, white, &image.Point{X: 2, Y: 2}), 2, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.img.RGBAAt(tt.x, tt.y); got.R != tt.want || got.A != 255 {
				t.Errorf("pixel = %v, want R=%d", got, tt.want)
			}
		})
	}

	if _, err := ParseGradientKind("Radial"); err != nil {
		t.Error(err)
	}
	if _, err := ParseGradientKind("conic"); err == nil {
		t.Error("expected error for conic")
	}
}

func TestStarPoints(t *testing.T) {
	pts := StarPoints(50, 50, 40, 20, 5)
	if len(pts) != 10 {
		t.Fatalf("got %d points, want 10", len(pts))
	}
	if math.Abs(pts[0].X-50) > 1e-9 || math.Abs(pts[0].Y-10) > 1e-9 {
		t.Errorf("first point %v, want top (50,10)", pts[0])
	}
	if d := math.Hypot(pts[1].X-50, pts[1].Y-50); math.Abs(d-20) > 1e-9 {
		t.Errorf("second point at radius %.3f, want inner 20", d)
	}
	if StarPoints(0, 0, 1, 1, 1) != nil {
		t.Error("a one-point star should have no vertices")
	}
}

func TestArrowHead(t *testing.T) {
	head, ok := ArrowHead(gg.Point{X: 0, Y: 0}, gg.Point{X: 100, Y: 0}, 20)
	if !ok {
		t.Fatal("ArrowHead reported zero length")
	}
	if head[0] != (gg.Point{X: 100, Y: 0}) || head[1] != (gg.Point{X: 80, Y: 10}) || head[2] != (gg.Point{X: 80, Y: -10}) {
		t.Errorf("head = %v", head)
	}
	if _, ok := ArrowHead(gg.Point{X: 5, Y: 5}, gg.Point{X: 5, Y: 5}, 20); ok {
		t.Error("zero length arrow should have no head")
	}
}

func TestShapesPaint(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	dc := gg.NewContext(100, 100)

	Rectangle(dc, 10, 10, 40, 40, 0, Style{Fill: red})
	Circle(dc, 70, 70, 15, Style{Fill: red})
	Arrow(dc, gg.Point{X: 0, Y: 90}, gg.Point{X: 0, Y: 90}, 2, 10, red)

	img := dc.Image().(*image.RGBA)
	for _, p := range []image.Point{{25, 25}, {70, 70}} {
		if got := img.RGBAAt(p.X, p.Y); got != red {
			t.Errorf("pixel %v = %v, want red", p, got)
		}
	}
	if got := img.RGBAAt(55, 20); got.A != 0 {
		t.Errorf("pixel outside shapes = %v, want transparent", got)
	}
}

func TestDrawFrame(t *testing.T) {
	border := palette.RGB{R: 0x2C, G: 0x3E, B: 0x50}
	accent := palette.RGB{R: 0xFF, G: 0x6B, B: 0x6B}
	dc := gg.NewContext(200, 100)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	DrawFrame(dc, border, accent)
	img := dc.Image().(*image.RGBA)

	if got := img.RGBAAt(6, 50); got != border.RGBA() {
		t.Errorf("left border = %v, want %v", got, border.RGBA())
	}
	if got := img.RGBAAt(190, 90); got != accent.RGBA() {
		t.Errorf("corner dot = %v, want %v", got, accent.RGBA())
	}
	if got := img.RGBAAt(100, 50); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("interior = %v, want white", got)
	}
}

func TestDrawStyledText(t *testing.T) {
	face := testFace(t)
	for _, effect := range Effects {
		t.Run(string(effect), func(t *testing.T) {
			dc := gg.NewContext(200, 200)
			dc.SetFontFace(face)
			glyphs, _ := LayoutArc("AB", face, Arc{CX: 100, CY: 100, Radius: 50, StartAngle: 180, Sweep: 180})

			DrawStyledText(dc, glyphs, TextStyle{
				Color:       palette.RGB{R: 255},
				Effect:      effect,
				EffectColor: palette.RGB{B: 255},
			})

			img := dc.Image().(*image.RGBA)
			painted := 0
			for i := 3; i < len(img.Pix); i += 4 {
				if img.Pix[i] != 0 {
					painted++
				}
			}
			if painted == 0 {
				t.Error("nothing was drawn")
			}
		})
	}

	if _, err := ParseEffect("sparkle"); err == nil {
		t.Error("expected error for unknown effect")
	}
	if e, _ := ParseEffect(""); e != NoEffect {
		t.Errorf("ParseEffect(\"\") = %q, want none", e)
	}
}
