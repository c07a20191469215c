package document

import (
	"errors"
	"image/color"
	"testing"

	"github.com/fogleman/gg"
	"github.com/linuxmatters/magiccanvas/internal/draw"
	"github.com/linuxmatters/magiccanvas/internal/filter"
	"github.com/linuxmatters/magiccanvas/internal/history"
	"github.com/linuxmatters/magiccanvas/internal/palette"
	"github.com/linuxmatters/magiccanvas/internal/preset"
)

func TestNewDefaults(t *testing.T) {
	d := New()
	if d.Text != "MAGIC CANVAS" || d.FontSize != 40 || d.Width != 800 || d.Height != 400 {
		t.Errorf("unexpected defaults: %+v", d)
	}
	if d.TextColor.Hex() != "#FF6B6B" || d.Background.Hex() != "#4ECDC4" {
		t.Errorf("colours = %s on %s", d.TextColor.Hex(), d.Background.Hex())
	}
	if d.Arc.Radius != 150 || d.Arc.StartAngle != 180 || d.Arc.Sweep != 180 {
		t.Errorf("arc = %+v", d.Arc)
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := New()
	d.Gradient = &Gradient{Kind: draw.Radial}
	d.Shapes = []Shape{{Kind: Polygon, Vertices: []gg.Point{{X: 1}, {X: 2}, {X: 3}}}}

	c := d.Clone()
	if !c.Equal(d) {
		t.Fatal("clone differs from original")
	}
	c.Gradient.Kind = draw.Vertical
	c.Shapes[0].Vertices[0].X = 99
	if d.Gradient.Kind != draw.Radial || d.Shapes[0].Vertices[0].X != 1 {
		t.Error("mutating the clone leaked into the original")
	}
	if c.Equal(d) {
		t.Error("Equal should notice the change")
	}
}

// roundTrip executes cmd, undoes and redoes it, checking the document each
// time.
func roundTrip(t *testing.T, cmd Command) *Document {
	t.Helper()
	d := New()
	before := d.Clone()
	h := history.New(d, 0)

	if err := h.Execute(cmd); err != nil {
		t.Fatalf("Execute(%s): %v", cmd.Description(), err)
	}
	after := d.Clone()
	if after.Equal(before) {
		t.Fatalf("%s changed nothing", cmd.Description())
	}

	if err := h.Undo(); err != nil {
		t.Fatal(err)
	}
	if !d.Equal(before) {
		t.Errorf("undo %s did not restore the document", cmd.Description())
	}
	if err := h.Redo(); err != nil {
		t.Fatal(err)
	}
	if !d.Equal(after) {
		t.Errorf("redo %s did not reproduce the change", cmd.Description())
	}
	return d
}

func TestCommandsRoundTrip(t *testing.T) {
	card, _ := preset.CanvasByName("Business Card (US)")
	story, _ := preset.TemplateByName("Instagram Story")

	tests := []struct {
		name string
		cmd  Command
	}{
		{"text", SetText("HELLO")},
		{"font family", SetFontFamily("Liberation Serif")},
		{"font style", SetFontStyle("Italic")},
		{"font size", SetFontSize(64)},
		{"text color", SetTextColor(palette.RGB{R: 1, G: 2, B: 3})},
		{"effect color", SetEffectColor(palette.RGB{R: 9})},
		{"background", SetBackground(palette.RGB{R: 10, G: 20, B: 30})},
		{"gradient", SetGradient(&Gradient{Kind: draw.Diagonal, From: palette.RGB{R: 255}})},
		{"canvas size", SetCanvasSize(1080, 1080)},
		{"dpi", SetDPI(300)},
		{"arc", SetArc(ArcGeometry{Radius: 200, StartAngle: 150, Sweep: 120})},
		{"effect", SetEffect(draw.Glow)},
		{"frame", SetFrame(false)},
		{"filter", SetFilterPreset("vintage")},
		{"add shape", AddShape(Shape{Kind: Circle, X: 10, Y: 10, Radius: 5})},
		{"preset", ApplyPreset(card)},
		{"template", ApplyTemplate(story)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roundTrip(t, tt.cmd)
		})
	}
}

func TestValidationLeavesDocumentUntouched(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want error
	}{
		{"font size too small", SetFontSize(2), ErrOutOfRange},
		{"font size too large", SetFontSize(1000), ErrOutOfRange},
		{"zero width", SetCanvasSize(0, 400), ErrOutOfRange},
		{"negative height", SetCanvasSize(800, -1), ErrOutOfRange},
		{"empty family", SetFontFamily("  "), ErrInvalidValue},
		{"bad effect", SetEffect("sparkle"), ErrInvalidValue},
		{"bad gradient", SetGradient(&Gradient{Kind: "conic"}), ErrInvalidValue},
		{"zero radius", SetArc(ArcGeometry{Radius: 0, Sweep: 90}), draw.ErrInvalidRadius},
		{"unknown filter", SetFilterPreset("lomo"), filter.ErrUnknownPreset},
		{"bad shape", AddShape(Shape{Kind: Star, Points: 1}), ErrOutOfRange},
		{"missing shape", RemoveShape(0), ErrNoSuchShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			before := d.Clone()
			h := history.New(d, 0)
			if err := h.Execute(tt.cmd); !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if !d.Equal(before) {
				t.Error("failed command mutated the document")
			}
			if h.CanUndo() {
				t.Error("failed command was recorded")
			}
		})
	}
}

func TestSetArcClampsSweep(t *testing.T) {
	d := roundTrip(t, SetArc(ArcGeometry{Radius: 100, StartAngle: 90, Sweep: 900}))
	if d.Arc.Sweep != 360 {
		t.Errorf("sweep = %v, want 360", d.Arc.Sweep)
	}
}

func TestSetBackgroundClearsGradient(t *testing.T) {
	d := New()
	h := history.New(d, 0)
	_ = h.Execute(SetGradient(&Gradient{Kind: draw.Horizontal}))
	_ = h.Execute(SetBackground(palette.RGB{R: 1}))
	if d.Gradient != nil {
		t.Error("solid background should clear the gradient")
	}
	_ = h.Undo()
	if d.Gradient == nil || d.Gradient.Kind != draw.Horizontal {
		t.Error("undo should bring the gradient back")
	}
}

func TestRemoveShapeRestoresPosition(t *testing.T) {
	d := New()
	h := history.New(d, 0)
	red := color.NRGBA{R: 255, A: 255}
	for i := 0; i < 3; i++ {
		_ = h.Execute(AddShape(Shape{Kind: Rectangle, X: float64(i), X2: 10, Y2: 10, Fill: red}))
	}

	if err := h.Execute(RemoveShape(1)); err != nil {
		t.Fatal(err)
	}
	if len(d.Shapes) != 2 || d.Shapes[1].X != 2 {
		t.Fatalf("shapes after remove = %+v", d.Shapes)
	}
	_ = h.Undo()
	if len(d.Shapes) != 3 || d.Shapes[1].X != 1 {
		t.Errorf("shapes after undo = %+v", d.Shapes)
	}
}

func TestDescriptions(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{SetFontSize(42), "Font size: 42pt"},
		{SetCanvasSize(1920, 1080), "Canvas size: 1920x1080"},
		{SetFrame(true), "Frame: on"},
		{SetFilterPreset(""), "Filter: none"},
		{RemoveShape(0), "Remove shape 1"},
	}
	for _, tt := range tests {
		if got := tt.cmd.Description(); got != tt.want {
			t.Errorf("Description() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		spec string
		want Shape
	}{
		{"circle:50,60,10", Shape{Kind: Circle, X: 50, Y: 60, Radius: 10, Fill: color.NRGBA{A: 255}}},
		{"rect:0,0,100,50,8:#FF0000", Shape{Kind: Rectangle, X2: 100, Y2: 50, Radius: 8, Fill: color.NRGBA{R: 255, A: 255}}},
		{"star:10,10,20,8,5::#0000FF:3", Shape{
			Kind: Star, X: 10, Y: 10, Radius: 20, InnerRadius: 8, Points: 5,
			Stroke: color.NRGBA{B: 255, A: 255}, StrokeWidth: 3,
		}},
		{"polygon:0,0,10,0,5,8", Shape{Kind: Polygon, Fill: color.NRGBA{A: 255},
			Vertices: []gg.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseShape(tt.spec)
			if err != nil {
				t.Fatalf("ParseShape: %v", err)
			}
			if !got.equal(tt.want) {
				t.Errorf("ParseShape = %+v, want %+v", got, tt.want)
			}
		})
	}

	for _, bad := range []string{"circle", "hexagon:1,2,3", "circle:1,2", "circle:1,2,x", "polygon:1,2,3", "circle:1,2,3:#GGGGGG"} {
		if _, err := ParseShape(bad); err == nil {
			t.Errorf("ParseShape(%q) should fail", bad)
		}
	}
}
