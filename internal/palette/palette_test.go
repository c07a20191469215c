package palette

import (
	"errors"
	"testing"
)

func TestComplementary(t *testing.T) {
	got := ComplementaryOf(RGB{255, 0, 0})
	want := []RGB{{255, 0, 0}, {0, 255, 255}}
	if len(got) != len(want) {
		t.Fatalf("ComplementaryOf(red) returned %d colours, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ComplementaryOf(red)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHarmonies(t *testing.T) {
	red := RGB{255, 0, 0}
	tests := []struct {
		harmony Harmony
		want    []RGB
	}{
		{Analogous, []RGB{{255, 0, 128}, red, {255, 128, 0}}},
		{Triadic, []RGB{red, {0, 255, 0}, {0, 0, 255}}},
		{Tetradic, []RGB{red, {128, 255, 0}, {0, 255, 255}, {128, 0, 255}}},
	}

	for _, tt := range tests {
		t.Run(string(tt.harmony), func(t *testing.T) {
			got, err := Generate(tt.harmony, red, 0)
			if err != nil {
				t.Fatalf("Generate error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d colours, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMonochromatic(t *testing.T) {
	got := MonochromaticOf(RGB{255, 0, 0}, 5)
	if len(got) != 5 {
		t.Fatalf("got %d colours, want 5", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].R <= got[i-1].R {
			t.Errorf("value ramp not increasing at %d: %v", i, got)
		}
		if got[i].G != 0 || got[i].B != 0 {
			t.Errorf("hue drifted at %d: %v", i, got[i])
		}
	}
	if got[4] != (RGB{255, 0, 0}) {
		t.Errorf("last step = %v, want full value red", got[4])
	}

	if one := MonochromaticOf(RGB{10, 20, 30}, 1); len(one) != 1 || one[0] != (RGB{10, 20, 30}) {
		t.Errorf("count 1 = %v, want base colour", one)
	}
	if none := MonochromaticOf(RGB{10, 20, 30}, 0); none != nil {
		t.Errorf("count 0 = %v, want nil", none)
	}
}

func TestParseHarmony(t *testing.T) {
	h, err := ParseHarmony("TRIADIC")
	if err != nil || h != Triadic {
		t.Errorf("ParseHarmony(TRIADIC) = %q, %v", h, err)
	}
	if _, err := ParseHarmony("split"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ParseHarmony(split) error = %v, want ErrNotFound", err)
	}
}

func TestColorUtils(t *testing.T) {
	gray := RGB{100, 100, 100}

	if got := Lighten(gray, 0.5); got != (RGB{177, 177, 177}) {
		t.Errorf("Lighten = %v", got)
	}
	if got := Darken(gray, 0.5); got != (RGB{50, 50, 50}) {
		t.Errorf("Darken = %v", got)
	}
	if got := Lighten(gray, 5); got != (RGB{255, 255, 255}) {
		t.Errorf("Lighten past 1.0 = %v, want white", got)
	}
	if got := Darken(gray, -1); got != gray {
		t.Errorf("Darken below 0.0 = %v, want unchanged", got)
	}
	if got := Blend(RGB{0, 0, 0}, RGB{255, 255, 255}, 0.5); got != (RGB{128, 128, 128}) {
		t.Errorf("Blend = %v", got)
	}
	if got := Blend(RGB{1, 2, 3}, RGB{200, 200, 200}, 0); got != (RGB{1, 2, 3}) {
		t.Errorf("Blend ratio 0 = %v", got)
	}
}

func TestHexRoundTrip(t *testing.T) {
	c, err := ParseHex("#4ecdc4")
	if err != nil {
		t.Fatal(err)
	}
	if c.Hex() != "#4ECDC4" {
		t.Errorf("Hex() = %q", c.Hex())
	}
	if _, err := ParseHex("nope"); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestLibrary(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("All() returned %d palettes, want 10", len(all))
	}

	p, err := ByName("ocean")
	if err != nil {
		t.Fatalf("ByName(ocean): %v", err)
	}
	if p.Name() != "Ocean" || p.Len() != 5 {
		t.Errorf("unexpected palette %q with %d colours", p.Name(), p.Len())
	}
	if p.Color(5) != p.Color(0) || p.Color(-1) != p.Color(4) {
		t.Error("Color should wrap in both directions")
	}

	if _, err := ByName("Neon"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ByName(Neon) error = %v, want ErrNotFound", err)
	}
}

func TestPaletteIsImmutable(t *testing.T) {
	p, _ := ByName("Sunset")
	colors := p.Colors()
	colors[0] = RGB{}

	again, _ := ByName("Sunset")
	if again.Color(0) == (RGB{}) {
		t.Error("mutating Colors() result leaked into the registry")
	}

	grown := p.With(RGB{1, 1, 1})
	if grown.Len() != p.Len()+1 || p.Len() != 5 {
		t.Errorf("With changed the source palette: %d -> %d", p.Len(), grown.Len())
	}
	shrunk := p.Without(0)
	if shrunk.Len() != 4 || shrunk.Color(0) != p.Color(1) {
		t.Errorf("Without(0) = %v", shrunk.Colors())
	}
	if p.Without(99).Len() != 5 {
		t.Error("Without out of range should not remove anything")
	}
}
