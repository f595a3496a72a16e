package rendering

import (
	"image/color"
	"testing"
)

func TestAngledGradientAxis(t *testing.T) {
	g := AngledGradient(ColorRed, ColorBlue, 0)
	if g.Start != unitTopCenter || g.End != unitBottomCenter {
		t.Errorf("axis = %+v -> %+v, want top-center -> bottom-center", g.Start, g.End)
	}
	if g.Stops[0].Color != ColorRed || g.Stops[1].Color != ColorBlue {
		t.Errorf("stops = %v, want red then blue", g.Stops)
	}
	g = AngledGradient(ColorRed, ColorBlue, 90)
	if g.Start != (Offset{X: 1, Y: 0.5}) || g.End != (Offset{X: 0, Y: 0.5}) {
		t.Errorf("90 degree axis = %+v -> %+v", g.Start, g.End)
	}
}

func TestRasterizeSolid(t *testing.T) {
	img := AngledGradient(ColorGreen, ColorGreen, 33).Rasterize(8, 5)
	want := color.RGBA{G: 0xFF, A: 0xFF}
	for y := 0; y < 5; y++ {
		for x := 0; x < 8; x++ {
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRasterizeVertical(t *testing.T) {
	img := AngledGradient(ColorBlack, ColorWhite, 0).Rasterize(4, 100)
	top := img.RGBAAt(2, 0)
	bottom := img.RGBAAt(2, 99)
	if top.R > 5 {
		t.Errorf("top pixel = %v, want near black", top)
	}
	if bottom.R < 250 {
		t.Errorf("bottom pixel = %v, want near white", bottom)
	}
	mid := img.RGBAAt(2, 50)
	if mid.R < 120 || mid.R > 135 {
		t.Errorf("middle pixel = %v, want mid grey", mid)
	}
	if left, right := img.RGBAAt(0, 30), img.RGBAAt(3, 30); left != right {
		t.Errorf("vertical gradient varies across a row: %v vs %v", left, right)
	}

	flipped := AngledGradient(ColorBlack, ColorWhite, 180).Rasterize(4, 100)
	if flipped.RGBAAt(2, 0).R < 250 {
		t.Errorf("180 degree gradient should start white at the top, got %v", flipped.RGBAAt(2, 0))
	}
}

func TestGradientAtClamps(t *testing.T) {
	g := AngledGradient(ColorRed, ColorBlue, 0)
	if got := g.At(-1); got != ColorRed {
		t.Errorf("At(-1) = %v, want start", got)
	}
	if got := g.At(2); got != ColorBlue {
		t.Errorf("At(2) = %v, want end", got)
	}
	for _, space := range []InterpolationSpace{SpaceRGB, SpaceLinearRGB, SpaceLab} {
		g.Space = space
		mid := g.At(0.5)
		if mid == ColorRed || mid == ColorBlue || mid.Alpha() != 0xFF {
			t.Errorf("%v midpoint = %v, want an opaque blend", space, mid)
		}
	}
}

func TestParseInterpolationSpace(t *testing.T) {
	tests := map[string]InterpolationSpace{"": SpaceRGB, "rgb": SpaceRGB, "linear": SpaceLinearRGB, "lab": SpaceLab}
	for in, want := range tests {
		got, err := ParseInterpolationSpace(in)
		if err != nil || got != want {
			t.Errorf("ParseInterpolationSpace(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseInterpolationSpace("hsv"); err == nil {
		t.Error("expected an error for an unknown space")
	}
}
