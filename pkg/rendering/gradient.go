package rendering

import (
	"fmt"
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// InterpolationSpace selects the color space gradient stops are blended in.
type InterpolationSpace int

const (
	// SpaceRGB blends gamma-encoded sRGB components, like most UI toolkits.
	SpaceRGB InterpolationSpace = iota
	// SpaceLinearRGB blends in linear light.
	SpaceLinearRGB
	// SpaceLab blends in CIE L*a*b*.
	SpaceLab
)

// String returns a human-readable representation of the interpolation space.
func (s InterpolationSpace) String() string {
	switch s {
	case SpaceRGB:
		return "rgb"
	case SpaceLinearRGB:
		return "linear"
	case SpaceLab:
		return "lab"
	default:
		return fmt.Sprintf("InterpolationSpace(%d)", int(s))
	}
}

// ParseInterpolationSpace maps "rgb", "linear" and "lab" to a space.
// The empty string selects SpaceRGB.
func ParseInterpolationSpace(s string) (InterpolationSpace, error) {
	switch s {
	case "", "rgb":
		return SpaceRGB, nil
	case "linear":
		return SpaceLinearRGB, nil
	case "lab":
		return SpaceLab, nil
	}
	return SpaceRGB, fmt.Errorf("unknown interpolation space %q", s)
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// Gradient is a two-stop linear gradient. Start and End are expressed in the
// unit square of the layer it fills: (0,0) is the top-left corner and (1,1)
// the bottom-right.
type Gradient struct {
	Start Offset
	End   Offset
	Stops [2]GradientStop
	Space InterpolationSpace
}

var (
	unitCenter       = Offset{X: 0.5, Y: 0.5}
	unitTopCenter    = Offset{X: 0.5, Y: 0}
	unitBottomCenter = Offset{X: 0.5, Y: 1}
)

// AngledGradient builds a gradient whose axis runs top-to-bottom at 0 degrees
// and is rotated clockwise about the center of the unit square by degrees.
func AngledGradient(start, end Color, degrees float64) *Gradient {
	return &Gradient{
		Start: unitTopCenter.RotatedAroundDegrees(unitCenter, degrees),
		End:   unitBottomCenter.RotatedAroundDegrees(unitCenter, degrees),
		Stops: [2]GradientStop{
			{Position: 0, Color: start},
			{Position: 1, Color: end},
		},
	}
}

// IsSolid reports whether both stops share a color.
func (g *Gradient) IsSolid() bool {
	return g.Stops[0].Color == g.Stops[1].Color
}

// At returns the color at parameter t along the axis, clamped to [0, 1].
func (g *Gradient) At(t float64) Color {
	a, b := g.Stops[0], g.Stops[1]
	if t <= a.Position || a.Color == b.Color {
		return a.Color
	}
	if t >= b.Position {
		return b.Color
	}
	span := b.Position - a.Position
	if span <= epsilon {
		return b.Color
	}
	return blend(a.Color, b.Color, (t-a.Position)/span, g.Space)
}

// Rasterize fills a width x height premultiplied image with the gradient.
// The unit square is stretched over the whole image.
func (g *Gradient) Rasterize(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	sx, sy := g.Start.X*float64(width), g.Start.Y*float64(height)
	dx, dy := g.End.X*float64(width)-sx, g.End.Y*float64(height)-sy
	lenSq := dx*dx + dy*dy
	solid := g.IsSolid() || lenSq <= epsilon
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride:]
		py := float64(y) + 0.5
		for x := 0; x < width; x++ {
			c := g.Stops[0].Color
			if !solid {
				px := float64(x) + 0.5
				t := ((px-sx)*dx + (py-sy)*dy) / lenSq
				c = g.At(math.Max(0, math.Min(1, t)))
			}
			putPremultiplied(row[x*4:], c)
		}
	}
	return img
}

func blend(a, b Color, t float64, space InterpolationSpace) Color {
	alpha := lerpByte(a.Alpha(), b.Alpha(), t)
	switch space {
	case SpaceLinearRGB, SpaceLab:
		ca := toColorful(a)
		cb := toColorful(b)
		var mixed colorful.Color
		if space == SpaceLab {
			mixed = ca.BlendLab(cb, t)
		} else {
			ar, ag, ab := ca.LinearRgb()
			br, bg, bb := cb.LinearRgb()
			mixed = colorful.LinearRgb(ar+(br-ar)*t, ag+(bg-ag)*t, ab+(bb-ab)*t)
		}
		r, g, bl := mixed.Clamped().RGB255()
		return RGBA(r, g, bl, alpha)
	default:
		return RGBA(
			lerpByte(uint8(a>>16), uint8(b>>16), t),
			lerpByte(uint8(a>>8), uint8(b>>8), t),
			lerpByte(uint8(a), uint8(b), t),
			alpha,
		)
	}
}

func toColorful(c Color) colorful.Color {
	r, g, b, _ := c.RGBAF()
	return colorful.Color{R: r, G: g, B: b}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// putPremultiplied writes c into a 4-byte RGBA pixel.
func putPremultiplied(px []uint8, c Color) {
	a := uint32(c.Alpha())
	px[0] = uint8(uint32(uint8(c>>16)) * a / 0xFF)
	px[1] = uint8(uint32(uint8(c>>8)) * a / 0xFF)
	px[2] = uint8(uint32(uint8(c)) * a / 0xFF)
	px[3] = uint8(a)
}
