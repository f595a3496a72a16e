package rendering

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// FitImage scales img down, preserving aspect ratio, so that neither side
// exceeds maxSide pixels. Images that already fit are returned unscaled.
// Returns nil when img is empty or maxSide is less than one pixel.
func FitImage(img image.Image, maxSide int) *image.NRGBA {
	if img == nil || maxSide < 1 {
		return nil
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil
	}
	return imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)
}

// ScaleImage resizes img by factor, preserving aspect ratio.
func ScaleImage(img image.Image, factor float64) *image.NRGBA {
	b := img.Bounds()
	w := int(math.Round(float64(b.Dx()) * factor))
	h := int(math.Round(float64(b.Dy()) * factor))
	if w < 1 || h < 1 {
		return nil
	}
	if w == b.Dx() && h == b.Dy() {
		return imaging.Clone(img)
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// Template renders img as a template: every pixel takes color c, keeping
// only the source alpha scaled by the alpha of c.
func Template(img image.Image, c Color) *image.NRGBA {
	base := c.NRGBA()
	return imaging.AdjustFunc(img, func(px color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: base.R,
			G: base.G,
			B: base.B,
			A: uint8(uint32(px.A) * uint32(base.A) / 0xFF),
		}
	})
}
