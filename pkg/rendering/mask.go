package rendering

import (
	"image"
	"image/draw"
)

// MaskToAlpha converts the luminance of a premultiplied image into per-pixel
// alpha. White becomes opaque, black and transparent pixels become clear.
func MaskToAlpha(src *image.RGBA) *image.Alpha {
	b := src.Bounds()
	out := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		in := src.Pix[(y)*src.Stride:]
		row := out.Pix[y*out.Stride:]
		for x := 0; x < b.Dx(); x++ {
			p := in[x*4:]
			// Rec. 709 luma in 16.16 fixed point.
			l := (13933*uint32(p[0]) + 46871*uint32(p[1]) + 4732*uint32(p[2]) + 1<<15) >> 16
			if l > 0xFF {
				l = 0xFF
			}
			row[x] = uint8(l)
		}
	}
	return out
}

// ApplyMask returns src with its alpha multiplied by mask. A nil mask returns
// an unmasked copy.
func ApplyMask(src *image.RGBA, mask *image.Alpha) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if mask == nil {
		draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
		return out
	}
	draw.DrawMask(out, out.Bounds(), src, b.Min, mask, mask.Bounds().Min, draw.Src)
	return out
}
