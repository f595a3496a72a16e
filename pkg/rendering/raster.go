package rendering

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control distance for a quarter circle.
const kappa = 0.5522847498

// FillRRect paints the interior of rr with c, source-over, anti-aliased.
func FillRRect(dst draw.Image, rr RRect, c Color) {
	if rr.Rect.IsEmpty() || c.Alpha() == 0 {
		return
	}
	z := newRasterizer(dst)
	addRRect(z, rr, false)
	z.Draw(dst, dst.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})
}

// StrokeRRect paints a border of the given width along the inside of rr's
// outline, so the stroke never extends past the outline.
func StrokeRRect(dst draw.Image, rr RRect, width float64, c Color) {
	if width <= 0 || rr.Rect.IsEmpty() || c.Alpha() == 0 {
		return
	}
	z := newRasterizer(dst)
	addRRect(z, rr, false)
	inner := rr.Rect.Deflate(width)
	if !inner.IsEmpty() {
		// The inner contour winds the other way and cancels the fill.
		addRRect(z, RRect{Rect: inner, Radius: math.Max(0, rr.Radius-width)}, true)
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})
}

func newRasterizer(dst draw.Image) *vector.Rasterizer {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

// addRRect appends a closed rounded rectangle contour. Clockwise unless
// reverse is set.
func addRRect(z *vector.Rasterizer, rr RRect, reverse bool) {
	r := rr.Rect
	rad := RRectFromRectAndRadius(r, rr.Radius).Radius
	k := rad * (1 - kappa)
	l, t, ri, b := float32(r.Left), float32(r.Top), float32(r.Right), float32(r.Bottom)
	rd, kk := float32(rad), float32(k)

	if rad <= epsilon {
		if reverse {
			z.MoveTo(l, t)
			z.LineTo(l, b)
			z.LineTo(ri, b)
			z.LineTo(ri, t)
		} else {
			z.MoveTo(l, t)
			z.LineTo(ri, t)
			z.LineTo(ri, b)
			z.LineTo(l, b)
		}
		z.ClosePath()
		return
	}

	if reverse {
		z.MoveTo(l+rd, t)
		z.CubeTo(l+kk, t, l, t+kk, l, t+rd)
		z.LineTo(l, b-rd)
		z.CubeTo(l, b-kk, l+kk, b, l+rd, b)
		z.LineTo(ri-rd, b)
		z.CubeTo(ri-kk, b, ri, b-kk, ri, b-rd)
		z.LineTo(ri, t+rd)
		z.CubeTo(ri, t+kk, ri-kk, t, ri-rd, t)
		z.ClosePath()
		return
	}
	z.MoveTo(l+rd, t)
	z.LineTo(ri-rd, t)
	z.CubeTo(ri-kk, t, ri, t+kk, ri, t+rd)
	z.LineTo(ri, b-rd)
	z.CubeTo(ri, b-kk, ri-kk, b, ri-rd, b)
	z.LineTo(l+rd, b)
	z.CubeTo(l+kk, b, l, b-kk, l, b-rd)
	z.LineTo(l, t+rd)
	z.CubeTo(l, t+kk, l+kk, t, l+rd, t)
	z.ClosePath()
}
