package maskbutton_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-drift/maskbutton/pkg/errors"
	"github.com/go-drift/maskbutton/pkg/rendering"
)

// collectErrors routes reported errors into a Collector for the duration of
// the test.
func collectErrors(t *testing.T) *errors.Collector {
	t.Helper()
	c := &errors.Collector{}
	errors.SetHandler(c)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return c
}

func opaqueSquare(n int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	return img
}

// brightestPixel returns the location of the largest mask value.
func brightestPixel(mask *image.Alpha) (image.Point, uint8) {
	var at image.Point
	var best uint8
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if a := mask.AlphaAt(x, y).A; a > best {
				best, at = a, image.Pt(x, y)
			}
		}
	}
	return at, best
}

type fakeHost struct {
	tint      rendering.Color
	requests  int
	onTint    func()
	onRequest func()
}

func (h *fakeHost) RequestLayout() {
	h.requests++
	if h.onRequest != nil {
		h.onRequest()
	}
}

func (h *fakeHost) InheritedTintColor() rendering.Color {
	if h.onTint != nil {
		h.onTint()
	}
	return h.tint
}

var opaqueRed = color.RGBA{R: 0xFF, A: 0xFF}
