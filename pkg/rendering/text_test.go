package rendering

import (
	stderrors "errors"
	"image"
	"testing"
)

func TestFontManagerBundledFamilies(t *testing.T) {
	m, err := NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager: %v", err)
	}
	families := m.Families()
	if len(families) != 2 || families[0] != DefaultFontFamily || families[1] != BoldFontFamily {
		t.Errorf("Families() = %v", families)
	}
	if m.DefaultFont().Family != DefaultFontFamily {
		t.Errorf("DefaultFont() = %+v", m.DefaultFont())
	}
}

func TestMeasureScalesWithSize(t *testing.T) {
	m := DefaultFontManager()
	small, err := m.Measure("Hello", Font{Size: 10})
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	large, err := m.Measure("Hello", Font{Size: 40})
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if small.Width <= 0 || large.Width <= 3*small.Width {
		t.Errorf("widths at 10pt and 40pt = %v, %v; want roughly proportional", small.Width, large.Width)
	}
	if large.Height() <= small.Height() {
		t.Errorf("heights = %v, %v", small.Height(), large.Height())
	}
}

func TestFaceErrors(t *testing.T) {
	m := DefaultFontManager()
	if _, err := m.Face(Font{Family: "Missing", Size: 12}, 1); !stderrors.Is(err, ErrUnknownFont) {
		t.Errorf("Face(unknown) error = %v, want ErrUnknownFont", err)
	}
	if err := m.RegisterFont("Broken", []byte("not a font")); err == nil {
		t.Error("RegisterFont should reject invalid data")
	}
	if err := m.RegisterFont("", nil); err == nil {
		t.Error("RegisterFont should require a name")
	}
}

func TestDrawText(t *testing.T) {
	face, err := DefaultFontManager().Face(Font{Size: 24}, 1)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	defer face.Close()
	img := image.NewRGBA(image.Rect(0, 0, 60, 30))
	DrawText(img, face, "W", Offset{X: 5, Y: 24}, ColorWhite)
	inked := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			inked++
		}
	}
	if inked == 0 {
		t.Error("DrawText left the image blank")
	}
}
