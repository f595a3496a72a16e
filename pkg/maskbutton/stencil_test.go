package maskbutton_test

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/maskbutton/pkg/maskbutton"
	"github.com/go-drift/maskbutton/pkg/rendering"
)

func stencilRequest(content maskbutton.Content, reversed bool) maskbutton.StencilRequest {
	return maskbutton.StencilRequest{
		Size:     rendering.Size{Width: 100, Height: 60},
		Scale:    1,
		Content:  content,
		Font:     rendering.Font{Size: 24},
		Fonts:    rendering.DefaultFontManager(),
		Fit:      maskbutton.DefaultFitPolicy(),
		Padding:  4,
		Reversed: reversed,
	}
}

func TestStencilReversedSwapsColors(t *testing.T) {
	content := maskbutton.Content{Image: opaqueSquare(20)}
	normal, err := maskbutton.BuildStencil(stencilRequest(content, false))
	if err != nil {
		t.Fatalf("BuildStencil: %v", err)
	}
	reversed, err := maskbutton.BuildStencil(stencilRequest(content, true))
	if err != nil {
		t.Fatalf("BuildStencil: %v", err)
	}
	if normal.Foreground != reversed.Background || normal.Background != reversed.Foreground {
		t.Error("reversed stencil should swap foreground and background")
	}
	white := rendering.ColorWhite.NRGBA()
	if got := normal.Image.RGBAAt(50, 30); got.R != white.R || got.A != 0xFF {
		t.Errorf("normal glyph pixel = %v, want white", got)
	}
	if got := reversed.Image.RGBAAt(50, 30); got.R != 0 || got.A != 0xFF {
		t.Errorf("reversed glyph pixel = %v, want black", got)
	}
	if got := normal.Image.RGBAAt(2, 2); got.R != 0 || got.A != 0xFF {
		t.Errorf("normal background pixel = %v, want black", got)
	}
	if got := reversed.Image.RGBAAt(2, 2); got.R != 0xFF {
		t.Errorf("reversed background pixel = %v, want white", got)
	}
}

func TestStencilOutsideOutlineIsTransparent(t *testing.T) {
	req := stencilRequest(maskbutton.Content{Title: "Hi"}, true)
	req.CornerRadius = 30
	s, err := maskbutton.BuildStencil(req)
	if err != nil {
		t.Fatalf("BuildStencil: %v", err)
	}
	if got := s.Image.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner outside the outline = %v, want transparent", got)
	}
	if s.Kind != maskbutton.ContentText || s.FontSize != 24 || !s.Fit.Fits {
		t.Errorf("stencil = kind %v at %v, fit %+v", s.Kind, s.FontSize, s.Fit)
	}
}

func TestStencilErrors(t *testing.T) {
	if _, err := maskbutton.BuildStencil(stencilRequest(maskbutton.Content{}, false)); !stderrors.Is(err, maskbutton.ErrNoContent) {
		t.Errorf("empty content error = %v", err)
	}
	req := stencilRequest(maskbutton.Content{Title: "Hi"}, false)
	req.Size = rendering.Size{Width: 0.4, Height: 20}
	if _, err := maskbutton.BuildStencil(req); !stderrors.Is(err, maskbutton.ErrDegenerateBounds) {
		t.Errorf("tiny bounds error = %v", err)
	}
}

func TestStencilZeroRequestDefaults(t *testing.T) {
	s, err := maskbutton.BuildStencil(maskbutton.StencilRequest{
		Size:    rendering.Size{Width: 100, Height: 40},
		Content: maskbutton.Content{Title: "OK"},
	})
	if err != nil {
		t.Fatalf("BuildStencil: %v", err)
	}
	if s.FontSize <= 0 || !s.Fit.Fits {
		t.Errorf("default font fit = %v, %+v", s.FontSize, s.Fit)
	}
	if b := s.Image.Bounds(); b.Dx() != 100 || b.Dy() != 40 {
		t.Errorf("stencil bounds = %v, want 100x40", b)
	}
}

func TestStencilUnknownFamilyFallsBack(t *testing.T) {
	req := stencilRequest(maskbutton.Content{Title: "Hi"}, false)
	req.Font = rendering.Font{Family: "Nope", Size: 24}
	s, err := maskbutton.BuildStencil(req)
	if err != nil {
		t.Fatalf("BuildStencil: %v", err)
	}
	if s.MissingFamily != "Nope" {
		t.Errorf("MissingFamily = %q, want %q", s.MissingFamily, "Nope")
	}
	want, err := maskbutton.BuildStencil(stencilRequest(maskbutton.Content{Title: "Hi"}, false))
	if err != nil {
		t.Fatalf("BuildStencil: %v", err)
	}
	if want.MissingFamily != "" {
		t.Errorf("default family reported missing: %q", want.MissingFamily)
	}
	if string(s.Image.Pix) != string(want.Image.Pix) {
		t.Error("unknown family should render like the default family")
	}
}

func TestStencilBorderIsHalfVisible(t *testing.T) {
	req := stencilRequest(maskbutton.Content{Image: opaqueSquare(10)}, false)
	req.BorderWidth = 8
	s, err := maskbutton.BuildStencil(req)
	if err != nil {
		t.Fatalf("BuildStencil: %v", err)
	}
	// An 8pt stroke centered on the edge leaves 4pt inside the outline.
	for x := 0; x < 4; x++ {
		if got := s.Image.RGBAAt(x, 30); got.R != 0xFF {
			t.Errorf("border pixel at x=%d = %v, want white", x, got)
		}
	}
	for x := 4; x < 8; x++ {
		if got := s.Image.RGBAAt(x, 30); got.R != 0 || got.A != 0xFF {
			t.Errorf("pixel at x=%d = %v, want black background", x, got)
		}
	}
}
