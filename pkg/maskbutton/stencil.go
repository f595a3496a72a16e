package maskbutton

import (
	stderrors "errors"
	"image"
	"image/draw"
	"math"

	"github.com/go-drift/maskbutton/pkg/rendering"
)

var (
	// ErrNoContent means neither a title nor an image resolved. The button is
	// rendered unmasked.
	ErrNoContent = stderrors.New("no title or image for state")
	// ErrDegenerateBounds means the bounds or the fitted image are smaller
	// than one pixel.
	ErrDegenerateBounds = stderrors.New("bounds too small to rasterize")
	// ErrNoGradientColor means no gradient start color could be resolved.
	ErrNoGradientColor = stderrors.New("no gradient color: set a start color, background, tint or theme accent")
	// ErrNoFonts means no font manager was given and the shared one failed
	// to initialize.
	ErrNoFonts = stderrors.New("no font manager available")
)

// StencilRequest holds the inputs of a stencil build.
type StencilRequest struct {
	// Size is the button size in points.
	Size rendering.Size
	// Scale is the number of pixels per point.
	Scale float64
	// Content is the resolved title or image.
	Content Content
	// Font is the configured title font before fitting.
	Font rendering.Font
	// Fonts defaults to rendering.DefaultFontManager.
	Fonts *rendering.FontManager
	// Fit and Padding control title shrinking. A zero Fit is the default
	// policy.
	Fit     FitPolicy
	Padding float64

	BorderWidth  float64
	CornerRadius float64
	Reversed     bool
}

// Stencil is a monochrome rendering of the outline and glyph. Foreground
// pixels are white and background pixels black; Reversed swaps the two.
// Pixels outside the rounded outline are transparent.
type Stencil struct {
	Image      *image.RGBA
	Kind       ContentKind
	Foreground rendering.Color
	Background rendering.Color
	// FontSize is the fitted title size in points, zero for images.
	FontSize float64
	// Fit is the title fit outcome, zero for images.
	Fit FitResult
	// MissingFamily is the requested font family when it was not registered
	// and the default family was drawn instead.
	MissingFamily string
}

// StencilColors returns the foreground and background stencil colors.
func StencilColors(reversed bool) (fg, bg rendering.Color) {
	if reversed {
		return rendering.ColorBlack, rendering.ColorWhite
	}
	return rendering.ColorWhite, rendering.ColorBlack
}

// BuildStencil rasterizes the outline and content of req. It returns
// ErrNoContent when there is nothing to draw and ErrDegenerateBounds when
// the bounds or the fitted image are empty.
func BuildStencil(req StencilRequest) (*Stencil, error) {
	kind := req.Content.Kind()
	if kind == ContentNone {
		return nil, ErrNoContent
	}
	if req.Scale <= 0 {
		req.Scale = 1
	}
	req.Fit = req.Fit.normalized()
	px := req.Size.Scale(req.Scale)
	if px.IsEmpty() {
		return nil, ErrDegenerateBounds
	}
	w, h := px.Pixels()
	fg, bg := StencilColors(req.Reversed)
	s := &Stencil{
		Image:      image.NewRGBA(image.Rect(0, 0, w, h)),
		Kind:       kind,
		Foreground: fg,
		Background: bg,
	}

	var glyph *image.RGBA
	var err error
	switch kind {
	case ContentText:
		glyph, err = s.textLayer(req, w, h)
	case ContentImage:
		glyph, err = s.imageLayer(req, w, h)
	}
	if err != nil {
		return nil, err
	}

	outline := rendering.RRectFromRectAndRadius(
		rendering.RectFromLTWH(0, 0, float64(w), float64(h)),
		req.CornerRadius*req.Scale,
	)
	rendering.FillRRect(s.Image, outline, bg)
	// The border is stroked centered on the outline, which is the image edge,
	// so only its inner half lands on the stencil.
	rendering.StrokeRRect(s.Image, outline, req.BorderWidth*req.Scale/2, fg)
	// The glyph is unioned onto the outline so both form one stencil region.
	draw.Draw(s.Image, s.Image.Bounds(), glyph, image.Point{}, draw.Over)
	return s, nil
}

// textLayer fits the title to the available width and draws it centered,
// on a single line.
func (s *Stencil) textLayer(req StencilRequest, w, h int) (*image.RGBA, error) {
	if req.Fonts == nil {
		req.Fonts = rendering.DefaultFontManager()
		if req.Fonts == nil {
			return nil, ErrNoFonts
		}
	}
	if f, ok := req.Fonts.Resolve(req.Font); !ok {
		s.MissingFamily = req.Font.Family
		req.Font = f
	}
	available := req.Size.Width - 2*req.Padding - 2*req.BorderWidth
	fit, err := FitFontSize(req.Fonts, req.Content.Title, req.Font, available, req.Fit)
	if err != nil {
		return nil, err
	}
	s.Fit = fit
	s.FontSize = fit.Size

	face, err := req.Fonts.Face(req.Font.WithSize(fit.Size), req.Scale)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	m := rendering.MeasureFace(face, req.Content.Title)
	origin := rendering.Offset{
		X: (float64(w) - m.Width) / 2,
		Y: (float64(h)-m.Height())/2 + m.Ascent,
	}
	layer := image.NewRGBA(image.Rect(0, 0, w, h))
	rendering.DrawText(layer, face, req.Content.Title, origin, s.Foreground)
	return layer, nil
}

// imageLayer renders the image as a template in the foreground color,
// scaled down (never up) to fit the larger button side, and centered.
func (s *Stencil) imageLayer(req StencilRequest, w, h int) (*image.RGBA, error) {
	fitted := rendering.FitImage(req.Content.Image, int(math.Floor(req.Size.MaxDimension())))
	if fitted == nil {
		return nil, ErrDegenerateBounds
	}
	if req.Scale != 1 {
		fitted = rendering.ScaleImage(fitted, req.Scale)
		if fitted == nil {
			return nil, ErrDegenerateBounds
		}
	}
	tinted := rendering.Template(fitted, s.Foreground)
	ib := tinted.Bounds()
	at := image.Pt((w-ib.Dx())/2, (h-ib.Dy())/2)

	layer := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(layer, ib.Add(at), tinted, image.Point{}, draw.Over)
	return layer, nil
}
