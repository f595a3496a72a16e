package maskbutton

import (
	stderrors "errors"
	"fmt"
	"image"

	"github.com/go-drift/maskbutton/pkg/errors"
	"github.com/go-drift/maskbutton/pkg/rendering"
)

var errReentrantLayout = stderrors.New("configuration changed during layout; deferred to the next pass")

// Layers is the output of a layout pass.
type Layers struct {
	// Bounds is the rectangle the layers were laid out for.
	Bounds rendering.Rect
	// Scale is the number of pixels per point of the rasters.
	Scale float64
	// Content is the gradient with the mask applied, premultiplied. Nil when
	// the button is inert (no gradient color or degenerate bounds).
	Content *image.RGBA
	// Mask is the alpha mask applied to Content. Nil for an empty button,
	// in which case Content is the unmasked gradient.
	Mask *image.Alpha
	// Alpha is the opacity to composite Content at.
	Alpha float64
	// NativeContentHidden tells the host to hide its own title and image.
	NativeContentHidden bool
	// FontSize is the fitted title size, zero when no title is shown.
	FontSize float64
	// Kind is the content kind the mask was built from.
	Kind ContentKind
}

// IsInert reports whether nothing visible is drawn.
func (l Layers) IsInert() bool {
	return l.Content == nil
}

type gradientLayer struct {
	width, height int
	gradient      *rendering.Gradient
	image         *image.RGBA
}

type stencilLayer struct {
	width, height int
	source        State
	kind          ContentKind
	stencil       *Stencil
}

// Layout runs a layout pass for bounds: it rebuilds any empty or stale cache
// slot, composites the gradient through the stencil mask and applies the
// current dimming. It never panics; failures degrade to an inert result.
func (b *Button) Layout(bounds rendering.Rect) (out Layers) {
	b.inLayout = true
	defer func() {
		b.inLayout = false
		b.needsLayout = false
		if p := b.pending; p != 0 {
			b.pending = 0
			b.invalidate(p)
		}
	}()
	defer errors.RecoverWithCallback("maskbutton.Layout", func(any) {
		b.gradient = nil
		b.stencil = nil
		out = Layers{Bounds: bounds, Scale: b.opts.Scale, Alpha: b.alpha, NativeContentHidden: true}
	})
	return b.layout(bounds)
}

// LayoutIfNeeded runs Layout with the last bounds when a pass is pending.
// It reports whether a pass ran.
func (b *Button) LayoutIfNeeded() (Layers, bool) {
	if !b.needsLayout || b.bounds.IsEmpty() {
		return Layers{}, false
	}
	return b.Layout(b.bounds), true
}

func (b *Button) layout(bounds rendering.Rect) Layers {
	b.bounds = bounds
	b.captureAppearance()

	out := Layers{
		Bounds:              bounds,
		Scale:               b.opts.Scale,
		NativeContentHidden: true,
	}
	px := bounds.Size().Scale(b.opts.Scale)
	if px.IsEmpty() {
		// Caches are kept; the next pass with usable bounds rebuilds them.
		b.applyDimming()
		out.Alpha = b.alpha
		return out
	}
	w, h := px.Pixels()

	gradient := b.ensureGradient(w, h)
	stencil := b.ensureStencil(bounds.Size(), w, h)

	b.applyDimming()
	out.Alpha = b.alpha
	if gradient == nil {
		return out
	}
	if stencil != nil {
		out.Mask = rendering.MaskToAlpha(stencil.stencil.Image)
		out.FontSize = stencil.stencil.FontSize
		out.Kind = stencil.kind
	}
	out.Content = rendering.ApplyMask(gradient.image, out.Mask)
	return out
}

// captureAppearance records the baseline alpha the first time it is non-zero,
// and moves the background and tint colors into the snapshot on first layout.
func (b *Button) captureAppearance() {
	if b.baselineAlpha == 0 && b.alpha > 0 {
		b.baselineAlpha = b.alpha
	}
	if !b.appearanceCaptured {
		b.appearanceCaptured = true
		b.baselineBackground, b.backgroundColor = b.backgroundColor, 0
		b.baselineTint, b.tintColor = b.tintColor, 0
	}
}

func (b *Button) ensureGradient(w, h int) *gradientLayer {
	if g := b.gradient; g != nil && g.width == w && g.height == h {
		return g
	}
	b.gradient = nil
	start, end, ok := b.resolveGradientColors()
	if !ok {
		if !b.colorWarned {
			b.colorWarned = true
			errors.Report(&errors.DriftError{
				Op:   "maskbutton.Layout",
				Kind: errors.KindConfig,
				Err:  ErrNoGradientColor,
			})
		}
		return nil
	}
	g := rendering.AngledGradient(start, end, b.angle)
	g.Space = b.space
	b.gradient = &gradientLayer{
		width:    w,
		height:   h,
		gradient: g,
		image:    g.Rasterize(w, h),
	}
	return b.gradient
}

func (b *Button) ensureStencil(size rendering.Size, w, h int) *stencilLayer {
	content, source := b.content.resolve(b.State())
	if s := b.stencil; s != nil && s.width == w && s.height == h &&
		s.source == source && s.kind == content.Kind() {
		if s.stencil == nil {
			return nil
		}
		return s
	}
	b.stencil = nil
	st, err := BuildStencil(StencilRequest{
		Size:         size,
		Scale:        b.opts.Scale,
		Content:      content,
		Font:         b.font,
		Fonts:        b.opts.Fonts,
		Fit:          b.opts.Fit,
		Padding:      b.opts.TextPadding,
		BorderWidth:  b.borderWidth,
		CornerRadius: b.radius,
		Reversed:     b.reversed,
	})
	switch {
	case err == nil:
	case stderrors.Is(err, ErrNoContent), stderrors.Is(err, ErrDegenerateBounds):
		return nil
	default:
		errors.Report(&errors.DriftError{
			Op:   "maskbutton.BuildStencil",
			Kind: errors.KindRender,
			Err:  fmt.Errorf("%s content for %s: %w", content.Kind(), source, err),
		})
		// The failure occupies the slot so it is not retried every pass.
		st = nil
	}
	if st != nil && st.MissingFamily != "" && !b.fontWarned {
		b.fontWarned = true
		errors.Report(&errors.DriftError{
			Op:   "maskbutton.Layout",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("%w: %q, drawing the default family", rendering.ErrUnknownFont, st.MissingFamily),
		})
	}
	b.stencil = &stencilLayer{
		width:   w,
		height:  h,
		source:  source,
		kind:    content.Kind(),
		stencil: st,
	}
	if st == nil {
		return nil
	}
	return b.stencil
}

// GradientColors returns the stop colors of the cached gradient.
// It reports false when no gradient has been built.
func (b *Button) GradientColors() (start, end rendering.Color, ok bool) {
	if b.gradient == nil {
		return 0, 0, false
	}
	stops := b.gradient.gradient.Stops
	return stops[0].Color, stops[1].Color, true
}

// GradientAxis returns the unit-square start and end points of the cached
// gradient. It reports false when no gradient has been built.
func (b *Button) GradientAxis() (start, end rendering.Offset, ok bool) {
	if b.gradient == nil {
		return rendering.Offset{}, rendering.Offset{}, false
	}
	return b.gradient.gradient.Start, b.gradient.gradient.End, true
}
