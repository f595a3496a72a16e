package maskbutton

import (
	"image"

	"github.com/go-drift/maskbutton/pkg/errors"
	"github.com/go-drift/maskbutton/pkg/rendering"
	"github.com/go-drift/maskbutton/pkg/theme"
)

// Host is the view system hosting a Button.
type Host interface {
	// RequestLayout asks the host to call Layout before the next frame.
	RequestLayout()
	// InheritedTintColor returns the tint inherited from ancestors, or zero.
	InheritedTintColor() rendering.Color
}

// invalidation tags the cache slots a change affects.
type invalidation uint8

const (
	invalidateGradient invalidation = 1 << iota
	invalidateStencil

	invalidateAll = invalidateGradient | invalidateStencil
)

// Button is a gradient-masked button. It is not safe for concurrent use;
// all methods must be called from the UI thread.
type Button struct {
	opts Options
	host Host

	startColor  rendering.Color
	endColor    rendering.Color
	angle       float64
	space       rendering.InterpolationSpace
	reversed    bool
	font        rendering.Font
	content     stateContent
	borderWidth float64
	radius      float64

	backgroundColor rendering.Color
	tintColor       rendering.Color
	alpha           float64
	enabled         bool
	highlighted     bool
	tracking        bool

	// OnTap is called when a tracked touch ends inside the bounds.
	OnTap func()

	// Appearance snapshot, captured on first layout.
	baselineAlpha      float64
	appearanceCaptured bool
	baselineBackground rendering.Color
	baselineTint       rendering.Color

	gradient *gradientLayer
	stencil  *stencilLayer

	bounds      rendering.Rect
	needsLayout bool
	inLayout    bool
	pending     invalidation
	colorWarned bool
	fontWarned  bool
}

// New creates a button. Zero option fields take their defaults.
func New(opts Options) *Button {
	opts = opts.normalized()
	return &Button{
		opts:        opts,
		font:        opts.Fonts.DefaultFont(),
		content:     newStateContent(),
		alpha:       1,
		enabled:     true,
		needsLayout: true,
	}
}

// SetHost attaches the button to its host view system.
func (b *Button) SetHost(h Host) {
	b.host = h
	b.invalidate(invalidateGradient)
}

// SetTheme replaces the theme used for the accent color fallback.
func (b *Button) SetTheme(t *theme.ThemeData) {
	b.opts.Theme = t
	b.invalidate(invalidateGradient)
}

// GradientStartColor returns the explicit start color, zero when unset.
func (b *Button) GradientStartColor() rendering.Color { return b.startColor }

// SetGradientStartColor sets the explicit start color. Zero clears it and
// re-enables the fallback chain.
func (b *Button) SetGradientStartColor(c rendering.Color) {
	b.startColor = c
	b.invalidate(invalidateGradient)
}

// GradientEndColor returns the explicit end color, zero when unset.
func (b *Button) GradientEndColor() rendering.Color { return b.endColor }

// SetGradientEndColor sets the end color. Zero makes the fill solid.
func (b *Button) SetGradientEndColor(c rendering.Color) {
	b.endColor = c
	b.invalidate(invalidateGradient)
}

// GradientAngle returns the gradient angle in degrees.
func (b *Button) GradientAngle() float64 { return b.angle }

// SetGradientAngle sets the gradient angle in degrees. 0 runs top to bottom;
// positive angles rotate the axis clockwise.
func (b *Button) SetGradientAngle(degrees float64) {
	b.angle = degrees
	b.invalidate(invalidateGradient)
}

// InterpolationSpace returns the color space the gradient blends in.
func (b *Button) InterpolationSpace() rendering.InterpolationSpace { return b.space }

// SetInterpolationSpace selects the color space the gradient blends in.
func (b *Button) SetInterpolationSpace(space rendering.InterpolationSpace) {
	b.space = space
	b.invalidate(invalidateGradient)
}

// Reversed reports whether the glyph is cut out of the gradient.
func (b *Button) Reversed() bool { return b.reversed }

// SetReversed selects cut-out (true) or filled (false) rendering.
func (b *Button) SetReversed(reversed bool) {
	b.reversed = reversed
	b.invalidate(invalidateStencil)
}

// Font returns the configured title font.
func (b *Button) Font() rendering.Font { return b.font }

// SetFont sets the title font. The rendered size may be smaller after fitting.
func (b *Button) SetFont(f rendering.Font) {
	b.font = f
	b.fontWarned = false
	b.invalidate(invalidateStencil)
}

// Title returns the title set for state.
func (b *Button) Title(state State) string { return b.content.titles[state] }

// SetTitle sets the title for state. A non-empty title removes the image set
// for the same state.
func (b *Button) SetTitle(state State, title string) {
	b.content.setTitle(state, title)
	b.invalidate(invalidateStencil)
}

// Image returns the image set for state.
func (b *Button) Image(state State) image.Image { return b.content.images[state] }

// SetImage sets the image for state. A non-nil image removes the title set
// for the same state. Only the image's alpha channel is used.
func (b *Button) SetImage(state State, img image.Image) {
	b.content.setImage(state, img)
	b.invalidate(invalidateStencil)
}

// BorderWidth returns the outline stroke width in points.
func (b *Button) BorderWidth() float64 { return b.borderWidth }

// SetBorderWidth sets the outline stroke width. The stroke is centered on
// the outline and clipped to it, so width/2 points of border are visible.
// Call ForceRedraw to apply.
func (b *Button) SetBorderWidth(width float64) { b.borderWidth = width }

// CornerRadius returns the outline corner radius in points.
func (b *Button) CornerRadius() float64 { return b.radius }

// SetCornerRadius sets the outline corner radius. Call ForceRedraw to apply.
func (b *Button) SetCornerRadius(radius float64) { b.radius = radius }

// SetBackgroundColor sets the background color, which the gradient falls
// back to when no start color is set. After the first layout the value goes
// straight into the captured snapshot.
func (b *Button) SetBackgroundColor(c rendering.Color) {
	if b.appearanceCaptured {
		b.baselineBackground = c
	} else {
		b.backgroundColor = c
	}
	b.invalidate(invalidateGradient)
}

// SetTintColor sets the tint color, the second fallback for the gradient.
func (b *Button) SetTintColor(c rendering.Color) {
	if b.appearanceCaptured {
		b.baselineTint = c
	} else {
		b.tintColor = c
	}
	b.invalidate(invalidateGradient)
}

// BackgroundColor returns the live background color. It reads zero once the
// first layout has captured it.
func (b *Button) BackgroundColor() rendering.Color { return b.backgroundColor }

// TintColor returns the live tint color. It reads zero once the first layout
// has captured it.
func (b *Button) TintColor() rendering.Color { return b.tintColor }

// Alpha returns the current opacity, including any dimming.
func (b *Button) Alpha() float64 { return b.alpha }

// BaselineAlpha returns the captured resting opacity, zero before capture.
func (b *Button) BaselineAlpha() float64 { return b.baselineAlpha }

// SetAlpha sets the opacity. The first non-zero value seen by Layout becomes
// the baseline for dimming; once captured, layout passes derive the opacity
// from the baseline again, so call ResetAppearanceSnapshot to adopt a new one.
func (b *Button) SetAlpha(alpha float64) {
	b.alpha = alpha
	b.requestLayout()
}

// ResetAppearanceSnapshot discards the captured baseline alpha so the next
// layout captures it again.
func (b *Button) ResetAppearanceSnapshot() {
	b.baselineAlpha = 0
	b.requestLayout()
}

// Enabled reports whether the button accepts touches.
func (b *Button) Enabled() bool { return b.enabled }

// SetEnabled enables or disables the button. Disabling ends any tracking.
func (b *Button) SetEnabled(enabled bool) {
	if b.enabled == enabled {
		return
	}
	b.enabled = enabled
	if !enabled {
		b.tracking = false
		b.highlighted = false
	}
	b.applyDimming()
	b.requestLayout()
}

// Highlighted reports whether a tracked touch is inside the bounds.
func (b *Button) Highlighted() bool { return b.highlighted }

// State returns the visual state used to pick content.
func (b *Button) State() State {
	switch {
	case !b.enabled:
		return StateDisabled
	case b.highlighted:
		return StateHighlighted
	default:
		return StateNormal
	}
}

// NeedsLayout reports whether a layout pass has been requested.
func (b *Button) NeedsLayout() bool { return b.needsLayout }

// ForceRedraw clears both caches and requests a layout. Use it after
// changing border width or corner radius.
func (b *Button) ForceRedraw() {
	b.invalidate(invalidateAll)
}

// invalidate clears the tagged cache slots and requests a layout. Changes
// made during a layout pass are reported and applied once the pass ends.
func (b *Button) invalidate(what invalidation) {
	if b.inLayout {
		b.pending |= what
		errors.Report(&errors.DriftError{
			Op:   "maskbutton.invalidate",
			Kind: errors.KindRender,
			Err:  errReentrantLayout,
		})
		return
	}
	if what&invalidateGradient != 0 {
		b.gradient = nil
		b.colorWarned = false
	}
	if what&invalidateStencil != 0 {
		b.stencil = nil
	}
	b.requestLayout()
}

func (b *Button) requestLayout() {
	if b.inLayout {
		return
	}
	b.needsLayout = true
	if b.host != nil {
		// A panicking host is reported; the setter still takes effect.
		defer errors.Recover("maskbutton.Host.RequestLayout")
		b.host.RequestLayout()
	}
}
