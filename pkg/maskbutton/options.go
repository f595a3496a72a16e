package maskbutton

import (
	"math"

	"github.com/go-drift/maskbutton/pkg/rendering"
	"github.com/go-drift/maskbutton/pkg/theme"
)

const (
	defaultMinScale       = 0.5
	defaultStep           = 0.025
	defaultHighlightAlpha = 0.25
	defaultTextPadding    = 4
)

// FitPolicy controls how a title is shrunk to fit the button width.
// Each step multiplies the font size by (1 - Step) until the text fits or
// the size reaches MinScale times the configured size.
type FitPolicy struct {
	MinScale float64
	Step     float64
}

// DefaultFitPolicy returns the 50% floor with 2.5% steps.
func DefaultFitPolicy() FitPolicy {
	return FitPolicy{MinScale: defaultMinScale, Step: defaultStep}
}

// FineFitPolicy returns the 25% floor with 1.25% steps.
func FineFitPolicy() FitPolicy {
	return FitPolicy{MinScale: 0.25, Step: 0.0125}
}

// normalized replaces out-of-range values with the defaults, so the shrink
// loop always makes progress.
func (p FitPolicy) normalized() FitPolicy {
	if !(p.Step > 0 && p.Step < 1) {
		p.Step = defaultStep
	}
	if !(p.MinScale > 0 && p.MinScale <= 1) {
		p.MinScale = defaultMinScale
	}
	return p
}

// MaxSteps returns the most shrink steps a fit can take under p.
func (p FitPolicy) MaxSteps() int {
	p = p.normalized()
	if p.MinScale >= 1 {
		return 0
	}
	return int(math.Ceil(math.Log(p.MinScale) / math.Log(1-p.Step)))
}

// Options configures a Button. Zero fields take their defaults.
type Options struct {
	// Fit is the title shrink policy.
	Fit FitPolicy
	// HighlightAlpha multiplies the baseline alpha while highlighted.
	HighlightAlpha float64
	// DisabledAlpha multiplies the baseline alpha while disabled.
	// Defaults to 1 (no dimming).
	DisabledAlpha float64
	// Scale is the number of pixels per point the layers are rasterized at.
	Scale float64
	// TextPadding is the horizontal padding kept on each side of a title.
	// Negative values disable padding.
	TextPadding float64
	// Fonts resolves font families. Defaults to rendering.DefaultFontManager.
	Fonts *rendering.FontManager
	// Theme supplies the accent color at the end of the color fallback chain.
	Theme *theme.ThemeData
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Fit:            DefaultFitPolicy(),
		HighlightAlpha: defaultHighlightAlpha,
		DisabledAlpha:  1,
		Scale:          1,
		TextPadding:    defaultTextPadding,
		Theme:          theme.DefaultLightTheme(),
	}
}

// WithFit returns a copy of the options with the given fit policy.
func (o Options) WithFit(p FitPolicy) Options {
	o.Fit = p
	return o
}

// WithScale returns a copy of the options with the given pixel scale.
func (o Options) WithScale(scale float64) Options {
	o.Scale = scale
	return o
}

// WithFonts returns a copy of the options with the given font manager.
func (o Options) WithFonts(fonts *rendering.FontManager) Options {
	o.Fonts = fonts
	return o
}

// WithTheme returns a copy of the options with the given theme.
func (o Options) WithTheme(t *theme.ThemeData) Options {
	o.Theme = t
	return o
}

// WithDisabledAlpha returns a copy of the options with the given disabled
// alpha factor.
func (o Options) WithDisabledAlpha(factor float64) Options {
	o.DisabledAlpha = factor
	return o
}

func (o Options) normalized() Options {
	o.Fit = o.Fit.normalized()
	if !(o.HighlightAlpha > 0 && o.HighlightAlpha <= 1) {
		o.HighlightAlpha = defaultHighlightAlpha
	}
	if !(o.DisabledAlpha > 0 && o.DisabledAlpha <= 1) {
		o.DisabledAlpha = 1
	}
	if !(o.Scale > 0) {
		o.Scale = 1
	}
	if o.TextPadding == 0 {
		o.TextPadding = defaultTextPadding
	} else if o.TextPadding < 0 {
		o.TextPadding = 0
	}
	if o.Fonts == nil {
		o.Fonts = rendering.DefaultFontManager()
	}
	return o
}
