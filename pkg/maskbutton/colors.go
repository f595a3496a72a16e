package maskbutton

import "github.com/go-drift/maskbutton/pkg/rendering"

// ColorProvider supplies an optional color. It reports false when it has
// nothing to offer.
type ColorProvider func() (rendering.Color, bool)

// FixedColor returns a provider for c. The zero color counts as absent.
func FixedColor(c rendering.Color) ColorProvider {
	return func() (rendering.Color, bool) {
		return c, c != 0
	}
}

// ResolveColor returns the first color offered by providers, in order.
func ResolveColor(providers ...ColorProvider) (rendering.Color, bool) {
	for _, p := range providers {
		if p == nil {
			continue
		}
		if c, ok := p(); ok {
			return c, true
		}
	}
	return 0, false
}

// startColorProviders is the fallback chain for the gradient start color:
// explicit start color, captured background, captured tint, inherited tint,
// theme accent.
func (b *Button) startColorProviders() []ColorProvider {
	return []ColorProvider{
		FixedColor(b.startColor),
		FixedColor(b.baselineBackground),
		FixedColor(b.baselineTint),
		func() (rendering.Color, bool) {
			if b.host == nil {
				return 0, false
			}
			c := b.host.InheritedTintColor()
			return c, c != 0
		},
		func() (rendering.Color, bool) {
			c := b.opts.Theme.AccentColor()
			return c, c != 0
		},
	}
}

// resolveGradientColors resolves both stops. The end color defaults to the
// start color.
func (b *Button) resolveGradientColors() (start, end rendering.Color, ok bool) {
	start, ok = ResolveColor(b.startColorProviders()...)
	if !ok {
		return 0, 0, false
	}
	end = b.endColor
	if end == 0 {
		end = start
	}
	return start, end, true
}
