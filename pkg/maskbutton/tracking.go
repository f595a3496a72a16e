package maskbutton

import "github.com/go-drift/maskbutton/pkg/rendering"

// BeginTracking starts tracking a touch at p, in bounds coordinates. It
// reports false, and tracks nothing, when the button is disabled.
func (b *Button) BeginTracking(p rendering.Offset) bool {
	if !b.enabled {
		return false
	}
	b.tracking = true
	b.setHighlighted(b.bounds.Contains(p))
	return true
}

// ContinueTracking moves the tracked touch to p. The button is highlighted
// while the touch is inside the bounds. It reports whether tracking goes on.
func (b *Button) ContinueTracking(p rendering.Offset) bool {
	if !b.tracking {
		return false
	}
	b.setHighlighted(b.bounds.Contains(p))
	return true
}

// EndTracking finishes the tracked touch at p, restores the baseline alpha
// and fires OnTap when the touch ended inside the bounds.
func (b *Button) EndTracking(p rendering.Offset) {
	if !b.tracking {
		return
	}
	tapped := b.enabled && b.bounds.Contains(p)
	b.stopTracking()
	if tapped && b.OnTap != nil {
		b.OnTap()
	}
}

// CancelTracking abandons the tracked touch and restores the baseline alpha.
func (b *Button) CancelTracking() {
	if b.tracking {
		b.stopTracking()
	}
}

// Tracking reports whether a touch is being tracked.
func (b *Button) Tracking() bool { return b.tracking }

func (b *Button) stopTracking() {
	b.tracking = false
	b.setHighlighted(false)
}

func (b *Button) setHighlighted(highlighted bool) {
	changed := b.highlighted != highlighted
	b.highlighted = highlighted
	b.applyDimming()
	if changed {
		// Highlighted content may differ from normal content.
		b.requestLayout()
	}
}

// applyDimming derives the live alpha from the baseline. It does nothing
// until a baseline has been captured.
func (b *Button) applyDimming() {
	if b.baselineAlpha == 0 {
		return
	}
	switch {
	case !b.enabled:
		b.alpha = b.baselineAlpha * b.opts.DisabledAlpha
	case b.highlighted:
		b.alpha = b.baselineAlpha * b.opts.HighlightAlpha
	default:
		b.alpha = b.baselineAlpha
	}
}
