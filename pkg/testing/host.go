package testing

import "github.com/go-drift/maskbutton/pkg/rendering"

// Host is a maskbutton.Host that records layout requests.
type Host struct {
	// Tint is returned by InheritedTintColor.
	Tint rendering.Color
	// Requests counts RequestLayout calls.
	Requests int
}

// RequestLayout records a request.
func (h *Host) RequestLayout() {
	h.Requests++
}

// InheritedTintColor returns Tint.
func (h *Host) InheritedTintColor() rendering.Color {
	return h.Tint
}
