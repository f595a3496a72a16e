package maskbutton

import (
	"github.com/go-drift/maskbutton/pkg/rendering"
)

// FitResult describes the outcome of a title fit.
type FitResult struct {
	// Size is the fitted font size in points.
	Size float64
	// Width is the measured text width at Size.
	Width float64
	// Steps is the number of times the size was reduced.
	Steps int
	// Fits reports whether the text fits at Size. When false, Size is the
	// floor and the text overflows.
	Fits bool
}

// FitFontSize shrinks f until text measures no wider than available points
// or the policy floor is reached.
func FitFontSize(fonts *rendering.FontManager, text string, f rendering.Font, available float64, policy FitPolicy) (FitResult, error) {
	policy = policy.normalized()
	if f.Size <= 0 {
		f.Size = fonts.DefaultFont().Size
	}
	floor := f.Size * policy.MinScale
	maxSteps := policy.MaxSteps()

	size := f.Size
	res := FitResult{Size: size}
	for {
		m, err := fonts.Measure(text, f.WithSize(size))
		if err != nil {
			return res, err
		}
		res.Size, res.Width = size, m.Width
		if m.Width <= available {
			res.Fits = true
			return res, nil
		}
		if size <= floor || res.Steps >= maxSteps {
			return res, nil
		}
		size *= 1 - policy.Step
		if size < floor {
			size = floor
		}
		res.Steps++
	}
}
