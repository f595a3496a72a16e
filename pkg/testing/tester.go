package testing

import (
	"testing"

	"github.com/go-drift/maskbutton/pkg/errors"
	"github.com/go-drift/maskbutton/pkg/maskbutton"
	"github.com/go-drift/maskbutton/pkg/rendering"
)

const (
	// DefaultTestWidth is the default button width in points.
	DefaultTestWidth = 200
	// DefaultTestHeight is the default button height in points.
	DefaultTestHeight = 60
)

// ButtonTester drives a Button through layout passes and touches the way
// a host view system would.
type ButtonTester struct {
	Button *maskbutton.Button
	Host   *Host

	bounds    rendering.Rect
	last      maskbutton.Layers
	collector *errors.Collector
	passes    int
}

// NewButtonTester creates a tester for a new button built with opts.
// Call Cleanup when done, or use NewButtonTesterWithT instead.
func NewButtonTester(opts maskbutton.Options) *ButtonTester {
	t := &ButtonTester{
		Button:    maskbutton.New(opts),
		Host:      &Host{},
		bounds:    rendering.RectFromLTWH(0, 0, DefaultTestWidth, DefaultTestHeight),
		collector: &errors.Collector{},
	}
	t.Button.SetHost(t.Host)
	errors.SetHandler(t.collector)
	return t
}

// NewButtonTesterWithT creates a tester with default options that cleans up
// via t.Cleanup.
func NewButtonTesterWithT(t *testing.T) *ButtonTester {
	return NewButtonTesterWithOptions(t, maskbutton.DefaultOptions())
}

// NewButtonTesterWithOptions is NewButtonTesterWithT with explicit options.
func NewButtonTesterWithOptions(t *testing.T, opts maskbutton.Options) *ButtonTester {
	tester := NewButtonTester(opts)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the default error handler.
func (t *ButtonTester) Cleanup() {
	errors.SetHandler(nil)
}

// SetSize sets the button size. The next Pump lays out at the new size.
func (t *ButtonTester) SetSize(size rendering.Size) {
	t.bounds = rendering.RectFromLTWH(t.bounds.Left, t.bounds.Top, size.Width, size.Height)
}

// Bounds returns the bounds passes are run with.
func (t *ButtonTester) Bounds() rendering.Rect {
	return t.bounds
}

// Center returns the center of the bounds.
func (t *ButtonTester) Center() rendering.Offset {
	return t.bounds.Center()
}

// Pump runs a layout pass and returns its layers.
func (t *ButtonTester) Pump() maskbutton.Layers {
	t.last = t.Button.Layout(t.bounds)
	t.passes++
	return t.last
}

// PumpIfNeeded runs a pass only when the button requested one. It reports
// whether a pass ran.
func (t *ButtonTester) PumpIfNeeded() bool {
	if !t.Button.NeedsLayout() {
		return false
	}
	t.Pump()
	return true
}

// Layers returns the layers of the last pass.
func (t *ButtonTester) Layers() maskbutton.Layers {
	return t.last
}

// Passes returns the number of layout passes run so far.
func (t *ButtonTester) Passes() int {
	return t.passes
}

// Errors returns the errors reported since the tester was created.
func (t *ButtonTester) Errors() *errors.Collector {
	return t.collector
}
