package testing

import (
	"testing"

	"github.com/go-drift/maskbutton/pkg/errors"
	"github.com/go-drift/maskbutton/pkg/maskbutton"
	"github.com/go-drift/maskbutton/pkg/rendering"
)

func TestPumpIfNeeded(t *testing.T) {
	tester := NewButtonTesterWithT(t)
	tester.Button.SetGradientStartColor(rendering.ColorRed)

	if !tester.PumpIfNeeded() {
		t.Fatal("a new button should need layout")
	}
	if tester.PumpIfNeeded() {
		t.Error("nothing changed since the last pass")
	}
	tester.Button.SetTitle(maskbutton.StateNormal, "Go")
	if !tester.PumpIfNeeded() || tester.Layers().Kind != maskbutton.ContentText {
		t.Errorf("expected a text pass, got %v", tester.Layers().Kind)
	}
	if tester.Passes() != 2 {
		t.Errorf("Passes() = %d, want 2", tester.Passes())
	}
	if tester.Host.Requests == 0 {
		t.Error("the host should have received layout requests")
	}
}

func TestSetSize(t *testing.T) {
	tester := NewButtonTesterWithT(t)
	tester.Button.SetGradientStartColor(rendering.ColorRed)
	tester.SetSize(rendering.Size{Width: 30, Height: 10})
	l := tester.Pump()
	if b := l.Content.Bounds(); b.Dx() != 30 || b.Dy() != 10 {
		t.Errorf("content = %v, want 30x10", b)
	}
	if c := tester.Center(); c.X != 15 || c.Y != 5 {
		t.Errorf("Center() = %+v", c)
	}
}

func TestHostTintFallback(t *testing.T) {
	tester := NewButtonTesterWithOptions(t, maskbutton.DefaultOptions().WithTheme(nil))
	tester.Host.Tint = rendering.ColorGreen
	tester.Pump()
	if start, _, _ := tester.Button.GradientColors(); start != rendering.ColorGreen {
		t.Errorf("start = %v, want the inherited tint", start)
	}
}

func TestErrorsAreCollected(t *testing.T) {
	tester := NewButtonTesterWithOptions(t, maskbutton.DefaultOptions().WithTheme(nil))
	if l := tester.Pump(); !l.IsInert() {
		t.Fatal("expected an inert pass without colors")
	}
	if n := tester.Errors().Count(errors.KindConfig); n != 1 {
		t.Errorf("config errors = %d, want 1", n)
	}
}
