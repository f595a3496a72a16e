package maskbutton_test

import (
	"testing"

	"github.com/go-drift/maskbutton/pkg/maskbutton"
	"github.com/go-drift/maskbutton/pkg/rendering"
)

func TestFitPolicyMaxSteps(t *testing.T) {
	if got := maskbutton.DefaultFitPolicy().MaxSteps(); got != 28 {
		t.Errorf("default MaxSteps = %d, want 28", got)
	}
	if got := maskbutton.FineFitPolicy().MaxSteps(); got != 111 {
		t.Errorf("fine MaxSteps = %d, want 111", got)
	}
	// Invalid policies fall back to the defaults instead of looping forever.
	if got := (maskbutton.FitPolicy{Step: 0, MinScale: -1}).MaxSteps(); got != 28 {
		t.Errorf("invalid MaxSteps = %d, want 28", got)
	}
}

func TestFitFontSize(t *testing.T) {
	fonts := rendering.DefaultFontManager()
	f := rendering.Font{Size: 40}
	full, err := fonts.Measure("Hello", f)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}

	res, err := maskbutton.FitFontSize(fonts, "Hello", f, full.Width+1, maskbutton.DefaultFitPolicy())
	if err != nil || !res.Fits || res.Steps != 0 || res.Size != 40 {
		t.Errorf("fitting text = %+v, %v; want unchanged", res, err)
	}

	policy := maskbutton.DefaultFitPolicy()
	available := full.Width * 0.8
	res, err = maskbutton.FitFontSize(fonts, "Hello", f, available, policy)
	if err != nil {
		t.Fatalf("FitFontSize: %v", err)
	}
	if !res.Fits || res.Width > available {
		t.Errorf("shrunk fit = %+v, want width <= %v", res, available)
	}
	if res.Steps == 0 || res.Steps > policy.MaxSteps() {
		t.Errorf("steps = %d, want within (0, %d]", res.Steps, policy.MaxSteps())
	}
	if res.Size >= 40 || res.Size < 20 {
		t.Errorf("size = %v, want within [20, 40)", res.Size)
	}
}

func TestFitFontSizeStopsAtFloor(t *testing.T) {
	for _, policy := range []maskbutton.FitPolicy{maskbutton.DefaultFitPolicy(), maskbutton.FineFitPolicy()} {
		res, err := maskbutton.FitFontSize(rendering.DefaultFontManager(), "Much too long", rendering.Font{Size: 60}, 10, policy)
		if err != nil {
			t.Fatalf("FitFontSize: %v", err)
		}
		if res.Fits {
			t.Errorf("%+v: text should not fit in 10pt", policy)
		}
		if want := 60 * policy.MinScale; res.Size != want {
			t.Errorf("%+v: size = %v, want floor %v", policy, res.Size, want)
		}
		if res.Steps > policy.MaxSteps() {
			t.Errorf("%+v: steps = %d beyond %d", policy, res.Steps, policy.MaxSteps())
		}
	}
}
