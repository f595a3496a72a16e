// Package testing provides a harness for testing gradient-masked buttons
// without a host view system.
//
// # Quick Start
//
// Create a tester, configure the button, pump a layout pass and assert on
// the produced layers:
//
//	func TestMyButton(t *testing.T) {
//	    tester := maskbuttontest.NewButtonTesterWithT(t)
//	    tester.Button.SetGradientStartColor(rendering.ColorRed)
//	    tester.Button.SetTitle(maskbutton.StateNormal, "OK")
//	    layers := tester.Pump()
//
//	    tester.Press(tester.Center())
//	    if tester.Pump().Alpha >= layers.Alpha {
//	        t.Error("expected the pressed button to dim")
//	    }
//	}
//
// The tester installs an errors.Collector for its lifetime, so reported
// errors can be inspected with Errors.
//
// # Snapshot Testing
//
// Capture and compare a compact description of the layers, including an
// ASCII rendering of the mask:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/ok.snapshot.json")
//
// Update snapshots with:
//
//	MASKBUTTON_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import maskbuttontest "github.com/go-drift/maskbutton/pkg/testing"
package testing
