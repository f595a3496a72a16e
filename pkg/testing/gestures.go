package testing

import (
	"fmt"

	"github.com/go-drift/maskbutton/pkg/rendering"
)

// Tap simulates a tap at the center of the bounds.
func (t *ButtonTester) Tap() error {
	return t.TapAt(t.Center())
}

// TapAt simulates a touch that begins and ends at pos.
func (t *ButtonTester) TapAt(pos rendering.Offset) error {
	if err := t.Press(pos); err != nil {
		return err
	}
	t.Release(pos)
	return nil
}

// Press begins a touch at pos and keeps it held.
func (t *ButtonTester) Press(pos rendering.Offset) error {
	t.ensureLaidOut()
	if !t.Button.BeginTracking(pos) {
		return fmt.Errorf("Press: button rejected the touch at %+v", pos)
	}
	return nil
}

// MoveTo moves the held touch to pos.
func (t *ButtonTester) MoveTo(pos rendering.Offset) error {
	if !t.Button.ContinueTracking(pos) {
		return fmt.Errorf("MoveTo: no touch is being tracked")
	}
	return nil
}

// Release ends the held touch at pos.
func (t *ButtonTester) Release(pos rendering.Offset) {
	t.Button.EndTracking(pos)
}

// DragFrom simulates a touch from start by delta, with intermediate moves.
func (t *ButtonTester) DragFrom(start, delta rendering.Offset) error {
	if err := t.Press(start); err != nil {
		return err
	}
	const steps = 10
	for i := 1; i <= steps; i++ {
		frac := float64(i) / steps
		pos := rendering.Offset{X: start.X + delta.X*frac, Y: start.Y + delta.Y*frac}
		if err := t.MoveTo(pos); err != nil {
			return err
		}
	}
	t.Release(rendering.Offset{X: start.X + delta.X, Y: start.Y + delta.Y})
	return nil
}

// ensureLaidOut runs a first pass so the button knows its bounds.
func (t *ButtonTester) ensureLaidOut() {
	if t.passes == 0 {
		t.Pump()
	}
}
