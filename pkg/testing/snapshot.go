package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/maskbutton/pkg/maskbutton"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// snapshotColumns is the width of the ASCII mask rendering.
const snapshotColumns = 40

// maskRamp maps mask coverage to characters, from clear to opaque.
const maskRamp = " .:-=+*#%@"

// Snapshot is a compact, stable description of a layout pass.
type Snapshot struct {
	Size                [2]float64 `json:"size"`
	Pixels              [2]int     `json:"pixels"`
	Alpha               float64    `json:"alpha"`
	Kind                string     `json:"kind"`
	FontSize            float64    `json:"fontSize,omitempty"`
	NativeContentHidden bool       `json:"nativeContentHidden"`
	Inert               bool       `json:"inert,omitempty"`
	// Coverage is the fraction of mask pixels that are at least half on.
	Coverage float64  `json:"coverage"`
	Mask     []string `json:"mask,omitempty"`
}

// CaptureSnapshot describes the layers of the last pass.
func (t *ButtonTester) CaptureSnapshot() *Snapshot {
	return SnapshotOf(t.last)
}

// SnapshotOf describes l.
func SnapshotOf(l maskbutton.Layers) *Snapshot {
	s := &Snapshot{
		Size:                [2]float64{round2(l.Bounds.Width()), round2(l.Bounds.Height())},
		Alpha:               round2(l.Alpha),
		Kind:                l.Kind.String(),
		FontSize:            round2(l.FontSize),
		NativeContentHidden: l.NativeContentHidden,
		Inert:               l.IsInert(),
	}
	if l.Content != nil {
		b := l.Content.Bounds()
		s.Pixels = [2]int{b.Dx(), b.Dy()}
	}
	if l.Mask != nil {
		s.Coverage = round2(coverage(l.Mask))
		s.Mask = asciiMask(l.Mask, snapshotColumns)
	}
	return s
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// MASKBUTTON_UPDATE_SNAPSHOTS=1 is set, the file is updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("MASKBUTTON_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: MASKBUTTON_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: MASKBUTTON_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between other (expected) and this snapshot.
// Returns the empty string if they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func coverage(mask *image.Alpha) float64 {
	b := mask.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return 0
	}
	on := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.AlphaAt(x, y).A >= 0x80 {
				on++
			}
		}
	}
	return float64(on) / float64(total)
}

// asciiMask box-filters the mask down to cols columns. Rows are sampled at
// twice the column pitch since terminal cells are about twice as tall as
// they are wide.
func asciiMask(mask *image.Alpha, cols int) []string {
	b := mask.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}
	if cols > b.Dx() {
		cols = b.Dx()
	}
	cellW := float64(b.Dx()) / float64(cols)
	cellH := cellW * 2
	rows := int(math.Max(1, math.Round(float64(b.Dy())/cellH)))
	cellH = float64(b.Dy()) / float64(rows)

	lines := make([]string, rows)
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		sb.Reset()
		y0, y1 := b.Min.Y+int(float64(r)*cellH), b.Min.Y+int(float64(r+1)*cellH)
		for c := 0; c < cols; c++ {
			x0, x1 := b.Min.X+int(float64(c)*cellW), b.Min.X+int(float64(c+1)*cellW)
			sum, n := 0, 0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					sum += int(mask.AlphaAt(x, y).A)
					n++
				}
			}
			level := 0
			if n > 0 {
				level = sum * (len(maskRamp) - 1) / (n * 0xFF)
			}
			sb.WriteByte(maskRamp[level])
		}
		lines[r] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	n := max(len(expectedLines), len(actualLines))
	for i := 0; i < n; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}
