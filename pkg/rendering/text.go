package rendering

import (
	stderrors "errors"
	"fmt"
	"image"
	"image/draw"
	"sort"
	"sync"

	"github.com/go-drift/maskbutton/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16

	// DefaultFontFamily is the bundled regular family.
	DefaultFontFamily = "Go"
	// BoldFontFamily is the bundled bold family.
	BoldFontFamily = "Go Bold"
)

// ErrUnknownFont is returned when a family has not been registered.
var ErrUnknownFont = stderrors.New("unknown font family")

// Font names a registered family at a point size.
type Font struct {
	Family string
	Size   float64
}

// WithSize returns a copy of the font at the given size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

// TextMetrics holds the measured extent of a single line of text.
type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns ascent plus descent.
func (m TextMetrics) Height() float64 {
	return m.Ascent + m.Descent
}

// FontManager manages font registration for text rendering.
type FontManager struct {
	mu          sync.RWMutex
	fonts       map[string]*opentype.Font
	defaultName string
}

var (
	defaultFontManager     *FontManager
	defaultFontManagerErr  error
	defaultFontManagerOnce sync.Once
)

// NewFontManager creates a font manager with the bundled Go fonts registered.
func NewFontManager() (*FontManager, error) {
	manager := &FontManager{
		fonts:       make(map[string]*opentype.Font),
		defaultName: DefaultFontFamily,
	}
	if err := manager.RegisterFont(DefaultFontFamily, goregular.TTF); err != nil {
		return nil, err
	}
	if err := manager.RegisterFont(BoldFontFamily, gobold.TTF); err != nil {
		return nil, err
	}
	return manager, nil
}

// DefaultFontManagerErr returns a shared font manager with the bundled fonts.
// It returns both the manager and any error that occurred during initialization.
func DefaultFontManagerErr() (*FontManager, error) {
	defaultFontManagerOnce.Do(func() {
		manager, err := NewFontManager()
		if err != nil {
			defaultFontManagerErr = err
			errors.Report(&errors.DriftError{
				Op:   "rendering.DefaultFontManager",
				Kind: errors.KindInit,
				Err:  err,
			})
			return
		}
		defaultFontManager = manager
	})
	return defaultFontManager, defaultFontManagerErr
}

// DefaultFontManager returns the shared font manager, or nil on error.
func DefaultFontManager() *FontManager {
	manager, _ := DefaultFontManagerErr()
	return manager
}

// RegisterFont registers a font family from TrueType or OpenType data.
// Registering an existing name replaces it.
func (m *FontManager) RegisterFont(name string, data []byte) error {
	if name == "" {
		return stderrors.New("font name required")
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fonts[name] = parsed
	return nil
}

// Families returns the registered family names in sorted order.
func (m *FontManager) Families() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.fonts))
	for name := range m.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns f with an unregistered family replaced by the default
// family. It reports whether the requested family was available; an empty
// family always is.
func (m *FontManager) Resolve(f Font) (Font, bool) {
	if f.Family == "" {
		return f, true
	}
	m.mu.RLock()
	_, ok := m.fonts[f.Family]
	m.mu.RUnlock()
	if !ok {
		f.Family = m.defaultName
	}
	return f, ok
}

// DefaultFont returns the default family at the default size.
func (m *FontManager) DefaultFont() Font {
	return Font{Family: m.defaultName, Size: defaultFontSize}
}

// Face resolves a face for f at scale pixels per point. An empty family
// selects the default family. The caller must Close the face.
func (m *FontManager) Face(f Font, scale float64) (font.Face, error) {
	family := f.Family
	if family == "" {
		family = m.defaultName
	}
	size := f.Size
	if size <= 0 {
		size = defaultFontSize
	}
	if scale <= 0 {
		scale = 1
	}
	m.mu.RLock()
	parsed, ok := m.fonts[family]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, family)
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size * scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// Measure returns the single-line metrics of text set in f, in points.
func (m *FontManager) Measure(text string, f Font) (TextMetrics, error) {
	face, err := m.Face(f, 1)
	if err != nil {
		return TextMetrics{}, err
	}
	defer face.Close()
	return measureFace(face, text), nil
}

func measureFace(face font.Face, text string) TextMetrics {
	metrics := face.Metrics()
	return TextMetrics{
		Width:   fromFixed(font.MeasureString(face, text)),
		Ascent:  fromFixed(metrics.Ascent),
		Descent: fromFixed(metrics.Descent),
	}
}

// DrawText draws a single line of text with its baseline starting at origin,
// in pixel coordinates of dst.
func DrawText(dst draw.Image, face font.Face, text string, origin Offset, c Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(origin.X), Y: toFixed(origin.Y)},
	}
	d.DrawString(text)
}

// MeasureFace returns the metrics of text in the given face, in pixels.
func MeasureFace(face font.Face, text string) TextMetrics {
	return measureFace(face, text)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
