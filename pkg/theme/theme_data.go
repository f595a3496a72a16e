// Package theme provides the color scheme consulted for default colors.
package theme

import "github.com/go-drift/maskbutton/pkg/rendering"

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// ColorScheme defines the colors of a theme.
type ColorScheme struct {
	// Primary is the main brand color.
	Primary rendering.Color
	// OnPrimary is the color drawn on top of Primary.
	OnPrimary rendering.Color
	// Accent, when set, overrides Primary as the app's accent color.
	Accent rendering.Color
	// Background is the default surface color.
	Background rendering.Color
	// OnBackground is the default text color.
	OnBackground rendering.Color
}

// AccentColor returns Accent when set, else Primary.
func (c ColorScheme) AccentColor() rendering.Color {
	if c.Accent != 0 {
		return c.Accent
	}
	return c.Primary
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:      rendering.RGB(0x00, 0x7A, 0xFF),
		OnPrimary:    rendering.ColorWhite,
		Background:   rendering.RGB(0xFF, 0xFF, 0xFF),
		OnBackground: rendering.RGB(0x1C, 0x1C, 0x1E),
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:      rendering.RGB(0x0A, 0x84, 0xFF),
		OnPrimary:    rendering.ColorWhite,
		Background:   rendering.RGB(0x00, 0x00, 0x00),
		OnBackground: rendering.RGB(0xF2, 0xF2, 0xF7),
	}
}

// ThemeData contains the theme configuration.
type ThemeData struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme
	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{ColorScheme: LightColorScheme(), Brightness: BrightnessLight}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{ColorScheme: DarkColorScheme(), Brightness: BrightnessDark}
}

// AccentColor returns the accent color of t, or zero when t is nil.
func (t *ThemeData) AccentColor() rendering.Color {
	if t == nil {
		return 0
	}
	return t.ColorScheme.AccentColor()
}
