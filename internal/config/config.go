// Package config loads button descriptions from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/maskbutton/pkg/maskbutton"
	"github.com/go-drift/maskbutton/pkg/rendering"
	"github.com/go-drift/maskbutton/pkg/theme"
)

// FileName is the description file LoadOptional looks for.
const FileName = "maskbutton.yaml"

// Config is a button description.
type Config struct {
	Size       SizeConfig        `yaml:"size"`
	Scale      float64           `yaml:"scale,omitempty"`
	Theme      string            `yaml:"theme,omitempty"`
	Gradient   GradientConfig    `yaml:"gradient"`
	Background Color             `yaml:"background,omitempty"`
	Tint       Color             `yaml:"tint,omitempty"`
	Reversed   bool              `yaml:"reversed,omitempty"`
	Border     BorderConfig      `yaml:"border"`
	Font       FontConfig        `yaml:"font"`
	Fonts      []FontFile        `yaml:"fonts,omitempty"`
	Fit        FitConfig         `yaml:"fit"`
	Alpha      float64           `yaml:"alpha,omitempty"`
	Disabled   bool              `yaml:"disabled,omitempty"`
	Titles     map[string]string `yaml:"titles,omitempty"`
	Images     map[string]string `yaml:"images,omitempty"`

	// Dir is the directory relative paths are resolved against.
	Dir string `yaml:"-"`
}

// SizeConfig is the button size in points.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GradientConfig describes the fill.
type GradientConfig struct {
	Start Color   `yaml:"start,omitempty"`
	End   Color   `yaml:"end,omitempty"`
	Angle float64 `yaml:"angle,omitempty"`
	Space string  `yaml:"space,omitempty"`
}

// BorderConfig describes the outline.
type BorderConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
}

// FontConfig selects the title font.
type FontConfig struct {
	Family string  `yaml:"family,omitempty"`
	Size   float64 `yaml:"size,omitempty"`
}

// FontFile registers a TrueType or OpenType file under Name.
type FontFile struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// FitConfig overrides the title fit policy. Preset is "default" or "fine".
type FitConfig struct {
	Preset   string  `yaml:"preset,omitempty"`
	MinScale float64 `yaml:"min_scale,omitempty"`
	Step     float64 `yaml:"step,omitempty"`
}

// Color is a color written as a hex string.
type Color rendering.Color

// UnmarshalYAML parses #rgb, #rrggbb and #rrggbbaa scalars.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*c = 0
		return nil
	}
	parsed, err := rendering.ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = Color(parsed)
	return nil
}

// MarshalYAML writes the color as #rrggbbaa.
func (c Color) MarshalYAML() (any, error) {
	return rendering.Color(c).String(), nil
}

// Load reads a description file. Relative paths inside it resolve against
// the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// LoadOptional reads maskbutton.yaml from dir if present, returning an empty
// description otherwise.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{Dir: dir}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a description. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Size.Width < 0 || c.Size.Height < 0 {
		return fmt.Errorf("size must not be negative")
	}
	if _, err := rendering.ParseInterpolationSpace(c.Gradient.Space); err != nil {
		return err
	}
	switch c.Theme {
	case "", "light", "dark", "none":
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	switch c.Fit.Preset {
	case "", "default", "fine":
	default:
		return fmt.Errorf("unknown fit preset %q", c.Fit.Preset)
	}
	for key := range c.Titles {
		if _, err := maskbutton.ParseState(key); err != nil {
			return fmt.Errorf("titles: %w", err)
		}
	}
	for key := range c.Images {
		if _, err := maskbutton.ParseState(key); err != nil {
			return fmt.Errorf("images: %w", err)
		}
		if _, ok := c.Titles[key]; ok {
			return fmt.Errorf("state %q has both a title and an image", key)
		}
	}
	return nil
}

// Bounds returns the button rectangle at the origin.
func (c *Config) Bounds() rendering.Rect {
	return rendering.RectFromLTWH(0, 0, c.Size.Width, c.Size.Height)
}

// Options builds the button options. Extra fonts are registered on fonts,
// which defaults to a fresh manager.
func (c *Config) Options(fonts *rendering.FontManager) (maskbutton.Options, error) {
	opts := maskbutton.DefaultOptions()
	if fonts == nil {
		var err error
		if fonts, err = rendering.NewFontManager(); err != nil {
			return opts, err
		}
	}
	for _, f := range c.Fonts {
		data, err := os.ReadFile(c.path(f.Path))
		if err != nil {
			return opts, fmt.Errorf("failed to read font %q: %w", f.Name, err)
		}
		if err := fonts.RegisterFont(f.Name, data); err != nil {
			return opts, err
		}
	}
	opts = opts.WithFonts(fonts)

	switch c.Theme {
	case "dark":
		opts = opts.WithTheme(theme.DefaultDarkTheme())
	case "none":
		opts = opts.WithTheme(nil)
	}
	if c.Scale > 0 {
		opts = opts.WithScale(c.Scale)
	}

	fit := maskbutton.DefaultFitPolicy()
	if c.Fit.Preset == "fine" {
		fit = maskbutton.FineFitPolicy()
	}
	if c.Fit.MinScale != 0 {
		fit.MinScale = c.Fit.MinScale
	}
	if c.Fit.Step != 0 {
		fit.Step = c.Fit.Step
	}
	return opts.WithFit(fit), nil
}

// Apply configures b from the description. Images are loaded from disk.
func (c *Config) Apply(b *maskbutton.Button) error {
	space, err := rendering.ParseInterpolationSpace(c.Gradient.Space)
	if err != nil {
		return err
	}
	b.SetGradientStartColor(rendering.Color(c.Gradient.Start))
	b.SetGradientEndColor(rendering.Color(c.Gradient.End))
	b.SetGradientAngle(c.Gradient.Angle)
	b.SetInterpolationSpace(space)
	b.SetBackgroundColor(rendering.Color(c.Background))
	b.SetTintColor(rendering.Color(c.Tint))
	b.SetReversed(c.Reversed)
	b.SetBorderWidth(c.Border.Width)
	b.SetCornerRadius(c.Border.Radius)

	f := b.Font()
	if c.Font.Family != "" {
		f.Family = c.Font.Family
	}
	if c.Font.Size > 0 {
		f.Size = c.Font.Size
	}
	b.SetFont(f)

	for key, title := range c.Titles {
		state, err := maskbutton.ParseState(key)
		if err != nil {
			return err
		}
		b.SetTitle(state, title)
	}
	for key, path := range c.Images {
		state, err := maskbutton.ParseState(key)
		if err != nil {
			return err
		}
		img, err := c.loadImage(path)
		if err != nil {
			return err
		}
		b.SetImage(state, img)
	}

	if c.Alpha > 0 {
		b.SetAlpha(c.Alpha)
	}
	b.SetEnabled(!c.Disabled)
	b.ForceRedraw()
	return nil
}

func (c *Config) loadImage(path string) (image.Image, error) {
	img, err := imaging.Open(c.path(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %q: %w", path, err)
	}
	return img, nil
}

func (c *Config) path(p string) string {
	if filepath.IsAbs(p) || c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}
