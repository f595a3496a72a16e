package cli

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/go-drift/maskbutton/internal/config"
	"github.com/go-drift/maskbutton/pkg/maskbutton"
	"github.com/go-drift/maskbutton/pkg/rendering"
)

const defaultOutput = "button.png"

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output      string    // output path; the format follows the extension
	highlighted bool      // render with a touch held inside the bounds
	disabled    bool      // render the disabled state
	angles      []float64 // gradient angles, one file each
	scale       float64   // pixels per point, overrides the description
	background  string    // hex backdrop color, transparent when empty
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{output: defaultOutput}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a button description to an image",
		Long: `Render a button description to PNG, JPEG, GIF, TIFF or BMP.

Without a file argument, maskbutton.yaml in the current directory is used.
When several angles are given, the angle is appended to the output name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args)
			if err != nil {
				return err
			}
			_, err = runRender(cmd.Context(), cfg, &opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file")
	cmd.Flags().BoolVar(&opts.highlighted, "highlighted", false, "render the highlighted state")
	cmd.Flags().BoolVar(&opts.disabled, "disabled", false, "render the disabled state")
	cmd.Flags().Float64SliceVar(&opts.angles, "angle", nil, "gradient angle(s) in degrees (repeatable or comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "pixels per point (overrides the description)")
	cmd.Flags().StringVar(&opts.background, "background", "", "backdrop color, e.g. #ffffff")

	return cmd
}

func loadConfig(args []string) (*config.Config, error) {
	if len(args) == 1 {
		return config.Load(args[0])
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.LoadOptional(wd)
}

// runRender renders cfg once per angle and returns the written paths.
func runRender(ctx context.Context, cfg *config.Config, opts *renderOpts) ([]string, error) {
	logger := loggerFromContext(ctx)

	if opts.scale > 0 {
		cfg.Scale = opts.scale
	}
	bounds := cfg.Bounds()
	if bounds.Size().IsEmpty() {
		return nil, fmt.Errorf("button size is required (size: {width, height})")
	}
	var backdrop color.NRGBA
	if opts.background != "" {
		c, err := rendering.ParseHexColor(opts.background)
		if err != nil {
			return nil, fmt.Errorf("--background: %w", err)
		}
		backdrop = c.NRGBA()
	}

	bOpts, err := cfg.Options(nil)
	if err != nil {
		return nil, err
	}
	b := maskbutton.New(bOpts)
	if err := cfg.Apply(b); err != nil {
		return nil, err
	}
	if opts.disabled {
		b.SetEnabled(false)
	}
	logger.Debug("configured button", "size", fmt.Sprintf("%gx%g", bounds.Width(), bounds.Height()),
		"scale", bOpts.Scale, "state", b.State())

	angles := opts.angles
	if len(angles) == 0 {
		angles = []float64{cfg.Gradient.Angle}
	}
	written := make([]string, 0, len(angles))
	for _, angle := range angles {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		prog := newProgress(logger)
		b.SetGradientAngle(angle)
		layers := layoutButton(b, bounds, opts.highlighted)
		if layers.IsInert() {
			return written, fmt.Errorf("nothing to render at %g degrees: set a gradient start, background or tint color", angle)
		}

		path := outputPath(opts.output, angle, len(angles) > 1)
		if err := imaging.Save(compose(layers, backdrop), path); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		prog.done("rendered", "path", path, "angle", angle, "kind", layers.Kind, "font_size", layers.FontSize)
		written = append(written, path)
	}
	return written, nil
}

// layoutButton lays b out, holding a touch at the center when highlighted.
func layoutButton(b *maskbutton.Button, bounds rendering.Rect, highlighted bool) maskbutton.Layers {
	if !highlighted {
		return b.Layout(bounds)
	}
	// The first pass records the bounds and the resting alpha.
	b.Layout(bounds)
	b.BeginTracking(bounds.Center())
	defer b.CancelTracking()
	return b.Layout(bounds)
}

// compose flattens the layers over a backdrop at the layer opacity.
func compose(l maskbutton.Layers, backdrop color.NRGBA) *image.NRGBA {
	r := l.Content.Bounds()
	canvas := imaging.New(r.Dx(), r.Dy(), backdrop)
	return imaging.Overlay(canvas, l.Content, image.Point{}, l.Alpha)
}

// outputPath appends the angle to path when rendering several angles.
func outputPath(path string, angle float64, multi bool) string {
	if !multi {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%s%s", strings.TrimSuffix(path, ext), strconv.FormatFloat(angle, 'f', -1, 64), ext)
}
