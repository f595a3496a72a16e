// Package cli implements the maskbutton command-line interface.
//
// The render command rasterizes a button description (see internal/config)
// to an image file, optionally highlighted or disabled and at several
// gradient angles. All commands accept --verbose for debug logging; the
// logger travels through context.Context and also receives the errors the
// button reports while rendering.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-drift/maskbutton/pkg/buildinfo"
	"github.com/go-drift/maskbutton/pkg/errors"
)

const appName = "maskbutton"

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Logs go to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "Render gradient-masked buttons",
		Long:          `maskbutton renders buttons whose title or image is cut out of, or filled with, a linear gradient.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(logOut, level)
			errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newFontsCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), buildinfo.String()+"\n")
			return err
		},
	}
}
