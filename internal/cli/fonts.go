package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/maskbutton/pkg/rendering"
)

func newFontsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts [file]",
		Short: "List the font families available to a description",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args)
			if err != nil {
				return err
			}
			fonts, err := rendering.NewFontManager()
			if err != nil {
				return err
			}
			if _, err := cfg.Options(fonts); err != nil {
				return err
			}
			for _, family := range fonts.Families() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), family); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
