package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"shiroink/internal/pipeline"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List pipeline presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range pipeline.PresetNames() {
			p, err := pipeline.Preset(name)
			if err != nil {
				return err
			}

			steps := "(no processing)"
			if p.Len() > 0 {
				steps = strings.Join(p.StepNames(), " -> ")
			}
			fmt.Fprintf(os.Stdout, "  %s %s\n",
				idStyle.Render(fmt.Sprintf("%-24s", name)),
				descStyle.Render(steps),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
