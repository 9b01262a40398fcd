package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shiroink",
	Short: "shiroink 🖋️ - convert manga and comics for e-reader devices",
	Long: "shiroink 🖋️ batch-converts manga and comic pages for e-reader devices:\n" +
		"margin cropping, skew correction, text enhancement, device-exact resizing,\n" +
		"and CBZ bundling, tuned per device.",
}

// exitCodeError carries a non-standard exit code from a command to
// Execute without printing anything.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var ec *exitCodeError
		if errors.As(err, &ec) {
			os.Exit(ec.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}
