package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"shiroink/internal/device"
	"shiroink/internal/tui"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List supported target devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderDevices(os.Stdout)
		return nil
	},
}

// renderDevices prints the registry grouped by brand. Brand names are
// the id prefix before the first underscore; Keys is sorted, so the
// brand order falls out sorted as well.
func renderDevices(w io.Writer) {
	seen := make(map[string]bool)
	var brands []string
	for _, id := range device.Keys() {
		brand := id
		if i := strings.IndexByte(id, '_'); i > 0 {
			brand = id[:i]
		}
		if !seen[brand] {
			seen[brand] = true
			brands = append(brands, brand)
		}
	}

	for i, brand := range brands {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, brandStyle.Render(strings.ToUpper(brand)))

		specs := device.ByBrand(brand)
		ids := make([]string, 0, len(specs))
		for id := range specs {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Fprintf(w, "  %s %s\n",
				idStyle.Render(fmt.Sprintf("%-26s", id)),
				descStyle.Render(specs[id].String()),
			)
		}
	}
}

var (
	brandStyle = lipgloss.NewStyle().Bold(true).Foreground(tui.ColorAccent)
	idStyle    = lipgloss.NewStyle().Foreground(tui.ColorInk)
	descStyle  = lipgloss.NewStyle().Foreground(tui.ColorDim)
)

func init() {
	rootCmd.AddCommand(devicesCmd)
}
