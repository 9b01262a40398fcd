package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shiroink/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved configuration profiles",
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current convert flags under a profile name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		if err := store.Save(args[0], cfg); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Saved profile %q\n", args[0])
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		cfg, err := store.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "resolution:        %s\n", cfg.Resolution)
		fmt.Fprintf(os.Stdout, "preset:            %s\n", cfg.Preset)
		fmt.Fprintf(os.Stdout, "quality:           %d\n", cfg.Quality)
		fmt.Fprintf(os.Stdout, "workers:           %d\n", cfg.Workers)
		fmt.Fprintf(os.Stdout, "max retries:       %d\n", cfg.MaxRetries)
		fmt.Fprintf(os.Stdout, "rtl:               %v\n", cfg.RightToLeft)
		fmt.Fprintf(os.Stdout, "continue on error: %v\n", cfg.ContinueOnError)
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		names, err := store.List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintln(os.Stdout, "No profiles saved.")
			return nil
		}
		for _, name := range names {
			fmt.Fprintf(os.Stdout, "  %s\n", name)
		}
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Deleted profile %q\n", args[0])
		return nil
	},
}

func openStore() (*profile.Store, error) {
	dir, err := profile.DefaultDir()
	if err != nil {
		return nil, err
	}
	return profile.NewStore(dir)
}

func init() {
	// save reuses the convert flag set so a profile captures exactly
	// what a convert invocation would use.
	profileSaveCmd.Flags().AddFlagSet(convertCmd.Flags())

	profileCmd.AddCommand(profileSaveCmd, profileShowCmd, profileListCmd, profileDeleteCmd)
	rootCmd.AddCommand(profileCmd)
}
