package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"shiroink/internal/batch"
	"shiroink/internal/config"
	"shiroink/internal/device"
	"shiroink/internal/pipeline"
	"shiroink/internal/profile"
	"shiroink/internal/report"
	"shiroink/internal/tui"
)

var (
	convertResolution string
	convertDevice     string
	convertPreset     string
	convertRTL        bool
	convertQuality    int
	convertWorkers    int
	convertRetries    int
	convertContinue   bool
	convertDryRun     bool
	convertDebug      bool
	convertProfile    string
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <source-dir> <dest-dir>",
	Short: "Convert directories and CBZ bundles of page images",
	Long: "convert processes every directory and .cbz bundle directly under\n" +
		"<source-dir> and writes one converted .cbz per work item into <dest-dir>.",
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		cfg.SourceDir = args[0]
		cfg.DestDir = args[1]

		if convertDevice != "" {
			spec, err := device.Lookup(convertDevice)
			if err != nil {
				return err
			}
			cfg.Resolution = spec.Resolution
			cfg.Custom = device.Synthesize(spec)
			fmt.Fprintln(os.Stdout, deviceInfoBlock(spec))
		}

		// Debug and dry runs log lines the progress view would swallow.
		if cfg.Debug || cfg.DryRun {
			reporter := report.NewConsole(os.Stderr, cfg.Debug)
			runner, err := batch.NewRunner(cfg, reporter)
			if err != nil {
				return err
			}
			return finishRun(runner, runner.Run(context.Background()))
		}

		reporter := report.NewChannel(64)
		model := tui.NewModel(reporter.Updates())
		program := tea.NewProgram(model)

		uiDone := make(chan struct{})
		go func() {
			_, _ = program.Run()
			close(uiDone)
		}()

		runner, err := batch.NewRunner(cfg, reporter)
		if err != nil {
			reporter.Stop()
			<-uiDone
			return err
		}

		code := runner.Run(context.Background())
		reporter.Stop()
		<-uiDone

		return finishRun(runner, code)
	},
}

// buildConfig assembles the run configuration: defaults, then the named
// profile if any, then explicitly set flags on top.
func buildConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if convertProfile != "" {
		dir, err := profile.DefaultDir()
		if err != nil {
			return cfg, err
		}
		store, err := profile.NewStore(dir)
		if err != nil {
			return cfg, err
		}
		cfg, err = store.Load(convertProfile)
		if err != nil {
			return cfg, err
		}
	}

	if cmd.Flags().Changed("resolution") {
		if convertDevice != "" {
			return cfg, fmt.Errorf("--resolution cannot be used with --device")
		}
		res, err := parseResolution(convertResolution)
		if err != nil {
			return cfg, err
		}
		cfg.Resolution = res
	}
	if cmd.Flags().Changed("preset") {
		cfg.Preset = convertPreset
	}
	if cmd.Flags().Changed("rtl") {
		cfg.RightToLeft = convertRTL
	}
	if cmd.Flags().Changed("quality") {
		cfg.Quality = convertQuality
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = convertWorkers
	}
	if cmd.Flags().Changed("retries") {
		cfg.MaxRetries = convertRetries
	}
	if cmd.Flags().Changed("continue-on-error") {
		cfg.ContinueOnError = convertContinue
	}
	cfg.DryRun = convertDryRun
	cfg.Debug = convertDebug

	return cfg, nil
}

func finishRun(runner *batch.Runner, code int) error {
	stats := runner.Stats()
	rows := tui.RunSummaryRows(stats.Processed, stats.Bundles, runner.Tracker().Summary())
	fmt.Fprintln(os.Stdout, tui.RenderSummary(rows))

	if convertDebug {
		for _, rec := range runner.Tracker().Records() {
			fmt.Fprintf(os.Stderr, "[%s] %s (step %s, retries %d): %v\n",
				rec.Severity, rec.Path, rec.Step, rec.RetryCount, rec.Err)
		}
	}

	if code != 0 {
		return &exitCodeError{code: code}
	}
	return nil
}

func parseResolution(s string) (pipeline.Resolution, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return pipeline.Resolution{}, fmt.Errorf("invalid resolution %q, expected WxH", s)
	}

	var res pipeline.Resolution
	if _, err := fmt.Sscanf(parts[0]+" "+parts[1], "%d %d", &res.Width, &res.Height); err != nil {
		return pipeline.Resolution{}, fmt.Errorf("invalid resolution %q, expected WxH", s)
	}
	return res, nil
}

func deviceInfoBlock(spec device.Spec) string {
	colorInfo := "B&W only"
	if spec.ColorSupport {
		colorInfo = "Color"
	}

	lines := []string{
		fmt.Sprintf("Using device preset: %s", spec.Name),
		fmt.Sprintf("  Resolution:   %s", spec.Resolution),
		fmt.Sprintf("  Screen size:  %.1f\"", spec.ScreenSizeInches),
		fmt.Sprintf("  Display:      %s, %d ppi", spec.Display, spec.PPI),
		fmt.Sprintf("  Color:        %s, %d-bit", colorInfo, spec.BitDepth),
	}
	if spec.Gamut != device.GamutNone {
		lines = append(lines, fmt.Sprintf("  Gamut:        %s", spec.Gamut))
	}
	lines = append(lines, fmt.Sprintf("  Recommended:  %s preset", spec.RecommendedPreset))
	return strings.Join(lines, "\n")
}

func init() {
	convertCmd.Flags().StringVarP(&convertResolution, "resolution", "r", "", "target resolution as WxH (default 1264x1680)")
	convertCmd.Flags().StringVarP(&convertDevice, "device", "d", "", "target device id (see 'shiroink devices')")
	convertCmd.Flags().StringVarP(&convertPreset, "preset", "p", "", "pipeline preset (see 'shiroink presets')")
	convertCmd.Flags().BoolVar(&convertRTL, "rtl", false, "right-to-left page order for split spreads")
	convertCmd.Flags().IntVarP(&convertQuality, "quality", "q", 8, "output compression level 1-9")
	convertCmd.Flags().IntVarP(&convertWorkers, "workers", "w", 4, "concurrent workers per directory")
	convertCmd.Flags().IntVar(&convertRetries, "retries", 2, "per-file retry count")
	convertCmd.Flags().BoolVar(&convertContinue, "continue-on-error", false, "keep going after per-file failures")
	convertCmd.Flags().BoolVar(&convertDryRun, "dry-run", false, "list planned work without writing anything")
	convertCmd.Flags().BoolVar(&convertDebug, "debug", false, "verbose logging, no progress UI")
	convertCmd.Flags().StringVar(&convertProfile, "profile", "", "load a saved configuration profile")

	rootCmd.AddCommand(convertCmd)
}
