package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"cancerdash/domain/cancer"
	"cancerdash/internal"
	"cancerdash/internal/config"
	"cancerdash/internal/dashboard"
	"cancerdash/internal/testkit"
	"cancerdash/ui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	loadEnv(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadEnv reads .env when present. A missing file is normal; any other
// failure is reported to w and the environment is used as is.
func loadEnv(w io.Writer) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(w, "warning: could not load .env: %v\n", err)
	}
}

func newRootCmd() *cobra.Command {
	var dataFile string

	rootCmd := &cobra.Command{
		Use:           "cancerdash-cli",
		Short:         "Inspect the cancer dataset and render dashboard charts offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "Dataset file (overrides DATA_FILE)")

	loadState := func() (*dashboard.State, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		if dataFile != "" {
			cfg.Data.File = dataFile
		}
		return dashboard.LoadState(cfg, internal.NewLogger(internal.LogLevelWarn))
	}

	rootCmd.AddCommand(
		newOptionsCmd(loadState),
		newRenderCmd(loadState),
		newPNGCmd(loadState),
		newSampleCmd(),
	)
	return rootCmd
}

type stateLoader func() (*dashboard.State, error)

func newOptionsCmd(load stateLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List region and cancer-type selector options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Regions:")
			for _, r := range state.RegionOptions {
				fmt.Fprintf(out, "  %s\n", r)
			}
			fmt.Fprintln(out, "Cancer types:")
			for _, c := range state.CancerOptions {
				marker := " "
				if c == state.DefaultCancer {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, c)
			}
			return nil
		},
	}
}

func newRenderCmd(load stateLoader) *cobra.Command {
	var region, cancerType string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the chart for a region and cancer type as JSON",
		Long: `Print the chart the dashboard would draw, as JSON.

Example: cancerdash-cli render --region "South Asia" --cancer Breast_cancer_deaths_per_100_000_women`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := load()
			if err != nil {
				return err
			}
			if cancerType == "" {
				cancerType = state.DefaultCancer
			}

			spec, err := state.FilterAndRender(region, cancerType)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(spec)
		},
	}

	cmd.Flags().StringVar(&region, "region", cancer.AllRegions, "Region to filter on")
	cmd.Flags().StringVar(&cancerType, "cancer", "", "Cancer column (default: configured default)")
	return cmd
}

func newPNGCmd(load stateLoader) *cobra.Command {
	var region, cancerType, outPath string
	var width, height int

	cmd := &cobra.Command{
		Use:   "png",
		Short: "Write the chart for a region and cancer type as a PNG image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := load()
			if err != nil {
				return err
			}
			if cancerType == "" {
				cancerType = state.DefaultCancer
			}

			spec, err := state.FilterAndRender(region, cancerType)
			if err != nil {
				return err
			}
			img, err := ui.RenderPNG(spec, ui.ImageSize{Width: width, Height: height})
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, img, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bars)\n", outPath, len(spec.Valued()))
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", cancer.AllRegions, "Region to filter on")
	cmd.Flags().StringVar(&cancerType, "cancer", "", "Cancer column (default: configured default)")
	cmd.Flags().StringVar(&outPath, "out", "chart.png", "Output file")
	cmd.Flags().IntVar(&width, "width", ui.DefaultImageSize.Width, "Minimum image width")
	cmd.Flags().IntVar(&height, "height", ui.DefaultImageSize.Height, "Image height")
	return cmd
}

func newSampleCmd() *cobra.Command {
	var outPath string
	genConfig := testkit.DefaultAsiaConfig()

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a synthetic Asia cancer dataset (CSV or .xlsx)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if genConfig.MissingRate < 0 || genConfig.MissingRate > 1 {
				return fmt.Errorf("--missing-rate must be between 0 and 1, got %v", genConfig.MissingRate)
			}
			headers, rows := testkit.NewAsiaDataGenerator(genConfig).Generate()
			if err := testkit.WriteDataset(outPath, headers, rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d countries)\n", outPath, len(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "data/WHO_Asia_Cancer_with_Regions.csv", "Output file")
	cmd.Flags().Int64Var(&genConfig.Seed, "seed", genConfig.Seed, "Random seed")
	cmd.Flags().Float64Var(&genConfig.MissingRate, "missing-rate", 0, "Chance of a blank rate cell")
	return cmd
}
