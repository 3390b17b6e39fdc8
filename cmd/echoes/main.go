// Command echoes writes the data behind the echo and evaporation figures:
// the echo-train waveform, its amplitude spectrum, evaporation lifetime
// curves and a summary of barrier peaks.
//
// Usage:
//
//	echoes <command> [flags]
//
// Examples:
//
//	echoes waveform --out echo_waveform.csv
//	echoes spectrum --config echoes.yaml
//	echoes evap --out pbh_evap.csv
//	echoes peak --mass 30 --lmax 6
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cwbudde/algo-echo/internal/config"
	"github.com/cwbudde/algo-echo/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "echoes",
		Short: "Data for black-hole echo and evaporation figures",
		Long: `echoes synthesises the numeric data behind the echo figures: a ringdown
followed by decaying echoes, its amplitude spectrum with the predicted comb,
evaporation lifetimes with and without a Planck remnant, and barrier peaks.

Every command writes CSV; parameters come from an optional YAML config.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML config file (defaults used when empty)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: info, warn, debug or trace (overrides config)")

	rootCmd.AddCommand(
		newWaveformCmd(),
		newSpectrumCmd(),
		newEvapCmd(),
		newPeakCmd(),
	)

	return rootCmd
}

// loadConfig resolves the config file and logger shared by all subcommands.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	level, _ := cmd.Flags().GetString("log-level")

	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, nil, err
		}
	}
	if level != "" {
		cfg.Logging.Level = level
	}
	if err := logging.ValidateLevel(cfg.Logging.Level); err != nil {
		return nil, nil, err
	}

	log := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	if path != "" {
		log.Debug("config loaded", "path", path)
	}
	return cfg, log, nil
}
