// Command rwkb tabulates the WKB reflection coefficient of a compact
// object's axial potential barrier over a frequency range.
//
// Usage:
//
//	rwkb --mass <solar masses> [flags]
//
// Examples:
//
//	rwkb --mass 30
//	rwkb --mass 30 --l 3 --fmin 10 --fmax 2000 --n 500
//	rwkb --mass 62 --out R_62.csv --log-level debug
//
// The result is written as CSV with header "freq_Hz,R", one row per
// frequency in ascending order.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cwbudde/algo-echo/internal/logging"
	"github.com/cwbudde/algo-echo/internal/numeric"
	"github.com/cwbudde/algo-echo/internal/table"
	"github.com/cwbudde/algo-echo/physics/units"
	"github.com/cwbudde/algo-echo/physics/wkb"
	"github.com/spf13/cobra"
)

const defaultOutput = "R_curve.csv"

type options struct {
	mass     float64
	l        int
	fmin     float64
	fmax     float64
	n        int
	out      string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "rwkb --mass <solar masses>",
		Short: "Tabulate the WKB reflection coefficient R(f)",
		Long: `rwkb evaluates the semiclassical reflection coefficient of the axial
(Regge–Wheeler) potential barrier for a body of the given mass over an
evenly spaced frequency range and writes the table as CSV.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := logging.ValidateLevel(opts.logLevel); err != nil {
				return err
			}
			log := logging.NewLogger(opts.logLevel, cmd.ErrOrStderr())
			return run(opts, cmd.OutOrStdout(), log)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.mass, "mass", 0, "mass in solar masses (required)")
	flags.IntVar(&opts.l, "l", 2, "multipole number l (>= 2)")
	flags.Float64Var(&opts.fmin, "fmin", 20, "lowest frequency in Hz")
	flags.Float64Var(&opts.fmax, "fmax", 500, "highest frequency in Hz")
	flags.IntVar(&opts.n, "n", 1000, "number of frequency samples")
	flags.StringVar(&opts.out, "out", defaultOutput, "output CSV path")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: info, warn, debug or trace")
	_ = cmd.MarkFlagRequired("mass")

	return cmd
}

func run(opts options, stdout io.Writer, log *slog.Logger) error {
	peak, err := wkb.PeakForSolarMass(opts.l, opts.mass)
	if err != nil {
		return err
	}
	log.Debug("barrier peak",
		"l", opts.l,
		"mass_solar", opts.mass,
		"r_peak", peak.Radius,
		"omega_peak", peak.Omega,
		"kappa", peak.Kappa,
		"f_half_hz", units.GeometrizedToHz(peak.Omega),
	)

	freqs := numeric.Linspace(opts.fmin, opts.fmax, opts.n)
	res, err := wkb.Evaluate(wkb.Query{Frequencies: freqs, L: opts.l, Mass: opts.mass})
	if err != nil {
		return err
	}

	ctx := context.Background()
	if log.Enabled(ctx, logging.LevelTrace) {
		for i, f := range res.Frequencies {
			log.Log(ctx, logging.LevelTrace, "sample", "freq_hz", f, "r", res.R[i])
		}
	}

	if err := table.WriteFile(opts.out, []string{"freq_Hz", "R"}, res.Frequencies, res.R); err != nil {
		return err
	}
	log.Debug("table written", "path", opts.out, "rows", len(res.R))

	_, err = fmt.Fprintf(stdout, "Wrote %s\n", opts.out)
	return err
}
