package main

import (
	"fmt"

	"github.com/cwbudde/algo-echo/echo/spectrum"
	"github.com/cwbudde/algo-echo/internal/table"
	"github.com/spf13/cobra"
)

func newSpectrumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Write the echo-train amplitude spectrum around the carrier",
		Long: `spectrum synthesises the echo train, takes its one-sided amplitude
spectrum and writes the band within two comb spacings of the carrier.
The predicted comb lines (spacing 1/echo_delay, anchored on the bin nearest
the carrier) are logged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			full, _ := cmd.Flags().GetBool("full")

			p, err := cfg.Echo.ResolveParams()
			if err != nil {
				return err
			}
			w, err := p.Synthesize()
			if err != nil {
				return err
			}

			s, err := spectrum.Analyze(w.Strain, w.SampleRate)
			if err != nil {
				return err
			}

			fmin, fmax, err := spectrum.DisplayBand(p.CarrierHz, p.EchoDelay)
			if err != nil {
				return err
			}
			spacing, _ := spectrum.CombSpacing(p.EchoDelay)
			lines, err := s.CarrierCombLines(p.CarrierHz, p.EchoDelay, fmin, fmax, cfg.Echo.CombSpan)
			if err != nil {
				return err
			}
			if !full {
				if s, err = s.Band(fmin, fmax); err != nil {
					return err
				}
			}
			log.Info("spectrum",
				"fft_size", s.FFTSize,
				"bins", len(s.Freqs),
				"comb_spacing_hz", spacing,
				"peak_hz", s.PeakFrequency(),
			)
			for _, f := range lines {
				log.Debug("comb line", "freq_hz", f)
			}

			if err := table.WriteFile(out, []string{"freq_Hz", "magnitude"}, s.Freqs, s.Magnitude); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().String("out", "echo_spectrum.csv", "output CSV path")
	cmd.Flags().Bool("full", false, "write all bins from DC to Nyquist")
	return cmd
}
