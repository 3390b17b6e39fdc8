package main

import (
	"fmt"

	"github.com/cwbudde/algo-echo/echo/train"
	"github.com/cwbudde/algo-echo/internal/table"
	"github.com/spf13/cobra"
)

func newWaveformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "waveform",
		Short: "Write the ringdown and echo-train strain time series",
		Long: `waveform synthesises the ringdown and its echoes on the sampling grid
used for the spectrum. With --figure it writes the time-domain figure
instead: 2000 points from -1 ms to half an echo delay past the last echo,
a window divisor of 6 and a first echo at a quarter of the ringdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			figure, _ := cmd.Flags().GetBool("figure")

			p, err := cfg.Echo.ResolveParams()
			if err != nil {
				return err
			}
			if figure {
				p = p.FigureParams()
			}
			log.Debug("echo train",
				"carrier_hz", p.CarrierHz,
				"echo_delay_s", p.EchoDelay,
				"echoes", p.EchoCount,
				"reflection", p.Reflection,
			)

			var w train.Waveform
			if figure {
				w, err = p.SynthesizeFigure()
			} else {
				w, err = p.Synthesize()
			}
			if err != nil {
				return err
			}

			peak, idx := w.PeakAbs()
			if idx >= 0 {
				log.Info("waveform synthesised", "samples", len(w.Strain), "peak", peak, "peak_t_s", w.Time[idx])
			}
			for i, tp := range p.EchoTimes() {
				log.Debug("echo", "n", i+1, "t_s", tp, "amplitude", p.EchoAmplitudes()[i])
			}

			if err := table.WriteFile(out, []string{"t_s", "strain"}, w.Time, w.Strain); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().String("out", "echo_waveform.csv", "output CSV path")
	cmd.Flags().Bool("figure", false, "sample the time-domain figure grid")
	return cmd
}
