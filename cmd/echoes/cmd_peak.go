package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-echo/physics/units"
	"github.com/cwbudde/algo-echo/physics/wkb"
	"github.com/spf13/cobra"
)

func newPeakCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peak",
		Short: "Print barrier peak properties for a range of multipoles",
		Long: `peak prints the Schwarzschild radius of the body and then, for each
multipole l, the closed-form barrier peak (r = 3M), the peak angular
frequency and curvature, the frequency at which R = 1/2, and the radius of
the exact maximum found by Newton iteration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			mass, _ := cmd.Flags().GetFloat64("mass")
			lmin, _ := cmd.Flags().GetInt("lmin")
			lmax, _ := cmd.Flags().GetInt("lmax")
			if lmax < lmin {
				return fmt.Errorf("--lmax (%d) must be >= --lmin (%d)", lmax, lmin)
			}

			m := units.SolarMassesToSeconds(mass)
			rs := units.SchwarzschildRadius(mass)
			log.Debug("geometrized mass", "mass_solar", mass, "m_s", m, "r_s_m", rs)

			fmt.Fprintf(cmd.OutOrStdout(), "M = %g M_sun, r_s = %.3f km\n", mass, rs/1000)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "l\tr_peak [M]\tr_peak [km]\tomega_peak [1/s]\tkappa [1/s²]\tf(R=1/2) [Hz]\tr_exact [M]\n")
			fmt.Fprintf(tw, "-\t----------\t-----------\t----------------\t------------\t-------------\t-----------\n")

			for l := lmin; l <= lmax; l++ {
				p, err := wkb.LocatePeak(l, m)
				if err != nil {
					return err
				}
				exact, err := wkb.LocatePeakNewton(l, m)
				if err != nil {
					return fmt.Errorf("l=%d: %w", l, err)
				}

				fmt.Fprintf(tw, "%d\t%.4f\t%.3f\t%.6g\t%.6g\t%.6g\t%.6f\n",
					l,
					p.Radius/m,
					p.Radius*units.C/1000,
					p.Omega,
					p.Kappa,
					units.GeometrizedToHz(p.Omega),
					exact.Radius/m,
				)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Float64("mass", 30, "mass in solar masses")
	cmd.Flags().Int("lmin", 2, "first multipole")
	cmd.Flags().Int("lmax", 6, "last multipole")
	return cmd
}
