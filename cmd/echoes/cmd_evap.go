package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-echo/internal/numeric"
	"github.com/cwbudde/algo-echo/internal/table"
	"github.com/spf13/cobra"
)

func newEvapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evap",
		Short: "Write Hawking and remnant evaporation lifetimes versus mass",
		Long: `evap evaluates the evaporation lifetime K·M³ and the time to reach a
Planck remnant, K/(1-α_H)·(M³-M_P³), over a log-spaced mass grid.
Masses below the remnant mass leave the remnant column empty.

With --zoom the grid is linear from M_P to 100·M_P instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			zoom, _ := cmd.Flags().GetBool("zoom")

			model := cfg.Evap.Model()
			masses := numeric.Logspace(cfg.Evap.MinExp, cfg.Evap.MaxExp, cfg.Evap.Points)
			if zoom {
				masses = numeric.Linspace(model.PlanckMass, 100*model.PlanckMass, cfg.Evap.Points)
			}

			pts, err := model.Curve(masses)
			if err != nil {
				return err
			}
			core, err := model.CoreRadius(1)
			if err != nil {
				return err
			}
			log.Info("evaporation curves",
				"points", len(pts),
				"alpha_h", model.AlphaH,
				"slowdown", 1/(1-model.AlphaH),
				"core_radius_rs", core,
			)

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()

			w := table.NewWriter(f)
			if err := w.Header("mass", "t_hawking", "t_remnant"); err != nil {
				return err
			}
			for _, p := range pts {
				remnant := ""
				if p.HasRemnant {
					remnant = table.FormatFloat(p.Remnant)
				}
				if err := w.Cells(table.FormatFloat(p.Mass), table.FormatFloat(p.Hawking), remnant); err != nil {
					return err
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().String("out", "pbh_evap.csv", "output CSV path")
	cmd.Flags().Bool("zoom", false, "linear grid from M_P to 100·M_P")
	return cmd
}
