package main

import (
	"github.com/spf13/cobra"

	"github.com/alexshd/gammashield"
	"github.com/alexshd/gammashield/internal/report"
)

func newRateCmd(a *app) *cobra.Command {
	var (
		material materialOptions
		depth    float64
		rate     float64
	)

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Exposure rate behind a shield",
		Long: `Compute the shielded exposure rate I = I₀·e^(-(μ/ρ)·ρ·x).
The result has the unit of --rate.`,
		Example: `  shieldcalc rate --material Lead662 --depth 1 --rate 100`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := material.resolve(a, cmd)
			if err != nil {
				return err
			}
			if depth < 0 {
				a.logger.Warn("negative depth extrapolates beyond the unshielded rate", "depth", depth)
			}

			shielded := gammashield.ShieldedExposureRate(m, depth, rate)
			a.logger.Debug("computed shielded rate", "material", m, "depth", depth, "rate", shielded)

			f, err := a.formatter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return f.FormatResults([]report.Result{{
				Operation:      "rate",
				Material:       m.String(),
				Depth:          report.Float(depth),
				UnshieldedRate: report.Float(rate),
				ShieldedRate:   report.Float(shielded),
			}})
		},
	}

	material.RegisterFlags(cmd)
	cmd.Flags().Float64VarP(&depth, "depth", "d", 0, "Shield thickness (cm)")
	cmd.Flags().Float64VarP(&rate, "rate", "r", 0, "Unshielded exposure rate (e.g. R/hr)")
	_ = cmd.MarkFlagRequired("depth")
	_ = cmd.MarkFlagRequired("rate")

	return cmd
}
