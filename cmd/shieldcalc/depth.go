package main

import (
	"github.com/spf13/cobra"

	"github.com/alexshd/gammashield"
	"github.com/alexshd/gammashield/internal/report"
)

func newDepthCmd(a *app) *cobra.Command {
	var (
		material materialOptions
		factor   float64
		rate     float64
		target   float64
	)

	cmd := &cobra.Command{
		Use:   "depth",
		Short: "Shield thickness for a target shielding factor",
		Long: `Compute the thickness x = -ln(f) / ((μ/ρ)·ρ) that reduces the exposure
rate by the shielding factor f. Give f directly with --factor, or give the
unshielded --rate and the --target rate.

A shielding factor that is not strictly positive is rejected.`,
		Example: `  shieldcalc depth --material Lead662 --factor 0.01
  shieldcalc depth --material Lead662 --rate 100 --target 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := material.resolve(a, cmd)
			if err != nil {
				return err
			}

			result := report.Result{Operation: "depth", Material: m.String()}

			var depth float64
			if cmd.Flags().Changed("target") {
				depth, err = gammashield.DepthForExposureRate(m, rate, target)
				result.UnshieldedRate = report.Float(rate)
				result.ShieldedRate = report.Float(target)
				if rate > 0 {
					result.ShieldingFactor = report.Float(target / rate)
				}
			} else {
				depth, err = gammashield.DepthForShieldingFactor(m, factor)
				result.ShieldingFactor = report.Float(factor)
			}
			if err != nil {
				return err
			}
			if depth < 0 {
				a.logger.Warn("shielding factor above 1 yields a negative depth", "depth", depth)
			}

			a.logger.Debug("computed depth", "material", m, "depth", depth)
			result.Depth = report.Float(depth)

			f, err := a.formatter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return f.FormatResults([]report.Result{result})
		},
	}

	material.RegisterFlags(cmd)
	cmd.Flags().Float64VarP(&factor, "factor", "f", 0, "Target shielding factor I/I₀")
	cmd.Flags().Float64VarP(&rate, "rate", "r", 0, "Unshielded exposure rate")
	cmd.Flags().Float64VarP(&target, "target", "t", 0, "Target shielded exposure rate")

	cmd.MarkFlagsRequiredTogether("rate", "target")
	cmd.MarkFlagsMutuallyExclusive("factor", "target")
	cmd.MarkFlagsOneRequired("factor", "target")

	return cmd
}
