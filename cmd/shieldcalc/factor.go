package main

import (
	"github.com/spf13/cobra"

	"github.com/alexshd/gammashield"
	"github.com/alexshd/gammashield/internal/report"
)

func newFactorCmd(a *app) *cobra.Command {
	var (
		material materialOptions
		depth    float64
	)

	cmd := &cobra.Command{
		Use:     "factor",
		Short:   "Fraction of radiation a shield transmits",
		Example: `  shieldcalc factor --material Water --depth 10`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := material.resolve(a, cmd)
			if err != nil {
				return err
			}
			if depth < 0 {
				a.logger.Warn("negative depth yields a factor above 1", "depth", depth)
			}

			factor := gammashield.ShieldingFactorForDepth(m, depth)
			a.logger.Debug("computed shielding factor", "material", m, "depth", depth, "factor", factor)

			f, err := a.formatter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return f.FormatResults([]report.Result{{
				Operation:       "factor",
				Material:        m.String(),
				Depth:           report.Float(depth),
				ShieldingFactor: report.Float(factor),
			}})
		},
	}

	material.RegisterFlags(cmd)
	cmd.Flags().Float64VarP(&depth, "depth", "d", 0, "Shield thickness (cm)")
	_ = cmd.MarkFlagRequired("depth")

	return cmd
}
