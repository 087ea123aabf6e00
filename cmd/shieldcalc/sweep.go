package main

import (
	"github.com/spf13/cobra"

	"github.com/alexshd/gammashield"
	"github.com/alexshd/gammashield/internal/report"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		material materialOptions
		rate     float64
		depths   []float64
	)

	cmd := &cobra.Command{
		Use:     "sweep",
		Short:   "Exposure rate over a range of shield thicknesses",
		Example: `  shieldcalc sweep --material Lead1332 --rate 100 --depths 0,1,2,5,10`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := material.resolve(a, cmd)
			if err != nil {
				return err
			}

			points := gammashield.Sweep(m, rate, depths)

			f, err := a.formatter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return f.FormatResults(report.SweepResults(m, rate, points))
		},
	}

	material.RegisterFlags(cmd)
	cmd.Flags().Float64VarP(&rate, "rate", "r", 1, "Unshielded exposure rate")
	cmd.Flags().Float64SliceVar(&depths, "depths", []float64{0, 1, 2, 5, 10}, "Shield thicknesses (cm, comma-separated)")

	return cmd
}
