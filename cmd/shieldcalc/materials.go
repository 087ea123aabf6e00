package main

import (
	"github.com/spf13/cobra"

	"github.com/alexshd/gammashield/internal/materialfile"
	"github.com/alexshd/gammashield/internal/report"
)

func newMaterialsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List available materials with their half- and tenth-value layers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := materialfile.LoadSet(a.v.GetString("materials_file"))
			if err != nil {
				return err
			}

			keys := set.Keys()
			rows := make([]report.MaterialRow, 0, len(keys))
			for _, key := range keys {
				m, _ := set.Lookup(key)
				row, err := report.NewMaterialRow(key, m)
				if err != nil {
					return err
				}
				rows = append(rows, row)
			}

			f, err := a.formatter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return f.FormatMaterials(rows)
		},
	}
}
