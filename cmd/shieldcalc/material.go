package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexshd/gammashield"
	"github.com/alexshd/gammashield/internal/materialfile"
)

// materialOptions selects a catalog material or describes an ad-hoc one.
type materialOptions struct {
	Key     string
	Name    string
	Mu      float64
	Density float64
	BuildUp float64
}

// RegisterFlags adds the material flags to a command.
func (o *materialOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Key, "material", "m", "", "Material key (see 'shieldcalc materials')")
	cmd.Flags().StringVar(&o.Name, "name", "", "Name of an ad-hoc material")
	cmd.Flags().Float64Var(&o.Mu, "mu", 0, "Mass attenuation coefficient μ/ρ (cm²/g) of an ad-hoc material")
	cmd.Flags().Float64Var(&o.Density, "density", 0, "Density ρ (g/cm³) of an ad-hoc material")
	cmd.Flags().Float64Var(&o.BuildUp, "build-up", 1, "Build-up factor of an ad-hoc material (stored, not applied)")

	cmd.MarkFlagsRequiredTogether("mu", "density")
	cmd.MarkFlagsMutuallyExclusive("material", "mu")
	cmd.MarkFlagsOneRequired("material", "mu")
}

// resolve returns the selected material.
func (o *materialOptions) resolve(a *app, cmd *cobra.Command) (gammashield.Material, error) {
	if cmd.Flags().Changed("mu") {
		m := gammashield.NewMaterial(o.Name, o.Mu, o.BuildUp, o.Density)
		if err := m.Validate(); err != nil {
			return gammashield.Material{}, err
		}
		if o.BuildUp != 1 {
			a.logger.Warn("build-up factor is stored but not applied", "build_up", o.BuildUp)
		}
		return m, nil
	}

	set, err := materialfile.LoadSet(a.v.GetString("materials_file"))
	if err != nil {
		return gammashield.Material{}, fmt.Errorf("failed to load materials: %w", err)
	}

	m, ok := set.Lookup(o.Key)
	if !ok {
		return gammashield.Material{}, fmt.Errorf("unknown material %q (available: %s)",
			o.Key, strings.Join(set.Keys(), ", "))
	}

	a.logger.Debug("material resolved",
		"key", o.Key,
		"mu_rho", m.MassAttenuationCoefficient(),
		"density", m.Density())

	return m, nil
}
