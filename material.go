package gammashield

import (
	"fmt"
	"math"
)

// Material holds the physical constants needed by the attenuation law.
//
// A Material is an immutable value: all fields are set by NewMaterial and can
// only be read back. Copies are safe to share between goroutines.
type Material struct {
	name                       string
	massAttenuationCoefficient float64 // μ/ρ in cm²/g
	buildUpFactor              float64 // reserved, never applied
	density                    float64 // ρ in g/cm³
}

// NewMaterial creates a material from its constants.
//
// Values are not checked. Call Validate at a trust boundary when the numbers
// come from user input.
func NewMaterial(name string, massAttenuationCoefficient, buildUpFactor, density float64) Material {
	return Material{
		name:                       name,
		massAttenuationCoefficient: massAttenuationCoefficient,
		buildUpFactor:              buildUpFactor,
		density:                    density,
	}
}

// Name returns the human-readable label. It may be empty.
func (m Material) Name() string { return m.name }

// MassAttenuationCoefficient returns μ/ρ in cm²/g.
func (m Material) MassAttenuationCoefficient() float64 { return m.massAttenuationCoefficient }

// BuildUpFactor returns the stored build-up factor.
// The attenuation functions in this package do not use it.
func (m Material) BuildUpFactor() float64 { return m.buildUpFactor }

// Density returns ρ in g/cm³.
func (m Material) Density() float64 { return m.density }

// LinearAttenuationCoefficient returns μ = (μ/ρ)·ρ in 1/cm.
func (m Material) LinearAttenuationCoefficient() float64 {
	return m.massAttenuationCoefficient * m.density
}

// Validate reports whether the constants describe a physical material:
// μ/ρ, ρ and the build-up factor must be finite and strictly positive.
func (m Material) Validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"mass attenuation coefficient", m.massAttenuationCoefficient},
		{"density", m.density},
		{"build-up factor", m.buildUpFactor},
	}

	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) || c.value <= 0 {
			return fmt.Errorf("material %s: %s must be positive and finite, got %g",
				m, c.field, c.value)
		}
	}

	return nil
}

// String returns the name, or the constants when the material is unnamed.
func (m Material) String() string {
	if m.name != "" {
		return m.name
	}
	return fmt.Sprintf("μ/ρ=%g cm²/g, ρ=%g g/cm³", m.massAttenuationCoefficient, m.density)
}
