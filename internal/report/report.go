// Package report renders shielding calculations as table, JSON or YAML.
package report

import (
	"fmt"
	"io"

	"github.com/alexshd/gammashield"
)

// Result is one calculation. Quantities that were not part of the
// calculation are nil and omitted from JSON and YAML.
type Result struct {
	Operation       string   `json:"operation" yaml:"operation"`
	Material        string   `json:"material" yaml:"material"`
	Depth           *float64 `json:"depth_cm,omitempty" yaml:"depth_cm,omitempty"`
	UnshieldedRate  *float64 `json:"unshielded_rate,omitempty" yaml:"unshielded_rate,omitempty"`
	ShieldingFactor *float64 `json:"shielding_factor,omitempty" yaml:"shielding_factor,omitempty"`
	ShieldedRate    *float64 `json:"shielded_rate,omitempty" yaml:"shielded_rate,omitempty"`
}

// MaterialRow describes a material together with its derived layers.
type MaterialRow struct {
	Key                          string  `json:"key" yaml:"key"`
	Name                         string  `json:"name" yaml:"name"`
	MassAttenuationCoefficient   float64 `json:"mass_attenuation_coefficient" yaml:"mass_attenuation_coefficient"`
	Density                      float64 `json:"density" yaml:"density"`
	BuildUpFactor                float64 `json:"build_up_factor" yaml:"build_up_factor"`
	LinearAttenuationCoefficient float64 `json:"linear_attenuation_coefficient" yaml:"linear_attenuation_coefficient"`
	HalfValueLayer               float64 `json:"half_value_layer_cm" yaml:"half_value_layer_cm"`
	TenthValueLayer              float64 `json:"tenth_value_layer_cm" yaml:"tenth_value_layer_cm"`
}

// NewMaterialRow computes the row for a material.
func NewMaterialRow(key string, m gammashield.Material) (MaterialRow, error) {
	hvl, err := gammashield.HalfValueLayer(m)
	if err != nil {
		return MaterialRow{}, err
	}
	tvl, err := gammashield.TenthValueLayer(m)
	if err != nil {
		return MaterialRow{}, err
	}

	return MaterialRow{
		Key:                          key,
		Name:                         m.Name(),
		MassAttenuationCoefficient:   m.MassAttenuationCoefficient(),
		Density:                      m.Density(),
		BuildUpFactor:                m.BuildUpFactor(),
		LinearAttenuationCoefficient: m.LinearAttenuationCoefficient(),
		HalfValueLayer:               hvl,
		TenthValueLayer:              tvl,
	}, nil
}

// SweepResults converts an attenuation curve into results.
func SweepResults(m gammashield.Material, unshielded float64, points []gammashield.Point) []Result {
	results := make([]Result, 0, len(points))
	for _, p := range points {
		results = append(results, Result{
			Operation:       "sweep",
			Material:        m.String(),
			Depth:           Float(p.Depth),
			UnshieldedRate:  Float(unshielded),
			ShieldingFactor: Float(p.ShieldingFactor),
			ShieldedRate:    Float(p.ExposureRate),
		})
	}
	return results
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Formatter writes results in one output format.
type Formatter interface {
	FormatResults(results []Result) error
	FormatMaterials(rows []MaterialRow) error
}

// Options tune the formatters that support them.
type Options struct {
	Precision   int  // decimal places in table output
	EnableColor bool // ANSI colors in table output
}

// DefaultOptions returns table precision 4 with colors on.
func DefaultOptions() Options {
	return Options{Precision: 4, EnableColor: true}
}

// NewFormatter returns a formatter for the given format name.
func NewFormatter(format string, w io.Writer, opts Options) (Formatter, error) {
	switch format {
	case "table", "":
		return NewTableFormatter(w, opts), nil
	case "json":
		return NewJSONFormatter(w, true), nil
	case "yaml":
		return NewYAMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: %v)", format, SupportedFormats())
	}
}

// SupportedFormats returns the available format names.
func SupportedFormats() []string {
	return []string{"table", "json", "yaml"}
}
