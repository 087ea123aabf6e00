package gammashield

import (
	"maps"
	"slices"
	"strings"
)

// Reference materials. Coefficients follow the NRC shielding course slides
// (ML11229A721); every build-up factor is 1.
var (
	// Water at ~1 MeV.
	Water = NewMaterial("Water", 0.0707, 1, 1)

	// Iron as tabulated in the reference data, including its unit density.
	Iron = NewMaterial("Iron", 0.0599, 1, 1)

	// Lead1332 is lead at 1332 keV (Co-60 upper line).
	Lead1332 = NewMaterial("Lead (1332 keV)", 0.057, 1, 11.35)

	// Lead662 is lead at 662 keV (Cs-137).
	Lead662 = NewMaterial("Lead (662 keV)", 0.11, 1, 11.35)
)

// catalog maps the lowercase key to the reference material.
// Written once at init, read-only afterwards.
var catalog = map[string]Material{
	"water":    Water,
	"iron":     Iron,
	"lead1332": Lead1332,
	"lead662":  Lead662,
}

// catalogKeys keeps the display spelling of each key.
var catalogKeys = map[string]string{
	"water":    "Water",
	"iron":     "Iron",
	"lead1332": "Lead1332",
	"lead662":  "Lead662",
}

// Lookup returns the catalog material for name. Matching ignores case.
func Lookup(name string) (Material, bool) {
	m, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// CatalogNames returns the catalog keys in sorted order.
func CatalogNames() []string {
	return slices.Sorted(maps.Values(catalogKeys))
}

// Catalog returns a copy of the catalog keyed by display name.
// Changing the returned map does not affect the package catalog.
func Catalog() map[string]Material {
	out := make(map[string]Material, len(catalog))
	for key, m := range catalog {
		out[catalogKeys[key]] = m
	}
	return out
}
