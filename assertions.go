package gammashield

import (
	"fmt"
	"math"
	"testing"
)

// AssertionConfig contains the sample grid and tolerance for law checks.
type AssertionConfig struct {
	// Relative tolerance for round-trip comparisons
	RelTolerance float64

	// Depths (cm) sampled for monotonicity, ascending
	Depths []float64

	// Shielding factors sampled for the round trip, all in (0, 1]
	Factors []float64

	// Exposure rates used for the zero-depth identity
	Rates []float64
}

// DefaultAssertionConfig returns a grid covering thin to very thick shields.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		RelTolerance: 1e-9,
		Depths:       []float64{0, 0.01, 0.1, 0.5, 1, 2, 5, 10, 50, 100},
		Factors:      []float64{1, 0.9, 0.5, 0.1, 0.01, 1e-3, 1e-6, 1e-9},
		Rates:        []float64{0, 1, 100, 2.5e6, -3},
	}
}

// AssertRoundTrip verifies that depth and shielding factor invert each other.
//
// Mathematical property:
//
//	SF(m, x(m, f)) ≈ f   for f ∈ (0, 1]
func AssertRoundTrip(t *testing.T, material Material, cfg AssertionConfig) {
	t.Helper()

	var failures []string
	for _, f := range cfg.Factors {
		depth, err := DepthForShieldingFactor(material, f)
		if err != nil {
			t.Fatalf("DepthForShieldingFactor(%s, %g) failed: %v", material, f, err)
		}

		got := ShieldingFactorForDepth(material, depth)
		if relDiff(got, f) > cfg.RelTolerance {
			failures = append(failures, fmt.Sprintf(
				"  f=%g → x=%.6f cm → f'=%.12g (rel err %.2e)",
				f, depth, got, relDiff(got, f)))
		}
	}

	if len(failures) > 0 {
		t.Errorf("Round trip broken for %s:\n%v", material, failures)
	}

	t.Logf("✓ Round trip: %d factors within %.0e for %s", len(cfg.Factors), cfg.RelTolerance, material)
}

// AssertMonotonicAttenuation verifies the exposure rate never grows with depth.
//
// Mathematical property:
//
//	∂I/∂x = -μ·I ≤ 0   for μ > 0, I₀ ≥ 0
func AssertMonotonicAttenuation(t *testing.T, material Material, cfg AssertionConfig) {
	t.Helper()

	var failures []string
	prev := ShieldedExposureRate(material, cfg.Depths[0], 1)
	for i := 1; i < len(cfg.Depths); i++ {
		curr := ShieldedExposureRate(material, cfg.Depths[i], 1)
		if curr > prev {
			failures = append(failures, fmt.Sprintf(
				"  x=%g→%g: %.6g → %.6g (increase!)",
				cfg.Depths[i-1], cfg.Depths[i], prev, curr))
		}
		prev = curr
	}

	if len(failures) > 0 {
		t.Errorf("Attenuation not monotonic for %s:\n%v", material, failures)
	}

	t.Logf("✓ Monotonic: exposure non-increasing over %d depths for %s", len(cfg.Depths), material)
}

// AssertIdentityAtZeroDepth verifies that no shield leaves the rate unchanged
// and that a shielding factor of 1 needs no shield.
func AssertIdentityAtZeroDepth(t *testing.T, material Material, cfg AssertionConfig) {
	t.Helper()

	for _, rate := range cfg.Rates {
		if got := ShieldedExposureRate(material, 0, rate); got != rate {
			t.Errorf("ShieldedExposureRate(%s, 0, %g) = %g, want %g", material, rate, got, rate)
		}
	}

	depth, err := DepthForShieldingFactor(material, 1)
	if err != nil {
		t.Fatalf("DepthForShieldingFactor(%s, 1) failed: %v", material, err)
	}
	if depth != 0 {
		t.Errorf("DepthForShieldingFactor(%s, 1) = %g, want 0", material, depth)
	}

	t.Logf("✓ Identity: depth 0 ⇔ factor 1 for %s", material)
}

// AssertAttenuationLaws runs all law assertions for a material.
func AssertAttenuationLaws(t *testing.T, material Material, cfg AssertionConfig) {
	t.Helper()

	t.Run("RoundTrip", func(t *testing.T) {
		AssertRoundTrip(t, material, cfg)
	})

	t.Run("Monotonic", func(t *testing.T) {
		AssertMonotonicAttenuation(t, material, cfg)
	})

	t.Run("Identity", func(t *testing.T) {
		AssertIdentityAtZeroDepth(t, material, cfg)
	})
}

// relDiff returns |a-b| relative to |b|, or the absolute difference when b is 0.
func relDiff(a, b float64) float64 {
	if b == 0 {
		return math.Abs(a)
	}
	return math.Abs(a-b) / math.Abs(b)
}
