// Package gammashield computes gamma-ray attenuation through shielding materials.
//
// # Overview
//
// gammashield answers three practical questions with the linear attenuation law:
//
//   - How strong is the exposure rate behind a given shield?
//   - What fraction of the radiation passes through (the shielding factor)?
//   - How thick must a shield be to reach a target shielding factor?
//
// # The Attenuation Law
//
// A narrow beam of photons passing through a thickness x of material falls off
// exponentially:
//
//	I = I₀ · e^(-μx),   μ = (μ/ρ) · ρ
//
// Where:
//   - I₀: Unshielded exposure rate (any unit, e.g. R/hr)
//   - I:  Shielded exposure rate (same unit as I₀)
//   - μ/ρ: Mass attenuation coefficient (cm²/g), energy dependent
//   - ρ:  Density (g/cm³)
//   - x:  Shield thickness (cm)
//
// The inverse gives the thickness needed for a shielding factor f = I/I₀:
//
//	x = -ln(f) / ((μ/ρ) · ρ)
//
// The build-up factor carried by every Material is NOT applied. It is stored
// so that catalog data stays complete, and is always 1 for the built-in
// materials.
//
// # Quick Start
//
//	rate := gammashield.ShieldedExposureRate(gammashield.Lead662, 1, 100)
//	fmt.Printf("%.0f R/hr\n", rate) // 29 R/hr
//
//	depth, err := gammashield.DepthForShieldingFactor(gammashield.Lead662, 0.01)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.1f cm\n", depth) // 3.7 cm
//
// # Materials
//
// The catalog holds four reference materials (Water, Iron, Lead1332, Lead662).
// Lead appears twice because μ/ρ depends on photon energy: each energy point is
// a distinct material. Callers build their own values with NewMaterial:
//
//	concrete := gammashield.NewMaterial("Concrete (662 keV)", 0.0774, 1, 2.35)
//
// # Domain Errors
//
// DepthForShieldingFactor takes the logarithm of the shielding factor, so a
// factor that is not strictly positive returns a *DomainError (errors.Is
// matches ErrDomain). Every other operation is total over float64.
//
// # Testing
//
// Use assertions to check the attenuation laws for any material:
//
//	func TestConcrete(t *testing.T) {
//	    gammashield.AssertAttenuationLaws(t, concrete, gammashield.DefaultAssertionConfig())
//	}
package gammashield
