package gammashield

import "math"

// ShieldedExposureRate returns the exposure rate behind depth cm of material.
//
// Linear attenuation law:
//
//	I = I₀ · e^(-(μ/ρ)·ρ·x)
//
// The result has the unit of unshieldedExposureRate. The material's build-up
// factor is not applied. The function is total: very thick shields underflow
// toward 0 and negative depths extrapolate upward (possibly to +Inf).
func ShieldedExposureRate(material Material, depth, unshieldedExposureRate float64) float64 {
	power := -material.massAttenuationCoefficient * material.density * depth
	return unshieldedExposureRate * math.Exp(power)
}

// ShieldingFactorForDepth returns the fraction of radiation transmitted
// through depth cm of material, independent of the absolute exposure rate.
func ShieldingFactorForDepth(material Material, depth float64) float64 {
	return ShieldedExposureRate(material, depth, 1)
}

// DepthForShieldingFactor returns the thickness (cm) of material that reduces
// the exposure rate by shieldingFactor = I/I₀.
//
// Inverse of the attenuation law:
//
//	x = -ln(f) / ((μ/ρ)·ρ)
//
// A factor of exactly 1 yields 0. Factors above 1 yield a negative depth.
// A factor that is not strictly positive (including NaN) returns a
// *DomainError instead of propagating NaN or -Inf.
func DepthForShieldingFactor(material Material, shieldingFactor float64) (float64, error) {
	if !(shieldingFactor > 0) {
		return 0, &DomainError{
			Operation: "DepthForShieldingFactor",
			Quantity:  "shielding factor",
			Value:     shieldingFactor,
		}
	}

	if shieldingFactor == 1 {
		return 0, nil
	}

	return -math.Log(shieldingFactor) / (material.massAttenuationCoefficient * material.density), nil
}

// DepthForExposureRate returns the thickness (cm) of material that brings the
// unshielded exposure rate down to target. Both rates must share a unit.
//
// Example (NRC slide 41): 100 R/hr behind Lead662, target 1 R/hr → 3.7 cm.
func DepthForExposureRate(material Material, unshieldedExposureRate, target float64) (float64, error) {
	if !(unshieldedExposureRate > 0) {
		return 0, &DomainError{
			Operation: "DepthForExposureRate",
			Quantity:  "unshielded exposure rate",
			Value:     unshieldedExposureRate,
		}
	}

	return DepthForShieldingFactor(material, target/unshieldedExposureRate)
}

// HalfValueLayer returns the thickness that halves the exposure rate.
func HalfValueLayer(material Material) (float64, error) {
	return DepthForShieldingFactor(material, 0.5)
}

// TenthValueLayer returns the thickness that cuts the exposure rate to 1/10.
func TenthValueLayer(material Material) (float64, error) {
	return DepthForShieldingFactor(material, 0.1)
}

// Point is one sample of an attenuation curve.
type Point struct {
	Depth           float64 // cm
	ShieldingFactor float64 // I/I₀
	ExposureRate    float64 // I, unit of the unshielded rate
}

// Sweep evaluates the attenuation curve at each depth, in input order.
func Sweep(material Material, unshieldedExposureRate float64, depths []float64) []Point {
	points := make([]Point, 0, len(depths))
	for _, d := range depths {
		factor := ShieldingFactorForDepth(material, d)
		points = append(points, Point{
			Depth:           d,
			ShieldingFactor: factor,
			ExposureRate:    ShieldedExposureRate(material, d, unshieldedExposureRate),
		})
	}
	return points
}
