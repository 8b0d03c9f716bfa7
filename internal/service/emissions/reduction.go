package emissions

import "math"

// CombineReductions composes a diet and an additive reduction multiplicatively:
// each acts on the emissions left by the other, so 1 - (1-fd)(1-fa).
//
// Both fractions must lie in [0, models.MaxReduction]; presets enforce that on load.
func CombineReductions(fDiet, fAdditive float64) float64 {
	if fDiet == 0 {
		return fAdditive
	}
	if fAdditive == 0 {
		return fDiet
	}
	// rounding can land one ulp below the larger input
	return math.Max(1-(1-fDiet)*(1-fAdditive), math.Max(fDiet, fAdditive))
}
