package emissions

import (
	"fmt"
	"math"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
)

const daysPerYear = 365

// Tier2EmissionFactor derives kg CH4 per head per year from live weight:
//
//	intake  = weight * intake fraction            (kg DM/day)
//	energy  = intake * energy density             (MJ/day)
//	methane = energy * Ym/100 / methane energy    (kg CH4/day)
//	factor  = methane * 365
func Tier2EmissionFactor(weightKg float64, diet models.DietProfile, c models.Tier2Constants) float64 {
	dryMatterIntake := weightKg * diet.IntakeFraction
	grossEnergy := dryMatterIntake * c.EnergyDensityMJPerKg
	methaneEnergy := grossEnergy * (diet.MethaneConversionPct / 100)
	dailyMethane := methaneEnergy / c.MethaneEnergyMJPerKg
	return dailyMethane * daysPerYear
}

// ResolveFactor picks the emission factor for a herd. A positive weight always selects the
// Tier-2 derivation; otherwise the category table value is used.
func (c *Calculator) ResolveFactor(profile models.HerdProfile) (float64, models.FactorSource, error) {
	tableFactor, ok := c.preset.EmissionFactors.Lookup(profile.Category)
	if !ok {
		return 0, "", fmt.Errorf("%w: unknown animal category %q", models.ErrConfiguration, profile.Category)
	}

	if profile.WeightKg == nil {
		return tableFactor, models.FactorSourceTable, nil
	}

	weight := *profile.WeightKg
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, "", fmt.Errorf("%w: weight must be a finite number", models.ErrInvalidInput)
	}
	if weight <= 0 {
		return tableFactor, models.FactorSourceTable, nil
	}

	diet, ok := c.preset.Tier2.Diets[profile.Diet]
	if !ok {
		return 0, "", fmt.Errorf("%w: no tier2 profile for diet %q", models.ErrConfiguration, profile.Diet)
	}

	return Tier2EmissionFactor(weight, diet, c.preset.Tier2), models.FactorSourceTier2, nil
}
