package emissions_test

import (
	"github.com/mamadbah2/herdmethane/internal/domain/models"
)

func testPreset() models.Preset {
	return models.Preset{
		Name:         "test",
		BaselineDiet: "conventional",
		NoAdditive:   "none",
		EmissionFactors: models.Table{
			{Key: "dairy", Value: 72},
			{Key: "beef", Value: 60},
			{Key: "buffalo", Value: 90},
		},
		DietReductions: models.Table{
			{Key: "conventional", Value: 0},
			{Key: "improved", Value: 0.10},
			{Key: "high-quality", Value: 0.15},
		},
		AdditiveReductions: models.Table{
			{Key: "none", Value: 0},
			{Key: "seaweed", Value: 0.30},
			{Key: "3-NOP", Value: 0.31},
			{Key: "oils", Value: 0.10},
		},
		Conversion: models.ConversionConstants{GWP: 28, TreeTCO2ePerYear: 0.021, CarTCO2ePerYear: 4.6},
		Tier2: models.Tier2Constants{
			EnergyDensityMJPerKg: 18.45,
			MethaneEnergyMJPerKg: 55.65,
			Diets: map[string]models.DietProfile{
				"conventional": {IntakeFraction: 0.020, MethaneConversionPct: 6.5},
				"improved":     {IntakeFraction: 0.022, MethaneConversionPct: 6.5},
				"high-quality": {IntakeFraction: 0.025, MethaneConversionPct: 6.0},
			},
		},
	}
}

func ptr(v float64) *float64 { return &v }
