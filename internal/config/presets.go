package config

import "github.com/mamadbah2/herdmethane/internal/domain/models"

// Built-in preset names.
const (
	PresetStandard = "standard"
	PresetAR6      = "ar6"
	PresetIndia    = "india"
)

// Tier-2 energy constants shared by every built-in preset.
const (
	// GrossEnergyDensityMJPerKg is gross energy per kg of feed dry matter.
	GrossEnergyDensityMJPerKg = 18.45
	// MethaneEnergyMJPerKg is the energy content of one kg of methane.
	MethaneEnergyMJPerKg = 55.65
)

// BuiltinPresets returns fresh copies of the presets compiled into the binary, in the order
// they are offered.
func BuiltinPresets() []models.Preset {
	return []models.Preset{standardPreset(), ar6Preset(), indiaPreset()}
}

func tier2Defaults() models.Tier2Constants {
	return models.Tier2Constants{
		EnergyDensityMJPerKg: GrossEnergyDensityMJPerKg,
		MethaneEnergyMJPerKg: MethaneEnergyMJPerKg,
		Diets: map[string]models.DietProfile{
			"conventional": {IntakeFraction: 0.020, MethaneConversionPct: 6.5},
			"improved":     {IntakeFraction: 0.022, MethaneConversionPct: 6.5},
			"high-quality": {IntakeFraction: 0.025, MethaneConversionPct: 6.0},
		},
	}
}

func dietTiers() models.Table {
	return models.Table{
		{Key: "conventional", Value: 0.00},
		{Key: "improved", Value: 0.10},
		{Key: "high-quality", Value: 0.15},
	}
}

func standardPreset() models.Preset {
	return models.Preset{
		Name:         PresetStandard,
		Description:  "Default factors: GWP 28, field-average additive efficacy.",
		BaselineDiet: models.DefaultBaselineDiet,
		NoAdditive:   models.DefaultNoAdditive,
		EmissionFactors: models.Table{
			{Key: "dairy", Value: 72},
			{Key: "beef", Value: 60},
			{Key: "buffalo", Value: 90},
		},
		DietReductions: dietTiers(),
		AdditiveReductions: models.Table{
			{Key: "none", Value: 0},
			{Key: "seaweed", Value: 0.30}, // Asparagopsis, field-realistic average
			{Key: "3-NOP", Value: 0.31},
			{Key: "oils", Value: 0.10},
		},
		Conversion: models.ConversionConstants{
			GWP:              28,
			TreeTCO2ePerYear: 0.021,
			CarTCO2ePerYear:  4.6,
		},
		Tier2: tier2Defaults(),
	}
}

func ar6Preset() models.Preset {
	p := standardPreset()
	p.Name = PresetAR6
	p.Description = "Conservative: AR6 GWP 27.2 and lower additive efficacy."
	p.AdditiveReductions = models.Table{
		{Key: "none", Value: 0},
		{Key: "seaweed", Value: 0.25},
		{Key: "3-NOP", Value: 0.28},
		{Key: "oils", Value: 0.08},
	}
	p.Conversion.GWP = 27.2
	p.Tier2 = tier2Defaults()
	return p
}

func indiaPreset() models.Preset {
	p := standardPreset()
	p.Name = PresetIndia
	p.Description = "Indian subcontinent factors with the Harit Dhara supplement."
	p.EmissionFactors = models.Table{
		{Key: "dairy", Value: 58},
		{Key: "beef", Value: 27},
		{Key: "buffalo", Value: 55},
	}
	p.AdditiveReductions = models.Table{
		{Key: "none", Value: 0},
		{Key: "harit-dhara", Value: 0.20},
		{Key: "seaweed", Value: 0.30},
		{Key: "3-NOP", Value: 0.31},
		{Key: "oils", Value: 0.10},
	}
	p.Tier2 = tier2Defaults()
	return p
}
