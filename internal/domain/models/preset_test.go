package models_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
)

func validPreset() models.Preset {
	return models.Preset{
		Name:               "test",
		EmissionFactors:    models.Table{{Key: "dairy", Value: 72}},
		DietReductions:     models.Table{{Key: "conventional", Value: 0}, {Key: "improved", Value: 0.1}},
		AdditiveReductions: models.Table{{Key: "none", Value: 0}, {Key: "seaweed", Value: 0.3}},
		Conversion:         models.ConversionConstants{GWP: 28, TreeTCO2ePerYear: 0.021, CarTCO2ePerYear: 4.6},
		Tier2: models.Tier2Constants{
			EnergyDensityMJPerKg: 18.45,
			MethaneEnergyMJPerKg: 55.65,
			Diets:                map[string]models.DietProfile{"improved": {IntakeFraction: 0.022, MethaneConversionPct: 6.5}},
		},
	}.WithDefaults()
}

func TestPreset_WithDefaults(t *testing.T) {
	p := models.Preset{}.WithDefaults()
	assert.Equal(t, models.DefaultBaselineDiet, p.BaselineDiet)
	assert.Equal(t, models.DefaultNoAdditive, p.NoAdditive)

	p = models.Preset{BaselineDiet: "grass", NoAdditive: "nothing"}.WithDefaults()
	assert.Equal(t, "grass", p.BaselineDiet)
	assert.Equal(t, "nothing", p.NoAdditive)
}

func TestPreset_Validate(t *testing.T) {
	assert.NoError(t, validPreset().Validate())

	tests := []struct {
		name   string
		mutate func(*models.Preset)
	}{
		{"missing name", func(p *models.Preset) { p.Name = "" }},
		{"no emission factors", func(p *models.Preset) { p.EmissionFactors = nil }},
		{"duplicate category", func(p *models.Preset) {
			p.EmissionFactors = append(p.EmissionFactors, models.Entry{Key: "dairy", Value: 70})
		}},
		{"zero factor", func(p *models.Preset) { p.EmissionFactors[0].Value = 0 }},
		{"NaN factor", func(p *models.Preset) { p.EmissionFactors[0].Value = math.NaN() }},
		{"baseline diet missing", func(p *models.Preset) { p.BaselineDiet = "pasture" }},
		{"baseline diet not zero", func(p *models.Preset) { p.DietReductions[0].Value = 0.05 }},
		{"additive reduction of one", func(p *models.Preset) { p.AdditiveReductions[1].Value = 1 }},
		{"additive reduction above the cap", func(p *models.Preset) { p.AdditiveReductions[1].Value = 0.995 }},
		{"diet reduction just below one", func(p *models.Preset) { p.DietReductions[1].Value = 1 - 1e-9 }},
		{"negative additive reduction", func(p *models.Preset) { p.AdditiveReductions[1].Value = -0.1 }},
		{"no-additive key missing", func(p *models.Preset) {
			p.AdditiveReductions = models.Table{{Key: "seaweed", Value: 0.3}}
		}},
		{"zero gwp", func(p *models.Preset) { p.Conversion.GWP = 0 }},
		{"infinite car constant", func(p *models.Preset) { p.Conversion.CarTCO2ePerYear = math.Inf(1) }},
		{"zero tree constant", func(p *models.Preset) { p.Conversion.TreeTCO2ePerYear = 0 }},
		{"zero energy density", func(p *models.Preset) { p.Tier2.EnergyDensityMJPerKg = 0 }},
		{"zero methane energy", func(p *models.Preset) { p.Tier2.MethaneEnergyMJPerKg = 0 }},
		{"tier2 profile for unknown diet", func(p *models.Preset) {
			p.Tier2.Diets["pasture"] = models.DietProfile{IntakeFraction: 0.02, MethaneConversionPct: 6}
		}},
		{"tier2 ym above 100", func(p *models.Preset) {
			p.Tier2.Diets["improved"] = models.DietProfile{IntakeFraction: 0.02, MethaneConversionPct: 120}
		}},
		{"tier2 zero intake", func(p *models.Preset) {
			p.Tier2.Diets["improved"] = models.DietProfile{IntakeFraction: 0, MethaneConversionPct: 6}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPreset()
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), models.ErrConfiguration)
		})
	}
}

func TestPreset_CloneIsDeep(t *testing.T) {
	p := validPreset()
	clone := p.Clone()

	clone.EmissionFactors[0].Value = 1
	clone.AdditiveReductions[1].Value = 0.9
	clone.Tier2.Diets["improved"] = models.DietProfile{}

	assert.Equal(t, 72.0, p.EmissionFactors[0].Value)
	assert.Equal(t, 0.3, p.AdditiveReductions[1].Value)
	assert.Equal(t, 0.022, p.Tier2.Diets["improved"].IntakeFraction)
}

func TestPreset_Summary(t *testing.T) {
	s := validPreset().Summary(true)

	assert.Equal(t, "test", s.Name)
	assert.True(t, s.Default)
	assert.Equal(t, []string{"dairy"}, s.Categories)
	assert.Equal(t, []string{"conventional", "improved"}, s.Diets)
	assert.Equal(t, []string{"none", "seaweed"}, s.Additives)
}

func TestPreset_ValidateAcceptsMaxReduction(t *testing.T) {
	p := validPreset()
	p.DietReductions[1].Value = models.MaxReduction
	p.AdditiveReductions[1].Value = models.MaxReduction

	assert.NoError(t, p.Validate())
}
