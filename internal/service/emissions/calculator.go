// Package emissions estimates herd methane, the reduction achievable through diet and feed
// additives, and converts avoided emissions into cars and trees.
//
// A Calculator is built once from a validated preset and never mutated afterwards, so it is
// safe for concurrent use without locking.
package emissions

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
)

const kgPerTonne = 1000

// Calculator computes emissions against one immutable preset.
type Calculator struct {
	preset models.Preset
	logger *zap.Logger
}

// NewCalculator validates the preset and wires a calculator around a private copy of it.
func NewCalculator(preset models.Preset, logger *zap.Logger) (*Calculator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := preset.WithDefaults().Clone()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{preset: p, logger: logger}, nil
}

// Preset returns a copy of the tables the calculator works with.
func (c *Calculator) Preset() models.Preset {
	return c.preset.Clone()
}

// BaselineMethaneTonnes returns herd methane in tonnes per year for a per-head factor in kg.
func BaselineMethaneTonnes(factorKg float64, herdSize int) float64 {
	return factorKg * float64(herdSize) / kgPerTonne
}

// Compute runs the full pipeline for one input: resolve the factor, combine reductions,
// then derive masses and equivalents.
func (c *Calculator) Compute(in models.CalculationInput) (models.CalculationResult, error) {
	if err := validateHerd(in.HerdProfile); err != nil {
		return models.CalculationResult{}, err
	}

	factor, source, err := c.ResolveFactor(in.HerdProfile)
	if err != nil {
		return models.CalculationResult{}, err
	}

	fDiet, err := c.dietReduction(in.Diet)
	if err != nil {
		return models.CalculationResult{}, err
	}

	fAdditive, ok := c.preset.AdditiveReductions.Lookup(in.Additive)
	if !ok {
		return models.CalculationResult{}, fmt.Errorf("%w: unknown additive %q", models.ErrConfiguration, in.Additive)
	}

	combined := CombineReductions(fDiet, fAdditive)
	baselineT := BaselineMethaneTonnes(factor, in.HerdSize)
	baselineCO2eT := baselineT * c.preset.Conversion.GWP
	baselineCars, baselineTrees := c.equivalents(baselineCO2eT)
	reducedT, avoidedT := c.avoided(baselineT, combined)
	cars, trees := c.equivalents(avoidedT)

	c.logger.Debug("emissions computed",
		zap.String("preset", c.preset.Name),
		zap.Int("herd_size", in.HerdSize),
		zap.String("category", in.Category),
		zap.String("diet", in.Diet),
		zap.String("additive", in.Additive),
		zap.String("factor_source", string(source)),
		zap.Float64("avoided_t_co2e", avoidedT))

	return models.CalculationResult{
		Preset:            c.preset.Name,
		Input:             in,
		EmissionFactor:    factor,
		FactorSource:      source,
		DietReduction:     fDiet,
		AdditiveReduction: fAdditive,
		CombinedReduction: combined,
		GWP:               c.preset.Conversion.GWP,
		BaselineMethaneT:  baselineT,
		BaselineCO2eT:     baselineCO2eT,
		BaselineCars:      baselineCars,
		BaselineTrees:     baselineTrees,
		ReducedMethaneT:   reducedT,
		ResidualMethaneT:  baselineT - reducedT,
		AvoidedCO2eT:      avoidedT,
		CarsRemoved:       cars,
		TreesEquivalent:   trees,
	}, nil
}

// IsNoAdditive reports whether additive is the preset's "no additive" key.
func (c *Calculator) IsNoAdditive(additive string) bool {
	return additive == c.preset.NoAdditive
}

func (c *Calculator) dietReduction(diet string) (float64, error) {
	f, ok := c.preset.DietReductions.Lookup(diet)
	if !ok {
		return 0, fmt.Errorf("%w: unknown diet %q", models.ErrConfiguration, diet)
	}
	return f, nil
}

// avoided returns the methane removed by a combined fraction and its CO2 equivalent.
func (c *Calculator) avoided(baselineT, combined float64) (reducedT, avoidedCO2eT float64) {
	reducedT = baselineT * combined
	return reducedT, reducedT * c.preset.Conversion.GWP
}

func (c *Calculator) equivalents(co2eT float64) (cars, trees float64) {
	return co2eT / c.preset.Conversion.CarTCO2ePerYear, co2eT / c.preset.Conversion.TreeTCO2ePerYear
}

func validateHerd(profile models.HerdProfile) error {
	if profile.HerdSize < 1 {
		return fmt.Errorf("%w: herd size must be at least 1, got %d", models.ErrInvalidInput, profile.HerdSize)
	}
	return nil
}
