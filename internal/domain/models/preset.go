package models

import (
	"fmt"
	"math"
)

const (
	// DefaultBaselineDiet is the diet tier that carries no reduction.
	DefaultBaselineDiet = "conventional"
	// DefaultNoAdditive is the additive key meaning "no additive fed".
	DefaultNoAdditive = "none"
	// MaxReduction bounds every diet and additive fraction. Combining two fractions this close to 1
	// must still round below 1 in float64.
	MaxReduction = 0.99
)

// ConversionConstants turn methane mass into CO2-equivalent mass and relatable equivalents.
type ConversionConstants struct {
	// GWP is kg CO2e per kg CH4.
	GWP float64 `yaml:"gwp" json:"gwp"`
	// TreeTCO2ePerYear is tonnes CO2e sequestered by one tree in a year.
	TreeTCO2ePerYear float64 `yaml:"tree_t_co2e_per_year" json:"tree_t_co2e_per_year"`
	// CarTCO2ePerYear is tonnes CO2e emitted by one passenger car in a year.
	CarTCO2ePerYear float64 `yaml:"car_t_co2e_per_year" json:"car_t_co2e_per_year"`
}

// DietProfile holds the intake and conversion parameters of one diet tier.
type DietProfile struct {
	// IntakeFraction is daily dry-matter intake as a fraction of body weight.
	IntakeFraction float64 `yaml:"intake_fraction" json:"intake_fraction"`
	// MethaneConversionPct is the share of gross energy lost as methane (Ym), in percent.
	MethaneConversionPct float64 `yaml:"methane_conversion_pct" json:"methane_conversion_pct"`
}

// Tier2Constants parameterise the weight-based emission factor.
type Tier2Constants struct {
	EnergyDensityMJPerKg float64                `yaml:"energy_density_mj_per_kg" json:"energy_density_mj_per_kg"`
	MethaneEnergyMJPerKg float64                `yaml:"methane_energy_mj_per_kg" json:"methane_energy_mj_per_kg"`
	Diets                map[string]DietProfile `yaml:"diets" json:"diets"`
}

// Preset is one complete, named set of calculation tables.
type Preset struct {
	Name               string              `yaml:"name" json:"name"`
	Description        string              `yaml:"description" json:"description"`
	BaselineDiet       string              `yaml:"baseline_diet" json:"baseline_diet"`
	NoAdditive         string              `yaml:"no_additive" json:"no_additive"`
	EmissionFactors    Table               `yaml:"emission_factors" json:"emission_factors"`
	DietReductions     Table               `yaml:"diet_reductions" json:"diet_reductions"`
	AdditiveReductions Table               `yaml:"additive_reductions" json:"additive_reductions"`
	Conversion         ConversionConstants `yaml:"conversion" json:"conversion"`
	Tier2              Tier2Constants      `yaml:"tier2" json:"tier2"`
}

// WithDefaults fills the designated baseline diet and no-additive keys when unset.
func (p Preset) WithDefaults() Preset {
	if p.BaselineDiet == "" {
		p.BaselineDiet = DefaultBaselineDiet
	}
	if p.NoAdditive == "" {
		p.NoAdditive = DefaultNoAdditive
	}
	return p
}

// Clone returns a deep copy so callers cannot mutate tables shared with a calculator.
func (p Preset) Clone() Preset {
	out := p
	out.EmissionFactors = p.EmissionFactors.Clone()
	out.DietReductions = p.DietReductions.Clone()
	out.AdditiveReductions = p.AdditiveReductions.Clone()
	if p.Tier2.Diets != nil {
		out.Tier2.Diets = make(map[string]DietProfile, len(p.Tier2.Diets))
		for k, v := range p.Tier2.Diets {
			out.Tier2.Diets[k] = v
		}
	}
	return out
}

// Validate checks every invariant the calculator relies on. All failures wrap ErrConfiguration.
func (p Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: preset name must be provided", ErrConfiguration)
	}

	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: preset %q: %s", ErrConfiguration, p.Name, fmt.Sprintf(format, args...))
	}

	if len(p.EmissionFactors) == 0 {
		return fail("emission_factors must not be empty")
	}
	if key, ok := firstDuplicate(p.EmissionFactors); ok {
		return fail("emission factor %q listed twice", key)
	}
	for _, e := range p.EmissionFactors {
		if !finite(e.Value) || e.Value <= 0 {
			return fail("emission factor %q must be > 0, got %v", e.Key, e.Value)
		}
	}

	if err := validateReductions(p.DietReductions, "diet", p.BaselineDiet); err != nil {
		return fail("%v", err)
	}
	if err := validateReductions(p.AdditiveReductions, "additive", p.NoAdditive); err != nil {
		return fail("%v", err)
	}

	c := p.Conversion
	switch {
	case !finite(c.GWP) || c.GWP <= 0:
		return fail("gwp must be > 0, got %v", c.GWP)
	case !finite(c.TreeTCO2ePerYear) || c.TreeTCO2ePerYear <= 0:
		return fail("tree_t_co2e_per_year must be > 0, got %v", c.TreeTCO2ePerYear)
	case !finite(c.CarTCO2ePerYear) || c.CarTCO2ePerYear <= 0:
		return fail("car_t_co2e_per_year must be > 0, got %v", c.CarTCO2ePerYear)
	}

	t := p.Tier2
	if !finite(t.EnergyDensityMJPerKg) || t.EnergyDensityMJPerKg <= 0 {
		return fail("tier2 energy_density_mj_per_kg must be > 0, got %v", t.EnergyDensityMJPerKg)
	}
	if !finite(t.MethaneEnergyMJPerKg) || t.MethaneEnergyMJPerKg <= 0 {
		return fail("tier2 methane_energy_mj_per_kg must be > 0, got %v", t.MethaneEnergyMJPerKg)
	}
	for diet, profile := range t.Diets {
		if _, ok := p.DietReductions.Lookup(diet); !ok {
			return fail("tier2 profile for unknown diet %q", diet)
		}
		if !finite(profile.IntakeFraction) || profile.IntakeFraction <= 0 {
			return fail("tier2 diet %q intake_fraction must be > 0, got %v", diet, profile.IntakeFraction)
		}
		if !finite(profile.MethaneConversionPct) || profile.MethaneConversionPct <= 0 || profile.MethaneConversionPct > 100 {
			return fail("tier2 diet %q methane_conversion_pct must be within (0, 100], got %v", diet, profile.MethaneConversionPct)
		}
	}

	return nil
}

func validateReductions(t Table, kind, zeroKey string) error {
	if zeroKey == "" {
		return fmt.Errorf("designated zero-reduction %s key must be provided", kind)
	}
	if key, ok := firstDuplicate(t); ok {
		return fmt.Errorf("%s %q listed twice", kind, key)
	}
	zero, ok := t.Lookup(zeroKey)
	if !ok {
		return fmt.Errorf("%s table must contain %q", kind, zeroKey)
	}
	if zero != 0 {
		return fmt.Errorf("%s %q must map to 0, got %v", kind, zeroKey, zero)
	}
	for _, e := range t {
		if !finite(e.Value) || e.Value < 0 || e.Value > MaxReduction {
			return fmt.Errorf("%s %q reduction must be within [0, %v], got %v", kind, e.Key, MaxReduction, e.Value)
		}
	}
	return nil
}

func firstDuplicate(t Table) (string, bool) {
	seen := make(map[string]struct{}, len(t))
	for _, e := range t {
		if _, ok := seen[e.Key]; ok {
			return e.Key, true
		}
		seen[e.Key] = struct{}{}
	}
	return "", false
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
