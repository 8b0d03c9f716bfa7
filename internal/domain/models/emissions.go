package models

// FactorSource tells which of the two emission factor variants produced a result.
type FactorSource string

const (
	// FactorSourceTable is the static per-category factor.
	FactorSourceTable FactorSource = "table"
	// FactorSourceTier2 is the factor derived from animal weight and diet.
	FactorSourceTier2 FactorSource = "tier2"
)

// HerdProfile describes the herd independently of the additive choice.
type HerdProfile struct {
	HerdSize int    `json:"herd_size"`
	Category string `json:"category"`
	Diet     string `json:"diet"`
	// WeightKg is the optional average live weight. Nil or non-positive selects the table factor.
	WeightKg *float64 `json:"weight_kg,omitempty"`
}

// CalculationInput is one request to the calculator.
type CalculationInput struct {
	HerdProfile
	Additive string `json:"additive"`
}

// CalculationResult carries every derived figure plus the factors used to get there.
// Masses are tonnes per year.
type CalculationResult struct {
	Preset string           `json:"preset"`
	Input  CalculationInput `json:"input"`

	EmissionFactor    float64      `json:"emission_factor_kg_per_head_yr"`
	FactorSource      FactorSource `json:"factor_source"`
	DietReduction     float64      `json:"diet_reduction"`
	AdditiveReduction float64      `json:"additive_reduction"`
	CombinedReduction float64      `json:"combined_reduction"`
	GWP               float64      `json:"gwp"`

	BaselineMethaneT float64 `json:"baseline_t_ch4"`
	BaselineCO2eT    float64 `json:"baseline_t_co2e"`
	BaselineCars     float64 `json:"baseline_cars"`
	BaselineTrees    float64 `json:"baseline_trees"`

	ReducedMethaneT  float64 `json:"reduced_t_ch4"`
	ResidualMethaneT float64 `json:"residual_t_ch4"`
	AvoidedCO2eT     float64 `json:"avoided_t_co2e"`
	CarsRemoved      float64 `json:"cars_removed"`
	TreesEquivalent  float64 `json:"trees_equivalent"`
}

// WhatIfRow is the outcome of adopting one additive with the current diet.
type WhatIfRow struct {
	Additive          string  `json:"additive"`
	CombinedReduction float64 `json:"combined_reduction"`
	ReducedMethaneT   float64 `json:"reduced_t_ch4"`
	AvoidedCO2eT      float64 `json:"avoided_t_co2e"`
	CarsRemoved       float64 `json:"cars_removed"`
	TreesEquivalent   float64 `json:"trees_equivalent"`
	Recommended       bool    `json:"recommended"`
}
