package models

// ComputeRequest is the body of POST /v1/emissions.
type ComputeRequest struct {
	Preset   string   `json:"preset,omitempty"`
	HerdSize int      `json:"herd_size"`
	Category string   `json:"category" binding:"required"`
	Diet     string   `json:"diet" binding:"required"`
	Additive string   `json:"additive" binding:"required"`
	WeightKg *float64 `json:"weight_kg,omitempty"`
}

// WhatIfRequest is the body of POST /v1/emissions/what-if.
type WhatIfRequest struct {
	Preset   string   `json:"preset,omitempty"`
	HerdSize int      `json:"herd_size"`
	Category string   `json:"category" binding:"required"`
	Diet     string   `json:"diet" binding:"required"`
	WeightKg *float64 `json:"weight_kg,omitempty"`
}

// ComputeResponse is a calculation result. WhatIf is filled only when no additive was chosen.
type ComputeResponse struct {
	CalculationResult
	WhatIf []WhatIfRow `json:"what_if"`
}

// WhatIfResponse lists additive options, best first.
type WhatIfResponse struct {
	Preset string      `json:"preset"`
	Rows   []WhatIfRow `json:"rows"`
}

// PresetSummary describes one preset and the options it offers.
type PresetSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Default     bool     `json:"default"`
	Categories  []string `json:"categories"`
	Diets       []string `json:"diets"`
	Additives   []string `json:"additives"`
}

// PresetList is the body of GET /v1/presets.
type PresetList struct {
	Presets []PresetSummary `json:"presets"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Summary describes the preset for listings.
func (p Preset) Summary(isDefault bool) PresetSummary {
	return PresetSummary{
		Name:        p.Name,
		Description: p.Description,
		Default:     isDefault,
		Categories:  p.EmissionFactors.Keys(),
		Diets:       p.DietReductions.Keys(),
		Additives:   p.AdditiveReductions.Keys(),
	}
}
