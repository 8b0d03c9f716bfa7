package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
)

// presetDocument is the layout of a presets YAML file:
//
//	presets:
//	  - name: kenya
//	    extends: standard
//	    emission_factors: {dairy: 68}
//	    additive_reductions: {none: 0, seaweed: 0.3, 3-NOP: 0.31}
type presetDocument struct {
	Presets []presetSpec `yaml:"presets"`
}

type presetSpec struct {
	// Extends names an earlier or built-in preset whose values are inherited.
	Extends       string `yaml:"extends"`
	models.Preset `yaml:",inline"`
}

// LoadPresets returns the built-in presets, extended by cfg.File when one is configured.
func LoadPresets(cfg PresetsConfig) ([]models.Preset, error) {
	presets := BuiltinPresets()
	if cfg.File == "" {
		return presets, nil
	}

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("read presets file %s: %w", cfg.File, err)
	}

	presets, err = ParsePresets(data, presets)
	if err != nil {
		return nil, fmt.Errorf("presets file %s: %w", cfg.File, err)
	}
	return presets, nil
}

// ParsePresets applies the presets in a YAML document on top of base. A preset with the name
// of an existing one replaces it in place; new names are appended.
func ParsePresets(data []byte, base []models.Preset) ([]models.Preset, error) {
	var doc presetDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrConfiguration, err)
	}

	out := make([]models.Preset, len(base))
	for i, p := range base {
		out[i] = p.Clone()
	}

	for _, spec := range doc.Presets {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: preset without a name", models.ErrConfiguration)
		}

		preset := spec.Preset
		if spec.Extends != "" {
			parent, ok := findPreset(out, spec.Extends)
			if !ok {
				return nil, fmt.Errorf("%w: preset %q extends unknown preset %q", models.ErrConfiguration, spec.Name, spec.Extends)
			}
			preset = mergePreset(parent, spec.Preset)
		}

		if i, ok := indexOf(out, preset.Name); ok {
			out[i] = preset
		} else {
			out = append(out, preset)
		}
	}

	return out, nil
}

// mergePreset overlays the non-zero values of child onto a copy of parent. Table entries are
// merged key by key so a child can add one additive without restating the others.
func mergePreset(parent, child models.Preset) models.Preset {
	out := parent.Clone()
	out.Name = child.Name
	if child.Description != "" {
		out.Description = child.Description
	}
	if child.BaselineDiet != "" {
		out.BaselineDiet = child.BaselineDiet
	}
	if child.NoAdditive != "" {
		out.NoAdditive = child.NoAdditive
	}

	out.EmissionFactors = out.EmissionFactors.Merge(child.EmissionFactors)
	out.DietReductions = out.DietReductions.Merge(child.DietReductions)
	out.AdditiveReductions = out.AdditiveReductions.Merge(child.AdditiveReductions)

	if child.Conversion.GWP != 0 {
		out.Conversion.GWP = child.Conversion.GWP
	}
	if child.Conversion.TreeTCO2ePerYear != 0 {
		out.Conversion.TreeTCO2ePerYear = child.Conversion.TreeTCO2ePerYear
	}
	if child.Conversion.CarTCO2ePerYear != 0 {
		out.Conversion.CarTCO2ePerYear = child.Conversion.CarTCO2ePerYear
	}

	if child.Tier2.EnergyDensityMJPerKg != 0 {
		out.Tier2.EnergyDensityMJPerKg = child.Tier2.EnergyDensityMJPerKg
	}
	if child.Tier2.MethaneEnergyMJPerKg != 0 {
		out.Tier2.MethaneEnergyMJPerKg = child.Tier2.MethaneEnergyMJPerKg
	}
	if len(child.Tier2.Diets) > 0 && out.Tier2.Diets == nil {
		out.Tier2.Diets = make(map[string]models.DietProfile, len(child.Tier2.Diets))
	}
	for diet, profile := range child.Tier2.Diets {
		out.Tier2.Diets[diet] = profile
	}

	return out
}

func findPreset(presets []models.Preset, name string) (models.Preset, bool) {
	if i, ok := indexOf(presets, name); ok {
		return presets[i], true
	}
	return models.Preset{}, false
}

func indexOf(presets []models.Preset, name string) (int, bool) {
	for i, p := range presets {
		if p.Name == name {
			return i, true
		}
	}
	return 0, false
}
