package cli

import (
	"context"
	"fmt"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
	"github.com/mamadbah2/herdmethane/internal/service/emissions"
)

// localBackend answers the calculator API calls in-process.
type localBackend struct {
	catalog *emissions.Catalog
}

func newLocalBackend(catalog *emissions.Catalog) *localBackend {
	return &localBackend{catalog: catalog}
}

func (b *localBackend) Compute(_ context.Context, req models.ComputeRequest) (*models.ComputeResponse, error) {
	calc, err := b.catalog.Calculator(req.Preset)
	if err != nil {
		return nil, err
	}

	profile := models.HerdProfile{HerdSize: req.HerdSize, Category: req.Category, Diet: req.Diet, WeightKg: req.WeightKg}
	result, err := calc.Compute(models.CalculationInput{HerdProfile: profile, Additive: req.Additive})
	if err != nil {
		return nil, err
	}

	resp := &models.ComputeResponse{CalculationResult: result}
	if calc.IsNoAdditive(req.Additive) {
		rows, err := calc.WhatIf(profile)
		if err != nil {
			return nil, err
		}
		resp.WhatIf = rows
	}
	return resp, nil
}

func (b *localBackend) WhatIf(_ context.Context, req models.WhatIfRequest) (*models.WhatIfResponse, error) {
	calc, err := b.catalog.Calculator(req.Preset)
	if err != nil {
		return nil, err
	}

	rows, err := calc.WhatIf(models.HerdProfile{HerdSize: req.HerdSize, Category: req.Category, Diet: req.Diet, WeightKg: req.WeightKg})
	if err != nil {
		return nil, err
	}
	return &models.WhatIfResponse{Preset: calc.Preset().Name, Rows: rows}, nil
}

func (b *localBackend) Presets(_ context.Context) (*models.PresetList, error) {
	list := &models.PresetList{}
	for _, name := range b.catalog.Names() {
		calc, err := b.catalog.Calculator(name)
		if err != nil {
			return nil, err
		}
		p := calc.Preset()
		list.Presets = append(list.Presets, p.Summary(p.Name == b.catalog.DefaultName()))
	}
	return list, nil
}

func (b *localBackend) Preset(_ context.Context, name string) (*models.Preset, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: preset name is required", models.ErrInvalidInput)
	}
	calc, err := b.catalog.Calculator(name)
	if err != nil {
		return nil, err
	}
	p := calc.Preset()
	return &p, nil
}
