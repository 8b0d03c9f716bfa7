package emissions

import (
	"sort"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
)

// WhatIf ranks every additive except "none" by the CO2e it would avoid with the herd's current
// diet. Rows are sorted by avoided mass, highest first, ties keeping table order; the first row
// is flagged as recommended. A preset without real additives yields an empty, non-nil slice.
func (c *Calculator) WhatIf(profile models.HerdProfile) ([]models.WhatIfRow, error) {
	if err := validateHerd(profile); err != nil {
		return nil, err
	}

	factor, _, err := c.ResolveFactor(profile)
	if err != nil {
		return nil, err
	}

	fDiet, err := c.dietReduction(profile.Diet)
	if err != nil {
		return nil, err
	}

	baselineT := BaselineMethaneTonnes(factor, profile.HerdSize)

	rows := make([]models.WhatIfRow, 0, len(c.preset.AdditiveReductions))
	for _, additive := range c.preset.AdditiveReductions {
		if additive.Key == c.preset.NoAdditive {
			continue
		}

		combined := CombineReductions(fDiet, additive.Value)
		reducedT, avoidedT := c.avoided(baselineT, combined)
		cars, trees := c.equivalents(avoidedT)

		rows = append(rows, models.WhatIfRow{
			Additive:          additive.Key,
			CombinedReduction: combined,
			ReducedMethaneT:   reducedT,
			AvoidedCO2eT:      avoidedT,
			CarsRemoved:       cars,
			TreesEquivalent:   trees,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AvoidedCO2eT > rows[j].AvoidedCO2eT
	})

	if len(rows) > 0 {
		rows[0].Recommended = true
	}

	return rows, nil
}
