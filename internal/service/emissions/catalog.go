package emissions

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
)

// Catalog holds one calculator per preset. It is read-only after construction.
type Catalog struct {
	calculators map[string]*Calculator
	names       []string
	defaultName string
}

// NewCatalog validates every preset and builds their calculators. defaultName selects the
// calculator used when callers do not name a preset.
func NewCatalog(presets []models.Preset, defaultName string, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(presets) == 0 {
		return nil, fmt.Errorf("%w: at least one preset is required", models.ErrConfiguration)
	}

	catalog := &Catalog{
		calculators: make(map[string]*Calculator, len(presets)),
		names:       make([]string, 0, len(presets)),
		defaultName: defaultName,
	}

	for _, preset := range presets {
		if _, dup := catalog.calculators[preset.Name]; dup {
			return nil, fmt.Errorf("%w: preset %q defined twice", models.ErrConfiguration, preset.Name)
		}

		calc, err := NewCalculator(preset, logger.With(zap.String("preset", preset.Name)))
		if err != nil {
			return nil, err
		}

		catalog.calculators[preset.Name] = calc
		catalog.names = append(catalog.names, preset.Name)
	}

	if _, ok := catalog.calculators[defaultName]; !ok {
		return nil, fmt.Errorf("%w: default preset %q is not defined", models.ErrConfiguration, defaultName)
	}

	logger.Info("preset catalog ready", zap.Strings("presets", catalog.names), zap.String("default", defaultName))

	return catalog, nil
}

// Calculator returns the calculator for a preset; an empty name selects the default preset.
func (c *Catalog) Calculator(name string) (*Calculator, error) {
	if name == "" {
		name = c.defaultName
	}

	calc, ok := c.calculators[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q", models.ErrConfiguration, name)
	}
	return calc, nil
}

// Names lists preset names in definition order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// DefaultName is the preset used when none is requested.
func (c *Catalog) DefaultName() string {
	return c.defaultName
}
