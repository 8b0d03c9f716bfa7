package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
	"github.com/mamadbah2/herdmethane/internal/monitoring"
	"github.com/mamadbah2/herdmethane/internal/service/emissions"
)

const httpChannel = "http"

// Catalog resolves preset names to calculators.
type Catalog interface {
	Calculator(name string) (*emissions.Calculator, error)
	Names() []string
	DefaultName() string
}

// EmissionsHandler exposes the calculator over JSON.
type EmissionsHandler struct {
	catalog Catalog
	logger  *zap.Logger
}

// NewEmissionsHandler constructs the HTTP handler adapter.
func NewEmissionsHandler(catalog Catalog, logger *zap.Logger) *EmissionsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmissionsHandler{catalog: catalog, logger: logger}
}

// Compute runs one calculation. With the "no additive" key it also ranks the alternatives.
func (h *EmissionsHandler) Compute(c *gin.Context) {
	var req models.ComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("invalid compute payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile := models.HerdProfile{HerdSize: req.HerdSize, Category: req.Category, Diet: req.Diet, WeightKg: req.WeightKg}
	if err := validateProfile(profile); err != nil {
		h.writeError(c, err)
		return
	}

	calc, err := h.catalog.Calculator(req.Preset)
	if err != nil {
		h.writeError(c, err)
		return
	}

	start := time.Now()
	result, err := calc.Compute(models.CalculationInput{HerdProfile: profile, Additive: req.Additive})
	monitoring.ObserveCalculation("compute", httpChannel, monitoring.StatusFor(err), time.Since(start))
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := models.ComputeResponse{CalculationResult: result}
	if calc.IsNoAdditive(req.Additive) {
		rows, err := calc.WhatIf(profile)
		if err != nil {
			h.writeError(c, err)
			return
		}
		resp.WhatIf = rows
	}

	c.JSON(http.StatusOK, resp)
}

// WhatIf ranks every additive for the herd.
func (h *EmissionsHandler) WhatIf(c *gin.Context) {
	var req models.WhatIfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("invalid what-if payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile := models.HerdProfile{HerdSize: req.HerdSize, Category: req.Category, Diet: req.Diet, WeightKg: req.WeightKg}
	if err := validateProfile(profile); err != nil {
		h.writeError(c, err)
		return
	}

	calc, err := h.catalog.Calculator(req.Preset)
	if err != nil {
		h.writeError(c, err)
		return
	}

	start := time.Now()
	rows, err := calc.WhatIf(profile)
	monitoring.ObserveCalculation("what_if", httpChannel, monitoring.StatusFor(err), time.Since(start))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.WhatIfResponse{Preset: calc.Preset().Name, Rows: rows})
}

// ListPresets returns a summary of every configured preset.
func (h *EmissionsHandler) ListPresets(c *gin.Context) {
	names := h.catalog.Names()
	out := make([]models.PresetSummary, 0, len(names))
	for _, name := range names {
		calc, err := h.catalog.Calculator(name)
		if err != nil {
			h.writeError(c, err)
			return
		}
		p := calc.Preset()
		out = append(out, p.Summary(p.Name == h.catalog.DefaultName()))
	}
	c.JSON(http.StatusOK, models.PresetList{Presets: out})
}

// GetPreset returns every table and constant of one preset.
func (h *EmissionsHandler) GetPreset(c *gin.Context) {
	calc, err := h.catalog.Calculator(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, calc.Preset())
}

func (h *EmissionsHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrConfiguration):
		h.logger.Warn("request does not match configured presets", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.logger.Error("calculation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "calculation failed"})
	}
}

// validateProfile rejects input the calculator must never see: herds below one head and
// weights that are present but not positive.
func validateProfile(p models.HerdProfile) error {
	if p.HerdSize < 1 {
		return fmt.Errorf("%w: herd_size must be at least 1", models.ErrInvalidInput)
	}
	if p.WeightKg != nil {
		w := *p.WeightKg
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return fmt.Errorf("%w: weight_kg must be a positive number", models.ErrInvalidInput)
		}
	}
	return nil
}
