package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/herdmethane/internal/cli"
	"github.com/mamadbah2/herdmethane/internal/config"
	"github.com/mamadbah2/herdmethane/internal/domain/models"
	"github.com/mamadbah2/herdmethane/internal/server/handlers"
	"github.com/mamadbah2/herdmethane/internal/server/router"
	"github.com/mamadbah2/herdmethane/internal/service/emissions"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCompute_Text(t *testing.T) {
	out, err := run(t, "compute", "--herd", "100", "--category", "dairy", "--diet", "conventional", "--additive", "seaweed")
	require.NoError(t, err)

	assert.Contains(t, out, "Reduction estimate")
	assert.Contains(t, out, "Results (standard preset)")
	assert.Contains(t, out, "60.48")
	assert.Contains(t, out, "2,880.00")
	assert.NotContains(t, out, "Additive options")
}

func TestCompute_BaselineShowsRanking(t *testing.T) {
	out, err := run(t, "compute", "--herd", "100", "--category", "dairy")
	require.NoError(t, err)

	assert.Contains(t, out, "Herd baseline")
	assert.Contains(t, out, "201.60")
	assert.Contains(t, out, "Additive options (standard preset)")
	assert.Contains(t, out, "1. 3-NOP  ★ recommended")
}

func TestCompute_JSON(t *testing.T) {
	out, err := run(t, "compute", "--herd", "40", "--category", "dairy", "--diet", "improved",
		"--weight", "400", "--additive", "3-NOP", "--preset", "ar6", "-o", "json")
	require.NoError(t, err)

	var resp models.ComputeResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ar6", resp.Preset)
	assert.Equal(t, models.FactorSourceTier2, resp.FactorSource)
	require.NotNil(t, resp.Input.WeightKg)
	assert.Equal(t, 400.0, *resp.Input.WeightKg)
	assert.InDelta(t, 1-(0.9*0.72), resp.CombinedReduction, 1e-12)
}

func TestWhatIf_JSON(t *testing.T) {
	out, err := run(t, "whatif", "--herd", "10", "--category", "buffalo", "--preset", "india", "-o", "json")
	require.NoError(t, err)

	var resp models.WhatIfResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "india", resp.Preset)
	require.Len(t, resp.Rows, 4)
	assert.Equal(t, "3-NOP", resp.Rows[0].Additive)
	assert.Equal(t, "oils", resp.Rows[3].Additive)
}

const barePresetYAML = `
presets:
  - name: bare
    emission_factors: {dairy: 72}
    diet_reductions: {conventional: 0}
    additive_reductions: {none: 0}
    conversion: {gwp: 28, tree_t_co2e_per_year: 0.021, car_t_co2e_per_year: 4.6}
    tier2: {energy_density_mj_per_kg: 18.45, methane_energy_mj_per_kg: 55.65}
`

func TestWhatIf_OnlyNoAdditive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(barePresetYAML), 0o600))

	out, err := run(t, "whatif", "--herd", "10", "--category", "dairy", "--presets-file", path, "--preset", "bare")
	require.NoError(t, err)
	assert.Contains(t, out, "Additive options (bare preset)")
	assert.Contains(t, out, "No additive options available.")

	out, err = run(t, "whatif", "--herd", "10", "--category", "dairy", "--presets-file", path, "--preset", "bare", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"preset":"bare","rows":[]}`, out)
}

func TestPresets(t *testing.T) {
	out, err := run(t, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "standard (default)")
	assert.Contains(t, out, "ar6")
	assert.Contains(t, out, "harit-dhara")

	out, err = run(t, "presets", "india", "-o", "json")
	require.NoError(t, err)
	var preset models.Preset
	require.NoError(t, json.Unmarshal([]byte(out), &preset))
	assert.Equal(t, "india", preset.Name)

	out, err = run(t, "presets", "ar6")
	require.NoError(t, err)
	assert.Contains(t, out, "Preset ar6")
	assert.Contains(t, out, "GWP 27.2")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"zero herd", []string{"compute", "--herd", "0", "--category", "dairy"}, models.ErrInvalidInput},
		{"negative weight", []string{"compute", "--herd", "5", "--category", "dairy", "--weight=-2"}, models.ErrInvalidInput},
		{"unknown category", []string{"compute", "--herd", "5", "--category", "goat"}, models.ErrConfiguration},
		{"unknown preset", []string{"whatif", "--herd", "5", "--category", "dairy", "--preset", "mars"}, models.ErrConfiguration},
		{"unknown preset name", []string{"presets", "mars"}, models.ErrConfiguration},
		{"missing category", []string{"compute", "--herd", "5"}, nil},
		{"bad output", []string{"presets", "-o", "xml"}, nil},
		{"bad log level", []string{"presets", "--log-level", "loud"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRemoteMode(t *testing.T) {
	catalog, err := emissions.NewCatalog(config.BuiltinPresets(), config.PresetStandard, nil)
	require.NoError(t, err)
	srv := httptest.NewServer(router.New(router.Handlers{Emissions: handlers.NewEmissionsHandler(catalog, nil)}, nil, nil))
	defer srv.Close()

	out, err := run(t, "compute", "--server", srv.URL, "--herd", "100", "--category", "dairy")
	require.NoError(t, err)
	assert.Contains(t, out, "Herd baseline")
	assert.Contains(t, out, "★ recommended")

	_, err = run(t, "compute", "--server", srv.URL, "--herd", "100", "--category", "goat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=422")
}

func TestRemoteModeRejectsPresetsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(barePresetYAML), 0o600))

	out, err := run(t, "presets", "--server", "http://127.0.0.1:1", "--presets-file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--presets-file cannot be combined with --server")
	assert.Empty(t, out)
}
