package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
	"github.com/mamadbah2/herdmethane/internal/service/reporting"
)

//nolint:gochecknoglobals // Styles are immutable values.
var (
	colorHeader      = lipgloss.Color("39")
	colorBorder      = lipgloss.Color("240")
	colorLabel       = lipgloss.Color("245")
	colorRecommended = lipgloss.Color("42")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	labelStyle       = lipgloss.NewStyle().Foreground(colorLabel)
	recommendedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorRecommended)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderCompute prints the result card, followed by the additive ranking when the response
// carries one.
func renderCompute(w io.Writer, resp *models.ComputeResponse) error {
	noAdditive := resp.WhatIf != nil

	title := "Reduction estimate"
	if noAdditive {
		title = "Herd baseline"
	}
	if _, err := fmt.Fprintln(w, card(title, reporting.FormatResult(resp.CalculationResult, noAdditive))); err != nil {
		return err
	}

	if noAdditive {
		return renderWhatIf(w, &models.WhatIfResponse{Preset: resp.Preset, Rows: resp.WhatIf})
	}
	return nil
}

func renderWhatIf(w io.Writer, resp *models.WhatIfResponse) error {
	title := fmt.Sprintf("Additive options (%s preset)", resp.Preset)
	if len(resp.Rows) == 0 {
		_, err := fmt.Fprintln(w, card(title, reporting.NoOptionsMessage))
		return err
	}

	lines := make([]string, 0, len(resp.Rows))
	for i, r := range resp.Rows {
		name := fmt.Sprintf("%d. %s", i+1, r.Additive)
		if r.Recommended {
			name = recommendedStyle.Render(name + "  ★ recommended")
		}
		detail := labelStyle.Render(fmt.Sprintf("   reduction %s · CO₂e avoided %s t/yr · cars %s · trees %s",
			reporting.Percent(r.CombinedReduction),
			reporting.Number(r.AvoidedCO2eT, 2),
			reporting.Number(r.CarsRemoved, 2),
			reporting.Number(r.TreesEquivalent, 2)))
		lines = append(lines, name+"\n"+detail)
	}

	_, err := fmt.Fprintln(w, card(title, strings.Join(lines, "\n")))
	return err
}

func renderPresetList(w io.Writer, list *models.PresetList) error {
	blocks := make([]string, 0, len(list.Presets))
	for _, p := range list.Presets {
		name := p.Name
		if p.Default {
			name = recommendedStyle.Render(name + " (default)")
		}
		var b strings.Builder
		b.WriteString(name)
		if p.Description != "" {
			b.WriteString("\n" + labelStyle.Render(p.Description))
		}
		fmt.Fprintf(&b, "\ncattle types: %s", strings.Join(p.Categories, ", "))
		fmt.Fprintf(&b, "\ndiets: %s", strings.Join(p.Diets, ", "))
		fmt.Fprintf(&b, "\nadditives: %s", strings.Join(p.Additives, ", "))
		blocks = append(blocks, b.String())
	}

	_, err := fmt.Fprintln(w, card("Presets", strings.Join(blocks, "\n\n")))
	return err
}

func renderPreset(w io.Writer, p *models.Preset) error {
	var b strings.Builder
	b.WriteString(reporting.FormatOptions(*p))

	b.WriteString("\n\n" + labelStyle.Render("Emission factors (kg CH₄/head·yr)"))
	for _, e := range p.EmissionFactors {
		fmt.Fprintf(&b, "\n  %-14s %s", e.Key, reporting.Number(e.Value, 1))
	}
	b.WriteString("\n" + labelStyle.Render("Diet reductions"))
	for _, e := range p.DietReductions {
		fmt.Fprintf(&b, "\n  %-14s %s", e.Key, reporting.Percent(e.Value))
	}
	b.WriteString("\n" + labelStyle.Render("Additive reductions"))
	for _, e := range p.AdditiveReductions {
		fmt.Fprintf(&b, "\n  %-14s %s", e.Key, reporting.Percent(e.Value))
	}
	fmt.Fprintf(&b, "\n\nGWP %s · car %s t CO₂e/yr · tree %s t CO₂e/yr",
		reporting.Number(p.Conversion.GWP, 1),
		reporting.Number(p.Conversion.CarTCO2ePerYear, 2),
		reporting.Number(p.Conversion.TreeTCO2ePerYear, 3))

	_, err := fmt.Fprintln(w, card("Preset "+p.Name, b.String()))
	return err
}

func card(title, body string) string {
	return cardStyle.Render(titleStyle.Render(title) + "\n\n" + body)
}
