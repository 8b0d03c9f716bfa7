// Package reporting renders calculator results as plain text for chat replies and the CLI.
package reporting

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
)

// NoOptionsMessage is shown when a preset has no additive to compare.
const NoOptionsMessage = "No additive options available."

//nolint:gochecknoglobals // message.Printer is safe for concurrent use once built.
var printer = message.NewPrinter(language.English)

// Number formats v with a fixed number of decimals and thousands separators,
// e.g. Number(2880, 2) returns "2,880.00".
func Number(v float64, decimals int) string {
	formatted := strconv.FormatFloat(v, 'f', decimals, 64)
	intPart, frac, hasFrac := strings.Cut(formatted, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return formatted
	}

	grouped := printer.Sprintf("%d", n)
	if n == 0 && strings.HasPrefix(intPart, "-") {
		grouped = "-0"
	}
	if !hasFrac {
		return grouped
	}
	return grouped + "." + frac
}

// Percent renders a fraction as a whole percentage, e.g. 0.379 -> "38%".
func Percent(fraction float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(fraction*100)))
}

// FormatResult renders a result. When noAdditive is true the herd baseline is shown;
// otherwise the reduction achieved by the chosen diet and additive.
func FormatResult(res models.CalculationResult, noAdditive bool) string {
	var b strings.Builder

	if noAdditive {
		fmt.Fprintf(&b, "Your herd baseline (%s preset)\n", res.Preset)
		fmt.Fprintf(&b, "%s t CH₄/year (= %s t CO₂e/year)\n", Number(res.BaselineMethaneT, 2), Number(res.BaselineCO2eT, 2))
		fmt.Fprintf(&b, "Cars equivalent: %s cars/year • Tree equivalent: %s trees\n", Number(res.BaselineCars, 2), Number(res.BaselineTrees, 2))
		fmt.Fprintf(&b, "Diet: %s | Type: %s | EF: %s kg CH₄/head·yr (%s)",
			strings.ReplaceAll(res.Input.Diet, "-", " "), res.Input.Category, Number(res.EmissionFactor, 0), res.FactorSource)
		return b.String()
	}

	fmt.Fprintf(&b, "Results (%s preset)\n", res.Preset)
	fmt.Fprintf(&b, "Baseline methane: %s t CH₄/year (= %s t CO₂e/year)\n", Number(res.BaselineMethaneT, 2), Number(res.BaselineCO2eT, 2))
	fmt.Fprintf(&b, "Methane reduced: %s t CH₄/year → CO₂e avoided: %s t/year\n", Number(res.ReducedMethaneT, 2), Number(res.AvoidedCO2eT, 2))
	fmt.Fprintf(&b, "Cars removed: %s cars/year • Tree equivalent: %s trees\n", Number(res.CarsRemoved, 2), Number(res.TreesEquivalent, 2))
	fmt.Fprintf(&b, "Assumptions: EF=%s kg CH₄/head·yr (%s), diet reduction=%s, additive (%s) reduction=%s, combined reduction=%s.",
		Number(res.EmissionFactor, 0), res.FactorSource, Percent(res.DietReduction),
		res.Input.Additive, Percent(res.AdditiveReduction), Percent(res.CombinedReduction))
	return b.String()
}

// FormatWhatIf renders a what-if ranking, marking the recommended additive.
func FormatWhatIf(rows []models.WhatIfRow) string {
	if len(rows) == 0 {
		return NoOptionsMessage
	}

	var b strings.Builder
	b.WriteString("What-if savings if you adopt an additive (with your current diet)")
	for i, r := range rows {
		fmt.Fprintf(&b, "\n%d. %s", i+1, r.Additive)
		if r.Recommended {
			b.WriteString(" (top recommendation)")
		}
		fmt.Fprintf(&b, "\n   Reduction: %s | CO₂e avoided: %s t/year | Cars removed: %s/year | Trees: %s",
			Percent(r.CombinedReduction), Number(r.AvoidedCO2eT, 2), Number(r.CarsRemoved, 2), Number(r.TreesEquivalent, 2))
	}
	return b.String()
}

// FormatOptions lists the keys a user may choose from in a preset.
func FormatOptions(p models.Preset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Preset %s", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&b, ": %s", p.Description)
	}
	fmt.Fprintf(&b, "\nCattle types: %s", strings.Join(p.EmissionFactors.Keys(), ", "))
	fmt.Fprintf(&b, "\nDiets: %s", strings.Join(p.DietReductions.Keys(), ", "))
	fmt.Fprintf(&b, "\nAdditives: %s", strings.Join(p.AdditiveReductions.Keys(), ", "))
	return b.String()
}
