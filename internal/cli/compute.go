package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
)

// herdFlags describe the herd a calculation is about.
type herdFlags struct {
	herdSize int
	category string
	diet     string
	weightKg float64
}

func (f *herdFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.herdSize, "herd", 0, "number of animals (at least 1)")
	cmd.Flags().StringVar(&f.category, "category", "", "cattle type, e.g. dairy, beef, buffalo")
	cmd.Flags().StringVar(&f.diet, "diet", models.DefaultBaselineDiet, "diet tier, e.g. conventional, improved, high-quality")
	cmd.Flags().Float64Var(&f.weightKg, "weight", 0, "average live weight in kg; derives the emission factor from intake")
	_ = cmd.MarkFlagRequired("herd")
	_ = cmd.MarkFlagRequired("category")
}

// weight returns the --weight value when it was given, rejecting non-positive numbers.
func (f *herdFlags) weight(cmd *cobra.Command) (*float64, error) {
	if !cmd.Flags().Changed("weight") {
		return nil, nil
	}
	w := f.weightKg
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return nil, fmt.Errorf("%w: --weight must be a positive number of kg", models.ErrInvalidInput)
	}
	return &w, nil
}

func (f *herdFlags) validate() error {
	if f.herdSize < 1 {
		return fmt.Errorf("%w: --herd must be at least 1", models.ErrInvalidInput)
	}
	return nil
}

func newComputeCmd(opts *rootOptions) *cobra.Command {
	var (
		herd     herdFlags
		additive string
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute baseline emissions and the reduction of a diet and additive",
		Long: `Compute the yearly methane of a herd, its CO₂ equivalent and the share avoided by the
chosen diet and feed additive. Without an additive the herd baseline is shown together
with a ranking of every additive the preset offers.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := herd.validate(); err != nil {
				return err
			}
			weight, err := herd.weight(cmd)
			if err != nil {
				return err
			}

			backend, err := opts.backend()
			if err != nil {
				return err
			}

			resp, err := backend.Compute(cmd.Context(), models.ComputeRequest{
				Preset:   opts.preset,
				HerdSize: herd.herdSize,
				Category: herd.category,
				Diet:     herd.diet,
				Additive: additive,
				WeightKg: weight,
			})
			if err != nil {
				return err
			}

			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return renderCompute(cmd.OutOrStdout(), resp)
		},
	}

	herd.register(cmd)
	cmd.Flags().StringVar(&additive, "additive", models.DefaultNoAdditive, "feed additive, e.g. seaweed, 3-NOP, oils")

	return cmd
}

func newWhatIfCmd(opts *rootOptions) *cobra.Command {
	var herd herdFlags

	cmd := &cobra.Command{
		Use:     "whatif",
		Aliases: []string{"what-if"},
		Short:   "Rank every feed additive by the CO₂e it would avoid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := herd.validate(); err != nil {
				return err
			}
			weight, err := herd.weight(cmd)
			if err != nil {
				return err
			}

			backend, err := opts.backend()
			if err != nil {
				return err
			}

			resp, err := backend.WhatIf(cmd.Context(), models.WhatIfRequest{
				Preset:   opts.preset,
				HerdSize: herd.herdSize,
				Category: herd.category,
				Diet:     herd.diet,
				WeightKg: weight,
			})
			if err != nil {
				return err
			}

			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return renderWhatIf(cmd.OutOrStdout(), resp)
		},
	}

	herd.register(cmd)

	return cmd
}
