package cli

import (
	"github.com/spf13/cobra"
)

func newPresetsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "presets [name]",
		Short: "List presets, or show every table of one preset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := opts.backend()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				preset, err := backend.Preset(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if opts.output == outputJSON {
					return writeJSON(cmd.OutOrStdout(), preset)
				}
				return renderPreset(cmd.OutOrStdout(), preset)
			}

			list, err := backend.Presets(cmd.Context())
			if err != nil {
				return err
			}
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), list)
			}
			return renderPresetList(cmd.OutOrStdout(), list)
		},
	}
}
