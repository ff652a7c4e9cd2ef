package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reelpress/reelpress/internal/display"
	"github.com/reelpress/reelpress/internal/platform"
)

func newPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the platform presets resize accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := platform.Names()
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				preset, err := platform.Lookup(name)
				if err != nil {
					return err
				}
				maxDur := "-"
				if preset.MaxDuration > 0 {
					maxDur = display.FormatDuration(preset.MaxDuration.Seconds())
				}
				rows = append(rows, []string{
					name,
					fmt.Sprintf("%dx%d", preset.Width, preset.Height),
					preset.AspectRatio,
					maxDur,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"PRESET", "RESOLUTION", "ASPECT", "PLATFORM MAX"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}
}
