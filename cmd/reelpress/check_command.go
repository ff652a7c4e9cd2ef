package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reelpress/reelpress/internal/check"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify ffmpeg, ffprobe, and the encoders the pipelines need",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			report := check.Run(cmd.Context(), cfg)

			rows := make([][]string, 0, len(report.Items))
			for _, item := range report.Items {
				rows = append(rows, []string{
					strings.ToUpper(string(item.Status)),
					item.Name,
					item.Detail,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"STATUS", "COMPONENT", "DETAIL"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			if !report.Healthy() {
				return errors.New("environment is not ready, fix the failed items above")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "environment is ready")
			return nil
		},
	}
}
