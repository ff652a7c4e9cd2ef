package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reelpress/reelpress/internal/display"
	"github.com/reelpress/reelpress/internal/pipeline"
	"github.com/reelpress/reelpress/internal/planner"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var (
		resolution string
		quality    string
		output     string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "merge <url> <url> [url...]",
		Short: "Normalize and concatenate clips into one video",
		Long: `Merge downloads every clip, votes on a shared orientation, normalizes
each one to a common canvas with normalized loudness, and joins them in the
order given. The combined source duration must stay within five minutes.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := ctx.buildPipeline()
			if err != nil {
				return err
			}

			result, err := p.Merge(cmd.Context(), pipeline.MergeRequest{
				URLs:       args,
				Resolution: planner.Resolution(resolution),
				Quality:    planner.Tier(quality),
			})
			if err != nil {
				return err
			}

			if err := writeOutput(output, result.Buffer, force); err != nil {
				return err
			}

			orientation := "horizontal"
			if result.Vertical {
				orientation = "vertical"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "wrote %s\n", output)
			fmt.Fprintf(out, "  clips     %d\n", result.ClipCount)
			fmt.Fprintf(out, "  canvas    %dx%d (%s)\n", result.Width, result.Height, orientation)
			fmt.Fprintf(out, "  duration  %s\n", display.FormatDuration(result.TotalDuration))
			fmt.Fprintf(out, "  size      %s\n", display.FormatBytes(result.FileSize))
			return nil
		},
	}

	cmd.Flags().StringVarP(&resolution, "resolution", "r", "original", "output canvas: original, 720p, or 1080p")
	cmd.Flags().StringVarP(&quality, "quality", "q", "high", "encode tier: draft or high")
	cmd.Flags().StringVarP(&output, "output", "o", "reelpress-merged.mp4", "output file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the output file if it exists")

	return cmd
}
