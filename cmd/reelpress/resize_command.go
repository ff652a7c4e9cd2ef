package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reelpress/reelpress/internal/display"
	"github.com/reelpress/reelpress/internal/pipeline"
)

func newResizeCommand(ctx *commandContext) *cobra.Command {
	var (
		preset string
		width  int
		height int
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "resize <url>",
		Short: "Resize one clip to a platform preset or custom dimensions",
		Long: `Resize downloads a clip, scales and center-crops it to fill the target
frame exactly, and writes a faststart MP4 with AAC audio. Pick the target
with --preset (see "reelpress presets") or with --width and --height.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := ctx.buildPipeline()
			if err != nil {
				return err
			}

			result, label, err := p.Resize(cmd.Context(), pipeline.ResizeRequest{
				URL:    args[0],
				Preset: preset,
				Width:  width,
				Height: height,
			})
			if err != nil {
				return err
			}

			if output == "" {
				output = defaultOutputName(label)
			}
			if err := writeOutput(output, result.Buffer, force); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "wrote %s\n", output)
			fmt.Fprintf(out, "  target    %s (%dx%d)\n", label, result.Width, result.Height)
			fmt.Fprintf(out, "  duration  %s\n", display.FormatDuration(result.Duration))
			fmt.Fprintf(out, "  size      %s (%s vs source)\n",
				display.FormatBytes(result.FileSize),
				display.FormatBytesWithSign(result.FileSize-result.SourceSize))
			return nil
		},
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", "", "platform preset name")
	cmd.Flags().IntVar(&width, "width", 0, "custom output width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "custom output height in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default reelpress-<target>.mp4)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the output file if it exists")

	return cmd
}

// defaultOutputName derives an output file name from the resolved target
// label, e.g. "instagram-reel" or "custom 640x480".
func defaultOutputName(label string) string {
	name := strings.TrimPrefix(label, "custom ")
	name = strings.ReplaceAll(name, " ", "-")
	return "reelpress-" + name + ".mp4"
}
