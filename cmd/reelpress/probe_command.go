package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reelpress/reelpress/internal/check"
	"github.com/reelpress/reelpress/internal/display"
	"github.com/reelpress/reelpress/internal/fetch"
	"github.com/reelpress/reelpress/internal/logging"
	"github.com/reelpress/reelpress/internal/pipeline"
	"github.com/reelpress/reelpress/internal/probe"
	"github.com/reelpress/reelpress/internal/workspace"
)

// probeOutput shapes the probe result for --json consumers.
type probeOutput struct {
	Duration   float64 `json:"duration_seconds"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	HasAudio   bool    `json:"has_audio"`
	VideoCodec string  `json:"video_codec,omitempty"`
	AudioCodec string  `json:"audio_codec,omitempty"`
	FrameRate  string  `json:"frame_rate,omitempty"`
	SizeBytes  int64   `json:"size_bytes,omitempty"`
	Format     string  `json:"format,omitempty"`
}

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "probe <url-or-path>",
		Short: "Inspect a clip's streams and duration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			_, ffprobePath, err := check.Binaries(cfg)
			if err != nil {
				return err
			}
			prober := probe.NewProber(ffprobePath, logging.WithComponent(logger, "probe"))

			target := args[0]
			path := target
			if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
				ws, err := workspace.New(cfg.Output.WorkDir, logger)
				if err != nil {
					return fmt.Errorf("create workspace: %w", err)
				}
				defer ws.Cleanup()

				fetcher := fetch.NewDownloader(nil, cfg.MaxDownloadBytes(), logging.WithComponent(logger, "fetch"))
				data, err := fetcher.Fetch(cmd.Context(), target)
				if err != nil {
					return pipeline.Wrap(pipeline.ErrDownload, "download", err)
				}
				path, err = ws.WriteFile(ws.SourceName(0, target), data)
				if err != nil {
					return fmt.Errorf("write source: %w", err)
				}
			} else if _, err := os.Stat(path); err != nil {
				return pipeline.Wrap(pipeline.ErrValidation, "validate", err)
			}

			result, err := prober.Probe(cmd.Context(), path)
			if err != nil {
				return pipeline.Wrap(pipeline.ErrProbe, "probe", err)
			}

			if asJSON {
				return writeJSON(cmd, probeOutput{
					Duration:   result.Duration,
					Width:      result.Width,
					Height:     result.Height,
					HasAudio:   result.HasAudio,
					VideoCodec: result.VideoCodec,
					AudioCodec: result.AudioCodec,
					FrameRate:  result.FrameRate,
					SizeBytes:  result.SizeBytes,
					Format:     result.FormatName,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "resolution  %s\n", result.Resolution())
			fmt.Fprintf(out, "duration    %s\n", display.FormatDuration(result.Duration))
			fmt.Fprintf(out, "audio       %s\n", describeAudio(result))
			if result.VideoCodec != "" {
				fmt.Fprintf(out, "video       %s\n", result.VideoCodec)
			}
			if result.FrameRate != "" {
				fmt.Fprintf(out, "frame rate  %s\n", result.FrameRate)
			}
			if result.FormatName != "" {
				fmt.Fprintf(out, "container   %s\n", result.FormatName)
			}
			if result.SizeBytes > 0 {
				fmt.Fprintf(out, "size        %s\n", display.FormatBytes(result.SizeBytes))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the probe result as JSON")

	return cmd
}

func describeAudio(result *probe.Result) string {
	if !result.HasAudio {
		return "none"
	}
	if result.AudioCodec != "" {
		return result.AudioCodec
	}
	return "yes"
}
