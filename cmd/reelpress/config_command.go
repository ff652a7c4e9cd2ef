package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reelpress/reelpress/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or bootstrap the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newConfigShowCommand(ctx))
	cmd.AddCommand(newConfigInitCommand())
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			// Load resolves a location even when no file exists there.
			source := ctx.configPath
			if _, err := os.Stat(source); err != nil {
				source = "built-in defaults"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source              %s\n", source)
			fmt.Fprintf(out, "ffmpeg              %s\n", orAuto(cfg.Tools.FFmpeg))
			fmt.Fprintf(out, "ffprobe             %s\n", orAuto(cfg.Tools.FFprobe))
			fmt.Fprintf(out, "work dir            %s\n", orDefault(cfg.Output.WorkDir, "system temp"))
			fmt.Fprintf(out, "resize timeout      %s\n", cfg.ResizeTimeout())
			fmt.Fprintf(out, "merge timeout       %s\n", cfg.MergeTimeout())
			fmt.Fprintf(out, "download timeout    %s\n", cfg.DownloadTimeout())
			fmt.Fprintf(out, "download cap        %d MiB\n", cfg.Limits.MaxDownloadMiB)
			fmt.Fprintf(out, "normalize workers   %d\n", cfg.Limits.NormalizeConcurrency)
			fmt.Fprintf(out, "log level           %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "log format          %s\n", cfg.Logging.Format)
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var toPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := toPath
			if path == "" {
				var err error
				path, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}
			if err := config.WriteSample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&toPath, "path", "", "where to write the sample (default: the user config location)")

	return cmd
}

func orAuto(value string) string {
	if value == "" {
		return "auto-detect"
	}
	return value
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
