package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reelpress/reelpress/internal/check"
	"github.com/reelpress/reelpress/internal/config"
	"github.com/reelpress/reelpress/internal/fetch"
	"github.com/reelpress/reelpress/internal/ffmpeg"
	"github.com/reelpress/reelpress/internal/logging"
	"github.com/reelpress/reelpress/internal/pipeline"
	"github.com/reelpress/reelpress/internal/probe"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag    string
		verboseFlag   bool
		logFormatFlag string
	)

	ctx := newCommandContext(&configFlag, &verboseFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:           "reelpress",
		Short:         "Resize, normalize, and merge short-form video with ffmpeg",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "debug logging and engine output")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "log format: console or json")

	rootCmd.AddCommand(newResizeCommand(ctx))
	rootCmd.AddCommand(newMergeCommand(ctx))
	rootCmd.AddCommand(newProbeCommand(ctx))
	rootCmd.AddCommand(newPresetsCommand())
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// commandContext carries the persistent flags and the lazily loaded
// configuration shared by every subcommand.
type commandContext struct {
	configFlag    *string
	verboseFlag   *bool
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		verboseFlag:   verboseFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := ""
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, c.configPath, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

// logger builds the process logger from the resolved config, with the
// persistent flags taking precedence.
func (c *commandContext) logger() (zerolog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return zerolog.Nop(), err
	}

	level := cfg.Logging.Level
	if c.verboseFlag != nil && *c.verboseFlag {
		level = "debug"
	}
	format := logging.Format(cfg.Logging.Format)
	if c.logFormatFlag != nil && *c.logFormatFlag != "" {
		format = logging.Format(*c.logFormatFlag)
	}
	return logging.New(os.Stderr, level, format), nil
}

// buildPipeline resolves the engine binaries and assembles the pipeline with
// its real collaborators. Called by the resize and merge commands once their
// arguments are parsed.
func (c *commandContext) buildPipeline() (*pipeline.Pipeline, zerolog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	logger, err := c.logger()
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	ffmpegPath, ffprobePath, err := check.Binaries(cfg)
	if err != nil {
		return nil, logger, err
	}
	logger.Debug().Str("ffmpeg", ffmpegPath).Str("ffprobe", ffprobePath).Msg("engine binaries resolved")

	verbose := c.verboseFlag != nil && *c.verboseFlag
	fetcher := fetch.NewDownloader(
		&http.Client{Timeout: cfg.DownloadTimeout()},
		cfg.MaxDownloadBytes(),
		logging.WithComponent(logger, "fetch"),
	)
	prober := probe.NewProber(ffprobePath, logging.WithComponent(logger, "probe"))
	runner := ffmpeg.NewEngine(ffmpegPath, verbose, logging.WithComponent(logger, "ffmpeg"))

	p := pipeline.New(fetcher, prober, runner, cfg, logging.WithComponent(logger, "pipeline"))
	return p, logger, nil
}

// writeOutput writes the finished buffer to path, refusing to clobber an
// existing file unless force is set.
func writeOutput(path string, data []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("output %s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
