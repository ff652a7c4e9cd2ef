// Package config holds runtime configuration: defaults, TOML loading, and
// validation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Tools configures how the external transcoding binaries are located.
type Tools struct {
	// FFmpeg and FFprobe override binary discovery with explicit paths.
	FFmpeg  string `toml:"ffmpeg"`
	FFprobe string `toml:"ffprobe"`
	// ExtraPaths are searched after PATH and before the built-in
	// install locations.
	ExtraPaths []string `toml:"extra_paths"`
}

// Limits configures operation budgets and resource caps.
type Limits struct {
	ResizeTimeoutSeconds   int   `toml:"resize_timeout_seconds"`   // Default: 300.
	MergeTimeoutSeconds    int   `toml:"merge_timeout_seconds"`    // Default: 600.
	DownloadTimeoutSeconds int   `toml:"download_timeout_seconds"` // Default: 60.
	MaxDownloadMiB         int64 `toml:"max_download_mib"`         // Default: 2048.
	NormalizeConcurrency   int   `toml:"normalize_concurrency"`    // Default: 2.
}

// Output configures where intermediate job files are written.
type Output struct {
	// WorkDir is the parent for per-job workspaces. Empty means the
	// system temp directory.
	WorkDir string `toml:"work_dir"`
}

// Logging configures log verbosity and encoding.
type Logging struct {
	Level  string `toml:"level"`  // trace|debug|info|warn|error. Default: "info".
	Format string `toml:"format"` // console|json. Default: "console".
}

// Config is the root configuration document.
type Config struct {
	Tools   Tools   `toml:"tools"`
	Limits  Limits  `toml:"limits"`
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Limits: Limits{
			ResizeTimeoutSeconds:   300,
			MergeTimeoutSeconds:    600,
			DownloadTimeoutSeconds: 60,
			MaxDownloadMiB:         2048,
			NormalizeConcurrency:   2,
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "reelpress", "config.toml"), nil
}

// Load reads the config at path, overlaying it on [Default]. An empty path
// resolves to [DefaultPath]; a missing file yields pure defaults. The
// returned path is the resolved location whether or not it existed.
func Load(path string) (*Config, string, error) {
	cfg := Default()

	resolved, exists, err := resolvePath(path)
	if err != nil {
		return nil, "", err
	}

	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, "", fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, "", fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, resolved, nil
}

// WriteSample writes the embedded sample config to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

func resolvePath(path string) (string, bool, error) {
	if path == "" {
		def, err := DefaultPath()
		if err != nil {
			return "", false, err
		}
		path = def
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(expanded); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return expanded, true, nil
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}

func (c *Config) normalize() error {
	if c.Output.WorkDir != "" {
		expanded, err := expandPath(c.Output.WorkDir)
		if err != nil {
			return err
		}
		c.Output.WorkDir = expanded
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	return nil
}

// Validate checks limit ranges and logging enum fields.
func (c *Config) Validate() error {
	if c.Limits.ResizeTimeoutSeconds <= 0 {
		return errors.New("limits.resize_timeout_seconds must be positive")
	}
	if c.Limits.MergeTimeoutSeconds <= 0 {
		return errors.New("limits.merge_timeout_seconds must be positive")
	}
	if c.Limits.DownloadTimeoutSeconds <= 0 {
		return errors.New("limits.download_timeout_seconds must be positive")
	}
	if c.Limits.MaxDownloadMiB <= 0 {
		return errors.New("limits.max_download_mib must be positive")
	}
	if c.Limits.NormalizeConcurrency < 1 {
		return errors.New("limits.normalize_concurrency must be at least 1")
	}
	switch c.Logging.Format {
	case "console", "json":
		// valid
	default:
		return errors.New("invalid logging format (use 'console' or 'json')")
	}
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
		// valid
	default:
		return errors.New("invalid logging level (use trace, debug, info, warn, or error)")
	}
	return nil
}

// ResizeTimeout is the wall-clock budget for a resize job.
func (c *Config) ResizeTimeout() time.Duration {
	return time.Duration(c.Limits.ResizeTimeoutSeconds) * time.Second
}

// MergeTimeout is the wall-clock budget for a merge job.
func (c *Config) MergeTimeout() time.Duration {
	return time.Duration(c.Limits.MergeTimeoutSeconds) * time.Second
}

// DownloadTimeout is the per-fetch budget inside a pipeline run.
func (c *Config) DownloadTimeout() time.Duration {
	return time.Duration(c.Limits.DownloadTimeoutSeconds) * time.Second
}

// MaxDownloadBytes is the per-fetch response size cap.
func (c *Config) MaxDownloadBytes() int64 {
	return c.Limits.MaxDownloadMiB * 1024 * 1024
}
