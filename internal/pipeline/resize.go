package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reelpress/reelpress/internal/ffmpeg"
	"github.com/reelpress/reelpress/internal/planner"
	"github.com/reelpress/reelpress/internal/platform"
	"github.com/reelpress/reelpress/internal/workspace"
)

// Resize runs the single-clip flow end to end and returns the finished MP4
// with the label of the target that was resolved (the preset name, or a
// description of the custom dimensions).
//
// Flow:
//  1. Resolve the target dimensions from the preset or the custom pair.
//  2. Download the source into a fresh workspace.
//  3. Probe it for the duration carried into the result.
//  4. Run the resize attempt ladder (full encode, then silent-audio rescue).
//  5. Read the output back and tear the workspace down.
func (p *Pipeline) Resize(ctx context.Context, req ResizeRequest) (*ResizeResult, string, error) {
	width, height, label, err := resolveTarget(req)
	if err != nil {
		return nil, "", err
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.ResizeTimeout())
	defer cancel()

	ws, err := workspace.New(p.cfg.Output.WorkDir, p.logger)
	if err != nil {
		return nil, "", fmt.Errorf("create workspace: %w", err)
	}
	defer ws.Cleanup()

	logger := p.logger.With().Str("job", filepath.Base(ws.Root())).Logger()
	logger.Info().
		Str("url", req.URL).
		Str("target", label).
		Int("width", width).
		Int("height", height).
		Msg("resize started")

	// --- Download ---
	data, err := p.fetchSource(ctx, req.URL)
	if err != nil {
		return nil, "", wrapStage(ctx, ErrDownload, "download", -1, err)
	}
	sourcePath, err := ws.WriteFile(ws.SourceName(0, req.URL), data)
	if err != nil {
		return nil, "", fmt.Errorf("write source: %w", err)
	}

	// --- Probe ---
	probed, err := p.prober.Probe(ctx, sourcePath)
	if err != nil {
		return nil, "", wrapStage(ctx, ErrProbe, "probe", -1, err)
	}
	logger.Debug().
		Str("resolution", probed.Resolution()).
		Float64("duration", probed.Duration).
		Bool("audio", probed.HasAudio).
		Msg("source probed")

	// --- Encode ---
	outputPath := ws.Path(ws.OutputName())
	plan := planner.BuildResizePlan(sourcePath, outputPath, width, height)
	if err := p.runAttempts(ctx, logger, "resize", ffmpeg.ResizeAttempts(plan)); err != nil {
		return nil, "", err
	}

	buffer, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, "", fmt.Errorf("read output: %w", err)
	}

	result := &ResizeResult{
		Buffer:     buffer,
		Width:      width,
		Height:     height,
		Duration:   probed.Duration,
		SourceSize: int64(len(data)),
		FileSize:   int64(len(buffer)),
	}
	logger.Info().
		Str("target", label).
		Int64("bytes", result.FileSize).
		Msg("resize finished")
	return result, label, nil
}

// resolveTarget turns the request into concrete output dimensions and a
// human-readable label. Exactly one of the preset and the custom pair must be
// present.
func resolveTarget(req ResizeRequest) (width, height int, label string, err error) {
	if req.URL == "" {
		return 0, 0, "", Wrapf(ErrValidation, "validate", "a source url is required")
	}

	hasPreset := req.Preset != ""
	hasCustom := req.Width != 0 || req.Height != 0
	switch {
	case hasPreset && hasCustom:
		return 0, 0, "", Wrapf(ErrValidation, "validate", "preset and custom dimensions are mutually exclusive")
	case !hasPreset && !hasCustom:
		return 0, 0, "", Wrapf(ErrValidation, "validate", "either a preset or custom dimensions are required")
	case hasPreset:
		preset, lookupErr := platform.Lookup(req.Preset)
		if lookupErr != nil {
			return 0, 0, "", Wrap(ErrValidation, "validate", lookupErr)
		}
		return preset.Width, preset.Height, req.Preset, nil
	}

	if req.Width <= 0 || req.Height <= 0 {
		return 0, 0, "", Wrapf(ErrValidation, "validate", "custom dimensions must be positive, got %dx%d", req.Width, req.Height)
	}
	if req.Width%2 != 0 || req.Height%2 != 0 {
		return 0, 0, "", Wrapf(ErrValidation, "validate", "custom dimensions must be even for h264, got %dx%d", req.Width, req.Height)
	}
	return req.Width, req.Height, fmt.Sprintf("custom %dx%d", req.Width, req.Height), nil
}
