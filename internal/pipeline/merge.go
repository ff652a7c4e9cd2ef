package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/reelpress/reelpress/internal/ffmpeg"
	"github.com/reelpress/reelpress/internal/planner"
	"github.com/reelpress/reelpress/internal/probe"
	"github.com/reelpress/reelpress/internal/workspace"
)

// maxMergeTotalSeconds caps the summed source duration of a merge. The cap is
// checked after probing, before any encode work starts.
const maxMergeTotalSeconds = 300.0

// Merge runs the multi-clip flow end to end and returns the finished MP4.
//
// Flow:
//  1. Validate the request (clip count, resolution, tier).
//  2. Download every source into a fresh workspace.
//  3. Probe every source; reject clips without a video stream.
//  4. Enforce the five-minute total duration cap.
//  5. Vote the orientation and pick the shared canvas.
//  6. Normalize the clips in parallel, bounded by the configured concurrency.
//  7. Stream-copy concatenate in request order.
func (p *Pipeline) Merge(ctx context.Context, req MergeRequest) (*MergeResult, error) {
	if req.Resolution == "" {
		req.Resolution = planner.ResolutionOriginal
	}
	if req.Quality == "" {
		req.Quality = planner.TierHigh
	}

	// --- Validate ---
	if len(req.URLs) < 2 {
		return nil, Wrapf(ErrValidation, "validate", "merge needs at least 2 sources, got %d", len(req.URLs))
	}
	if err := req.Resolution.Validate(); err != nil {
		return nil, Wrap(ErrValidation, "validate", err)
	}
	if err := req.Quality.Validate(); err != nil {
		return nil, Wrap(ErrValidation, "validate", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.MergeTimeout())
	defer cancel()

	ws, err := workspace.New(p.cfg.Output.WorkDir, p.logger)
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	defer ws.Cleanup()

	logger := p.logger.With().Str("job", filepath.Base(ws.Root())).Logger()
	logger.Info().
		Int("clips", len(req.URLs)).
		Str("resolution", string(req.Resolution)).
		Str("quality", string(req.Quality)).
		Msg("merge started")

	// --- Download ---
	paths := make([]string, len(req.URLs))
	for i, url := range req.URLs {
		logger.Debug().Int("clip", i+1).Int("total", len(req.URLs)).Str("url", url).Msg("downloading source")
		data, err := p.fetchSource(ctx, url)
		if err != nil {
			return nil, wrapStage(ctx, ErrDownload, "download", i, err)
		}
		path, err := ws.WriteFile(ws.SourceName(i, url), data)
		if err != nil {
			return nil, fmt.Errorf("write source %d: %w", i, err)
		}
		paths[i] = path
	}

	// --- Probe ---
	probed := make([]*probe.Result, len(paths))
	var totalDuration float64
	for i, path := range paths {
		pr, err := p.prober.Probe(ctx, path)
		if err != nil {
			return nil, wrapStage(ctx, ErrProbe, "probe", i, err)
		}
		if !pr.HasVideo() {
			return nil, WrapSource(ErrProbe, "probe", i, errors.New("no video stream"))
		}
		probed[i] = pr
		totalDuration += pr.Duration
		logger.Debug().
			Int("clip", i+1).
			Str("resolution", pr.Resolution()).
			Float64("duration", pr.Duration).
			Bool("audio", pr.HasAudio).
			Msg("source probed")
	}

	// --- Duration cap ---
	if totalDuration > maxMergeTotalSeconds {
		return nil, Wrapf(ErrValidation, "validate",
			"total duration %.1fs exceeds the %.0fs limit", totalDuration, maxMergeTotalSeconds)
	}

	// --- Geometry ---
	vertical := planner.VoteVertical(probed)
	width, height := planner.SelectDimensions(probed[0], req.Resolution, vertical)
	logger.Info().
		Bool("vertical", vertical).
		Int("width", width).
		Int("height", height).
		Float64("total_duration", totalDuration).
		Msg("canvas selected")

	// --- Normalize ---
	normalized := make([]string, len(paths))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.cfg.Limits.NormalizeConcurrency)
	for i, path := range paths {
		i := i
		outputPath := ws.Path(ws.NormalizedName(i))
		plan := planner.BuildNormalizePlan(path, outputPath, probed[i], width, height, req.Quality)
		normalized[i] = outputPath
		clipLogger := logger.With().Int("clip", i+1).Logger()
		group.Go(func() error {
			if err := p.runAttempts(groupCtx, clipLogger, "normalize", ffmpeg.NormalizeAttempts(plan)); err != nil {
				return fmt.Errorf("source %d: %w", i, err)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// --- Concatenate ---
	listPath := ws.Path(ws.ConcatListName())
	if err := ffmpeg.WriteConcatList(listPath, normalized); err != nil {
		return nil, fmt.Errorf("write concat list: %w", err)
	}
	outputPath := ws.Path(ws.OutputName())
	concatPlan := planner.BuildConcatPlan(listPath, outputPath)
	if err := p.runAttempts(ctx, logger, "concat", ffmpeg.ConcatAttempts(concatPlan)); err != nil {
		return nil, err
	}

	buffer, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("read output: %w", err)
	}

	result := &MergeResult{
		Buffer:        buffer,
		Width:         width,
		Height:        height,
		Vertical:      vertical,
		TotalDuration: totalDuration,
		ClipCount:     len(req.URLs),
		FileSize:      int64(len(buffer)),
	}
	logger.Info().
		Int("clips", result.ClipCount).
		Int64("bytes", result.FileSize).
		Msg("merge finished")
	return result, nil
}
