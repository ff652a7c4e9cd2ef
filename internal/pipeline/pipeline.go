package pipeline

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/reelpress/reelpress/internal/config"
	"github.com/reelpress/reelpress/internal/ffmpeg"
	"github.com/reelpress/reelpress/internal/probe"
)

// Fetcher retrieves a source clip over HTTP.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Prober inspects a downloaded clip with ffprobe.
type Prober interface {
	Probe(ctx context.Context, path string) (*probe.Result, error)
}

// Pipeline wires the fetcher, prober, and engine runner into the resize and
// merge flows. It is safe for concurrent use; each job gets its own workspace.
type Pipeline struct {
	fetcher Fetcher
	prober  Prober
	runner  ffmpeg.Runner
	cfg     *config.Config
	logger  zerolog.Logger
}

// New builds a Pipeline from its collaborators.
func New(fetcher Fetcher, prober Prober, runner ffmpeg.Runner, cfg *config.Config, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		fetcher: fetcher,
		prober:  prober,
		runner:  runner,
		cfg:     cfg,
		logger:  logger,
	}
}

// fetchSource downloads one clip under its own download budget, nested inside
// the job deadline.
func (p *Pipeline) fetchSource(ctx context.Context, url string) ([]byte, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, p.cfg.DownloadTimeout())
	defer cancel()

	return p.fetcher.Fetch(fetchCtx, url)
}

// wrapStage classifies a stage failure. A spent job deadline wins over the
// stage marker, caller cancellation passes through untouched, and a source
// index >= 0 is folded into the message.
func wrapStage(ctx context.Context, marker error, stage string, index int, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return Wrap(ErrTimeout, stage, err)
		}
		return err
	}
	if index >= 0 {
		return WrapSource(marker, stage, index, err)
	}
	return Wrap(marker, stage, err)
}

// runAttempts walks an engine attempt ladder until a rung succeeds. Output
// from failed rungs is classified and logged at debug level; the final rung's
// stderr rides the returned error. A spent deadline stops the ladder and
// reports a timeout.
func (p *Pipeline) runAttempts(ctx context.Context, logger zerolog.Logger, stage string, attempts []ffmpeg.Attempt) error {
	var (
		lastName   string
		lastStderr string
		lastErr    error
	)
	for i, attempt := range attempts {
		if ctx.Err() != nil {
			return wrapRunnerErr(ctx, stage, ctx.Err())
		}

		logger.Debug().
			Str("stage", stage).
			Str("attempt", attempt.Name).
			Int("rung", i+1).
			Int("rungs", len(attempts)).
			Msg("running engine attempt")

		stderr, err := p.runner.Run(ctx, attempt.Args)
		if err == nil {
			if i > 0 {
				logger.Info().
					Str("stage", stage).
					Str("attempt", attempt.Name).
					Msg("fallback attempt succeeded")
			}
			return nil
		}
		if ctx.Err() != nil {
			return wrapRunnerErr(ctx, stage, err)
		}

		category := ffmpeg.ClassifyStderr(stderr)
		event := logger.Warn().
			Str("stage", stage).
			Str("attempt", attempt.Name)
		if category != "" {
			event = event.Str("category", category)
		}
		event.Msg("engine attempt failed")
		logStderrTail(logger, stderr)

		lastName, lastStderr, lastErr = attempt.Name, stderr, err
	}
	return encodeError(stage, lastName, lastStderr, lastErr)
}

// wrapRunnerErr maps a context-terminated engine run to the timeout marker,
// or passes cancellation through.
func wrapRunnerErr(ctx context.Context, stage string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Wrap(ErrTimeout, stage, err)
	}
	return err
}

// logStderrTail emits the last engine output lines one by one so they stay
// readable in console logs.
func logStderrTail(logger zerolog.Logger, stderr string) {
	tail := stderrTail(stderr, stderrTailLines)
	if tail == "" {
		return
	}
	for _, line := range strings.Split(tail, "\n") {
		logger.Debug().Str("engine", line).Msg("")
	}
}
