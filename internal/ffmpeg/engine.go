package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
)

// Runner executes one transcoding engine invocation. Args exclude the
// binary itself. Stderr is returned for classification whether or not the
// run succeeded.
type Runner interface {
	Run(ctx context.Context, args []string) (stderr string, err error)
}

// Engine is the os/exec-backed Runner.
type Engine struct {
	binary  string
	verbose bool
	logger  zerolog.Logger
}

// NewEngine returns an Engine invoking the given ffmpeg binary. With
// verbose set, engine stderr is tee'd to the process stderr in real time;
// otherwise it is captured silently.
func NewEngine(binary string, verbose bool, logger zerolog.Logger) *Engine {
	return &Engine{binary: binary, verbose: verbose, logger: logger}
}

// Run executes the engine and waits for it to exit. Context cancellation
// kills the child process; in that case the returned error is the context's
// error so callers can tell a timeout from an encode failure.
func (e *Engine) Run(ctx context.Context, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, e.binary, args...)

	var stderrBuf bytes.Buffer
	if e.verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	start := time.Now()
	err := cmd.Run()
	if err != nil && ctx.Err() != nil {
		err = ctx.Err()
	}

	e.logger.Debug().
		Str("binary", e.binary).
		Int("args", len(args)).
		Dur("elapsed", time.Since(start)).
		Bool("ok", err == nil).
		Msg("engine run finished")

	return stderrBuf.String(), err
}
