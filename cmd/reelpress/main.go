// Command reelpress resizes, normalizes, and merges short-form video with
// ffmpeg. It downloads sources over HTTP, runs the requested pipeline, and
// writes the finished MP4 to a local file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reelpress/reelpress/internal/pipeline"
)

// version and commit are injected at build time via -ldflags. Plain
// "go build" keeps the defaults.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

// Exit codes by failure class, stable for scripting around the CLI.
const (
	exitError      = 1
	exitValidation = 2
	exitDownload   = 3
	exitProbe      = 4
	exitEncode     = 5
	exitTimeout    = 6
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "reelpress: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrValidation):
		return exitValidation
	case errors.Is(err, pipeline.ErrDownload):
		return exitDownload
	case errors.Is(err, pipeline.ErrProbe):
		return exitProbe
	case errors.Is(err, pipeline.ErrEncode):
		return exitEncode
	case errors.Is(err, pipeline.ErrTimeout):
		return exitTimeout
	}
	return exitError
}
