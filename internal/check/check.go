// Package check provides system diagnostics for the check command and the
// fast binary validation the pipeline commands run before any work starts.
package check

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/reelpress/reelpress/internal/config"
	"github.com/reelpress/reelpress/internal/ffmpeg"
)

// Sentinel errors returned by Binaries when a required tool is missing.
var (
	ErrFFmpegNotFound  = errors.New("ffmpeg not found")
	ErrFFprobeNotFound = errors.New("ffprobe not found")
)

// Status grades one diagnostic item.
type Status string

const (
	StatusOK   Status = "ok"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Item is one diagnostic finding.
type Item struct {
	Name   string
	Status Status
	Detail string
}

// Report collects the findings of a full diagnostics run.
type Report struct {
	Items []Item
}

// Healthy reports whether nothing failed. Warnings do not count against it.
func (r *Report) Healthy() bool {
	for _, item := range r.Items {
		if item.Status == StatusFail {
			return false
		}
	}
	return true
}

func (r *Report) add(name string, status Status, detail string) {
	r.Items = append(r.Items, Item{Name: name, Status: status, Detail: detail})
}

// Binaries resolves the ffmpeg and ffprobe paths from the configuration and
// verifies both exist. The pipeline commands call this before any download
// so a missing tool fails fast instead of after network work.
func Binaries(cfg *config.Config) (ffmpegPath, ffprobePath string, err error) {
	ffmpegPath, err = ffmpeg.Locate("ffmpeg", cfg.Tools.FFmpeg, cfg.Tools.ExtraPaths)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrFFmpegNotFound, err)
	}
	ffprobePath, err = ffmpeg.Locate("ffprobe", cfg.Tools.FFprobe, cfg.Tools.ExtraPaths)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrFFprobeNotFound, err)
	}
	return ffmpegPath, ffprobePath, nil
}

// Run performs the full diagnostics pass: binary resolution, version
// strings, and minimal test encodes of every engine feature the pipelines
// lean on. It never stops early; every item is probed so the report shows
// the whole picture at once.
func Run(ctx context.Context, cfg *config.Config) *Report {
	report := &Report{}

	ffmpegPath, err := ffmpeg.Locate("ffmpeg", cfg.Tools.FFmpeg, cfg.Tools.ExtraPaths)
	if err != nil {
		report.add("ffmpeg", StatusFail, err.Error())
	} else {
		report.add("ffmpeg", StatusOK, versionLine(ctx, ffmpegPath))
	}

	ffprobePath, err := ffmpeg.Locate("ffprobe", cfg.Tools.FFprobe, cfg.Tools.ExtraPaths)
	if err != nil {
		report.add("ffprobe", StatusFail, err.Error())
	} else {
		report.add("ffprobe", StatusOK, versionLine(ctx, ffprobePath))
	}

	if ffmpegPath == "" {
		report.add("h264 encoder", StatusFail, "skipped, ffmpeg missing")
		report.add("aac encoder", StatusFail, "skipped, ffmpeg missing")
		report.add("silence source", StatusFail, "skipped, ffmpeg missing")
		report.add("loudnorm filter", StatusFail, "skipped, ffmpeg missing")
		return report
	}

	// Each test encodes a fraction of a second from a synthetic source to
	// the null muxer, exercising exactly what the pipelines invoke.
	checkEncode(ctx, report, ffmpegPath, "h264 encoder",
		"libx264 with the high profile",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", "libx264", "-profile:v", "high", "-preset", "ultrafast",
		"-f", "null", "-",
	)
	checkEncode(ctx, report, ffmpegPath, "aac encoder",
		"aac at the pipeline sample rate",
		"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.1",
		"-c:a", "aac", "-ar", "44100", "-ac", "2",
		"-f", "null", "-",
	)
	checkEncode(ctx, report, ffmpegPath, "silence source",
		"anullsrc for the silent-audio fallback",
		"-f", "lavfi", "-i", "anullsrc=channel_layout=stereo:sample_rate=44100",
		"-t", "0.1", "-c:a", "aac",
		"-f", "null", "-",
	)
	checkEncode(ctx, report, ffmpegPath, "loudnorm filter",
		"loudness normalization chain",
		"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.2",
		"-af", "loudnorm=I=-16:TP=-1.5:LRA=11",
		"-f", "null", "-",
	)

	return report
}

// checkEncode runs one minimal engine invocation and records the outcome.
func checkEncode(ctx context.Context, report *Report, ffmpegPath, name, detail string, args ...string) {
	full := append([]string{"-hide_banner", "-nostdin", "-loglevel", "error"}, args...)
	if runSilent(ctx, ffmpegPath, full...) {
		report.add(name, StatusOK, detail)
		return
	}
	report.add(name, StatusFail, detail+" failed a test encode")
}

// versionLine returns the first line of the tool's -version output.
func versionLine(ctx context.Context, path string) string {
	out, err := exec.CommandContext(ctx, path, "-version").Output()
	if err != nil {
		return "version query failed"
	}
	return firstLine(string(out))
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// runSilent runs a command and reports whether it exited zero. All output
// is discarded.
func runSilent(ctx context.Context, name string, args ...string) bool {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
