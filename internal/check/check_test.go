package check

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/reelpress/reelpress/internal/config"
)

func writeFakeBinary(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write fake binary: %v", err)
	}
	return path
}

func TestBinariesExplicitPaths(t *testing.T) {
	dir := t.TempDir()
	cfgVal := config.Default()
	cfg := &cfgVal
	cfg.Tools.FFmpeg = writeFakeBinary(t, dir, "ffmpeg")
	cfg.Tools.FFprobe = writeFakeBinary(t, dir, "ffprobe")

	ffmpegPath, ffprobePath, err := Binaries(cfg)
	if err != nil {
		t.Fatalf("Binaries: %v", err)
	}
	if ffmpegPath != cfg.Tools.FFmpeg {
		t.Errorf("ffmpeg path = %q, want %q", ffmpegPath, cfg.Tools.FFmpeg)
	}
	if ffprobePath != cfg.Tools.FFprobe {
		t.Errorf("ffprobe path = %q, want %q", ffprobePath, cfg.Tools.FFprobe)
	}
}

func TestBinariesMissingFFmpeg(t *testing.T) {
	cfgVal := config.Default()
	cfg := &cfgVal
	cfg.Tools.FFmpeg = filepath.Join(t.TempDir(), "no-such-ffmpeg")

	_, _, err := Binaries(cfg)
	if !errors.Is(err, ErrFFmpegNotFound) {
		t.Fatalf("err = %v, want ErrFFmpegNotFound", err)
	}
}

func TestBinariesMissingFFprobe(t *testing.T) {
	dir := t.TempDir()
	cfgVal := config.Default()
	cfg := &cfgVal
	cfg.Tools.FFmpeg = writeFakeBinary(t, dir, "ffmpeg")
	cfg.Tools.FFprobe = filepath.Join(dir, "no-such-ffprobe")

	_, _, err := Binaries(cfg)
	if !errors.Is(err, ErrFFprobeNotFound) {
		t.Fatalf("err = %v, want ErrFFprobeNotFound", err)
	}
}

func TestReportHealthy(t *testing.T) {
	r := &Report{}
	r.add("ffmpeg", StatusOK, "version 7.1")
	r.add("loudnorm filter", StatusWarn, "slow")
	if !r.Healthy() {
		t.Error("Healthy() = false with only ok and warn items")
	}

	r.add("aac encoder", StatusFail, "test encode failed")
	if r.Healthy() {
		t.Error("Healthy() = true with a failed item")
	}
}

func TestFirstLine(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"ffmpeg version 7.1", "ffmpeg version 7.1"},
		{"ffmpeg version 7.1\nbuilt with gcc\n", "ffmpeg version 7.1"},
		{"\n\nffprobe version 6.0\nmore", "ffprobe version 6.0"},
	}
	for _, tc := range cases {
		if got := firstLine(tc.in); got != tc.want {
			t.Errorf("firstLine(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
