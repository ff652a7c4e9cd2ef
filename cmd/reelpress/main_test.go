package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reelpress/reelpress/internal/pipeline"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

// writeStubTools creates fake ffmpeg/ffprobe executables and a config file
// pointing at them, so commands get past binary resolution without a real
// install.
func writeStubTools(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"ffmpeg", "ffprobe"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
			t.Fatalf("write stub %s: %v", name, err)
		}
	}
	configPath := filepath.Join(dir, "config.toml")
	content := "[tools]\nffmpeg = " + quote(filepath.Join(dir, "ffmpeg")) +
		"\nffprobe = " + quote(filepath.Join(dir, "ffprobe")) + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func quote(s string) string {
	return `"` + s + `"`
}

func TestPresetsCommand(t *testing.T) {
	out, err := runCLI(t, "presets")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	for _, want := range []string{"instagram-reel", "1080x1920", "9:16", "youtube", "1920x1080"} {
		if !strings.Contains(out, want) {
			t.Errorf("presets output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShowCommand(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	content := "[limits]\nnormalize_concurrency = 4\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "--config", configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, configPath) {
		t.Errorf("output missing config source:\n%s", out)
	}
	if !strings.Contains(out, "normalize workers   4") {
		t.Errorf("output missing overlaid concurrency:\n%s", out)
	}
	if !strings.Contains(out, "resize timeout      5m0s") {
		t.Errorf("output missing default resize timeout:\n%s", out)
	}
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "config", "init", "--path", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output does not name the file:\n%s", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[limits]") {
		t.Errorf("sample missing limits section:\n%s", data)
	}

	if _, err := runCLI(t, "config", "init", "--path", path); err == nil {
		t.Fatal("second init succeeded, want refusal to overwrite")
	}
}

func TestResizeCommandValidation(t *testing.T) {
	configPath := writeStubTools(t)

	_, err := runCLI(t, "--config", configPath, "resize", "https://cdn.example.com/v.mp4")
	if !errors.Is(err, pipeline.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation with no target", err)
	}
	if exitCode(err) != exitValidation {
		t.Errorf("exitCode = %d, want %d", exitCode(err), exitValidation)
	}
}

func TestMergeCommandValidation(t *testing.T) {
	configPath := writeStubTools(t)

	_, err := runCLI(t, "--config", configPath, "merge", "https://cdn.example.com/only.mp4")
	if !errors.Is(err, pipeline.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation with one source", err)
	}
}

func TestCheckCommandReportsMissingTools(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	content := "[tools]\nffmpeg = " + quote(filepath.Join(dir, "absent-ffmpeg")) +
		"\nffprobe = " + quote(filepath.Join(dir, "absent-ffprobe")) + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "--config", configPath, "check")
	if err == nil {
		t.Fatal("check succeeded with missing tools")
	}
	if !strings.Contains(out, "FAIL") {
		t.Errorf("check output missing FAIL rows:\n%s", out)
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", pipeline.Wrapf(pipeline.ErrValidation, "validate", "bad"), exitValidation},
		{"download", pipeline.Wrap(pipeline.ErrDownload, "download", errors.New("404")), exitDownload},
		{"probe", pipeline.Wrap(pipeline.ErrProbe, "probe", errors.New("bad json")), exitProbe},
		{"encode", pipeline.Wrap(pipeline.ErrEncode, "resize", errors.New("exit 1")), exitEncode},
		{"timeout", pipeline.Wrap(pipeline.ErrTimeout, "normalize", errors.New("deadline")), exitTimeout},
		{"plain", errors.New("anything else"), exitError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Errorf("exitCode = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDefaultOutputName(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"instagram-reel", "reelpress-instagram-reel.mp4"},
		{"custom 640x480", "reelpress-640x480.mp4"},
		{"youtube", "reelpress-youtube.mp4"},
	}
	for _, tc := range cases {
		if got := defaultOutputName(tc.label); got != tc.want {
			t.Errorf("defaultOutputName(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

func TestWriteOutputRefusesClobber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mp4")
	if err := writeOutput(path, []byte("one"), false); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := writeOutput(path, []byte("two"), false); err == nil {
		t.Fatal("second write succeeded without --force")
	}
	if err := writeOutput(path, []byte("two"), true); err != nil {
		t.Fatalf("forced write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "two" {
		t.Errorf("content = %q, want %q", data, "two")
	}
}
