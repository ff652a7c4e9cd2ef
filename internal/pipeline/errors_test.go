package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestWrapPreservesMarkerAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrDownload, "download", cause)

	if !errors.Is(err, ErrDownload) {
		t.Errorf("errors.Is(err, ErrDownload) = false: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false: %v", err)
	}
	if errors.Is(err, ErrEncode) {
		t.Errorf("err matches the wrong marker: %v", err)
	}
	if !strings.Contains(err.Error(), "download") {
		t.Errorf("message lost the stage: %v", err)
	}
}

func TestWrapSourceNamesTheClip(t *testing.T) {
	err := WrapSource(ErrProbe, "probe", 2, errors.New("no video stream"))
	if !strings.Contains(err.Error(), "source 2") {
		t.Errorf("message lost the source index: %v", err)
	}
	if !errors.Is(err, ErrProbe) {
		t.Errorf("errors.Is(err, ErrProbe) = false: %v", err)
	}
}

func TestEncodeErrorCarriesStderrTail(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&b, "frame %d\n", i)
	}
	b.WriteString("Conversion failed!\n")

	err := encodeError("normalize", "silent-audio", b.String(), errors.New("exit status 1"))
	if !errors.Is(err, ErrEncode) {
		t.Fatalf("errors.Is(err, ErrEncode) = false: %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "Conversion failed!") {
		t.Errorf("message lost the final stderr line:\n%s", msg)
	}
	if strings.Contains(msg, "frame 5\n") {
		t.Errorf("message kept lines past the tail window:\n%s", msg)
	}
	if !strings.Contains(msg, `attempt "silent-audio"`) {
		t.Errorf("message lost the attempt name:\n%s", msg)
	}
}

func TestStderrTail(t *testing.T) {
	if got := stderrTail("", 5); got != "" {
		t.Errorf("stderrTail(empty) = %q, want empty", got)
	}
	if got := stderrTail("one\n\n\ntwo\n", 5); got != "one\ntwo" {
		t.Errorf("stderrTail dropped blanks wrong: %q", got)
	}
	got := stderrTail("a\nb\nc\nd", 2)
	if got != "c\nd" {
		t.Errorf("stderrTail(4 lines, keep 2) = %q, want c\\nd", got)
	}
}
