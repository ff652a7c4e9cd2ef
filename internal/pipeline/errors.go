package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers classifying pipeline failures. Callers branch with
// errors.Is; the wrapped chain carries stage detail and the underlying
// cause.
var (
	ErrValidation = errors.New("validation error")
	ErrDownload   = errors.New("download error")
	ErrProbe      = errors.New("probe error")
	ErrEncode     = errors.New("encode error")
	ErrTimeout    = errors.New("timeout")
)

// Wrap tags err with a classification marker and stage context.
func Wrap(marker error, stage string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, stage, err)
	}
	return fmt.Errorf("%w: %s", marker, stage)
}

// Wrapf tags a formatted message with a classification marker and stage
// context, with no underlying cause.
func Wrapf(marker error, stage, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", marker, stage, fmt.Sprintf(format, args...))
}

// WrapSource is Wrap carrying the index of the offending source, for merge
// stages that fan out over clips.
func WrapSource(marker error, stage string, index int, err error) error {
	return fmt.Errorf("%w: %s: source %d: %w", marker, stage, index, err)
}

// encodeError builds the EncodeError surfaced after the attempt ladder is
// exhausted, carrying the final rung's trailing diagnostic output.
func encodeError(stage, attempt, stderr string, err error) error {
	tail := stderrTail(stderr, stderrTailLines)
	if tail == "" {
		return fmt.Errorf("%w: %s: attempt %q: %w", ErrEncode, stage, attempt, err)
	}
	return fmt.Errorf("%w: %s: attempt %q: %w\nengine output:\n%s", ErrEncode, stage, attempt, err, tail)
}

const stderrTailLines = 20

// stderrTail returns the last n non-empty lines of engine output, enough
// diagnostic context without megabytes of progress spam.
func stderrTail(stderr string, n int) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	kept := make([]string, 0, n)
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	if len(kept) > n {
		kept = kept[len(kept)-n:]
	}
	return strings.Join(kept, "\n")
}
