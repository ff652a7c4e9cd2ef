package ffmpeg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteConcatList writes the demuxer list file referencing paths in order.
// Paths are made absolute and single quotes are escaped per the concat
// demuxer's quoting rules.
func WriteConcatList(dest string, paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no input files for concat list")
	}

	var b strings.Builder
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve concat input %q: %w", p, err)
		}
		fmt.Fprintf(&b, "file '%s'\n", escapeConcatPath(abs))
	}

	if err := os.WriteFile(dest, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("write concat list %s: %w", dest, err)
	}
	return nil
}

// escapeConcatPath escapes single quotes for the concat demuxer: the quoted
// string is closed, an escaped quote emitted, and the string reopened.
func escapeConcatPath(path string) string {
	return strings.ReplaceAll(path, "'", `'\''`)
}
