// Package workspace manages per-job temporary directories. Every pipeline
// run gets an exclusive directory that is removed unconditionally when the
// run ends, whatever the outcome.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Workspace is an exclusive scratch directory for one pipeline job.
type Workspace struct {
	root   string
	logger zerolog.Logger
}

// New creates a uuid-named job directory under parent. An empty parent
// means the system temp directory.
func New(parent string, logger zerolog.Logger) (*Workspace, error) {
	if parent == "" {
		parent = os.TempDir()
	}
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("create work dir %s: %w", parent, err)
	}

	root := filepath.Join(parent, "reelpress-"+uuid.NewString())
	if err := os.Mkdir(root, 0o700); err != nil {
		return nil, fmt.Errorf("create workspace %s: %w", root, err)
	}

	logger.Debug().Str("workspace", root).Msg("created workspace")
	return &Workspace{root: root, logger: logger}, nil
}

// Root returns the workspace directory path.
func (w *Workspace) Root() string {
	return w.root
}

// Path joins name onto the workspace root.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.root, name)
}

// WriteFile writes data to name inside the workspace and returns the full
// path.
func (w *Workspace) WriteFile(name string, data []byte) (string, error) {
	path := w.Path(name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// SourceName returns the indexed file name for a downloaded source,
// carrying over the URL's extension when it looks like a sane one.
func (w *Workspace) SourceName(index int, rawURL string) string {
	return fmt.Sprintf("source-%d%s", index, extFromURL(rawURL))
}

// NormalizedName returns the indexed file name for a normalized clip.
func (w *Workspace) NormalizedName(index int) string {
	return fmt.Sprintf("normalized-%d.mp4", index)
}

// ConcatListName returns the file name for the concat demuxer list.
func (w *Workspace) ConcatListName() string {
	return "concat.txt"
}

// OutputName returns the file name for the finished output.
func (w *Workspace) OutputName() string {
	return "output.mp4"
}

// Cleanup removes the workspace directory and everything in it. Safe to
// call more than once; removal failure is logged, not returned, since the
// job outcome is already decided by then.
func (w *Workspace) Cleanup() {
	if w.root == "" {
		return
	}
	if err := os.RemoveAll(w.root); err != nil {
		w.logger.Warn().Err(err).Str("workspace", w.root).Msg("workspace cleanup failed")
		return
	}
	w.logger.Debug().Str("workspace", w.root).Msg("removed workspace")
}

// extFromURL extracts a usable file extension from the URL path. Anything
// missing or suspicious falls back to ".mp4"; the probe reads the real
// container from the bytes regardless.
func extFromURL(rawURL string) string {
	cleaned := rawURL
	if i := strings.IndexAny(cleaned, "?#"); i >= 0 {
		cleaned = cleaned[:i]
	}
	ext := strings.ToLower(filepath.Ext(cleaned))
	if ext == "" || len(ext) > 6 {
		return ".mp4"
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ".mp4"
		}
	}
	return ext
}
