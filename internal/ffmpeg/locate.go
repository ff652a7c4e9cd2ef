package ffmpeg

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// knownLocations are searched after PATH for systems where the binaries are
// installed outside it (service users, minimal containers).
var knownLocations = []string{
	"/usr/local/bin",
	"/opt/homebrew/bin",
	"/usr/bin",
	"/opt/ffmpeg/bin",
}

// Locate resolves the path of an engine binary (ffmpeg or ffprobe). An
// explicit path wins and must exist; otherwise PATH is searched, then any
// extra configured directories, then the known install locations.
func Locate(name, explicit string, extraPaths []string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("configured %s path %q: %w", name, explicit, err)
		}
		return explicit, nil
	}

	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	for _, dir := range append(append([]string{}, extraPaths...), knownLocations...) {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%s not found on PATH or in known locations", name)
}
