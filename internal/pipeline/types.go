package pipeline

import "github.com/reelpress/reelpress/internal/planner"

// ResizeRequest describes a single-clip resize job. Exactly one of Preset or
// the Width/Height pair must be set.
type ResizeRequest struct {
	// URL is the HTTP(S) location of the source clip.
	URL string

	// Preset names an entry in the platform preset table.
	Preset string

	// Width and Height are explicit output dimensions, used when Preset is
	// empty. Both must be positive and even.
	Width  int
	Height int
}

// ResizeResult is the outcome of a successful resize job.
type ResizeResult struct {
	// Buffer holds the finished MP4.
	Buffer []byte

	// Width and Height are the output dimensions.
	Width  int
	Height int

	// Duration is the source duration in seconds, as probed.
	Duration float64

	// SourceSize is the downloaded source size in bytes.
	SourceSize int64

	// FileSize is len(Buffer) in bytes.
	FileSize int64
}

// MergeRequest describes a multi-clip merge job.
type MergeRequest struct {
	// URLs are the HTTP(S) locations of the source clips, in output order.
	// At least two are required.
	URLs []string

	// Resolution selects the output canvas. Empty means ResolutionOriginal.
	Resolution planner.Resolution

	// Quality selects the encode tier. Empty means TierHigh.
	Quality planner.Tier
}

// MergeResult is the outcome of a successful merge job.
type MergeResult struct {
	// Buffer holds the finished MP4.
	Buffer []byte

	// Width and Height are the shared canvas dimensions.
	Width  int
	Height int

	// Vertical reports the orientation the clip majority voted for.
	Vertical bool

	// TotalDuration is the summed source duration in seconds, as probed.
	TotalDuration float64

	// ClipCount is the number of merged sources.
	ClipCount int

	// FileSize is len(Buffer) in bytes.
	FileSize int64
}
